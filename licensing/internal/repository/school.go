package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

var schoolColumns = []string{"id", "name", "is_private", "secretary_id", "address_id", "created_at"}

// CreateSchool stores the login, the address, the school and its responsible in one transaction.
func (r *repository) CreateSchool(ctx context.Context, ns model.NewSchool) (int, error) {
	var id int
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		user, err := queryOne[model.User](ctx, tx, qb.Insert(usersTableName).
			Columns("email", "password", "user_type").
			Values(ns.User.Email, ns.User.Password, ns.User.UserType).
			Suffix(returning(userColumns)))
		if err != nil {
			return mapUserError(err, 0)
		}
		address, err := insertAddress(ctx, tx, ns.Address)
		if err != nil {
			return mapError(err, "address", 0)
		}

		secretaryID := ns.School.SecretaryID
		if ns.School.IsPrivate {
			secretaryID = nil
		}
		school, err := queryOne[model.School](ctx, tx, qb.Insert(schoolTableName).
			Columns("name", "is_private", "secretary_id", "address_id").
			Values(ns.School.Name, ns.School.IsPrivate, secretaryID, address.ID).
			Suffix(returning(schoolColumns)))
		if err != nil {
			if secretaryID != nil && pgErrCode(err) == pgerrcode.ForeignKeyViolation {
				return errs.NotFound("secretary %d not found", *secretaryID)
			}
			return mapError(err, "school", 0)
		}

		resp := ns.Responsible
		resp.UserID = user.ID
		resp.SchoolID = &school.ID
		resp.SecretaryID = nil
		if _, err := insertResponsible(ctx, tx, resp); err != nil {
			return mapError(err, "responsible", 0)
		}
		id = school.ID
		return nil
	})
	return id, err
}

func (r *repository) ListSchools(ctx context.Context) ([]model.SchoolDetail, error) {
	return r.listSchoolDetails(ctx, qb.Select(schoolColumns...).From(schoolTableName).OrderBy("id"))
}

func (r *repository) ListSchoolsBySecretary(ctx context.Context, secretaryID int) ([]model.SchoolDetail, error) {
	return r.listSchoolDetails(ctx, qb.Select(schoolColumns...).From(schoolTableName).
		Where(sq.Eq{"secretary_id": secretaryID}).
		OrderBy("id"))
}

func (r *repository) listSchoolDetails(ctx context.Context, b sq.SelectBuilder) ([]model.SchoolDetail, error) {
	schools, err := queryAll[model.School](ctx, r.db, b)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(schools))
	var addressIDs, secretaryIDs []int
	for i, s := range schools {
		ids[i] = s.ID
		if s.AddressID != nil {
			addressIDs = append(addressIDs, *s.AddressID)
		}
		if s.SecretaryID != nil {
			secretaryIDs = append(secretaryIDs, *s.SecretaryID)
		}
	}
	addresses, err := r.addressesByID(ctx, addressIDs)
	if err != nil {
		return nil, err
	}
	secretaries, err := r.secretaryRefs(ctx, secretaryIDs)
	if err != nil {
		return nil, err
	}
	responsibles, err := r.responsiblesBy(ctx, "school_id", ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.SchoolDetail, len(schools))
	for i, s := range schools {
		out[i] = model.SchoolDetail{School: s, Responsibles: responsibles[s.ID]}
		if s.AddressID != nil {
			out[i].Address = addresses[*s.AddressID]
		}
		if s.SecretaryID != nil {
			out[i].Secretary = secretaries[*s.SecretaryID]
		}
		if out[i].Responsibles == nil {
			out[i].Responsibles = []model.Responsible{}
		}
	}
	return out, nil
}

func (r *repository) secretaryRefs(ctx context.Context, ids []int) (map[int]*model.Ref, error) {
	out := make(map[int]*model.Ref, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	refs, err := queryAll[model.Ref](ctx, r.db, qb.Select("id", "name").From(secretaryTableName).Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, err
	}
	for i := range refs {
		out[refs[i].ID] = &refs[i]
	}
	return out, nil
}

func getSchool(ctx context.Context, q querier, id int, lock bool) (model.School, error) {
	b := qb.Select(schoolColumns...).From(schoolTableName).Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("for update")
	}
	s, err := queryOne[model.School](ctx, q, b)
	if err != nil {
		return model.School{}, mapError(err, "school", id)
	}
	return s, nil
}

func (r *repository) GetSchool(ctx context.Context, id int) (model.School, error) {
	return getSchool(ctx, r.db, id, false)
}

func (r *repository) GetSchoolDetail(ctx context.Context, id int) (model.SchoolDetail, error) {
	details, err := r.listSchoolDetails(ctx, qb.Select(schoolColumns...).From(schoolTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return model.SchoolDetail{}, err
	}
	if len(details) == 0 {
		return model.SchoolDetail{}, mapError(pgx.ErrNoRows, "school", id)
	}
	return details[0], nil
}

func (r *repository) UpdateSchool(ctx context.Context, id int, req model.SchoolRequest) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		s, err := getSchool(ctx, tx, id, true)
		if err != nil {
			return err
		}
		addressID, err := upsertAddress(ctx, tx, s.AddressID, req.Address)
		if err != nil {
			return err
		}
		return updateSchoolRow(ctx, tx, id, req, addressID)
	})
}

func (r *repository) UpdateFullSchool(ctx context.Context, id int, req model.FullSchoolUpdate) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		s, err := getSchool(ctx, tx, id, true)
		if err != nil {
			return err
		}
		primary, err := mainResponsible(ctx, tx, "school_id", id)
		if err != nil {
			return err
		}
		addressID, err := upsertAddress(ctx, tx, s.AddressID, &req.Address)
		if err != nil {
			return err
		}
		if err := updateSchoolRow(ctx, tx, id, req.School, addressID); err != nil {
			return err
		}
		if err := updateResponsibleContact(ctx, tx, primary.ID, req.Responsible); err != nil {
			return err
		}
		_, err = r.updateUser(ctx, tx, primary.UserID, req.User)
		return err
	})
}

// updateSchoolRow drops the secretariat link of private schools.
func updateSchoolRow(ctx context.Context, q querier, id int, req model.SchoolRequest, addressID *int) error {
	secretaryID := req.SecretaryID
	if req.IsPrivate {
		secretaryID = nil
	}
	_, err := exec(ctx, q, qb.Update(schoolTableName).
		SetMap(map[string]any{
			"name":         req.Name,
			"is_private":   req.IsPrivate,
			"secretary_id": secretaryID,
			"address_id":   addressID,
		}).
		Where(sq.Eq{"id": id}))
	return mapError(err, "school", id)
}

// DeleteSchool removes the school with its responsibles and its address.
func (r *repository) DeleteSchool(ctx context.Context, id int) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		s, err := getSchool(ctx, tx, id, true)
		if err != nil {
			return err
		}
		if _, err := exec(ctx, tx, qb.Delete(responsibleTableName).Where(sq.Eq{"school_id": id})); err != nil {
			return errors.Wrap(err, "delete responsibles")
		}
		if _, err := exec(ctx, tx, qb.Delete(schoolTableName).Where(sq.Eq{"id": id})); err != nil {
			return mapError(err, "school", id)
		}
		if s.AddressID != nil {
			return deleteAddress(ctx, tx, *s.AddressID)
		}
		return nil
	})
}
