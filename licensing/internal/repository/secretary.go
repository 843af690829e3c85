package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

var secretaryColumns = []string{"id", "name", "is_state_level", "municipality", "state", "address_id", "created_at"}

func (r *repository) CreateSecretary(ctx context.Context, req model.SecretaryRequest) (int, error) {
	var id int
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var addressID *int
		if req.Address != nil {
			a, err := insertAddress(ctx, tx, *req.Address)
			if err != nil {
				return mapError(err, "address", 0)
			}
			addressID = &a.ID
		}
		s, err := queryOne[model.Secretary](ctx, tx, qb.Insert(secretaryTableName).
			Columns("name", "is_state_level", "municipality", "state", "address_id").
			Values(req.Name, req.IsStateLevel, req.Municipality, req.State, addressID).
			Suffix(returning(secretaryColumns)))
		if err != nil {
			return mapError(err, "secretary", 0)
		}
		id = s.ID
		return nil
	})
	return id, err
}

func (r *repository) ListSecretaries(ctx context.Context) ([]model.SecretaryDetail, error) {
	secretaries, err := queryAll[model.Secretary](ctx, r.db, qb.Select(secretaryColumns...).From(secretaryTableName).OrderBy("id"))
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(secretaries))
	addressIDs := make([]int, 0, len(secretaries))
	for i, s := range secretaries {
		ids[i] = s.ID
		if s.AddressID != nil {
			addressIDs = append(addressIDs, *s.AddressID)
		}
	}
	addresses, err := r.addressesByID(ctx, addressIDs)
	if err != nil {
		return nil, err
	}
	responsibles, err := r.responsiblesBy(ctx, "secretary_id", ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.SecretaryDetail, len(secretaries))
	for i, s := range secretaries {
		out[i] = model.SecretaryDetail{Secretary: s, Responsibles: responsibles[s.ID]}
		if s.AddressID != nil {
			out[i].Address = addresses[*s.AddressID]
		}
		if out[i].Responsibles == nil {
			out[i].Responsibles = []model.Responsible{}
		}
	}
	return out, nil
}

func getSecretary(ctx context.Context, q querier, id int, lock bool) (model.Secretary, error) {
	b := qb.Select(secretaryColumns...).From(secretaryTableName).Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("for update")
	}
	s, err := queryOne[model.Secretary](ctx, q, b)
	if err != nil {
		return model.Secretary{}, mapError(err, "secretary", id)
	}
	return s, nil
}

func (r *repository) GetSecretary(ctx context.Context, id int) (model.Secretary, error) {
	return getSecretary(ctx, r.db, id, false)
}

func (r *repository) GetSecretaryDetail(ctx context.Context, id int) (model.SecretaryDetail, error) {
	s, err := getSecretary(ctx, r.db, id, false)
	if err != nil {
		return model.SecretaryDetail{}, err
	}
	d := model.SecretaryDetail{Secretary: s}
	if s.AddressID != nil {
		a, err := getAddress(ctx, r.db, *s.AddressID)
		if err != nil {
			return model.SecretaryDetail{}, err
		}
		d.Address = &a
	}
	d.Responsibles, err = queryAll[model.Responsible](ctx, r.db, selectResponsibles().Where(sq.Eq{"secretary_id": id}))
	if err != nil {
		return model.SecretaryDetail{}, err
	}
	return d, nil
}

// UpdateSecretary rewrites the secretariat fields and, when given, its address.
func (r *repository) UpdateSecretary(ctx context.Context, id int, req model.SecretaryRequest) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		s, err := getSecretary(ctx, tx, id, true)
		if err != nil {
			return err
		}
		addressID, err := upsertAddress(ctx, tx, s.AddressID, req.Address)
		if err != nil {
			return err
		}
		_, err = exec(ctx, tx, qb.Update(secretaryTableName).
			SetMap(map[string]any{
				"name":           req.Name,
				"is_state_level": req.IsStateLevel,
				"municipality":   req.Municipality,
				"state":          req.State,
				"address_id":     addressID,
			}).
			Where(sq.Eq{"id": id}))
		return mapError(err, "secretary", id)
	})
}

func (r *repository) UpdateFullSecretary(ctx context.Context, id int, req model.FullSecretaryUpdate) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		s, err := getSecretary(ctx, tx, id, true)
		if err != nil {
			return err
		}
		primary, err := mainResponsible(ctx, tx, "secretary_id", id)
		if err != nil {
			return err
		}

		addressID, err := upsertAddress(ctx, tx, s.AddressID, &req.Address)
		if err != nil {
			return err
		}
		_, err = exec(ctx, tx, qb.Update(secretaryTableName).
			SetMap(map[string]any{
				"name":           req.Secretary.Name,
				"is_state_level": req.Secretary.IsStateLevel,
				"municipality":   req.Secretary.Municipality,
				"state":          req.Secretary.State,
				"address_id":     addressID,
			}).
			Where(sq.Eq{"id": id}))
		if err != nil {
			return mapError(err, "secretary", id)
		}
		if err := updateResponsibleContact(ctx, tx, primary.ID, req.Responsible); err != nil {
			return err
		}
		_, err = r.updateUser(ctx, tx, primary.UserID, req.User)
		return err
	})
}

// DeleteSecretary removes the secretariat with its responsibles, their logins and its address.
func (r *repository) DeleteSecretary(ctx context.Context, id int) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		s, err := getSecretary(ctx, tx, id, true)
		if err != nil {
			return err
		}
		responsibles, err := queryAll[model.Responsible](ctx, tx, selectResponsibles().Where(sq.Eq{"secretary_id": id}))
		if err != nil {
			return err
		}
		userIDs := make([]int, len(responsibles))
		for i, resp := range responsibles {
			userIDs[i] = resp.UserID
		}

		if _, err := exec(ctx, tx, qb.Delete(responsibleTableName).Where(sq.Eq{"secretary_id": id})); err != nil {
			return errors.Wrap(err, "delete responsibles")
		}
		if _, err := exec(ctx, tx, qb.Delete(secretaryTableName).Where(sq.Eq{"id": id})); err != nil {
			return mapError(err, "secretary", id)
		}
		if len(userIDs) > 0 {
			if _, err := exec(ctx, tx, qb.Delete(usersTableName).Where(sq.Eq{"id": userIDs})); err != nil {
				return mapError(err, "user", 0)
			}
		}
		if s.AddressID != nil {
			return deleteAddress(ctx, tx, *s.AddressID)
		}
		return nil
	})
}

// upsertAddress updates the linked address or inserts a new one; it returns the id to link.
func upsertAddress(ctx context.Context, q querier, current *int, a *model.Address) (*int, error) {
	if a == nil {
		return current, nil
	}
	if current != nil {
		a.ID = *current
		if _, err := updateAddress(ctx, q, *a); err != nil {
			return nil, mapError(err, "address", *current)
		}
		return current, nil
	}
	created, err := insertAddress(ctx, q, *a)
	if err != nil {
		return nil, mapError(err, "address", 0)
	}
	return &created.ID, nil
}

func (r *repository) addressesByID(ctx context.Context, ids []int) (map[int]*model.Address, error) {
	out := make(map[int]*model.Address, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	addresses, err := queryAll[model.Address](ctx, r.db, qb.Select(addressColumns...).From(addressTableName).Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, err
	}
	for i := range addresses {
		out[addresses[i].ID] = &addresses[i]
	}
	return out, nil
}

func mainResponsible(ctx context.Context, q querier, column string, ownerID int) (model.Responsible, error) {
	resp, err := queryOne[model.Responsible](ctx, q, selectResponsibles().Where(sq.Eq{column: ownerID}).Limit(1))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Responsible{}, errs.NotFound("main responsible not found")
	}
	return resp, err
}
