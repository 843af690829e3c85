package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

var responsibleColumns = []string{"id", "name", "role", "whatsapp", "phone", "user_id", "secretary_id", "school_id", "created_at"}

func selectResponsibles() sq.SelectBuilder {
	return qb.Select(responsibleColumns...).From(responsibleTableName).OrderBy("id")
}

// responsiblesBy groups the responsibles whose column is one of ids by that owner id.
func (r *repository) responsiblesBy(ctx context.Context, column string, ids []int) (map[int][]model.Responsible, error) {
	out := make(map[int][]model.Responsible, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	items, err := queryAll[model.Responsible](ctx, r.db, selectResponsibles().Where(sq.Eq{column: ids}))
	if err != nil {
		return nil, err
	}
	for _, resp := range items {
		owner := resp.SchoolID
		if column == "secretary_id" {
			owner = resp.SecretaryID
		}
		if owner != nil {
			out[*owner] = append(out[*owner], resp)
		}
	}
	return out, nil
}

func insertResponsible(ctx context.Context, q querier, resp model.Responsible) (model.Responsible, error) {
	return queryOne[model.Responsible](ctx, q, qb.Insert(responsibleTableName).
		Columns("name", "role", "whatsapp", "phone", "user_id", "secretary_id", "school_id").
		Values(resp.Name, resp.Role, resp.Whatsapp, resp.Phone, resp.UserID, resp.SecretaryID, resp.SchoolID).
		Suffix(returning(responsibleColumns)))
}

func updateResponsibleContact(ctx context.Context, q querier, id int, req model.ResponsibleRequest) error {
	_, err := exec(ctx, q, qb.Update(responsibleTableName).
		SetMap(map[string]any{
			"name":     req.Name,
			"role":     req.Role,
			"whatsapp": req.Whatsapp,
			"phone":    req.Phone,
		}).
		Where(sq.Eq{"id": id}))
	return mapError(err, "responsible", id)
}

func (r *repository) CreateResponsible(ctx context.Context, req model.ResponsibleRequest) (model.Responsible, error) {
	resp, err := insertResponsible(ctx, r.db, model.Responsible{
		Name:        req.Name,
		Role:        req.Role,
		Whatsapp:    req.Whatsapp,
		Phone:       req.Phone,
		UserID:      req.UserID,
		SecretaryID: req.SecretaryID,
	})
	if err != nil {
		return model.Responsible{}, mapResponsibleError(err, 0)
	}
	return resp, nil
}

func (r *repository) ListResponsibles(ctx context.Context) ([]model.Responsible, error) {
	return queryAll[model.Responsible](ctx, r.db, selectResponsibles())
}

func (r *repository) GetResponsible(ctx context.Context, id int) (model.Responsible, error) {
	resp, err := queryOne[model.Responsible](ctx, r.db, selectResponsibles().Where(sq.Eq{"id": id}))
	if err != nil {
		return model.Responsible{}, mapError(err, "responsible", id)
	}
	return resp, nil
}

func (r *repository) UpdateResponsible(ctx context.Context, id int, req model.ResponsibleRequest) (model.Responsible, error) {
	resp, err := queryOne[model.Responsible](ctx, r.db, qb.Update(responsibleTableName).
		SetMap(map[string]any{
			"name":         req.Name,
			"role":         req.Role,
			"whatsapp":     req.Whatsapp,
			"phone":        req.Phone,
			"user_id":      req.UserID,
			"secretary_id": req.SecretaryID,
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returning(responsibleColumns)))
	if err != nil {
		return model.Responsible{}, mapResponsibleError(err, id)
	}
	return resp, nil
}

func (r *repository) DeleteResponsible(ctx context.Context, id int) error {
	n, err := exec(ctx, r.db, qb.Delete(responsibleTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return mapError(err, "responsible", id)
	}
	if n == 0 {
		return errs.NotFound("responsible %d not found", id)
	}
	return nil
}

func mapResponsibleError(err error, id int) error {
	if pgErrCode(err) == pgerrcode.ForeignKeyViolation {
		return errs.NotFound("referenced user or secretary not found")
	}
	return mapError(err, "responsible", id)
}
