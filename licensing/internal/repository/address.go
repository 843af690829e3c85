package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

var addressColumns = []string{"id", "street", "number", "neighborhood", "city", "state", "cep"}

func insertAddress(ctx context.Context, q querier, a model.Address) (model.Address, error) {
	return queryOne[model.Address](ctx, q, qb.Insert(addressTableName).
		Columns("street", "number", "neighborhood", "city", "state", "cep").
		Values(a.Street, a.Number, a.Neighborhood, a.City, a.State, a.Cep).
		Suffix(returning(addressColumns)))
}

func updateAddress(ctx context.Context, q querier, a model.Address) (model.Address, error) {
	return queryOne[model.Address](ctx, q, qb.Update(addressTableName).
		SetMap(map[string]any{
			"street":       a.Street,
			"number":       a.Number,
			"neighborhood": a.Neighborhood,
			"city":         a.City,
			"state":        a.State,
			"cep":          a.Cep,
		}).
		Where(sq.Eq{"id": a.ID}).
		Suffix(returning(addressColumns)))
}

func deleteAddress(ctx context.Context, q querier, id int) error {
	n, err := exec(ctx, q, qb.Delete(addressTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return mapError(err, "address", id)
	}
	if n == 0 {
		return errs.NotFound("address %d not found", id)
	}
	return nil
}

func getAddress(ctx context.Context, q querier, id int) (model.Address, error) {
	a, err := queryOne[model.Address](ctx, q, qb.Select(addressColumns...).From(addressTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return model.Address{}, mapError(err, "address", id)
	}
	return a, nil
}

func (r *repository) CreateAddress(ctx context.Context, address model.Address) (model.Address, error) {
	a, err := insertAddress(ctx, r.db, address)
	return a, mapError(err, "address", 0)
}

func (r *repository) ListAddresses(ctx context.Context) ([]model.Address, error) {
	return queryAll[model.Address](ctx, r.db, qb.Select(addressColumns...).From(addressTableName).OrderBy("id"))
}

func (r *repository) GetAddress(ctx context.Context, id int) (model.Address, error) {
	return getAddress(ctx, r.db, id)
}

func (r *repository) UpdateAddress(ctx context.Context, address model.Address) (model.Address, error) {
	a, err := updateAddress(ctx, r.db, address)
	return a, mapError(err, "address", address.ID)
}

func (r *repository) DeleteAddress(ctx context.Context, id int) error {
	return deleteAddress(ctx, r.db, id)
}
