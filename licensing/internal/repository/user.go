package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

var userColumns = []string{"id", "email", "password", "user_type", "status", "created_at"}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	created, err := queryOne[model.User](ctx, r.db, qb.Insert(usersTableName).
		Columns("email", "password", "user_type").
		Values(user.Email, user.Password, user.UserType).
		Suffix(returning(userColumns)))
	if err != nil {
		return model.User{}, mapUserError(err, 0)
	}
	return created, nil
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	return queryAll[model.User](ctx, r.db, qb.Select(userColumns...).From(usersTableName).OrderBy("id"))
}

func (r *repository) GetUser(ctx context.Context, id int) (model.User, error) {
	u, err := queryOne[model.User](ctx, r.db, qb.Select(userColumns...).From(usersTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return model.User{}, mapError(err, "user", id)
	}
	return u, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	u, err := queryOne[model.User](ctx, r.db, qb.Select(userColumns...).From(usersTableName).Where(sq.Eq{"email": email}))
	if err != nil {
		return model.User{}, mapError(err, "user", 0)
	}
	return u, nil
}

// UpdateUser applies the non-empty fields of req; req.Password is expected to be already hashed.
func (r *repository) UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (model.User, error) {
	return r.updateUser(ctx, r.db, id, req)
}

func (r *repository) updateUser(ctx context.Context, q querier, id int, req model.UpdateUserRequest) (model.User, error) {
	upd := qb.Update(usersTableName).Where(sq.Eq{"id": id}).Suffix(returning(userColumns))
	set := 0
	if req.Email != "" {
		upd = upd.Set("email", req.Email)
		set++
	}
	if req.Password != "" {
		upd = upd.Set("password", req.Password)
		set++
	}
	if req.UserType != "" {
		upd = upd.Set("user_type", req.UserType)
		set++
	}
	if req.Status != nil {
		upd = upd.Set("status", *req.Status)
		set++
	}
	if set == 0 {
		u, err := queryOne[model.User](ctx, q, qb.Select(userColumns...).From(usersTableName).Where(sq.Eq{"id": id}))
		return u, mapError(err, "user", id)
	}
	u, err := queryOne[model.User](ctx, q, upd)
	if err != nil {
		return model.User{}, mapUserError(err, id)
	}
	return u, nil
}

func (r *repository) DeleteUser(ctx context.Context, id int) error {
	n, err := exec(ctx, r.db, qb.Delete(usersTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return mapError(err, "user", id)
	}
	if n == 0 {
		return errs.NotFound("user %d not found", id)
	}
	return nil
}

func mapUserError(err error, id int) error {
	err = mapError(err, "user", id)
	if errors.Is(err, errs.ErrConflict) {
		return errs.New(errs.ErrConflict, "email is already in use")
	}
	return err
}
