package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type LicenseRepository interface {
	GetSecretary(ctx context.Context, id int) (model.Secretary, error)
	GetSchool(ctx context.Context, id int) (model.School, error)
	CreateBatch(ctx context.Context, batch model.NewBatch) (model.CreatedBatch, error)
	ListBatches(ctx context.Context) ([]model.BatchSummary, error)
	ListBatchesBySecretary(ctx context.Context, secretaryID int, statuses []model.BatchStatus) ([]model.BatchSummary, error)
	GetBatch(ctx context.Context, id int) (model.BatchDetail, error)
	UpdateBatchStatus(ctx context.Context, id int, to model.BatchStatus, at time.Time) (model.LicenseBatch, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type DirectoryRepository interface {
	UserRepository

	CreateAddress(ctx context.Context, address model.Address) (model.Address, error)
	ListAddresses(ctx context.Context) ([]model.Address, error)
	GetAddress(ctx context.Context, id int) (model.Address, error)
	UpdateAddress(ctx context.Context, address model.Address) (model.Address, error)
	DeleteAddress(ctx context.Context, id int) error

	CreateSecretary(ctx context.Context, req model.SecretaryRequest) (int, error)
	ListSecretaries(ctx context.Context) ([]model.SecretaryDetail, error)
	GetSecretary(ctx context.Context, id int) (model.Secretary, error)
	GetSecretaryDetail(ctx context.Context, id int) (model.SecretaryDetail, error)
	UpdateSecretary(ctx context.Context, id int, req model.SecretaryRequest) error
	UpdateFullSecretary(ctx context.Context, id int, req model.FullSecretaryUpdate) error
	DeleteSecretary(ctx context.Context, id int) error

	CreateSchool(ctx context.Context, school model.NewSchool) (int, error)
	ListSchools(ctx context.Context) ([]model.SchoolDetail, error)
	ListSchoolsBySecretary(ctx context.Context, secretaryID int) ([]model.SchoolDetail, error)
	GetSchool(ctx context.Context, id int) (model.School, error)
	GetSchoolDetail(ctx context.Context, id int) (model.SchoolDetail, error)
	UpdateSchool(ctx context.Context, id int, req model.SchoolRequest) error
	UpdateFullSchool(ctx context.Context, id int, req model.FullSchoolUpdate) error
	DeleteSchool(ctx context.Context, id int) error

	CreateResponsible(ctx context.Context, req model.ResponsibleRequest) (model.Responsible, error)
	ListResponsibles(ctx context.Context) ([]model.Responsible, error)
	GetResponsible(ctx context.Context, id int) (model.Responsible, error)
	UpdateResponsible(ctx context.Context, id int, req model.ResponsibleRequest) (model.Responsible, error)
	DeleteResponsible(ctx context.Context, id int) error
}

type CatalogRepository interface {
	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.BookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) (model.Book, error)

	CreateFile(ctx context.Context, file model.File) (model.File, error)
	ListFiles(ctx context.Context, referenceTable string, referenceID int) ([]model.File, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	addressTableName      = `address`
	usersTableName        = `users`
	secretaryTableName    = `secretary`
	schoolTableName       = `school`
	responsibleTableName  = `responsible`
	bookTableName         = `book`
	fileTableName         = `file`
	licenseBatchTableName = `license_batch`
	licenseKeyTableName   = `license_key`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returning(columns []string) string {
	return "returning " + strings.Join(columns, ", ")
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// mapError classifies driver errors into errs kinds; entity names the record in the message.
func mapError(err error, entity string, id int) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return errs.NotFound("%s %d not found", entity, id)
	case pgErrCode(err) == pgerrcode.UniqueViolation:
		return errs.New(errs.ErrConflict, "%s already exists", entity)
	case pgErrCode(err) == pgerrcode.ForeignKeyViolation:
		return errs.New(errs.ErrConflict, "%s %d is referenced by or references missing records", entity, id)
	case pgErrCode(err) == pgerrcode.CheckViolation:
		return errs.Validation("%s violates a data constraint", entity)
	}
	var e *errs.Error
	if errors.As(err, &e) {
		return err
	}
	return errors.Wrap(err, entity)
}

// queryOne runs a built select/insert/update and scans exactly one row into T by column name.
func queryOne[T any](ctx context.Context, q querier, b sq.Sqlizer) (T, error) {
	var zero T
	query, args, err := b.ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
}

func queryAll[T any](ctx context.Context, q querier, b sq.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}

func exec(ctx context.Context, q querier, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
