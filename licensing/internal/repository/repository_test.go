package repository

import (
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

func TestMapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantKind error
		wantMsg  string
	}{
		{name: "nil", err: nil},
		{name: "no rows", err: errors.Wrap(pgx.ErrNoRows, "scan"), wantKind: errs.ErrNotFound, wantMsg: "book 3 not found"},
		{name: "unique", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, wantKind: errs.ErrConflict, wantMsg: "book already exists"},
		{name: "fk", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, wantKind: errs.ErrConflict},
		{name: "check", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, wantKind: errs.ErrValidation, wantMsg: "book violates a data constraint"},
		{name: "typed passes through", err: errs.NotFound("main responsible not found"), wantKind: errs.ErrNotFound, wantMsg: "main responsible not found"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mapError(tt.err, "book", 3)
			if tt.err == nil {
				require.NoError(t, got)
				return
			}
			require.ErrorIs(t, got, tt.wantKind)
			if tt.wantMsg != "" {
				require.Equal(t, tt.wantMsg, got.Error())
			}
		})
	}

	t.Run("unknown is internal", func(t *testing.T) {
		t.Parallel()
		got := mapError(errors.New("conn reset"), "book", 3)
		require.Equal(t, "book: conn reset", got.Error())
		require.Equal(t, 500, errs.HTTPStatus(got))
	})
}

func TestMapUserError(t *testing.T) {
	t.Parallel()
	err := mapUserError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, 0)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Equal(t, "email is already in use", err.Error())
}

func TestQueryHelpers(t *testing.T) {
	t.Parallel()
	require.Equal(t, "returning id, name", returning([]string{"id", "name"}))
	require.Equal(t, []string{"s.id", "s.name"}, prefixed("s", []string{"id", "name"}))

	q, args, err := qb.Select(bookColumns...).From(bookTableName).Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	require.Equal(t, "SELECT id, title, pages, author, year_launch, description, created_at FROM book WHERE id = $1", q)
	require.Equal(t, []interface{}{1}, args)
}

func TestSelectBatchSummaries(t *testing.T) {
	t.Parallel()
	r := &repository{}
	q, args, err := r.selectBatchSummaries().Where("lb.secretary_id = ?", 2).ToSql()
	require.NoError(t, err)
	require.Contains(t, q, "LEFT JOIN license_key k on k.batch_id = lb.id")
	require.Contains(t, q, "count(k.id)")
	require.Contains(t, q, "ORDER BY lb.created_at desc, lb.id desc")
	require.Equal(t, []interface{}{2}, args)
}

func TestMapBatchCreateError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		err        error
		wantKind   error
		wantMsg    string
		wantStatus int
	}{
		{
			name:       "missing book",
			err:        errors.Wrap(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "insert batch"),
			wantKind:   errs.ErrNotFound,
			wantMsg:    "book 9 not found",
			wantStatus: 404,
		},
		{
			name:       "duplicate code",
			err:        errors.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "copy license keys"),
			wantKind:   errs.ErrConflict,
			wantMsg:    "license key code collision, batch was not created",
			wantStatus: 409,
		},
		{
			name:       "other",
			err:        errors.New("conn reset"),
			wantMsg:    "CreateBatch: conn reset",
			wantStatus: 500,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mapBatchCreateError(tt.err, 9)
			if tt.wantKind != nil {
				require.ErrorIs(t, got, tt.wantKind)
			}
			require.Equal(t, tt.wantMsg, got.Error())
			require.Equal(t, tt.wantStatus, errs.HTTPStatus(got))
		})
	}
}

func TestSelectSecretaryBatches(t *testing.T) {
	t.Parallel()
	r := &repository{}
	q, args, err := r.selectSecretaryBatches(2, model.VisibleToSecretary).ToSql()
	require.NoError(t, err)
	require.Contains(t, q, "WHERE lb.secretary_id = $1 AND lb.status IN ($2,$3)")
	require.Equal(t, []interface{}{2, "ENVIADO", "RECEBIDO"}, args)
	require.NotContains(t, args, string(model.BatchCreated))
}

func TestBatchStatusUpdate(t *testing.T) {
	t.Parallel()
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.Contains(t, lockBatchStatusQuery, "where id = $1 for update")

	t.Run("send from created", func(t *testing.T) {
		t.Parallel()
		upd, err := batchStatusUpdate(4, model.BatchCreated, model.BatchSent, at)
		require.NoError(t, err)
		q, args, err := upd.ToSql()
		require.NoError(t, err)
		require.Contains(t, q, "UPDATE license_batch SET status = $1, sent_at = $2, received_at = $3 WHERE id = $4")
		require.Equal(t, []interface{}{"ENVIADO", at, at, 4}, args)
	})

	t.Run("send twice is a business rule error", func(t *testing.T) {
		t.Parallel()
		_, err := batchStatusUpdate(4, model.BatchSent, model.BatchSent, at)
		require.ErrorIs(t, err, errs.ErrBusinessRule)
		require.Equal(t, 422, errs.HTTPStatus(err))
		require.Equal(t, "batch can only be set to ENVIADO from CRIADO, current status is ENVIADO", err.Error())
	})

	t.Run("received batch cannot be sent", func(t *testing.T) {
		t.Parallel()
		_, err := batchStatusUpdate(4, model.BatchReceived, model.BatchSent, at)
		require.ErrorIs(t, err, errs.ErrBusinessRule)
	})
}
