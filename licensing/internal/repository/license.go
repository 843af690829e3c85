package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

var (
	batchColumns = []string{
		"id", "book_id", "quantity", "customer_type", "secretary_id", "school_id",
		"parent_batch_id", "status", "created_at", "sent_at", "received_at",
	}
	keyColumns = []string{"id", "batch_id", "code", "status", "created_at", "activated_at"}
)

func (r *repository) CreateBatch(ctx context.Context, nb model.NewBatch) (model.CreatedBatch, error) {
	var created model.CreatedBatch
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		batch, err := queryOne[model.LicenseBatch](ctx, tx, qb.Insert(licenseBatchTableName).
			Columns("book_id", "quantity", "customer_type", "secretary_id", "school_id", "status").
			Values(nb.BookID, nb.Quantity, string(nb.CustomerType), nb.SecretaryID, nb.SchoolID, string(model.BatchCreated)).
			Suffix(returning(batchColumns)))
		if err != nil {
			return errors.Wrap(err, "insert batch")
		}

		keys := make([][]any, len(nb.Codes))
		for i, code := range nb.Codes {
			keys[i] = []any{batch.ID, code, string(model.KeyAvailable)}
		}
		n, err := tx.CopyFrom(ctx,
			pgx.Identifier{licenseKeyTableName},
			[]string{"batch_id", "code", "status"},
			pgx.CopyFromRows(keys),
		)
		if err != nil {
			return errors.Wrap(err, "copy license keys")
		}
		if int(n) != len(nb.Codes) {
			return errors.Errorf("copy license keys: inserted %d of %d", n, len(nb.Codes))
		}

		created = model.CreatedBatch{LicenseBatch: batch, KeysGenerated: int(n)}
		return nil
	})
	if err != nil {
		if pgErrCode(err) == pgerrcode.UniqueViolation {
			r.log.Error("license key collision", zap.Int("book_id", nb.BookID), zap.Error(err))
		}
		return model.CreatedBatch{}, mapBatchCreateError(err, nb.BookID)
	}
	return created, nil
}

// mapBatchCreateError: the only foreign key set by the caller and not checked beforehand is book_id.
func mapBatchCreateError(err error, bookID int) error {
	switch pgErrCode(err) {
	case pgerrcode.ForeignKeyViolation:
		return errs.NotFound("book %d not found", bookID)
	case pgerrcode.UniqueViolation:
		return errs.New(errs.ErrConflict, "license key code collision, batch was not created")
	}
	return errors.Wrap(err, "CreateBatch")
}

func (r *repository) selectBatchSummaries() sq.SelectBuilder {
	columns := append(prefixed("lb", batchColumns), "b.title", "s.name", "sc.name", "count(k.id)")
	return qb.Select(columns...).
		From(licenseBatchTableName + " lb").
		Join(bookTableName + " b on b.id = lb.book_id").
		LeftJoin(secretaryTableName + " s on s.id = lb.secretary_id").
		LeftJoin(schoolTableName + " sc on sc.id = lb.school_id").
		LeftJoin(licenseKeyTableName + " k on k.batch_id = lb.id").
		GroupBy("lb.id", "b.id", "s.id", "sc.id").
		OrderBy("lb.created_at desc", "lb.id desc")
}

func scanBatchSummary(row pgx.CollectableRow) (model.BatchSummary, error) {
	var (
		s                         model.BatchSummary
		secretaryName, schoolName *string
	)
	err := row.Scan(
		&s.ID, &s.BookID, &s.Quantity, &s.CustomerType, &s.SecretaryID, &s.SchoolID,
		&s.ParentBatchID, &s.Status, &s.CreatedAt, &s.SentAt, &s.ReceivedAt,
		&s.Book.Title, &secretaryName, &schoolName, &s.KeysCount,
	)
	if err != nil {
		return model.BatchSummary{}, err
	}
	s.Book.ID = s.BookID
	if s.SecretaryID != nil && secretaryName != nil {
		s.Secretary = &model.Ref{ID: *s.SecretaryID, Name: *secretaryName}
	}
	if s.SchoolID != nil && schoolName != nil {
		s.School = &model.Ref{ID: *s.SchoolID, Name: *schoolName}
	}
	return s, nil
}

func (r *repository) listBatchSummaries(ctx context.Context, b sq.SelectBuilder) ([]model.BatchSummary, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("listBatchSummaries", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	batches, err := pgx.CollectRows(rows, scanBatchSummary)
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return batches, nil
}

func (r *repository) ListBatches(ctx context.Context) ([]model.BatchSummary, error) {
	return r.listBatchSummaries(ctx, r.selectBatchSummaries())
}

func (r *repository) ListBatchesBySecretary(ctx context.Context, secretaryID int, statuses []model.BatchStatus) ([]model.BatchSummary, error) {
	return r.listBatchSummaries(ctx, r.selectSecretaryBatches(secretaryID, statuses))
}

func (r *repository) selectSecretaryBatches(secretaryID int, statuses []model.BatchStatus) sq.SelectBuilder {
	in := make([]string, len(statuses))
	for i, s := range statuses {
		in[i] = string(s)
	}
	return r.selectBatchSummaries().
		Where(sq.Eq{"lb.secretary_id": secretaryID}).
		Where(sq.Eq{"lb.status": in})
}

func (r *repository) GetBatch(ctx context.Context, id int) (model.BatchDetail, error) {
	query, args, err := qb.Select(append(prefixed("lb", batchColumns), "b.title")...).
		From(licenseBatchTableName + " lb").
		Join(bookTableName + " b on b.id = lb.book_id").
		Where(sq.Eq{"lb.id": id}).
		ToSql()
	if err != nil {
		return model.BatchDetail{}, err
	}

	var d model.BatchDetail
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&d.ID, &d.BookID, &d.Quantity, &d.CustomerType, &d.SecretaryID, &d.SchoolID,
		&d.ParentBatchID, &d.Status, &d.CreatedAt, &d.SentAt, &d.ReceivedAt,
		&d.Book.Title,
	)
	if err != nil {
		return model.BatchDetail{}, mapError(err, "license batch", id)
	}
	d.Book.ID = d.BookID

	d.Keys, err = queryAll[model.LicenseKey](ctx, r.db, qb.Select(keyColumns...).
		From(licenseKeyTableName).
		Where(sq.Eq{"batch_id": id}).
		OrderBy("id asc"))
	if err != nil {
		return model.BatchDetail{}, errors.Wrap(err, "list license keys")
	}
	return d, nil
}

const lockBatchStatusQuery = `select status from ` + licenseBatchTableName + ` where id = $1 for update`

// batchStatusUpdate checks the lifecycle against the locked current status and builds the write.
func batchStatusUpdate(id int, current, to model.BatchStatus, at time.Time) (sq.UpdateBuilder, error) {
	if err := model.CheckTransition(current, to); err != nil {
		return sq.UpdateBuilder{}, errs.New(errs.ErrBusinessRule, "%s", err.Error())
	}
	upd := qb.Update(licenseBatchTableName).
		Set("status", string(to)).
		Where(sq.Eq{"id": id}).
		Suffix(returning(batchColumns))
	switch to {
	case model.BatchSent:
		// receipt is recorded together with sending until a separate confirmation step exists
		upd = upd.Set("sent_at", at).Set("received_at", at)
	case model.BatchReceived:
		upd = upd.Set("received_at", at)
	}
	return upd, nil
}

// UpdateBatchStatus locks the batch row, checks the lifecycle and writes the new status in the same transaction.
func (r *repository) UpdateBatchStatus(ctx context.Context, id int, to model.BatchStatus, at time.Time) (model.LicenseBatch, error) {
	var batch model.LicenseBatch
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var current model.BatchStatus
		if err := tx.QueryRow(ctx, lockBatchStatusQuery, id).Scan(&current); err != nil {
			return mapError(err, "license batch", id)
		}
		upd, err := batchStatusUpdate(id, current, to, at)
		if err != nil {
			return err
		}
		batch, err = queryOne[model.LicenseBatch](ctx, tx, upd)
		return err
	})
	if err != nil {
		var e *errs.Error
		if errors.As(err, &e) {
			return model.LicenseBatch{}, err
		}
		return model.LicenseBatch{}, errors.Wrap(err, "UpdateBatchStatus")
	}
	return batch, nil
}
