package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

var bookColumns = []string{"id", "title", "pages", "author", "year_launch", "description", "created_at"}

func bookValues(req model.BookRequest) map[string]any {
	return map[string]any{
		"title":       req.Title,
		"pages":       req.Pages,
		"author":      req.Author,
		"year_launch": req.YearLaunch,
		"description": req.Description,
	}
}

func (r *repository) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	b, err := queryOne[model.Book](ctx, r.db, qb.Insert(bookTableName).
		SetMap(bookValues(req)).
		Suffix(returning(bookColumns)))
	if err != nil {
		return model.Book{}, mapError(err, "book", 0)
	}
	return b, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	return queryAll[model.Book](ctx, r.db, qb.Select(bookColumns...).From(bookTableName).OrderBy("id"))
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	b, err := queryOne[model.Book](ctx, r.db, qb.Select(bookColumns...).From(bookTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return model.Book{}, mapError(err, "book", id)
	}
	return b, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int, req model.BookRequest) (model.Book, error) {
	b, err := queryOne[model.Book](ctx, r.db, qb.Update(bookTableName).
		SetMap(bookValues(req)).
		Where(sq.Eq{"id": id}).
		Suffix(returning(bookColumns)))
	if err != nil {
		return model.Book{}, mapError(err, "book", id)
	}
	return b, nil
}

// DeleteBook removes the book together with its license batches, their keys and the files attached to it.
func (r *repository) DeleteBook(ctx context.Context, id int) (model.Book, error) {
	var deleted model.Book
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		batches := qb.Select("id").From(licenseBatchTableName).Where(sq.Eq{"book_id": id})
		batchIDs, err := queryAll[struct {
			ID int `db:"id"`
		}](ctx, tx, batches)
		if err != nil {
			return err
		}
		if len(batchIDs) > 0 {
			ids := make([]int, len(batchIDs))
			for i, b := range batchIDs {
				ids[i] = b.ID
			}
			if _, err := exec(ctx, tx, qb.Delete(licenseKeyTableName).Where(sq.Eq{"batch_id": ids})); err != nil {
				return errors.Wrap(err, "delete license keys")
			}
			if _, err := exec(ctx, tx, qb.Delete(licenseBatchTableName).Where(sq.Eq{"book_id": id})); err != nil {
				return errors.Wrap(err, "delete license batches")
			}
		}
		if _, err := exec(ctx, tx, qb.Delete(fileTableName).Where(sq.Eq{
			"reference_table": model.BooksReference,
			"reference_id":    id,
		})); err != nil {
			return errors.Wrap(err, "delete files")
		}

		deleted, err = queryOne[model.Book](ctx, tx, qb.Delete(bookTableName).
			Where(sq.Eq{"id": id}).
			Suffix(returning(bookColumns)))
		return mapError(err, "book", id)
	})
	return deleted, err
}
