package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

var fileColumns = []string{"id", "reference_table", "reference_id", "name", "file_path", "created_at"}

func (r *repository) CreateFile(ctx context.Context, f model.File) (model.File, error) {
	created, err := queryOne[model.File](ctx, r.db, qb.Insert(fileTableName).
		Columns("reference_table", "reference_id", "name", "file_path").
		Values(f.ReferenceTable, f.ReferenceID, f.Name, f.FilePath).
		Suffix(returning(fileColumns)))
	if err != nil {
		return model.File{}, mapError(err, "file", 0)
	}
	return created, nil
}

func (r *repository) ListFiles(ctx context.Context, referenceTable string, referenceID int) ([]model.File, error) {
	return queryAll[model.File](ctx, r.db, qb.Select(fileColumns...).
		From(fileTableName).
		Where(sq.Eq{"reference_table": referenceTable, "reference_id": referenceID}).
		OrderBy("created_at desc", "id desc"))
}
