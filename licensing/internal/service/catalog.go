package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
	"github.com/Astemirdum/edu-licensing/licensing/internal/repository"
)

type Catalog struct {
	repo  repository.CatalogRepository
	store ObjectStore
	log   *zap.Logger
}

func NewCatalog(repo repository.CatalogRepository, store ObjectStore, log *zap.Logger) *Catalog {
	return &Catalog{
		repo:  repo,
		store: store,
		log:   log.Named("catalog"),
	}
}

func (s *Catalog) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Catalog) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Catalog) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Catalog) UpdateBook(ctx context.Context, id int, req model.BookRequest) (model.Book, error) {
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Catalog) DeleteBook(ctx context.Context, id int) (model.Book, error) {
	book, err := s.repo.DeleteBook(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	s.log.Info("book deleted", zap.Int("book_id", id))
	return book, nil
}

// Upload stores the contents first and then records the file; the object is removed if recording fails.
func (s *Catalog) Upload(ctx context.Context, up model.Upload, r io.Reader) (model.File, error) {
	if up.ReferenceTable == "" || up.ReferenceID <= 0 {
		return model.File{}, errs.Validation("reference_table and reference_id are required")
	}
	if up.Filename == "" {
		return model.File{}, errs.Validation("file is required")
	}

	name := path.Base(up.Filename)
	objectName := fmt.Sprintf("%s/%d/%s-%s", up.ReferenceTable, up.ReferenceID, uuid.NewString(), name)
	filePath, err := s.store.Put(ctx, objectName, r, up.Size, up.ContentType)
	if err != nil {
		return model.File{}, err
	}

	file, err := s.repo.CreateFile(ctx, model.File{
		ReferenceTable: up.ReferenceTable,
		ReferenceID:    up.ReferenceID,
		Name:           name,
		FilePath:       filePath,
	})
	if err != nil {
		if rmErr := s.store.Remove(ctx, objectName); rmErr != nil {
			s.log.Error("remove orphan object", zap.String("object", objectName), zap.Error(rmErr))
		}
		return model.File{}, err
	}
	return file, nil
}

func (s *Catalog) ListFiles(ctx context.Context, referenceTable string, referenceID int) ([]model.File, error) {
	return s.repo.ListFiles(ctx, referenceTable, referenceID)
}
