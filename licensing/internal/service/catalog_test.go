package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"

	repo_mocks "github.com/Astemirdum/edu-licensing/licensing/internal/repository/mocks"
	store_mocks "github.com/Astemirdum/edu-licensing/licensing/internal/service/mocks"
)

func TestCatalog_Upload(t *testing.T) {
	t.Parallel()
	up := model.Upload{
		ReferenceTable: model.BooksReference,
		ReferenceID:    7,
		Filename:       "../capa.png",
		ContentType:    "image/png",
		Size:           4,
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		repo := repo_mocks.NewMockCatalogRepository(c)
		store := store_mocks.NewMockObjectStore(c)
		s := NewCatalog(repo, store, zap.NewNop())

		var object string
		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(4), "image/png").
			DoAndReturn(func(_ context.Context, name string, _ io.Reader, _ int64, _ string) (string, error) {
				object = name
				return "uploads/" + name, nil
			})
		repo.EXPECT().CreateFile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f model.File) (model.File, error) {
				require.Equal(t, "capa.png", f.Name)
				require.Equal(t, "uploads/"+object, f.FilePath)
				f.ID = 1
				return f, nil
			})

		f, err := s.Upload(context.Background(), up, strings.NewReader("data"))
		require.NoError(t, err)
		require.Equal(t, 1, f.ID)
		require.True(t, strings.HasPrefix(object, "books/7/"), object)
		require.True(t, strings.HasSuffix(object, "-capa.png"), object)
	})

	t.Run("err. record fails, object removed", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		repo := repo_mocks.NewMockCatalogRepository(c)
		store := store_mocks.NewMockObjectStore(c)
		s := NewCatalog(repo, store, zap.NewNop())

		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("uploads/x", nil)
		repo.EXPECT().CreateFile(gomock.Any(), gomock.Any()).Return(model.File{}, errors.New("db down"))
		store.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.Upload(context.Background(), up, strings.NewReader("data"))
		require.EqualError(t, err, "db down")
	})

	t.Run("err. no reference", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		s := NewCatalog(repo_mocks.NewMockCatalogRepository(c), store_mocks.NewMockObjectStore(c), zap.NewNop())

		_, err := s.Upload(context.Background(), model.Upload{Filename: "a.pdf"}, strings.NewReader(""))
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}
