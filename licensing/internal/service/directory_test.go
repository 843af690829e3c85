package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
	"github.com/Astemirdum/edu-licensing/pkg/auth"

	repo_mocks "github.com/Astemirdum/edu-licensing/licensing/internal/repository/mocks"
)

func newTestDirectory(t *testing.T) (*Directory, *repo_mocks.MockDirectoryRepository) {
	repo := repo_mocks.NewMockDirectoryRepository(gomock.NewController(t))
	return NewDirectory(repo, zap.NewNop()), repo
}

func TestDirectory_CreateUser(t *testing.T) {
	t.Parallel()
	s, repo := newTestDirectory(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
			require.Equal(t, model.DefaultUserType, u.UserType)
			require.NotEqual(t, "123456", u.Password)
			require.True(t, auth.CheckPassword(u.Password, "123456"))
			u.ID = 1
			return u, nil
		})

	got, err := s.CreateUser(context.Background(), model.CreateUserRequest{Email: "a@b.com", Password: "123456"})
	require.NoError(t, err)
	require.Equal(t, 1, got.ID)
}

func TestDirectory_CreateSchool(t *testing.T) {
	t.Parallel()
	address := &model.Address{Street: "Rua A", City: "Recife", State: "PE"}
	user := &model.CreateUserRequest{Email: "dir@escola.com", Password: "123456"}
	responsible := &model.ResponsibleRequest{Name: "Maria", Role: "Diretora"}

	t.Run("err. public without secretary", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestDirectory(t)
		_, err := s.CreateSchool(context.Background(), model.CreateSchoolRequest{
			SchoolRequest: model.SchoolRequest{Name: "EMEF", Address: address},
			User:          user,
			Responsible:   responsible,
		})
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("err. missing responsible", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestDirectory(t)
		_, err := s.CreateSchool(context.Background(), model.CreateSchoolRequest{
			SchoolRequest: model.SchoolRequest{Name: "Colégio", IsPrivate: true, Address: address},
			User:          user,
		})
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestDirectory(t)
		repo.EXPECT().CreateSchool(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ns model.NewSchool) (int, error) {
				require.Equal(t, "Colégio", ns.School.Name)
				require.True(t, ns.School.IsPrivate)
				require.Equal(t, *address, ns.Address)
				require.Equal(t, "responsible_school", ns.User.UserType)
				require.True(t, auth.CheckPassword(ns.User.Password, "123456"))
				require.Equal(t, "Maria", ns.Responsible.Name)
				return 10, nil
			})
		want := model.SchoolDetail{School: model.School{ID: 10, Name: "Colégio", IsPrivate: true}}
		repo.EXPECT().GetSchoolDetail(gomock.Any(), 10).Return(want, nil)

		got, err := s.CreateSchool(context.Background(), model.CreateSchoolRequest{
			SchoolRequest: model.SchoolRequest{Name: "Colégio", IsPrivate: true, Address: address},
			User:          user,
			Responsible:   responsible,
		})
		require.NoError(t, err)
		require.Equal(t, want, got)
	})
}

func TestDirectory_UpdateFullSecretary(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		check    func(t *testing.T, stored string)
	}{
		{
			name:     "blank password kept",
			password: "   ",
			check: func(t *testing.T, stored string) {
				require.Empty(t, stored)
			},
		},
		{
			name:     "new password hashed",
			password: "novasenha",
			check: func(t *testing.T, stored string) {
				require.True(t, auth.CheckPassword(stored, "novasenha"))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, repo := newTestDirectory(t)
			repo.EXPECT().UpdateFullSecretary(gomock.Any(), 2, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int, req model.FullSecretaryUpdate) error {
					tt.check(t, req.User.Password)
					return nil
				})
			repo.EXPECT().GetSecretaryDetail(gomock.Any(), 2).Return(model.SecretaryDetail{}, nil)

			_, err := s.UpdateFullSecretary(context.Background(), 2, model.FullSecretaryUpdate{
				Secretary: model.SecretaryRequest{Name: "SME"},
				User:      model.UpdateUserRequest{Email: "x@y.com", Password: tt.password},
			})
			require.NoError(t, err)
		})
	}
}

func TestDirectory_CreateSecretaryRequiresAddress(t *testing.T) {
	t.Parallel()
	s, _ := newTestDirectory(t)
	_, err := s.CreateSecretary(context.Background(), model.SecretaryRequest{Name: "SME"})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestDirectory_CreateResponsible(t *testing.T) {
	t.Parallel()
	s, repo := newTestDirectory(t)

	_, err := s.CreateResponsible(context.Background(), model.ResponsibleRequest{Name: "João", UserID: 1})
	require.ErrorIs(t, err, errs.ErrValidation)

	req := model.ResponsibleRequest{Name: "João", UserID: 1, SecretaryID: intPtr(2)}
	repo.EXPECT().CreateResponsible(gomock.Any(), req).Return(model.Responsible{ID: 4, Name: "João"}, nil)
	got, err := s.CreateResponsible(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 4, got.ID)
}
