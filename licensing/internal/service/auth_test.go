package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
	"github.com/Astemirdum/edu-licensing/pkg/auth"

	repo_mocks "github.com/Astemirdum/edu-licensing/licensing/internal/repository/mocks"
)

func TestAuth_Login(t *testing.T) {
	t.Parallel()
	hash, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	tokens := auth.NewTokens(auth.Config{Secret: "test", TokenTTL: time.Hour})

	tests := []struct {
		name     string
		req      model.LoginRequest
		user     model.User
		repoErr  error
		wantKind error
	}{
		{
			name: "ok",
			req:  model.LoginRequest{Email: "ana@sme.gov.br", Password: "s3cret!"},
			user: model.User{ID: 3, Email: "ana@sme.gov.br", Password: hash, UserType: "admin", Status: true},
		},
		{
			name:     "err. wrong password",
			req:      model.LoginRequest{Email: "ana@sme.gov.br", Password: "nope"},
			user:     model.User{ID: 3, Email: "ana@sme.gov.br", Password: hash, Status: true},
			wantKind: errs.ErrUnauthorized,
		},
		{
			name:     "err. inactive",
			req:      model.LoginRequest{Email: "ana@sme.gov.br", Password: "s3cret!"},
			user:     model.User{ID: 3, Email: "ana@sme.gov.br", Password: hash, Status: false},
			wantKind: errs.ErrUnauthorized,
		},
		{
			name:     "err. unknown email",
			req:      model.LoginRequest{Email: "who@sme.gov.br", Password: "s3cret!"},
			repoErr:  errs.NotFound("user 0 not found"),
			wantKind: errs.ErrUnauthorized,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			repo := repo_mocks.NewMockUserRepository(c)
			repo.EXPECT().GetUserByEmail(gomock.Any(), tt.req.Email).Return(tt.user, tt.repoErr)

			s := NewAuth(repo, tokens, zap.NewNop())
			resp, err := s.Login(context.Background(), tt.req)
			if tt.wantKind != nil {
				require.ErrorIs(t, err, tt.wantKind)
				require.Equal(t, "invalid credentials or inactive user", err.Error())
				return
			}
			require.NoError(t, err)

			claims, err := tokens.Verify(resp.Token)
			require.NoError(t, err)
			require.Equal(t, tt.user.ID, claims.ID)
			require.Equal(t, tt.user.Email, claims.Email)
			require.Equal(t, tt.user.UserType, claims.UserType)
		})
	}
}

func TestAuth_Me(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockUserRepository(c)
	s := NewAuth(repo, auth.NewTokens(auth.Config{Secret: "test"}), zap.NewNop())

	_, err := s.Me(context.Background())
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	want := model.User{ID: 8, Email: "rui@escola.com"}
	repo.EXPECT().GetUser(gomock.Any(), 8).Return(want, nil)
	ctx := auth.SetAuthContext(context.Background(), &auth.Claims{ID: 8})
	got, err := s.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
