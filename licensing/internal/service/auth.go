package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
	"github.com/Astemirdum/edu-licensing/licensing/internal/repository"
	"github.com/Astemirdum/edu-licensing/pkg/auth"
)

var errInvalidCredentials = errs.New(errs.ErrUnauthorized, "invalid credentials or inactive user")

type Auth struct {
	repo   repository.UserRepository
	tokens *auth.Tokens
	log    *zap.Logger
}

func NewAuth(repo repository.UserRepository, tokens *auth.Tokens, log *zap.Logger) *Auth {
	return &Auth{
		repo:   repo,
		tokens: tokens,
		log:    log.Named("auth"),
	}
}

func (s *Auth) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.LoginResponse{}, errInvalidCredentials
		}
		return model.LoginResponse{}, err
	}
	if !user.Status || !auth.CheckPassword(user.Password, req.Password) {
		return model.LoginResponse{}, errInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(user.ID, user.Email, user.UserType)
	if err != nil {
		return model.LoginResponse{}, err
	}
	s.log.Debug("login", zap.Int("user_id", user.ID))
	return model.LoginResponse{Token: token, ExpiresAt: exp}, nil
}

// Me resolves the caller from the claims the auth middleware put into ctx.
func (s *Auth) Me(ctx context.Context) (model.User, error) {
	claims, ok := auth.FromContext(ctx)
	if !ok {
		return model.User{}, errs.New(errs.ErrUnauthorized, "missing token")
	}
	return s.repo.GetUser(ctx, claims.ID)
}
