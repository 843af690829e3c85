package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
	"github.com/Astemirdum/edu-licensing/licensing/internal/repository"
	"github.com/Astemirdum/edu-licensing/pkg/auth"
)

const schoolUserType = "responsible_school"

type Directory struct {
	repo repository.DirectoryRepository
	log  *zap.Logger
}

func NewDirectory(repo repository.DirectoryRepository, log *zap.Logger) *Directory {
	return &Directory{
		repo: repo,
		log:  log.Named("directory"),
	}
}

func (s *Directory) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	user, err := newUser(req, model.DefaultUserType)
	if err != nil {
		return model.User{}, err
	}
	return s.repo.CreateUser(ctx, user)
}

func newUser(req model.CreateUserRequest, defaultType string) (model.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.User{}, err
	}
	userType := req.UserType
	if userType == "" {
		userType = defaultType
	}
	return model.User{Email: req.Email, Password: hash, UserType: userType}, nil
}

// hashUpdate replaces a non-blank password with its hash; a blank one leaves the stored hash untouched.
func hashUpdate(req model.UpdateUserRequest) (model.UpdateUserRequest, error) {
	if strings.TrimSpace(req.Password) == "" {
		req.Password = ""
		return req, nil
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return req, err
	}
	req.Password = hash
	return req, nil
}

func (s *Directory) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Directory) GetUser(ctx context.Context, id int) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Directory) UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (model.User, error) {
	req, err := hashUpdate(req)
	if err != nil {
		return model.User{}, err
	}
	return s.repo.UpdateUser(ctx, id, req)
}

func (s *Directory) DeleteUser(ctx context.Context, id int) error {
	return s.repo.DeleteUser(ctx, id)
}

func (s *Directory) CreateAddress(ctx context.Context, a model.Address) (model.Address, error) {
	return s.repo.CreateAddress(ctx, a)
}

func (s *Directory) ListAddresses(ctx context.Context) ([]model.Address, error) {
	return s.repo.ListAddresses(ctx)
}

func (s *Directory) GetAddress(ctx context.Context, id int) (model.Address, error) {
	return s.repo.GetAddress(ctx, id)
}

func (s *Directory) UpdateAddress(ctx context.Context, id int, a model.Address) (model.Address, error) {
	a.ID = id
	return s.repo.UpdateAddress(ctx, a)
}

func (s *Directory) DeleteAddress(ctx context.Context, id int) error {
	return s.repo.DeleteAddress(ctx, id)
}

func (s *Directory) CreateSecretary(ctx context.Context, req model.SecretaryRequest) (model.SecretaryDetail, error) {
	if req.Address == nil {
		return model.SecretaryDetail{}, errs.Validation("address is required to create a secretary")
	}
	id, err := s.repo.CreateSecretary(ctx, req)
	if err != nil {
		return model.SecretaryDetail{}, err
	}
	s.log.Info("secretary created", zap.Int("secretary_id", id))
	return s.repo.GetSecretaryDetail(ctx, id)
}

func (s *Directory) ListSecretaries(ctx context.Context) ([]model.SecretaryDetail, error) {
	return s.repo.ListSecretaries(ctx)
}

func (s *Directory) GetSecretary(ctx context.Context, id int) (model.SecretaryDetail, error) {
	return s.repo.GetSecretaryDetail(ctx, id)
}

func (s *Directory) UpdateSecretary(ctx context.Context, id int, req model.SecretaryRequest) (model.SecretaryDetail, error) {
	if err := s.repo.UpdateSecretary(ctx, id, req); err != nil {
		return model.SecretaryDetail{}, err
	}
	return s.repo.GetSecretaryDetail(ctx, id)
}

func (s *Directory) UpdateFullSecretary(ctx context.Context, id int, req model.FullSecretaryUpdate) (model.SecretaryDetail, error) {
	user, err := hashUpdate(req.User)
	if err != nil {
		return model.SecretaryDetail{}, err
	}
	req.User = user
	if err := s.repo.UpdateFullSecretary(ctx, id, req); err != nil {
		return model.SecretaryDetail{}, err
	}
	return s.repo.GetSecretaryDetail(ctx, id)
}

func (s *Directory) DeleteSecretary(ctx context.Context, id int) error {
	if err := s.repo.DeleteSecretary(ctx, id); err != nil {
		return err
	}
	s.log.Info("secretary deleted", zap.Int("secretary_id", id))
	return nil
}

func (s *Directory) ListSecretarySchools(ctx context.Context, secretaryID int) ([]model.SchoolDetail, error) {
	return s.repo.ListSchoolsBySecretary(ctx, secretaryID)
}

func validateSchool(req model.SchoolRequest) error {
	if !req.IsPrivate && req.SecretaryID == nil {
		return errs.Validation("public schools must be linked to a secretary_id")
	}
	return nil
}

// CreateSchool registers the school together with its address, the responsible and the responsible's login.
func (s *Directory) CreateSchool(ctx context.Context, req model.CreateSchoolRequest) (model.SchoolDetail, error) {
	if err := validateSchool(req.SchoolRequest); err != nil {
		return model.SchoolDetail{}, err
	}
	if req.Address == nil || req.User == nil || req.Responsible == nil {
		return model.SchoolDetail{}, errs.Validation("address, user and responsible are required")
	}
	user, err := newUser(*req.User, schoolUserType)
	if err != nil {
		return model.SchoolDetail{}, err
	}

	id, err := s.repo.CreateSchool(ctx, model.NewSchool{
		School: model.School{
			Name:        req.Name,
			IsPrivate:   req.IsPrivate,
			SecretaryID: req.SecretaryID,
		},
		Address: *req.Address,
		User:    user,
		Responsible: model.Responsible{
			Name:     req.Responsible.Name,
			Role:     req.Responsible.Role,
			Whatsapp: req.Responsible.Whatsapp,
			Phone:    req.Responsible.Phone,
		},
	})
	if err != nil {
		return model.SchoolDetail{}, err
	}
	s.log.Info("school created", zap.Int("school_id", id))
	return s.repo.GetSchoolDetail(ctx, id)
}

func (s *Directory) ListSchools(ctx context.Context) ([]model.SchoolDetail, error) {
	return s.repo.ListSchools(ctx)
}

func (s *Directory) GetSchool(ctx context.Context, id int) (model.SchoolDetail, error) {
	return s.repo.GetSchoolDetail(ctx, id)
}

func (s *Directory) UpdateSchool(ctx context.Context, id int, req model.SchoolRequest) (model.SchoolDetail, error) {
	if err := validateSchool(req); err != nil {
		return model.SchoolDetail{}, err
	}
	if err := s.repo.UpdateSchool(ctx, id, req); err != nil {
		return model.SchoolDetail{}, err
	}
	return s.repo.GetSchoolDetail(ctx, id)
}

func (s *Directory) UpdateFullSchool(ctx context.Context, id int, req model.FullSchoolUpdate) (model.SchoolDetail, error) {
	if err := validateSchool(req.School); err != nil {
		return model.SchoolDetail{}, err
	}
	user, err := hashUpdate(req.User)
	if err != nil {
		return model.SchoolDetail{}, err
	}
	req.User = user
	if err := s.repo.UpdateFullSchool(ctx, id, req); err != nil {
		return model.SchoolDetail{}, err
	}
	return s.repo.GetSchoolDetail(ctx, id)
}

func (s *Directory) DeleteSchool(ctx context.Context, id int) error {
	if err := s.repo.DeleteSchool(ctx, id); err != nil {
		return err
	}
	s.log.Info("school deleted", zap.Int("school_id", id))
	return nil
}

func (s *Directory) CreateResponsible(ctx context.Context, req model.ResponsibleRequest) (model.Responsible, error) {
	if req.UserID <= 0 || req.SecretaryID == nil {
		return model.Responsible{}, errs.Validation("user_id and secretary_id are required")
	}
	return s.repo.CreateResponsible(ctx, req)
}

func (s *Directory) ListResponsibles(ctx context.Context) ([]model.Responsible, error) {
	return s.repo.ListResponsibles(ctx)
}

func (s *Directory) GetResponsible(ctx context.Context, id int) (model.Responsible, error) {
	return s.repo.GetResponsible(ctx, id)
}

func (s *Directory) UpdateResponsible(ctx context.Context, id int, req model.ResponsibleRequest) (model.Responsible, error) {
	if req.UserID <= 0 {
		return model.Responsible{}, errs.Validation("user_id is required")
	}
	return s.repo.UpdateResponsible(ctx, id, req)
}

func (s *Directory) DeleteResponsible(ctx context.Context, id int) error {
	return s.repo.DeleteResponsible(ctx, id)
}
