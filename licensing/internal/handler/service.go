package handler

import (
	"context"
	"io"

	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
	"github.com/Astemirdum/edu-licensing/licensing/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ LicenseService   = (*service.License)(nil)
	_ AuthService      = (*service.Auth)(nil)
	_ DirectoryService = (*service.Directory)(nil)
	_ CatalogService   = (*service.Catalog)(nil)
)

type LicenseService interface {
	CreateBatch(ctx context.Context, req model.CreateBatchRequest) (model.CreatedBatch, error)
	ListBatches(ctx context.Context) ([]model.BatchSummary, error)
	GetBatch(ctx context.Context, id int) (model.BatchDetail, error)
	ListSecretaryBatches(ctx context.Context, secretaryID int) ([]model.BatchSummary, error)
	UpdateBatchStatus(ctx context.Context, id int, status model.BatchStatus) (model.LicenseBatch, error)
}

type AuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	Me(ctx context.Context) (model.User, error)
}

type DirectoryService interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int) error

	CreateAddress(ctx context.Context, a model.Address) (model.Address, error)
	ListAddresses(ctx context.Context) ([]model.Address, error)
	GetAddress(ctx context.Context, id int) (model.Address, error)
	UpdateAddress(ctx context.Context, id int, a model.Address) (model.Address, error)
	DeleteAddress(ctx context.Context, id int) error

	CreateSecretary(ctx context.Context, req model.SecretaryRequest) (model.SecretaryDetail, error)
	ListSecretaries(ctx context.Context) ([]model.SecretaryDetail, error)
	GetSecretary(ctx context.Context, id int) (model.SecretaryDetail, error)
	UpdateSecretary(ctx context.Context, id int, req model.SecretaryRequest) (model.SecretaryDetail, error)
	UpdateFullSecretary(ctx context.Context, id int, req model.FullSecretaryUpdate) (model.SecretaryDetail, error)
	DeleteSecretary(ctx context.Context, id int) error
	ListSecretarySchools(ctx context.Context, secretaryID int) ([]model.SchoolDetail, error)

	CreateSchool(ctx context.Context, req model.CreateSchoolRequest) (model.SchoolDetail, error)
	ListSchools(ctx context.Context) ([]model.SchoolDetail, error)
	GetSchool(ctx context.Context, id int) (model.SchoolDetail, error)
	UpdateSchool(ctx context.Context, id int, req model.SchoolRequest) (model.SchoolDetail, error)
	UpdateFullSchool(ctx context.Context, id int, req model.FullSchoolUpdate) (model.SchoolDetail, error)
	DeleteSchool(ctx context.Context, id int) error

	CreateResponsible(ctx context.Context, req model.ResponsibleRequest) (model.Responsible, error)
	ListResponsibles(ctx context.Context) ([]model.Responsible, error)
	GetResponsible(ctx context.Context, id int) (model.Responsible, error)
	UpdateResponsible(ctx context.Context, id int, req model.ResponsibleRequest) (model.Responsible, error)
	DeleteResponsible(ctx context.Context, id int) error
}

type CatalogService interface {
	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.BookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) (model.Book, error)

	Upload(ctx context.Context, up model.Upload, r io.Reader) (model.File, error)
	ListFiles(ctx context.Context, referenceTable string, referenceID int) ([]model.File, error)
}
