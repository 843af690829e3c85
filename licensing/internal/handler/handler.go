package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/Astemirdum/edu-licensing/licensing/docs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	md "github.com/Astemirdum/edu-licensing/pkg/middleware"
	"github.com/Astemirdum/edu-licensing/pkg/validate"
)

type Handler struct {
	licenseSvc   LicenseService
	authSvc      AuthService
	directorySvc DirectoryService
	catalogSvc   CatalogService
	tokens       md.TokenVerifier
	log          *zap.Logger
}

func New(
	licenseSvc LicenseService,
	authSvc AuthService,
	directorySvc DirectoryService,
	catalogSvc CatalogService,
	tokens md.TokenVerifier,
	log *zap.Logger,
) *Handler {
	return &Handler{
		licenseSvc:   licenseSvc,
		authSvc:      authSvc,
		directorySvc: directorySvc,
		catalogSvc:   catalogSvc,
		tokens:       tokens,
		log:          log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/auth/login", h.Login)
	api.POST("/users", h.CreateUser)

	api = api.Group("", md.JwtAuthentication(h.tokens))

	api.GET("/users", h.ListUsers)
	api.GET("/users/me", h.Me)
	api.GET("/users/:id", h.GetUser)
	api.PUT("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.DeleteUser)

	api.POST("/addresses", h.CreateAddress)
	api.GET("/addresses", h.ListAddresses)
	api.GET("/addresses/:id", h.GetAddress)
	api.PUT("/addresses/:id", h.UpdateAddress)
	api.DELETE("/addresses/:id", h.DeleteAddress)

	api.POST("/secretaries", h.CreateSecretary)
	api.GET("/secretaries", h.ListSecretaries)
	api.GET("/secretaries/:id", h.GetSecretary)
	api.PUT("/secretaries/:id", h.UpdateSecretary)
	api.PUT("/secretaries/full/:id", h.UpdateFullSecretary)
	api.DELETE("/secretaries/:id", h.DeleteSecretary)
	api.GET("/secretaries/:id/schools", h.ListSecretarySchools)
	api.GET("/secretaries/:id/license-batches", h.ListSecretaryBatches)

	api.POST("/schools", h.CreateSchool)
	api.GET("/schools", h.ListSchools)
	api.GET("/schools/:id", h.GetSchool)
	api.PUT("/schools/:id", h.UpdateSchool)
	api.PUT("/schools/full/:id", h.UpdateFullSchool)
	api.DELETE("/schools/:id", h.DeleteSchool)

	api.POST("/responsibles", h.CreateResponsible)
	api.GET("/responsibles", h.ListResponsibles)
	api.GET("/responsibles/:id", h.GetResponsible)
	api.PUT("/responsibles/:id", h.UpdateResponsible)
	api.DELETE("/responsibles/:id", h.DeleteResponsible)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.POST("/files", h.UploadFile)
	api.GET("/files/:reference_table/:reference_id", h.ListFiles)

	api.POST("/license-batches", h.CreateBatch)
	api.GET("/license-batches", h.ListBatches)
	api.GET("/license-batches/:id", h.GetBatch)
	api.PATCH("/license-batches/:id/status", h.UpdateBatchStatus)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// fail converts a service error into the HTTP error returned to the caller.
func (h *Handler) fail(c echo.Context, err error) error {
	code := errs.HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	return echo.NewHTTPError(code, errs.Message(err))
}

func bindValid(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func idParam(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
