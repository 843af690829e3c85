package handler_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/handler"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
	"github.com/Astemirdum/edu-licensing/pkg/auth"
	"github.com/Astemirdum/edu-licensing/pkg/validate"

	service_mocks "github.com/Astemirdum/edu-licensing/licensing/internal/handler/mocks"
)

type mocks struct {
	license   *service_mocks.MockLicenseService
	auth      *service_mocks.MockAuthService
	directory *service_mocks.MockDirectoryService
	catalog   *service_mocks.MockCatalogService
}

func newHandler(t *testing.T, tokens *auth.Tokens) (*handler.Handler, mocks) {
	c := gomock.NewController(t)
	m := mocks{
		license:   service_mocks.NewMockLicenseService(c),
		auth:      service_mocks.NewMockAuthService(c),
		directory: service_mocks.NewMockDirectoryService(c),
		catalog:   service_mocks.NewMockCatalogService(c),
	}
	if tokens == nil {
		tokens = auth.NewTokens(auth.Config{Secret: "test"})
	}
	log := zap.NewExample().Named("test")
	return handler.New(m.license, m.auth, m.directory, m.catalog, tokens, log), m
}

func intPtr(v int) *int { return &v }

var created = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func TestHandler_CreateBatch(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"book_id":7,"quantity":3,"secretary_id":2}`,
			mockBehavior: func(m mocks) {
				m.license.EXPECT().
					CreateBatch(gomock.Any(), model.CreateBatchRequest{BookID: 7, Quantity: 3, SecretaryID: intPtr(2)}).
					Return(model.CreatedBatch{
						LicenseBatch: model.LicenseBatch{
							ID:           1,
							BookID:       7,
							Quantity:     3,
							CustomerType: model.CustomerSecretary,
							SecretaryID:  intPtr(2),
							Status:       model.BatchCreated,
							CreatedAt:    created,
						},
						KeysGenerated: 3,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"book_id":7,"quantity":3,"customer_type":"SECRETARY","secretary_id":2,"school_id":null,"parent_batch_id":null,"status":"CRIADO","createdAt":"2025-03-01T10:00:00Z","sentAt":null,"receivedAt":null,"keys_generated":3}`,
			},
		},
		{
			name: "err. validation",
			body: `{"book_id":7,"quantity":3,"secretary_id":2,"school_id":5}`,
			mockBehavior: func(m mocks) {
				m.license.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
					Return(model.CreatedBatch{}, errs.Validation("exactly one of secretary_id or school_id must be provided"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"exactly one of secretary_id or school_id must be provided"}`,
			},
		},
		{
			name:         "err. bad body",
			body:         `{"book_id":"seven"}`,
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid request body"}`,
			},
		},
		{
			name:         "err. quantity over limit",
			body:         `{"book_id":7,"quantity":100001,"secretary_id":2}`,
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateBatchRequest.Quantity' Error:Field validation for 'Quantity' failed on the 'lte' tag"}`,
			},
		},
		{
			name: "err. book not found",
			body: `{"book_id":70,"quantity":3,"school_id":5}`,
			mockBehavior: func(m mocks) {
				m.license.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
					Return(model.CreatedBatch{}, errs.NotFound("book 70 not found"))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"book 70 not found"}`,
			},
		},
		{
			name: "err. code collision",
			body: `{"book_id":7,"quantity":3,"school_id":5}`,
			mockBehavior: func(m mocks) {
				m.license.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
					Return(model.CreatedBatch{}, errs.New(errs.ErrConflict, "license key code collision, batch was not created"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"license key code collision, batch was not created"}`,
			},
		},
		{
			name: "err. internal",
			body: `{"book_id":7,"quantity":3,"school_id":5}`,
			mockBehavior: func(m mocks) {
				m.license.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
					Return(model.CreatedBatch{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"Internal Server Error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newHandler(t, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/license-batches", h.CreateBatch)

			r := httptest.NewRequest(http.MethodPost, "/license-batches", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(m)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateBatchStatus(t *testing.T) {
	t.Parallel()
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		path         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			path: "/license-batches/4/status",
			body: `{"status":"ENVIADO"}`,
			mockBehavior: func(m mocks) {
				m.license.EXPECT().UpdateBatchStatus(gomock.Any(), 4, model.BatchSent).
					Return(model.LicenseBatch{
						ID:           4,
						BookID:       7,
						Quantity:     1,
						CustomerType: model.CustomerSchool,
						SchoolID:     intPtr(5),
						Status:       model.BatchSent,
						CreatedAt:    created,
						SentAt:       &created,
						ReceivedAt:   &created,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":4,"book_id":7,"quantity":1,"customer_type":"SCHOOL","secretary_id":null,"school_id":5,"parent_batch_id":null,"status":"ENVIADO","createdAt":"2025-03-01T10:00:00Z","sentAt":"2025-03-01T10:00:00Z","receivedAt":"2025-03-01T10:00:00Z"}`,
		},
		{
			name: "err. already sent",
			path: "/license-batches/4/status",
			body: `{"status":"ENVIADO"}`,
			mockBehavior: func(m mocks) {
				m.license.EXPECT().UpdateBatchStatus(gomock.Any(), 4, model.BatchSent).
					Return(model.LicenseBatch{}, errs.New(errs.ErrBusinessRule, "batch can only be set to ENVIADO from CRIADO, current status is ENVIADO"))
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"message":"batch can only be set to ENVIADO from CRIADO, current status is ENVIADO"}`,
		},
		{
			name: "err. wrong target",
			path: "/license-batches/4/status",
			body: `{"status":"RECEBIDO"}`,
			mockBehavior: func(m mocks) {
				m.license.EXPECT().UpdateBatchStatus(gomock.Any(), 4, model.BatchReceived).
					Return(model.LicenseBatch{}, errs.Validation("invalid status, only ENVIADO is accepted"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid status, only ENVIADO is accepted"}`,
		},
		{
			name: "err. not found",
			path: "/license-batches/40/status",
			body: `{"status":"ENVIADO"}`,
			mockBehavior: func(m mocks) {
				m.license.EXPECT().UpdateBatchStatus(gomock.Any(), 40, model.BatchSent).
					Return(model.LicenseBatch{}, errs.NotFound("license batch 40 not found"))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"license batch 40 not found"}`,
		},
		{
			name:         "err. bad id",
			path:         "/license-batches/abc/status",
			body:         `{"status":"ENVIADO"}`,
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid id"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newHandler(t, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PATCH("/license-batches/:id/status", h.UpdateBatchStatus)

			r := httptest.NewRequest(http.MethodPatch, tt.path, strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(m)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetBatch(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t, nil)
	m.license.EXPECT().GetBatch(gomock.Any(), 9).Return(model.BatchDetail{
		LicenseBatch: model.LicenseBatch{ID: 9, BookID: 7, Quantity: 1, CustomerType: model.CustomerSecretary, SecretaryID: intPtr(2), Status: model.BatchCreated, CreatedAt: created},
		Book:         model.BookRef{ID: 7, Title: "Matemática 1"},
		Keys: []model.LicenseKey{
			{ID: 1, BatchID: 9, Code: "SME-2025-0A1B2C3D", Status: model.KeyAvailable, CreatedAt: created},
		},
	}, nil)

	e := echo.New()
	e.GET("/license-batches/:id", h.GetBatch)
	r := httptest.NewRequest(http.MethodGet, "/license-batches/9", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"id":9,"book_id":7,"quantity":1,"customer_type":"SECRETARY","secretary_id":2,"school_id":null,"parent_batch_id":null,"status":"CRIADO","createdAt":"2025-03-01T10:00:00Z","sentAt":null,"receivedAt":null,"book":{"id":7,"title":"Matemática 1"},"keys":[{"id":1,"batch_id":9,"code":"SME-2025-0A1B2C3D","status":"DISPONIVEL","createdAt":"2025-03-01T10:00:00Z","activatedAt":null}]}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name         string
		body         string
		mockBehavior func(m mocks)
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: `{"email":"ana@sme.gov.br","password":"s3cret!"}`,
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().Login(gomock.Any(), model.LoginRequest{Email: "ana@sme.gov.br", Password: "s3cret!"}).
					Return(model.LoginResponse{Token: "tkn", ExpiresAt: created}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"token":"tkn","expires_at":"2025-03-01T10:00:00Z"}`,
		},
		{
			name: "err. bad credentials",
			body: `{"email":"ana@sme.gov.br","password":"nope"}`,
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(model.LoginResponse{}, errs.New(errs.ErrUnauthorized, "invalid credentials or inactive user"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"invalid credentials or inactive user"}`,
		},
		{
			name:         "err. missing password",
			body:         `{"email":"ana@sme.gov.br"}`,
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newHandler(t, nil)
			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/auth/login", h.Login)

			r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(m)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestRouter_Auth(t *testing.T) {
	t.Parallel()
	tokens := auth.NewTokens(auth.Config{Secret: "test", TokenTTL: time.Hour})
	token, _, err := tokens.Issue(8, "rui@escola.com", "default_user")
	require.NoError(t, err)

	h, m := newHandler(t, tokens)
	router := h.NewRouter()

	t.Run("health is public", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/license-batches", http.NoBody))
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, `{"message":"no Authorization header"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("bad token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/license-batches", http.NoBody)
		r.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me", func(t *testing.T) {
		m.auth.EXPECT().Me(gomock.Any()).
			DoAndReturn(func(ctx context.Context) (model.User, error) {
				claims, ok := auth.FromContext(ctx)
				require.True(t, ok)
				require.Equal(t, 8, claims.ID)
				return model.User{ID: 8, Email: "rui@escola.com", UserType: "default_user", Status: true, CreatedAt: created}, nil
			})
		r := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", http.NoBody)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"id":8,"email":"rui@escola.com","user_type":"default_user","status":true,"createdAt":"2025-03-01T10:00:00Z"}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("secretary batches", func(t *testing.T) {
		m.license.EXPECT().ListSecretaryBatches(gomock.Any(), 2).Return([]model.BatchSummary{}, nil)
		r := httptest.NewRequest(http.MethodGet, "/api/v1/secretaries/2/license-batches", http.NoBody)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `[]`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_UploadFile(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t, nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("reference_table", "books"))
	require.NoError(t, mw.WriteField("reference_id", "7"))
	fw, err := mw.CreateFormFile("file", "capa.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("data"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	m.catalog.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, up model.Upload, _ io.Reader) (model.File, error) {
			require.Equal(t, "books", up.ReferenceTable)
			require.Equal(t, 7, up.ReferenceID)
			require.Equal(t, "capa.png", up.Filename)
			require.Equal(t, int64(4), up.Size)
			return model.File{ID: 1, ReferenceTable: "books", ReferenceID: 7, Name: "capa.png", FilePath: "uploads/books/7/x-capa.png", CreatedAt: created}, nil
		})

	e := echo.New()
	e.POST("/files", h.UploadFile)
	r := httptest.NewRequest(http.MethodPost, "/files", &body)
	r.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t,
		`{"id":1,"reference_table":"books","reference_id":7,"name":"capa.png","file_path":"uploads/books/7/x-capa.png","createdAt":"2025-03-01T10:00:00Z"}`,
		strings.Trim(w.Body.String(), "\n"))
}
