package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/edu-licensing/pkg/auth"
	"github.com/Astemirdum/edu-licensing/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()
	tokens := auth.NewTokens(auth.Config{Secret: "secret", TokenTTL: time.Hour})
	valid, _, err := tokens.Issue(3, "sec@edu.br", "responsible_secretary")
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "ok",
			header:       "Bearer " + valid,
			expectedCode: http.StatusOK,
			expectedBody: "3:responsible_secretary",
		},
		{
			name:         "err. no header",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"no Authorization header"}`,
		},
		{
			name:         "err. not bearer",
			header:       "Basic abc",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"invalid Authorization header"}`,
		},
		{
			name:         "err. bad token",
			header:       "Bearer abc.def.ghi",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"invalid or expired token"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				claims, ok := auth.FromContext(c.Request().Context())
				if !ok {
					return c.NoContent(http.StatusInternalServerError)
				}
				return c.String(http.StatusOK, strconv.Itoa(claims.ID)+":"+claims.UserType)
			}, middleware.JwtAuthentication(tokens))

			r := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
			if tt.header != "" {
				r.Header.Set(middleware.AuthorizationHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
