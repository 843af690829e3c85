package errs_test

import (
	"net/http"
	"testing"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "validation",
			err:         errs.Validation("quantity must be greater than zero"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "quantity must be greater than zero",
		},
		{
			name:        "wrapped not found",
			err:         errors.Wrap(errs.NotFound("license batch 4 not found"), "GetBatch"),
			wantCode:    http.StatusNotFound,
			wantMessage: "license batch 4 not found",
		},
		{
			name:        "bare conflict",
			err:         errors.Wrap(errs.ErrConflict, "CreateBatch"),
			wantCode:    http.StatusConflict,
			wantMessage: "CreateBatch: conflict",
		},
		{
			name:        "business rule",
			err:         errs.New(errs.ErrBusinessRule, "can only be sent from CRIADO"),
			wantCode:    http.StatusUnprocessableEntity,
			wantMessage: "can only be sent from CRIADO",
		},
		{
			name:        "internal",
			err:         errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.wantCode, errs.HTTPStatus(tt.err))
			require.Equal(t, tt.wantMessage, errs.Message(tt.err))
		})
	}
}
