package postgres

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"storekeep/internal/core/apperror"
)

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		status   int
	}{
		{
			name:     "unique",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "products_pkey"},
			wantCode: apperror.CodeDuplicate,
			status:   http.StatusConflict,
		},
		{
			name:     "foreign key",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "products_supplier_id_fkey"},
			wantCode: apperror.CodeValidation,
			status:   http.StatusBadRequest,
		},
		{
			name:     "check",
			err:      &pgconn.PgError{Code: "23514", ConstraintName: "inventory_units_available_check"},
			wantCode: apperror.CodeValidation,
			status:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapWriteError(tt.err, "insert products", "product")
			appErr, ok := apperror.AsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.status, apperror.GetHTTPStatus(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMapWriteError_Passthrough(t *testing.T) {
	assert.NoError(t, MapWriteError(nil, "insert", "product"))

	base := errors.New("conn closed")
	err := MapWriteError(base, "insert products", "product")
	assert.ErrorIs(t, err, base)
	assert.False(t, apperror.IsAppError(err))
	assert.Contains(t, err.Error(), "insert products")

	other := &pgconn.PgError{Code: "40001"}
	assert.False(t, apperror.IsAppError(MapWriteError(other, "insert", "product")))
}
