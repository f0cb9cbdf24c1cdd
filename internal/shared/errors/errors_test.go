package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("taken"), ErrorTypeConflict, http.StatusConflict},
		{"unauthorized", NewUnauthorizedError("who"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("no"), ErrorTypeForbidden, http.StatusForbidden},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"too many", NewTooManyRequestsError("slow down"), ErrorTypeTooManyRequests, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppError_ErrorIncludesDetails(t *testing.T) {
	err := NewValidationError("invalid coverage", "sum is 99.0", "expected 100")
	assert.Equal(t, "validation_error: invalid coverage (sum is 99.0; expected 100)", err.Error())
	assert.Equal(t, "not_found: record", NewNotFoundError("record").Error())
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create record: %w", NewConflictError("plot taken"))

	assert.True(t, IsConflictError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.NotNil(t, GetAppError(wrapped))
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry '1-2-0' for key 'uk_plot_claim'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: plot_claims.plot_id")))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}

func TestIsForeignKeyError(t *testing.T) {
	assert.True(t, IsForeignKeyError(fmt.Errorf("Error 1451: Cannot delete or update a parent row: a foreign key constraint fails")))
	assert.True(t, IsForeignKeyError(fmt.Errorf("FOREIGN KEY constraint failed")))
	assert.False(t, IsForeignKeyError(fmt.Errorf("UNIQUE constraint failed: plot_claims.plot_id")))
	assert.False(t, IsForeignKeyError(nil))
}
