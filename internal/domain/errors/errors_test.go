package errors

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewValidationError_EnumeratesFields(t *testing.T) {
	err := NewValidationError("Missing or invalid fields", "destination", "durationDays")

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, CodeValidation, err.ErrorCode())
	assert.Equal(t, "Missing or invalid fields: destination, durationDays", err.Message())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	derived := ErrItineraryNotFound.WithDetails("id=42")

	assert.ErrorIs(t, derived, ErrItineraryNotFound)
	assert.ErrorIs(t, derived, ErrNotFound)
	assert.NotErrorIs(t, derived, ErrForbidden)
}

func TestUpstreamError_KeepsProviderMessageInDetails(t *testing.T) {
	cause := errors.New("overloaded_error: try later")
	err := NewUpstreamError("directions", cause)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, CodeUpstream, err.ErrorCode())
	assert.NotContains(t, err.Message(), "overloaded")
	assert.Equal(t, cause.Error(), err.Details())
	assert.ErrorIs(t, err, cause)
}

func TestNewGenerationError_UsesGenerationCode(t *testing.T) {
	err := NewGenerationError("anthropic", context.DeadlineExceeded)

	assert.Equal(t, CodeGeneration, err.ErrorCode())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, IsKind(errors.Wrap(err, "generate itinerary"), CodeGeneration))
}

func TestAsAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "wrapped app error", err: errors.Wrap(ErrForbidden, "update itinerary"), wantCode: CodeForbidden},
		{name: "database error", err: NewDatabaseExecuteError(errors.New("conn reset"), "insert"), wantCode: CodeDatabaseExecute},
		{name: "plain error", err: errors.New("boom"), wantCode: CodeUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, AsAppError(tt.err).ErrorCode())
		})
	}

	assert.Nil(t, AsAppError(nil))
}
