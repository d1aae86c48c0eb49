package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("name too short"), KindValidation},
		{"not found", NotFound("plan not found"), KindNotFound},
		{"conflict", Conflict("name already exists"), KindConflict},
		{"wrapped", fmt.Errorf("handler: %w", NotFound("module not found")), KindNotFound},
		{"plain", errors.New("boom"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, HTTPStatus(Validation("bad input")))
	assert.Equal(t, 404, HTTPStatus(NotFound("missing")))
	assert.Equal(t, 409, HTTPStatus(Conflict("duplicate")))
	assert.Equal(t, 500, HTTPStatus(errors.New("db down")))
}

func TestWrapKeepsKind(t *testing.T) {
	cause := errors.New("unique constraint")
	err := Wrap(Conflict("plan name already exists"), cause)

	assert.True(t, IsConflict(err))
	assert.ErrorIs(t, err, cause)
}
