package validator_test

import (
	"testing"

	"jobstreet_backend/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Level string `json:"level" validate:"omitempty,oneof=low high"`
	Count int    `json:"count" validate:"gte=1,lte=5"`
}

func TestValidate_OK(t *testing.T) {
	v := validator.New()
	assert.NoError(t, v.Validate(sample{Email: "a@b.com", Level: "low", Count: 3}))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := validator.New()

	err := v.Validate(sample{Email: "nope", Level: "mid", Count: 9})
	require.Error(t, err)

	vErr, ok := err.(*validator.ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "level")
	assert.Contains(t, vErr.Errors, "count")
	assert.NotContains(t, vErr.Errors, "Email")
}
