package validator

import (
	"testing"

	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email  string `json:"email" form:"email" validate:"required,email"`
	Locale string `form:"locale" validate:"omitempty,oneof=en ar"`
}

func TestEchoValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signup{Email: "a@b.co", Locale: "ar"}))

	err := v.Validate(&signup{Email: "nope", Locale: "fr"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	validationErr, ok := errors.AsType[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"email":  "must be a valid email address",
		"locale": "must be one of: en ar",
	}, validationErr.Fields())

	err = v.Validate(&signup{})
	validationErr, ok = errors.AsType[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.Equal(t, "is required", validationErr.Field("email"))
}
