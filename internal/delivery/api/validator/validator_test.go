package validator

import (
	"testing"

	domainerrors "usermgmt/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	FullName string `json:"fullName" validate:"required" msg:"required=Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"required=Please include a valid email;email=Please include a valid email"`
	Password string `json:"password" validate:"min=6"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signupRequest{FullName: "Jane", Email: "jane@example.com", Password: "secret1"})

	assert.NoError(t, err)
}

func TestValidate_CollectsFieldMessages(t *testing.T) {
	v := New()

	err := v.Validate(&signupRequest{Email: "not-an-email", Password: "123"})
	require.Error(t, err)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, map[string]string{
		"fullName": "Name is required",
		"email":    "Please include a valid email",
		"password": "password is invalid",
	}, appErr.Details())
	assert.Contains(t, appErr.Message(), "Name is required")
}
