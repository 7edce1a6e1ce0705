package impl

import (
	"usermgmt/internal/domain/entity"
	domainerrors "usermgmt/internal/domain/errors"
)

const (
	msgPasswordTooShort = "Please enter a password with 6 or more characters"
	msgPasswordTooLong  = "Password must be 72 bytes or fewer"
)

// checkPasswordLength enforces the length bounds on a new plaintext password and reports
// violations under field.
func checkPasswordLength(field, password string) error {
	switch {
	case len(password) < entity.MinPasswordLength:
		return domainerrors.ErrValidationFailed.WithDetails(map[string]string{field: msgPasswordTooShort})
	case len(password) > entity.MaxPasswordBytes:
		return domainerrors.ErrValidationFailed.WithDetails(map[string]string{field: msgPasswordTooLong})
	default:
		return nil
	}
}
