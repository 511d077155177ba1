package service

import (
	"strings"
	"unicode"

	apperrors "foodgram-backend/internal/errors"
)

const (
	minPasswordLength = 8
	// bcrypt only accepts this many bytes
	maxPasswordBytes = 72
)

// PasswordValidator decides whether a password is acceptable for a user
type PasswordValidator interface {
	Validate(password string, user PasswordOwner) error
}

// PasswordOwner is the account a password is checked against
type PasswordOwner struct {
	Username string
	Email    string
}

// DefaultPasswordValidator rejects short, all-digit and look-alike passwords
type DefaultPasswordValidator struct {
	MinLength int
}

// NewDefaultPasswordValidator creates the default password validator
func NewDefaultPasswordValidator() *DefaultPasswordValidator {
	return &DefaultPasswordValidator{MinLength: minPasswordLength}
}

// Validate returns a ValidationError on field "password" for weak or
// unhashable passwords
func (v *DefaultPasswordValidator) Validate(password string, user PasswordOwner) error {
	if len(password) > maxPasswordBytes {
		return apperrors.NewValidationError("password", "this password is too long")
	}
	if len([]rune(password)) < v.MinLength {
		return apperrors.NewValidationError("password", "this password is too short")
	}
	if strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
		return apperrors.NewValidationError("password", "this password is entirely numeric")
	}
	for _, attr := range []string{user.Username, user.Email} {
		if attr != "" && strings.EqualFold(password, attr) {
			return apperrors.NewValidationError("password", "this password is too similar to your account details")
		}
	}
	return nil
}
