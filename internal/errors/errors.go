package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // e.g. "in favorites"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error on a single input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrRecipeNotFound       = &NotFoundError{Entity: "recipe"}
	ErrTagNotFound          = &NotFoundError{Entity: "tag"}
	ErrIngredientNotFound   = &NotFoundError{Entity: "ingredient"}
	ErrFavoriteNotFound     = &NotFoundError{Entity: "favorite"}
	ErrCartItemNotFound     = &NotFoundError{Entity: "shopping cart item"}
	ErrSubscriptionNotFound = &NotFoundError{Entity: "subscription"}
)

// Already Exists Errors
var (
	ErrUserEmailExists    = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrUsernameExists     = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrFavoriteExists     = &AlreadyExistsError{Entity: "recipe", Context: "in favorites"}
	ErrCartItemExists     = &AlreadyExistsError{Entity: "recipe", Context: "in shopping cart"}
	ErrSubscriptionExists = &AlreadyExistsError{Entity: "subscription", Context: "to this author"}
)

// Authentication Errors
var (
	ErrInvalidCredentials     = &AuthenticationError{Message: "unable to log in with provided credentials"}
	ErrCredentialsNotProvided = &AuthenticationError{Message: "authentication credentials were not provided"}
	ErrInvalidToken           = &AuthenticationError{Message: "invalid or expired token"}
)

// Authorization Errors
var (
	ErrNotRecipeAuthor = &AuthorizationError{Message: "only the author can modify this recipe"}
)

// Configuration Errors
var (
	ErrUnknownImageStorage = &ConfigurationError{Message: "IMAGE_STORAGE must be either local or s3"}
	ErrS3BucketNotSet      = &ConfigurationError{Message: "S3_BUCKET must be set when IMAGE_STORAGE is s3"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// AsValidation returns the ValidationError wrapped in err, if any
func AsValidation(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
