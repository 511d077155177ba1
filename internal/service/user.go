package service

import (
	"fmt"
	"strings"

	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// Usernames that collide with routes under /users
var reservedUsernames = map[string]struct{}{
	"me":            {},
	"set_password":  {},
	"subscriptions": {},
	"subscribe":     {},
}

// UserService handles registration, profiles and credentials
type UserService struct {
	repo      repository.UserRepositoryInterface
	projector *Projector
	passwords PasswordValidator
	validator *validator.Validate
	pageSize  int
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(
	repo repository.UserRepositoryInterface,
	projector *Projector,
	passwords PasswordValidator,
	validator *validator.Validate,
	pageSize int,
) *UserService {
	return &UserService{
		repo:      repo,
		projector: projector,
		passwords: passwords,
		validator: validator,
		pageSize:  pageSize,
	}
}

// RegisterRequest represents the data needed to create an account
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254" example:"chef@example.com"`
	Username  string `json:"username" validate:"required,max=150,username" example:"chef"`
	FirstName string `json:"first_name" validate:"required,max=150" example:"Julia"`
	LastName  string `json:"last_name" validate:"required,max=150" example:"Child"`
	Password  string `json:"password" validate:"required,max=72"`
}

// SetPasswordRequest represents a password change
type SetPasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required,max=72"`
	CurrentPassword string `json:"current_password" validate:"required"`
}

// Register creates a new account
func (s *UserService) Register(req *RegisterRequest) (*UserCreatedResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if _, reserved := reservedUsernames[req.Username]; reserved {
		return nil, apperrors.NewValidationError("username", fmt.Sprintf("username %q is reserved", req.Username))
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := s.passwords.Validate(req.Password, PasswordOwner{Username: req.Username, Email: req.Email}); err != nil {
		return nil, err
	}

	if err := s.ensureUnique(req.Email, req.Username); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}
	if err := s.repo.Create(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewAlreadyExistsError("user", "with this email or username")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("user registered")

	return &UserCreatedResponse{
		Email:     user.Email,
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

// GetByID renders a user profile for actor
func (s *UserService) GetByID(id uint, actor auth.Actor) (*UserResponse, error) {
	user, err := s.load(id)
	if err != nil {
		return nil, err
	}
	response, err := s.projector.User(user, actor)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Me renders the actor's own profile
func (s *UserService) Me(actor auth.Actor) (*UserResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.ErrCredentialsNotProvided
	}
	return s.GetByID(actor.ID, actor)
}

// List returns one page of users ordered by id
func (s *UserService) List(page PageRequest, actor auth.Actor) (*Page[UserResponse], error) {
	page, limit, offset := page.normalize(s.pageSize)
	users, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	results := make([]UserResponse, 0, len(users))
	for i := range users {
		response, err := s.projector.User(&users[i], actor)
		if err != nil {
			return nil, err
		}
		results = append(results, response)
	}
	return newPage(page, total, results), nil
}

// SetPassword replaces the actor's password after verifying the current one
func (s *UserService) SetPassword(req *SetPasswordRequest, actor auth.Actor) error {
	if !actor.IsAuthenticated() {
		return apperrors.ErrCredentialsNotProvided
	}
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	user, err := s.load(actor.ID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return apperrors.NewValidationError("current_password", "invalid password")
	}
	if req.NewPassword == req.CurrentPassword {
		return apperrors.NewValidationError("new_password", "the new password must differ from the current one")
	}
	if err := s.passwords.Validate(req.NewPassword, PasswordOwner{Username: user.Username, Email: user.Email}); err != nil {
		if verr, ok := apperrors.AsValidation(err); ok {
			return apperrors.NewValidationError("new_password", verr.Message)
		}
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(user.ID, hash); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.ForActor(actor).Info("password changed")
	return nil
}

// Authenticate resolves email and password to an actor. Unknown emails and
// wrong passwords yield the same error.
func (s *UserService) Authenticate(email, password string) (auth.Actor, error) {
	user, err := s.repo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		if repository.IsNotFound(err) {
			return auth.Anonymous, apperrors.ErrInvalidCredentials
		}
		return auth.Anonymous, fmt.Errorf("failed to get user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return auth.Anonymous, apperrors.ErrInvalidCredentials
	}
	return auth.Actor{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

func (s *UserService) ensureUnique(email, username string) error {
	if _, err := s.repo.GetByEmail(email); err == nil {
		return apperrors.ErrUserEmailExists
	} else if !repository.IsNotFound(err) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.repo.GetByUsername(username); err == nil {
		return apperrors.ErrUsernameExists
	} else if !repository.IsNotFound(err) {
		return fmt.Errorf("failed to check username: %w", err)
	}
	return nil
}

func (s *UserService) load(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
