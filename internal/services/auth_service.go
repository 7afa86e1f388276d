package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/field-service-api/internal/constants"
	"github.com/yukikurage/field-service-api/internal/models"
	"github.com/yukikurage/field-service-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordTooShort     = newValidationError("password", fmt.Sprintf("must be at least %d characters", constants.MinPasswordLength))
	ErrInvalidEmail         = newValidationError("email", "valid email required")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// SignupInput represents the required information to create a new user.
// When CompanyName is set, a company owned by the new user is created too.
type SignupInput struct {
	Email       string
	Password    string
	Name        *string
	Surname     *string
	CompanyName string
}

// Signup creates a new user, and optionally the company they own.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageError("check email", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		Name:         nonEmpty(input.Name),
		Surname:      nonEmpty(input.Surname),
		PasswordHash: string(hashedPassword),
	}

	companyName := strings.TrimSpace(input.CompanyName)
	if companyName == "" {
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, storageError("create user", err)
		}
		return user, nil
	}

	company := &models.Company{Name: companyName}
	member := &models.CompanyUser{Role: models.RoleOwner}
	if err := s.userRepo.CreateWithCompany(ctx, user, company, member); err != nil {
		return nil, storageError("complete signup", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storageError("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageError("find user", err)
	}

	return user, nil
}
