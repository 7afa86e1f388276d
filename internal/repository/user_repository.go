package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/field-service-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateUser is returned when creating a user fails inside the signup transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateCompany is returned when creating a company fails inside the signup transaction.
	ErrCreateCompany = errors.New("user repository: create company failed")
	// ErrCreateCompanyUser is returned when creating the membership fails inside the signup transaction.
	ErrCreateCompanyUser = errors.New("user repository: create company membership failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// CreateWithCompany creates a user, a company, and the owner membership atomically.
func (r *GormUserRepository) CreateWithCompany(ctx context.Context, user *models.User, company *models.Company, member *models.CompanyUser) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		if err := tx.Create(company).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateCompany, err)
		}

		member.CompanyID = company.ID
		member.UserID = user.ID

		if err := tx.Omit("Company", "User").Create(member).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateCompanyUser, err)
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
