package repository

import (
	"context"
	"strings"

	"github.com/yukikurage/field-service-api/internal/models"
	"gorm.io/gorm"
)

// GormCompanyRepository is a GORM implementation of CompanyRepository
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Create creates a new company
func (r *GormCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// FindByID finds a company by ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// AddMember adds a user to a company
func (r *GormCompanyRepository) AddMember(ctx context.Context, member *models.CompanyUser) error {
	return r.db.WithContext(ctx).Omit("Company", "User").Create(member).Error
}

// FindMember finds a specific company membership
func (r *GormCompanyRepository) FindMember(ctx context.Context, companyID, userID string) (*models.CompanyUser, error) {
	var member models.CompanyUser
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND user_id = ?", companyID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembershipsByUserID lists all companies a user belongs to
func (r *GormCompanyRepository) ListMembershipsByUserID(ctx context.Context, userID string) ([]models.CompanyUser, error) {
	var memberships []models.CompanyUser
	if err := r.db.WithContext(ctx).
		Preload("Company").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// SearchMembers lists members of a company matching search
func (r *GormCompanyRepository) SearchMembers(ctx context.Context, companyID, search string, limit int) ([]models.CompanyUser, error) {
	var members []models.CompanyUser

	query := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = company_users.user_id").
		Where("company_users.company_id = ?", companyID)

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(users.email) LIKE ? OR LOWER(users.name) LIKE ? OR LOWER(users.surname) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := query.
		Preload("User").
		Order("users.name ASC, users.email ASC").
		Limit(limit).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
