package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yukikurage/field-service-api/internal/constants"
	"github.com/yukikurage/field-service-api/internal/models"
	"github.com/yukikurage/field-service-api/internal/repository"
	"gorm.io/gorm"
)

// CompanyService handles company lookups and membership checks.
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// GetCompany retrieves a company by ID.
func (s *CompanyService) GetCompany(ctx context.Context, companyID string) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, storageError("find company", err)
	}
	return company, nil
}

// IsMember reports whether the user belongs to the company.
func (s *CompanyService) IsMember(ctx context.Context, companyID, userID string) (bool, error) {
	if _, err := s.companyRepo.FindMember(ctx, companyID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, storageError("find company member", err)
	}
	return true, nil
}

// SearchUsers lists members matching search. A non-positive limit falls back
// to the default and large limits are capped.
func (s *CompanyService) SearchUsers(ctx context.Context, companyID, search string, limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = constants.DefaultUserSearchLimit
	}
	if limit > constants.MaxUserSearchLimit {
		limit = constants.MaxUserSearchLimit
	}

	members, err := s.companyRepo.SearchMembers(ctx, companyID, strings.TrimSpace(search), limit)
	if err != nil {
		return nil, storageError("search company members", err)
	}

	users := make([]models.User, 0, len(members))
	for _, m := range members {
		users = append(users, m.User)
	}
	return users, nil
}

// ListCompaniesForUser returns the memberships of a user with their companies.
func (s *CompanyService) ListCompaniesForUser(ctx context.Context, userID string) ([]models.CompanyUser, error) {
	memberships, err := s.companyRepo.ListMembershipsByUserID(ctx, userID)
	if err != nil {
		return nil, storageError("list memberships", err)
	}
	return memberships, nil
}
