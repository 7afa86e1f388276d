package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yukikurage/field-service-api/internal/models"
	"github.com/yukikurage/field-service-api/internal/repository"
	"gorm.io/gorm"
)

// WorkingOrderService manages working orders outside of job order creation.
type WorkingOrderService struct {
	orderRepo repository.WorkingOrderRepository
}

// NewWorkingOrderService creates a new WorkingOrderService
func NewWorkingOrderService(orderRepo repository.WorkingOrderRepository) *WorkingOrderService {
	return &WorkingOrderService{orderRepo: orderRepo}
}

// CreateWorkingOrderInput holds the fields of a new working order.
type CreateWorkingOrderInput struct {
	ProjectID string
	ContactID string
	Title     string
}

// UpdateWorkingOrderInput holds optional changes. Nil fields are left as is.
type UpdateWorkingOrderInput struct {
	Title    *string
	IsActive *bool
}

// ListByProject returns the active orders of a project, newest first.
func (s *WorkingOrderService) ListByProject(ctx context.Context, companyID, projectID string) ([]models.WorkingOrder, error) {
	orders, err := s.orderRepo.ListActiveByProject(ctx, companyID, projectID)
	if err != nil {
		return nil, storageError("list working orders", err)
	}
	return orders, nil
}

// Get returns a working order of the company.
func (s *WorkingOrderService) Get(ctx context.Context, companyID, orderID string) (*models.WorkingOrder, error) {
	order, err := s.orderRepo.FindByID(ctx, companyID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkingOrderNotFound
		}
		return nil, storageError("find working order", err)
	}
	return order, nil
}

// Create creates an active working order.
func (s *WorkingOrderService) Create(ctx context.Context, companyID string, input CreateWorkingOrderInput) (*models.WorkingOrder, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, newValidationError("title", "title required")
	}
	if strings.TrimSpace(input.ContactID) == "" {
		return nil, newValidationError("contactId", "contact id required")
	}

	order := &models.WorkingOrder{
		CompanyID: companyID,
		ProjectID: input.ProjectID,
		ContactID: input.ContactID,
		Title:     title,
		IsActive:  true,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, storageError("create working order", err)
	}
	return order, nil
}

// Update changes the title and/or the active flag.
func (s *WorkingOrderService) Update(ctx context.Context, companyID, orderID string, input UpdateWorkingOrderInput) (*models.WorkingOrder, error) {
	order, err := s.Get(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, newValidationError("title", "title cannot be empty")
		}
		order.Title = title
	}
	if input.IsActive != nil {
		order.IsActive = *input.IsActive
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, storageError("update working order", err)
	}
	return order, nil
}

// Delete deactivates the order. Tasks under it are kept.
func (s *WorkingOrderService) Delete(ctx context.Context, companyID, orderID string) error {
	inactive := false
	_, err := s.Update(ctx, companyID, orderID, UpdateWorkingOrderInput{IsActive: &inactive})
	return err
}
