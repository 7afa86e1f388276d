package repository

import (
	"context"

	"github.com/yukikurage/field-service-api/internal/database"
	"github.com/yukikurage/field-service-api/internal/models"
	"gorm.io/gorm"
)

// GormWorkingOrderRepository is a GORM implementation of WorkingOrderRepository
type GormWorkingOrderRepository struct {
	db *gorm.DB
}

// NewWorkingOrderRepository creates a new WorkingOrderRepository
func NewWorkingOrderRepository(db *gorm.DB) WorkingOrderRepository {
	return &GormWorkingOrderRepository{db: db}
}

// Create creates a new working order
func (r *GormWorkingOrderRepository) Create(ctx context.Context, order *models.WorkingOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByID finds a working order of the company by ID
func (r *GormWorkingOrderRepository) FindByID(ctx context.Context, companyID, id string) (*models.WorkingOrder, error) {
	var order models.WorkingOrder
	if err := r.db.WithContext(ctx).
		Scopes(database.ForCompany(companyID)).
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListActiveByProject lists the active working orders of a project, newest first
func (r *GormWorkingOrderRepository) ListActiveByProject(ctx context.Context, companyID, projectID string) ([]models.WorkingOrder, error) {
	var orders []models.WorkingOrder
	if err := r.db.WithContext(ctx).
		Scopes(database.ForCompany(companyID)).
		Where("project_id = ? AND is_active = ?", projectID, true).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Update saves title and active flag of a working order
func (r *GormWorkingOrderRepository) Update(ctx context.Context, order *models.WorkingOrder) error {
	return r.db.WithContext(ctx).
		Model(order).
		Select("title", "is_active").
		Updates(order).Error
}
