package repository

import (
	"context"

	"github.com/yukikurage/field-service-api/internal/database"
	"github.com/yukikurage/field-service-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskDetailRepository is a GORM implementation of TaskDetailRepository
type GormTaskDetailRepository struct {
	db *gorm.DB
}

// NewTaskDetailRepository creates a new TaskDetailRepository
func NewTaskDetailRepository(db *gorm.DB) TaskDetailRepository {
	return &GormTaskDetailRepository{db: db}
}

// Create creates a new task detail
func (r *GormTaskDetailRepository) Create(ctx context.Context, detail *models.TaskDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

// FindByID finds a task detail of the company by ID
func (r *GormTaskDetailRepository) FindByID(ctx context.Context, companyID, id string) (*models.TaskDetail, error) {
	var detail models.TaskDetail
	if err := r.db.WithContext(ctx).
		Scopes(database.ForCompany(companyID)).
		Where("id = ?", id).
		First(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update saves a task detail
func (r *GormTaskDetailRepository) Update(ctx context.Context, detail *models.TaskDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}
