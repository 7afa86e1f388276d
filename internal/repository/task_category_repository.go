package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/field-service-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskCategoryRepository is a GORM implementation of TaskCategoryRepository
type GormTaskCategoryRepository struct {
	db *gorm.DB
}

// NewTaskCategoryRepository creates a new TaskCategoryRepository
func NewTaskCategoryRepository(db *gorm.DB) TaskCategoryRepository {
	return &GormTaskCategoryRepository{db: db}
}

// Create creates a new task category
func (r *GormTaskCategoryRepository) Create(ctx context.Context, category *models.TaskCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// FindByName finds a category by exact name within the company
func (r *GormTaskCategoryRepository) FindByName(ctx context.Context, companyID, name string) (*models.TaskCategory, error) {
	var category models.TaskCategory
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND name = ?", companyID, name).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
