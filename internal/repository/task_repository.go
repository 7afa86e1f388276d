package repository

import (
	"context"

	"github.com/yukikurage/field-service-api/internal/database"
	"github.com/yukikurage/field-service-api/internal/models"
	"github.com/yukikurage/field-service-api/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Omit("Assignments").Create(task).Error
}

// CreateAssignments inserts assignment rows for a task
func (r *GormTaskRepository) CreateAssignments(ctx context.Context, assignments []models.TaskAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&assignments).Error
}

// FindByID finds a task of the company by ID with optional preloading
func (r *GormTaskRepository) FindByID(ctx context.Context, companyID, id string, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db.WithContext(ctx)

	// Apply preloading if specified
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Scopes(database.ForCompany(companyID)).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks with filtering and pagination
func (r *GormTaskRepository) List(ctx context.Context, filter TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.WithContext(ctx).Model(&models.Task{}).Where("tasks.company_id = ?", filter.CompanyID)

	// Apply filters
	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}
	if filter.WorkingOrderID != nil {
		query = query.Where("tasks.working_order_id = ?", *filter.WorkingOrderID)
	}
	if filter.AssignedUserID != nil {
		assignmentSubQuery := r.db.Model(&models.TaskAssignment{}).
			Select("1").
			Where("task_assignments.task_id = tasks.id").
			Where("task_assignments.user_id = ?", *filter.AssignedUserID)
		query = query.Where("EXISTS (?)", assignmentSubQuery)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("tasks.created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.NewPaginationParams(filter.Page, filter.PageSize)))
	}

	if err := listQuery.Preload("Assignments").Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// UpdateStatus sets the status of a task
func (r *GormTaskRepository) UpdateStatus(ctx context.Context, task *models.Task, status models.TaskStatus) error {
	if err := r.db.WithContext(ctx).Model(task).Update("status", status).Error; err != nil {
		return err
	}
	task.Status = status
	return nil
}

// UpdateInstructionsCompleted replaces the completion flags of a task
func (r *GormTaskRepository) UpdateInstructionsCompleted(ctx context.Context, task *models.Task, completed []bool) error {
	flags := datatypes.JSONSlice[bool](append([]bool{}, completed...))
	if err := r.db.WithContext(ctx).Model(task).Update("instructions_completed", flags).Error; err != nil {
		return err
	}
	task.InstructionsCompleted = flags
	return nil
}
