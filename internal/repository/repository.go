package repository

import (
	"context"

	"github.com/yukikurage/field-service-api/internal/models"
)

// WorkingOrderRepository defines the interface for working order data access
type WorkingOrderRepository interface {
	// Create creates a new working order
	Create(ctx context.Context, order *models.WorkingOrder) error

	// FindByID finds a working order of the company by ID
	FindByID(ctx context.Context, companyID, id string) (*models.WorkingOrder, error)

	// ListActiveByProject lists the active working orders of a project, newest first
	ListActiveByProject(ctx context.Context, companyID, projectID string) ([]models.WorkingOrder, error)

	// Update saves title and active flag of a working order
	Update(ctx context.Context, order *models.WorkingOrder) error
}

// TaskCategoryRepository defines the interface for task category data access
type TaskCategoryRepository interface {
	// Create creates a new task category
	Create(ctx context.Context, category *models.TaskCategory) error

	// FindByName finds a category by exact name within the company.
	// It returns nil, nil when there is no match.
	FindByName(ctx context.Context, companyID, name string) (*models.TaskCategory, error)
}

// TaskDetailRepository defines the interface for task detail data access
type TaskDetailRepository interface {
	// Create creates a new task detail
	Create(ctx context.Context, detail *models.TaskDetail) error

	// FindByID finds a task detail of the company by ID
	FindByID(ctx context.Context, companyID, id string) (*models.TaskDetail, error)

	// Update saves a task detail
	Update(ctx context.Context, detail *models.TaskDetail) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// CreateAssignments inserts assignment rows for a task
	CreateAssignments(ctx context.Context, assignments []models.TaskAssignment) error

	// FindByID finds a task of the company by ID with optional preloading
	FindByID(ctx context.Context, companyID, id string, preload ...string) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(ctx context.Context, filter TaskFilter) ([]models.Task, int64, error)

	// UpdateStatus sets the status of a task
	UpdateStatus(ctx context.Context, task *models.Task, status models.TaskStatus) error

	// UpdateInstructionsCompleted replaces the completion flags of a task
	UpdateInstructionsCompleted(ctx context.Context, task *models.Task, completed []bool) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	CompanyID      string
	Status         *models.TaskStatus
	WorkingOrderID *string
	AssignedUserID *string
	Page           int
	PageSize       int
}

// CompanyRepository defines the interface for company and membership data access
type CompanyRepository interface {
	// Create creates a new company
	Create(ctx context.Context, company *models.Company) error

	// FindByID finds a company by ID
	FindByID(ctx context.Context, id string) (*models.Company, error)

	// AddMember adds a user to a company
	AddMember(ctx context.Context, member *models.CompanyUser) error

	// FindMember finds a specific company membership
	FindMember(ctx context.Context, companyID, userID string) (*models.CompanyUser, error)

	// ListMembershipsByUserID lists all companies a user belongs to
	ListMembershipsByUserID(ctx context.Context, userID string) ([]models.CompanyUser, error)

	// SearchMembers lists members of a company whose email, name or surname
	// contains search (case-insensitive). An empty search matches everyone.
	SearchMembers(ctx context.Context, companyID, search string, limit int) ([]models.CompanyUser, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// CreateWithCompany creates a user, a company, and the owner membership
	// within a single transaction.
	CreateWithCompany(ctx context.Context, user *models.User, company *models.Company, member *models.CompanyUser) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
