package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/field-service-api/internal/database"
	"github.com/yukikurage/field-service-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database with every table migrated.
// The pool is pinned to one connection so all queries see the same database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.MigrateDatabase(db))
	return db
}

func CreateCompany(t *testing.T, db *gorm.DB, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name}
	require.NoError(t, db.Create(company).Error)
	return company
}

func CreateUser(t *testing.T, db *gorm.DB, email string, name, surname string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	if name != "" {
		user.Name = &name
	}
	if surname != "" {
		user.Surname = &surname
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func AddMember(t *testing.T, db *gorm.DB, companyID, userID string, role models.CompanyRole) {
	t.Helper()
	require.NoError(t, db.Omit("Company", "User").Create(&models.CompanyUser{
		CompanyID: companyID,
		UserID:    userID,
		Role:      role,
	}).Error)
}

func CreateCategory(t *testing.T, db *gorm.DB, companyID, name string) *models.TaskCategory {
	t.Helper()
	category := &models.TaskCategory{CompanyID: companyID, Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func CreateWorkingOrder(t *testing.T, db *gorm.DB, companyID, projectID, title string) *models.WorkingOrder {
	t.Helper()
	order := &models.WorkingOrder{
		CompanyID: companyID,
		ContactID: "contact-1",
		ProjectID: projectID,
		Title:     title,
		IsActive:  true,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func CreateTaskDetail(t *testing.T, db *gorm.DB, companyID, workingOrderID, title string, instructions ...string) *models.TaskDetail {
	t.Helper()
	detail := &models.TaskDetail{
		CompanyID:      companyID,
		ContactID:      "contact-1",
		ProjectID:      "project-1",
		WorkingOrderID: workingOrderID,
		Title:          title,
		Instructions:   append([]string{}, instructions...),
	}
	require.NoError(t, db.Create(detail).Error)
	return detail
}

func CreateTask(t *testing.T, db *gorm.DB, companyID, workingOrderID, taskDetailID string, instructions ...string) *models.Task {
	t.Helper()
	task := &models.Task{
		CompanyID:             companyID,
		ContactID:             "contact-1",
		ProjectID:             "project-1",
		WorkingOrderID:        workingOrderID,
		TaskDetailID:          taskDetailID,
		TaskDetailTitle:       "Task",
		Instructions:          append([]string{}, instructions...),
		InstructionsCompleted: make([]bool, len(instructions)),
		Status:                models.TaskStatusOpen,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

// Count returns the number of rows of model.
func Count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
