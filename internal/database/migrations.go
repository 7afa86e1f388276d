package database

import (
	"fmt"

	"gorm.io/gorm"
)

// compositeIndexes are the lookup paths the list endpoints rely on that
// cannot be expressed as single-column struct tags.
var compositeIndexes = []struct {
	table   string
	name    string
	columns string
}{
	{"tasks", "idx_tasks_company_created", "company_id, created_at"},
	{"working_orders", "idx_working_orders_company_project_active", "company_id, project_id, is_active"},
	{"task_details", "idx_task_details_company_order", "company_id, working_order_id"},
	{"company_users", "idx_company_users_user", "user_id"},
}

// AddIndexes creates the composite indexes that do not exist yet.
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range compositeIndexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

// MigrateDatabase runs all database migrations
func MigrateDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}
