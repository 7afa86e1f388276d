package models

import "gorm.io/gorm"

type TaskCategory struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	CompanyID string `gorm:"size:36;not null;uniqueIndex:idx_task_categories_company_name,priority:1" json:"companyId"`
	Name      string `gorm:"type:varchar(255);not null;uniqueIndex:idx_task_categories_company_name,priority:2" json:"name"`
}

func (c *TaskCategory) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}
