package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskDetail is a reusable description of work. Tasks copy its content at
// creation time and never follow later edits.
type TaskDetail struct {
	ID             string                      `gorm:"primaryKey;size:36" json:"id"`
	CompanyID      string                      `gorm:"size:36;not null;index" json:"companyId"`
	ContactID      string                      `gorm:"size:36;not null" json:"contactId"`
	ProjectID      string                      `gorm:"size:36;not null" json:"projectId"`
	WorkingOrderID string                      `gorm:"size:36;not null;index" json:"workingOrderId"`
	CategoryID     *string                     `gorm:"size:36" json:"categoryId"`
	CategoryName   string                      `gorm:"type:varchar(255)" json:"categoryName"`
	Title          string                      `gorm:"type:varchar(255);not null" json:"title"`
	Instructions   datatypes.JSONSlice[string] `json:"instructions"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}

func (d *TaskDetail) BeforeCreate(tx *gorm.DB) error {
	assignID(&d.ID)
	if d.Instructions == nil {
		d.Instructions = datatypes.JSONSlice[string]{}
	}
	return nil
}
