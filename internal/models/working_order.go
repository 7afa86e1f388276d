package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkingOrder is the umbrella order tasks of a project/contact are grouped under.
// Deletion is soft: IsActive is cleared and the row is kept.
type WorkingOrder struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CompanyID string    `gorm:"size:36;not null;index" json:"companyId"`
	ContactID string    `gorm:"size:36;not null" json:"contactId"`
	ProjectID string    `gorm:"size:36;not null;index" json:"projectId"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *WorkingOrder) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	return nil
}
