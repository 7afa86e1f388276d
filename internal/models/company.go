package models

import (
	"time"

	"gorm.io/gorm"
)

type Company struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Address   *string   `gorm:"type:varchar(512)" json:"address"`
	Phone     *string   `gorm:"type:varchar(64)" json:"phone"`
	Email     *string   `gorm:"type:varchar(255)" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Members []CompanyUser `gorm:"foreignKey:CompanyID" json:"members,omitempty"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}
