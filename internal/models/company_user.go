package models

import "time"

type CompanyRole string

const (
	RoleOwner  CompanyRole = "owner"
	RoleMember CompanyRole = "member"
)

// CompanyUser is the tenant membership of a user.
type CompanyUser struct {
	CompanyID string      `gorm:"primaryKey;size:36" json:"companyId"`
	UserID    string      `gorm:"primaryKey;size:36" json:"userId"`
	Role      CompanyRole `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	CreatedAt time.Time   `json:"createdAt"`

	// Relations
	Company Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
