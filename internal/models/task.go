package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusOnHold     TaskStatus = "on_hold"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// Task is a schedulable unit of work. Instructions, CategoryName and
// TaskDetailTitle are a snapshot of the TaskDetail taken at creation.
// len(Instructions) == len(InstructionsCompleted) always holds.
type Task struct {
	ID                    string                      `gorm:"primaryKey;size:36" json:"id"`
	CompanyID             string                      `gorm:"size:36;not null;index" json:"companyId"`
	ContactID             string                      `gorm:"size:36;not null" json:"contactId"`
	ProjectID             string                      `gorm:"size:36;not null" json:"projectId"`
	WorkingOrderID        string                      `gorm:"size:36;not null;index" json:"workingOrderId"`
	TaskDetailID          string                      `gorm:"size:36;not null" json:"taskDetailId"`
	CategoryID            *string                     `gorm:"size:36" json:"categoryId"`
	CategoryName          string                      `gorm:"type:varchar(255)" json:"categoryName"`
	TaskDetailTitle       string                      `gorm:"type:varchar(255);not null" json:"taskDetailTitle"`
	Instructions          datatypes.JSONSlice[string] `json:"instructions"`
	InstructionsCompleted datatypes.JSONSlice[bool]   `json:"instructionsCompleted"`
	ScheduleEnabled       bool                        `gorm:"not null;default:false" json:"scheduleEnabled"`
	ShiftType             *string                     `gorm:"type:varchar(50)" json:"shiftType"`
	ScheduledDate         *time.Time                  `json:"scheduledDate"`
	StartTime             *string                     `gorm:"type:varchar(20)" json:"startTime"`
	EndTime               *string                     `gorm:"type:varchar(20)" json:"endTime"`
	IsRepeating           bool                        `gorm:"not null;default:false" json:"isRepeating"`
	RepeatFrequency       *string                     `gorm:"type:varchar(50)" json:"repeatFrequency"`
	RepeatEndDate         *time.Time                  `json:"repeatEndDate"`
	Status                TaskStatus                  `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	CreatedAt             time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt             time.Time                   `json:"updatedAt"`

	// Relations
	Assignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"assignments,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	assignID(&t.ID)
	return nil
}
