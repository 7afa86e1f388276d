package models

import (
	"time"

	"gorm.io/gorm"
)

type AssignmentType string

const (
	AssignmentTypeTeam       AssignmentType = "team"
	AssignmentTypeIndividual AssignmentType = "individual"
)

// TaskAssignment links one person to a task, optionally through a team.
// User and team fields are denormalized at assignment time.
type TaskAssignment struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	TaskID         string         `gorm:"size:36;not null;uniqueIndex:idx_task_assignments_task_user,priority:1" json:"taskId"`
	UserID         string         `gorm:"size:36;not null;uniqueIndex:idx_task_assignments_task_user,priority:2;index" json:"userId"`
	TeamID         *string        `gorm:"size:36" json:"teamId"`
	UserName       *string        `gorm:"type:varchar(255)" json:"userName"`
	UserSurname    *string        `gorm:"type:varchar(255)" json:"userSurname"`
	UserEmail      string         `gorm:"type:varchar(255)" json:"userEmail"`
	TeamName       *string        `gorm:"type:varchar(255)" json:"teamName"`
	TeamCode       *string        `gorm:"type:varchar(50)" json:"teamCode"`
	TeamColor      *string        `gorm:"type:varchar(20)" json:"teamColor"`
	AssignmentType AssignmentType `gorm:"type:varchar(20);not null" json:"assignmentType"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func (a *TaskAssignment) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}
