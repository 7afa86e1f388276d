package dto

import (
	"time"

	"github.com/yukikurage/field-service-api/internal/models"
)

// TaskAssignmentDTO represents a task assignment in API responses
type TaskAssignmentDTO struct {
	UserID         string                `json:"userId"`
	UserName       *string               `json:"userName"`
	UserSurname    *string               `json:"userSurname"`
	UserEmail      string                `json:"userEmail"`
	AssignmentType models.AssignmentType `json:"assignmentType"`
	TeamID         *string               `json:"teamId,omitempty"`
	TeamName       *string               `json:"teamName,omitempty"`
	TeamCode       *string               `json:"teamCode,omitempty"`
	TeamColor      *string               `json:"teamColor,omitempty"`
}

// ScheduleDTO groups the schedule fields of a task
type ScheduleDTO struct {
	Enabled         bool       `json:"enabled"`
	ShiftType       *string    `json:"shiftType"`
	Date            *time.Time `json:"date"`
	StartTime       *string    `json:"startTime"`
	EndTime         *string    `json:"endTime"`
	IsRepeating     bool       `json:"isRepeating"`
	RepeatFrequency *string    `json:"repeatFrequency"`
	RepeatEndDate   *time.Time `json:"repeatEndDate"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID                    string              `json:"id"`
	CompanyID             string              `json:"companyId"`
	ProjectID             string              `json:"projectId"`
	ContactID             string              `json:"contactId"`
	WorkingOrderID        string              `json:"workingOrderId"`
	TaskDetailID          string              `json:"taskDetailId"`
	CategoryID            *string             `json:"categoryId"`
	CategoryName          string              `json:"categoryName"`
	TaskDetailTitle       string              `json:"taskDetailTitle"`
	Instructions          []string            `json:"instructions"`
	InstructionsCompleted []bool              `json:"instructionsCompleted"`
	Schedule              ScheduleDTO         `json:"schedule"`
	Status                models.TaskStatus   `json:"status"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
	Assignments           []TaskAssignmentDTO `json:"assignments"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO `json:"tasks"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalCount int64     `json:"totalCount"`
	TotalPages int       `json:"totalPages"`
}

// WorkingOrderDTO represents a working order in API responses
type WorkingOrderDTO struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	ContactID string    `json:"contactId"`
	Title     string    `json:"title"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Conversion functions

// ToTaskAssignmentDTO converts a TaskAssignment model to TaskAssignmentDTO
func ToTaskAssignmentDTO(a models.TaskAssignment) TaskAssignmentDTO {
	return TaskAssignmentDTO{
		UserID:         a.UserID,
		UserName:       a.UserName,
		UserSurname:    a.UserSurname,
		UserEmail:      a.UserEmail,
		AssignmentType: a.AssignmentType,
		TeamID:         a.TeamID,
		TeamName:       a.TeamName,
		TeamCode:       a.TeamCode,
		TeamColor:      a.TeamColor,
	}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:                    task.ID,
		CompanyID:             task.CompanyID,
		ProjectID:             task.ProjectID,
		ContactID:             task.ContactID,
		WorkingOrderID:        task.WorkingOrderID,
		TaskDetailID:          task.TaskDetailID,
		CategoryID:            task.CategoryID,
		CategoryName:          task.CategoryName,
		TaskDetailTitle:       task.TaskDetailTitle,
		Instructions:          append([]string{}, task.Instructions...),
		InstructionsCompleted: append([]bool{}, task.InstructionsCompleted...),
		Schedule: ScheduleDTO{
			Enabled:         task.ScheduleEnabled,
			ShiftType:       task.ShiftType,
			Date:            task.ScheduledDate,
			StartTime:       task.StartTime,
			EndTime:         task.EndTime,
			IsRepeating:     task.IsRepeating,
			RepeatFrequency: task.RepeatFrequency,
			RepeatEndDate:   task.RepeatEndDate,
		},
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		Assignments: make([]TaskAssignmentDTO, len(task.Assignments)),
	}

	for i, assignment := range task.Assignments {
		dto.Assignments[i] = ToTaskAssignmentDTO(assignment)
	}

	return dto
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, page, pageSize int, totalCount int64) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = int(totalCount) / pageSize
		if int(totalCount)%pageSize > 0 {
			totalPages++
		}
	}

	return TaskListResponse{
		Tasks:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// ToWorkingOrderDTO converts a WorkingOrder model to WorkingOrderDTO
func ToWorkingOrderDTO(order models.WorkingOrder) WorkingOrderDTO {
	return WorkingOrderDTO{
		ID:        order.ID,
		ProjectID: order.ProjectID,
		ContactID: order.ContactID,
		Title:     order.Title,
		IsActive:  order.IsActive,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

// ToWorkingOrderDTOs converts a slice of working orders
func ToWorkingOrderDTOs(orders []models.WorkingOrder) []WorkingOrderDTO {
	dtos := make([]WorkingOrderDTO, len(orders))
	for i, order := range orders {
		dtos[i] = ToWorkingOrderDTO(order)
	}
	return dtos
}
