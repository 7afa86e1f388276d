package services

import (
	"fmt"
	"strings"
	"time"
)

// JobOrderInput is everything needed to create a task in one step.
type JobOrderInput struct {
	Case              CaseRef            `json:"case"`
	WorkingOrder      WorkingOrderChoice `json:"workingOrder"`
	TaskDetails       TaskDetailChoice   `json:"taskDetails"`
	Schedule          ScheduleInput      `json:"schedule"`
	AssignedResources AssignedResources  `json:"assignedResources"`
}

// CaseRef points at the project (ID) and its customer contact.
type CaseRef struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName,omitempty"`
}

// WorkingOrderChoice either names a new working order or reuses an existing one.
type WorkingOrderChoice struct {
	IsNew bool   `json:"isNew"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

// TaskDetailChoice either describes a new task detail or reuses an existing one.
type TaskDetailChoice struct {
	IsNew        bool     `json:"isNew"`
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Instructions []string `json:"instructions"`
}

type ScheduleInput struct {
	Enabled   bool        `json:"enabled"`
	ShiftType *string     `json:"shiftType"`
	Date      *string     `json:"date"`
	StartTime *string     `json:"startTime"`
	EndTime   *string     `json:"endTime"`
	Repeating RepeatInput `json:"repeating"`
}

type RepeatInput struct {
	Enabled   bool    `json:"enabled"`
	Frequency *string `json:"frequency"`
	EndDate   *string `json:"endDate"`
}

type AssignedResources struct {
	Teams           []Team     `json:"teams"`
	TeamUsers       []Assignee `json:"teamUsers"`
	IndividualUsers []Assignee `json:"individualUsers"`
}

type Team struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Code  string  `json:"code"`
	Color *string `json:"color"`
}

// Assignee is a person picked for the task. TeamID, when set on a team user,
// restricts which selected team the person is attributed to.
type Assignee struct {
	ID      string  `json:"id"`
	TeamID  string  `json:"teamId,omitempty"`
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Email   string  `json:"email"`
}

// JobOrderResult holds the identifiers touched by one job order creation.
type JobOrderResult struct {
	TaskID         string `json:"taskId"`
	WorkingOrderID string `json:"workingOrderId"`
	TaskDetailID   string `json:"taskDetailId"`
}

// Validate checks the input before any write happens.
func (in *JobOrderInput) Validate(companyID string) error {
	if strings.TrimSpace(companyID) == "" {
		return newValidationError("companyId", "company id required")
	}
	if strings.TrimSpace(in.Case.ID) == "" {
		return newValidationError("case.id", "case id required")
	}
	if strings.TrimSpace(in.Case.CustomerID) == "" {
		return newValidationError("case.customerId", "customer id required")
	}

	if in.WorkingOrder.IsNew {
		if strings.TrimSpace(in.WorkingOrder.Title) == "" {
			return newValidationError("workingOrder.title", "working order title required")
		}
	} else if in.WorkingOrder.ID == "" {
		return ErrWorkingOrderIDRequired
	}

	if in.TaskDetails.IsNew {
		if strings.TrimSpace(in.TaskDetails.Title) == "" {
			return newValidationError("taskDetails.title", "task details title required")
		}
	} else if in.TaskDetails.ID == "" {
		return ErrTaskDetailIDRequired
	}

	for i, u := range in.AssignedResources.TeamUsers {
		if u.ID == "" {
			return newValidationError(fmt.Sprintf("assignedResources.teamUsers[%d].id", i), "user id required")
		}
	}
	for i, u := range in.AssignedResources.IndividualUsers {
		if u.ID == "" {
			return newValidationError(fmt.Sprintf("assignedResources.individualUsers[%d].id", i), "user id required")
		}
	}

	_, err := parseSchedule(in.Schedule)
	return err
}

// scheduleFields is the schedule as stored on a task.
type scheduleFields struct {
	Enabled         bool
	ShiftType       *string
	ScheduledDate   *time.Time
	StartTime       *string
	EndTime         *string
	IsRepeating     bool
	RepeatFrequency *string
	RepeatEndDate   *time.Time
}

// parseSchedule turns the requested schedule into task fields. A disabled
// schedule clears every sub-field, whatever the caller sent.
func parseSchedule(in ScheduleInput) (scheduleFields, error) {
	if !in.Enabled {
		return scheduleFields{}, nil
	}

	date, err := parseDate("schedule.date", in.Date)
	if err != nil {
		return scheduleFields{}, err
	}

	fields := scheduleFields{
		Enabled:       true,
		ShiftType:     nonEmpty(in.ShiftType),
		ScheduledDate: date,
		StartTime:     nonEmpty(in.StartTime),
		EndTime:       nonEmpty(in.EndTime),
	}

	if in.Repeating.Enabled {
		endDate, err := parseDate("schedule.repeating.endDate", in.Repeating.EndDate)
		if err != nil {
			return scheduleFields{}, err
		}
		fields.IsRepeating = true
		fields.RepeatFrequency = nonEmpty(in.Repeating.Frequency)
		fields.RepeatEndDate = endDate
	}

	return fields, nil
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, *value); err == nil {
			return &t, nil
		}
	}
	return nil, newValidationError(field, "must be an ISO date")
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
