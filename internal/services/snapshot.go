package services

import "github.com/yukikurage/field-service-api/internal/models"

// TaskSnapshot is the part of a task detail copied onto a task. It shares no
// memory with the detail it was built from.
type TaskSnapshot struct {
	CategoryID            *string
	CategoryName          string
	TaskDetailTitle       string
	Instructions          []string
	InstructionsCompleted []bool
}

// BuildSnapshot copies the detail content and marks every instruction as not
// completed.
func BuildSnapshot(detail *models.TaskDetail) TaskSnapshot {
	instructions := make([]string, len(detail.Instructions))
	copy(instructions, detail.Instructions)

	return TaskSnapshot{
		CategoryID:            cloneString(detail.CategoryID),
		CategoryName:          detail.CategoryName,
		TaskDetailTitle:       detail.Title,
		Instructions:          instructions,
		InstructionsCompleted: make([]bool, len(instructions)),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
