package services

import "github.com/yukikurage/field-service-api/internal/models"

var taskTransitions = map[models.TaskStatus][]models.TaskStatus{
	models.TaskStatusOpen:       {models.TaskStatusInProgress, models.TaskStatusOnHold, models.TaskStatusCancelled},
	models.TaskStatusInProgress: {models.TaskStatusOpen, models.TaskStatusOnHold, models.TaskStatusCompleted, models.TaskStatusCancelled},
	models.TaskStatusOnHold:     {models.TaskStatusOpen, models.TaskStatusInProgress, models.TaskStatusCancelled},
	models.TaskStatusCompleted:  {models.TaskStatusInProgress},
	models.TaskStatusCancelled:  {},
}

// ParseTaskStatus rejects anything that is not a known status.
func ParseTaskStatus(s string) (models.TaskStatus, error) {
	status := models.TaskStatus(s)
	if _, ok := taskTransitions[status]; !ok {
		return "", ErrInvalidTaskStatus
	}
	return status, nil
}

// CanTransition reports whether a task may move from one status to another.
// Staying in the same status is always allowed.
func CanTransition(from, to models.TaskStatus) bool {
	if from == to {
		_, known := taskTransitions[from]
		return known
	}
	for _, next := range taskTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
