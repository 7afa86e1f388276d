package services

import (
	"context"
	"errors"

	"github.com/yukikurage/field-service-api/internal/models"
	"github.com/yukikurage/field-service-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TaskService handles reads and the few mutations allowed on a created task.
type TaskService struct {
	taskRepo repository.TaskRepository
	logger   *zap.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, logger *zap.Logger) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{taskRepo: taskRepo, logger: logger}
}

// ListTasks returns a page of company tasks and the total count.
func (s *TaskService) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, storageError("list tasks", err)
	}
	return tasks, total, nil
}

// GetTask returns a task of the company with its assignments.
func (s *TaskService) GetTask(ctx context.Context, companyID, taskID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, companyID, taskID, "Assignments")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, storageError("find task", err)
	}
	return task, nil
}

// UpdateStatus moves a task to a new status if the transition is allowed.
func (s *TaskService) UpdateStatus(ctx context.Context, companyID, taskID, status string) (*models.Task, error) {
	next, err := ParseTaskStatus(status)
	if err != nil {
		return nil, err
	}

	task, err := s.GetTask(ctx, companyID, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status == next {
		return task, nil
	}
	if !CanTransition(task.Status, next) {
		return nil, ErrInvalidStatusTransition
	}

	previous := task.Status
	if err := s.taskRepo.UpdateStatus(ctx, task, next); err != nil {
		return nil, storageError("update task status", err)
	}

	s.logger.Info("Task status changed",
		zap.String("task_id", task.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(next)),
	)
	return task, nil
}

// UpdateInstructionsCompleted replaces the completion flags. There must be
// exactly one flag per instruction.
func (s *TaskService) UpdateInstructionsCompleted(ctx context.Context, companyID, taskID string, completed []bool) (*models.Task, error) {
	task, err := s.GetTask(ctx, companyID, taskID)
	if err != nil {
		return nil, err
	}

	if len(completed) != len(task.Instructions) {
		return nil, ErrInstructionsLengthMismatch
	}

	if err := s.taskRepo.UpdateInstructionsCompleted(ctx, task, completed); err != nil {
		return nil, storageError("update task instructions", err)
	}
	return task, nil
}
