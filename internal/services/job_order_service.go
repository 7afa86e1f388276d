package services

import (
	"context"
	"errors"

	"github.com/yukikurage/field-service-api/internal/models"
	"github.com/yukikurage/field-service-api/internal/repository"
	"go.uber.org/zap"
)

// JobOrderService creates a task together with its working order, task
// detail and assignments.
type JobOrderService struct {
	tx     repository.TxManager
	logger *zap.Logger
}

// NewJobOrderService creates a new JobOrderService
func NewJobOrderService(tx repository.TxManager, logger *zap.Logger) *JobOrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobOrderService{tx: tx, logger: logger}
}

// CreateJobOrder validates the input and stages every write in one
// transaction. Either all records exist afterwards or none do.
func (s *JobOrderService) CreateJobOrder(ctx context.Context, companyID string, input JobOrderInput) (*JobOrderResult, error) {
	if err := input.Validate(companyID); err != nil {
		return nil, err
	}
	schedule, err := parseSchedule(input.Schedule)
	if err != nil {
		return nil, err
	}

	var result JobOrderResult
	err = s.tx.WithinTransaction(ctx, func(uow *repository.UnitOfWork) error {
		workingOrderID, err := resolveWorkingOrder(ctx, uow, companyID, input.Case, input.WorkingOrder)
		if err != nil {
			return err
		}

		detail, err := resolveTaskDetail(ctx, uow, companyID, workingOrderID, input.Case, input.TaskDetails)
		if err != nil {
			return err
		}

		snapshot := BuildSnapshot(detail)
		task := &models.Task{
			CompanyID:             companyID,
			ContactID:             input.Case.CustomerID,
			ProjectID:             input.Case.ID,
			WorkingOrderID:        workingOrderID,
			TaskDetailID:          detail.ID,
			CategoryID:            snapshot.CategoryID,
			CategoryName:          snapshot.CategoryName,
			TaskDetailTitle:       snapshot.TaskDetailTitle,
			Instructions:          snapshot.Instructions,
			InstructionsCompleted: snapshot.InstructionsCompleted,
			ScheduleEnabled:       schedule.Enabled,
			ShiftType:             schedule.ShiftType,
			ScheduledDate:         schedule.ScheduledDate,
			StartTime:             schedule.StartTime,
			EndTime:               schedule.EndTime,
			IsRepeating:           schedule.IsRepeating,
			RepeatFrequency:       schedule.RepeatFrequency,
			RepeatEndDate:         schedule.RepeatEndDate,
			Status:                models.TaskStatusOpen,
		}
		if err := uow.Tasks.Create(ctx, task); err != nil {
			return storageError("create task", err)
		}

		resources := input.AssignedResources
		entries := DeduplicateAssignments(resources.Teams, resources.TeamUsers, resources.IndividualUsers)
		if err := uow.Tasks.CreateAssignments(ctx, toAssignments(task.ID, entries)); err != nil {
			return storageError("create task assignments", err)
		}

		result = JobOrderResult{
			TaskID:         task.ID,
			WorkingOrderID: workingOrderID,
			TaskDetailID:   detail.ID,
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Job order creation failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		if errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrStorage) {
			return nil, err
		}
		return nil, storageError("commit job order", err)
	}

	s.logger.Info("Job order created",
		zap.String("company_id", companyID),
		zap.String("task_id", result.TaskID),
		zap.String("working_order_id", result.WorkingOrderID),
		zap.String("task_detail_id", result.TaskDetailID),
	)
	return &result, nil
}
