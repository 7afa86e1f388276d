package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yukikurage/field-service-api/internal/models"
	"github.com/yukikurage/field-service-api/internal/repository"
	"gorm.io/gorm"
)

// resolveTaskDetail returns the task detail the new task is built from,
// creating it first when requested. The returned record is always read back
// from storage.
func resolveTaskDetail(ctx context.Context, uow *repository.UnitOfWork, companyID, workingOrderID string, c CaseRef, choice TaskDetailChoice) (*models.TaskDetail, error) {
	detailID := choice.ID

	if choice.IsNew {
		categoryID, err := resolveCategoryID(ctx, uow, companyID, choice.Category)
		if err != nil {
			return nil, err
		}

		instructions := make([]string, len(choice.Instructions))
		copy(instructions, choice.Instructions)

		detail := &models.TaskDetail{
			CompanyID:      companyID,
			ContactID:      c.CustomerID,
			ProjectID:      c.ID,
			WorkingOrderID: workingOrderID,
			CategoryID:     categoryID,
			CategoryName:   choice.Category,
			Title:          strings.TrimSpace(choice.Title),
			Instructions:   instructions,
		}
		if err := uow.TaskDetails.Create(ctx, detail); err != nil {
			return nil, storageError("create task detail", err)
		}
		detailID = detail.ID
	} else if detailID == "" {
		return nil, ErrTaskDetailIDRequired
	}

	detail, err := uow.TaskDetails.FindByID(ctx, companyID, detailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskDetailNotFound
		}
		return nil, storageError("find task detail", err)
	}

	return detail, nil
}

// resolveCategoryID looks the category name up within the company. Unknown
// or empty names leave the detail uncategorized.
func resolveCategoryID(ctx context.Context, uow *repository.UnitOfWork, companyID, name string) (*string, error) {
	if name == "" {
		return nil, nil
	}

	category, err := uow.Categories.FindByName(ctx, companyID, name)
	if err != nil {
		return nil, storageError("find task category", err)
	}
	if category == nil {
		return nil, nil
	}

	id := category.ID
	return &id, nil
}
