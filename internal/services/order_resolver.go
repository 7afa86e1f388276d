package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yukikurage/field-service-api/internal/models"
	"github.com/yukikurage/field-service-api/internal/repository"
	"gorm.io/gorm"
)

// resolveWorkingOrder returns the id of the working order the new task goes
// under. A new order is created for the case; a reused one must belong to the
// company and still be active.
func resolveWorkingOrder(ctx context.Context, uow *repository.UnitOfWork, companyID string, c CaseRef, choice WorkingOrderChoice) (string, error) {
	if choice.IsNew {
		order := &models.WorkingOrder{
			CompanyID: companyID,
			ContactID: c.CustomerID,
			ProjectID: c.ID,
			Title:     strings.TrimSpace(choice.Title),
			IsActive:  true,
		}
		if err := uow.WorkingOrders.Create(ctx, order); err != nil {
			return "", storageError("create working order", err)
		}
		return order.ID, nil
	}

	if choice.ID == "" {
		return "", ErrWorkingOrderIDRequired
	}

	order, err := uow.WorkingOrders.FindByID(ctx, companyID, choice.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrWorkingOrderNotFound
		}
		return "", storageError("find working order", err)
	}
	if !order.IsActive {
		return "", ErrWorkingOrderNotFound
	}

	return order.ID, nil
}
