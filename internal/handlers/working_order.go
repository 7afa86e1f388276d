package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/field-service-api/internal/dto"
	apierrors "github.com/yukikurage/field-service-api/internal/errors"
	"github.com/yukikurage/field-service-api/internal/middleware"
	"github.com/yukikurage/field-service-api/internal/services"
)

// WorkingOrderHandler manages working orders of a company.
type WorkingOrderHandler struct {
	orderService *services.WorkingOrderService
}

// NewWorkingOrderHandler creates a new WorkingOrderHandler.
func NewWorkingOrderHandler(orderService *services.WorkingOrderService) *WorkingOrderHandler {
	return &WorkingOrderHandler{
		orderService: orderService,
	}
}

// ListProjectOrders returns the active working orders of a project
func (h *WorkingOrderHandler) ListProjectOrders(c *gin.Context) {
	orders, err := h.orderService.ListByProject(c.Request.Context(), middleware.GetCompanyID(c), c.Param("projectId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": dto.ToWorkingOrderDTOs(orders),
	})
}

// CreateProjectOrder creates a working order under a project
func (h *WorkingOrderHandler) CreateProjectOrder(c *gin.Context) {
	var req struct {
		ContactID string `json:"contactId" binding:"required"`
		Title     string `json:"title" binding:"required,max=255"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), middleware.GetCompanyID(c), services.CreateWorkingOrderInput{
		ProjectID: c.Param("projectId"),
		ContactID: req.ContactID,
		Title:     req.Title,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkingOrderDTO(*order))
}

// GetOrder returns a working order by ID
func (h *WorkingOrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.Get(c.Request.Context(), middleware.GetCompanyID(c), c.Param("orderId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkingOrderDTO(*order))
}

// UpdateOrder changes the title and/or active flag of a working order
func (h *WorkingOrderHandler) UpdateOrder(c *gin.Context) {
	var req struct {
		Title    *string `json:"title" binding:"omitempty,max=255"`
		IsActive *bool   `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), middleware.GetCompanyID(c), c.Param("orderId"), services.UpdateWorkingOrderInput{
		Title:    req.Title,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkingOrderDTO(*order))
}

// DeleteOrder deactivates a working order
func (h *WorkingOrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderService.Delete(c.Request.Context(), middleware.GetCompanyID(c), c.Param("orderId")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Working order deleted successfully",
	})
}
