package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/field-service-api/internal/errors"
	"github.com/yukikurage/field-service-api/internal/middleware"
	"github.com/yukikurage/field-service-api/internal/services"
)

// JobOrderHandler exposes job order creation.
type JobOrderHandler struct {
	jobOrderService *services.JobOrderService
}

// NewJobOrderHandler creates a new JobOrderHandler.
func NewJobOrderHandler(jobOrderService *services.JobOrderService) *JobOrderHandler {
	return &JobOrderHandler{
		jobOrderService: jobOrderService,
	}
}

// CreateJobOrder creates a task with its working order, task detail and
// assignments in one step.
func (h *JobOrderHandler) CreateJobOrder(c *gin.Context) {
	var input services.JobOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.jobOrderService.CreateJobOrder(c.Request.Context(), middleware.GetCompanyID(c), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result,
	})
}
