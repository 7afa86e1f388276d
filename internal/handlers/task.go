package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/field-service-api/internal/dto"
	apierrors "github.com/yukikurage/field-service-api/internal/errors"
	"github.com/yukikurage/field-service-api/internal/middleware"
	"github.com/yukikurage/field-service-api/internal/repository"
	"github.com/yukikurage/field-service-api/internal/services"
	"github.com/yukikurage/field-service-api/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
	aiService   *services.AIService
}

func NewTaskHandler(taskService *services.TaskService, aiService *services.AIService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		aiService:   aiService,
	}
}

// ListTasks returns the tasks of the company, newest first
// Can filter by status, workingOrderId and assignedTo
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := repository.TaskFilter{
		CompanyID: middleware.GetCompanyID(c),
		Page:      params.Page,
		PageSize:  params.Limit,
	}

	if status := c.Query("status"); status != "" {
		parsed, err := services.ParseTaskStatus(status)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		filter.Status = &parsed
	}
	if workingOrderID := c.Query("workingOrderId"); workingOrderID != "" {
		filter.WorkingOrderID = &workingOrderID
	}
	if assignedTo := c.Query("assignedTo"); assignedTo != "" {
		filter.AssignedUserID = &assignedTo
	}

	tasks, total, err := h.taskService.ListTasks(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params.Page, params.Limit, total))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Request.Context(), middleware.GetCompanyID(c), c.Param("taskId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// UpdateTaskStatus moves a task through its status workflow
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateStatus(c.Request.Context(), middleware.GetCompanyID(c), c.Param("taskId"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// UpdateTaskInstructions replaces the completion flags of the task instructions
func (h *TaskHandler) UpdateTaskInstructions(c *gin.Context) {
	var req struct {
		InstructionsCompleted []bool `json:"instructionsCompleted" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateInstructionsCompleted(c.Request.Context(), middleware.GetCompanyID(c), c.Param("taskId"), req.InstructionsCompleted)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// SuggestInstructions drafts task detail instructions from free text using AI
func (h *TaskHandler) SuggestInstructions(c *gin.Context) {
	if !h.aiService.Enabled() {
		apierrors.ServiceUnavailable(c, "AI service is not available")
		return
	}

	var req struct {
		Title string `json:"title"`
		Text  string `json:"text" binding:"max=10000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	instructions, err := h.aiService.SuggestInstructions(c.Request.Context(), req.Title, req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"instructions": instructions,
		"count":        len(instructions),
	})
}
