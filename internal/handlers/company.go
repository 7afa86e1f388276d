package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/field-service-api/internal/dto"
	apierrors "github.com/yukikurage/field-service-api/internal/errors"
	"github.com/yukikurage/field-service-api/internal/middleware"
	"github.com/yukikurage/field-service-api/internal/services"
)

// CompanyHandler serves company details and member lookups.
type CompanyHandler struct {
	companyService *services.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// GetCompany returns the company details
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.GetCompany(c.Request.Context(), middleware.GetCompanyID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyDTO(*company))
}

// ListUsers returns company members, optionally filtered by search
func (h *CompanyHandler) ListUsers(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			apierrors.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	users, err := h.companyService.SearchUsers(c.Request.Context(), middleware.GetCompanyID(c), c.Query("search"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": dto.ToUserDTOs(users),
	})
}
