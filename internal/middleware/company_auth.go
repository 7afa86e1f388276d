package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/field-service-api/internal/constants"
	apierrors "github.com/yukikurage/field-service-api/internal/errors"
)

// MembershipChecker reports whether a user belongs to a company.
type MembershipChecker interface {
	IsMember(ctx context.Context, companyID, userID string) (bool, error)
}

// RequireCompanyAccess checks if the user is a member of the company in the
// :companyId path parameter
func RequireCompanyAccess(members MembershipChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.Param("companyId")
		if companyID == "" {
			apierrors.BadRequest(c, "Invalid company ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		ok, err := members.IsMember(c.Request.Context(), companyID, userID)
		if err != nil {
			apierrors.InternalError(c, "Failed to verify company access")
			c.Abort()
			return
		}
		if !ok {
			// Return 404 instead of 403 to avoid leaking company existence
			apierrors.NotFound(c, "Company not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCompanyID, companyID)
		c.Next()
	}
}

// GetCompanyID retrieves the company ID set by RequireCompanyAccess
func GetCompanyID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyCompanyID)
}
