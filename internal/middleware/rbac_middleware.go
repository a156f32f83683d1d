package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/response"
)

// RBACService is a local interface so this package does not import the
// rbac package directly.
type RBACService interface {
	Enforce(ctx context.Context, employeeID, resource, action string) (bool, error)
}

// Authorize gates a route on an (resource, action) permission for the
// authenticated employee. Superadmins bypass enforcement entirely.
func Authorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetBool(ContextIsSuperadmin) {
			c.Next()
			return
		}

		employeeID := c.GetString(ContextEmployeeID)
		if employeeID == "" {
			response.Error(c, http.StatusUnauthorized, "Missing authentication context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(c.Request.Context(), employeeID, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Permission check failed", nil)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, "You do not have permission to perform this action", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
