package rbac

import (
	"github.com/gin-gonic/gin"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/middleware"
)

// RegisterRoutes mounts role, permission catalog and assignment routes.
// requireEmployee is the employee auth gate built in app wiring.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service, requireEmployee gin.HandlerFunc) {
	roles := r.Group("/roles")
	roles.Use(requireEmployee)
	{
		roles.GET("", middleware.Authorize(service, "roles", ActionView), handler.ListRoles)
		roles.GET("/:id", middleware.Authorize(service, "roles", ActionView), handler.GetRole)
		roles.POST("", middleware.Authorize(service, "roles", ActionAdd), handler.CreateRole)
		roles.PUT("/:id", middleware.Authorize(service, "roles", ActionEdit), handler.UpdateRole)
		roles.DELETE("/:id", middleware.Authorize(service, "roles", ActionDelete), handler.DeleteRole)

		roles.GET("/:id/permissions", middleware.Authorize(service, "roles", ActionView), handler.ListRolePermissions)
		roles.PUT("/:id/permissions", middleware.Authorize(service, "roles", ActionEdit), handler.ReplaceRolePermissions)
	}

	permissions := r.Group("/permissions")
	permissions.Use(requireEmployee)
	{
		permissions.GET("/groups", middleware.Authorize(service, "roles", ActionView), handler.ListGroups)
		permissions.GET("/categories", middleware.Authorize(service, "roles", ActionView), handler.ListCategories)
	}

	assignments := r.Group("/employee-roles")
	assignments.Use(requireEmployee)
	{
		assignments.POST("", middleware.Authorize(service, "roles", ActionEdit), handler.AssignEmployeeRole)
		assignments.DELETE("/:id", middleware.Authorize(service, "roles", ActionEdit), handler.RevokeEmployeeRole)
		assignments.GET("/employee/:employee_id", middleware.Authorize(service, "roles", ActionView), handler.ListEmployeeRoles)
	}
}
