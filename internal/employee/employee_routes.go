package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/middleware"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	requireEmployee gin.HandlerFunc,
) {
	auth := r.Group("/auth/employees")
	{
		auth.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		auth.POST("/refresh-token", middleware.RateLimitByIP(1, 5), handler.RefreshToken)
	}

	session := r.Group("/auth/employees")
	session.Use(requireEmployee)
	{
		session.GET("/status", handler.Status)
		session.POST("/logout", handler.Logout)
	}

	employees := r.Group("/employees")
	employees.Use(requireEmployee)
	{
		employees.GET("", middleware.Authorize(rbacService, "employees", rbac.ActionView), handler.List)
		employees.GET("/:id", middleware.Authorize(rbacService, "employees", rbac.ActionView), handler.GetByID)
		employees.POST("", middleware.Authorize(rbacService, "employees", rbac.ActionAdd), handler.Create)
		employees.PUT("/:id", middleware.Authorize(rbacService, "employees", rbac.ActionEdit), handler.Update)
		employees.DELETE("/:id", middleware.Authorize(rbacService, "employees", rbac.ActionDelete), handler.Delete)
	}
}
