package user

import (
	"github.com/gin-gonic/gin"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/middleware"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/rbac"
)

// RegisterRoutes mounts customer auth/self-service routes plus the
// employee-facing user admin routes. The auth gates are built in app
// wiring so this package stays free of repository knowledge.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	requireUser gin.HandlerFunc,
	requireEmployee gin.HandlerFunc,
) {
	auth := r.Group("/auth/users")
	{
		auth.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		auth.POST("/signup", middleware.RateLimitByIP(0.5, 3), handler.Signup)
		auth.POST("/refresh-token", middleware.RateLimitByIP(1, 5), handler.RefreshToken)
		auth.POST("/request-password-reset", middleware.RateLimitByIP(0.2, 2), handler.RequestPasswordReset)
		auth.POST("/reset-password", middleware.RateLimitByIP(0.5, 3), handler.ResetPassword)
	}

	me := r.Group("/users")
	me.Use(requireUser)
	{
		me.GET("/me", handler.GetMe)
		me.POST("/change-password", middleware.RateLimitByPrincipal(0.5, 3), handler.ChangePassword)
	}

	admin := r.Group("/admin/users")
	admin.Use(requireEmployee)
	{
		admin.GET("", middleware.Authorize(rbacService, "users", rbac.ActionView), handler.List)
		admin.GET("/:id", middleware.Authorize(rbacService, "users", rbac.ActionView), handler.GetByID)
		admin.POST("", middleware.Authorize(rbacService, "users", rbac.ActionAdd), handler.Create)
		admin.PUT("/:id", middleware.Authorize(rbacService, "users", rbac.ActionEdit), handler.Update)
		admin.DELETE("/:id", middleware.Authorize(rbacService, "users", rbac.ActionDelete), handler.Delete)
	}
}
