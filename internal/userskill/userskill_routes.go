package userskill

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
	skills := r.Group("/user-skills")
	skills.Use(requireEmployee)
	{
		skills.GET("/user/:user_id", middleware.Authorize(rbacService, "users", rbac.ActionView), handler.ListByUser)
		skills.GET("/:id", middleware.Authorize(rbacService, "users", rbac.ActionView), handler.GetByID)
		skills.POST("", middleware.Authorize(rbacService, "users", rbac.ActionEdit), handler.Create)
		skills.PUT("/:id", middleware.Authorize(rbacService, "users", rbac.ActionEdit), handler.Update)
		skills.DELETE("/:id", middleware.Authorize(rbacService, "users", rbac.ActionEdit), handler.Delete)
	}
}
