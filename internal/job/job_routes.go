package job

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
	// Public job board.
	public := r.Group("/jobs")
	{
		public.GET("/published", handler.ListPublished)
		public.GET("/slug/:slug", handler.GetBySlug)
		public.GET("/:id", handler.GetByID)
		public.POST("/:id/apply", middleware.RateLimitByIP(1, 5), handler.Apply)
	}

	// Employee administration.
	admin := r.Group("/admin/jobs")
	admin.Use(requireEmployee)
	{
		admin.GET("", middleware.Authorize(rbacService, "jobs", rbac.ActionView), handler.List)
		admin.POST("", middleware.Authorize(rbacService, "jobs", rbac.ActionAdd), handler.Create)
		admin.PUT("/:id", middleware.Authorize(rbacService, "jobs", rbac.ActionEdit), handler.Update)
		admin.PATCH("/:id/status", middleware.Authorize(rbacService, "jobs", rbac.ActionEdit), handler.UpdateStatus)
		admin.DELETE("/:id", middleware.Authorize(rbacService, "jobs", rbac.ActionDelete), handler.Delete)
	}
}
