package paymentgateway

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
	gateways := r.Group("/payment-gateways")
	gateways.Use(requireEmployee)
	{
		gateways.GET("", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.List)
		gateways.GET("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.Get)
		gateways.POST("", middleware.Authorize(rbacService, "settings", rbac.ActionAdd), handler.Create)
		gateways.PUT("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionEdit), handler.Update)
		gateways.PATCH("/:id/status", middleware.Authorize(rbacService, "settings", rbac.ActionEdit), handler.UpdateStatus)
		gateways.DELETE("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionDelete), handler.Delete)
	}
}
