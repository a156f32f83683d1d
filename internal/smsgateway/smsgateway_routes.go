package smsgateway

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
	gateways := r.Group("/sms-gateways")
	gateways.Use(requireEmployee)
	{
		gateways.GET("", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.ListConfigurations)
		gateways.GET("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.GetConfiguration)
		gateways.POST("", middleware.Authorize(rbacService, "settings", rbac.ActionAdd), handler.CreateConfiguration)
		gateways.PUT("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionEdit), handler.UpdateConfiguration)
		gateways.PATCH("/:id/status", middleware.Authorize(rbacService, "settings", rbac.ActionEdit), handler.UpdateConfigurationStatus)
		gateways.DELETE("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionDelete), handler.DeleteConfiguration)
	}

	templates := r.Group("/sms-templates")
	templates.Use(requireEmployee)
	{
		templates.GET("", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.ListTemplates)
		templates.GET("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.GetTemplate)
		templates.POST("", middleware.Authorize(rbacService, "settings", rbac.ActionAdd), handler.CreateTemplate)
		templates.PUT("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionEdit), handler.UpdateTemplate)
		templates.DELETE("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionDelete), handler.DeleteTemplate)
	}
}
