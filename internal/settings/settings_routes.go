package settings

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
	general := r.Group("/settings/general")
	general.Use(requireEmployee)
	{
		general.GET("", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.GetGeneralSetting)
		general.PUT("", middleware.Authorize(rbacService, "settings", rbac.ActionEdit), handler.UpdateGeneralSetting)
	}

	links := r.Group("/social-media-links")
	links.Use(requireEmployee)
	{
		links.GET("", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.ListSocialLinks)
		links.GET("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.GetSocialLink)
		links.POST("", middleware.Authorize(rbacService, "settings", rbac.ActionAdd), handler.CreateSocialLink)
		links.PUT("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionEdit), handler.UpdateSocialLink)
		links.DELETE("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionDelete), handler.DeleteSocialLink)
	}

	configs := r.Group("/email-configs")
	configs.Use(requireEmployee)
	{
		configs.GET("", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.ListEmailConfigs)
		configs.GET("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.GetEmailConfig)
		configs.POST("", middleware.Authorize(rbacService, "settings", rbac.ActionAdd), handler.CreateEmailConfig)
		configs.PUT("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionEdit), handler.UpdateEmailConfig)
		configs.DELETE("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionDelete), handler.DeleteEmailConfig)
	}

	templates := r.Group("/email-templates")
	templates.Use(requireEmployee)
	{
		templates.GET("", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.ListEmailTemplates)
		templates.GET("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionView), handler.GetEmailTemplate)
		templates.POST("", middleware.Authorize(rbacService, "settings", rbac.ActionAdd), handler.CreateEmailTemplate)
		templates.PUT("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionEdit), handler.UpdateEmailTemplate)
		templates.DELETE("/:id", middleware.Authorize(rbacService, "settings", rbac.ActionDelete), handler.DeleteEmailTemplate)
	}
}
