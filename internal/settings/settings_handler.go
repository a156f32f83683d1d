package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/apperror"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("settings.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("settings request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
	)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Message, err.Error())
		return false
	}
	return true
}

func (h *Handler) CreateSocialLink(c *gin.Context) {
	var req CreateSocialLinkRequest
	if !h.bindJSON(c, &req) {
		return
	}

	link, err := h.service.CreateSocialLink(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, link, nil)
}

func (h *Handler) GetSocialLink(c *gin.Context) {
	link, err := h.service.GetSocialLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, link, nil)
}

func (h *Handler) ListSocialLinks(c *gin.Context) {
	links, err := h.service.ListSocialLinks(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, links, nil)
}

func (h *Handler) UpdateSocialLink(c *gin.Context) {
	var req UpdateSocialLinkRequest
	if !h.bindJSON(c, &req) {
		return
	}

	link, err := h.service.UpdateSocialLink(c.Request.Context(), c.GetString("employee_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, link, nil)
}

func (h *Handler) DeleteSocialLink(c *gin.Context) {
	if err := h.service.DeleteSocialLink(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) GetGeneralSetting(c *gin.Context) {
	setting, err := h.service.GetGeneralSetting(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, setting, nil)
}

func (h *Handler) UpdateGeneralSetting(c *gin.Context) {
	var req UpdateGeneralSettingRequest
	if !h.bindJSON(c, &req) {
		return
	}

	setting, err := h.service.UpdateGeneralSetting(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, setting, nil)
}

func (h *Handler) CreateEmailConfig(c *gin.Context) {
	var req CreateEmailConfigRequest
	if !h.bindJSON(c, &req) {
		return
	}

	cfg, err := h.service.CreateEmailConfig(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, cfg, nil)
}

func (h *Handler) GetEmailConfig(c *gin.Context) {
	cfg, err := h.service.GetEmailConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cfg, nil)
}

func (h *Handler) ListEmailConfigs(c *gin.Context) {
	q := listquery.Parse(c, "created_at")

	configs, total, err := h.service.ListEmailConfigs(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	pagination := response.NewPagination(total, q.Page, q.Limit)
	response.Success(c, http.StatusOK, configs, &pagination)
}

func (h *Handler) UpdateEmailConfig(c *gin.Context) {
	var req UpdateEmailConfigRequest
	if !h.bindJSON(c, &req) {
		return
	}

	cfg, err := h.service.UpdateEmailConfig(c.Request.Context(), c.GetString("employee_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cfg, nil)
}

func (h *Handler) DeleteEmailConfig(c *gin.Context) {
	if err := h.service.DeleteEmailConfig(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) CreateEmailTemplate(c *gin.Context) {
	var req CreateEmailTemplateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	t, err := h.service.CreateEmailTemplate(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, t, nil)
}

func (h *Handler) GetEmailTemplate(c *gin.Context) {
	t, err := h.service.GetEmailTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t, nil)
}

func (h *Handler) ListEmailTemplates(c *gin.Context) {
	q := listquery.Parse(c, "created_at")

	templates, total, err := h.service.ListEmailTemplates(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	pagination := response.NewPagination(total, q.Page, q.Limit)
	response.Success(c, http.StatusOK, templates, &pagination)
}

func (h *Handler) UpdateEmailTemplate(c *gin.Context) {
	var req UpdateEmailTemplateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	t, err := h.service.UpdateEmailTemplate(c.Request.Context(), c.GetString("employee_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t, nil)
}

func (h *Handler) DeleteEmailTemplate(c *gin.Context) {
	if err := h.service.DeleteEmailTemplate(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
