package paymentgateway

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
	l := zap.L().Named("paymentgateway.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("paymentgateway.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payment gateway request failed",
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

func (h *Handler) Create(c *gin.Context) {
	var req CreateConfigurationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	cfg, err := h.service.Create(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, cfg, nil)
}

func (h *Handler) Get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cfg, nil)
}

func (h *Handler) List(c *gin.Context) {
	q := listquery.Parse(c, "priority")

	configs, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	pagination := response.NewPagination(total, q.Page, q.Limit)
	response.Success(c, http.StatusOK, configs, &pagination)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateConfigurationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	cfg, err := h.service.Update(c.Request.Context(), c.GetString("employee_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cfg, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	cfg, err := h.service.UpdateStatus(c.Request.Context(), c.GetString("employee_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cfg, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
