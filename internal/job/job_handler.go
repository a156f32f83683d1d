package job

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
	l := zap.L().Named("job.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("job request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
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
	var req CreateJobRequest
	if !h.bindJSON(c, &req) {
		return
	}

	j, err := h.service.Create(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, j, nil)
}

func (h *Handler) List(c *gin.Context) {
	q := listquery.Parse(c, "created_at")

	filter := ListJobsFilter{
		Status:   c.Query("status"),
		JobType:  c.Query("job_type"),
		BranchID: c.Query("branch_id"),
	}

	jobs, total, err := h.service.List(c.Request.Context(), q, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	pagination := response.NewPagination(total, q.Page, q.Limit)
	response.Success(c, http.StatusOK, jobs, &pagination)
}

func (h *Handler) ListPublished(c *gin.Context) {
	jobs, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, jobs, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	j, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, j, nil)
}

func (h *Handler) GetBySlug(c *gin.Context) {
	j, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, j, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if !h.bindJSON(c, &req) {
		return
	}

	j, err := h.service.Update(c.Request.Context(), c.GetString("employee_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, j, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateJobStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	j, err := h.service.UpdateStatus(c.Request.Context(), c.GetString("employee_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, j, nil)
}

func (h *Handler) Apply(c *gin.Context) {
	j, err := h.service.Apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, j, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
