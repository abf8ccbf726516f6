package kpi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipriyanshu25/office.enoylity/internal/shared/apperror"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("kpi.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kpi.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("kpi request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeValidationError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, http.StatusBadRequest, httpErr.Message, nil)
}

func (h *Handler) Add(c *gin.Context) {
	var req AddKPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http add kpi validation failed", zap.Error(err))
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "KPI added", gin.H{"kpi": resp})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateKPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update kpi validation failed", zap.Error(err))
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "KPI updated", gin.H{"kpi": resp})
}

func (h *Handler) GetAll(c *gin.Context) {
	var req GetAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByEmployeeID(c *gin.Context) {
	var req GetByEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.GetByEmployeeID(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByKpiID(c *gin.Context) {
	kpiID := c.Param("kpiId")
	if kpiID == "" {
		response.Error(c, http.StatusBadRequest, "kpiId is required", nil)
		return
	}

	resp, err := h.service.GetByKpiID(c.Request.Context(), kpiID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Punch(c *gin.Context) {
	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Punch(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Punch recorded", gin.H{"kpi": resp})
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteKPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.KpiID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "KPI removed", gin.H{"deleted": true})
}
