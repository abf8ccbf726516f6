package invoice

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ipriyanshu25/office.enoylity/internal/middleware"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/apperror"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/response"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("invoice.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("invoice.handler")
	}
	return &Handler{service: service, logger: l}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, entity BusinessEntity, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("invoice request failed",
		zap.String("entity", entity.Key),
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

// Generate persists the invoice and streams the rendered PDF back to the
// caller, skipping the usual JSON envelope.
func (h *Handler) Generate(entity BusinessEntity) gin.HandlerFunc {
	return func(c *gin.Context) {
		lockKey := c.GetString(middleware.IdempotencyLockKey)
		cacheKey := c.GetString(middleware.IdempotencyCacheKey)
		if h.rdb != nil && lockKey != "" {
			defer h.rdb.Del(c.Request.Context(), lockKey)
		}

		var req GenerateInvoiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("http generate invoice validation failed",
				zap.String("entity", entity.Key),
				zap.Error(err),
			)
			h.writeValidationError(c, err)
			return
		}

		doc, err := h.service.Generate(c.Request.Context(), entity, req)
		if err != nil {
			h.writeServiceError(c, entity, err)
			return
		}

		if h.rdb != nil && cacheKey != "" {
			cached := middleware.CachedDocument{
				ContentType: "application/pdf",
				FileName:    doc.FileName,
				Body:        doc.PDF,
			}
			if payload, marshalErr := json.Marshal(cached); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour).Err()
			}
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
		c.Data(http.StatusOK, "application/pdf", doc.PDF)
	}
}

func (h *Handler) GetList(entity BusinessEntity) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GetListRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeValidationError(c, err)
			return
		}

		resp, err := h.service.GetList(c.Request.Context(), entity, req)
		if err != nil {
			h.writeServiceError(c, entity, err)
			return
		}

		response.Success(c, http.StatusOK, resp)
	}
}

func (h *Handler) GetInvoice(entity BusinessEntity) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GetInvoiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeValidationError(c, err)
			return
		}

		resp, err := h.service.GetInvoice(c.Request.Context(), entity, req.ID)
		if err != nil {
			h.writeServiceError(c, entity, err)
			return
		}

		response.Success(c, http.StatusOK, gin.H{"invoice": resp})
	}
}

func (h *Handler) Delete(entity BusinessEntity) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteInvoiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeValidationError(c, err)
			return
		}

		if err := h.service.Delete(c.Request.Context(), entity, req.ID); err != nil {
			h.writeServiceError(c, entity, err)
			return
		}

		response.SuccessWithMessage(c, http.StatusOK, "Invoice removed", gin.H{"deleted": true})
	}
}
