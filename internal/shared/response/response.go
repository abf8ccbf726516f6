package response

import (
	"github.com/gin-gonic/gin"
)

type Pagination struct {
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int   `json:"totalPages,omitempty"`
	Page         int   `json:"page,omitempty"`
	PageSize     int   `json:"pageSize,omitempty"`
}

func NewPagination(total int64, page, pageSize int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		// round up: (total + pageSize - 1) / pageSize
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	return Pagination{
		TotalRecords: total,
		TotalPages:   totalPages,
		Page:         page,
		PageSize:     pageSize,
	}
}

// Envelope is the wire contract every JSON endpoint answers with.
// Binary (PDF) endpoints bypass it and stream bytes directly.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Details: details,
	})
}
