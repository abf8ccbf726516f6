package payslip

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
	"github.com/ipriyanshu25/office.enoylity/internal/middleware"
)

// RegisterRoutes mounts payslip endpoints under /employee, matching the
// paths the dashboard has always called.
func RegisterRoutes(
	r *gin.Engine,
	handler *Handler,
	gate access.Gate,
	logger *zap.Logger,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	group := r.Group("/employee")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/getpayslips",
			middleware.RateLimitByActor(3, 10),
			access.Require(gate, access.DomainPayslip, access.ActionView),
			handler.GetList,
		)

		if redisClient != nil {
			group.POST("/salaryslip",
				middleware.Idempotency(redisClient),
				middleware.RateLimitByActor(0.5, 2),
				access.Require(gate, access.DomainPayslip, access.ActionGenerate),
				handler.Generate,
			)
		} else {
			group.POST("/salaryslip",
				middleware.RateLimitByActor(0.5, 2),
				access.Require(gate, access.DomainPayslip, access.ActionGenerate),
				handler.Generate,
			)
		}

		group.POST("/deletepayslip",
			middleware.RateLimitByActor(0.2, 1),
			access.Require(gate, access.DomainPayslip, access.ActionDelete),
			handler.Delete,
		)
	}
}
