package settings

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
	"github.com/ipriyanshu25/office.enoylity/internal/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	handler *Handler,
	gate access.Gate,
	logger *zap.Logger,
) {
	group := r.Group("/settings")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	group.Use(access.Require(gate, access.DomainSettings, access.ActionManage))
	{
		group.GET("/getlist",
			middleware.RateLimitByActor(3, 10),
			handler.GetList,
		)

		group.GET("/invoice",
			middleware.RateLimitByActor(3, 10),
			handler.GetInvoice,
		)

		group.POST("/invoice",
			middleware.RateLimitByActor(1, 3),
			handler.UpdateInvoice,
		)

		group.GET("/salary",
			middleware.RateLimitByActor(3, 10),
			handler.GetSalary,
		)

		group.POST("/salary",
			middleware.RateLimitByActor(1, 3),
			handler.UpdateSalary,
		)
	}
}
