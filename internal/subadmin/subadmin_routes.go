package subadmin

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
	group := r.Group("/subadmin")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	group.Use(access.Require(gate, access.DomainUserAccess, access.ActionManage))
	{
		group.POST("/register",
			middleware.RateLimitByActor(0.5, 2),
			handler.Register,
		)

		group.POST("/getlist",
			middleware.RateLimitByActor(3, 10),
			handler.GetList,
		)

		group.POST("/deleterecord",
			middleware.RateLimitByActor(0.2, 1),
			handler.Delete,
		)
	}
}
