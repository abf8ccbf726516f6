package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
	"github.com/ipriyanshu25/office.enoylity/internal/middleware"
)

// RegisterRoutes mounts the login and credential-update endpoints. Login is
// rate limited by IP since there is no identity yet; the update endpoint
// requires a live admin session.
func RegisterRoutes(
	r *gin.Engine,
	handler *Handler,
	logger *zap.Logger,
) {
	group := r.Group("/admin")
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/login",
			middleware.RateLimitByIP(0.5, 5),
			handler.Login,
		)

		group.POST("/update",
			middleware.AuthMiddleware(),
			middleware.RateLimitByActor(0.5, 2),
			access.RequireAdmin(),
			handler.UpdateAdmin,
		)
	}
}
