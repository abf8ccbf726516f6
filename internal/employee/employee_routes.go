package employee

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
	"github.com/ipriyanshu25/office.enoylity/internal/middleware"
)

// RegisterRoutes keeps the paths exactly as the dashboard calls them.
func RegisterRoutes(
	r *gin.Engine,
	handler *Handler,
	gate access.Gate,
	logger *zap.Logger,
) {
	employees := r.Group("/employee")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.POST("/getlist",
			middleware.RateLimitByActor(3, 10),
			access.Require(gate, access.DomainEmployee, access.ActionView),
			handler.GetList,
		)

		employees.GET("/getrecord",
			middleware.RateLimitByActor(3, 10),
			access.Require(gate, access.DomainEmployee, access.ActionView),
			handler.GetRecord,
		)

		// Options feed the payslip and user-access forms, so gating it on the
		// employee view flag would lock those screens out.
		employees.POST("/getemployeelist",
			middleware.RateLimitByActor(5, 20),
			handler.GetOptions,
		)

		employees.POST("/SaveRecord",
			middleware.RateLimitByActor(0.5, 2),
			access.Require(gate, access.DomainEmployee, access.ActionAdd),
			handler.Save,
		)

		employees.POST("/update",
			middleware.RateLimitByActor(0.5, 2),
			access.Require(gate, access.DomainEmployee, access.ActionAdd),
			handler.Update,
		)

		employees.POST("/delete",
			middleware.RateLimitByActor(0.2, 1),
			access.Require(gate, access.DomainEmployee, access.ActionDelete),
			handler.Delete,
		)
	}
}
