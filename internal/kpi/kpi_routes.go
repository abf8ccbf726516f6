package kpi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
	"github.com/ipriyanshu25/office.enoylity/internal/middleware"
)

// RegisterRoutes keeps the dashboard's paths, including the updateKPi
// spelling it has always posted to. Reads only need a session: subadmins see
// their own KPIs through getByEmployeeId without the manage flag.
func RegisterRoutes(
	r *gin.Engine,
	handler *Handler,
	gate access.Gate,
	logger *zap.Logger,
) {
	group := r.Group("/kpi")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/getAll",
			middleware.RateLimitByActor(3, 10),
			handler.GetAll,
		)

		group.POST("/getByEmployeeId",
			middleware.RateLimitByActor(3, 10),
			handler.GetByEmployeeID,
		)

		group.GET("/getByKpiId/:kpiId",
			middleware.RateLimitByActor(3, 10),
			handler.GetByKpiID,
		)

		group.POST("/addkpi",
			middleware.RateLimitByActor(1, 3),
			access.Require(gate, access.DomainKPI, access.ActionManage),
			handler.Add,
		)

		group.POST("/updateKPi",
			middleware.RateLimitByActor(1, 3),
			access.Require(gate, access.DomainKPI, access.ActionManage),
			handler.Update,
		)

		group.POST("/punch",
			middleware.RateLimitByActor(1, 3),
			access.Require(gate, access.DomainKPI, access.ActionManage),
			handler.Punch,
		)

		group.POST("/deleteKpi",
			middleware.RateLimitByActor(0.2, 1),
			access.Require(gate, access.DomainKPI, access.ActionManage),
			handler.Delete,
		)
	}
}
