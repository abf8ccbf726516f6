package invoice

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
	"github.com/ipriyanshu25/office.enoylity/internal/middleware"
)

// RegisterRoutes mounts the same handler set once per business entity, each
// under its historical route prefix.
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

	for _, entity := range BusinessEntities {
		group := r.Group(entity.RoutePrefix)
		group.Use(middleware.AuthMiddleware())
		group.Use(middleware.ContextLogger(logger))
		{
			group.POST("/getlist",
				middleware.RateLimitByActor(3, 10),
				access.Require(gate, access.DomainInvoice, access.ActionView),
				handler.GetList(entity),
			)

			group.POST("/getinvoice",
				middleware.RateLimitByActor(3, 10),
				access.Require(gate, access.DomainInvoice, access.ActionView),
				handler.GetInvoice(entity),
			)

			if redisClient != nil {
				group.POST("/generate-invoice",
					middleware.Idempotency(redisClient),
					middleware.RateLimitByActor(0.5, 2),
					access.Require(gate, access.DomainInvoice, access.ActionGenerate),
					handler.Generate(entity),
				)
			} else {
				group.POST("/generate-invoice",
					middleware.RateLimitByActor(0.5, 2),
					access.Require(gate, access.DomainInvoice, access.ActionGenerate),
					handler.Generate(entity),
				)
			}

			group.POST("/deleteinvoice",
				middleware.RateLimitByActor(0.2, 1),
				access.Require(gate, access.DomainInvoice, access.ActionDelete),
				handler.Delete(entity),
			)
		}
	}
}
