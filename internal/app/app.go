package app

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
	"github.com/ipriyanshu25/office.enoylity/internal/auth"
	"github.com/ipriyanshu25/office.enoylity/internal/employee"
	"github.com/ipriyanshu25/office.enoylity/internal/invoice"
	"github.com/ipriyanshu25/office.enoylity/internal/kpi"
	"github.com/ipriyanshu25/office.enoylity/internal/messaging/kafka"
	"github.com/ipriyanshu25/office.enoylity/internal/payslip"
	"github.com/ipriyanshu25/office.enoylity/internal/settings"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/connection"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/counter"
	"github.com/ipriyanshu25/office.enoylity/internal/subadmin"
)

// BuildApp connects the infrastructure and mounts every module on the
// router.
func BuildApp(router *gin.Engine) error {
	logger := zap.L()

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := migrate(gormDB); err != nil {
		return err
	}
	logger.Info("database schema migrated")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	gate, err := access.NewGate(logger)
	if err != nil {
		return err
	}

	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	// Settings carries one invoice profile per business entity.
	seeds := make([]settings.InvoiceTypeSeed, 0, len(invoice.BusinessEntities))
	for _, entity := range invoice.BusinessEntities {
		seeds = append(seeds, settings.InvoiceTypeSeed{
			EntityKey:   entity.Key,
			InvoiceType: entity.DisplayName,
		})
	}
	settingsRepo := settings.NewRepository(gormDB)
	settingsService := settings.NewService(settingsRepo, seeds, logger)
	settingsHandler := settings.NewHandler(settingsService, logger)

	employeeRepo := employee.NewRepository(gormDB)
	employeeService := employee.NewServiceWithOutbox(sqlDB, employeeRepo, counterRepo, outboxRepo, redisClient, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)

	invoiceRepo := invoice.NewRepository(gormDB)
	invoiceService := invoice.NewServiceWithOutbox(sqlDB, invoiceRepo, counterRepo, outboxRepo, settingsService, logger)
	invoiceHandler := invoice.NewHandlerWithRedis(invoiceService, redisClient, logger)

	payslipRepo := payslip.NewRepository(gormDB)
	payslipService := payslip.NewService(sqlDB, payslipRepo, employeeRepo, settingsService, counterRepo, outboxRepo, logger)
	payslipHandler := payslip.NewHandlerWithRedis(payslipService, redisClient, logger)

	kpiRepo := kpi.NewRepository(gormDB)
	kpiService := kpi.NewService(kpiRepo, employeeRepo, counterRepo, logger)
	kpiHandler := kpi.NewHandler(kpiService, logger)

	subadminRepo := subadmin.NewRepository(gormDB)
	subadminService := subadmin.NewService(subadminRepo, employeeRepo, counterRepo, logger)
	subadminHandler := subadmin.NewHandler(subadminService, logger)

	authRepo := auth.NewRepository(gormDB)
	authService := auth.NewService(authRepo, subadminService, logger)
	authHandler := auth.NewHandler(authService, logger)

	if err := authService.EnsureDefaultAdmin(context.Background()); err != nil {
		return err
	}

	auth.RegisterRoutes(router, authHandler, logger)
	employee.RegisterRoutes(router, employeeHandler, gate, logger)
	invoice.RegisterRoutes(router, invoiceHandler, gate, logger, redisClient)
	payslip.RegisterRoutes(router, payslipHandler, gate, logger, redisClient)
	kpi.RegisterRoutes(router, kpiHandler, gate, logger)
	subadmin.RegisterRoutes(router, subadminHandler, gate, logger)
	settings.RegisterRoutes(router, settingsHandler, gate, logger)

	return nil
}
