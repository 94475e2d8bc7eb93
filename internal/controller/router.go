package controller

import (
	"prequal-reporting-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"go.uber.org/zap"
)

type RouterConfig struct {
	AllowOrigins []string
	Logger       *zap.Logger
}

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, cfg RouterConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	handler.Use(middleware.RequestID())
	handler.Use(requestLogger(logger))
	handler.Use(recoverer(logger))
	if len(cfg.AllowOrigins) > 0 {
		handler.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:  cfg.AllowOrigins,
			AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
			ExposeHeaders: []string{echo.HeaderContentDisposition},
		}))
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newReportRoutesHandler(api, services, validate)
	newVendorRoutesHandler(api, services)
}
