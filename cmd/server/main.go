package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"cropadvisor/config"
	"cropadvisor/pkg/catalog/source"
	"cropadvisor/pkg/logging"
	"cropadvisor/router"

	healthCtrlImp "cropadvisor/pkg/health/controllerImp"
	recCtrlImp "cropadvisor/pkg/recommend/controllerImp"
	recSvcImp "cropadvisor/pkg/recommend/serviceImp"
	"cropadvisor/pkg/soil/provider"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()
	log.Info("config loaded",
		zap.String("port", cfg.Port),
		zap.String("catalog_source", cfg.CatalogSource),
		zap.Bool("catalog_strict", cfg.CatalogStrict),
		zap.Duration("provider_timeout", cfg.ProviderTimeout),
		zap.Bool("llm", cfg.LLMEnabled()),
	)

	// 2) Catalog (read once, immutable afterwards)
	cat, db, err := source.Open(cfg, log)
	if err != nil {
		log.Fatal("load catalog", zap.Error(err))
	}
	if err := source.Check(cat, cfg.CatalogStrict, log); err != nil {
		log.Fatal("catalog failed validation", zap.Error(err))
	}
	log.Info("catalog ready", zap.Int("crops", cat.Len()))

	// 3) Soil providers (vision only when an LLM endpoint is configured)
	var vision provider.Provider
	if cfg.LLMEnabled() {
		vision = provider.NewVision(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	}
	prov := provider.NewDefault(cfg.SimulatedDelay, vision, log)

	// 4) Service + controllers
	recSvc := recSvcImp.NewRecommendService(cat, prov, cfg.ProviderTimeout, log)
	recCtrl := recCtrlImp.New(recSvc, cat, cfg.MaxUploadBytes, log)
	hCtrl := healthCtrlImp.NewHealthCtrl(cat, db)

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echoMiddleware.BodyLimit(fmt.Sprintf("%dB", cfg.MaxUploadBytes+1<<20)))
	e.Use(requestLogger(log))

	r := router.New(e, recCtrl, hCtrl)

	// 6) Start
	log.Info("listening", zap.String("addr", ":"+cfg.Port))
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
