package main

import (
	"net/http"

	"go.uber.org/zap"

	"GeoConsole/internal/config"
	"GeoConsole/internal/handlers"
	"GeoConsole/internal/middleware"
	"GeoConsole/internal/repo"
	"GeoConsole/internal/service"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	dsn := cfg.DatabaseDSN
	if dsn == "" {
		dsn = "geoconsole.db" // dev default: local SQLite file
	}
	gormDB, err := repo.InitDB(dsn)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	if err := repo.SeedDemoData(gormDB); err != nil {
		sugar.Fatalw("failed to seed demo data", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	seriesRepo := repo.NewSeriesRepository(gormDB)
	assetRepo := repo.NewAssetRepository(gormDB)
	shipmentRepo := repo.NewShipmentRepository(gormDB)

	userService := service.NewUserService(userRepo)
	agencyService := service.NewAgencyService(seriesRepo, assetRepo, cfg.FileRoot)
	emailSender := &service.LogEmailSender{Logger: sugar}
	shipmentService := service.NewShipmentService(shipmentRepo, assetRepo, seriesRepo, emailSender, cfg.FileRoot, cfg.AuthSecret)

	h := handlers.NewHandler(userService, agencyService, shipmentService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", dsn,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
