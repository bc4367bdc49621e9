package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"GeoConsole/internal/config"
	"GeoConsole/internal/middleware"
	"GeoConsole/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler 라우팅 설정
func NewHandler(
	userService *service.UserService,
	agencyService *service.AgencyService,
	shipmentService *service.ShipmentService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	catalogHandler := NewCatalogHandler(agencyService, logger)
	shipmentHandler := NewShipmentHandler(shipmentService, logger, config)
	agencyHandler := NewAgencyHandler(agencyService, logger)

	// 자산 다운로드는 무겁다 — 에이전시 다운로드 경로만 전역으로 죈다
	downloadLimiter := rate.NewLimiter(rate.Limit(5), 10)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", userHandler.Login)

		// Studio routes (shipment management)
		r.Get("/series", catalogHandler.ListSeries)
		r.Get("/assets", catalogHandler.ListAssets)
		r.Get("/shipments", shipmentHandler.List)
		r.Post("/shipments", shipmentHandler.Create)
		r.Get("/shipments/{id}", shipmentHandler.Get)
		r.Patch("/shipments/{id}/confirm", shipmentHandler.Confirm)
		r.Patch("/shipments/{id}/void", shipmentHandler.Void)
		r.Get("/shipments/{id}/download", shipmentHandler.DownloadURL)
		r.Get("/shipments/{id}/archive", shipmentHandler.Archive) // tokenized, no bearer

		// Agency routes
		r.Get("/agency/series", agencyHandler.ListSeries)
		r.Get("/agency/series/{id}/assets", agencyHandler.SeriesAssets)
		r.Post("/agency/activate", agencyHandler.Activate)
		r.Get("/agency/dashboard", agencyHandler.Dashboard)
		r.Group(func(r chi.Router) {
			r.Use(middleware.WithThrottle(downloadLimiter))
			r.Get("/agency/download/{assetId}", agencyHandler.DownloadAsset)
			r.Get("/agency/download/series/{seriesId}", agencyHandler.DownloadSeries)
		})
	})

	return &Handler{Router: r}
}
