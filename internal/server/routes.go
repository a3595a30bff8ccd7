package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"medref/internal/handlers"
	"medref/internal/handlers/api"
	"medref/internal/query"
	"medref/internal/tables"
)

// RegisterRoutes registers all application routes over the loaded store.
func (s *Server) RegisterRoutes(store *tables.Store) {
	svc := query.NewService(store)

	// Initialize handlers
	queryHandler := handlers.NewQueryHandler(svc, s.Cfg)
	healthHandler := handlers.NewHealthHandler(store, s.Cfg)
	apiQueryHandler := api.NewQueryHandler(svc)
	apiDatasetHandler := api.NewDatasetHandler(store)

	// Frontend routes
	s.App.Get("/", queryHandler.Index)
	s.App.Get("/query", queryHandler.Query)
	s.App.Get("/health", healthHandler.Show)

	// JSON API routes
	v1 := s.App.Group("/api/v1")
	v1.Get("/diseases/:name/description", apiQueryHandler.Description)
	v1.Get("/diseases/:name/precautions", apiQueryHandler.Precautions)
	v1.Get("/diseases/:name/causes", apiQueryHandler.Causes)
	v1.Get("/diseases/:name/diagnosis", apiQueryHandler.Diagnosis)
	v1.Get("/diseases/:name/research", apiQueryHandler.Research)
	v1.Get("/symptoms/:name/severity", apiQueryHandler.Severity)
	v1.Get("/match", apiQueryHandler.Match)
	v1.Get("/datasets", apiDatasetHandler.List)

	// Operational endpoints
	s.App.Get("/healthz", apiDatasetHandler.Healthz)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
