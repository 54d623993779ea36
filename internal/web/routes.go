package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/beauty-advisor/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	// Create handlers
	analyzeHandler := handlers.NewAnalyzeHandler(s.service, s.log)
	adviceHandler := handlers.NewAdviceHandler(s.service.Mapper(), s.validate)
	catalogHandler := handlers.NewCatalogHandler(s.service.Mapper().Catalog())
	configHandler := handlers.NewConfigHandler(s.config, s.history != nil)
	historyHandler := handlers.NewHistoryHandler(s.history, s.log)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handlers.HealthCheck)
		r.Get("/config", configHandler.Get)
		r.Get("/catalog", catalogHandler.Get)

		// Analysis
		r.Post("/analyze", analyzeHandler.Analyze)
		r.Post("/analyze/overlay", analyzeHandler.Overlay)
		r.Post("/advice", adviceHandler.Get)

		// History
		r.Get("/analyses", historyHandler.List)
		r.Get("/analyses/{id}", historyHandler.Get)
	})
}
