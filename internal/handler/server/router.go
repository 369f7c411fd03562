package server

import (
	"net/http"
	"time"

	"github.com/bagdasarian/squad-builder/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func SetupRoutes(h *handler.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", h.Healthz)
	r.Get("/formations", h.ListFormations)

	r.Get("/players", h.ListPlayers)
	r.Get("/players/{playerID}", h.GetPlayer)

	r.Route("/squads", func(r chi.Router) {
		r.Post("/", h.CreateSquad)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", h.GetSquad)
			r.Put("/lineup/{slot}", h.AssignPlayer)
			r.Delete("/lineup/{slot}", h.RemovePlayer)
			r.Post("/bench", h.AddToBench)
			r.Delete("/bench/{seat}", h.RemoveFromBench)
			r.Post("/clear", h.ClearSquad)
			r.Put("/formation", h.ChangeFormation)
			r.Get("/summary", h.GetSummary)
			r.Post("/optimize", h.Optimize)
			r.Post("/sample", h.LoadSample)
		})
	})

	r.Get("/stats/selections", h.GetSelectionStats)
	r.Get("/stats/formations", h.GetFormationStats)

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
