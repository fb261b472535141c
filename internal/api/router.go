package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/wellnest/wellness-checkin/docs"
	"github.com/wellnest/wellness-checkin/internal/api/handler"
	"github.com/wellnest/wellness-checkin/internal/api/middleware"
)

type Router struct {
	userHandler    *handler.UserHandler
	checkInHandler *handler.CheckInHandler
	statsHandler   *handler.StatsHandler
	adviceHandler  *handler.AdviceHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	checkInHandler *handler.CheckInHandler,
	statsHandler *handler.StatsHandler,
	adviceHandler *handler.AdviceHandler,
) *Router {
	return &Router{
		userHandler:    userHandler,
		checkInHandler: checkInHandler,
		statsHandler:   statsHandler,
		adviceHandler:  adviceHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			r.Route("/{userId}/checkins", func(r chi.Router) {
				r.Get("/today", rt.checkInHandler.Today)
				r.Put("/today/{slot}", rt.checkInHandler.UpdateSlot)
				r.Post("/today/{slot}/submit", rt.checkInHandler.SubmitSlot)
				r.Get("/today/{slot}/analysis", rt.checkInHandler.Analysis)
				r.Get("/history", rt.checkInHandler.History)
			})

			r.Route("/{userId}/stats", func(r chi.Router) {
				r.Get("/streak", rt.statsHandler.Streak)
				r.Get("/weekly-trend", rt.statsHandler.WeeklyTrend)
			})

			r.Post("/{userId}/advice", rt.adviceHandler.Advise)
		})
	})

	return r
}
