package api

import (
	_ "mnestswap/docs"
	"mnestswap/internal/swap/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(swapHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(RequestLogger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/", swapHandler.Page)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/account", swapHandler.GetAccount)
		r.Post("/convert", swapHandler.Convert)
		r.Post("/swaps", swapHandler.SubmitSwap)
		r.Get("/wallet", swapHandler.GetWallet)

		r.Post("/sessions", swapHandler.CreateSession)
		r.Get("/sessions/{id}", swapHandler.GetSession)
		r.Delete("/sessions/{id}", swapHandler.ResetSession)
		r.Post("/sessions/{id}/edits", swapHandler.ApplyEdit)
		r.Put("/sessions/{id}/account", swapHandler.SetWalletAccount)
	})
	return router
}
