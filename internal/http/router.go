package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	adjustmentHandler "github.com/attesto/attesto/internal/http/adjustment"
	"github.com/attesto/attesto/internal/http/auth"
	correctionHandler "github.com/attesto/attesto/internal/http/correction"
	groupHandler "github.com/attesto/attesto/internal/http/group"
	quoteHandler "github.com/attesto/attesto/internal/http/quote"
	ratesheetHandler "github.com/attesto/attesto/internal/http/ratesheet"
)

func New(
	allowedOrigins []string,
	jwtSecret string,
	quotesV1 *quoteHandler.Handler,
	groupsV1 *groupHandler.Handler,
	correctionsV1 *correctionHandler.Handler,
	adjustmentsV1 *adjustmentHandler.Handler,
	ratesV1 *ratesheetHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))

		r.Route("/quotes", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			quotesV1.Routes(r)

			r.Route("/{quoteID}/corrections", correctionsV1.Routes)
			r.Route("/{quoteID}/adjustments", adjustmentsV1.Routes)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			groupsV1.Routes(r)
		})

		r.Route("/rates", ratesV1.Routes)
	})

	return router
}
