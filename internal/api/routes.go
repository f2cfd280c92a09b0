package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health                                    database health probe
//	GET /api/v1/convert/gregorian/{date}           Gregorian -> Hebrew
//	GET /api/v1/convert/hebrew/{year}/{month}/{day} Hebrew -> Gregorian
//	GET /api/v1/today                              both calendars for today
//	GET /api/v1/molad/{year}                       molad of Tishrei
//	GET /api/v1/years/{year}                       year summary
//	GET /api/v1/holidays/{year}                    holidays of a Hebrew year
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware,
		LoggingMiddleware(logger),
		CORSMiddleware,
	)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/convert/gregorian/{date}", handlers.ConvertGregorian)
		r.Get("/convert/hebrew/{year}/{month}/{day}", handlers.ConvertHebrew)
		r.Get("/today", handlers.GetToday)
		r.Get("/molad/{year}", handlers.GetMolad)
		r.Get("/years/{year}", handlers.GetYear)
		r.Get("/holidays/{year}", handlers.GetHolidays)
	})

	return r
}
