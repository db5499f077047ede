/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontends

ROUTE GROUPS:
  /api/calendars         Registered adapters and capabilities
  /api/convert           Cross-calendar conversion
  /api/arithmetic        Day arithmetic and weekday search
  /api/timezones/shift   Fixed-offset timezone conversion
  /api/zones/*           Named-offset registry

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/calendars", h.ListCalendars)
		r.Post("/convert", h.Convert)
		r.Post("/arithmetic", h.Arithmetic)
		r.Post("/timezones/shift", h.ShiftTimezone)

		r.Route("/zones", func(r chi.Router) {
			r.Get("/", h.ListZones)
			r.Post("/", h.PutZone)
			r.Get("/{name}", h.GetZone)
			r.Delete("/{name}", h.DeleteZone)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Calendar Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Calendar Engine API</h1>
<ul>
<li><a href="/api/calendars">/api/calendars</a> - Supported calendars</li>
<li><a href="/api/zones">/api/zones</a> - Named UTC offsets</li>
<li>POST /api/convert - Cross-calendar conversion</li>
<li>POST /api/arithmetic - Date arithmetic</li>
<li>POST /api/timezones/shift - Timezone conversion</li>
</ul>
</body>
</html>`))
	})

	return r
}
