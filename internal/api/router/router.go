package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bookmehq/bookme-server/internal/booking"
	"github.com/bookmehq/bookme-server/internal/business"
	httpmiddleware "github.com/bookmehq/bookme-server/internal/http/middleware"
	"github.com/bookmehq/bookme-server/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger          *logging.Logger
	BusinessHandler *business.Handler
	BookingHandler  *booking.Handler
	MetricsHandler  http.Handler

	AdminJWTSecret     string
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints consumed by the booking widget
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		public.Get("/config", cfg.BusinessHandler.GetConfig)
		public.Route("/booking", func(r chi.Router) {
			r.Get("/slots", cfg.BookingHandler.GetSlots)
			r.Post("/submit", cfg.BookingHandler.SubmitBooking)
		})
	})

	// Dashboard endpoints (protected by owner JWT)
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(httpmiddleware.OwnerJWT(cfg.AdminJWTSecret))
		admin.Mount("/", cfg.BusinessHandler.AdminRoutes())
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
