package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/scorepulse/internal/api/handler"
	"github.com/albapepper/scorepulse/internal/cache"
	"github.com/albapepper/scorepulse/internal/config"
	"github.com/albapepper/scorepulse/internal/provider/cfbd"
	"github.com/albapepper/scorepulse/internal/provider/espn"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
// cfbdClient may be nil when no CFBD key is configured.
func NewRouter(espnClient *espn.Client, cfbdClient *cfbd.Client, appCache *cache.Cache, playerCache *cache.PlayerCache, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "Link", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(espnClient, cfbdClient, appCache, playerCache, cfg, logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/{sport}", func(r chi.Router) {
			r.Get("/games", h.GetGames)
			r.Get("/teams/{teamID}", h.GetTeamDetail)
			r.Get("/players/{playerID}", h.GetPlayerDetail)
			r.Get("/standings", h.GetStandings)
			r.Get("/leaders", h.GetLeaders)
			r.Get("/leaderboard", h.GetLeaderboard)
			r.Get("/bracket", h.GetBracket)
		})
	})

	return r
}
