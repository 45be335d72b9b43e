package httpapi

import (
	"net/http"
	"time"

	"server/internal/http/handlers"
	"server/internal/infra"
	ownmw "server/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(app *handlers.App, log zerolog.Logger, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		ownmw.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		ownmw.Logger(log),
		ownmw.CORS(cfg.AllowedOrigins),
	)

	r.Get("/", app.Root)
	r.Get("/v1/healthz", app.Health)

	r.Group(func(r chi.Router) {
		if cfg.RateLimitPerMin > 0 {
			r.Use(ownmw.RateLimit(cfg.RateLimitPerMin, time.Minute))
		}
		r.Post("/v1/generate-ad", app.GenerateAd)
	})

	return r
}
