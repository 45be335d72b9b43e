package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/fetch"
	"server/internal/fonts"
	"server/internal/http/handlers"
	httpapi "server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/render"
	"server/internal/storage"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// Font cache on local disk; a failure here only disables caching.
	var store *storage.FileStore
	if store, err = storage.NewFileStore(cfg.FontCacheDir); err != nil {
		logger.Warn().Err(err).Msg("font cache unavailable, fonts will be re-downloaded")
		store = nil
	}

	fetcher := fetch.NewImageFetcher(cfg.FetchTimeout)
	resolver := fonts.NewResolver(store, cfg.FontTimeout, logger)
	resolver.SetRemote(fonts.WeightBold, cfg.HeadlineFontURL, cfg.HeadlineFontAlt)
	renderer := &render.Renderer{Fetcher: fetcher, Fonts: resolver, Log: logger}

	app := handlers.NewApp(cfg, logger, renderer)
	router := httpapi.NewRouter(app, logger, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
