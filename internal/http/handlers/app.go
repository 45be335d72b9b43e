package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/infra"
	"server/internal/render"
)

// AdRenderer runs the composition pipeline for one resolved creative spec.
type AdRenderer interface {
	Render(ctx context.Context, spec render.AdSpec) (*render.Result, error)
}

type App struct {
	Config   *infra.Config
	Log      zerolog.Logger
	Renderer AdRenderer
}

func NewApp(cfg *infra.Config, log zerolog.Logger, renderer AdRenderer) *App {
	return &App{Config: cfg, Log: log, Renderer: renderer}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": errCode, "message": message},
	})
}
