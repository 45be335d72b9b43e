package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"server/internal/fetch"
	"server/internal/layout"
	"server/internal/render"
)

// adRequest is the generate-ad payload. Pointer fields distinguish "absent"
// from an explicit zero value so defaults only apply when the field is
// missing.
type adRequest struct {
	BackgroundImageURL string  `json:"background_image_url"`
	Headline           string  `json:"headline"`
	Subheadline        string  `json:"subheadline"`
	CTAText            *string `json:"cta_text"`
	LogoURL            string  `json:"logo_url"`

	FontURL         string `json:"font_url"`
	HeadlineFontURL string `json:"headline_font_url"`
	BodyFontURL     string `json:"body_font_url"`

	Format string `json:"format"`

	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color"`
	TextColor      string `json:"text_color"`

	HeadlinePosition string   `json:"headline_position"`
	TextAlignment    string   `json:"text_alignment"`
	LogoPosition     string   `json:"logo_position"`
	LogoBackground   string   `json:"logo_background"`
	LogoScale        *float64 `json:"logo_scale"`

	AddOverlay     *bool    `json:"add_overlay"`
	OverlayOpacity *float64 `json:"overlay_opacity"`

	UppercaseHeadline *bool `json:"uppercase_headline"`
	UppercaseCTA      *bool `json:"uppercase_cta"`
}

type adResponse struct {
	Success       bool   `json:"success"`
	ImageBase64   string `json:"image_base64"`
	Format        string `json:"format"`
	Dimensions    string `json:"dimensions"`
	TextDirection string `json:"text_direction"`
}

// Request defaults matching the documented API contract.
const (
	defaultCTAText        = "Shop Now"
	defaultPrimaryColor   = "#000000"
	defaultSecondaryColor = "#FFFFFF"
	defaultAccentColor    = "#FFD700"
	defaultTextColor      = "#FFFFFF"
	defaultOverlayOpacity = 0.3
)

func (a *App) GenerateAd(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	spec, err := buildSpec(req)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	res, err := a.Renderer.Render(r.Context(), spec)
	if err != nil {
		var fe *fetch.Error
		if errors.As(err, &fe) {
			a.error(w, http.StatusBadRequest, "bad_request",
				fmt.Sprintf("failed to download background image: %v", fe.Err))
			return
		}
		a.Log.Error().Err(err).Msg("ad generation failed")
		a.error(w, http.StatusInternalServerError, "internal", "image generation failed")
		return
	}

	a.json(w, http.StatusOK, adResponse{
		Success:       true,
		ImageBase64:   base64.StdEncoding.EncodeToString(res.PNG),
		Format:        spec.Format.Name,
		Dimensions:    fmt.Sprintf("%dx%d", res.Width, res.Height),
		TextDirection: res.Direction,
	})
}

// buildSpec applies defaults, parses enums and colors and validates ranges.
func buildSpec(req adRequest) (render.AdSpec, error) {
	var spec render.AdSpec

	if req.BackgroundImageURL == "" {
		return spec, errors.New("background_image_url is required")
	}
	if req.Headline == "" {
		return spec, errors.New("headline is required")
	}

	cta := defaultCTAText
	if req.CTAText != nil {
		cta = *req.CTAText
	}

	primary, err := parseColorDefault(req.PrimaryColor, defaultPrimaryColor)
	if err != nil {
		return spec, fmt.Errorf("primary_color: %w", err)
	}
	secondary, err := parseColorDefault(req.SecondaryColor, defaultSecondaryColor)
	if err != nil {
		return spec, fmt.Errorf("secondary_color: %w", err)
	}
	accent, err := parseColorDefault(req.AccentColor, defaultAccentColor)
	if err != nil {
		return spec, fmt.Errorf("accent_color: %w", err)
	}
	textColor, err := parseColorDefault(req.TextColor, defaultTextColor)
	if err != nil {
		return spec, fmt.Errorf("text_color: %w", err)
	}

	overlayOpacity := defaultOverlayOpacity
	if req.OverlayOpacity != nil {
		overlayOpacity = *req.OverlayOpacity
	}
	if overlayOpacity < 0 || overlayOpacity > 1 {
		return spec, errors.New("overlay_opacity must be between 0 and 1")
	}

	logoScale := 1.0
	if req.LogoScale != nil {
		logoScale = *req.LogoScale
	}
	if logoScale <= 0 {
		return spec, errors.New("logo_scale must be positive")
	}

	spec = render.AdSpec{
		BackgroundURL:     req.BackgroundImageURL,
		Headline:          req.Headline,
		Subheadline:       req.Subheadline,
		CTAText:           cta,
		LogoURL:           req.LogoURL,
		FontURL:           req.FontURL,
		HeadlineFontURL:   req.HeadlineFontURL,
		BodyFontURL:       req.BodyFontURL,
		Format:            render.ResolveFormat(req.Format),
		PrimaryColor:      primary,
		SecondaryColor:    secondary,
		AccentColor:       accent,
		TextColor:         textColor,
		Position:          layout.ParseHeadlinePosition(req.HeadlinePosition),
		TextAlign:         layout.ParseAlignment(req.TextAlignment),
		LogoAnchor:        layout.ParseLogoAnchor(req.LogoPosition),
		LogoBackground:    layout.ParseLogoBackground(req.LogoBackground),
		LogoScale:         logoScale,
		AddOverlay:        req.AddOverlay == nil || *req.AddOverlay,
		OverlayOpacity:    overlayOpacity,
		UppercaseHeadline: req.UppercaseHeadline == nil || *req.UppercaseHeadline,
		UppercaseCTA:      req.UppercaseCTA == nil || *req.UppercaseCTA,
	}
	return spec, nil
}

func parseColorDefault(s, def string) (render.Color, error) {
	if s == "" {
		s = def
	}
	return render.ParseHexColor(s)
}
