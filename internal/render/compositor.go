// Package render composes the final ad image: background, overlay, text
// stack, CTA button and logo, in that fixed order.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"server/internal/fonts"
	"server/internal/layout"
	"server/internal/textshape"
)

// Fetcher retrieves remote raster assets.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// FaceResolver provides a font face for a weight and size, optionally from a
// custom URL. Implementations never fail; they degrade to a builtin face.
type FaceResolver interface {
	Face(ctx context.Context, customURL string, weight fonts.Weight, size float64) font.Face
}

// Error wraps a failure with the pipeline stage it happened in.
type Error struct {
	Stage string
	Err   error
}

func (e *Error) Error() string { return fmt.Sprintf("render %s: %v", e.Stage, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Result is a finished creative.
type Result struct {
	PNG       []byte
	Width     int
	Height    int
	Direction string
}

// Renderer runs the composition pipeline. It holds no per-request state and is
// safe for concurrent use.
type Renderer struct {
	Fetcher Fetcher
	Fonts   FaceResolver
	Log     zerolog.Logger
}

// shadow parameters for text legibility on busy backgrounds.
const (
	headlineShadowOffset  = 3
	headlineShadowOpacity = 60.0 / 255
	bodyShadowOffset      = 2
	bodyShadowOpacity     = 50.0 / 255
	plaqueCornerRadius    = 15
)

// Render produces the creative described by spec. The background image is the
// only hard dependency; a failed logo fetch degrades to a logo-free creative.
func (r *Renderer) Render(ctx context.Context, spec AdSpec) (*Result, error) {
	f := spec.Format

	bg, err := r.Fetcher.Fetch(ctx, spec.BackgroundURL)
	if err != nil {
		return nil, &Error{Stage: "background", Err: err}
	}

	dc := gg.NewContext(f.Width, f.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Cover crop: scale to fill the canvas, then center crop the overflow.
	cover := imaging.Fill(bg, f.Width, f.Height, imaging.Center, imaging.Lanczos)
	dc.DrawImage(cover, 0, 0)

	if spec.AddOverlay {
		dc.SetRGBA(0, 0, 0, spec.OverlayOpacity)
		dc.DrawRectangle(0, 0, float64(f.Width), float64(f.Height))
		dc.Fill()
	}

	direction := textshape.Direction(spec.Headline)
	headlineRTL := direction == "rtl"

	headlineText := spec.Headline
	// Uppercasing is an all-caps display convention for Latin scripts; it has
	// no meaning for RTL scripts and can break shaping, so skip it there.
	if spec.UppercaseHeadline && !headlineRTL {
		headlineText = strings.ToUpper(headlineText)
	}

	padding := float64(f.Width) * 0.05
	maxTextWidth := float64(f.Width) - padding*2

	headlineFace := r.Fonts.Face(ctx, spec.headlineFontURL(), fonts.WeightBold,
		float64(layout.HeadlineSize(headlineText, f.Width)))
	subFace := r.Fonts.Face(ctx, spec.bodyFontURL(), fonts.WeightSemiBold,
		float64(layout.SubheadlineSize(f.Width)))
	ctaFace := r.Fonts.Face(ctx, spec.bodyFontURL(), fonts.WeightBold,
		float64(layout.CTASize(f.Width)))

	headlineM := newFaceMeasurer(headlineFace)
	subM := newFaceMeasurer(subFace)
	ctaM := newFaceMeasurer(ctaFace)

	ctaText := spec.CTAText
	ctaRTL := textshape.IsRightToLeft(ctaText)
	if spec.UppercaseCTA && !ctaRTL {
		ctaText = strings.ToUpper(ctaText)
	}

	subRTL := textshape.IsRightToLeft(spec.Subheadline)

	plan := layout.PlanVertical(layout.Params{
		CanvasWidth:  float64(f.Width),
		SafeTopPx:    f.SafeTopPx(),
		SafeBottomPx: f.SafeBottomPx(),
		Padding:      padding,
		Position:     spec.Position,
		Headline: layout.TextBlock{
			Lines: shapeLines(layout.Wrap(headlineText, headlineM, maxTextWidth)),
			Align: spec.TextAlign.Resolve(headlineRTL),
		},
		HeadlineM: headlineM,
		Subheadline: layout.TextBlock{
			Lines: shapeLines(layout.Wrap(spec.Subheadline, subM, maxTextWidth)),
			Align: spec.TextAlign.Resolve(subRTL),
		},
		SubheadlineM: subM,
		CTA:          textshape.Shape(ctaText),
		CTAAlign:     spec.TextAlign.Resolve(ctaRTL),
		CTAM:         ctaM,
	})

	dc.SetFontFace(headlineFace)
	for _, line := range plan.Headline {
		r.drawShadowedLine(dc, line, spec.TextColor, headlineShadowOffset, headlineShadowOpacity)
	}

	dc.SetFontFace(subFace)
	for _, line := range plan.Subheadline {
		r.drawShadowedLine(dc, line, spec.TextColor, bodyShadowOffset, bodyShadowOpacity)
	}

	if b := plan.Button; b != nil {
		dc.SetColor(spec.AccentColor.NRGBA(255))
		dc.DrawRoundedRectangle(b.X, b.Y, b.W, b.H, b.Radius)
		dc.Fill()

		dc.SetFontFace(ctaFace)
		dc.SetColor(spec.PrimaryColor.NRGBA(255))
		dc.DrawStringAnchored(b.Label, b.LabelX, b.LabelY, 0, 1)
	}

	if spec.LogoURL != "" {
		r.drawLogo(ctx, dc, spec, padding)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, &Error{Stage: "encode", Err: err}
	}

	return &Result{
		PNG:       buf.Bytes(),
		Width:     f.Width,
		Height:    f.Height,
		Direction: direction,
	}, nil
}

// drawShadowedLine draws one placed line with its soft gray drop shadow. The
// line Y is the top of the text box; the anchored draw converts to baseline.
func (r *Renderer) drawShadowedLine(dc *gg.Context, line layout.PlacedLine, fill Color, offset float64, shadowAlpha float64) {
	dc.SetRGBA(60.0/255, 60.0/255, 60.0/255, shadowAlpha)
	dc.DrawStringAnchored(line.Text, line.X+offset, line.Y+offset, 0, 1)
	dc.SetColor(fill.NRGBA(255))
	dc.DrawStringAnchored(line.Text, line.X, line.Y, 0, 1)
}

// drawLogo fetches, fits, backs and pastes the logo. Any failure is logged
// and the creative ships without a logo.
func (r *Renderer) drawLogo(ctx context.Context, dc *gg.Context, spec AdSpec, padding float64) {
	f := spec.Format

	logo, err := r.Fetcher.Fetch(ctx, spec.LogoURL)
	if err != nil {
		r.Log.Warn().Err(err).Str("url", spec.LogoURL).Msg("logo fetch failed, rendering without logo")
		return
	}

	maxW, maxH := layout.LogoMaxBox(f.Width, f.Height, f.Aspect() == AspectVertical)
	bounds := logo.Bounds()
	w, h := layout.FitLogo(bounds.Dx(), bounds.Dy(), maxW, maxH, spec.LogoScale)
	if w <= 0 || h <= 0 {
		r.Log.Warn().Str("url", spec.LogoURL).Msg("logo has degenerate dimensions, skipping")
		return
	}
	resized := imaging.Resize(logo, w, h, imaging.Lanczos)

	x, y := layout.PositionLogo(spec.LogoAnchor, w, h, f.Width, f.Height,
		padding, f.SafeTopPx(), f.SafeBottomPx())

	if fill, margin, ok := spec.LogoBackground.Plaque(); ok {
		dc.SetColor(fill)
		dc.DrawRoundedRectangle(x-margin, y-margin, float64(w)+margin*2, float64(h)+margin*2, plaqueCornerRadius)
		dc.Fill()
	}

	dc.DrawImage(resized, int(x), int(y))
}

// shapeLines applies bidi reordering and Arabic shaping per display line.
func shapeLines(lines []string) []string {
	for i, line := range lines {
		lines[i] = textshape.Shape(line)
	}
	return lines
}

// faceMeasurer adapts a font face to the layout measurement interface through
// a throwaway 1x1 drawing context.
type faceMeasurer struct {
	dc *gg.Context
}

func newFaceMeasurer(face font.Face) *faceMeasurer {
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	return &faceMeasurer{dc: dc}
}

func (m *faceMeasurer) MeasureString(s string) (float64, float64) {
	return m.dc.MeasureString(s)
}
