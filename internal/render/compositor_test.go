package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"server/internal/fetch"
	"server/internal/fonts"
	"server/internal/layout"
)

type stubFetcher struct {
	images map[string]image.Image
	errs   map[string]error
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	if err, ok := s.errs[url]; ok {
		return nil, err
	}
	if img, ok := s.images[url]; ok {
		return img, nil
	}
	return nil, &fetch.Error{URL: url, Err: errors.New("no stub")}
}

type stubFaces struct{}

func (stubFaces) Face(ctx context.Context, customURL string, weight fonts.Weight, size float64) font.Face {
	return basicfont.Face7x13
}

func solidImage(w, h int, c color.NRGBA) image.Image {
	return imaging.New(w, h, c)
}

func baseSpec(format string) AdSpec {
	return AdSpec{
		BackgroundURL:     "https://assets.test/bg.jpg",
		Headline:          "Summer Sale",
		Subheadline:       "Up to 50% off",
		CTAText:           "Shop Now",
		Format:            ResolveFormat(format),
		PrimaryColor:      Color{},
		SecondaryColor:    Color{R: 255, G: 255, B: 255},
		AccentColor:       Color{R: 255, G: 215, B: 0},
		TextColor:         Color{R: 255, G: 255, B: 255},
		LogoScale:         1,
		AddOverlay:        true,
		OverlayOpacity:    0.3,
		UppercaseHeadline: true,
		UppercaseCTA:      true,
	}
}

func newTestRenderer(f *stubFetcher) *Renderer {
	return &Renderer{Fetcher: f, Fonts: stubFaces{}, Log: zerolog.Nop()}
}

func TestRenderSquareCreative(t *testing.T) {
	fetcher := &stubFetcher{images: map[string]image.Image{
		"https://assets.test/bg.jpg": solidImage(200, 100, color.NRGBA{R: 200, A: 255}),
	}}
	r := newTestRenderer(fetcher)

	res, err := r.Render(context.Background(), baseSpec("square"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if res.Width != 1080 || res.Height != 1080 {
		t.Fatalf("result dimensions = %dx%d, want 1080x1080", res.Width, res.Height)
	}
	if res.Direction != "ltr" {
		t.Fatalf("direction = %q, want ltr", res.Direction)
	}

	decoded, err := png.Decode(bytes.NewReader(res.PNG))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 1080 || b.Dy() != 1080 {
		t.Fatalf("PNG bounds = %v, want 1080x1080", b)
	}
}

func TestRenderRTLHeadline(t *testing.T) {
	fetcher := &stubFetcher{images: map[string]image.Image{
		"https://assets.test/bg.jpg": solidImage(64, 64, color.NRGBA{B: 120, A: 255}),
	}}
	r := newTestRenderer(fetcher)

	spec := baseSpec("story")
	spec.Headline = "تخفيضات الصيف"
	res, err := r.Render(context.Background(), spec)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if res.Direction != "rtl" {
		t.Fatalf("direction = %q, want rtl", res.Direction)
	}
	if res.Width != 1080 || res.Height != 1920 {
		t.Fatalf("result dimensions = %dx%d, want 1080x1920", res.Width, res.Height)
	}
}

func TestRenderLogoFetchFailureIsNotFatal(t *testing.T) {
	const logoURL = "https://assets.test/logo.png"
	fetcher := &stubFetcher{
		images: map[string]image.Image{
			"https://assets.test/bg.jpg": solidImage(64, 64, color.NRGBA{G: 120, A: 255}),
		},
		errs: map[string]error{
			logoURL: &fetch.Error{URL: logoURL, Err: fmt.Errorf("status 404")},
		},
	}
	r := newTestRenderer(fetcher)

	spec := baseSpec("square")
	spec.LogoURL = logoURL
	spec.LogoAnchor = layout.AnchorBottomRight
	spec.LogoBackground = layout.LogoBackgroundWhite
	if _, err := r.Render(context.Background(), spec); err != nil {
		t.Fatalf("Render() error = %v, want logo failure absorbed", err)
	}
}

func TestRenderWithLogoAndPlaque(t *testing.T) {
	fetcher := &stubFetcher{images: map[string]image.Image{
		"https://assets.test/bg.jpg":   solidImage(64, 64, color.NRGBA{G: 120, A: 255}),
		"https://assets.test/logo.png": solidImage(400, 200, color.NRGBA{R: 10, G: 20, B: 30, A: 255}),
	}}
	r := newTestRenderer(fetcher)

	spec := baseSpec("square")
	spec.LogoURL = "https://assets.test/logo.png"
	spec.LogoAnchor = layout.AnchorTopRight
	spec.LogoBackground = layout.LogoBackgroundDark
	res, err := r.Render(context.Background(), spec)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(res.PNG)); err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
}

func TestRenderBackgroundFailurePropagates(t *testing.T) {
	fetcher := &stubFetcher{errs: map[string]error{
		"https://assets.test/bg.jpg": &fetch.Error{URL: "https://assets.test/bg.jpg", Err: fmt.Errorf("status 404")},
	}}
	r := newTestRenderer(fetcher)

	_, err := r.Render(context.Background(), baseSpec("square"))
	if err == nil {
		t.Fatalf("Render() expected error for missing background")
	}
	var re *Error
	if !errors.As(err, &re) || re.Stage != "background" {
		t.Fatalf("error = %v, want *Error with background stage", err)
	}
	var fe *fetch.Error
	if !errors.As(err, &fe) {
		t.Fatalf("error chain does not expose *fetch.Error: %v", err)
	}
}

func TestRenderWithoutCTA(t *testing.T) {
	fetcher := &stubFetcher{images: map[string]image.Image{
		"https://assets.test/bg.jpg": solidImage(64, 64, color.NRGBA{A: 255}),
	}}
	r := newTestRenderer(fetcher)

	spec := baseSpec("landscape")
	spec.CTAText = ""
	spec.Subheadline = ""
	res, err := r.Render(context.Background(), spec)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if res.Width != 1200 || res.Height != 628 {
		t.Fatalf("result dimensions = %dx%d, want 1200x628", res.Width, res.Height)
	}
}
