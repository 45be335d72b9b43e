package render

import "strings"

// Aspect groups canvas shapes that share layout rules.
type Aspect string

const (
	AspectSquare    Aspect = "square"
	AspectVertical  Aspect = "vertical"
	AspectLandscape Aspect = "landscape"
)

// FormatPreset fixes the canvas dimensions and the safe bands reserved for
// platform chrome (profile header on top, CTA rail on the bottom).
type FormatPreset struct {
	Name       string
	Width      int
	Height     int
	SafeTop    float64 // fraction of height kept clear at the top
	SafeBottom float64 // fraction of height kept clear at the bottom
}

// Aspect classifies the preset by its width to height ratio.
func (f FormatPreset) Aspect() Aspect {
	switch {
	case f.Width > f.Height:
		return AspectLandscape
	case f.Height > f.Width:
		return AspectVertical
	default:
		return AspectSquare
	}
}

// SafeTopPx returns the top safe band in pixels.
func (f FormatPreset) SafeTopPx() float64 { return float64(f.Height) * f.SafeTop }

// SafeBottomPx returns the Y coordinate where the bottom safe band begins.
func (f FormatPreset) SafeBottomPx() float64 { return float64(f.Height) * (1 - f.SafeBottom) }

var formatPresets = map[string]FormatPreset{
	"instagram_story": {Name: "instagram_story", Width: 1080, Height: 1920, SafeTop: 0.15, SafeBottom: 0.20},
	"instagram_feed":  {Name: "instagram_feed", Width: 1080, Height: 1080, SafeTop: 0.05, SafeBottom: 0.05},
	"facebook_feed":   {Name: "facebook_feed", Width: 1200, Height: 628, SafeTop: 0.08, SafeBottom: 0.08},
	"facebook_story":  {Name: "facebook_story", Width: 1080, Height: 1920, SafeTop: 0.15, SafeBottom: 0.20},
	"tiktok":          {Name: "tiktok", Width: 1080, Height: 1920, SafeTop: 0.20, SafeBottom: 0.25},
}

var formatAliases = map[string]string{
	"square":    "instagram_feed",
	"feed":      "instagram_feed",
	"story":     "instagram_story",
	"reel":      "instagram_story",
	"landscape": "facebook_feed",
}

// ResolveFormat maps a request format name onto a preset. Unknown or empty
// names fall back to the square feed canvas.
func ResolveFormat(name string) FormatPreset {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := formatAliases[key]; ok {
		key = canonical
	}
	if preset, ok := formatPresets[key]; ok {
		return preset
	}
	return formatPresets["instagram_feed"]
}
