package render

import "server/internal/layout"

// AdSpec is the fully resolved description of one creative: every default has
// been applied and every enum parsed, so rendering is deterministic from here.
type AdSpec struct {
	BackgroundURL string
	Headline      string
	Subheadline   string
	CTAText       string
	LogoURL       string

	// Custom typography. HeadlineFontURL and BodyFontURL win over FontURL,
	// which applies to all text when set.
	FontURL         string
	HeadlineFontURL string
	BodyFontURL     string

	Format FormatPreset

	PrimaryColor   Color
	SecondaryColor Color
	AccentColor    Color
	TextColor      Color

	Position       layout.HeadlinePosition
	TextAlign      layout.Alignment
	LogoAnchor     layout.LogoAnchor
	LogoBackground layout.LogoBackground
	LogoScale      float64

	AddOverlay     bool
	OverlayOpacity float64

	UppercaseHeadline bool
	UppercaseCTA      bool
}

// headlineFontURL resolves the font source for the headline face.
func (s AdSpec) headlineFontURL() string {
	if s.HeadlineFontURL != "" {
		return s.HeadlineFontURL
	}
	return s.FontURL
}

// bodyFontURL resolves the font source for subheadline and CTA faces.
func (s AdSpec) bodyFontURL() string {
	if s.BodyFontURL != "" {
		return s.BodyFontURL
	}
	return s.FontURL
}
