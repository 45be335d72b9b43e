// Package layout computes where headline, subheadline, CTA button and logo
// land on the ad canvas. It is pure geometry: text measurement is delegated
// to a Measurer collaborator and no drawing happens here.
package layout

import (
	"image/color"
	"strings"
)

// HeadlinePosition selects the vertical region of the content band where the
// headline stack starts.
type HeadlinePosition int

const (
	PositionBottom HeadlinePosition = iota
	PositionTop
	PositionMiddle
)

// ParseHeadlinePosition resolves a request string; anything unrecognised
// falls back to bottom, the default for ad creatives.
func ParseHeadlinePosition(s string) HeadlinePosition {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return PositionTop
	case "middle", "center", "centre":
		return PositionMiddle
	default:
		return PositionBottom
	}
}

// Alignment is the horizontal placement of a text line or button.
type Alignment int

const (
	AlignAuto Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// ParseAlignment resolves a request string; unknown values mean auto.
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft
	case "center", "centre":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignAuto
	}
}

// Resolve collapses AlignAuto using the text block's direction: RTL blocks
// align right, everything else centers. Explicit alignments win untouched.
func (a Alignment) Resolve(rtl bool) Alignment {
	if a != AlignAuto {
		return a
	}
	if rtl {
		return AlignRight
	}
	return AlignCenter
}

// LogoAnchor names one of the nine positions on the 3x3 placement grid.
type LogoAnchor int

const (
	AnchorTopLeft LogoAnchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

// Row returns 0 for top, 1 for middle, 2 for bottom.
func (a LogoAnchor) Row() int { return int(a) / 3 }

// Col returns 0 for left, 1 for center, 2 for right.
func (a LogoAnchor) Col() int { return int(a) % 3 }

var anchorAliases = strings.NewReplacer("-", "_", " ", "_", "centre", "center")

// ParseLogoAnchor resolves a grid anchor name. Both spellings of
// "center"/"centre" are accepted for the middle column and middle row, as are
// separators "-", "_" and space. Unknown names fall back to top-left.
func ParseLogoAnchor(s string) LogoAnchor {
	norm := anchorAliases.Replace(strings.ToLower(strings.TrimSpace(s)))

	row, col := -1, -1
	centers := 0
	for _, part := range strings.Split(norm, "_") {
		switch part {
		case "top":
			row = 0
		case "middle":
			row = 1
		case "bottom":
			row = 2
		case "left":
			col = 0
		case "right":
			col = 2
		case "center":
			centers++
		}
	}
	// "center" fills whichever axis is still open, column first, so that
	// "top_center" is the top-middle cell and a bare "center" is the grid
	// middle.
	for ; centers > 0; centers-- {
		if col == -1 {
			col = 1
		} else if row == -1 {
			row = 1
		}
	}
	if row == -1 && col == -1 {
		return AnchorTopLeft
	}
	if row == -1 {
		if col == 1 {
			row = 1
		} else {
			row = 0
		}
	}
	if col == -1 {
		if row == 1 {
			col = 1
		} else {
			col = 0
		}
	}
	return LogoAnchor(row*3 + col)
}

// LogoBackground selects the plaque drawn behind the logo.
type LogoBackground int

const (
	LogoBackgroundNone LogoBackground = iota
	LogoBackgroundWhite
	LogoBackgroundDark
	LogoBackgroundBlur
)

// ParseLogoBackground resolves a request string; unknown values mean none.
func ParseLogoBackground(s string) LogoBackground {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return LogoBackgroundWhite
	case "dark":
		return LogoBackgroundDark
	case "blur":
		return LogoBackgroundBlur
	default:
		return LogoBackgroundNone
	}
}

// Plaque returns the plaque fill and margin for the mode. ok is false for
// LogoBackgroundNone. The blur mode approximates a glow with a wider, very
// translucent white plate.
func (b LogoBackground) Plaque() (fill color.NRGBA, margin float64, ok bool) {
	switch b {
	case LogoBackgroundWhite:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 200}, 10, true
	case LogoBackgroundDark:
		return color.NRGBA{A: 150}, 10, true
	case LogoBackgroundBlur:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 100}, 20, true
	default:
		return color.NRGBA{}, 0, false
	}
}
