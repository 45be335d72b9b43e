package layout

import "unicode/utf8"

// HeadlineSize picks the headline point size from its character length,
// bucketed so short punchy headlines dominate the canvas while long ones
// shrink enough to stay inside the safe band.
func HeadlineSize(text string, canvasWidth int) int {
	n := utf8.RuneCountInString(text)
	switch {
	case n <= 15:
		return int(float64(canvasWidth) * 0.09)
	case n <= 25:
		return int(float64(canvasWidth) * 0.075)
	case n <= 40:
		return int(float64(canvasWidth) * 0.065)
	default:
		return int(float64(canvasWidth) * 0.055)
	}
}

// SubheadlineSize is fixed relative to the canvas, independent of text
// length; secondary copy stays legible but subordinate.
func SubheadlineSize(canvasWidth int) int {
	return int(float64(canvasWidth) * 0.055)
}

// CTASize is the button label point size.
func CTASize(canvasWidth int) int {
	return int(float64(canvasWidth) * 0.04)
}
