package textshape

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Shape prepares logical-order text for a left-to-right glyph renderer.
// Left-to-right input is returned unchanged. Right-to-left input gets two
// passes: Arabic contextual letter shaping, then reordering of the
// mixed-direction runs into visual order so that embedded numerals and Latin
// brand names keep their reading order. Shaping failures are cosmetic, so any
// internal error or panic yields the original text instead of propagating.
func Shape(text string) (display string) {
	if !IsRightToLeft(text) {
		return text
	}
	display = text
	defer func() {
		if recover() != nil {
			display = text
		}
	}()

	shaped := shapeArabic(text)
	visual, err := reorderVisual(shaped)
	if err != nil {
		return shaped
	}
	return visual
}

// reorderVisual runs the Unicode bidi algorithm over logical-order text and
// concatenates the runs in visual order, reversing the runes of each
// right-to-left run. Ordering.Run yields runs in logical order; in a
// right-to-left paragraph the reader meets the last logical run first, so the
// run sequence itself is emitted in reverse.
func reorderVisual(text string) (string, error) {
	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.RightToLeft)); err != nil {
		return "", err
	}
	ordering, err := p.Order()
	if err != nil {
		return "", err
	}

	rtlBase := !p.IsLeftToRight()

	var b strings.Builder
	b.Grow(len(text))
	n := ordering.NumRuns()
	for i := 0; i < n; i++ {
		idx := i
		if rtlBase {
			idx = n - 1 - i
		}
		run := ordering.Run(idx)
		if run.Direction() == bidi.RightToLeft {
			b.WriteString(reverseRunes(run.String()))
		} else {
			b.WriteString(run.String())
		}
	}
	return b.String(), nil
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
