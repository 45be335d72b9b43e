package layout

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

// runeMeasurer sizes text at a fixed width per rune, the layout equivalent of
// a monospaced face.
type runeMeasurer struct {
	perRune float64
	height  float64
}

func (m runeMeasurer) MeasureString(s string) (float64, float64) {
	return float64(utf8.RuneCountInString(s)) * m.perRune, m.height
}

func TestWrap(t *testing.T) {
	m := runeMeasurer{perRune: 10, height: 12}

	testCases := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{name: "empty", text: "", maxWidth: 100, want: nil},
		{name: "whitespace only", text: "   ", maxWidth: 100, want: nil},
		{name: "fits on one line", text: "BIG SALE", maxWidth: 100, want: []string{"BIG SALE"}},
		{
			name:     "wraps greedily",
			text:     "new summer styles here",
			maxWidth: 110,
			want:     []string{"new summer", "styles here"},
		},
		{
			name:     "oversized word overflows unwrapped",
			text:     "buy unbelievablylongword now",
			maxWidth: 90,
			want:     []string{"buy", "unbelievablylongword", "now"},
		},
		{
			name:     "oversized word first",
			text:     "unbelievablylongword sale",
			maxWidth: 90,
			want:     []string{"unbelievablylongword", "sale"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.text, m, tc.maxWidth)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Wrap(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestWrapLinesStayWithinWidth(t *testing.T) {
	m := runeMeasurer{perRune: 7, height: 10}
	const maxWidth = 120
	lines := Wrap("the quick brown fox jumps over the lazy dog again and again", m, maxWidth)
	if len(lines) == 0 {
		t.Fatalf("Wrap() returned no lines for non-empty input")
	}
	for _, line := range lines {
		if w, _ := m.MeasureString(line); w > maxWidth {
			t.Fatalf("line %q measures %v, wider than %v", line, w, maxWidth)
		}
	}
}
