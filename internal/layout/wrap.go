package layout

import "strings"

// Measurer reports the rendered pixel size of a string in the font it was
// built for. The renderer backs this with a drawing context; tests use fakes.
type Measurer interface {
	MeasureString(s string) (w, h float64)
}

// Wrap greedily packs whitespace-separated words into lines whose measured
// width stays within maxWidth. A single word that alone exceeds maxWidth is
// emitted as its own line and overflows; it is not hyphenated or truncated.
// Empty or whitespace-only input yields no lines.
func Wrap(text string, m Measurer, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if w, _ := m.MeasureString(candidate); w <= maxWidth || current == "" {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
