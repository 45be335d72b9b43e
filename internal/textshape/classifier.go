// Package textshape classifies text direction and prepares right-to-left
// scripts for a renderer that places glyphs left to right.
package textshape

// rtlRanges lists the Unicode blocks treated as right-to-left. Extending
// coverage to another RTL script (Syriac, Thaana, N'Ko) means adding a row.
var rtlRanges = [...]struct{ lo, hi rune }{
	{0x0590, 0x05FF}, // Hebrew
	{0x0600, 0x06FF}, // Arabic
	{0x0750, 0x077F}, // Arabic Supplement
	{0x08A0, 0x08FF}, // Arabic Extended-A
	{0xFB1D, 0xFB4F}, // Hebrew Presentation Forms
	{0xFB50, 0xFDFF}, // Arabic Presentation Forms-A
	{0xFE70, 0xFEFF}, // Arabic Presentation Forms-B
}

// IsRightToLeft reports whether text contains at least one code point from a
// right-to-left script. Latin, CJK and other scripts classify as LTR.
func IsRightToLeft(text string) bool {
	for _, r := range text {
		for _, rng := range rtlRanges {
			if r >= rng.lo && r <= rng.hi {
				return true
			}
		}
	}
	return false
}

// Direction returns "rtl" or "ltr" for the given text.
func Direction(text string) string {
	if IsRightToLeft(text) {
		return "rtl"
	}
	return "ltr"
}
