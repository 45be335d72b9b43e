package textshape

// Contextual letter shaping for Arabic. Each base letter maps to its Unicode
// presentation forms (isolated, final, initial, medial); which form is picked
// depends on whether the neighbouring letters join across the boundary.

type forms struct {
	isolated, final, initial, medial rune
}

// joinsForward reports whether a letter connects to the letter after it,
// i.e. it is dual-joining and has an initial form.
func (f forms) joinsForward() bool { return f.initial != 0 }

// joinsBackward reports whether a letter connects to the letter before it.
func (f forms) joinsBackward() bool { return f.final != 0 }

// arabicForms maps Arabic base letters (U+0621..U+064A) to their presentation
// forms in the U+FE70 block. A zero entry means the form does not exist.
var arabicForms = map[rune]forms{
	0x0621: {0xFE80, 0, 0, 0},           // hamza
	0x0622: {0xFE81, 0xFE82, 0, 0},      // alef with madda
	0x0623: {0xFE83, 0xFE84, 0, 0},      // alef with hamza above
	0x0624: {0xFE85, 0xFE86, 0, 0},      // waw with hamza
	0x0625: {0xFE87, 0xFE88, 0, 0},      // alef with hamza below
	0x0626: {0xFE89, 0xFE8A, 0xFE8B, 0xFE8C}, // yeh with hamza
	0x0627: {0xFE8D, 0xFE8E, 0, 0},      // alef
	0x0628: {0xFE8F, 0xFE90, 0xFE91, 0xFE92}, // beh
	0x0629: {0xFE93, 0xFE94, 0, 0},      // teh marbuta
	0x062A: {0xFE95, 0xFE96, 0xFE97, 0xFE98}, // teh
	0x062B: {0xFE99, 0xFE9A, 0xFE9B, 0xFE9C}, // theh
	0x062C: {0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0}, // jeem
	0x062D: {0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4}, // hah
	0x062E: {0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8}, // khah
	0x062F: {0xFEA9, 0xFEAA, 0, 0},      // dal
	0x0630: {0xFEAB, 0xFEAC, 0, 0},      // thal
	0x0631: {0xFEAD, 0xFEAE, 0, 0},      // reh
	0x0632: {0xFEAF, 0xFEB0, 0, 0},      // zain
	0x0633: {0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4}, // seen
	0x0634: {0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8}, // sheen
	0x0635: {0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC}, // sad
	0x0636: {0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0}, // dad
	0x0637: {0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4}, // tah
	0x0638: {0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8}, // zah
	0x0639: {0xFEC9, 0xFECA, 0xFECB, 0xFECC}, // ain
	0x063A: {0xFECD, 0xFECE, 0xFECF, 0xFED0}, // ghain
	0x0641: {0xFED1, 0xFED2, 0xFED3, 0xFED4}, // feh
	0x0642: {0xFED5, 0xFED6, 0xFED7, 0xFED8}, // qaf
	0x0643: {0xFED9, 0xFEDA, 0xFEDB, 0xFEDC}, // kaf
	0x0644: {0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0}, // lam
	0x0645: {0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4}, // meem
	0x0646: {0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8}, // noon
	0x0647: {0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC}, // heh
	0x0648: {0xFEED, 0xFEEE, 0, 0},      // waw
	0x0649: {0xFEEF, 0xFEF0, 0, 0},      // alef maksura
	0x064A: {0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4}, // yeh
}

const lam = 0x0644

// lamAlefLigatures maps the alef variant following a lam to the lam-alef
// ligature pair {isolated, final}.
var lamAlefLigatures = map[rune][2]rune{
	0x0622: {0xFEF5, 0xFEF6},
	0x0623: {0xFEF7, 0xFEF8},
	0x0625: {0xFEF9, 0xFEFA},
	0x0627: {0xFEFB, 0xFEFC},
}

// isTransparent reports whether a code point is ignored for joining purposes
// (harakat and the tatweel-adjacent combining marks).
func isTransparent(r rune) bool {
	return r >= 0x064B && r <= 0x065F || r == 0x0670
}

// shapeArabic replaces Arabic base letters with the contextual presentation
// form dictated by their neighbours, folding lam+alef pairs into ligatures.
// Non-Arabic code points pass through untouched.
func shapeArabic(text string) string {
	runes := []rune(text)
	out := make([]rune, 0, len(runes))

	// prevBase returns the forms of the nearest preceding base letter,
	// skipping transparent marks.
	prevBase := func(i int) (forms, bool) {
		for j := i - 1; j >= 0; j-- {
			if isTransparent(runes[j]) {
				continue
			}
			f, ok := arabicForms[runes[j]]
			return f, ok
		}
		return forms{}, false
	}
	nextBase := func(i int) (forms, bool) {
		for j := i + 1; j < len(runes); j++ {
			if isTransparent(runes[j]) {
				continue
			}
			f, ok := arabicForms[runes[j]]
			return f, ok
		}
		return forms{}, false
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		f, ok := arabicForms[r]
		if !ok {
			out = append(out, r)
			continue
		}

		prev, prevOK := prevBase(i)
		joinPrev := prevOK && prev.joinsForward()

		// Lam followed directly by an alef variant collapses into a
		// single ligature glyph.
		if r == lam && i+1 < len(runes) {
			if lig, isLig := lamAlefLigatures[runes[i+1]]; isLig {
				if joinPrev {
					out = append(out, lig[1])
				} else {
					out = append(out, lig[0])
				}
				i++
				continue
			}
		}

		nf, nextOK := nextBase(i)
		joinNext := f.joinsForward() && nextOK && nf.joinsBackward()

		var shaped rune
		switch {
		case joinPrev && joinNext:
			shaped = f.medial
		case joinPrev:
			shaped = f.final
		case joinNext:
			shaped = f.initial
		}
		if shaped == 0 {
			shaped = f.isolated
		}
		out = append(out, shaped)
	}
	return string(out)
}
