package layout

// LogoMaxBox returns the maximum logo box for a canvas. Vertical story/reel
// formats carry more platform UI, so their box is tighter than square and
// landscape feed formats.
func LogoMaxBox(canvasWidth, canvasHeight int, vertical bool) (maxW, maxH float64) {
	if vertical {
		return float64(canvasWidth) * 0.30, float64(canvasHeight) * 0.10
	}
	return float64(canvasWidth) * 0.35, float64(canvasHeight) * 0.15
}

// FitLogo shrinks a logo to fit the maximum box preserving aspect ratio:
// width is constrained first, then height re-constrains if the result is
// still too tall. The user scale factor multiplies the fitted dimensions and
// is deliberately not re-clipped, so scale 2.0 yields exactly twice the
// fitted box.
func FitLogo(logoWidth, logoHeight int, maxW, maxH, scale float64) (int, int) {
	if logoWidth <= 0 || logoHeight <= 0 {
		return 0, 0
	}
	w, h := float64(logoWidth), float64(logoHeight)
	ratio := w / h
	if w > maxW {
		w = maxW
		h = maxW / ratio
	}
	if h > maxH {
		h = maxH
		w = maxH * ratio
	}
	return int(w * scale), int(h * scale)
}

// PositionLogo resolves a 9-point grid anchor into the logo's top-left pixel
// coordinates. safeTopPx is the content band start row and safeBottomPx its
// end row; top and bottom anchors stay padded inside the band while middle
// anchors center on the full canvas.
func PositionLogo(anchor LogoAnchor, logoW, logoH, canvasW, canvasH int, padding, safeTopPx, safeBottomPx float64) (x, y float64) {
	switch anchor.Col() {
	case 1:
		x = (float64(canvasW) - float64(logoW)) / 2
	case 2:
		x = float64(canvasW) - float64(logoW) - padding
	default:
		x = padding
	}
	switch anchor.Row() {
	case 1:
		y = (float64(canvasH) - float64(logoH)) / 2
	case 2:
		y = safeBottomPx - float64(logoH) - padding
	default:
		y = safeTopPx + padding
	}
	return x, y
}
