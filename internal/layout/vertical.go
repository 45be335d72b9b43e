package layout

// Spacing constants for the vertical text stack, in canvas pixels.
const (
	headlineLineGap    = 15.0
	subheadlineGap     = 15.0
	subheadlineLineGap = 8.0
	buttonGap          = 30.0
	buttonPaddingX     = 50.0
	buttonPaddingY     = 25.0
	// Fraction of the label height the CTA label is nudged upward to
	// compensate for ascender/descender asymmetry.
	buttonLabelBias = 0.15
)

// TextBlock is a display-ready run of text with its resolved alignment.
type TextBlock struct {
	Lines []string
	Align Alignment
}

// PlacedLine is a wrapped line with its final canvas position and size.
type PlacedLine struct {
	Text       string
	X, Y, W, H float64
}

// Button is the CTA pill geometry plus the label position inside it.
type Button struct {
	X, Y, W, H float64
	Radius     float64
	Label      string
	LabelX     float64
	LabelY     float64
}

// Plan is the vertical layout of the text stack, consumed by the compositor.
type Plan struct {
	Headline    []PlacedLine
	Subheadline []PlacedLine
	Button      *Button
}

// Params feeds PlanVertical. SafeTopPx and SafeBottomPx are the pixel rows of
// the content band's start and end; Padding is the horizontal inset used for
// left/right alignment.
type Params struct {
	CanvasWidth  float64
	SafeTopPx    float64
	SafeBottomPx float64
	Padding      float64
	Position     HeadlinePosition

	Headline     TextBlock
	HeadlineM    Measurer
	Subheadline  TextBlock
	SubheadlineM Measurer
	CTA          string
	CTAAlign     Alignment
	CTAM         Measurer
}

// PlanVertical stacks the headline lines, the optional subheadline lines and
// the CTA button downward from the position-dependent start row. Each line
// and the button are aligned independently.
func PlanVertical(p Params) Plan {
	band := p.SafeBottomPx - p.SafeTopPx

	var y float64
	switch p.Position {
	case PositionTop:
		y = p.SafeTopPx + p.Padding
	case PositionMiddle:
		y = p.SafeTopPx + band/3
	default:
		y = p.SafeBottomPx - band*0.45
	}

	var plan Plan
	for _, line := range p.Headline.Lines {
		w, h := p.HeadlineM.MeasureString(line)
		plan.Headline = append(plan.Headline, PlacedLine{
			Text: line,
			X:    alignX(p.Headline.Align, p.CanvasWidth, p.Padding, w),
			Y:    y,
			W:    w,
			H:    h,
		})
		y += h + headlineLineGap
	}

	if len(p.Subheadline.Lines) > 0 {
		y += subheadlineGap
		for _, line := range p.Subheadline.Lines {
			w, h := p.SubheadlineM.MeasureString(line)
			plan.Subheadline = append(plan.Subheadline, PlacedLine{
				Text: line,
				X:    alignX(p.Subheadline.Align, p.CanvasWidth, p.Padding, w),
				Y:    y,
				W:    w,
				H:    h,
			})
			y += h + subheadlineLineGap
		}
	}

	if p.CTA != "" {
		w, h := p.CTAM.MeasureString(p.CTA)
		bw := w + 2*buttonPaddingX
		bh := h + 2*buttonPaddingY
		bx := alignX(p.CTAAlign, p.CanvasWidth, p.Padding, bw)
		by := y + buttonGap
		plan.Button = &Button{
			X:      bx,
			Y:      by,
			W:      bw,
			H:      bh,
			Radius: bh / 2,
			Label:  p.CTA,
			LabelX: bx + (bw-w)/2,
			LabelY: by + (bh-h)/2 - h*buttonLabelBias,
		}
	}
	return plan
}

// alignX places a box of width w horizontally: left and right sit at the
// padding inset, everything else centers.
func alignX(a Alignment, canvasWidth, padding, w float64) float64 {
	switch a {
	case AlignLeft:
		return padding
	case AlignRight:
		return canvasWidth - padding - w
	default:
		return (canvasWidth - w) / 2
	}
}
