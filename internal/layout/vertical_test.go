package layout

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPlanVerticalStartRow(t *testing.T) {
	m := runeMeasurer{perRune: 10, height: 50}
	base := Params{
		CanvasWidth:  1000,
		SafeTopPx:    100,
		SafeBottomPx: 900,
		Padding:      50,
		Headline:     TextBlock{Lines: []string{"SALE"}, Align: AlignCenter},
		HeadlineM:    m,
		SubheadlineM: m,
		CTAM:         m,
	}

	testCases := []struct {
		name     string
		position HeadlinePosition
		wantY    float64
	}{
		{name: "top", position: PositionTop, wantY: 150},          // band start + padding
		{name: "middle", position: PositionMiddle, wantY: 100 + 800.0/3},
		{name: "bottom", position: PositionBottom, wantY: 900 - 800*0.45},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			p.Position = tc.position
			plan := PlanVertical(p)
			if len(plan.Headline) != 1 {
				t.Fatalf("headline lines = %d, want 1", len(plan.Headline))
			}
			if got := plan.Headline[0].Y; !almostEqual(got, tc.wantY) {
				t.Fatalf("headline Y = %v, want %v", got, tc.wantY)
			}
		})
	}
}

func TestPlanVerticalStacksBlocks(t *testing.T) {
	m := runeMeasurer{perRune: 10, height: 50}
	plan := PlanVertical(Params{
		CanvasWidth:  1000,
		SafeTopPx:    0,
		SafeBottomPx: 1000,
		Padding:      50,
		Position:     PositionTop,
		Headline:     TextBlock{Lines: []string{"BIG", "SALE"}, Align: AlignCenter},
		HeadlineM:    m,
		Subheadline:  TextBlock{Lines: []string{"today only"}, Align: AlignCenter},
		SubheadlineM: m,
		CTA:          "SHOP NOW",
		CTAAlign:     AlignCenter,
		CTAM:         m,
	})

	// Headline starts at padding, lines advance by height + 15.
	if got := plan.Headline[0].Y; !almostEqual(got, 50) {
		t.Fatalf("first headline Y = %v, want 50", got)
	}
	if got := plan.Headline[1].Y; !almostEqual(got, 115) {
		t.Fatalf("second headline Y = %v, want 115", got)
	}
	// Subheadline sits one extra gap below the headline stack.
	if got := plan.Subheadline[0].Y; !almostEqual(got, 195) {
		t.Fatalf("subheadline Y = %v, want 195", got)
	}
	// Button geometry: label 8 runes = 80 wide, 50 tall.
	if plan.Button == nil {
		t.Fatalf("expected CTA button in plan")
	}
	b := plan.Button
	if !almostEqual(b.W, 180) || !almostEqual(b.H, 100) {
		t.Fatalf("button size = %vx%v, want 180x100", b.W, b.H)
	}
	if !almostEqual(b.Radius, 50) {
		t.Fatalf("button radius = %v, want 50 (pill ends)", b.Radius)
	}
	if !almostEqual(b.Y, 283) { // 195 + 50 + 8 + 30
		t.Fatalf("button Y = %v, want 283", b.Y)
	}
	if !almostEqual(b.X, 410) {
		t.Fatalf("button X = %v, want 410 (centered)", b.X)
	}
	// Label centered with the upward bias correction.
	if !almostEqual(b.LabelX, 460) {
		t.Fatalf("label X = %v, want 460", b.LabelX)
	}
	if !almostEqual(b.LabelY, 283+25-7.5) {
		t.Fatalf("label Y = %v, want %v", b.LabelY, 283+25-7.5)
	}
}

func TestPlanVerticalAlignment(t *testing.T) {
	m := runeMeasurer{perRune: 10, height: 40}
	p := Params{
		CanvasWidth:  800,
		SafeTopPx:    0,
		SafeBottomPx: 800,
		Padding:      40,
		Position:     PositionTop,
		Headline:     TextBlock{Lines: []string{"DEAL"}, Align: AlignLeft},
		HeadlineM:    m,
		SubheadlineM: m,
		CTAM:         m,
	}
	if got := PlanVertical(p).Headline[0].X; !almostEqual(got, 40) {
		t.Fatalf("left aligned X = %v, want padding 40", got)
	}
	p.Headline.Align = AlignRight
	if got := PlanVertical(p).Headline[0].X; !almostEqual(got, 800-40-40) {
		t.Fatalf("right aligned X = %v, want %v", got, 800-40-40)
	}
	p.Headline.Align = AlignCenter
	if got := PlanVertical(p).Headline[0].X; !almostEqual(got, 380) {
		t.Fatalf("centered X = %v, want 380", got)
	}
}

func TestPlanVerticalNoCTA(t *testing.T) {
	m := runeMeasurer{perRune: 10, height: 40}
	plan := PlanVertical(Params{
		CanvasWidth:  800,
		SafeBottomPx: 800,
		Position:     PositionTop,
		Headline:     TextBlock{Lines: []string{"DEAL"}, Align: AlignCenter},
		HeadlineM:    m,
		SubheadlineM: m,
		CTAM:         m,
	})
	if plan.Button != nil {
		t.Fatalf("expected no button for empty CTA text")
	}
	if len(plan.Subheadline) != 0 {
		t.Fatalf("expected no subheadline lines")
	}
}

func TestAlignmentResolve(t *testing.T) {
	if got := AlignAuto.Resolve(true); got != AlignRight {
		t.Fatalf("auto+rtl = %v, want AlignRight", got)
	}
	if got := AlignAuto.Resolve(false); got != AlignCenter {
		t.Fatalf("auto+ltr = %v, want AlignCenter", got)
	}
	if got := AlignLeft.Resolve(true); got != AlignLeft {
		t.Fatalf("explicit alignment must win, got %v", got)
	}
}
