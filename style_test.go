package ggplot

import "testing"

func TestAnchorOffset(t *testing.T) {
	tests := []struct {
		anchor Anchor
		want   Point
	}{
		{Anchor{HPosLeft, VPosTop}, Pt(0, 0)},
		{Anchor{HPosCenter, VPosTop}, Pt(-20, 0)},
		{Anchor{HPosRight, VPosTop}, Pt(-40, 0)},
		{Anchor{HPosLeft, VPosCenter}, Pt(0, -5)},
		{Anchor{HPosLeft, VPosBottom}, Pt(0, -10)},
		{Anchor{HPosCenter, VPosBottom}, Pt(-20, -10)},
	}
	for _, tt := range tests {
		t.Run(tt.anchor.H.String()+"/"+tt.anchor.V.String(), func(t *testing.T) {
			if got := tt.anchor.Offset(40, 10); got != tt.want {
				t.Errorf("Offset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyleAccessors(t *testing.T) {
	s := ShapeStyle{Fill: Red, Width: 3}
	if s.Color() != Red || s.StrokeWidth() != 3 {
		t.Errorf("ShapeStyle accessors = %v, %v", s.Color(), s.StrokeWidth())
	}

	ts := TextStyle{
		Face:     Font{Family: "monospace", Style: FontStyleBold},
		FontSize: 14,
		Fill:     Blue,
		Pos:      Anchor{H: HPosRight},
	}
	if ts.Color() != Blue || ts.Size() != 14 || ts.Font().Family != "monospace" || ts.Anchor().H != HPosRight {
		t.Errorf("TextStyle accessors mismatch: %+v", ts)
	}
}

func TestStrokeModeNames(t *testing.T) {
	for _, m := range []StrokeMode{StrokeUniform, StrokeMitered} {
		got, ok := ParseStrokeMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseStrokeMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseStrokeMode("round"); ok {
		t.Error("ParseStrokeMode(\"round\") accepted")
	}
}
