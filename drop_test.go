package drop

import "testing"

func TestRectOverlaps(t *testing.T) {
	bucket := Rect{X: 3, Y: 0, Width: 1, Height: 1}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", Rect{3, 0, 1, 1}, true},
		{"partial", Rect{3.5, 0.5, 1, 1}, true},
		{"contained", Rect{3.25, 0.25, 0.5, 0.5}, true},
		{"containing", Rect{2, -1, 3, 3}, true},
		{"touching right edge", Rect{4, 0, 1, 1}, false},
		{"touching left edge", Rect{2, 0, 1, 1}, false},
		{"touching top edge", Rect{3, 1, 1, 1}, false},
		{"touching corner", Rect{4, 1, 1, 1}, false},
		{"apart horizontally", Rect{5, 0, 1, 1}, false},
		{"apart vertically", Rect{3, 3, 1, 1}, false},
		{"overlap x only", Rect{3, 2, 1, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bucket.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Overlaps(bucket); got != tt.want {
				t.Errorf("symmetric Overlaps(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 7, 0},
		{3, 0, 7, 3},
		{9, 0, 7, 7},
		// Degenerate range: the lower bound wins.
		{0.2, 0, -0.5, 0},
		{-3, 0, -0.5, 0},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestColorToRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	// Premultiplied: R = 1*0.5, G = 0.5*0.5.
	if c.R != 127 || c.G != 63 || c.B != 0 || c.A != 127 {
		t.Errorf("toRGBA = %v, want {127 63 0 127}", c)
	}
	if got := ColorBlack.toRGBA(); got.R != 0 || got.A != 255 {
		t.Errorf("ColorBlack.toRGBA = %v", got)
	}
}

func TestKeyNames(t *testing.T) {
	for _, k := range []Key{KeyLeft, KeyRight} {
		got, ok := parseKey(k.String())
		if !ok || got != k {
			t.Errorf("parseKey(%q) = %v, %v; want %v, true", k.String(), got, ok, k)
		}
	}
	if _, ok := parseKey("up"); ok {
		t.Error("parseKey(\"up\") should fail")
	}
	if Key(99).String() != "unknown" {
		t.Errorf("Key(99).String() = %q, want unknown", Key(99).String())
	}
}

func TestSpriteCenter(t *testing.T) {
	s := NewSprite(nil, 1, 1)
	s.SetCenterX(4.5)
	if s.X != 4 || s.CenterX() != 4.5 {
		t.Errorf("X = %v, CenterX = %v; want 4, 4.5", s.X, s.CenterX())
	}
	s.TranslateX(-1)
	s.TranslateY(2)
	if b := s.Bounds(); b != (Rect{3, 2, 1, 1}) {
		t.Errorf("Bounds = %v, want (3,2,1,1)", b)
	}
}
