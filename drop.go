package drop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the default tint (no color modification).
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is the default clear color.
	ColorBlack = Color{0, 0, 0, 1}
)

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Rect is an axis-aligned rectangle in world units. X and Y name the
// bottom-left corner; Y increases upward.
type Rect struct {
	X, Y, Width, Height float64
}

// Overlaps reports whether r and other share an area greater than zero.
// Rectangles that only touch along an edge or corner do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Key identifies a logical game key. Physical bindings live in EbitenInput.
type Key uint8

const (
	KeyLeft  Key = iota // move the bucket left
	KeyRight            // move the bucket right
)

// String returns the key name used in scripts and logs.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// parseKey maps a script key name to a Key.
func parseKey(name string) (Key, bool) {
	switch name {
	case "left":
		return KeyLeft, true
	case "right":
		return KeyRight, true
	}
	return 0, false
}

// Texture is a loaded image shared by every sprite of a kind.
type Texture = *ebiten.Image

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// clamp restricts v to [lo, hi]. When hi < lo the lower bound wins.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
