package drop

import "math"

// Projection is what a Renderer needs to place world-space rectangles on
// screen: the world-to-screen matrix and the screen area it is clipped to.
type Projection struct {
	Matrix [6]float64
	Clip   Rect // screen space, origin top-left, Y down
}

// Viewport maps a fixed-size world onto a window of arbitrary size, scaling
// uniformly and centering the result. Unused window area becomes letterbox or
// pillarbox bars.
//
// World space has its origin at the bottom-left with Y increasing upward.
// Screen space has its origin at the top-left with Y increasing downward.
type Viewport struct {
	worldW, worldH   float64
	screenW, screenH float64

	// Fitted area in screen space.
	area  Rect
	scale float64

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool
}

// NewViewport creates a viewport for a world of the given size. Until Update
// is called the screen is assumed to match the world size.
func NewViewport(worldW, worldH float64) *Viewport {
	return &Viewport{
		worldW:  worldW,
		worldH:  worldH,
		screenW: worldW,
		screenH: worldH,
		dirty:   true,
	}
}

// Update refits the world into a screen of the given size. Non-positive
// dimensions are ignored.
func (v *Viewport) Update(screenW, screenH int) {
	if screenW <= 0 || screenH <= 0 {
		return
	}
	v.screenW = float64(screenW)
	v.screenH = float64(screenH)
	v.dirty = true
}

// WorldWidth returns the logical world width.
func (v *Viewport) WorldWidth() float64 { return v.worldW }

// WorldHeight returns the logical world height.
func (v *Viewport) WorldHeight() float64 { return v.worldH }

// ScreenSize returns the last screen size passed to Update.
func (v *Viewport) ScreenSize() (w, h float64) { return v.screenW, v.screenH }

// Scale returns the number of screen pixels per world unit.
func (v *Viewport) Scale() float64 {
	v.computeViewMatrix()
	return v.scale
}

// ScreenBounds returns the screen-space rectangle the world is drawn into.
func (v *Viewport) ScreenBounds() Rect {
	v.computeViewMatrix()
	return v.area
}

// Projection returns the world-to-screen matrix and the fitted screen area.
func (v *Viewport) Projection() Projection {
	return Projection{Matrix: v.computeViewMatrix(), Clip: v.ScreenBounds()}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(areaX, areaY + areaH) * Scale(s, -s)
func (v *Viewport) computeViewMatrix() [6]float64 {
	if !v.dirty {
		return v.viewMatrix
	}
	v.dirty = false

	s := 1.0
	if v.worldW > 0 && v.worldH > 0 {
		s = math.Min(v.screenW/v.worldW, v.screenH/v.worldH)
	}
	w := v.worldW * s
	h := v.worldH * s
	v.scale = s
	v.area = Rect{
		X:      (v.screenW - w) / 2,
		Y:      (v.screenH - h) / 2,
		Width:  w,
		Height: h,
	}

	v.viewMatrix = [6]float64{s, 0, 0, -s, v.area.X, v.area.Y + h}
	v.invViewMatrix = invertAffine(v.viewMatrix)
	return v.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	v.computeViewMatrix()
	sx, sy = transformPoint(v.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates. Points in
// the letterbox bars map outside the world rectangle.
func (v *Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	v.computeViewMatrix()
	wx, wy = transformPoint(v.invViewMatrix, sx, sy)
	return
}
