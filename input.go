package drop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSource reports the per-frame input state the game loop reads.
// Pointer coordinates are in screen space.
type InputSource interface {
	IsKeyHeld(k Key) bool
	IsPointerDown() bool
	PointerPosition() (x, y float64)
	// DeltaTime is the elapsed time in seconds since the previous frame.
	DeltaTime() float64
	// Focused reports whether the window has input focus. Losing focus
	// pauses the game.
	Focused() bool
}

// keyBindings maps each logical key to the physical keys that trigger it.
var keyBindings = map[Key][]ebiten.Key{
	KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// EbitenInput reads keyboard, mouse, and touch state from Ebitengine.
// Mouse is pointer 0; the first active touch is used when the mouse button
// is up.
type EbitenInput struct {
	touchIDs []ebiten.TouchID
}

// NewEbitenInput returns an InputSource backed by Ebitengine's global input
// state. It must only be queried from within the game loop.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// IsKeyHeld reports whether any key bound to k is currently pressed.
func (in *EbitenInput) IsKeyHeld(k Key) bool {
	for _, ek := range keyBindings[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

// IsPointerDown reports whether the left mouse button or any touch is down.
func (in *EbitenInput) IsPointerDown() bool {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	return len(in.touchIDs) > 0
}

// PointerPosition returns the cursor position, or the first touch position
// when a touch is active and the mouse button is up.
func (in *EbitenInput) PointerPosition() (x, y float64) {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
		if len(in.touchIDs) > 0 {
			tx, ty := ebiten.TouchPosition(in.touchIDs[0])
			return float64(tx), float64(ty)
		}
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my)
}

// DeltaTime returns the fixed tick duration. Ebitengine calls Update at a
// constant TPS, so one tick is always 1/TPS seconds.
func (in *EbitenInput) DeltaTime() float64 {
	return 1.0 / float64(ebiten.TPS())
}

// Focused reports whether the game window has focus.
func (in *EbitenInput) Focused() bool {
	return ebiten.IsFocused()
}
