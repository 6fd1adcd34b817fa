package drop

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// ScriptedInput is an InputSource driven by code instead of devices. Held
// keys persist until released; pointer events are queued and consumed one
// per frame by Advance. Used by the script runner and by tests.
type ScriptedInput struct {
	dt      float64
	held    map[Key]bool
	queue   []syntheticPointerEvent
	pressed bool
	px, py  float64
	unfocus bool
}

// NewScriptedInput returns a ScriptedInput that reports dt seconds per frame.
func NewScriptedInput(dt float64) *ScriptedInput {
	return &ScriptedInput{dt: dt, held: make(map[Key]bool)}
}

// Hold marks k as held until Release is called.
func (in *ScriptedInput) Hold(k Key) { in.held[k] = true }

// Release marks k as no longer held.
func (in *ScriptedInput) Release(k Key) { delete(in.held, k) }

// SetDeltaTime changes the reported frame duration.
func (in *ScriptedInput) SetDeltaTime(dt float64) { in.dt = dt }

// SetFocused changes the reported window focus.
func (in *ScriptedInput) SetFocused(focused bool) { in.unfocus = !focused }

// InjectPress queues a pointer press at the given screen coordinates.
func (in *ScriptedInput) InjectPress(x, y float64) {
	in.queue = append(in.queue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the pointer held down.
func (in *ScriptedInput) InjectMove(x, y float64) {
	in.queue = append(in.queue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (in *ScriptedInput) InjectRelease(x, y float64) {
	in.queue = append(in.queue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectTap queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (in *ScriptedInput) InjectTap(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), linearly interpolated moves
// over frames-2 intermediate frames, and a release at (toX, toY). Minimum
// frames is 2 (press + release).
func (in *ScriptedInput) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(toX, toY)
}

// Pending returns the number of queued pointer events.
func (in *ScriptedInput) Pending() int { return len(in.queue) }

// Advance pops one queued pointer event, if any, making it the current
// pointer state. Call once per frame before the game reads input.
func (in *ScriptedInput) Advance() {
	if len(in.queue) == 0 {
		return
	}
	evt := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]

	in.pressed = evt.pressed
	in.px, in.py = evt.screenX, evt.screenY
}

// IsKeyHeld implements InputSource.
func (in *ScriptedInput) IsKeyHeld(k Key) bool { return in.held[k] }

// IsPointerDown implements InputSource.
func (in *ScriptedInput) IsPointerDown() bool { return in.pressed }

// PointerPosition implements InputSource.
func (in *ScriptedInput) PointerPosition() (x, y float64) { return in.px, in.py }

// DeltaTime implements InputSource.
func (in *ScriptedInput) DeltaTime() float64 { return in.dt }

// Focused implements InputSource.
func (in *ScriptedInput) Focused() bool { return !in.unfocus }
