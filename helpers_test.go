package drop

import (
	"fmt"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// --- Fake services ---

type fakeImages struct {
	fail     map[string]bool
	loaded   []string
	released int
}

func newFakeImages() *fakeImages {
	return &fakeImages{fail: make(map[string]bool)}
}

func (f *fakeImages) LoadTexture(name string) (Texture, error) {
	if f.fail[name] {
		return nil, fmt.Errorf("open %s: file does not exist", name)
	}
	f.loaded = append(f.loaded, name)
	return ebiten.NewImage(16, 16), nil
}

func (f *fakeImages) ReleaseTexture(tex Texture) {
	f.released++
}

type fakeSound struct {
	plays  int
	closed bool
}

func (s *fakeSound) Play()        { s.plays++ }
func (s *fakeSound) Close() error { s.closed = true; return nil }

type fakeMusic struct {
	looping bool
	volume  float64
	playing bool
	closed  bool
}

func (m *fakeMusic) SetLooping(loop bool) { m.looping = loop }
func (m *fakeMusic) SetVolume(v float64)  { m.volume = v }
func (m *fakeMusic) Play()                { m.playing = true }
func (m *fakeMusic) Close() error         { m.closed = true; return nil }

type fakeAudio struct {
	fail  map[string]bool
	sound *fakeSound
	music *fakeMusic
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{fail: make(map[string]bool)}
}

func (f *fakeAudio) LoadSound(name string) (Sound, error) {
	if f.fail[name] {
		return nil, fmt.Errorf("read %s: file does not exist", name)
	}
	f.sound = &fakeSound{}
	return f.sound, nil
}

func (f *fakeAudio) LoadMusic(name string) (Music, error) {
	if f.fail[name] {
		return nil, fmt.Errorf("read %s: file does not exist", name)
	}
	f.music = &fakeMusic{}
	return f.music, nil
}

// recordingRenderer captures every call in order.
type recordingRenderer struct {
	calls      []string
	rects      []Rect
	tints      []Color
	projection Projection
}

func (r *recordingRenderer) Clear(c Color)              { r.calls = append(r.calls, "clear") }
func (r *recordingRenderer) SetProjection(p Projection) { r.calls = append(r.calls, "projection"); r.projection = p }
func (r *recordingRenderer) Begin()                     { r.calls = append(r.calls, "begin") }
func (r *recordingRenderer) End()                       { r.calls = append(r.calls, "end") }

func (r *recordingRenderer) DrawRect(tex Texture, x, y, w, h float64) {
	r.DrawRectTinted(tex, x, y, w, h, ColorWhite)
}

func (r *recordingRenderer) DrawRectTinted(tex Texture, x, y, w, h float64, tint Color) {
	r.calls = append(r.calls, "rect")
	r.rects = append(r.rects, Rect{X: x, Y: y, Width: w, Height: h})
	r.tints = append(r.tints, tint)
}

// --- Game fixture ---

type testGame struct {
	*Game
	images *fakeImages
	audio  *fakeAudio
	input  *ScriptedInput
}

// newTestGame returns a created game in an 800x500 window (100 px per world
// unit) whose drops spawn at the horizontal midpoint.
func newTestGame(t *testing.T, mutate ...func(*Config)) *testGame {
	t.Helper()
	cfg := DefaultConfig()
	for _, m := range mutate {
		m(cfg)
	}
	tg := &testGame{
		images: newFakeImages(),
		audio:  newFakeAudio(),
		input:  NewScriptedInput(0.1),
	}
	g, err := NewGame(cfg, Services{
		Images: tg.images,
		Audio:  tg.audio,
		Input:  tg.input,
		Rand:   func() float64 { return 0.5 },
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if err := g.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
	tg.Game = g
	return tg
}

// addDrop places a drop directly into the active set.
func (tg *testGame) addDrop(x, y float64) *Sprite {
	d := NewSprite(tg.assets.Drop, 1, 1)
	d.X, d.Y = x, y
	tg.drops = append(tg.drops, d)
	return d
}

func newTestScreen(w, h int) *ebiten.Image {
	return ebiten.NewImage(w, h)
}
