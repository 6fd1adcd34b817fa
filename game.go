package drop

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Services are the external capabilities the game is built on.
type Services struct {
	Images ImageLoader
	Audio  AudioLoader
	Input  InputSource
	Logger *zap.Logger
	// Rand returns a uniform value in [0, 1) and decides drop spawn
	// positions. Defaults to math/rand/v2, seeded from Config.Drops.Seed
	// when non-zero.
	Rand func() float64
}

// Game owns all game state: the bucket, the active drops, the spawn timer,
// and the shared assets. It implements ebiten.Game.
//
// Each frame runs input, then logic, then draw. All methods must be called
// from the game loop goroutine.
type Game struct {
	cfg    *Config
	log    *zap.Logger
	images ImageLoader
	audio  AudioLoader
	input  InputSource
	rand   func() float64

	state    State
	viewport *Viewport
	batch    *SpriteBatch
	assets   *Assets

	bucket    *Sprite
	drops     []*Sprite
	dropTimer float64
	splashes  []*Splash

	screenW, screenH int

	script          *ScriptRunner
	screenshotQueue []string
	fps             *fpsWidget

	stats       debugStats
	debugFrames int
	warnedDrops bool
}

// Compile-time check that Game is an ebiten.Game.
var _ ebiten.Game = (*Game)(nil)

// NewGame validates cfg and returns a Game in the Uninitialized state.
// Call Create before running it.
func NewGame(cfg *Config, svc Services) (*Game, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if svc.Images == nil || svc.Audio == nil || svc.Input == nil {
		return nil, errors.New("new game: images, audio, and input services are required")
	}
	log := svc.Logger
	if log == nil {
		log = zap.NewNop()
	}
	rnd := svc.Rand
	if rnd == nil {
		if seed := cfg.Drops.Seed; seed != 0 {
			rnd = rand.New(rand.NewPCG(seed, seed)).Float64
		} else {
			rnd = rand.Float64
		}
	}
	return &Game{
		cfg:      cfg,
		log:      log,
		images:   svc.Images,
		audio:    svc.Audio,
		input:    svc.Input,
		rand:     rnd,
		viewport: NewViewport(cfg.World.Width, cfg.World.Height),
		screenW:  cfg.Window.Width,
		screenH:  cfg.Window.Height,
	}, nil
}

// --- Lifecycle ---

// Create loads assets, places the bucket, and starts the background music.
// Asset failures are returned and leave the game Uninitialized.
func (g *Game) Create() error {
	if g.state != StateUninitialized {
		return fmt.Errorf("create: %w: %s -> %s", ErrInvalidTransition, g.state, StateRunning)
	}

	assets, err := LoadAssets(g.cfg.Assets.Names, g.images, g.audio)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	g.assets = assets
	g.log.Info("assets loaded", zap.String("dir", g.cfg.Assets.Dir))

	g.bucket = NewSprite(assets.Bucket, g.cfg.Bucket.Width, g.cfg.Bucket.Height)
	g.drops = make([]*Sprite, 0, 16)
	g.dropTimer = 0
	g.batch = NewSpriteBatch()
	g.viewport.Update(g.screenW, g.screenH)
	if g.cfg.Debug.ShowFPS {
		g.fps = newFPSWidget()
	}

	assets.Music.SetLooping(true)
	assets.Music.SetVolume(g.cfg.Audio.MusicVolume)
	assets.Music.Play()

	return g.setState(StateRunning)
}

// Pause stops frames from advancing. The game's state is kept as is.
func (g *Game) Pause() error { return g.setState(StatePaused) }

// Resume continues a paused game.
func (g *Game) Resume() error { return g.setState(StateRunning) }

// Dispose releases every texture, sound, and the sprite batch. The game
// cannot be used afterwards.
func (g *Game) Dispose() error {
	if err := g.setState(StateDisposed); err != nil {
		return err
	}
	var err error
	if g.assets != nil {
		err = g.assets.Release()
		g.assets = nil
	}
	if g.batch != nil {
		g.batch.Dispose()
		g.batch = nil
	}
	if g.fps != nil {
		g.fps.dispose()
		g.fps = nil
	}
	g.drops = nil
	g.splashes = nil
	if err != nil {
		g.log.Warn("dispose", zap.Error(err))
		return fmt.Errorf("dispose: %w", err)
	}
	return nil
}

func (g *Game) setState(next State) error {
	s, err := g.state.transition(next)
	if err != nil {
		return err
	}
	g.log.Info("lifecycle", zap.Stringer("from", g.state), zap.Stringer("to", s))
	g.state = s
	return nil
}

// Resize refits the viewport to a window of w by h pixels. Non-positive
// sizes, as reported for a minimized window, are ignored.
func (g *Game) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW, g.screenH = w, h
	g.viewport.Update(w, h)
	g.log.Debug("resize", zap.Int("width", w), zap.Int("height", h),
		zap.Float64("scale", g.viewport.Scale()))
}

// --- Accessors ---

// State returns the current lifecycle state.
func (g *Game) State() State { return g.state }

// Viewport returns the game's viewport.
func (g *Game) Viewport() *Viewport { return g.viewport }

// Bucket returns the player's bucket. Nil before Create.
func (g *Game) Bucket() *Sprite { return g.bucket }

// Drops returns the active drops. The returned slice MUST NOT be mutated.
func (g *Game) Drops() []*Sprite { return g.drops }

// Splashes returns the active catch effects.
func (g *Game) Splashes() []*Splash { return g.splashes }

// SpawnTimer returns the seconds accumulated since the last spawn.
func (g *Game) SpawnTimer() float64 { return g.dropTimer }

// SetScript replaces the game's input with a script runner's input.
func (g *Game) SetScript(r *ScriptRunner) {
	g.script = r
	g.input = r.Input()
}

// --- Frame ---

// Step runs one frame of input and logic using the input source's delta
// time. It does nothing unless the game is Running.
func (g *Game) Step() {
	if g.state != StateRunning {
		return
	}
	dt := g.input.DeltaTime()
	g.handleInput(dt)
	g.logic(dt)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	var t0 time.Time
	if g.cfg.Debug.Enabled {
		t0 = time.Now()
	}

	g.syncFocus()
	if g.state != StateRunning {
		return nil
	}

	if g.script != nil {
		// The frame that runs the last step still updates and draws.
		if g.script.Done() && g.script.exitWhenDone {
			return ebiten.Termination
		}
		g.script.step(g)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}

	g.Step()

	if g.fps != nil {
		g.fps.update(g.input.DeltaTime())
	}
	if g.cfg.Debug.Enabled {
		g.stats.updateTime = time.Since(t0)
		g.stats.drops = len(g.drops)
		g.stats.splashes = len(g.splashes)
		g.debugCheckDropCount()
	}
	return nil
}

// syncFocus pauses the game when the window loses focus and resumes it when
// focus returns.
func (g *Game) syncFocus() {
	focused := g.input.Focused()
	var err error
	switch {
	case g.state == StateRunning && !focused:
		err = g.Pause()
	case g.state == StatePaused && focused:
		err = g.Resume()
	}
	if err != nil {
		g.log.Warn("focus change", zap.Bool("focused", focused), zap.Error(err))
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.state != StateRunning && g.state != StatePaused {
		return
	}
	var t0 time.Time
	if g.cfg.Debug.Enabled {
		t0 = time.Now()
	}

	g.batch.SetTarget(screen)
	g.draw(g.batch)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)

	if g.cfg.Debug.Enabled {
		g.stats.drawTime = time.Since(t0)
		g.stats.render = g.batch.Stats()
		g.debugLog()
	}
}

// Layout implements ebiten.Game. The logical screen matches the window so
// the viewport can letterbox at full resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Resize(outsideWidth, outsideHeight)
	return g.screenW, g.screenH
}

// handleInput moves the bucket from held keys and the pointer. Each source
// applies in turn, so the pointer overrides the keys for the frame.
func (g *Game) handleInput(dt float64) {
	speed := g.cfg.Bucket.Speed

	if g.input.IsKeyHeld(KeyRight) {
		g.bucket.TranslateX(speed * dt)
	}
	if g.input.IsKeyHeld(KeyLeft) {
		g.bucket.TranslateX(-speed * dt)
	}
	if g.input.IsPointerDown() {
		sx, sy := g.input.PointerPosition()
		wx, _ := g.viewport.ScreenToWorld(sx, sy)
		g.bucket.SetCenterX(wx)
	}
}

// logic clamps the bucket, advances and resolves drops, and runs the spawn
// timer.
func (g *Game) logic(dt float64) {
	worldW := g.viewport.WorldWidth()

	g.bucket.X = clamp(g.bucket.X, 0, worldW-g.bucket.Width)
	bucketRect := g.bucket.Bounds()

	fall := g.cfg.Drops.FallSpeed * dt
	// Reverse order so removal does not shift drops not yet visited.
	for i := len(g.drops) - 1; i >= 0; i-- {
		d := g.drops[i]
		d.TranslateY(-fall)

		if d.Y < -d.Height {
			g.drops = slices.Delete(g.drops, i, i+1)
		} else if bucketRect.Overlaps(d.Bounds()) {
			g.drops = slices.Delete(g.drops, i, i+1)
			g.catch(d)
		}
	}

	g.splashes = updateSplashes(g.splashes, dt)

	g.dropTimer += dt
	if g.dropTimer >= g.cfg.Drops.SpawnInterval {
		g.dropTimer = 0
		g.spawnDrop()
	}
}

// catch plays the catch sound for a drop that landed in the bucket.
func (g *Game) catch(d *Sprite) {
	g.assets.DropSound.Play()
	if g.cfg.Effects.Splash {
		g.splashes = append(g.splashes, NewSplash(d, g.cfg.Effects.SplashDuration))
	}
}

// spawnDrop adds one drop at a random x along the top edge of the world.
func (g *Game) spawnDrop() {
	w, h := g.cfg.Drops.Width, g.cfg.Drops.Height
	d := NewSprite(g.assets.Drop, w, h)
	d.X = g.rand() * (g.viewport.WorldWidth() - w)
	d.Y = g.viewport.WorldHeight()
	g.drops = append(g.drops, d)
}

// draw renders the background, bucket, drops, and splashes. It reads game
// state only.
func (g *Game) draw(r Renderer) {
	r.Clear(ColorBlack)
	r.SetProjection(g.viewport.Projection())

	r.Begin()
	r.DrawRect(g.assets.Background, 0, 0, g.viewport.WorldWidth(), g.viewport.WorldHeight())
	g.bucket.draw(r)
	for _, d := range g.drops {
		d.draw(r)
	}
	for _, s := range g.splashes {
		b := s.Bounds()
		r.DrawRectTinted(g.assets.Drop, b.X, b.Y, b.Width, b.Height, Color{1, 1, 1, s.Alpha})
	}
	r.End()
}
