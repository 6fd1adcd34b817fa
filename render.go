package drop

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws textured world-space rectangles. Draw calls between Begin
// and End are batched and submitted on End.
type Renderer interface {
	Clear(c Color)
	SetProjection(p Projection)
	Begin()
	DrawRect(tex Texture, x, y, w, h float64)
	DrawRectTinted(tex Texture, x, y, w, h float64, tint Color)
	End()
}

// RenderCommand is a single queued draw instruction.
type RenderCommand struct {
	Texture   Texture
	Transform [6]float64 // texture pixels to world units
	Color     Color
}

// RenderStats describes the most recent flush of a SpriteBatch.
type RenderStats struct {
	Commands int
	// Batches counts contiguous runs of commands sharing a texture, which is
	// how many draw calls a GPU batcher would issue.
	Batches int
}

const defaultCommandCap = 64

// SpriteBatch is a Renderer that targets an ebiten.Image. Commands are
// recorded between Begin and End and submitted with DrawImage through the
// current projection, clipped to the projection's screen area.
type SpriteBatch struct {
	target     *ebiten.Image
	projection Projection
	hasProj    bool
	commands   []RenderCommand
	drawing    bool
	disposed   bool
	stats      RenderStats
	op         ebiten.DrawImageOptions
}

// NewSpriteBatch creates an empty SpriteBatch. Call SetTarget before drawing.
func NewSpriteBatch() *SpriteBatch {
	return &SpriteBatch{commands: make([]RenderCommand, 0, defaultCommandCap)}
}

// SetTarget sets the image subsequent frames are drawn into.
func (b *SpriteBatch) SetTarget(target *ebiten.Image) {
	b.target = target
}

// Clear fills the whole target with c, including letterbox bars.
func (b *SpriteBatch) Clear(c Color) {
	if b.target == nil {
		return
	}
	b.target.Fill(c.toRGBA())
}

// SetProjection sets the world-to-screen mapping used by the next End.
func (b *SpriteBatch) SetProjection(p Projection) {
	b.projection = p
	b.hasProj = true
}

// Begin starts recording draw commands.
func (b *SpriteBatch) Begin() {
	if b.disposed {
		panic("drop: SpriteBatch.Begin on disposed batch")
	}
	if b.drawing {
		panic("drop: SpriteBatch.End must be called before Begin")
	}
	b.drawing = true
	b.commands = b.commands[:0]
}

// DrawRect queues tex stretched over the world rectangle (x, y, w, h).
func (b *SpriteBatch) DrawRect(tex Texture, x, y, w, h float64) {
	b.DrawRectTinted(tex, x, y, w, h, ColorWhite)
}

// DrawRectTinted queues tex stretched over the world rectangle (x, y, w, h)
// and multiplied by tint.
func (b *SpriteBatch) DrawRectTinted(tex Texture, x, y, w, h float64, tint Color) {
	if !b.drawing {
		panic("drop: SpriteBatch.Begin must be called before DrawRect")
	}
	if tex == nil {
		return
	}
	bounds := tex.Bounds()
	b.commands = append(b.commands, RenderCommand{
		Texture:   tex,
		Transform: rectTransform(x, y, w, h, float64(bounds.Dx()), float64(bounds.Dy())),
		Color:     tint,
	})
}

// End submits all queued commands and stops recording.
func (b *SpriteBatch) End() {
	if !b.drawing {
		panic("drop: SpriteBatch.Begin must be called before End")
	}
	b.drawing = false
	b.stats = RenderStats{Commands: len(b.commands), Batches: countBatches(b.commands)}
	b.submit()
}

// Stats returns metrics for the most recent End.
func (b *SpriteBatch) Stats() RenderStats {
	return b.stats
}

// Commands returns the commands recorded by the most recent frame. The
// returned slice MUST NOT be mutated and is only valid until the next Begin.
func (b *SpriteBatch) Commands() []RenderCommand {
	return b.commands
}

// Dispose releases the command buffer. The batch cannot be used afterwards.
func (b *SpriteBatch) Dispose() {
	b.commands = nil
	b.target = nil
	b.disposed = true
}

// submit draws every queued command into the target's projected area.
func (b *SpriteBatch) submit() {
	if b.target == nil || len(b.commands) == 0 {
		return
	}

	target := b.target
	view := identityTransform
	if b.hasProj {
		view = b.projection.Matrix
		clip := b.projection.Clip
		if clip.Width > 0 && clip.Height > 0 {
			target = target.SubImage(image.Rect(
				int(clip.X), int(clip.Y),
				int(clip.X+clip.Width), int(clip.Y+clip.Height),
			)).(*ebiten.Image)
		}
	}

	op := &b.op
	for i := range b.commands {
		cmd := &b.commands[i]
		op.GeoM = geoM(multiplyAffine(view, cmd.Transform))
		op.ColorScale.Reset()
		a := float32(cmd.Color.A)
		op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
		op.Filter = ebiten.FilterLinear
		target.DrawImage(cmd.Texture, op)
	}
}

// countBatches counts contiguous groups of commands sharing the same texture.
func countBatches(commands []RenderCommand) int {
	if len(commands) == 0 {
		return 0
	}
	count := 1
	prev := commands[0].Texture
	for i := 1; i < len(commands); i++ {
		if commands[i].Texture != prev {
			count++
			prev = commands[i].Texture
		}
	}
	return count
}
