package drop

// Sprite is a textured rectangle in world space. The bucket and every drop
// are Sprites; they share their kind's Texture and own no resources.
type Sprite struct {
	X, Y          float64
	Width, Height float64
	Texture       Texture
}

// NewSprite creates a sprite of the given size at the origin.
func NewSprite(tex Texture, w, h float64) *Sprite {
	return &Sprite{Width: w, Height: h, Texture: tex}
}

// Bounds returns the sprite's bounding box.
func (s *Sprite) Bounds() Rect {
	return Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// TranslateX moves the sprite horizontally by dx.
func (s *Sprite) TranslateX(dx float64) { s.X += dx }

// TranslateY moves the sprite vertically by dy.
func (s *Sprite) TranslateY(dy float64) { s.Y += dy }

// SetCenterX positions the sprite so its horizontal center is at x.
func (s *Sprite) SetCenterX(x float64) { s.X = x - s.Width/2 }

// CenterX returns the horizontal center of the sprite.
func (s *Sprite) CenterX() float64 { return s.X + s.Width/2 }

// draw queues the sprite on r.
func (s *Sprite) draw(r Renderer) {
	r.DrawRect(s.Texture, s.X, s.Y, s.Width, s.Height)
}
