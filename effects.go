package drop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// splashGrowth is how much a splash widens over its lifetime, relative to
// the caught drop's size.
const splashGrowth = 0.6

// Splash is the short-lived burst drawn where a drop was caught. It grows
// and fades out over its duration.
//
// There is no global effect manager; the game advances splashes itself.
type Splash struct {
	CenterX, CenterY float64
	Size             float64
	Alpha            float64
	Done             bool

	size  *gween.Tween
	alpha *gween.Tween
}

// NewSplash starts a splash centered on the caught drop.
func NewSplash(caught *Sprite, duration float64) *Splash {
	base := caught.Width
	d := float32(duration)
	return &Splash{
		CenterX: caught.X + caught.Width/2,
		CenterY: caught.Y + caught.Height/2,
		Size:    base,
		Alpha:   1,
		size:    gween.New(float32(base), float32(base*(1+splashGrowth)), d, ease.OutQuad),
		alpha:   gween.New(1, 0, d, ease.InQuad),
	}
}

// Update advances the splash by dt seconds.
func (s *Splash) Update(dt float64) {
	if s.Done {
		return
	}
	size, sizeDone := s.size.Update(float32(dt))
	alpha, alphaDone := s.alpha.Update(float32(dt))
	s.Size = float64(size)
	s.Alpha = float64(alpha)
	s.Done = sizeDone && alphaDone
}

// Bounds returns the splash's current rectangle in world units.
func (s *Splash) Bounds() Rect {
	return Rect{
		X:      s.CenterX - s.Size/2,
		Y:      s.CenterY - s.Size/2,
		Width:  s.Size,
		Height: s.Size,
	}
}

// updateSplashes advances every splash and drops the finished ones in place.
func updateSplashes(splashes []*Splash, dt float64) []*Splash {
	n := 0
	for _, s := range splashes {
		s.Update(dt)
		if s.Done {
			continue
		}
		splashes[n] = s
		n++
	}
	clear(splashes[n:])
	return splashes[:n]
}
