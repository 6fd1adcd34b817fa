package drop

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityTransform maps every point to itself.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Affine matrices are stored as [a, b, c, d, tx, ty]:
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty

// multiplyAffine returns outer * inner, which applies inner first.
func multiplyAffine(outer, inner [6]float64) [6]float64 {
	a, b, c, d, tx, ty := outer[0], outer[1], outer[2], outer[3], outer[4], outer[5]
	x0, y0 := inner[0], inner[1] // image of the x basis
	x1, y1 := inner[2], inner[3] // image of the y basis
	ox, oy := inner[4], inner[5] // image of the origin
	return [6]float64{
		a*x0 + c*y0, b*x0 + d*y0,
		a*x1 + c*y1, b*x1 + d*y1,
		a*ox + c*oy + tx, b*ox + d*oy + ty,
	}
}

// invertAffine returns the inverse of m, or the identity when m collapses
// the plane.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-12 {
		return identityTransform
	}
	inv := [6]float64{m[3] / det, -m[1] / det, -m[2] / det, m[0] / det}
	inv[4], inv[5] = transformPoint(inv, -m[4], -m[5])
	return inv
}

// transformPoint applies m to (x, y).
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// rectTransform returns the matrix that maps a texture of size (texW, texH)
// onto the world rectangle (x, y, w, h). Texture row 0 is the top edge, so
// the Y axis is flipped: pixel (0, texH) lands on world (x, y).
func rectTransform(x, y, w, h, texW, texH float64) [6]float64 {
	if texW == 0 || texH == 0 {
		return identityTransform
	}
	return [6]float64{w / texW, 0, 0, -h / texH, x, y + h}
}

// geoM loads m into an ebiten.GeoM, whose rows are (a c tx) and (b d ty).
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	for i, v := range m {
		g.SetElement(i%2, i/2, v)
	}
	return g
}
