package render

import "math"

// Affine is a 2D transform in canvas order:
// x' = A*x + C*y + E, y' = B*x + D*y + F
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Apply maps a point through the transform
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Translate post-multiplies a translation
func (m Affine) Translate(tx, ty float64) Affine {
	m.E += m.A*tx + m.C*ty
	m.F += m.B*tx + m.D*ty
	return m
}

// Scale post-multiplies a scale
func (m Affine) Scale(sx, sy float64) Affine {
	m.A *= sx
	m.B *= sx
	m.C *= sy
	m.D *= sy
	return m
}

// Rotate post-multiplies a rotation by theta radians (clockwise on screen)
func (m Affine) Rotate(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	a, b, c, d := m.A, m.B, m.C, m.D
	m.A = a*cos + c*sin
	m.B = b*cos + d*sin
	m.C = c*cos - a*sin
	m.D = d*cos - b*sin
	return m
}

// Invert returns the inverse transform; ok is false for singular transforms
func (m Affine) Invert() (Affine, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 || math.IsNaN(det) {
		return Affine{}, false
	}
	return Affine{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, true
}

// ScaleFactor estimates the linear scale, used to pick curve tessellation
func (m Affine) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}
