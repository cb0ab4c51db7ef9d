package geom

import "math"

// Mat2 is a 2x2 float32 matrix stored as two row vectors. It is the base
// case of the recursive determinant chain used by Mat3 and Mat4.
type Mat2 struct {
	X, Y Vec2
}

// M2 creates a Mat2 from two row vectors.
func M2(x, y Vec2) Mat2 {
	return Mat2{X: x, Y: y}
}

// Mat2Identity returns the 2x2 identity matrix.
func Mat2Identity() Mat2 {
	return Mat2{
		X: Vec2{X: 1},
		Y: Vec2{Y: 1},
	}
}

// Mat2FromAngle returns the rotation matrix for theta radians.
func Mat2FromAngle(theta float32) Mat2 {
	s, c := sincos(theta)
	return Mat2{
		X: Vec2{X: c, Y: s},
		Y: Vec2{X: -s, Y: c},
	}
}

// sincos returns sin and cos of theta in float32.
func sincos(theta float32) (sin, cos float32) {
	s, c := math.Sincos(float64(theta))
	return float32(s), float32(c)
}

// Add returns the element-wise sum of two matrices.
func (m Mat2) Add(n Mat2) Mat2 {
	return Mat2{X: m.X.Add(n.X), Y: m.Y.Add(n.Y)}
}

// Sub returns the element-wise difference of two matrices.
func (m Mat2) Sub(n Mat2) Mat2 {
	return Mat2{X: m.X.Sub(n.X), Y: m.Y.Sub(n.Y)}
}

// Neg returns the element-wise negation.
func (m Mat2) Neg() Mat2 {
	return Mat2{X: m.X.Neg(), Y: m.Y.Neg()}
}

// Mul returns the matrix product m * n.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		X: Vec2{
			X: m.X.X*n.X.X + m.X.Y*n.Y.X,
			Y: m.X.X*n.X.Y + m.X.Y*n.Y.Y,
		},
		Y: Vec2{
			X: m.Y.X*n.X.X + m.Y.Y*n.Y.X,
			Y: m.Y.X*n.X.Y + m.Y.Y*n.Y.Y,
		},
	}
}

// MulVec returns the matrix-vector product m * v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: m.X.Dot(v),
		Y: m.Y.Dot(v),
	}
}

// MulScalar returns the matrix scaled by s.
func (m Mat2) MulScalar(s float32) Mat2 {
	return Mat2{X: m.X.Mul(s), Y: m.Y.Mul(s)}
}

// DivScalar returns the matrix divided by s.
func (m Mat2) DivScalar(s float32) Mat2 {
	return Mat2{X: m.X.Div(s), Y: m.Y.Div(s)}
}

// Transpose returns the transposed matrix.
func (m Mat2) Transpose() Mat2 {
	return Mat2{
		X: Vec2{X: m.X.X, Y: m.Y.X},
		Y: Vec2{X: m.X.Y, Y: m.Y.Y},
	}
}

// Det returns the determinant ad - bc.
func (m Mat2) Det() float32 {
	return m.X.X*m.Y.Y - m.X.Y*m.Y.X
}

// Inverse returns the inverse matrix. It panics if the determinant is
// exactly zero; callers must guarantee invertibility or check Det first.
func (m Mat2) Inverse() Mat2 {
	det := m.Det()
	if det == 0 {
		panic("geom: matrix is not invertible")
	}
	return Mat2{
		X: Vec2{X: m.Y.Y / det, Y: -m.X.Y / det},
		Y: Vec2{X: -m.Y.X / det, Y: m.X.X / det},
	}
}

// Row returns row i. It panics if i is out of range.
func (m Mat2) Row(i int) Vec2 {
	switch i {
	case 0:
		return m.X
	case 1:
		return m.Y
	default:
		panic("geom: matrix row index out of range")
	}
}

// At returns the element at (row, col). It panics if either index is out
// of range.
func (m Mat2) At(row, col int) float32 {
	return m.Row(row).At(col)
}

// Set assigns the element at (row, col). It panics if either index is out
// of range.
func (m *Mat2) Set(row, col int, val float32) {
	switch row {
	case 0:
		m.X.SetAt(col, val)
	case 1:
		m.Y.SetAt(col, val)
	default:
		panic("geom: matrix row index out of range")
	}
}

// Approx reports whether two matrices are equal within [Epsilon] per
// element.
func (m Mat2) Approx(n Mat2) bool {
	return m.X.Approx(n.X) && m.Y.Approx(n.Y)
}
