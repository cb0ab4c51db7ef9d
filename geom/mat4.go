package geom

// Mat4 is a 4x4 float32 matrix stored as four row vectors. The raymarcher
// frame loop uses it for the inverse-camera and projection transforms fed
// to the screen bounding-box computation.
type Mat4 struct {
	X, Y, Z, W Vec4
}

// M4 creates a Mat4 from four row vectors.
func M4(x, y, z, w Vec4) Mat4 {
	return Mat4{X: x, Y: y, Z: z, W: w}
}

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		X: Vec4{X: 1},
		Y: Vec4{Y: 1},
		Z: Vec4{Z: 1},
		W: Vec4{W: 1},
	}
}

// Add returns the element-wise sum of two matrices.
func (m Mat4) Add(n Mat4) Mat4 {
	return Mat4{X: m.X.Add(n.X), Y: m.Y.Add(n.Y), Z: m.Z.Add(n.Z), W: m.W.Add(n.W)}
}

// Sub returns the element-wise difference of two matrices.
func (m Mat4) Sub(n Mat4) Mat4 {
	return Mat4{X: m.X.Sub(n.X), Y: m.Y.Sub(n.Y), Z: m.Z.Sub(n.Z), W: m.W.Sub(n.W)}
}

// Neg returns the element-wise negation.
func (m Mat4) Neg() Mat4 {
	return Mat4{X: m.X.Neg(), Y: m.Y.Neg(), Z: m.Z.Neg(), W: m.W.Neg()}
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	t := n.Transpose()
	return Mat4{
		X: Vec4{X: m.X.Dot(t.X), Y: m.X.Dot(t.Y), Z: m.X.Dot(t.Z), W: m.X.Dot(t.W)},
		Y: Vec4{X: m.Y.Dot(t.X), Y: m.Y.Dot(t.Y), Z: m.Y.Dot(t.Z), W: m.Y.Dot(t.W)},
		Z: Vec4{X: m.Z.Dot(t.X), Y: m.Z.Dot(t.Y), Z: m.Z.Dot(t.Z), W: m.Z.Dot(t.W)},
		W: Vec4{X: m.W.Dot(t.X), Y: m.W.Dot(t.Y), Z: m.W.Dot(t.Z), W: m.W.Dot(t.W)},
	}
}

// MulVec returns the matrix-vector product m * v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: m.X.Dot(v),
		Y: m.Y.Dot(v),
		Z: m.Z.Dot(v),
		W: m.W.Dot(v),
	}
}

// MulScalar returns the matrix scaled by s.
func (m Mat4) MulScalar(s float32) Mat4 {
	return Mat4{X: m.X.Mul(s), Y: m.Y.Mul(s), Z: m.Z.Mul(s), W: m.W.Mul(s)}
}

// DivScalar returns the matrix divided by s.
func (m Mat4) DivScalar(s float32) Mat4 {
	return Mat4{X: m.X.Div(s), Y: m.Y.Div(s), Z: m.Z.Div(s), W: m.W.Div(s)}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		X: Vec4{X: m.X.X, Y: m.Y.X, Z: m.Z.X, W: m.W.X},
		Y: Vec4{X: m.X.Y, Y: m.Y.Y, Z: m.Z.Y, W: m.W.Y},
		Z: Vec4{X: m.X.Z, Y: m.Y.Z, Z: m.Z.Z, W: m.W.Z},
		W: Vec4{X: m.X.W, Y: m.Y.W, Z: m.Z.W, W: m.W.W},
	}
}

// SubMatrix returns the 3x3 minor obtained by removing the given row and
// column, preserving the order of the remaining rows and columns. It
// panics if either index is out of range.
func (m Mat4) SubMatrix(row, col int) Mat3 {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		panic("geom: matrix row index out of range")
	}
	var sub Mat3
	r := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			sub.Set(r, c, m.At(i, j))
			c++
		}
		r++
	}
	return sub
}

// CofactorMatrix returns the matrix of cofactors: each element (i, j) is
// the determinant of the (i, j) minor, negated when i+j is odd.
func (m Mat4) CofactorMatrix() Mat4 {
	var cof Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			c := m.SubMatrix(i, j).Det()
			if (i+j)%2 != 0 {
				c = -c
			}
			cof.Set(i, j, c)
		}
	}
	return cof
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Mat4) Adjugate() Mat4 {
	return m.CofactorMatrix().Transpose()
}

// Det returns the determinant, computed by cofactor expansion along the
// first row with 3x3 minors.
func (m Mat4) Det() float32 {
	return m.X.X*m.SubMatrix(0, 0).Det() -
		m.X.Y*m.SubMatrix(0, 1).Det() +
		m.X.Z*m.SubMatrix(0, 2).Det() -
		m.X.W*m.SubMatrix(0, 3).Det()
}

// Inverse returns the adjugate scaled by 1/det. It panics if the
// determinant is exactly zero; callers must guarantee invertibility or
// check Det first.
func (m Mat4) Inverse() Mat4 {
	det := m.Det()
	if det == 0 {
		panic("geom: matrix is not invertible")
	}
	return m.Adjugate().MulScalar(1 / det)
}

// Row returns row i. It panics if i is out of range.
func (m Mat4) Row(i int) Vec4 {
	switch i {
	case 0:
		return m.X
	case 1:
		return m.Y
	case 2:
		return m.Z
	case 3:
		return m.W
	default:
		panic("geom: matrix row index out of range")
	}
}

// At returns the element at (row, col). It panics if either index is out
// of range.
func (m Mat4) At(row, col int) float32 {
	return m.Row(row).At(col)
}

// Set assigns the element at (row, col). It panics if either index is out
// of range.
func (m *Mat4) Set(row, col int, val float32) {
	switch row {
	case 0:
		m.X.SetAt(col, val)
	case 1:
		m.Y.SetAt(col, val)
	case 2:
		m.Z.SetAt(col, val)
	case 3:
		m.W.SetAt(col, val)
	default:
		panic("geom: matrix row index out of range")
	}
}

// Approx reports whether two matrices are equal within [Epsilon] per
// element.
func (m Mat4) Approx(n Mat4) bool {
	return m.X.Approx(n.X) && m.Y.Approx(n.Y) && m.Z.Approx(n.Z) && m.W.Approx(n.W)
}
