package geom

// Mat3 is a 3x3 float32 matrix stored as three row vectors.
type Mat3 struct {
	X, Y, Z Vec3
}

// M3 creates a Mat3 from three row vectors.
func M3(x, y, z Vec3) Mat3 {
	return Mat3{X: x, Y: y, Z: z}
}

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		X: Vec3{X: 1},
		Y: Vec3{Y: 1},
		Z: Vec3{Z: 1},
	}
}

// Mat3FromAlpha returns the rotation matrix about the x axis by alpha
// radians.
func Mat3FromAlpha(alpha float32) Mat3 {
	s, c := sincos(alpha)
	return Mat3{
		X: Vec3{X: 1},
		Y: Vec3{Y: c, Z: s},
		Z: Vec3{Y: -s, Z: c},
	}
}

// Mat3FromBeta returns the rotation matrix about the y axis by beta
// radians.
func Mat3FromBeta(beta float32) Mat3 {
	s, c := sincos(beta)
	return Mat3{
		X: Vec3{X: c, Z: -s},
		Y: Vec3{Y: 1},
		Z: Vec3{X: s, Z: c},
	}
}

// Mat3FromGamma returns the rotation matrix about the z axis by gamma
// radians.
func Mat3FromGamma(gamma float32) Mat3 {
	s, c := sincos(gamma)
	return Mat3{
		X: Vec3{X: c, Y: s},
		Y: Vec3{X: -s, Y: c},
		Z: Vec3{Z: 1},
	}
}

// Add returns the element-wise sum of two matrices.
func (m Mat3) Add(n Mat3) Mat3 {
	return Mat3{X: m.X.Add(n.X), Y: m.Y.Add(n.Y), Z: m.Z.Add(n.Z)}
}

// Sub returns the element-wise difference of two matrices.
func (m Mat3) Sub(n Mat3) Mat3 {
	return Mat3{X: m.X.Sub(n.X), Y: m.Y.Sub(n.Y), Z: m.Z.Sub(n.Z)}
}

// Neg returns the element-wise negation.
func (m Mat3) Neg() Mat3 {
	return Mat3{X: m.X.Neg(), Y: m.Y.Neg(), Z: m.Z.Neg()}
}

// Mul returns the matrix product m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	t := n.Transpose()
	return Mat3{
		X: Vec3{X: m.X.Dot(t.X), Y: m.X.Dot(t.Y), Z: m.X.Dot(t.Z)},
		Y: Vec3{X: m.Y.Dot(t.X), Y: m.Y.Dot(t.Y), Z: m.Y.Dot(t.Z)},
		Z: Vec3{X: m.Z.Dot(t.X), Y: m.Z.Dot(t.Y), Z: m.Z.Dot(t.Z)},
	}
}

// MulVec returns the matrix-vector product m * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.X.Dot(v),
		Y: m.Y.Dot(v),
		Z: m.Z.Dot(v),
	}
}

// MulScalar returns the matrix scaled by s.
func (m Mat3) MulScalar(s float32) Mat3 {
	return Mat3{X: m.X.Mul(s), Y: m.Y.Mul(s), Z: m.Z.Mul(s)}
}

// DivScalar returns the matrix divided by s.
func (m Mat3) DivScalar(s float32) Mat3 {
	return Mat3{X: m.X.Div(s), Y: m.Y.Div(s), Z: m.Z.Div(s)}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		X: Vec3{X: m.X.X, Y: m.Y.X, Z: m.Z.X},
		Y: Vec3{X: m.X.Y, Y: m.Y.Y, Z: m.Z.Y},
		Z: Vec3{X: m.X.Z, Y: m.Y.Z, Z: m.Z.Z},
	}
}

// SubMatrix returns the 2x2 minor obtained by removing the given row and
// column, preserving the order of the remaining rows and columns. It
// panics if either index is out of range.
func (m Mat3) SubMatrix(row, col int) Mat2 {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		panic("geom: matrix row index out of range")
	}
	var sub Mat2
	r := 0
	for i := 0; i < 3; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < 3; j++ {
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
func (m Mat3) CofactorMatrix() Mat3 {
	var cof Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
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
func (m Mat3) Adjugate() Mat3 {
	return m.CofactorMatrix().Transpose()
}

// Det returns the determinant, computed by cofactor expansion along the
// first row with 2x2 minors.
func (m Mat3) Det() float32 {
	return m.X.X*m.SubMatrix(0, 0).Det() -
		m.X.Y*m.SubMatrix(0, 1).Det() +
		m.X.Z*m.SubMatrix(0, 2).Det()
}

// Inverse returns the adjugate scaled by 1/det. It panics if the
// determinant is exactly zero; callers must guarantee invertibility or
// check Det first.
func (m Mat3) Inverse() Mat3 {
	det := m.Det()
	if det == 0 {
		panic("geom: matrix is not invertible")
	}
	return m.Adjugate().MulScalar(1 / det)
}

// Row returns row i. It panics if i is out of range.
func (m Mat3) Row(i int) Vec3 {
	switch i {
	case 0:
		return m.X
	case 1:
		return m.Y
	case 2:
		return m.Z
	default:
		panic("geom: matrix row index out of range")
	}
}

// At returns the element at (row, col). It panics if either index is out
// of range.
func (m Mat3) At(row, col int) float32 {
	return m.Row(row).At(col)
}

// Set assigns the element at (row, col). It panics if either index is out
// of range.
func (m *Mat3) Set(row, col int, val float32) {
	switch row {
	case 0:
		m.X.SetAt(col, val)
	case 1:
		m.Y.SetAt(col, val)
	case 2:
		m.Z.SetAt(col, val)
	default:
		panic("geom: matrix row index out of range")
	}
}

// Approx reports whether two matrices are equal within [Epsilon] per
// element.
func (m Mat3) Approx(n Mat3) bool {
	return m.X.Approx(n.X) && m.Y.Approx(n.Y) && m.Z.Approx(n.Z)
}
