package geom

import "math"

// Vec4 is a 4D float32 vector, mostly used as a homogeneous point during
// the world-to-screen transform chain.
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two vectors.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns the difference of two vectors.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Mul returns the vector scaled by a scalar.
func (v Vec4) Mul(s float32) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div returns the vector divided by a scalar.
func (v Vec4) Div(s float32) Vec4 {
	return Vec4{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// MulEach returns the component-wise product of two vectors.
func (v Vec4) MulEach(w Vec4) Vec4 {
	return Vec4{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z, W: v.W * w.W}
}

// DivEach returns the component-wise quotient of two vectors.
func (v Vec4) DivEach(w Vec4) Vec4 {
	return Vec4{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z, W: v.W / w.W}
}

// Neg returns the negation of the vector.
func (v Vec4) Neg() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Dot returns the dot product of two vectors.
func (v Vec4) Dot(w Vec4) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Length returns the length (magnitude) of the vector.
func (v Vec4) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// LengthSq returns the squared length of the vector.
func (v Vec4) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Distance returns the distance between two points.
func (v Vec4) Distance(w Vec4) float32 {
	return v.Sub(w).Length()
}

// DistanceSq returns the squared distance between two points.
func (v Vec4) DistanceSq(w Vec4) float32 {
	return v.Sub(w).LengthSq()
}

// Normalized returns a unit vector in the same direction. A zero-length
// input yields NaN components; the caller must guard degenerate vectors.
func (v Vec4) Normalized() Vec4 {
	return v.Div(v.Length())
}

// Normalize scales the vector to unit length in place.
func (v *Vec4) Normalize() {
	l := v.Length()
	v.X /= l
	v.Y /= l
	v.Z /= l
	v.W /= l
}

// At returns the component at index i (0 = X .. 3 = W).
// It panics if i is out of range.
func (v Vec4) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic("geom: vector index out of range")
	}
}

// SetAt sets the component at index i (0 = X .. 3 = W).
// It panics if i is out of range.
func (v *Vec4) SetAt(i int, val float32) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	case 3:
		v.W = val
	default:
		panic("geom: vector index out of range")
	}
}

// Vec2 narrows to a Vec2, dropping z and w.
func (v Vec4) Vec2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Vec3 narrows to a Vec3, dropping w.
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Approx reports whether two vectors are equal within [Epsilon] per
// component.
func (v Vec4) Approx(w Vec4) bool {
	return approxEq(v.X, w.X) && approxEq(v.Y, w.Y) &&
		approxEq(v.Z, w.Z) && approxEq(v.W, w.W)
}
