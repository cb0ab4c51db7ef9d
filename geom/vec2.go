package geom

import "math"

// Vec2 is a 2D float32 vector. It is an immutable value type; operations
// return new values except for the pointer-receiver mutators Normalize
// and SetAt.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// MulEach returns the component-wise product of two vectors.
func (v Vec2) MulEach(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// DivEach returns the component-wise quotient of two vectors.
func (v Vec2) DivEach(w Vec2) Vec2 {
	return Vec2{X: v.X / w.X, Y: v.Y / w.Y}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar): the z-component of the 3D
// cross product with z=0.
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// LengthSq returns the squared length of the vector.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between two points.
func (v Vec2) Distance(w Vec2) float32 {
	return v.Sub(w).Length()
}

// DistanceSq returns the squared distance between two points.
func (v Vec2) DistanceSq(w Vec2) float32 {
	return v.Sub(w).LengthSq()
}

// Normalized returns a unit vector in the same direction. A zero-length
// input yields NaN components; the caller must guard degenerate vectors.
func (v Vec2) Normalized() Vec2 {
	return v.Div(v.Length())
}

// Normalize scales the vector to unit length in place. Same NaN caveat
// as Normalized.
func (v *Vec2) Normalize() {
	l := v.Length()
	v.X /= l
	v.Y /= l
}

// At returns the component at index i (0 = X, 1 = Y).
// It panics if i is out of range.
func (v Vec2) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic("geom: vector index out of range")
	}
}

// SetAt sets the component at index i (0 = X, 1 = Y).
// It panics if i is out of range.
func (v *Vec2) SetAt(i int, val float32) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		panic("geom: vector index out of range")
	}
}

// Vec3 widens to a Vec3 with z = 0.
func (v Vec2) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y}
}

// Vec4 widens to a Vec4 with z = w = 0.
func (v Vec2) Vec4() Vec4 {
	return Vec4{X: v.X, Y: v.Y}
}

// Approx reports whether two vectors are equal within [Epsilon] per
// component.
func (v Vec2) Approx(w Vec2) bool {
	return approxEq(v.X, w.X) && approxEq(v.Y, w.Y)
}

// approxEq reports |a-b| < Epsilon.
func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) < Epsilon
}
