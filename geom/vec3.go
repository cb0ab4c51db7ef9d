package geom

import "math"

// Vec3 is a 3D float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by a scalar.
func (v Vec3) Div(s float32) Vec3 {
	return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// MulEach returns the component-wise product of two vectors.
func (v Vec3) MulEach(w Vec3) Vec3 {
	return Vec3{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// DivEach returns the component-wise quotient of two vectors.
func (v Vec3) DivEach(w Vec3) Vec3 {
	return Vec3{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z}
}

// Neg returns the negation of the vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product of two vectors.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// LengthSq returns the squared length of the vector.
func (v Vec3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance between two points.
func (v Vec3) Distance(w Vec3) float32 {
	return v.Sub(w).Length()
}

// DistanceSq returns the squared distance between two points.
func (v Vec3) DistanceSq(w Vec3) float32 {
	return v.Sub(w).LengthSq()
}

// Normalized returns a unit vector in the same direction. A zero-length
// input yields NaN components; the caller must guard degenerate vectors.
func (v Vec3) Normalized() Vec3 {
	return v.Div(v.Length())
}

// Normalize scales the vector to unit length in place.
func (v *Vec3) Normalize() {
	l := v.Length()
	v.X /= l
	v.Y /= l
	v.Z /= l
}

// Min returns the component-wise minimum of two vectors.
func (v Vec3) Min(w Vec3) Vec3 {
	return Vec3{
		X: min(v.X, w.X),
		Y: min(v.Y, w.Y),
		Z: min(v.Z, w.Z),
	}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec3) Max(w Vec3) Vec3 {
	return Vec3{
		X: max(v.X, w.X),
		Y: max(v.Y, w.Y),
		Z: max(v.Z, w.Z),
	}
}

// At returns the component at index i (0 = X, 1 = Y, 2 = Z).
// It panics if i is out of range.
func (v Vec3) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("geom: vector index out of range")
	}
}

// SetAt sets the component at index i (0 = X, 1 = Y, 2 = Z).
// It panics if i is out of range.
func (v *Vec3) SetAt(i int, val float32) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		panic("geom: vector index out of range")
	}
}

// Vec2 narrows to a Vec2, dropping z.
func (v Vec3) Vec2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Vec4 widens to a Vec4 with w = 0.
func (v Vec3) Vec4() Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z}
}

// Extend widens to a Vec4 with the given w component. Extend(1) produces
// the homogeneous point used for projective transforms.
func (v Vec3) Extend(w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Approx reports whether two vectors are equal within [Epsilon] per
// component.
func (v Vec3) Approx(w Vec3) bool {
	return approxEq(v.X, w.X) && approxEq(v.Y, w.Y) && approxEq(v.Z, w.Z)
}
