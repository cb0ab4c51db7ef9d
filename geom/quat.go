package geom

// Quat is a rotation quaternion with vector part (X, Y, Z) and scalar
// part W. Shapes serialize it to the GPU as (x, y, z, w).
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns the rotation of angle radians about the given
// axis. The axis must be unit length.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	s, c := sincos(angle / 2)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// QuatFromAngleX returns the rotation of angle radians about the x axis.
func QuatFromAngleX(angle float32) Quat {
	return QuatFromAxisAngle(Vec3{X: 1}, angle)
}

// QuatFromAngleY returns the rotation of angle radians about the y axis.
func QuatFromAngleY(angle float32) Quat {
	return QuatFromAxisAngle(Vec3{Y: 1}, angle)
}

// QuatFromAngleZ returns the rotation of angle radians about the z axis.
func QuatFromAngleZ(angle float32) Quat {
	return QuatFromAxisAngle(Vec3{Z: 1}, angle)
}

// Mul returns the Hamilton product q * r: the rotation r followed by q
// under the convention that vectors rotate as q*v*q^-1.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conjugate returns the quaternion with a negated vector part. For unit
// quaternions this is the inverse rotation.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Vec4 returns the quaternion components as (x, y, z, w), the layout used
// in the GPU cube record.
func (q Quat) Vec4() Vec4 {
	return Vec4{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// Normalized returns the unit quaternion in the same direction.
func (q Quat) Normalized() Quat {
	l := q.Vec4().Length()
	return Quat{X: q.X / l, Y: q.Y / l, Z: q.Z / l, W: q.W / l}
}

// Approx reports whether two quaternions are equal within [Epsilon] per
// component.
func (q Quat) Approx(r Quat) bool {
	return approxEq(q.X, r.X) && approxEq(q.Y, r.Y) &&
		approxEq(q.Z, r.Z) && approxEq(q.W, r.W)
}
