package geom

import "math"

// Mat4Translation returns the homogeneous transform moving points by v.
func Mat4Translation(v Vec3) Mat4 {
	return M4(
		V4(1, 0, 0, v.X),
		V4(0, 1, 0, v.Y),
		V4(0, 0, 1, v.Z),
		V4(0, 0, 0, 1),
	)
}

// Mat4Perspective returns a right-handed perspective projection with the
// given vertical field of view in radians, mapping depth to [-1, 1] NDC.
func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / float32(math.Tan(float64(fovY)/2))
	d := near - far
	return M4(
		V4(f/aspect, 0, 0, 0),
		V4(0, f, 0, 0),
		V4(0, 0, (far+near)/d, 2*far*near/d),
		V4(0, 0, -1, 0),
	)
}

// Mat4LookAt returns the world-to-camera transform for a camera at eye
// looking toward center with the given up direction.
func Mat4LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)
	return M4(
		V4(s.X, s.Y, s.Z, -s.Dot(eye)),
		V4(u.X, u.Y, u.Z, -u.Dot(eye)),
		V4(-f.X, -f.Y, -f.Z, f.Dot(eye)),
		V4(0, 0, 0, 1),
	)
}
