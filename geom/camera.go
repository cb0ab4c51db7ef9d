package geom

import "math"

// Camera maps between world space and screen space through a pinhole
// intrinsic matrix. The matrix and its inverse are computed once at
// construction; to change resolution or field of view, construct a new
// Camera. Position may be reassigned freely between frames.
type Camera struct {
	Position Vec3

	matrix  Mat3
	inverse Mat3
}

// NewCamera builds a camera at position for an image of width x height
// pixels with the given horizontal and vertical fields of view in radians.
//
// The intrinsic matrix places focal lengths (w/2)/tan(hfov/2) and
// (h/2)/tan(vfov/2) on the diagonal with the principal point at the image
// center. It is invertible by construction for fov in (0, pi) and positive
// dimensions.
func NewCamera(position Vec3, width, height int, hFOV, vFOV float32) *Camera {
	cx := float32(width) / 2
	cy := float32(height) / 2
	fx := cx / float32(math.Tan(float64(hFOV/2)))
	fy := cy / float32(math.Tan(float64(vFOV/2)))
	matrix := Mat3{
		X: Vec3{X: fx, Z: cx},
		Y: Vec3{Y: fy, Z: cy},
		Z: Vec3{Z: 1},
	}
	return &Camera{
		Position: position,
		matrix:   matrix,
		inverse:  matrix.Inverse(),
	}
}

// Matrix returns the intrinsic projection matrix.
func (c *Camera) Matrix() Mat3 {
	return c.matrix
}

// InverseMatrix returns the precomputed inverse of the intrinsic matrix.
func (c *Camera) InverseMatrix() Mat3 {
	return c.inverse
}

// ScreenFromWorld projects a world-space point to pixel coordinates,
// dropping the depth component.
func (c *Camera) ScreenFromWorld(p Vec3) Vec2 {
	return c.matrix.MulVec(p).Vec2()
}

// WorldFromScreen lifts pixel coordinates back onto the z=1 plane in
// camera space.
func (c *Camera) WorldFromScreen(p Vec2) Vec3 {
	return c.inverse.MulVec(Vec3{X: p.X, Y: p.Y, Z: 1})
}
