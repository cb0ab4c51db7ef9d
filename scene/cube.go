package scene

import "github.com/gogpu/sdfray/geom"

// Cube is an oriented box described by its center, half-extents and an
// orientation quaternion.
type Cube struct {
	core
	pos    geom.Vec3
	bounds geom.Vec3
	rot    geom.Quat
	color  geom.Vec3
}

func (c *Cube) Kind() Kind { return KindCube }

func (c *Cube) Translate(delta geom.Vec3) { c.pos = c.pos.Add(delta) }

func (c *Cube) SetPos(pos geom.Vec3) { c.pos = pos }

// Rotate composes delta onto the current orientation, applying it after
// the rotation already in place.
func (c *Cube) Rotate(delta geom.Quat) { c.rot = c.rot.Mul(delta) }

func (c *Cube) SetRotation(rot geom.Quat) { c.rot = rot }

func (c *Cube) Pos() geom.Vec3 { return c.pos }

// Bounds returns the half-extents along each local axis.
func (c *Cube) Bounds() geom.Vec3 { return c.bounds }

func (c *Cube) SetBounds(bounds geom.Vec3) { c.bounds = bounds }

func (c *Cube) Rotation() geom.Quat { return c.rot }

func (c *Cube) Color() geom.Vec3 { return c.color }

func (c *Cube) SetColor(col geom.Vec3) { c.color = col }

// WorldBounds returns the axis-aligned box pos ± bounds. The orientation
// is deliberately ignored: the box is conservative only for rotations that
// keep the cube inside its unrotated extents, which matches how the
// raymarcher uses it for coarse culling.
func (c *Cube) WorldBounds() (min, max geom.Vec3) {
	return c.pos.Sub(c.bounds), c.pos.Add(c.bounds)
}

// Data returns the per-cube GPU record.
func (c *Cube) Data() CubeData {
	return CubeData{Pos: c.pos, Bounds: c.bounds, Rot: c.rot.Vec4()}
}
