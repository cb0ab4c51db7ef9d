package scene

import "github.com/gogpu/sdfray/geom"

// Sphere is a world-space sphere. Spheres are rotation-invariant, so the
// orientation mutators do nothing.
type Sphere struct {
	core
	pos    geom.Vec3
	radius float32
	color  geom.Vec3
}

func (s *Sphere) Kind() Kind { return KindSphere }

func (s *Sphere) Translate(delta geom.Vec3) { s.pos = s.pos.Add(delta) }

func (s *Sphere) SetPos(pos geom.Vec3) { s.pos = pos }

func (s *Sphere) Rotate(geom.Quat) {}

func (s *Sphere) SetRotation(geom.Quat) {}

func (s *Sphere) Pos() geom.Vec3 { return s.pos }

func (s *Sphere) Radius() float32 { return s.radius }

func (s *Sphere) SetRadius(r float32) { s.radius = r }

func (s *Sphere) Color() geom.Vec3 { return s.color }

func (s *Sphere) SetColor(c geom.Vec3) { s.color = c }

// WorldBounds returns the axis-aligned box enclosing the sphere.
func (s *Sphere) WorldBounds() (min, max geom.Vec3) {
	r := geom.V3(s.radius, s.radius, s.radius)
	return s.pos.Sub(r), s.pos.Add(r)
}

// Data returns the per-sphere GPU record.
func (s *Sphere) Data() SphereData {
	return SphereData{Pos: s.pos, Radius: s.radius}
}
