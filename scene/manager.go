package scene

import (
	"math"

	"github.com/gogpu/sdfray"
	"github.com/gogpu/sdfray/geom"
)

// Manager owns every shape in the scene. Shapes are created through the
// factory methods only, so the manager can assign kind-local indices and
// keep the index-to-slot mapping the shader relies on. Storage is
// append-only: nothing is ever removed, and NewUnion soft-deletes its
// operands by clearing their Enabled flag.
type Manager struct {
	shapes []Shape

	// next holds the next kind-local index per kind; because indices are
	// never reused, next[k] is also the number of shapes of kind k.
	next [kindCount]uint32

	// slots maps kind-local index to storage slot, per kind.
	slots [kindCount][]uint32
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// NewSphere appends a sphere and returns it for further configuration.
func (m *Manager) NewSphere(pos geom.Vec3, radius float32, color geom.Vec3) *Sphere {
	s := &Sphere{
		core:   core{index: m.next[KindSphere], flags: FlagsEnabled()},
		pos:    pos,
		radius: radius,
		color:  color,
	}
	m.append(KindSphere, s)
	return s
}

// NewCube appends a cube with identity orientation and returns it for
// further configuration.
func (m *Manager) NewCube(pos, bounds, color geom.Vec3) *Cube {
	c := &Cube{
		core:   core{index: m.next[KindCube], flags: FlagsEnabled()},
		pos:    pos,
		bounds: bounds,
		rot:    geom.QuatIdentity(),
		color:  color,
	}
	m.append(KindCube, c)
	return c
}

// NewUnion combines the shapes at storage slots left and right into a CSG
// union. Operands must be leaf shapes: the raymarcher resolves union
// operands a single level deep, so a union slot is not a valid operand.
// Both operands are disabled before the union is appended, so a reader
// walking storage never sees a union whose operands still render
// independently. Returns nil, with no side effects, if either slot does
// not resolve to a leaf shape.
func (m *Manager) NewUnion(left, right uint32) *Union {
	l := m.Shape(left)
	r := m.Shape(right)
	if l == nil || r == nil || l.Kind() == KindUnion || r.Kind() == KindUnion {
		return nil
	}
	l.SetFlag(FlagEnabled, false)
	r.SetFlag(FlagEnabled, false)

	u := &Union{
		core:  core{index: m.next[KindUnion], flags: FlagsEnabled()},
		left:  left,
		right: right,
	}
	m.append(KindUnion, u)
	return u
}

func (m *Manager) append(k Kind, s Shape) {
	m.slots[k] = append(m.slots[k], uint32(len(m.shapes)))
	m.shapes = append(m.shapes, s)
	m.next[k]++
}

// Shape returns the shape at the given storage slot, or nil.
func (m *Manager) Shape(slot uint32) Shape {
	if int(slot) >= len(m.shapes) {
		return nil
	}
	return m.shapes[slot]
}

// Sphere resolves a kind-local sphere index, or returns nil.
func (m *Manager) Sphere(index uint32) *Sphere {
	s, _ := m.byIndex(KindSphere, index).(*Sphere)
	return s
}

// Cube resolves a kind-local cube index, or returns nil.
func (m *Manager) Cube(index uint32) *Cube {
	c, _ := m.byIndex(KindCube, index).(*Cube)
	return c
}

// Union resolves a kind-local union index, or returns nil.
func (m *Manager) Union(index uint32) *Union {
	u, _ := m.byIndex(KindUnion, index).(*Union)
	return u
}

func (m *Manager) byIndex(k Kind, index uint32) Shape {
	slots := m.slots[k]
	if int(index) >= len(slots) {
		return nil
	}
	return m.Shape(slots[index])
}

// Shapes iterates the collection in storage order.
func (m *Manager) Shapes(yield func(Shape) bool) {
	for _, s := range m.shapes {
		if !yield(s) {
			return
		}
	}
}

// ShapeCount returns the total number of shapes in storage.
func (m *Manager) ShapeCount() uint32 { return uint32(len(m.shapes)) }

// SphereCount returns the number of spheres created so far.
func (m *Manager) SphereCount() uint32 { return m.next[KindSphere] }

// CubeCount returns the number of cubes created so far.
func (m *Manager) CubeCount() uint32 { return m.next[KindCube] }

// UnionCount returns the number of unions created so far.
func (m *Manager) UnionCount() uint32 { return m.next[KindUnion] }

// SerializeShapes encodes one ShapeData record per shape in storage order.
// invCamera and proj are the world-to-camera and camera-to-clip matrices
// used to project each shape's bounding box to screen space. An empty
// manager yields exactly one sentinel record so the GPU buffer is never
// zero-length. The returned slice is a fresh copy every call.
func (m *Manager) SerializeShapes(invCamera, proj geom.Mat4, width, height int) []byte {
	if len(m.shapes) == 0 {
		return DefaultShapeData().Bytes()
	}
	b := make([]byte, len(m.shapes)*ShapeDataSize)
	for i, s := range m.shapes {
		m.shapeData(s, invCamera, proj, width, height).put(b[i*ShapeDataSize:])
	}
	return b
}

// SerializeSpheres encodes the SphereData records in kind-local index
// order, or one sentinel record if there are no spheres.
func (m *Manager) SerializeSpheres() []byte {
	slots := m.slots[KindSphere]
	if len(slots) == 0 {
		return DefaultSphereData().Bytes()
	}
	b := make([]byte, len(slots)*SphereDataSize)
	for i, slot := range slots {
		m.shapes[slot].(*Sphere).Data().put(b[i*SphereDataSize:])
	}
	return b
}

// SerializeCubes encodes the CubeData records in kind-local index order,
// or one sentinel record if there are no cubes.
func (m *Manager) SerializeCubes() []byte {
	slots := m.slots[KindCube]
	if len(slots) == 0 {
		return DefaultCubeData().Bytes()
	}
	b := make([]byte, len(slots)*CubeDataSize)
	for i, slot := range slots {
		m.shapes[slot].(*Cube).Data().put(b[i*CubeDataSize:])
	}
	return b
}

// SerializeUnions encodes the UnionData records in kind-local index order,
// or one sentinel record if there are no unions.
func (m *Manager) SerializeUnions() []byte {
	slots := m.slots[KindUnion]
	if len(slots) == 0 {
		return DefaultUnionData().Bytes()
	}
	b := make([]byte, len(slots)*UnionDataSize)
	for i, slot := range slots {
		m.shapes[slot].(*Union).Data().put(b[i*UnionDataSize:])
	}
	return b
}

// ShapeBufferSize returns the aligned byte size of the ShapeData buffer,
// counting the sentinel record on an empty manager.
func (m *Manager) ShapeBufferSize(alignment uint32) uint32 {
	return BufferSize(max(len(m.shapes), 1)*ShapeDataSize, alignment)
}

// SphereBufferSize returns the aligned byte size of the SphereData buffer.
func (m *Manager) SphereBufferSize(alignment uint32) uint32 {
	return BufferSize(max(len(m.slots[KindSphere]), 1)*SphereDataSize, alignment)
}

// CubeBufferSize returns the aligned byte size of the CubeData buffer.
func (m *Manager) CubeBufferSize(alignment uint32) uint32 {
	return BufferSize(max(len(m.slots[KindCube]), 1)*CubeDataSize, alignment)
}

// UnionBufferSize returns the aligned byte size of the UnionData buffer.
func (m *Manager) UnionBufferSize(alignment uint32) uint32 {
	return BufferSize(max(len(m.slots[KindUnion]), 1)*UnionDataSize, alignment)
}

// UpdateShaderConfig writes the shape counts into the per-frame uniform
// record. Other fields are left untouched.
func (m *Manager) UpdateShaderConfig(cfg *sdfray.ShaderParams) {
	cfg.ShapeCount = m.ShapeCount()
	cfg.SphereCount = uint32(len(m.slots[KindSphere]))
	cfg.CubeCount = uint32(len(m.slots[KindCube]))
}

// shapeData builds the generic record for s, projecting its world bounds
// to screen space.
func (m *Manager) shapeData(s Shape, invCamera, proj geom.Mat4, width, height int) ShapeData {
	d := ShapeData{
		Index: s.Index(),
		Type:  uint32(s.Kind()),
		Flags: s.Flags().Bits(),
	}
	switch s := s.(type) {
	case *Sphere:
		d.Color = s.color.Extend(0)
	case *Cube:
		d.Color = s.color.Extend(0)
	case *Union:
		// Unions carry no color of their own.
	}
	lo, hi := m.WorldBounds(s)
	d.Bounds = screenBounds(lo, hi, invCamera, proj, width, height)
	return d
}

// WorldBounds returns the axis-aligned world-space bounding box of s. For
// a union it is the component-wise union of its operands' boxes.
func (m *Manager) WorldBounds(s Shape) (lo, hi geom.Vec3) {
	switch s := s.(type) {
	case *Sphere:
		return s.WorldBounds()
	case *Cube:
		return s.WorldBounds()
	case *Union:
		llo, lhi := m.WorldBounds(m.shapes[s.left])
		rlo, rhi := m.WorldBounds(m.shapes[s.right])
		return llo.Min(rlo), lhi.Max(rhi)
	}
	return geom.Vec3{}, geom.Vec3{}
}

// screenBounds projects the 8 corners of a world-space box through the
// camera and projection matrices, perspective-divides, maps NDC [-1, 1] to
// pixels and takes the min/max over the corners.
func screenBounds(lo, hi geom.Vec3, invCamera, proj geom.Mat4, width, height int) [4]float32 {
	corners := [8]geom.Vec3{
		geom.V3(lo.X, lo.Y, lo.Z),
		geom.V3(lo.X, lo.Y, hi.Z),
		geom.V3(lo.X, hi.Y, lo.Z),
		geom.V3(lo.X, hi.Y, hi.Z),
		geom.V3(hi.X, lo.Y, lo.Z),
		geom.V3(hi.X, lo.Y, hi.Z),
		geom.V3(hi.X, hi.Y, lo.Z),
		geom.V3(hi.X, hi.Y, hi.Z),
	}
	const inf = float32(math.MaxFloat32)
	minX, minY := inf, inf
	maxX, maxY := -inf, -inf
	for _, c := range corners {
		clip := proj.MulVec(invCamera.MulVec(c.Extend(1)))
		ndc := clip.Vec3().Div(clip.W)
		x := (ndc.X + 1) / 2 * float32(width)
		y := (ndc.Y + 1) / 2 * float32(height)
		minX, minY = min(minX, x), min(minY, y)
		maxX, maxY = max(maxX, x), max(maxY, y)
	}
	return [4]float32{minX, minY, maxX, maxY}
}
