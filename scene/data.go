package scene

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/sdfray/geom"
)

// Record sizes in bytes. WGSL aligns 3- and 4-component vectors to 16
// bytes, so the structs carry explicit padding to land every vector on
// such a boundary.
const (
	ShapeDataSize  = 48
	SphereDataSize = 16
	CubeDataSize   = 48
	UnionDataSize  = 12
)

// ShapeData is the generic per-shape record, one per shape in storage
// order. Bounds is the screen-space bounding box (min-x, min-y, max-x,
// max-y) used by the shader for coarse rejection.
type ShapeData struct {
	Color  geom.Vec4
	Index  uint32
	Type   uint32
	Flags  uint32
	Bounds [4]float32
}

// DefaultShapeData returns the sentinel record emitted when storage is
// empty. Index and Type carry NoIndex so the shader skips it; the bounding
// box is the full plane so the sentinel never culls by accident.
func DefaultShapeData() ShapeData {
	return ShapeData{
		Index:  NoIndex,
		Type:   NoIndex,
		Bounds: [4]float32{-math.MaxFloat32, -math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
	}
}

func (d ShapeData) put(b []byte) {
	putVec4(b, d.Color)
	binary.LittleEndian.PutUint32(b[16:], d.Index)
	binary.LittleEndian.PutUint32(b[20:], d.Type)
	binary.LittleEndian.PutUint32(b[24:], d.Flags)
	putF32(b[28:], 0) // pad so Bounds starts 16-byte aligned
	for i, c := range d.Bounds {
		putF32(b[32+4*i:], c)
	}
}

// Bytes returns the 48-byte little-endian encoding of the record.
func (d ShapeData) Bytes() []byte {
	b := make([]byte, ShapeDataSize)
	d.put(b)
	return b
}

// SphereData packs a sphere's position and radius into a single vec4.
type SphereData struct {
	Pos    geom.Vec3
	Radius float32
}

// DefaultSphereData returns the sentinel record for an empty sphere
// buffer: a unit sphere at the origin.
func DefaultSphereData() SphereData {
	return SphereData{Radius: 1}
}

func (d SphereData) put(b []byte) {
	putVec3(b, d.Pos)
	putF32(b[12:], d.Radius)
}

// Bytes returns the 16-byte little-endian encoding of the record.
func (d SphereData) Bytes() []byte {
	b := make([]byte, SphereDataSize)
	d.put(b)
	return b
}

// CubeData carries a cube's center, half-extents and orientation. Rot is
// the quaternion in (x, y, z, w) vector layout.
type CubeData struct {
	Pos    geom.Vec3
	Bounds geom.Vec3
	Rot    geom.Vec4
}

// DefaultCubeData returns the sentinel record for an empty cube buffer: a
// unit cube at the origin with identity orientation.
func DefaultCubeData() CubeData {
	return CubeData{Bounds: geom.V3(1, 1, 1), Rot: geom.QuatIdentity().Vec4()}
}

func (d CubeData) put(b []byte) {
	putVec3(b, d.Pos)
	putF32(b[12:], 0) // vec3 occupies 16 bytes on the GPU
	putVec3(b[16:], d.Bounds)
	putF32(b[28:], 0)
	putVec4(b[32:], d.Rot)
}

// Bytes returns the 48-byte little-endian encoding of the record.
func (d CubeData) Bytes() []byte {
	b := make([]byte, CubeDataSize)
	d.put(b)
	return b
}

// UnionData names a union's two operand storage slots and its own
// kind-local index.
type UnionData struct {
	Left  uint32
	Right uint32
	Index uint32
}

// DefaultUnionData returns the sentinel record for an empty union buffer.
func DefaultUnionData() UnionData {
	return UnionData{Left: NoIndex, Right: NoIndex, Index: NoIndex}
}

func (d UnionData) put(b []byte) {
	binary.LittleEndian.PutUint32(b, d.Left)
	binary.LittleEndian.PutUint32(b[4:], d.Right)
	binary.LittleEndian.PutUint32(b[8:], d.Index)
}

// Bytes returns the 12-byte little-endian encoding of the record.
func (d UnionData) Bytes() []byte {
	b := make([]byte, UnionDataSize)
	d.put(b)
	return b
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func putVec3(b []byte, v geom.Vec3) {
	putF32(b, v.X)
	putF32(b[4:], v.Y)
	putF32(b[8:], v.Z)
}

func putVec4(b []byte, v geom.Vec4) {
	putF32(b, v.X)
	putF32(b[4:], v.Y)
	putF32(b[8:], v.Z)
	putF32(b[12:], v.W)
}

// BufferSize rounds raw up to the next multiple of the device's minimum
// storage-buffer offset alignment.
func BufferSize(raw int, alignment uint32) uint32 {
	if alignment == 0 {
		return uint32(raw)
	}
	chunks := (uint32(raw) + alignment - 1) / alignment
	return chunks * alignment
}
