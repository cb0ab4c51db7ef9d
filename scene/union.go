package scene

import "github.com/gogpu/sdfray/geom"

// Union is a CSG combination of two shapes already in storage, referenced
// by their storage slot. It has no spatial state of its own: positioning a
// union is a no-op, and its bounding box is derived from the operands by
// the Manager.
type Union struct {
	core
	left  uint32
	right uint32
}

func (u *Union) Kind() Kind { return KindUnion }

func (u *Union) Translate(geom.Vec3) {}

func (u *Union) SetPos(geom.Vec3) {}

func (u *Union) Rotate(geom.Quat) {}

func (u *Union) SetRotation(geom.Quat) {}

// Left returns the storage slot of the first operand.
func (u *Union) Left() uint32 { return u.left }

// Right returns the storage slot of the second operand.
func (u *Union) Right() uint32 { return u.right }

// Data returns the per-union GPU record.
func (u *Union) Data() UnionData {
	return UnionData{Left: u.left, Right: u.right, Index: u.index}
}
