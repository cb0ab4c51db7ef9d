package scene

import (
	"math"

	"github.com/gogpu/sdfray/geom"
)

// Kind discriminates the closed set of shape variants. The numeric values
// are part of the GPU contract: they appear verbatim in the shape-kind tag
// of every serialized ShapeData record.
type Kind uint32

const (
	KindSphere Kind = iota
	KindCube
	KindUnion

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindCube:
		return "cube"
	case KindUnion:
		return "union"
	}
	return "unknown"
}

// NoIndex is the kind-local index of a sentinel record that corresponds to
// no shape. Real indices start at zero and grow monotonically.
const NoIndex uint32 = math.MaxUint32

// Shape is the capability set shared by all variants. The set is closed:
// only Sphere, Cube and Union implement it, and only the Manager creates
// them, so a type switch over the three concrete types is exhaustive.
//
// Mutators that do not apply to a variant are no-ops rather than errors:
// rotating a sphere or moving a union does nothing.
type Shape interface {
	// Kind reports the variant tag.
	Kind() Kind

	// Index returns the kind-local index assigned at construction.
	Index() uint32

	// Translate moves the shape by delta in world space.
	Translate(delta geom.Vec3)

	// SetPos places the shape at pos in world space.
	SetPos(pos geom.Vec3)

	// Rotate composes delta onto the current orientation.
	Rotate(delta geom.Quat)

	// SetRotation replaces the current orientation.
	SetRotation(rot geom.Quat)

	Flags() Flags
	SetFlags(Flags)
	Flag(Flag) bool
	SetFlag(Flag, bool)

	sealed()
}

// core carries the bookkeeping every variant shares.
type core struct {
	index uint32
	flags Flags
}

func (c *core) Index() uint32 { return c.index }

func (c *core) Flags() Flags { return c.flags }

func (c *core) SetFlags(f Flags) { c.flags = f }

func (c *core) Flag(f Flag) bool { return c.flags.Has(f) }

func (c *core) SetFlag(f Flag, on bool) { c.flags = c.flags.With(f, on) }

func (c *core) sealed() {}
