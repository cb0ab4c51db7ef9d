package anim

import (
	"math"
	"testing"

	"github.com/gogpu/sdfray/geom"
	"github.com/gogpu/sdfray/scene"
)

func TestNewCubeGrid(t *testing.T) {
	m := scene.NewManager()
	g := NewCubeGrid(m, 4, 3, 2)

	if m.CubeCount() != 12 {
		t.Fatalf("CubeCount = %d, want 12", m.CubeCount())
	}
	if c := g.Cube(0, 0); c.Pos() != geom.V3(0, 0, 0) {
		t.Errorf("cube (0,0) at %v, want origin", c.Pos())
	}
	if c := g.Cube(3, 2); c.Pos() != geom.V3(6, 4, 0) {
		t.Errorf("cube (3,2) at %v, want (6, 4, 0)", c.Pos())
	}
	// Grid cubes are addressable through the manager by kind-local index
	// in column-major creation order.
	if g.Cube(1, 2) != m.Cube(1*3+2) {
		t.Error("grid cube does not match manager lookup")
	}
}

func TestApplyFrame(t *testing.T) {
	m := scene.NewManager()
	g := NewCubeGrid(m, 2, 2, 2)

	seq := &FrameSequence{
		width:  2,
		height: 2,
		// Row-major, image y down: top row (0.25, 0.5), bottom (0.75, 1).
		frames: [][]float32{{0.25, 0.5, 0.75, 1}},
	}
	if err := g.ApplyFrame(seq, 0); err != nil {
		t.Fatalf("ApplyFrame: %v", err)
	}
	// The image's top row lands on the grid's top cubes (y = 1).
	if got := g.Cube(0, 1).Bounds(); got != geom.V3(0.25, 0.25, 0.25) {
		t.Errorf("cube (0,1) bounds = %v, want 0.25", got)
	}
	if got := g.Cube(1, 0).Bounds(); got != geom.V3(1, 1, 1) {
		t.Errorf("cube (1,0) bounds = %v, want 1", got)
	}
}

func TestApplyFrameMismatch(t *testing.T) {
	m := scene.NewManager()
	g := NewCubeGrid(m, 2, 2, 2)
	seq := &FrameSequence{width: 3, height: 2, frames: [][]float32{make([]float32, 6)}}

	if err := g.ApplyFrame(seq, 0); err == nil {
		t.Error("ApplyFrame with mismatched grid did not fail")
	}
	seq2 := &FrameSequence{width: 2, height: 2, frames: [][]float32{make([]float32, 4)}}
	if err := g.ApplyFrame(seq2, 1); err == nil {
		t.Error("ApplyFrame with out-of-range frame did not fail")
	}
}

func TestReset(t *testing.T) {
	m := scene.NewManager()
	g := NewCubeGrid(m, 2, 2, 2)

	c := g.Cube(1, 1)
	c.SetBounds(geom.V3(0.1, 0.1, 0.1))
	c.Rotate(geom.QuatFromAngleZ(float32(math.Pi / 3)))

	g.Reset()
	if got := c.Bounds(); got != geom.V3(1, 1, 1) {
		t.Errorf("bounds after Reset = %v, want unit", got)
	}
	if !c.Rotation().Approx(geom.QuatIdentity()) {
		t.Errorf("rotation after Reset = %v, want identity", c.Rotation())
	}
}
