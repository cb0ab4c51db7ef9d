package anim

import (
	"fmt"

	"github.com/gogpu/sdfray/geom"
	"github.com/gogpu/sdfray/scene"
)

// CubeGrid is a width x height field of unit cubes whose half-extents are
// driven by frame luminance: a bright cell grows its cube toward a full
// unit cube, a dark cell shrinks it to nothing.
type CubeGrid struct {
	width  int
	height int
	cubes  []*scene.Cube
}

// NewCubeGrid creates width x height cubes in the manager, spaced on a
// regular grid in the z = 0 plane. Cubes keep a per-cell tint so the grid
// stays readable when every cube has the same size.
func NewCubeGrid(m *scene.Manager, width, height int, spacing float32) *CubeGrid {
	g := &CubeGrid{
		width:  width,
		height: height,
		cubes:  make([]*scene.Cube, 0, width*height),
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			pos := geom.V3(float32(x)*spacing, float32(y)*spacing, 0)
			color := geom.V3(0.2+float32(x)*0.04, 0.2+float32(y)*0.04, 0.2)
			g.cubes = append(g.cubes, m.NewCube(pos, geom.V3(1, 1, 1), color))
		}
	}
	return g
}

// Width returns the grid width in cubes.
func (g *CubeGrid) Width() int { return g.width }

// Height returns the grid height in cubes.
func (g *CubeGrid) Height() int { return g.height }

// Cube returns the cube at grid cell (x, y).
func (g *CubeGrid) Cube(x, y int) *scene.Cube {
	return g.cubes[x*g.height+y]
}

// ApplyFrame sets every cube's half-extents from the luminance of its
// cell in the given frame. The sequence grid must match the cube grid.
func (g *CubeGrid) ApplyFrame(seq *FrameSequence, frame int) error {
	if seq.Width() != g.width || seq.Height() != g.height {
		return fmt.Errorf("anim: sequence grid %dx%d does not match cube grid %dx%d",
			seq.Width(), seq.Height(), g.width, g.height)
	}
	if frame < 0 || frame >= seq.FrameCount() {
		return fmt.Errorf("anim: frame %d out of range [0, %d)", frame, seq.FrameCount())
	}
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			// The image's y axis points down; the grid's points up.
			p := seq.PixelAt(frame, x, g.height-1-y)
			g.Cube(x, y).SetBounds(geom.V3(p, p, p))
		}
	}
	return nil
}

// Reset restores every cube to a unit cube with identity orientation.
func (g *CubeGrid) Reset() {
	for _, c := range g.cubes {
		c.SetRotation(geom.QuatIdentity())
		c.SetBounds(geom.V3(1, 1, 1))
	}
}
