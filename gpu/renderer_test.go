package gpu

import (
	"math"
	"testing"

	"github.com/gogpu/sdfray"
	"github.com/gogpu/sdfray/geom"
	"github.com/gogpu/sdfray/scene"
)

func TestRaymarchShaderCompiles(t *testing.T) {
	spirv, err := compileShader(raymarchShaderSource)
	if err != nil {
		t.Fatalf("compileShader: %v", err)
	}
	if len(spirv) == 0 {
		t.Fatal("compileShader returned empty SPIR-V")
	}
	// SPIR-V modules start with the magic number 0x07230203.
	if spirv[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", spirv[0])
	}
}

func TestRendererRenderFrame(t *testing.T) {
	dev, err := NewDevice()
	if err != nil {
		t.Skipf("no GPU available: %v", err)
	}
	defer dev.Close()

	m := scene.NewManager()
	m.NewSphere(geom.V3(0, 0, 0), 1.5, geom.V3(1, 0, 0))
	m.NewCube(geom.V3(3, 0, 0), geom.V3(1, 1, 1), geom.V3(0, 1, 0))

	const w, h = 64, 48
	r, err := NewRenderer(dev, m, w, h)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	defer r.Close()

	view := geom.Mat4LookAt(geom.V3(0, 0, 10), geom.V3(0, 0, 0), geom.V3(0, 1, 0))
	proj := geom.Mat4Perspective(float32(math.Pi/4), float32(w)/float32(h), 0.1, 100)
	params := sdfray.ShaderParams{Width: w, Height: h}

	pix, err := r.RenderFrame(m, &params, view, proj, geom.V3(0, 0, 10))
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if len(pix) != w*h*4 {
		t.Fatalf("frame length = %d, want %d", len(pix), w*h*4)
	}
	if params.ShapeCount != 2 || params.SphereCount != 1 || params.CubeCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1",
			params.ShapeCount, params.SphereCount, params.CubeCount)
	}

	// The sphere fills the center of the frame; the background clear
	// color must not cover everything.
	background := 0
	for i := 0; i < len(pix); i += 4 {
		if pix[i] < 40 && pix[i+1] < 70 && pix[i+2] < 100 {
			background++
		}
	}
	if background == len(pix)/4 {
		t.Error("rendered frame contains only background pixels")
	}
}

func TestRendererBuffersGrow(t *testing.T) {
	dev, err := NewDevice()
	if err != nil {
		t.Skipf("no GPU available: %v", err)
	}
	defer dev.Close()

	m := scene.NewManager()
	m.NewSphere(geom.V3(0, 0, 0), 1, geom.V3(1, 1, 1))

	r, err := NewRenderer(dev, m, 32, 32)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	defer r.Close()
	initial := r.shapeCap

	// 48 bytes per shape: a few hundred shapes exceed any initial
	// alignment-rounded capacity.
	for i := 0; i < 300; i++ {
		m.NewSphere(geom.V3(float32(i), 0, 0), 0.5, geom.V3(1, 1, 1))
	}

	view := geom.Mat4LookAt(geom.V3(0, 0, 10), geom.V3(0, 0, 0), geom.V3(0, 1, 0))
	proj := geom.Mat4Perspective(float32(math.Pi/4), 1, 0.1, 100)
	params := sdfray.ShaderParams{Width: 32, Height: 32}
	if _, err := r.RenderFrame(m, &params, view, proj, geom.V3(0, 0, 10)); err != nil {
		t.Fatalf("RenderFrame after growth: %v", err)
	}
	if r.shapeCap <= initial {
		t.Errorf("shape buffer capacity = %d, want growth beyond %d", r.shapeCap, initial)
	}
}
