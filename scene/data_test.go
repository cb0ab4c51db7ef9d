package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/sdfray/geom"
)

func f32At(t *testing.T, b []byte, off int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func u32At(t *testing.T, b []byte, off int) uint32 {
	t.Helper()
	return binary.LittleEndian.Uint32(b[off:])
}

func TestShapeDataLayout(t *testing.T) {
	d := ShapeData{
		Color:  geom.V4(0.1, 0.2, 0.3, 0),
		Index:  7,
		Type:   uint32(KindCube),
		Flags:  1,
		Bounds: [4]float32{10, 20, 30, 40},
	}
	b := d.Bytes()
	if len(b) != ShapeDataSize {
		t.Fatalf("len = %d, want %d", len(b), ShapeDataSize)
	}
	if got := f32At(t, b, 0); got != 0.1 {
		t.Errorf("color.r at 0 = %v, want 0.1", got)
	}
	if got := u32At(t, b, 16); got != 7 {
		t.Errorf("index at 16 = %d, want 7", got)
	}
	if got := u32At(t, b, 20); got != 1 {
		t.Errorf("type at 20 = %d, want 1", got)
	}
	if got := u32At(t, b, 24); got != 1 {
		t.Errorf("flags at 24 = %d, want 1", got)
	}
	if got := u32At(t, b, 28); got != 0 {
		t.Errorf("padding at 28 = %d, want 0", got)
	}
	for i, want := range []float32{10, 20, 30, 40} {
		if got := f32At(t, b, 32+4*i); got != want {
			t.Errorf("bounds[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestDefaultShapeData(t *testing.T) {
	b := DefaultShapeData().Bytes()
	if got := u32At(t, b, 16); got != NoIndex {
		t.Errorf("sentinel index = %d, want NoIndex", got)
	}
	if got := u32At(t, b, 20); got != NoIndex {
		t.Errorf("sentinel type = %d, want NoIndex", got)
	}
	if got := f32At(t, b, 32); got != -math.MaxFloat32 {
		t.Errorf("sentinel min-x = %v, want -MaxFloat32", got)
	}
	if got := f32At(t, b, 44); got != math.MaxFloat32 {
		t.Errorf("sentinel max-y = %v, want MaxFloat32", got)
	}
}

func TestSphereDataLayout(t *testing.T) {
	b := SphereData{Pos: geom.V3(1, 2, 3), Radius: 4}.Bytes()
	if len(b) != SphereDataSize {
		t.Fatalf("len = %d, want %d", len(b), SphereDataSize)
	}
	for i, want := range []float32{1, 2, 3, 4} {
		if got := f32At(t, b, 4*i); got != want {
			t.Errorf("word %d = %v, want %v", i, got, want)
		}
	}
}

func TestCubeDataLayout(t *testing.T) {
	b := DefaultCubeData().Bytes()
	if len(b) != CubeDataSize {
		t.Fatalf("len = %d, want %d", len(b), CubeDataSize)
	}
	if got := f32At(t, b, 12); got != 0 {
		t.Errorf("padding at 12 = %v, want 0", got)
	}
	for i, want := range []float32{1, 1, 1} {
		if got := f32At(t, b, 16+4*i); got != want {
			t.Errorf("bounds[%d] = %v, want %v", i, got, want)
		}
	}
	if got := f32At(t, b, 28); got != 0 {
		t.Errorf("padding at 28 = %v, want 0", got)
	}
	// Identity quaternion serializes as (0, 0, 0, 1).
	for i, want := range []float32{0, 0, 0, 1} {
		if got := f32At(t, b, 32+4*i); got != want {
			t.Errorf("rot[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestUnionDataLayout(t *testing.T) {
	b := UnionData{Left: 1, Right: 2, Index: 3}.Bytes()
	if len(b) != UnionDataSize {
		t.Fatalf("len = %d, want %d", len(b), UnionDataSize)
	}
	for i, want := range []uint32{1, 2, 3} {
		if got := u32At(t, b, 4*i); got != want {
			t.Errorf("word %d = %d, want %d", i, got, want)
		}
	}
}

func TestBufferSize(t *testing.T) {
	tests := []struct {
		raw       int
		alignment uint32
		want      uint32
	}{
		{0, 256, 0},
		{1, 256, 256},
		{48, 256, 256},
		{256, 256, 256},
		{257, 256, 512},
		{100, 0, 100},
	}
	for _, tt := range tests {
		if got := BufferSize(tt.raw, tt.alignment); got != tt.want {
			t.Errorf("BufferSize(%d, %d) = %d, want %d", tt.raw, tt.alignment, got, tt.want)
		}
	}
}
