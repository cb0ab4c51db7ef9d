package geom

import (
	"math"
	"testing"
)

func testCamera() *Camera {
	return NewCamera(V3(0, 0, 0), 640, 480, float32(math.Pi/2), float32(math.Pi/2))
}

func TestCameraMatrix(t *testing.T) {
	c := testCamera()
	// hfov = vfov = 90 degrees: fx = 320/tan(45) = 320, fy = 240.
	want := M3(V3(320, 0, 320), V3(0, 240, 240), V3(0, 0, 1))
	if got := c.Matrix(); !got.Approx(want) {
		t.Errorf("Matrix = %v, want %v", got, want)
	}
	if got := c.Matrix().Mul(c.InverseMatrix()); !got.Approx(Mat3Identity()) {
		t.Errorf("matrix * inverse = %v, want identity", got)
	}
}

func TestCameraScreenFromWorld(t *testing.T) {
	c := testCamera()
	tests := []struct {
		name  string
		world Vec3
		want  Vec2
	}{
		{"optical axis", V3(0, 0, 1), V2(320, 240)},
		{"right of axis", V3(1, 0, 1), V2(640, 240)},
		{"below axis", V3(0, 0.5, 1), V2(320, 360)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ScreenFromWorld(tt.world); !got.Approx(tt.want) {
				t.Errorf("ScreenFromWorld(%v) = %v, want %v", tt.world, got, tt.want)
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := testCamera()
	// Points on the z=1 plane survive the full round trip.
	points := []Vec3{
		V3(0, 0, 1),
		V3(0.25, -0.5, 1),
		V3(-1, 1, 1),
	}
	for _, p := range points {
		got := c.WorldFromScreen(c.ScreenFromWorld(p))
		if !got.Approx(p) {
			t.Errorf("round trip of %v = %v", p, got)
		}
	}
}

func TestCameraWorldFromScreen(t *testing.T) {
	c := testCamera()
	// The principal point lifts onto the optical axis.
	if got := c.WorldFromScreen(V2(320, 240)); !got.Approx(V3(0, 0, 1)) {
		t.Errorf("WorldFromScreen(principal) = %v, want (0, 0, 1)", got)
	}
}
