package anim

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestFrames writes n grayscale PNG frames of the given size, where
// frame i is filled with gray level levels[i].
func writeTestFrames(t *testing.T, dir string, w, h int, levels []uint8) {
	t.Helper()
	for i, level := range levels {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.Set(x, y, color.RGBA{R: level, G: level, B: level, A: 255})
			}
		}
		path := filepath.Join(dir, fmt.Sprintf("f%04d.png", i+1))
		f, err := os.Create(path)
		if err != nil {
			t.Fatalf("create %s: %v", path, err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatalf("encode %s: %v", path, err)
		}
		f.Close()
	}
}

func TestLoadFrameSequence(t *testing.T) {
	dir := t.TempDir()
	writeTestFrames(t, dir, 4, 3, []uint8{0, 255, 51})

	seq, err := LoadFrameSequence(dir, 4, 3)
	if err != nil {
		t.Fatalf("LoadFrameSequence: %v", err)
	}
	if seq.FrameCount() != 3 {
		t.Fatalf("FrameCount = %d, want 3", seq.FrameCount())
	}
	if seq.Width() != 4 || seq.Height() != 3 {
		t.Errorf("grid = %dx%d, want 4x3", seq.Width(), seq.Height())
	}
	if got := seq.PixelAt(0, 0, 0); got != 0 {
		t.Errorf("black frame pixel = %v, want 0", got)
	}
	if got := seq.PixelAt(1, 3, 2); got != 1 {
		t.Errorf("white frame pixel = %v, want 1", got)
	}
	// Gray level 51 in all three channels: 153/765 = 0.2.
	if got := seq.PixelAt(2, 1, 1); got != 0.2 {
		t.Errorf("gray frame pixel = %v, want 0.2", got)
	}
}

func TestLoadFrameSequenceScales(t *testing.T) {
	dir := t.TempDir()
	// An 8x6 source scaled down to a 2x2 grid.
	writeTestFrames(t, dir, 8, 6, []uint8{255})

	seq, err := LoadFrameSequence(dir, 2, 2)
	if err != nil {
		t.Fatalf("LoadFrameSequence: %v", err)
	}
	if got := seq.PixelAt(0, 1, 1); got != 1 {
		t.Errorf("scaled pixel = %v, want 1", got)
	}
}

func TestLoadFrameSequenceEmpty(t *testing.T) {
	_, err := LoadFrameSequence(t.TempDir(), 4, 3)
	if !errors.Is(err, ErrNoFrames) {
		t.Errorf("err = %v, want ErrNoFrames", err)
	}
}

func TestPixelAtOutOfRangePanics(t *testing.T) {
	seq := &FrameSequence{width: 1, height: 1, frames: [][]float32{{0.5}}}
	defer func() {
		if recover() == nil {
			t.Error("PixelAt past the last frame did not panic")
		}
	}()
	seq.PixelAt(1, 0, 0)
}

func TestIndexFromTime(t *testing.T) {
	seq := &FrameSequence{frames: make([][]float32, 100)}
	tests := []struct {
		time float32
		fps  float32
		want int
	}{
		{0, 30, 0},
		{1, 30, 30},
		{0.5, 30, 15},
		{2.04, 30, 61},
	}
	for _, tt := range tests {
		if got := seq.IndexFromTime(tt.time, tt.fps); got != tt.want {
			t.Errorf("IndexFromTime(%v, %v) = %d, want %d", tt.time, tt.fps, got, tt.want)
		}
	}
}
