// Package anim drives scene mutation from image data: a FrameSequence
// decodes numbered PNG frames into luminance grids, and a CubeGrid maps
// each grid cell onto a cube in the scene whose extents track the pixel
// value frame by frame.
package anim

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/gogpu/sdfray"
)

// ErrNoFrames is returned when a sequence directory yields no frames.
var ErrNoFrames = errors.New("anim: no frames found")

// FrameSequence is a decoded image sequence downscaled to a fixed-size
// luminance grid, one float in [0, 1] per cell.
type FrameSequence struct {
	width  int
	height int
	frames [][]float32
}

// LoadFrameSequence reads numbered frames dir/f0001.png, dir/f0002.png,
// ... until a file is missing, scaling each to width x height with
// nearest-neighbour sampling. Luminance is (r+g+b)/765.
func LoadFrameSequence(dir string, width, height int) (*FrameSequence, error) {
	seq := &FrameSequence{width: width, height: height}
	for index := 1; ; index++ {
		// Frame numbering starts at 1, following ffmpeg output.
		path := filepath.Join(dir, fmt.Sprintf("f%04d.png", index))
		frame, err := loadFrame(path, width, height)
		if os.IsNotExist(err) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("anim: frame %d: %w", index, err)
		}
		seq.frames = append(seq.frames, frame)
	}
	if len(seq.frames) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFrames, dir)
	}
	sdfray.Logger().Info("anim: sequence loaded",
		"dir", dir, "frames", len(seq.frames), "width", width, "height", height)
	return seq, nil
}

func loadFrame(path string, width, height int) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)

	frame := make([]float32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := scaled.PixOffset(x, y)
			r, g, b := scaled.Pix[o], scaled.Pix[o+1], scaled.Pix[o+2]
			frame[y*width+x] = float32(uint32(r)+uint32(g)+uint32(b)) / 765
		}
	}
	return frame, nil
}

// Width returns the grid width in cells.
func (s *FrameSequence) Width() int { return s.width }

// Height returns the grid height in cells.
func (s *FrameSequence) Height() int { return s.height }

// FrameCount returns the number of decoded frames.
func (s *FrameSequence) FrameCount() int { return len(s.frames) }

// Frame returns the luminance grid of the given frame, row-major. Panics
// if index is out of range.
func (s *FrameSequence) Frame(index int) []float32 { return s.frames[index] }

// PixelAt returns the luminance of cell (x, y) in the given frame. Panics
// if the frame index or cell is out of range.
func (s *FrameSequence) PixelAt(frame, x, y int) float32 {
	return s.frames[frame][y*s.width+x]
}

// IndexFromTime maps a playback time in seconds to a frame index at the
// given frame rate. The result is not clamped to the sequence length.
func (s *FrameSequence) IndexFromTime(time, fps float32) int {
	return int(time * fps)
}
