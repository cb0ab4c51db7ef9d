package sdfray

import (
	"encoding/binary"
	"math"
)

// ShaderParamsSize is the packed byte size of ShaderParams, matching the
// uniform block consumed by the raymarching shader.
const ShaderParamsSize = 24

// ShaderParams is the per-frame uniform shared with the raymarching shader:
// elapsed time, the surface size in pixels, and the array lengths of the
// three shape storage buffers. The shape counts are written by
// scene.Manager.UpdateShaderConfig; the rest is owned by the frame loop.
type ShaderParams struct {
	Time   float32
	Width  uint32
	Height uint32

	// Storage buffer array lengths.
	ShapeCount  uint32
	SphereCount uint32
	CubeCount   uint32
}

// SinT returns sin(Time).
func (p *ShaderParams) SinT() float32 {
	return float32(math.Sin(float64(p.Time)))
}

// CosT returns cos(Time).
func (p *ShaderParams) CosT() float32 {
	return float32(math.Cos(float64(p.Time)))
}

// SSinT returns sin(Time * scale).
func (p *ShaderParams) SSinT(scale float32) float32 {
	return float32(math.Sin(float64(p.Time * scale)))
}

// SCosT returns cos(Time * scale).
func (p *ShaderParams) SCosT(scale float32) float32 {
	return float32(math.Cos(float64(p.Time * scale)))
}

// Bytes packs the params into a little-endian buffer of ShaderParamsSize
// bytes, field order matching the WGSL uniform declaration.
func (p *ShaderParams) Bytes() []byte {
	buf := make([]byte, ShaderParamsSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(p.Time))
	binary.LittleEndian.PutUint32(buf[4:], p.Width)
	binary.LittleEndian.PutUint32(buf[8:], p.Height)
	binary.LittleEndian.PutUint32(buf[12:], p.ShapeCount)
	binary.LittleEndian.PutUint32(buf[16:], p.SphereCount)
	binary.LittleEndian.PutUint32(buf[20:], p.CubeCount)
	return buf
}
