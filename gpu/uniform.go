package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/sdfray/geom"
)

// CameraUniformSize is the byte size of the camera uniform: a vec4
// position followed by a 4x4 matrix.
const CameraUniformSize = 80

// CameraUniform is the per-frame camera block the raymarch shader reads.
// InvViewProj takes NDC points back to world space, so the shader can
// build a ray through each pixel; Pos is the ray origin.
type CameraUniform struct {
	Pos         geom.Vec3
	InvViewProj geom.Mat4
}

// NewCameraUniform derives the uniform from a camera position and the
// view and projection matrices used for serialization, inverting their
// product once on the CPU.
func NewCameraUniform(pos geom.Vec3, view, proj geom.Mat4) CameraUniform {
	return CameraUniform{Pos: pos, InvViewProj: proj.Mul(view).Inverse()}
}

// Bytes returns the little-endian encoding of the uniform. The matrix is
// written column-major as WGSL mat4x4 expects.
func (u CameraUniform) Bytes() []byte {
	b := make([]byte, CameraUniformSize)
	putF32(b, u.Pos.X)
	putF32(b[4:], u.Pos.Y)
	putF32(b[8:], u.Pos.Z)
	putF32(b[12:], 0)
	putMat4(b[16:], u.InvViewProj)
	return b
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

// putMat4 writes m column-major: column j of the matrix is rows' j-th
// components in row order.
func putMat4(b []byte, m geom.Mat4) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			putF32(b[(col*4+row)*4:], m.Row(row).At(col))
		}
	}
}
