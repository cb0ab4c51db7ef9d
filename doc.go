// Package sdfray is the CPU-side scene kernel for a GPU signed-distance-field
// raymarcher.
//
// # Overview
//
// sdfray owns everything the raymarching shader needs from the CPU each
// frame: float32 vector/matrix math, a pinhole camera, a heterogeneous shape
// registry, and tightly packed binary buffers matching the shader's WGSL
// storage layouts. The GPU pipeline itself (surface, swapchain, input) is the
// host application's concern; sdfray only mutates scene state and produces
// bytes.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sdfray/geom"
//	    "github.com/gogpu/sdfray/scene"
//	)
//
//	mgr := scene.NewManager()
//	mgr.NewSphere(geom.V3(0, 0, 5), 1, geom.V3(1, 0.2, 0.2))
//	cube := mgr.NewCube(geom.V3(2, 0, 5), geom.V3(1, 1, 1), geom.V3(0.2, 1, 0.2))
//	cube.Rotate(geom.QuatFromAngleY(0.3))
//
//	var params sdfray.ShaderParams
//	mgr.UpdateShaderConfig(&params)
//	buf := mgr.SerializeShapes(invCamera, projection, 1920, 1080)
//	// upload buf unchanged; see the gpu subpackage.
//
// # Architecture
//
// The library is organized into:
//   - sdfray (root): per-frame shader parameters, logging
//   - geom: Vec2/3/4, Mat2/3/4, quaternions, pinhole Camera
//   - scene: Sphere/Cube/Union shapes, Manager, GPU record packing
//   - gpu: buffer and pipeline plumbing over gogpu/wgpu
//   - anim: frame-sequence driven scene animation helpers
//
// # Coordinate System
//
// World space is right-handed with the camera looking down +Z. Screen space
// has its origin at the top-left with Y increasing down; angles are radians.
//
// # Concurrency
//
// The scene kernel is single-threaded by design: one writer mutates shapes,
// then serializes. Serialized buffers are fresh copies, never views into
// manager-owned memory.
package sdfray
