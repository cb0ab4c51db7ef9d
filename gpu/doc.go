// Package gpu uploads the scene to the GPU and runs the raymarch compute
// shader over it.
//
// The package speaks wgpu/hal directly: a Device wraps instance, adapter
// and queue bring-up (or borrows them from a host application through a
// gpucontext device provider), and a Renderer owns the uniform and storage
// buffers the shader binds — per-frame config, camera, the generic shape
// records and the per-kind sphere and cube records — plus the pixel buffer
// the compute pass writes. Buffers are created from the manager's aligned
// sizes and grow as the append-only scene grows.
//
// The raymarch shader is embedded WGSL, compiled to SPIR-V with naga at
// renderer construction.
package gpu
