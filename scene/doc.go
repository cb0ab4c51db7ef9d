// Package scene holds the shape registry feeding the GPU raymarcher.
//
// Shapes form a closed set — Sphere, Cube and Union — created exclusively
// through [Manager] factory methods so the manager can keep its index
// bookkeeping consistent: every shape carries a kind-local index assigned at
// construction, monotonically increasing and never reused, which always
// equals the shape's ordinal position among same-kind shapes. The shader
// addresses the per-kind storage buffers by exactly that index, so shapes
// are never removed from storage; a Union soft-deletes its operands by
// clearing their Enabled flag instead.
//
// Serialization produces byte-exact little-endian records (see ShapeData,
// SphereData, CubeData, UnionData) padded to the 16-byte alignment WGSL
// requires for 3- and 4-component vectors. Buffers are fresh copies on
// every call, never views into manager state.
//
// The package is intentionally not safe for concurrent use: the frame loop
// is the single writer, mutating shapes and then serializing.
package scene
