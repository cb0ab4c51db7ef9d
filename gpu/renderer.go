package gpu

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sdfray"
	"github.com/gogpu/sdfray/geom"
	"github.com/gogpu/sdfray/scene"
)

// StorageAlignment is the minimum storage-buffer offset alignment assumed
// for buffer sizing, the WebGPU default limit. Feed it to the manager's
// buffer-size helpers when allocating for this renderer.
const StorageAlignment uint32 = 256

// configBufferSize is the allocated size of the per-frame uniform; the
// 24-byte ShaderParams record is rounded up to a 16-byte boundary.
const configBufferSize = 32

const renderTimeout = 5 * time.Second

// Renderer owns the GPU resources for the raymarch pass: the compute
// pipeline, the uniform and storage buffers the shader binds, and the
// pixel buffer it writes. Storage buffers grow with the append-only scene;
// growth recreates the bind group.
type Renderer struct {
	dev *Device

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline

	configBuf hal.Buffer
	cameraBuf hal.Buffer
	shapeBuf  hal.Buffer
	sphereBuf hal.Buffer
	cubeBuf   hal.Buffer
	unionBuf  hal.Buffer
	pixelBuf  hal.Buffer
	staging   hal.Buffer

	shapeCap  uint64
	sphereCap uint64
	cubeCap   uint64
	unionCap  uint64

	bindGroup hal.BindGroup

	width, height uint32
}

// NewRenderer compiles the raymarch shader and allocates buffers sized
// for the manager's current contents.
func NewRenderer(dev *Device, m *scene.Manager, width, height int) (*Renderer, error) {
	r := &Renderer{
		dev:    dev,
		width:  uint32(width),
		height: uint32(height),
	}
	if err := r.createPipeline(); err != nil {
		r.Close()
		return nil, err
	}
	if err := r.createBuffers(m); err != nil {
		r.Close()
		return nil, err
	}
	if err := r.createBindGroup(); err != nil {
		r.Close()
		return nil, err
	}
	logger().Debug("gpu: renderer ready",
		"width", width, "height", height, "shapes", m.ShapeCount())
	return r, nil
}

// label prefixes a resource name with the device's label for debuggers.
func (r *Renderer) label(name string) string {
	return r.dev.label + "_" + name
}

func (r *Renderer) createPipeline() error {
	spirv, err := compileShader(raymarchShaderSource)
	if err != nil {
		return err
	}
	shader, err := r.dev.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  r.label("raymarch"),
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("gpu: create shader module: %w", err)
	}
	r.shader = shader

	uniform := func(binding uint32) gputypes.BindGroupLayoutEntry {
		return gputypes.BindGroupLayoutEntry{
			Binding:    binding,
			Visibility: gputypes.ShaderStageCompute,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		}
	}
	storage := func(binding uint32, readOnly bool) gputypes.BindGroupLayoutEntry {
		t := gputypes.BufferBindingTypeStorage
		if readOnly {
			t = gputypes.BufferBindingTypeReadOnlyStorage
		}
		return gputypes.BindGroupLayoutEntry{
			Binding:    binding,
			Visibility: gputypes.ShaderStageCompute,
			Buffer:     &gputypes.BufferBindingLayout{Type: t},
		}
	}
	bindLayout, err := r.dev.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: r.label("bind_layout"),
		Entries: []gputypes.BindGroupLayoutEntry{
			uniform(0),         // config
			uniform(1),         // camera
			storage(2, true),   // shapes
			storage(3, true),   // spheres
			storage(4, true),   // cubes
			storage(5, true),   // unions
			storage(6, false),  // pixels
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create bind group layout: %w", err)
	}
	r.bindLayout = bindLayout

	pipeLayout, err := r.dev.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            r.label("pipe_layout"),
		BindGroupLayouts: []hal.BindGroupLayout{r.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("gpu: create pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	pipeline, err := r.dev.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:   r.label("pipeline"),
		Layout:  r.pipeLayout,
		Compute: hal.ComputeState{Module: r.shader, EntryPoint: "main"},
	})
	if err != nil {
		return fmt.Errorf("gpu: create compute pipeline: %w", err)
	}
	r.pipeline = pipeline
	return nil
}

func (r *Renderer) createBuffers(m *scene.Manager) error {
	var err error
	mk := func(name string, size uint64, usage gputypes.BufferUsage) hal.Buffer {
		if err != nil {
			return nil
		}
		var buf hal.Buffer
		buf, err = r.dev.device.CreateBuffer(&hal.BufferDescriptor{
			Label: r.label(name), Size: size, Usage: usage,
		})
		if err != nil {
			err = fmt.Errorf("gpu: create %s buffer: %w", name, err)
		}
		return buf
	}

	storageUsage := gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst
	r.shapeCap = uint64(m.ShapeBufferSize(StorageAlignment))
	r.sphereCap = uint64(m.SphereBufferSize(StorageAlignment))
	r.cubeCap = uint64(m.CubeBufferSize(StorageAlignment))
	r.unionCap = uint64(m.UnionBufferSize(StorageAlignment))

	pixelSize := uint64(r.width) * uint64(r.height) * 4

	r.configBuf = mk("config", configBufferSize,
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	r.cameraBuf = mk("camera", CameraUniformSize,
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	r.shapeBuf = mk("shapes", r.shapeCap, storageUsage)
	r.sphereBuf = mk("spheres", r.sphereCap, storageUsage)
	r.cubeBuf = mk("cubes", r.cubeCap, storageUsage)
	r.unionBuf = mk("unions", r.unionCap, storageUsage)
	r.pixelBuf = mk("pixels", pixelSize,
		gputypes.BufferUsageStorage|gputypes.BufferUsageCopySrc)
	r.staging = mk("staging", pixelSize,
		gputypes.BufferUsageMapRead|gputypes.BufferUsageCopyDst)
	return err
}

func (r *Renderer) createBindGroup() error {
	entry := func(binding uint32, buf hal.Buffer, size uint64) gputypes.BindGroupEntry {
		return gputypes.BindGroupEntry{
			Binding:  binding,
			Resource: gputypes.BufferBinding{Buffer: buf.NativeHandle(), Offset: 0, Size: size},
		}
	}
	pixelSize := uint64(r.width) * uint64(r.height) * 4
	bg, err := r.dev.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  r.label("bind"),
		Layout: r.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			entry(0, r.configBuf, configBufferSize),
			entry(1, r.cameraBuf, CameraUniformSize),
			entry(2, r.shapeBuf, r.shapeCap),
			entry(3, r.sphereBuf, r.sphereCap),
			entry(4, r.cubeBuf, r.cubeCap),
			entry(5, r.unionBuf, r.unionCap),
			entry(6, r.pixelBuf, pixelSize),
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create bind group: %w", err)
	}
	r.bindGroup = bg
	return nil
}

// ensureCapacity grows a storage buffer to fit need bytes, reporting
// whether the buffer was replaced.
func (r *Renderer) ensureCapacity(buf *hal.Buffer, capacity *uint64, need uint64, name string) (bool, error) {
	if need <= *capacity {
		return false, nil
	}
	size := uint64(scene.BufferSize(int(need), StorageAlignment))
	nb, err := r.dev.device.CreateBuffer(&hal.BufferDescriptor{
		Label: r.label(name), Size: size,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return false, fmt.Errorf("gpu: grow %s buffer: %w", name, err)
	}
	r.dev.device.DestroyBuffer(*buf)
	*buf = nb
	*capacity = size
	logger().Debug("gpu: storage buffer grown", "buffer", name, "size", size)
	return true, nil
}

// upload refreshes every buffer from the manager's current state.
func (r *Renderer) upload(m *scene.Manager, params *sdfray.ShaderParams, view, proj geom.Mat4, camPos geom.Vec3) error {
	m.UpdateShaderConfig(params)

	shapes := m.SerializeShapes(view, proj, int(r.width), int(r.height))
	spheres := m.SerializeSpheres()
	cubes := m.SerializeCubes()
	unions := m.SerializeUnions()

	grown := false
	for _, g := range []struct {
		buf   *hal.Buffer
		cap   *uint64
		need  uint64
		label string
	}{
		{&r.shapeBuf, &r.shapeCap, uint64(len(shapes)), "shapes"},
		{&r.sphereBuf, &r.sphereCap, uint64(len(spheres)), "spheres"},
		{&r.cubeBuf, &r.cubeCap, uint64(len(cubes)), "cubes"},
		{&r.unionBuf, &r.unionCap, uint64(len(unions)), "unions"},
	} {
		changed, err := r.ensureCapacity(g.buf, g.cap, g.need, g.label)
		if err != nil {
			return err
		}
		grown = grown || changed
	}
	if grown {
		r.dev.device.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
		if err := r.createBindGroup(); err != nil {
			return err
		}
	}

	cam := NewCameraUniform(camPos, view, proj)
	r.dev.queue.WriteBuffer(r.configBuf, 0, params.Bytes())
	r.dev.queue.WriteBuffer(r.cameraBuf, 0, cam.Bytes())
	r.dev.queue.WriteBuffer(r.shapeBuf, 0, shapes)
	r.dev.queue.WriteBuffer(r.sphereBuf, 0, spheres)
	r.dev.queue.WriteBuffer(r.cubeBuf, 0, cubes)
	r.dev.queue.WriteBuffer(r.unionBuf, 0, unions)
	return nil
}

// RenderFrame serializes the scene, uploads it, runs the raymarch pass
// and reads back the framebuffer as RGBA bytes, row-major from the top.
// view is the world-to-camera matrix, proj the camera-to-clip matrix, and
// camPos the camera position in world space.
func (r *Renderer) RenderFrame(m *scene.Manager, params *sdfray.ShaderParams, view, proj geom.Mat4, camPos geom.Vec3) ([]byte, error) {
	if err := r.upload(m, params, view, proj, camPos); err != nil {
		return nil, err
	}

	encoder, err := r.dev.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: r.label("encoder")})
	if err != nil {
		return nil, fmt.Errorf("gpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("raymarch"); err != nil {
		return nil, fmt.Errorf("gpu: begin encoding: %w", err)
	}

	pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: r.label("pass")})
	pass.SetPipeline(r.pipeline)
	pass.SetBindGroup(0, r.bindGroup, nil)
	pass.Dispatch((r.width+7)/8, (r.height+7)/8, 1)
	pass.End()

	pixelSize := uint64(r.width) * uint64(r.height) * 4
	encoder.CopyBufferToBuffer(r.pixelBuf, r.staging, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: pixelSize},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("gpu: end encoding: %w", err)
	}
	defer r.dev.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.dev.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("gpu: create fence: %w", err)
	}
	defer r.dev.device.DestroyFence(fence)
	if err := r.dev.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("gpu: submit: %w", err)
	}
	ok, err := r.dev.device.Wait(fence, 1, renderTimeout)
	if err != nil || !ok {
		return nil, fmt.Errorf("gpu: wait for frame: ok=%v err=%w", ok, err)
	}

	out := make([]byte, pixelSize)
	if err := r.dev.queue.ReadBuffer(r.staging, 0, out); err != nil {
		return nil, fmt.Errorf("gpu: readback: %w", err)
	}
	return out, nil
}

// Close destroys all renderer-owned GPU resources. The device is left to
// its owner.
func (r *Renderer) Close() {
	dev := r.dev.device
	if dev == nil {
		return
	}
	if r.bindGroup != nil {
		dev.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
	}
	for _, buf := range []*hal.Buffer{
		&r.configBuf, &r.cameraBuf, &r.shapeBuf, &r.sphereBuf,
		&r.cubeBuf, &r.unionBuf, &r.pixelBuf, &r.staging,
	} {
		if *buf != nil {
			dev.DestroyBuffer(*buf)
			*buf = nil
		}
	}
	if r.pipeline != nil {
		dev.DestroyComputePipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipeLayout != nil {
		dev.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.bindLayout != nil {
		dev.DestroyBindGroupLayout(r.bindLayout)
		r.bindLayout = nil
	}
	if r.shader != nil {
		dev.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}
