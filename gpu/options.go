package gpu

import "github.com/gogpu/gputypes"

// Option configures device creation.
//
// Example:
//
//	// Default Vulkan device
//	dev, err := gpu.NewDevice()
//
//	// Custom resource labels
//	dev, err := gpu.NewDevice(gpu.WithLabel("viewer"))
type Option func(*deviceOptions)

type deviceOptions struct {
	backend gputypes.Backend
	label   string
}

func defaultOptions() deviceOptions {
	return deviceOptions{
		backend: gputypes.BackendVulkan,
		label:   "sdfray",
	}
}

// WithBackend selects the hal backend to open the adapter on. The backend
// package must be linked into the binary so it registers itself; this
// package only imports the Vulkan backend.
func WithBackend(b gputypes.Backend) Option {
	return func(o *deviceOptions) {
		o.backend = b
	}
}

// WithLabel sets the prefix used for GPU resource labels, which show up in
// graphics debuggers and validation messages.
func WithLabel(label string) Option {
	return func(o *deviceOptions) {
		o.label = label
	}
}
