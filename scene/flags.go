package scene

// Flag identifies a single bit in a shape's flag set.
type Flag uint32

const (
	// FlagEnabled marks a shape as participating in rendering on its own.
	// Union operands have it cleared so they contribute only through the
	// union node.
	FlagEnabled Flag = 1 << 0
)

// Flags is a shape's flag bitset, transmitted to the GPU as a u32.
type Flags uint32

// FlagsEnabled returns the default flag set for a freshly created shape.
func FlagsEnabled() Flags {
	return Flags(FlagEnabled)
}

// FlagsNone returns an empty flag set.
func FlagsNone() Flags {
	return 0
}

// Has reports whether the given flag is set.
func (f Flags) Has(flag Flag) bool {
	return uint32(f)&uint32(flag) != 0
}

// With returns the flag set with the given flag set or cleared.
func (f Flags) With(flag Flag, on bool) Flags {
	if on {
		return f | Flags(flag)
	}
	return f &^ Flags(flag)
}

// Bits returns the raw u32 representation uploaded to the GPU.
func (f Flags) Bits() uint32 {
	return uint32(f)
}
