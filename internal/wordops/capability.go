package wordops

import (
	"os"
	"strings"
)

// Kernel identifies a word kernel implementation.
type Kernel uint8

const (
	// Generic processes one word per iteration.
	Generic Kernel = iota
	// Unrolled processes four words per iteration.
	Unrolled
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Generic:
		return "generic"
	case Unrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "unrolled":
		return Unrolled, true
	default:
		return Generic, false
	}
}

// Package-level state, written once by the platform init.
var (
	activeKernel Kernel
	hasOverride  bool

	// hasPopcnt is set by the platform-specific init.
	hasPopcnt bool
)

// initCapabilities selects the kernels after CPU features are detected.
func initCapabilities() {
	k := Generic
	if hasPopcnt {
		k = Unrolled
	}
	if override := os.Getenv("GENEBITS_KERNEL"); override != "" {
		if parsed, ok := ParseKernel(override); ok {
			hasOverride = true
			k = parsed
		}
	}
	use(k)
}

func use(k Kernel) {
	activeKernel = k
	switch k {
	case Unrolled:
		kernelXorWords = xorWordsUnrolled
		kernelPopcountWords = popcountWordsUnrolled
	default:
		kernelXorWords = xorWordsGeneric
		kernelPopcountWords = popcountWordsGeneric
	}
}

// Active returns the kernel currently in use.
func Active() Kernel {
	return activeKernel
}

// IsOverridden reports whether GENEBITS_KERNEL selected the kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasPopcnt reports whether the CPU has a hardware population count.
func HasPopcnt() bool {
	return hasPopcnt
}
