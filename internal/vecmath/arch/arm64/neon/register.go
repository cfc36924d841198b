//go:build arm64 && !purego

package neon

import (
	"github.com/go-rf/signals/internal/cpu"
	"github.com/go-rf/signals/internal/vecmath/registry"
)

// init registers the NEON-optimized implementations with the vecmath registry.
//
// NEON (ARM Advanced SIMD) provides 128-bit SIMD operations and is mandatory
// on ARMv8 (arm64), so it's available on all arm64 CPUs.
//
// Only MaxAbs is registered for NEON, although the package also has Add, Mul,
// Scale, fused, Sum, DotProduct, Magnitude and Power kernels. Other operations
// fall back to
// generic implementations.
//
// Priority: 15 (medium-high - ARM's equivalent to AVX/AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		// Reduction operations
		MaxAbs: MaxAbs,

		// Note: Other operations (Add, Mul, Scale, Fused) are not registered
		// for NEON. The registry will fall back to generic implementations
		// for those operations on ARM.
	})
}
