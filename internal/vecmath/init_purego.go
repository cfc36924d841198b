//go:build purego

package vecmath

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/go-rf/signals/internal/vecmath/arch/generic"
	// Import registry package
	_ "github.com/go-rf/signals/internal/vecmath/registry"
)
