package demo

import (
	"github.com/dshills/tickloop/internal/config"
	"github.com/dshills/tickloop/internal/renderer/core"
)

// Theme holds the demo colors.
type Theme struct {
	Accent     core.Color
	Background core.Color
}

// ThemeFrom converts configured hex colors, falling back to the defaults
// for values that do not parse.
func ThemeFrom(c config.ThemeConfig) Theme {
	return Theme{Accent: c.AccentColor(), Background: c.BackgroundColor()}
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() Theme {
	return ThemeFrom(config.Default().Theme)
}
