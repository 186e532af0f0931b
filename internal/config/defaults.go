package config

import (
	_ "embed"
)

//go:embed defaults/sum.yaml
var defaultSumYAML []byte

// DefaultSumConfig returns the default Sum Game display configuration.
func DefaultSumConfig() SumConfig {
	return SumConfig{
		Theme: ThemeConfig{
			LowValue:  "cyan",
			MidValue:  "yellow",
			HighValue: "bright_red",
			Selected:  "bright_green",
			Cursor:    "orange",
			Target:    "bright_white",
		},
		HUD: HUDConfig{
			ShowSum:   true,
			ShowTimer: true,
		},
	}
}
