// Package config provides YAML-based presentation configuration for the
// Sum Game. Game rules (grid size, value and target ranges, scoring) are
// fixed in the game package and deliberately not configurable here.
package config

import "github.com/WangLucas2013/Sum-Game/internal/core"

// SumConfig contains the display configuration for the Sum Game.
type SumConfig struct {
	Theme ThemeConfig `yaml:"theme"`
	HUD   HUDConfig   `yaml:"hud"`
}

// ThemeConfig maps block value bands and UI elements to color names.
type ThemeConfig struct {
	LowValue  string `yaml:"low_value"`  // values 1-3
	MidValue  string `yaml:"mid_value"`  // values 4-6
	HighValue string `yaml:"high_value"` // values 7-9
	Selected  string `yaml:"selected"`
	Cursor    string `yaml:"cursor"`
	Target    string `yaml:"target"`
}

// HUDConfig controls which status fields the in-game HUD shows.
type HUDConfig struct {
	ShowSum   bool `yaml:"show_sum"`
	ShowTimer bool `yaml:"show_timer"`
}

// colorNames maps YAML color names to core colors.
var colorNames = map[string]core.Color{
	"default":        core.ColorDefault,
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright_red":     core.ColorBrightRed,
	"bright_green":   core.ColorBrightGreen,
	"bright_yellow":  core.ColorBrightYellow,
	"bright_blue":    core.ColorBrightBlue,
	"bright_magenta": core.ColorBrightMagenta,
	"bright_cyan":    core.ColorBrightCyan,
	"bright_white":   core.ColorBrightWhite,
	"orange":         core.ColorOrange,
	"gray":           core.ColorGray,
}

// ParseColor resolves a color name from the config file.
// Unknown names fall back to the default terminal color.
func ParseColor(name string) core.Color {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return core.ColorDefault
}
