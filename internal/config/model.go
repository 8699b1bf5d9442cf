package config

import (
	"xoverlay/internal/geometry"
	"xoverlay/internal/view"
)

var defaultConfig = Config{
	ResizeMargin:   geometry.DefaultMargin,
	MinWidth:       geometry.DefaultMinWidth,
	MinHeight:      geometry.DefaultMinHeight,
	ScreenFraction: geometry.DefaultScreenFraction,
	DefaultWidth:   500,
	DefaultHeight:  400,
	Opacity:        view.DefaultOpacity,
	HTTPAddress:    ":8080",
}

type Config struct {
	// ResizeMargin is the edge hit-test band in pixels.
	ResizeMargin int `yaml:"resize_margin"`
	// MinWidth and MinHeight are the window size floor.
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
	// ScreenFraction is the share of the usable screen an image may take
	// when fitted on load.
	ScreenFraction float64 `yaml:"screen_fraction"`
	// DefaultWidth and DefaultHeight size the window before an image loads.
	DefaultWidth  int `yaml:"default_width"`
	DefaultHeight int `yaml:"default_height"`
	// Opacity is the initial image opacity.
	Opacity float64 `yaml:"opacity"`
	// HTTPAddress is the control API listen address, empty disables it.
	HTTPAddress string `yaml:"http_address"`
}

// Normalize replaces out-of-range values with the defaults so a hand-edited
// config cannot produce a degenerate window.
func (c Config) Normalize() Config {
	d := defaultConfig
	if c.ResizeMargin <= 0 {
		c.ResizeMargin = d.ResizeMargin
	}
	if c.MinWidth <= 0 {
		c.MinWidth = d.MinWidth
	}
	if c.MinHeight <= 0 {
		c.MinHeight = d.MinHeight
	}
	if c.ScreenFraction <= 0 || c.ScreenFraction > 1 {
		c.ScreenFraction = d.ScreenFraction
	}
	if c.DefaultWidth < c.MinWidth {
		c.DefaultWidth = d.DefaultWidth
	}
	if c.DefaultHeight < c.MinHeight {
		c.DefaultHeight = d.DefaultHeight
	}
	c.Opacity = view.ClampOpacity(c.Opacity)
	return c
}
