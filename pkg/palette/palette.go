// Package palette assigns a fixed color to each column dtype, shared by the
// frame summary styling and the quantile-quantile plots.
package palette

import (
	"fmt"
	"image/color"

	"github.com/go-gota/gota/series"
)

// Fallback is used for any dtype without an entry of its own.
const Fallback = "#9b59b6"

var byType = map[series.Type]string{
	series.String: "#fd7272",
	series.Float:  "#60a3bc",
	series.Int:    "#ff9f1a",
	series.Bool:   "#fed330",
}

// Color returns the hex color assigned to a series type.
func Color(t series.Type) string {
	if c, ok := byType[t]; ok {
		return c
	}
	return Fallback
}

// RGBA parses a "#rrggbb" palette entry into an opaque color.RGBA.
func RGBA(hex string) color.RGBA {
	var r, g, b uint8
	fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
