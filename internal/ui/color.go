package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

var (
	backgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	foodColor       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	headColor       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gameOverColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// bodyColor shades segment i of n from (45,180,0)-ish green toward a
// darker, slightly bluer green at the tail.
func bodyColor(i, n int) color.RGBA {
	t := 0.0
	if n > 1 && i > 0 {
		t = math.Min(float64(i)/float64(n-1), 1)
	}
	r, g, b := hsvToRgb(105+25*t, 1.0, 0.71-0.25*t)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
