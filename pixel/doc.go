// Package pixel implements the 1-bit color model and page-addressed buffers used by monochrome
// OLED and LCD pixel displays.
//
// Types in this package are compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces.
package pixel
