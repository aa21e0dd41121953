package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/bitmap/draw"
)

// Image is a drawable monochrome surface.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values of a packed image.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pages.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	clear(p.Pix)
}

// Pages is a 1-bit per pixel image in page addressing mode: every byte holds a column of
// 8 vertically adjacent pixels with the least significant bit on top, and bytes run left
// to right across the page.
//
// This is the GDDRAM layout expected by SSD1xxx and SH1106 OLED controllers.
type Pages struct {
	Buffer
}

// NewPages allocates a cleared w×h page buffer. The height is rounded up to whole pages.
func NewPages(w, h int) *Pages {
	n := (h + 7) / 8
	return &Pages{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, n*w),
			Stride: w,
		},
	}
}

// Len is the number of pages.
func (p *Pages) Len() int {
	if p.Stride == 0 {
		return 0
	}
	return len(p.Pix) / p.Stride
}

// Page returns the bytes of page n, aliasing the buffer.
func (p *Pages) Page(n int) []byte {
	return p.Pix[n*p.Stride : (n+1)*p.Stride]
}

func (p *Pages) ColorModel() color.Model {
	return MonoModel
}

func (p *Pages) offset(x, y int) (int, byte) {
	return y/8*p.Stride + x, byte(1) << uint(y&7)
}

func (p *Pages) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	i, bit := p.offset(x, y)
	return Mono{On: p.Pix[i]&bit != 0}
}

func (p *Pages) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	i, bit := p.offset(x, y)
	if monoModel(c).(Mono).On {
		p.Pix[i] |= bit
	} else {
		p.Pix[i] &^= bit
	}
}

func (p *Pages) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}
