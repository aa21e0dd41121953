package bitmap

import (
	"fmt"
	"image"
	"image/color"
	"iter"
	"log"
	"strings"

	"github.com/BeatGlow/bitmap/pixel"
)

// Canvas is a width×height monochrome bitmap, one bit per pixel.
//
// Bits are packed least significant bit first. The zero value is not usable, use [New].
type Canvas struct {
	width       int
	height      int
	orientation Orientation
	buf         []byte
}

// Canvas is usable wherever the image packages expect a drawable surface.
var _ pixel.Image = (*Canvas)(nil)

// New allocates a cleared canvas.
func New(width, height int, orientation Orientation) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if orientation != RowMajor && orientation != ColumnMajor {
		return nil, fmt.Errorf("bitmap: invalid orientation %d", orientation)
	}
	return &Canvas{
		width:       width,
		height:      height,
		orientation: orientation,
		buf:         make([]byte, bufferSize(width, height)),
	}, nil
}

func bufferSize(width, height int) int {
	return (width*height + 7) / 8
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) Orientation() Orientation {
	return c.orientation
}

// Bytes returns the packed bit buffer in storage order. The slice aliases the canvas.
func (c *Canvas) Bytes() []byte {
	return c.buf
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	clone := *c
	clone.buf = append([]byte(nil), c.buf...)
	return &clone
}

// Resize replaces the canvas contents with a cleared buffer of the new size.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if debug {
		log.Printf("bitmap: resize %dx%d canvas to %dx%d", c.width, c.height, width, height)
	}
	c.width, c.height = width, height
	c.buf = make([]byte, bufferSize(width, height))
	return nil
}

func (c *Canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) offset(x, y int) int {
	px, py, pw, _ := toPhysical(x, y, c.width, c.height, c.orientation)
	return py*pw + px
}

// Pixel reports whether the pixel at (x, y) is set.
func (c *Canvas) Pixel(x, y int) (bool, error) {
	if !c.in(x, y) {
		return false, fmt.Errorf("%w: pixel (%d,%d) outside %dx%d", ErrBounds, x, y, c.width, c.height)
	}
	return getBit(c.buf, c.offset(x, y)), nil
}

// SetPixel turns the pixel at (x, y) on or off.
func (c *Canvas) SetPixel(x, y int, on bool) error {
	if !c.in(x, y) {
		return fmt.Errorf("%w: pixel (%d,%d) outside %dx%d", ErrBounds, x, y, c.width, c.height)
	}
	setBit(c.buf, c.offset(x, y), on)
	return nil
}

// span is the contiguous storage run of n bits starting at bit offset.
func (c *Canvas) span(offset, n int) View {
	return View{buf: c.buf, offset: offset, stride: 1, length: n}
}

// Row returns the width pixels of row y, left to right.
func (c *Canvas) Row(y int) (View, error) {
	if y < 0 || y >= c.height {
		return View{}, fmt.Errorf("%w: row %d outside %dx%d", ErrBounds, y, c.width, c.height)
	}
	return c.row(y), nil
}

func (c *Canvas) row(y int) View {
	if c.orientation == ColumnMajor {
		return View{buf: c.buf, offset: y, stride: c.height, length: c.width}
	}
	return c.span(y*c.width, c.width)
}

// Col returns the height pixels of column x, top to bottom.
func (c *Canvas) Col(x int) (View, error) {
	if x < 0 || x >= c.width {
		return View{}, fmt.Errorf("%w: column %d outside %dx%d", ErrBounds, x, c.width, c.height)
	}
	return c.col(x), nil
}

func (c *Canvas) col(x int) View {
	if c.orientation == ColumnMajor {
		return c.span(x*c.height, c.height)
	}
	return View{buf: c.buf, offset: x, stride: c.width, length: c.height}
}

// Rows yields the views of all rows, top to bottom.
func (c *Canvas) Rows() iter.Seq[View] {
	return func(yield func(View) bool) {
		for y := 0; y < c.height; y++ {
			if !yield(c.row(y)) {
				return
			}
		}
	}
}

// Cols yields the views of all columns, left to right.
func (c *Canvas) Cols() iter.Seq[View] {
	return func(yield func(View) bool) {
		for x := 0; x < c.width; x++ {
			if !yield(c.col(x)) {
				return
			}
		}
	}
}

func (c *Canvas) checkRect(x, y, w, h int) error {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > c.width || y+h > c.height {
		return fmt.Errorf("%w: %dx%d block at (%d,%d) outside %dx%d", ErrBounds, w, h, x, y, c.width, c.height)
	}
	return nil
}

// ReplaceRect overwrites the block at (x, y) with the contents of src. The whole block must fit
// inside c; nothing is written otherwise.
func (c *Canvas) ReplaceRect(x, y int, src *Canvas) error {
	if err := c.checkRect(x, y, src.width, src.height); err != nil {
		return err
	}
	if src == c {
		src = src.Clone()
	}

	// Walk src along the major axis of c, so every line lands on a contiguous run.
	lines := src.Rows()
	if c.orientation == ColumnMajor {
		lines = src.Cols()
	}

	px, py, pw, _ := toPhysical(x, y, c.width, c.height, c.orientation)
	i := 0
	for line := range lines {
		c.span((py+i)*pw+px, line.Len()).CopyFrom(line)
		i++
	}
	return nil
}

// Clear turns off all pixels.
func (c *Canvas) Clear() {
	clear(c.buf)
}

// ClearBlock turns off all pixels of the w×h block at (x, y).
func (c *Canvas) ClearBlock(x, y, w, h int) error {
	if err := c.checkRect(x, y, w, h); err != nil {
		return err
	}

	px, py, pw, _ := toPhysical(x, y, c.width, c.height, c.orientation)
	_, _, length, lines := toPhysical(0, 0, w, h, c.orientation)
	for i := 0; i < lines; i++ {
		c.span((py+i)*pw+px, length).Fill(false)
	}
	return nil
}

// Dump yields one printable line per row, top to bottom, with '*' for set pixels.
func (c *Canvas) Dump() iter.Seq[string] {
	return func(yield func(string) bool) {
		var line strings.Builder
		for row := range c.Rows() {
			line.Reset()
			for i := 0; i < row.Len(); i++ {
				if row.Bit(i) {
					line.WriteByte('*')
				} else {
					line.WriteByte(' ')
				}
			}
			if !yield(line.String()) {
				return
			}
		}
	}
}

// Pages renders the canvas into a page addressed buffer, as used by SSD1xxx controllers.
func (c *Canvas) Pages() *pixel.Pages {
	p := pixel.NewPages(c.width, c.height)
	x := 0
	for col := range c.Cols() {
		for y := 0; y < col.Len(); y++ {
			if col.Bit(y) {
				p.Pix[y/8*p.Stride+x] |= 1 << uint(y&7)
			}
		}
		x++
	}
	return p
}

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

func (c *Canvas) ColorModel() color.Model {
	return pixel.MonoModel
}

// At implements [image.Image]; pixels outside the canvas are transparent.
func (c *Canvas) At(x, y int) color.Color {
	if !c.in(x, y) {
		return color.Transparent
	}
	return pixel.Mono{On: getBit(c.buf, c.offset(x, y))}
}

// Set implements [draw.Image]; pixels outside the canvas are ignored.
func (c *Canvas) Set(x, y int, v color.Color) {
	if !c.in(x, y) {
		return
	}
	setBit(c.buf, c.offset(x, y), pixel.MonoModel.Convert(v).(pixel.Mono).On)
}

// Fill sets all pixels to v.
func (c *Canvas) Fill(v color.Color) {
	if !pixel.MonoModel.Convert(v).(pixel.Mono).On {
		c.Clear()
		return
	}
	for i := range c.buf {
		c.buf[i] = 0xff
	}
	// Keep the padding bits of the last byte clear.
	if n := (c.width * c.height) & 7; n != 0 {
		c.buf[len(c.buf)-1] = byte(1)<<uint(n) - 1
	}
}
