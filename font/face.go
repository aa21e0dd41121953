package font

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Options control how a table is built from an outline or bitmap font face.
type Options struct {
	// Start and End are the first and last character to rasterise, inclusive.
	Start, End rune

	// Size in points, only used for TrueType fonts.
	Size float64

	// DPI is the resolution, only used for TrueType fonts.
	DPI float64

	// GapWidth is the spacing between glyphs.
	GapWidth int

	// SpaceWidth overrides the separator advance. If zero, the advance of ' ' is used.
	SpaceWidth int

	// Threshold is the minimum 16-bit alpha for a pixel to be set. If zero, half intensity is used.
	Threshold uint32
}

// DefaultOptions cover printable ASCII at 12pt on a 72 DPI display.
var DefaultOptions = Options{
	Start:     ' ',
	End:       '~',
	Size:      12,
	DPI:       72,
	GapWidth:  1,
	Threshold: 0x8000,
}

func (o *Options) withDefaults() Options {
	v := DefaultOptions
	if o != nil {
		v = *o
	}
	if v.Start == 0 && v.End == 0 {
		v.Start, v.End = DefaultOptions.Start, DefaultOptions.End
	}
	if v.Size == 0 {
		v.Size = DefaultOptions.Size
	}
	if v.DPI == 0 {
		v.DPI = DefaultOptions.DPI
	}
	if v.Threshold == 0 {
		v.Threshold = DefaultOptions.Threshold
	}
	return v
}

// ParseTrueType rasterises a TrueType font into a table.
func ParseTrueType(data []byte, options *Options) (*Table, error) {
	opts := options.withDefaults()
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse TrueType: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    opts.Size,
		DPI:     opts.DPI,
		Hinting: xfont.HintingFull,
	})
	defer face.Close()
	return FromFace(face, &opts)
}

// FromFace rasterises the glyphs of face into a table.
//
// Every glyph is as wide as its advance, or wider if its ink extends past it, and as high as
// the face line height. Ink left of the origin is clipped.
func FromFace(face xfont.Face, options *Options) (*Table, error) {
	opts := options.withDefaults()
	if opts.Start > opts.End {
		return nil, fmt.Errorf("%w: start %q after end %q", ErrMalformed, opts.Start, opts.End)
	}

	var (
		metrics = face.Metrics()
		ascent  = metrics.Ascent.Ceil()
		height  = ascent + metrics.Descent.Ceil()
		n       = int(opts.End-opts.Start) + 1
		t       = &Table{
			Start:      opts.Start,
			End:        opts.End,
			Height:     height,
			SpaceWidth: opts.SpaceWidth,
			GapWidth:   opts.GapWidth,
			Glyphs:     make([]Glyph, n),
			Kerning:    make([][]int, n),
		}
	)
	if t.SpaceWidth == 0 {
		if advance, ok := face.GlyphAdvance(' '); ok {
			t.SpaceWidth = advance.Round()
		}
	}

	dot := fixed.P(0, ascent)
	for pos := 0; pos < n; pos++ {
		r := opts.Start + rune(pos)
		dr, mask, mp, advance, ok := face.Glyph(dot, r)
		if !ok {
			// Characters the face lacks become blank glyphs of zero width.
			t.Glyphs[pos] = Glyph{Offset: len(t.Bitmap)}
			continue
		}

		g := Glyph{
			Width:  max(advance.Round(), dr.Max.X, 0),
			Offset: len(t.Bitmap),
		}
		stride := g.BytesPerRow()
		rows := make([]byte, stride*height)
		for y := max(dr.Min.Y, 0); y < min(dr.Max.Y, height); y++ {
			for x := max(dr.Min.X, 0); x < dr.Max.X; x++ {
				_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
				if a >= opts.Threshold {
					rows[y*stride+x/8] |= 0x80 >> uint(x&7)
				}
			}
		}
		t.Glyphs[pos] = g
		t.Bitmap = append(t.Bitmap, rows...)
	}

	for i := 0; i < n; i++ {
		t.Kerning[i] = make([]int, n)
		for j := 0; j < n; j++ {
			t.Kerning[i][j] = face.Kern(opts.Start+rune(i), opts.Start+rune(j)).Round()
		}
	}
	return t, nil
}
