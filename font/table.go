// Package font describes variable-width bitmap fonts and lays out text with them.
//
// A [Table] covers an inclusive range of characters. Characters outside the range are
// treated as word separators.
package font

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned for tables that do not describe every character they claim to cover.
var ErrMalformed = errors.New("font: malformed font table")

// Glyph locates one character in the table bitmap.
type Glyph struct {
	// Width of the glyph in pixels.
	Width int

	// Offset of the first glyph row in the table bitmap.
	Offset int
}

// BytesPerRow is the number of bitmap bytes in each glyph row.
func (g Glyph) BytesPerRow() int {
	return (g.Width + 7) / 8
}

// Table is a bitmap font descriptor table.
//
// Glyph rows are stored top to bottom, each row packed most significant bit first and padded
// to a whole byte.
type Table struct {
	// Start and End are the first and last character covered, inclusive.
	Start, End rune

	// Height of every glyph in pixels.
	Height int

	// SpaceWidth is the advance added for a separator.
	SpaceWidth int

	// GapWidth is the advance added between two glyphs.
	GapWidth int

	// Glyphs are indexed by table position, the character minus Start.
	Glyphs []Glyph

	// Kerning[i][j] is the extra advance between glyphs at positions i and j, on top of the
	// width of glyph i. Tables whose entries already include that width need k - Glyphs[i].Width.
	// A nil table means no kerning.
	Kerning [][]int

	// Bitmap holds the packed rows of all glyphs.
	Bitmap []byte
}

// Validate checks that every covered character has a glyph inside the bitmap.
func (t *Table) Validate() error {
	if t.Start > t.End {
		return fmt.Errorf("%w: start %q after end %q", ErrMalformed, t.Start, t.End)
	}
	if t.Height < 0 {
		return fmt.Errorf("%w: negative height %d", ErrMalformed, t.Height)
	}
	n := int(t.End-t.Start) + 1
	if len(t.Glyphs) < n {
		return fmt.Errorf("%w: %d glyphs for %d characters", ErrMalformed, len(t.Glyphs), n)
	}
	for pos := 0; pos < n; pos++ {
		if _, err := t.GlyphRows(t.Glyphs[pos]); err != nil {
			return fmt.Errorf("%w (character %q)", err, t.Start+rune(pos))
		}
	}
	if t.Kerning != nil {
		if len(t.Kerning) < n {
			return fmt.Errorf("%w: %d kerning rows for %d characters", ErrMalformed, len(t.Kerning), n)
		}
		for pos := 0; pos < n; pos++ {
			if len(t.Kerning[pos]) < n {
				return fmt.Errorf("%w: kerning row for %q is short", ErrMalformed, t.Start+rune(pos))
			}
		}
	}
	return nil
}

// In reports whether r is covered by the table.
func (t *Table) In(r rune) bool {
	return r >= t.Start && r <= t.End
}

// Glyph returns the glyph at table position pos.
func (t *Table) Glyph(pos int) (Glyph, error) {
	if pos < 0 || pos >= len(t.Glyphs) {
		return Glyph{}, fmt.Errorf("%w: no glyph for %q", ErrMalformed, t.Start+rune(pos))
	}
	return t.Glyphs[pos], nil
}

// GlyphRows returns the Height packed rows of g.
func (t *Table) GlyphRows(g Glyph) ([]byte, error) {
	if g.Width < 0 {
		return nil, fmt.Errorf("%w: negative glyph width %d", ErrMalformed, g.Width)
	}
	if t.Height < 0 {
		return nil, fmt.Errorf("%w: negative height %d", ErrMalformed, t.Height)
	}
	end := g.Offset + t.Height*g.BytesPerRow()
	if g.Offset < 0 || end < g.Offset || end > len(t.Bitmap) {
		return nil, fmt.Errorf("%w: glyph bitmap [%d:%d] outside %d bytes", ErrMalformed, g.Offset, end, len(t.Bitmap))
	}
	return t.Bitmap[g.Offset:end], nil
}

func (t *Table) kern(prev, pos int) (int, error) {
	if t.Kerning == nil {
		return 0, nil
	}
	if prev >= len(t.Kerning) || pos >= len(t.Kerning[prev]) {
		return 0, fmt.Errorf("%w: no kerning for %q%q", ErrMalformed, t.Start+rune(prev), t.Start+rune(pos))
	}
	return t.Kerning[prev][pos], nil
}
