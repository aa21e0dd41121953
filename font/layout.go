package font

import (
	"fmt"
	"image"
)

// Layout walks s left to right and calls fn with the offset of every covered glyph from the
// start of the text. It returns the total advance of s.
//
// Consecutive glyphs advance by the width of the first plus their kerning plus GapWidth. A run
// of uncovered characters advances by SpaceWidth plus the preceding glyph width plus GapWidth
// once, and not at all when no glyph precedes it. The last glyph contributes its width.
func (t *Table) Layout(s string, fn func(x int, g Glyph) error) (int, error) {
	if t.Start > t.End {
		return 0, fmt.Errorf("%w: start %q after end %q", ErrMalformed, t.Start, t.End)
	}

	var (
		x    int
		prev = -1
		last Glyph
	)
	for _, r := range s {
		if !t.In(r) {
			if prev >= 0 {
				x += t.SpaceWidth + last.Width + t.GapWidth
			}
			prev = -1
			continue
		}

		pos := int(r - t.Start)
		g, err := t.Glyph(pos)
		if err != nil {
			return x, err
		}
		if prev >= 0 {
			k, err := t.kern(prev, pos)
			if err != nil {
				return x, err
			}
			x += last.Width + k + t.GapWidth
		}
		prev, last = pos, g

		if fn != nil {
			if err = fn(x, g); err != nil {
				return x, err
			}
		}
	}

	if prev >= 0 {
		x += last.Width
	}
	return x, nil
}

// MeasureWidth returns the width of s in pixels.
func (t *Table) MeasureWidth(s string) (int, error) {
	return t.Layout(s, nil)
}

// Bounds returns the size of the box s occupies when laid out with t.
func (t *Table) Bounds(s string) (image.Rectangle, error) {
	w, err := t.MeasureWidth(s)
	if err != nil {
		return image.Rectangle{}, err
	}
	return image.Rect(0, 0, w, t.Height), nil
}
