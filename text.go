package bitmap

import "github.com/BeatGlow/bitmap/font"

// DrawText renders s with its top left corner at (x, y) and returns the cursor position after
// the text, x plus the measured width of s.
//
// Glyphs only turn pixels on, so overlapping or kerned glyphs never erase each other or the
// background. Rendering stops at the first pixel outside the canvas, with ErrBounds.
func (c *Canvas) DrawText(x, y int, s string, t *font.Table) (int, error) {
	width, err := t.Layout(s, func(offset int, g font.Glyph) error {
		rows, err := t.GlyphRows(g)
		if err != nil {
			return err
		}
		return c.drawGlyph(x+offset, y, g, rows, t.Height)
	})
	return x + width, err
}

// drawGlyph sets the pixels of a glyph whose rows are packed most significant bit first.
func (c *Canvas) drawGlyph(x, y int, g font.Glyph, rows []byte, height int) error {
	stride := g.BytesPerRow()
	for r := 0; r < height; r++ {
		row := rows[r*stride : (r+1)*stride]
		for col := 0; col < g.Width; col++ {
			if row[col/8]&(0x80>>uint(col&7)) == 0 {
				continue
			}
			if err := c.SetPixel(x+col, y+r, true); err != nil {
				return err
			}
		}
	}
	return nil
}
