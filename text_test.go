package bitmap

import (
	"errors"
	"slices"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/BeatGlow/bitmap/font"
)

// testFont covers 'A'..'B', 3 rows high. A is a 3 pixel bar on the first row, B a 9 pixel
// wide frame with its right edge in the second byte.
func testFont() *font.Table {
	return &font.Table{
		Start:      'A',
		End:        'B',
		Height:     3,
		SpaceWidth: 2,
		GapWidth:   1,
		Glyphs: []font.Glyph{
			{Width: 3, Offset: 0},
			{Width: 9, Offset: 3},
		},
		Kerning: [][]int{
			{-2, 0},
			{0, 0},
		},
		Bitmap: []byte{
			0b11100000,
			0b00000000,
			0b00000000,
			0b11111111, 0b10000000,
			0b10000000, 0b10000000,
			0b11111111, 0b10000000,
		},
	}
}

func TestDrawText(t *testing.T) {
	for _, o := range testOrientations {
		t.Run(o.String(), func(it *testing.T) {
			c := testCanvas(it, 16, 4, o)
			end, err := c.DrawText(1, 1, "AB", testFont())
			if err != nil {
				it.Fatal(err)
			}
			// 1 + 3 + 0 + 1 + 9
			if end != 14 {
				it.Errorf("expected cursor at 14, got %d", end)
			}

			want := []string{
				"                ",
				" *** *********  ",
				"     *       *  ",
				"     *********  ",
			}
			if v := slices.Collect(c.Dump()); !slices.Equal(v, want) {
				it.Errorf("expected\n%q\ngot\n%q", want, v)
			}
		})
	}
}

func TestDrawTextMatchesMeasure(t *testing.T) {
	table := testFont()
	for _, s := range []string{"", "A", "AB", "A B", "A  B", "AAB", " BA "} {
		c := testCanvas(t, 64, 3, RowMajor)
		end, err := c.DrawText(5, 0, s, table)
		if err != nil {
			t.Fatal(err)
		}
		width, err := table.MeasureWidth(s)
		if err != nil {
			t.Fatal(err)
		}
		if end != 5+width {
			t.Errorf("%q: expected cursor at %d, got %d", s, 5+width, end)
		}
	}
}

func TestDrawTextKerningOverlap(t *testing.T) {
	// AA is kerned by -2, so the second bar starts on the last pixel of the first one.
	c := testCanvas(t, 8, 3, RowMajor)
	end, err := c.DrawText(0, 0, "AA", testFont())
	if err != nil {
		t.Fatal(err)
	}
	if end != 3-2+1+3 {
		t.Errorf("expected cursor at %d, got %d", 3-2+1+3, end)
	}
	if v := slices.Collect(c.Dump()); v[0] != "*****   " {
		t.Errorf("unexpected first row %q", v[0])
	}
}

func TestDrawTextOnlySetsPixels(t *testing.T) {
	for _, o := range testOrientations {
		t.Run(o.String(), func(it *testing.T) {
			c := testCanvas(it, 16, 4, o)
			testRandom(it, c, 23)
			before := testScan(it, c)

			if _, err := c.DrawText(0, 0, "BA", testFont()); err != nil {
				it.Fatal(err)
			}
			for i, v := range testScan(it, c) {
				if before[i] && !v {
					it.Fatalf("pixel %d was cleared by text", i)
				}
			}
		})
	}
}

func TestDrawTextOutOfBounds(t *testing.T) {
	c := testCanvas(t, 10, 3, RowMajor)
	if _, err := c.DrawText(0, 0, "AB", testFont()); !errors.Is(err, ErrBounds) {
		t.Errorf("expected ErrBounds, got %v", err)
	}
	// Only set pixels are bounds checked and A has none on its last two rows.
	if _, err := c.DrawText(0, 1, "A", testFont()); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestDrawTextMalformed(t *testing.T) {
	table := testFont()
	table.Bitmap = table.Bitmap[:5]

	c := testCanvas(t, 32, 3, RowMajor)
	if _, err := c.DrawText(0, 0, "AB", table); !errors.Is(err, font.ErrMalformed) {
		t.Errorf("expected font.ErrMalformed, got %v", err)
	}

	negative := &font.Table{
		Start:  'A',
		End:    'A',
		Height: -1,
		Glyphs: []font.Glyph{{Width: 8, Offset: 1}},
		Bitmap: []byte{0xff, 0xff},
	}
	if _, err := c.DrawText(0, 0, "A", negative); !errors.Is(err, font.ErrMalformed) {
		t.Errorf("negative height: expected font.ErrMalformed, got %v", err)
	}
}

func TestDrawTextFace(t *testing.T) {
	table, err := font.FromFace(basicfont.Face7x13, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, o := range testOrientations {
		t.Run(o.String(), func(it *testing.T) {
			c := testCanvas(it, 128, 16, o)
			end, err := c.DrawText(0, 1, "Hello, World", table)
			if err != nil {
				it.Fatal(err)
			}
			width, _ := table.MeasureWidth("Hello, World")
			if end != width {
				it.Errorf("expected cursor at %d, got %d", width, end)
			}

			var lit int
			for _, v := range testScan(it, c) {
				if v {
					lit++
				}
			}
			if lit == 0 {
				it.Error("expected text to set pixels")
			}
		})
	}
}
