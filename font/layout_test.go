package font

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureWidth(t *testing.T) {
	table := testTable()

	tests := []struct {
		Name string
		Text string
		Want int
	}{
		{"empty", "", 0},
		{"single", "A", 3},
		{"pair", "AB", 3 + -1 + 1 + 9},
		{"kerned pair", "BA", 9 + 2 + 1 + 3},
		{"repeat", "CC", 2 + 3 + 1 + 2},
		{"separated", "A B", 4 + 3 + 1 + 9},
		{"leading separator", " A", 3},
		{"only separators", "   ", 0},
		{"trailing separator", "A ", 4 + 3 + 1},
		{"newline is a separator", "A\nB", 4 + 3 + 1 + 9},
		{"outside range", "AZB", 4 + 3 + 1 + 9},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			v, err := table.MeasureWidth(test.Text)
			require.NoError(it, err)
			assert.Equal(it, test.Want, v)
		})
	}
}

func TestMeasureWidthCollapsesSeparators(t *testing.T) {
	table := testTable()

	one, err := table.MeasureWidth("A B")
	require.NoError(t, err)
	two, err := table.MeasureWidth("A  B")
	require.NoError(t, err)
	many, err := table.MeasureWidth("A \t\n B")
	require.NoError(t, err)

	assert.Equal(t, one, two)
	assert.Equal(t, one, many)
}

func TestLayoutOffsets(t *testing.T) {
	table := testTable()

	var (
		offsets []int
		widths  []int
	)
	total, err := table.Layout("AB C", func(x int, g Glyph) error {
		offsets = append(offsets, x)
		widths = append(widths, g.Width)
		return nil
	})
	require.NoError(t, err)

	// A at 0; B after A width 3, kerning -1 and gap 1; C after space 4, B width 9 and gap 1.
	assert.Equal(t, []int{0, 3, 17}, offsets)
	assert.Equal(t, []int{3, 9, 2}, widths)
	assert.Equal(t, 19, total)
}

func TestLayoutWithoutKerning(t *testing.T) {
	table := testTable()
	table.Kerning = nil

	v, err := table.MeasureWidth("AB")
	require.NoError(t, err)
	assert.Equal(t, 3+1+9, v)
}

func TestLayoutMalformed(t *testing.T) {
	table := testTable()
	table.Glyphs = table.Glyphs[:2]

	v, err := table.MeasureWidth("AB")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = table.MeasureWidth("AC")
	assert.ErrorIs(t, err, ErrMalformed)

	table = testTable()
	table.Start, table.End = 'C', 'A'
	_, err = table.MeasureWidth("")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestBounds(t *testing.T) {
	r, err := testTable().Bounds("AB")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 2), r)
}
