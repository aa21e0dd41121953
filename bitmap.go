// Package bitmap implements a monochrome, bit-addressable canvas for small pixel displays.
//
// A [Canvas] stores one bit per pixel in either row-major or column-major order, so its raw
// bytes can be handed to controllers that expect either packing. Logical (x, y) addressing is
// the same for both orientations.
//
// Setting the BITMAP_DEBUG environment variable enables debug logging.
package bitmap

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("BITMAP_DEBUG") != ""
}

// Errors
var (
	ErrBounds     = errors.New("bitmap: out of canvas bounds")
	ErrDimensions = errors.New("bitmap: invalid canvas dimensions")
)

// Orientation defines the major axis of the bit storage.
type Orientation uint8

// Supported orientations.
const (
	RowMajor    Orientation = iota // Rows are contiguous bit runs
	ColumnMajor                    // Columns are contiguous bit runs
)

func (o Orientation) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "invalid"
	}
}

// toPhysical maps a logical coordinate and extent to the storage axes of o.
//
// The returned coordinate addresses bit y'*w'+x'.
func toPhysical(x, y, w, h int, o Orientation) (int, int, int, int) {
	if o == ColumnMajor {
		return y, x, h, w
	}
	return x, y, w, h
}
