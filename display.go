package bitmap

import (
	"fmt"
	"image"
	"log"

	"periph.io/x/conn/v3/display"
)

// Present draws the whole canvas onto d, aligned to the top left corner of the display.
//
// The canvas must fit the display. All transfer to the hardware is done by d.
func Present(d display.Drawer, c *Canvas) error {
	r := c.Bounds().Add(d.Bounds().Min)
	if !r.In(d.Bounds()) {
		return fmt.Errorf("%w: %dx%d canvas does not fit %s (%s)", ErrBounds, c.width, c.height, d, d.Bounds())
	}
	if debug {
		log.Printf("bitmap: present %dx%d %s canvas on %s", c.width, c.height, c.orientation, d)
	}
	if err := d.Draw(r, c, image.Point{}); err != nil {
		return fmt.Errorf("bitmap: draw on %s: %w", d, err)
	}
	return nil
}
