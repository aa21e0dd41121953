package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points.
func Line(dst Image, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	if w <= 0 {
		return
	}
	bresenham(dst, x, y, x+w-1, y, c)
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	if h <= 0 {
		return
	}
	bresenham(dst, x, y, x, y+h-1, c)
}

// Rectangle draws the outline of rect. The Max edges are exclusive.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	w, h := rect.Dx(), rect.Dy()
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

// RoundedRectangle draws the outline of rect with corners of the given radius. The radius is
// clamped to fit the rectangle.
func RoundedRectangle(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		r      = cornerRadius(rect, radius)
		x0, y0 = rect.Min.X, rect.Min.Y
		x1, y1 = rect.Max.X-1, rect.Max.Y-1
	)
	HorizontalLine(dst, x0+r, y0, rect.Dx()-2*r, c)
	HorizontalLine(dst, x0+r, y1, rect.Dx()-2*r, c)
	VerticalLine(dst, x0, y0+r, rect.Dy()-2*r, c)
	VerticalLine(dst, x1, y0+r, rect.Dy()-2*r, c)
	arc(r, func(dx, dy int) {
		dst.Set(x0+r-dx, y0+r-dy, c)
		dst.Set(x1-r+dx, y0+r-dy, c)
		dst.Set(x0+r-dx, y1-r+dy, c)
		dst.Set(x1-r+dx, y1-r+dy, c)
	})
}

// RoundedBox draws a filled rectangle with corners of the given radius.
func RoundedBox(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		r      = cornerRadius(rect, radius)
		x0, y0 = rect.Min.X, rect.Min.Y
		x1, y1 = rect.Max.X-1, rect.Max.Y-1
	)
	Box(dst, image.Rect(x0, y0+r, x1+1, y1-r+1), c)
	arc(r, func(dx, dy int) {
		w := x1 - x0 - 2*r + 2*dx + 1
		HorizontalLine(dst, x0+r-dx, y0+r-dy, w, c)
		HorizontalLine(dst, x0+r-dx, y1-r+dy, w, c)
	})
}

func cornerRadius(rect image.Rectangle, radius int) int {
	return max(0, min(radius, (rect.Dx()-1)/2, (rect.Dy()-1)/2))
}

// arc calls plot for every offset (dx, dy) of a midpoint circle quadrant of radius r.
func arc(r int, plot func(dx, dy int)) {
	x, y, f := 0, r, 1-r
	for x <= y {
		plot(x, y)
		plot(y, x)
		x++
		if f < 0 {
			f += 2*x + 1
		} else {
			y--
			f += 2*(x-y) + 1
		}
	}
}

// bresenham plots every pixel of the integer line from (x1,y1) to (x2,y2), both ends included.
func bresenham(dst Image, x1, y1, x2, y2 int, c color.Color) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	e := dx + dy
	for {
		dst.Set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
