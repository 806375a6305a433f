package raster

// Corner bits select quarter circles in drawCircleHelper. fillCircleHelper
// uses CornerTopRight for the right half and CornerTopLeft for the left half.
const (
	CornerTopRight    = 1
	CornerTopLeft     = 2
	CornerBottomRight = 4
	CornerBottomLeft  = 8
)

// Circle draws a circle centered on the nearest pixel to (cx, cy) with the
// radius rounded to whole pixels. A negative radius is treated as zero, which
// draws the center pixel.
//
// Circles that miss the target draw nothing without stepping. A circle that
// encloses the whole target fills it, or draws nothing as an outline.
func Circle(c *Clipper, cx, cy, r float64, fill bool) {
	if c.empty() || !finite(cx, cy, r) {
		return
	}
	x0, y0 := roundInt(cx), roundInt(cy)
	ir := max(roundInt(r), 0)
	if c.outside(x0-ir, y0-ir, x0+ir, y0+ir) {
		return
	}
	if c.inCircle(x0, y0, ir-2) {
		if fill {
			rectBox(c, box{x1: c.Width, y1: c.Height}, true)
		}
		return
	}
	if ir == 0 {
		c.Point(x0, y0)
		return
	}

	if fill {
		c.vrun(x0, y0-ir, 2*ir+1)
		fillCircleHelper(c, x0, y0, ir, CornerTopRight|CornerTopLeft, 0)
		return
	}
	drawCircle(c, x0, y0, ir)
}

// drawCircle plots a midpoint circle, eight symmetric points per step.
func drawCircle(c *Clipper, x0, y0, r int) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x, y := 0, r

	c.Point(x0, y0+r)
	c.Point(x0, y0-r)
	c.Point(x0+r, y0)
	c.Point(x0-r, y0)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
		if x > y {
			// Crossed the diagonal: these points were plotted last step.
			break
		}

		c.Point(x0+x, y0+y)
		c.Point(x0-x, y0+y)
		c.Point(x0+x, y0-y)
		c.Point(x0-x, y0-y)
		if x == y {
			// The two octant pairs meet on the diagonal.
			continue
		}
		c.Point(x0+y, y0+x)
		c.Point(x0-y, y0+x)
		c.Point(x0+y, y0-x)
		c.Point(x0-y, y0-x)
	}
}

// drawCircleHelper plots the quarter circles selected by corners around
// (x0, y0). The points on the axes (x == 0) are not plotted; callers draw
// them as part of adjacent straight edges.
func drawCircleHelper(c *Clipper, x0, y0, r, corners int) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x, y := 0, r

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
		if x > y {
			break
		}

		diag := x == y
		if corners&CornerTopRight != 0 {
			c.Point(x0+x, y0-y)
			if !diag {
				c.Point(x0+y, y0-x)
			}
		}
		if corners&CornerTopLeft != 0 {
			c.Point(x0-y, y0-x)
			if !diag {
				c.Point(x0-x, y0-y)
			}
		}
		if corners&CornerBottomRight != 0 {
			c.Point(x0+x, y0+y)
			if !diag {
				c.Point(x0+y, y0+x)
			}
		}
		if corners&CornerBottomLeft != 0 {
			c.Point(x0-y, y0+x)
			if !diag {
				c.Point(x0-x, y0+y)
			}
		}
	}
}

// fillCircleHelper fills the right (CornerTopRight) and/or left
// (CornerTopLeft) half of a circle with vertical spans, stretched downwards
// by delta extra pixels. The center column is not drawn. Rows shared between
// octants are written once.
func fillCircleHelper(c *Clipper, x0, y0, r, corners, delta int) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x, y := 0, r
	px, py := x, y

	delta++

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		if x < y+1 {
			if corners&CornerTopRight != 0 {
				c.vrun(x0+x, y0-y, 2*y+delta)
			}
			if corners&CornerTopLeft != 0 {
				c.vrun(x0-x, y0-y, 2*y+delta)
			}
		}
		if y != py {
			if corners&CornerTopRight != 0 {
				c.vrun(x0+py, y0-px, 2*px+delta)
			}
			if corners&CornerTopLeft != 0 {
				c.vrun(x0-py, y0-px, 2*px+delta)
			}
			py = y
		}
		px = x
	}
}
