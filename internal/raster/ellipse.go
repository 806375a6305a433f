package raster

import "math"

// Ellipse draws an axis-aligned ellipse inscribed in a w x h box centered on
// (cx, cy). The box is x0 = round(cx - w/2) .. x0 + round(w) - 1, and the
// same for y. Boxes narrower or shorter than one pixel draw nothing.
//
// The stepper is the integer Bresenham ellipse, moving four symmetric
// points from the left/right extremes towards the center column. Filled
// ellipses draw a vertical span between the top and bottom points of every
// step. Boxes wider or taller than MaxExtent are traced column by column
// over the target only.
func Ellipse(c *Clipper, cx, cy, w, h float64, fill bool) {
	if c.empty() || !finite(cx, cy, w, h) {
		return
	}
	iw, ih := roundInt(w), roundInt(h)
	if iw < 1 || ih < 1 {
		return
	}
	x0 := roundInt(cx - w/2)
	y0 := roundInt(cy - h/2)
	x1, y1 := x0+iw-1, y0+ih-1
	if x1 < 0 || y1 < 0 || x0 >= c.Width || y0 >= c.Height {
		return
	}
	if iw > MaxExtent || ih > MaxExtent {
		ellipseColumns(c, x0, y0, x1, y1, fill)
		return
	}

	var plot ellipsePlotter
	if fill {
		plot = &ellipseFill{c: c}
	} else {
		plot = &ellipseOutline{c: c}
	}
	ellipseRect(plot, x0, y0, x1, y1)
}

// ellipsePlotter receives the four symmetric points of every step.
type ellipsePlotter interface {
	// quad receives one step: columns xl <= xr, rows yt <= yb.
	quad(xl, xr, yt, yb int)
	done()
}

// ellipseRect runs the Bresenham ellipse stepper for the box
// [x0, x1] x [y0, y1] (inclusive, x0 <= x1, y0 <= y1).
func ellipseRect(p ellipsePlotter, x0, y0, x1, y1 int) {
	a := int64(x1 - x0)
	b := int64(y1 - y0)
	b1 := b & 1

	dx := 4 * (1 - a) * b * b
	dy := 4 * (b1 + 1) * a * a
	err := dx + dy + b1*a*a

	y0 += int((b + 1) / 2)
	y1 = y0 - int(b1)
	a8 := 8 * a * a
	b8 := 8 * b * b

	for {
		p.quad(x0, x1, y1, y0)
		e2 := 2 * err
		if e2 <= dy {
			y0++
			y1--
			dy += a8
			err += dy
		}
		if e2 >= dx || 2*err > dy {
			x0++
			x1--
			dx += b8
			err += dx
		}
		if x0 > x1 {
			break
		}
	}

	// Flat ellipses (one pixel wide) stop before reaching the tips.
	for int64(y0-y1) <= b {
		p.quad(x0-1, x1+1, y1, y0)
		y0++
		y1--
	}
	p.done()
}

// ellipseOutline plots the distinct points of every step.
type ellipseOutline struct {
	c *Clipper

	last [4]int
	seen bool
}

// sameStep reports whether q equals the previous step. The flat-ellipse tail
// may repeat the final step of the main loop.
func sameStep(last *[4]int, seen *bool, q [4]int) bool {
	if *seen && q == *last {
		return true
	}
	*seen, *last = true, q
	return false
}

func (o *ellipseOutline) quad(xl, xr, yt, yb int) {
	if sameStep(&o.last, &o.seen, [4]int{xl, xr, yt, yb}) {
		return
	}

	o.c.Point(xr, yb)
	if xl != xr {
		o.c.Point(xl, yb)
	}
	if yt != yb {
		o.c.Point(xr, yt)
		if xl != xr {
			o.c.Point(xl, yt)
		}
	}
}

func (o *ellipseOutline) done() {}

// ellipseFill connects the top and bottom points of every step with a
// vertical span on each side. Steps that stay on a column redraw it, so with
// blending enabled the inner rows of steep columns are blended once per step.
type ellipseFill struct {
	c *Clipper

	last [4]int
	seen bool
}

func (f *ellipseFill) quad(xl, xr, yt, yb int) {
	if sameStep(&f.last, &f.seen, [4]int{xl, xr, yt, yb}) {
		return
	}
	f.c.VLine(xr, yt, yb)
	if xl != xr {
		f.c.VLine(xl, yt, yb)
	}
}

func (f *ellipseFill) done() {}

// ellipseColumns traces the ellipse inscribed in [x0, x1] x [y0, y1] one
// target column at a time from its analytic half height. The work is bounded
// by the target width, whatever the size of the box.
func ellipseColumns(c *Clipper, x0, y0, x1, y1 int, fill bool) {
	xc := float64(x0+x1) / 2
	yc := float64(y0+y1) / 2
	a := float64(x1-x0) / 2
	b := float64(y1-y0) / 2

	half := func(x int) float64 {
		if a == 0 {
			return b
		}
		u := (float64(x) - xc) / a
		return b * math.Sqrt(max(0, 1-u*u))
	}
	// top and bottom return the outermost rows of column x.
	top := func(x int) int { return roundInt(yc - half(x)) }
	bottom := func(x int) int { return roundInt(yc + half(x)) }

	for x := max(x0, 0); x <= min(x1, c.Width-1); x++ {
		t, bt := top(x), bottom(x)
		if fill || x == x0 || x == x1 {
			c.VLine(x, t, bt)
			continue
		}

		// Stretch each arc towards its neighbors so that it stays connected
		// where it is steeper than one row per column.
		tEnd := max(t, top(x-1)-1, top(x+1)-1)
		bStart := min(bt, bottom(x-1)+1, bottom(x+1)+1)
		if tEnd+1 >= bStart {
			c.VLine(x, t, bt)
			continue
		}
		c.VLine(x, t, tEnd)
		c.VLine(x, bStart, bt)
	}
}
