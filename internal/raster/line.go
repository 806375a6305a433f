package raster

import "math"

// Point plots the pixel containing (x, y).
func Point(c *Clipper, x, y float64) {
	if c.empty() || !finite(x, y) {
		return
	}
	c.Point(floorInt(x), floorInt(y))
}

// Line draws a one-pixel-wide line between two points.
//
// Endpoints snap to the pixel containing them. Horizontal and vertical lines
// become a single span. Other lines are clipped to the target with
// Liang-Barsky and stepped with Bresenham, giving max(|dx|, |dy|)+1 pixels
// for an unclipped line.
func Line(c *Clipper, x0, y0, x1, y1 float64) {
	if c.empty() || !finite(x0, y0, x1, y1) {
		return
	}

	// Endpoints beyond the integer range are first pulled in along the line,
	// just outside the target, so that the conversion below cannot saturate.
	if max(math.Abs(x0), math.Abs(y0), math.Abs(x1), math.Abs(y1)) > maxCoord {
		w, h := float64(c.Width), float64(c.Height)
		var ok bool
		x0, y0, x1, y1, ok = clipOutcode(x0, y0, x1, y1, -1, -1, w, h)
		if !ok {
			return
		}
	}

	ix0, iy0 := floorInt(x0), floorInt(y0)
	ix1, iy1 := floorInt(x1), floorInt(y1)
	lineInt(c, ix0, iy0, ix1, iy1)
}

// lineInt draws the line between two integer pixels.
func lineInt(c *Clipper, x0, y0, x1, y1 int) {
	switch {
	case y0 == y1:
		c.HLine(x0, x1, y0)
		return
	case x0 == x1:
		c.VLine(x0, y0, y1)
		return
	}

	if !c.Contains(x0, y0) || !c.Contains(x1, y1) {
		fx0, fy0, fx1, fy1, ok := clipParametric(
			float64(x0), float64(y0), float64(x1), float64(y1),
			0, 0, float64(c.Width-1), float64(c.Height-1))
		if !ok {
			return
		}
		x0, y0 = int(math.Round(fx0)), int(math.Round(fy0))
		x1, y1 = int(math.Round(fx1)), int(math.Round(fy1))
	}

	bresenham(c, x0, y0, x1, y1)
}

// bresenham steps from (x0, y0) to (x1, y1) one pixel per step along the
// major axis, advancing the minor axis when the accumulated error crosses
// zero.
func bresenham(c *Clipper, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.Point(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipParametric clips the segment (x0, y0)-(x1, y1) to the closed
// rectangle [xmin, xmax] x [ymin, ymax] using the Liang-Barsky parametric
// test. ok is false when no part of the segment lies inside.
func clipParametric(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	t0, t1 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}

	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}

	cx0, cy0 = x0, y0
	if t0 > 0 {
		cx0, cy0 = x0+t0*dx, y0+t0*dy
	}
	cx1, cy1 = x1, y1
	if t1 < 1 {
		cx1, cy1 = x0+t1*dx, y0+t1*dy
	}
	return cx0, cy0, cx1, cy1, true
}

// Outcodes for Cohen-Sutherland clipping.
const (
	outInside = 0
	outLeft   = 1
	outRight  = 2
	outBottom = 4
	outTop    = 8
)

// maxClipSteps bounds the clipping loop. Each endpoint normally needs at
// most two steps; rounding can add a few more.
const maxClipSteps = 8

// clipOutcode clips the segment (x0, y0)-(x1, y1) to the closed rectangle
// [xmin, xmax] x [ymin, ymax] with Cohen-Sutherland. The clipped coordinate
// lands exactly on the boundary and the other one is interpolated from the
// endpoint moved last, which keeps segments with very distant endpoints on
// the right row or column. ok is false when no part of the segment lies
// inside.
func clipOutcode(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	outcode := func(x, y float64) int {
		code := outInside
		if x < xmin {
			code |= outLeft
		} else if x > xmax {
			code |= outRight
		}
		if y < ymin {
			code |= outTop
		} else if y > ymax {
			code |= outBottom
		}
		return code
	}

	code0 := outcode(x0, y0)
	code1 := outcode(x1, y1)

	for range maxClipSteps {
		if code0|code1 == 0 {
			// Products of near-MaxFloat64 deltas can overflow to NaN.
			return x0, y0, x1, y1, finite(x0, y0, x1, y1)
		}
		if code0&code1 != 0 {
			return 0, 0, 0, 0, false
		}

		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		var x, y float64
		switch {
		case codeOut&outTop != 0:
			x = x0 + (x1-x0)*(ymin-y0)/(y1-y0)
			y = ymin
		case codeOut&outBottom != 0:
			x = x0 + (x1-x0)*(ymax-y0)/(y1-y0)
			y = ymax
		case codeOut&outRight != 0:
			y = y0 + (y1-y0)*(xmax-x0)/(x1-x0)
			x = xmax
		case codeOut&outLeft != 0:
			y = y0 + (y1-y0)*(xmin-x0)/(x1-x0)
			x = xmin
		}

		if codeOut == code0 {
			x0, y0 = x, y
			code0 = outcode(x0, y0)
		} else {
			x1, y1 = x, y
			code1 = outcode(x1, y1)
		}
	}

	// Rounding kept an endpoint a hair outside: snap both onto the box.
	if code0&code1 != 0 {
		return 0, 0, 0, 0, false
	}
	x0, x1 = clamp(x0, xmin, xmax), clamp(x1, xmin, xmax)
	y0, y1 = clamp(y0, ymin, ymax), clamp(y1, ymin, ymax)
	return x0, y0, x1, y1, finite(x0, y0, x1, y1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
