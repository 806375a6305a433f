package raster

// box is a pixel rectangle with an exclusive right and bottom edge.
type box struct {
	x0, y0, x1, y1 int
}

func (b box) empty() bool { return b.x1 <= b.x0 || b.y1 <= b.y0 }
func (b box) w() int      { return b.x1 - b.x0 }
func (b box) h() int      { return b.y1 - b.y0 }

// pixelBox converts a float rectangle to the pixels it touches: the origin is
// floored, the far edge ceiled. Negative extents move the origin.
func pixelBox(x, y, w, h float64) (box, bool) {
	if !finite(x, y, w, h) {
		return box{}, false
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	b := box{
		x0: floorInt(x),
		y0: floorInt(y),
		x1: ceilInt(x + w),
		y1: ceilInt(y + h),
	}
	return b, !b.empty()
}

// Rect draws an axis-aligned rectangle. A filled rectangle is one span per
// row. An outline is the top and bottom rows plus the left and right
// columns; corner pixels are written once.
func Rect(c *Clipper, x, y, w, h float64, fill bool) {
	if c.empty() {
		return
	}
	b, ok := pixelBox(x, y, w, h)
	if !ok {
		return
	}
	rectBox(c, b, fill)
}

func rectBox(c *Clipper, b box, fill bool) {
	if b.empty() {
		return
	}
	if fill {
		y0 := max(b.y0, 0)
		y1 := min(b.y1, c.Height)
		for y := y0; y < y1; y++ {
			c.HLine(b.x0, b.x1-1, y)
		}
		return
	}

	c.HLine(b.x0, b.x1-1, b.y0)
	if b.h() > 1 {
		c.HLine(b.x0, b.x1-1, b.y1-1)
	}
	if b.h() > 2 {
		c.VLine(b.x0, b.y0+1, b.y1-2)
		if b.w() > 1 {
			c.VLine(b.x1-1, b.y0+1, b.y1-2)
		}
	}
}
