package raster

// Clipper restricts spans to the rectangle [0, Width-1] x [0, Height-1]
// and forwards what remains to W. A Clipper with a non-positive width or
// height drops everything.
type Clipper struct {
	W      Writer
	Width  int
	Height int
}

// NewClipper creates a clipper for a width x height target.
func NewClipper(w Writer, width, height int) *Clipper {
	return &Clipper{W: w, Width: width, Height: height}
}

// empty reports whether nothing can be drawn.
func (c *Clipper) empty() bool {
	return c == nil || c.W == nil || c.Width <= 0 || c.Height <= 0
}

// Contains reports whether (x, y) lies inside the target.
func (c *Clipper) Contains(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// outside reports whether the box [x0, x1] x [y0, y1] misses the target.
func (c *Clipper) outside(x0, y0, x1, y1 int) bool {
	return x1 < 0 || y1 < 0 || x0 >= c.Width || y0 >= c.Height
}

// inCircle reports whether every target pixel lies within distance r of
// (x0, y0).
func (c *Clipper) inCircle(x0, y0, r int) bool {
	if r < 0 {
		return false
	}
	dx := int64(max(x0, c.Width-1-x0))
	dy := int64(max(y0, c.Height-1-y0))
	rr := int64(r)
	return dx*dx+dy*dy <= rr*rr
}

// Point writes a single pixel. Pixels outside the target are dropped.
func (c *Clipper) Point(x, y int) {
	if c.empty() || !c.Contains(x, y) {
		return
	}
	c.W.HSpan(x, y, 1)
}

// HLine writes the pixels x0..x1 (inclusive, in either order) of row y.
func (c *Clipper) HLine(x0, x1, y int) {
	if c.empty() || y < 0 || y >= c.Height {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, 0)
	x1 = min(x1, c.Width-1)
	if x0 > x1 {
		return
	}
	c.W.HSpan(x0, y, x1-x0+1)
}

// VLine writes the pixels y0..y1 (inclusive, in either order) of column x.
func (c *Clipper) VLine(x, y0, y1 int) {
	if c.empty() || x < 0 || x >= c.Width {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, 0)
	y1 = min(y1, c.Height-1)
	if y0 > y1 {
		return
	}
	c.W.VSpan(x, y0, y1-y0+1)
}

// vrun writes n pixels of column x starting at row y. Non-positive n is a
// no-op.
func (c *Clipper) vrun(x, y, n int) {
	if n <= 0 {
		return
	}
	c.VLine(x, y, y+n-1)
}

// hrun writes n pixels of row y starting at column x. Non-positive n is a
// no-op.
func (c *Clipper) hrun(x, y, n int) {
	if n <= 0 {
		return
	}
	c.HLine(x, x+n-1, y)
}
