package raster

// RoundRect draws a rectangle with quarter-circle corners.
//
// The rectangle snaps to pixels like Rect. The radius is rounded and clamped
// to half the smaller side; a zero radius draws a plain rectangle. At the
// largest radius the corners of the smaller side meet and the straight edges
// along it vanish.
func RoundRect(c *Clipper, x, y, w, h, r float64, fill bool) {
	if c.empty() || !finite(r) {
		return
	}
	b, ok := pixelBox(x, y, w, h)
	if !ok || c.outside(b.x0, b.y0, b.x1-1, b.y1-1) {
		return
	}

	ir := max(roundInt(r), 0)
	ir = min(ir, min(b.w(), b.h())/2)
	if ir == 0 {
		rectBox(c, b, fill)
		return
	}

	bx, by, bw, bh := b.x0, b.y0, b.w(), b.h()
	left, right := bx+ir, bx+bw-ir-1
	top, bottom := by+ir, by+bh-ir-1

	if fill {
		rectBox(c, box{x0: bx + ir, y0: by, x1: bx + bw - ir, y1: by + bh}, true)
		if !c.outside(right, by, right+ir, by+bh-1) {
			fillCircleHelper(c, right, top, ir, CornerTopRight, bh-2*ir-1)
		}
		if !c.outside(left-ir, by, left, by+bh-1) {
			fillCircleHelper(c, left, top, ir, CornerTopLeft, bh-2*ir-1)
		}
		return
	}

	c.hrun(bx+ir, by, bw-2*ir)      // top
	c.hrun(bx+ir, by+bh-1, bw-2*ir) // bottom
	c.vrun(bx, by+ir, bh-2*ir)      // left
	c.vrun(bx+bw-1, by+ir, bh-2*ir) // right

	corners := []struct{ x, y, corner int }{
		{left, top, CornerTopLeft},
		{right, top, CornerTopRight},
		{right, bottom, CornerBottomRight},
		{left, bottom, CornerBottomLeft},
	}
	for _, k := range corners {
		if !c.outside(k.x-ir, k.y-ir, k.x+ir, k.y+ir) {
			drawCircleHelper(c, k.x, k.y, ir, k.corner)
		}
	}
}
