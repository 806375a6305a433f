package headless

import "github.com/gogpu/headless/internal/raster"

// Drawing primitives. Coordinates are in pixels with (0, 0) at the top-left
// corner; shapes are clipped to the buffer. Nothing is drawn when the
// framebuffer is unallocated, an argument is NaN or infinite, or blending is
// enabled with a fully transparent color.

var _ raster.Writer = (*spanWriter)(nil)

// clipper returns the span sink for the current state, or nil when drawing
// cannot change any pixel.
func (fb *Framebuffer) clipper() *raster.Clipper {
	if !fb.pix.IsAllocated() || fb.state.noop() {
		return nil
	}
	w := fb.pix.writer(fb.state.Color, fb.state.Blend)
	return raster.NewClipper(w, fb.pix.width, fb.pix.height)
}

// DrawPoint sets the pixel containing (x, y).
func (fb *Framebuffer) DrawPoint(x, y float64) {
	raster.Point(fb.clipper(), x, y)
}

// DrawLine draws a one-pixel line between the pixels containing both
// endpoints, inclusive.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 float64) {
	raster.Line(fb.clipper(), x0, y0, x1, y1)
}

// DrawRectangle draws the pixels touched by the rectangle at (x, y) of size
// w x h. Negative sizes extend left or up.
func (fb *Framebuffer) DrawRectangle(x, y, w, h float64) {
	raster.Rect(fb.clipper(), x, y, w, h, fb.state.Fill)
}

// DrawTriangle draws the triangle with the given vertices.
func (fb *Framebuffer) DrawTriangle(x0, y0, x1, y1, x2, y2 float64) {
	raster.Triangle(fb.clipper(), x0, y0, x1, y1, x2, y2, fb.state.Fill)
}

// DrawCircle draws a circle of radius r around (x, y). The center and radius
// are rounded to whole pixels.
func (fb *Framebuffer) DrawCircle(x, y, r float64) {
	raster.Circle(fb.clipper(), x, y, r, fb.state.Fill)
}

// DrawRoundedRectangle draws a rectangle whose corners are quarter circles of
// radius r. The radius is limited to fit the rectangle.
func (fb *Framebuffer) DrawRoundedRectangle(x, y, w, h, r float64) {
	raster.RoundRect(fb.clipper(), x, y, w, h, r, fb.state.Fill)
}

// DrawEllipse draws an axis-aligned ellipse centered on (x, y) inscribed in a
// w x h box.
func (fb *Framebuffer) DrawEllipse(x, y, w, h float64) {
	raster.Ellipse(fb.clipper(), x, y, w, h, fb.state.Fill)
}
