package headless

import "image"

// Framebuffer is a CPU-side drawing surface: a Pixmap, the drawing state
// applied by the primitives and a lazily refreshed GPU copy for display.
//
// Framebuffer is NOT safe for concurrent use.
type Framebuffer struct {
	pix   Pixmap
	state DrawingState
	cache displayCache
}

// New creates a Framebuffer. Without options it is unallocated and draws
// filled, opaque white shapes with blending disabled.
func New(opts ...Option) *Framebuffer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb := &Framebuffer{state: o.state}
	switch {
	case o.pixels != nil:
		fb.SetFromPixels(o.pixels, o.width, o.height, o.format)
	case o.width != 0 || o.height != 0 || o.format != FormatUnknown:
		fb.Allocate(o.width, o.height, o.format)
	}
	return fb
}

// Allocate (re)creates a zeroed buffer. It is a no-op, leaving the current
// buffer untouched, when width or height is not positive or format is not
// valid. The drawing state is kept.
func (fb *Framebuffer) Allocate(width, height int, format PixelFormat) {
	fb.pix.Allocate(width, height, format)
}

// SetFromPixels replaces the buffer with a copy of data laid out in format.
// Invalid arguments and short data are ignored.
func (fb *Framebuffer) SetFromPixels(data []byte, width, height int, format PixelFormat) {
	fb.pix.SetFromPixels(data, width, height, format)
}

// SetFromImage replaces the buffer with img converted to format.
func (fb *Framebuffer) SetFromImage(img image.Image, format PixelFormat) error {
	p, err := FromImage(img, format)
	if err != nil {
		return err
	}
	fb.pix.SetFromPixels(p.data, p.width, p.height, format)
	return nil
}

// Clear sets every pixel to c, ignoring the drawing state. No-op when
// unallocated.
func (fb *Framebuffer) Clear(c Color) {
	fb.pix.Fill(c)
}

// Release frees the buffer. The framebuffer becomes unallocated and Present
// draws nothing until it is allocated again.
func (fb *Framebuffer) Release() {
	fb.pix.Release()
}

// ReadPixels returns a copy of the buffer in its native format, or an empty
// slice when unallocated.
func (fb *Framebuffer) ReadPixels() []byte {
	return fb.pix.ReadPixels()
}

// IsAllocated reports whether the framebuffer holds a buffer.
func (fb *Framebuffer) IsAllocated() bool { return fb.pix.IsAllocated() }

// Width returns the buffer width, 0 when unallocated.
func (fb *Framebuffer) Width() int { return fb.pix.Width() }

// Height returns the buffer height, 0 when unallocated.
func (fb *Framebuffer) Height() int { return fb.pix.Height() }

// Format returns the pixel format, FormatUnknown when unallocated.
func (fb *Framebuffer) Format() PixelFormat { return fb.pix.Format() }

// Channels returns the number of bytes per pixel.
func (fb *Framebuffer) Channels() int { return fb.pix.Channels() }

// Generation returns the buffer's mutation counter.
func (fb *Framebuffer) Generation() uint64 { return fb.pix.Generation() }

// PixelAt returns the color at (x, y), or Transparent outside the buffer.
func (fb *Framebuffer) PixelAt(x, y int) Color { return fb.pix.PixelAt(x, y) }

// ToImage converts the buffer to an image.NRGBA.
func (fb *Framebuffer) ToImage() *image.NRGBA { return fb.pix.ToImage() }

// Pixmap returns the underlying pixel buffer.
func (fb *Framebuffer) Pixmap() *Pixmap { return &fb.pix }

// State returns the current drawing state.
func (fb *Framebuffer) State() DrawingState { return fb.state }

// SetState replaces the drawing state.
func (fb *Framebuffer) SetState(s DrawingState) { fb.state = s }

// SetColor sets the draw color.
func (fb *Framebuffer) SetColor(c Color) { fb.state.Color = c }

// SetRGBA sets the draw color from its components.
func (fb *Framebuffer) SetRGBA(r, g, b, a uint8) { fb.state.Color = RGBA(r, g, b, a) }

// SetFill selects filled shapes (true) or outlines (false).
func (fb *Framebuffer) SetFill(fill bool) { fb.state.Fill = fill }

// EnableAlphaBlending makes drawing composite over existing pixels.
func (fb *Framebuffer) EnableAlphaBlending() { fb.state.Blend = true }

// DisableAlphaBlending makes drawing overwrite existing pixels.
func (fb *Framebuffer) DisableAlphaBlending() { fb.state.Blend = false }
