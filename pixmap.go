package headless

import (
	"image"

	"github.com/gogpu/headless/internal/blend"
	"github.com/gogpu/headless/internal/damage"
	intImage "github.com/gogpu/headless/internal/image"
)

// Pixmap is a rectangular pixel buffer in one of the supported formats.
//
// A Pixmap is either unallocated (0x0, FormatUnknown, no storage) or fully
// allocated; the zero value is an unallocated Pixmap. Every mutation
// advances Generation, which is how cached copies detect staleness.
type Pixmap struct {
	width  int
	height int
	format PixelFormat
	info   intImage.FormatInfo
	data   []byte

	generation uint64

	// damage records the rows touched since the display cache last synced.
	damage *damage.Bands
}

// NewPixmap creates a pixmap of the given size and format, or an
// unallocated pixmap when the arguments are invalid.
func NewPixmap(width, height int, format PixelFormat) *Pixmap {
	p := &Pixmap{}
	p.Allocate(width, height, format)
	return p
}

// FromImage creates a pixmap holding img converted to format.
func FromImage(img image.Image, format PixelFormat) (*Pixmap, error) {
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	data, w, h, err := intImage.FromStdImage(img, format.Info())
	if err != nil {
		return nil, err
	}
	p := &Pixmap{}
	p.SetFromPixels(data, w, h, format)
	return p, nil
}

// Allocate replaces the storage with a zeroed width x height buffer in the
// given format. It is a no-op when width or height is not positive or the
// format is not valid.
func (p *Pixmap) Allocate(width, height int, format PixelFormat) {
	if !p.accept(width, height, format) {
		return
	}
	p.reset(width, height, format, make([]byte, format.ImageBytes(width, height)))
}

// SetFromPixels replaces the buffer with a verbatim copy of data. It is a
// no-op under the same conditions as Allocate, and when data holds fewer than
// width*height pixels.
func (p *Pixmap) SetFromPixels(data []byte, width, height int, format PixelFormat) {
	if !p.accept(width, height, format) {
		return
	}
	size := format.ImageBytes(width, height)
	if len(data) < size {
		Logger().Warn("headless: pixel data too short",
			"have", len(data), "want", size)
		return
	}
	buf := make([]byte, size)
	copy(buf, data)
	p.reset(width, height, format, buf)
}

// accept validates allocation arguments.
func (p *Pixmap) accept(width, height int, format PixelFormat) bool {
	if width <= 0 || height <= 0 || !format.IsValid() {
		Logger().Warn("headless: allocation rejected",
			"width", width, "height", height, "format", format.String())
		return false
	}
	return true
}

func (p *Pixmap) reset(width, height int, format PixelFormat, data []byte) {
	p.width = width
	p.height = height
	p.format = format
	p.info = format.Info()
	p.data = data
	p.damage = damage.New(height, 0)
	p.damage.MarkAll()
	p.generation++

	Logger().Debug("headless: pixmap allocated",
		"width", width, "height", height, "format", format.String(), "bytes", len(data))
}

// Release frees the storage and returns the pixmap to the unallocated state.
func (p *Pixmap) Release() {
	if !p.IsAllocated() {
		return
	}
	p.width, p.height = 0, 0
	p.format = FormatUnknown
	p.info = FormatUnknown.Info()
	p.data = nil
	p.damage = nil
	p.generation++
}

// Fill sets every pixel to c rendered in the pixmap's format: alpha is
// dropped by formats without an alpha channel and gray formats store
// c.Brightness(). No-op when unallocated.
func (p *Pixmap) Fill(c Color) {
	if !p.IsAllocated() {
		return
	}
	ch := p.info.Channels
	p.info.Encode(p.data[:ch], c.pixel())
	// Double the filled prefix until the whole buffer is covered.
	for filled := ch; filled < len(p.data); filled *= 2 {
		copy(p.data[filled:], p.data[:filled])
	}
	p.damage.MarkAll()
	p.generation++
}

// ReadPixels returns a copy of the buffer in its native format. An
// unallocated pixmap returns an empty, non-nil slice.
func (p *Pixmap) ReadPixels() []byte {
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out
}

// IsAllocated reports whether the pixmap holds storage.
func (p *Pixmap) IsAllocated() bool {
	return p.data != nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Format returns the pixel format.
func (p *Pixmap) Format() PixelFormat {
	return p.format
}

// Channels returns the number of bytes per pixel.
func (p *Pixmap) Channels() int {
	return p.info.Channels
}

// Generation returns a counter that changes on every mutation.
func (p *Pixmap) Generation() uint64 {
	return p.generation
}

// PixelAt returns the color of a single pixel. Missing channels read as
// opaque alpha and gray replicated to red, green and blue. Coordinates
// outside the pixmap return Transparent.
func (p *Pixmap) PixelAt(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	ch := p.info.Channels
	i := (y*p.width + x) * ch
	return colorOf(p.info.Decode(p.data[i : i+ch]))
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	return intImage.ToNRGBA(p.data, p.width, p.height, p.info)
}

// writer returns a span writer compositing src into the pixmap.
func (p *Pixmap) writer(src Color, blending bool) *spanWriter {
	return &spanWriter{p: p, src: src.pixel(), blending: blending}
}

// spanWriter adapts the pixmap to raster.Writer. Spans arrive already
// clipped to the pixmap.
type spanWriter struct {
	p        *Pixmap
	src      intImage.Pixel
	blending bool
}

func (w *spanWriter) HSpan(x, y, n int) {
	p := w.p
	ch := p.info.Channels
	s := blend.Span{Start: (y*p.width + x) * ch, Step: ch, N: n}
	blend.CompositeSpan(p.data, p.info, s, w.src, w.blending)
	p.touch(y, 1)
}

func (w *spanWriter) VSpan(x, y, n int) {
	p := w.p
	ch := p.info.Channels
	s := blend.Span{Start: (y*p.width + x) * ch, Step: p.width * ch, N: n}
	blend.CompositeSpan(p.data, p.info, s, w.src, w.blending)
	p.touch(y, n)
}

// touch records a write to rows y .. y+n-1.
func (p *Pixmap) touch(y, n int) {
	p.damage.MarkRows(y, n)
	p.generation++
}
