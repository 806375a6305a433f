package blend

import "github.com/gogpu/headless/internal/image"

// Span describes a run of pixels inside a packed buffer.
//
// Start is the byte offset of the first pixel; Step is the distance in bytes
// between consecutive pixels (the channel count for a horizontal run, the row
// size for a vertical run). N is the number of pixels.
type Span struct {
	Start int
	Step  int
	N     int
}

// CompositeSpan writes src into every pixel of the span.
//
// With blending disabled (or a fully opaque source) the destination is
// overwritten: color channels take the source color, the destination alpha
// channel (if any) takes the source alpha. Formats without alpha ignore the
// source alpha completely.
//
// With blending enabled a fully transparent source leaves the destination
// untouched and any other alpha composites source-over. Grayscale formats use
// the source brightness, max(r, g, b), as the source value.
//
// Layouts whose channel offsets are not described are written verbatim and
// never blended. Empty spans, empty buffers, zero-channel layouts and spans
// reaching outside dst are ignored.
func CompositeSpan(dst []byte, info image.FormatInfo, s Span, src image.Pixel, blending bool) {
	ch := info.Channels
	if s.N <= 0 || ch <= 0 || len(dst) == 0 || s.Step <= 0 {
		return
	}
	if s.Start < 0 || s.Start+(s.N-1)*s.Step+ch > len(dst) {
		return
	}

	if !info.Described() {
		fillSpan(dst, info, s, src)
		return
	}

	if blending {
		switch src.A {
		case 0:
			return
		case 255:
			blending = false
		}
	}

	if !blending {
		fillSpan(dst, info, s, src)
		return
	}

	if info.HasAlpha() {
		overSpan(dst, info, s, src)
	} else {
		overOpaqueSpan(dst, info, s, src)
	}
}

// fillSpan encodes src once and copies the pixel bytes across the span.
func fillSpan(dst []byte, info image.FormatInfo, s Span, src image.Pixel) {
	var px [4]byte
	info.Encode(px[:], src)
	pattern := px[:info.Channels]
	for i, off := 0, s.Start; i < s.N; i, off = i+1, off+s.Step {
		copy(dst[off:off+info.Channels], pattern)
	}
}

// sourceChannels returns the (offset, value) pairs the source contributes.
// Grayscale layouts contribute one value.
func sourceChannels(info image.FormatInfo, src image.Pixel) (offs [3]int, vals [3]uint8, n int) {
	if info.IsGrayscale {
		offs[0], vals[0] = info.R, src.Brightness()
		return offs, vals, 1
	}
	return [3]int{info.R, info.G, info.B}, [3]uint8{src.R, src.G, src.B}, 3
}

// overOpaqueSpan composites onto a destination with implicit alpha 255:
//
//	out = (src*srcA + dst*(255-srcA) + 127) / 255
func overOpaqueSpan(dst []byte, info image.FormatInfo, s Span, src image.Pixel) {
	offs, vals, n := sourceChannels(info, src)
	sa := uint32(src.A)
	ia := uint32(inv255(src.A))

	for i, off := 0, s.Start; i < s.N; i, off = i+1, off+s.Step {
		for c := range n {
			p := off + offs[c]
			dst[p] = uint8(div255(uint32(vals[c])*sa + uint32(dst[p])*ia))
		}
	}
}

// overSpan composites onto a destination with its own alpha channel:
//
//	outA = srcA + dstA*(255-srcA)/255
//	out  = (src*srcA + dst*dstA*(255-srcA)/255) / outA
//
// A zero output alpha yields zero color channels.
func overSpan(dst []byte, info image.FormatInfo, s Span, src image.Pixel) {
	offs, vals, n := sourceChannels(info, src)
	sa := uint32(src.A)
	ia := uint32(inv255(src.A))

	for i, off := 0, s.Start; i < s.N; i, off = i+1, off+s.Step {
		da := uint32(dst[off+info.A])
		outA := sa + div255(da*ia)

		for c := range n {
			p := off + offs[c]
			if outA == 0 {
				dst[p] = 0
				continue
			}
			num := uint32(vals[c])*sa + div255(uint32(dst[p])*da*ia)
			dst[p] = divRound(num, outA)
		}
		dst[off+info.A] = uint8(outA)
	}
}
