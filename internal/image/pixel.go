package image

// Pixel is an 8-bit straight-alpha color.
type Pixel struct {
	R, G, B, A uint8
}

// Brightness reduces the color to a single gray value: the maximum of its
// red, green and blue channels.
func (p Pixel) Brightness() uint8 {
	return max(p.R, p.G, p.B)
}

// Encode stores p in dst using the layout described by i. dst must hold at
// least i.Channels bytes. Formats without alpha drop p.A; grayscale formats
// store p.Brightness(). Layouts that are not Described receive r, g, b, a
// verbatim, truncated to the channel count.
func (i FormatInfo) Encode(dst []byte, p Pixel) {
	if !i.Described() {
		raw := [4]uint8{p.R, p.G, p.B, p.A}
		copy(dst[:i.Channels], raw[:])
		return
	}
	if i.IsGrayscale {
		dst[i.R] = p.Brightness()
	} else {
		dst[i.R] = p.R
		dst[i.G] = p.G
		dst[i.B] = p.B
	}
	if i.HasAlpha() {
		dst[i.A] = p.A
	}
}

// Decode reads one pixel laid out as i. Missing alpha reads as 255.
func (i FormatInfo) Decode(src []byte) Pixel {
	if !i.Described() {
		var raw [4]uint8
		raw[3] = 255
		copy(raw[:], src[:i.Channels])
		return Pixel{R: raw[0], G: raw[1], B: raw[2], A: raw[3]}
	}
	p := Pixel{R: src[i.R], G: src[i.G], B: src[i.B], A: 255}
	if i.HasAlpha() {
		p.A = src[i.A]
	}
	return p
}

// ToRGBA converts the packed pixels in src to 4-byte RGBA pixels in dst.
// The number of pixels converted is limited by whichever slice is shorter.
func ToRGBA(dst, src []byte, info FormatInfo) {
	ch := info.Channels
	if ch <= 0 {
		return
	}
	n := min(len(src)/ch, len(dst)/4)

	// Straight copy when the layouts already match.
	if ch == 4 && info.R == 0 && info.G == 1 && info.B == 2 && info.A == 3 {
		copy(dst[:n*4], src[:n*4])
		return
	}

	for p := range n {
		px := info.Decode(src[p*ch : p*ch+ch])
		d := dst[p*4 : p*4+4]
		d[0] = px.R
		d[1] = px.G
		d[2] = px.B
		d[3] = px.A
	}
}
