package blend

import (
	"bytes"
	"testing"

	"github.com/gogpu/headless/internal/image"
)

// row returns a one-row buffer of n pixels, every pixel set to px.
func row(n int, px ...byte) []byte {
	buf := make([]byte, 0, n*len(px))
	for range n {
		buf = append(buf, px...)
	}
	return buf
}

func hspan(info image.FormatInfo, x, n int) Span {
	return Span{Start: x * info.Channels, Step: info.Channels, N: n}
}

func TestCompositeSpan_Overwrite(t *testing.T) {
	src := image.Pixel{R: 10, G: 200, B: 30, A: 77}

	tests := []struct {
		name   string
		format image.Format
		want   []byte
	}{
		{"RGB", image.FormatRGB8, []byte{10, 200, 30}},
		{"RGBA", image.FormatRGBA8, []byte{10, 200, 30, 77}},
		{"BGR", image.FormatBGR8, []byte{30, 200, 10}},
		{"BGRA", image.FormatBGRA8, []byte{30, 200, 10, 77}},
		{"Gray", image.FormatGray8, []byte{200}},
		{"GrayAlpha", image.FormatGrayAlpha8, []byte{200, 77}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.format.Info()
			dst := make([]byte, 4*info.Channels)
			CompositeSpan(dst, info, hspan(info, 0, 4), src, false)

			want := row(4, tt.want...)
			if !bytes.Equal(dst, want) {
				t.Errorf("got %v, want %v", dst, want)
			}
		})
	}
}

func TestCompositeSpan_AlphaExtremes(t *testing.T) {
	formats := []image.Format{
		image.FormatRGB8, image.FormatRGBA8, image.FormatBGR8,
		image.FormatBGRA8, image.FormatGray8, image.FormatGrayAlpha8,
	}

	for _, f := range formats {
		t.Run(f.String(), func(t *testing.T) {
			info := f.Info()
			base := make([]byte, 8*info.Channels)
			for i := range base {
				base[i] = uint8(i * 13)
			}

			// Opaque source: blending must equal overwriting.
			opaque := image.Pixel{R: 250, G: 5, B: 90, A: 255}
			blended := bytes.Clone(base)
			plain := bytes.Clone(base)
			CompositeSpan(blended, info, hspan(info, 1, 6), opaque, true)
			CompositeSpan(plain, info, hspan(info, 1, 6), opaque, false)
			if !bytes.Equal(blended, plain) {
				t.Errorf("alpha 255: blended %v != overwrite %v", blended, plain)
			}

			// Transparent source: blending must leave the buffer untouched.
			transparent := image.Pixel{R: 250, G: 5, B: 90, A: 0}
			got := bytes.Clone(base)
			CompositeSpan(got, info, hspan(info, 0, 8), transparent, true)
			if !bytes.Equal(got, base) {
				t.Errorf("alpha 0: buffer modified: %v", got)
			}
		})
	}
}

func TestCompositeSpan_TransparentOverwriteWithoutBlending(t *testing.T) {
	info := image.FormatRGBA8.Info()
	dst := row(2, 1, 2, 3, 4)
	CompositeSpan(dst, info, hspan(info, 0, 2), image.Pixel{R: 9, G: 8, B: 7, A: 0}, false)
	want := row(2, 9, 8, 7, 0)
	if !bytes.Equal(dst, want) {
		t.Errorf("got %v, want %v", dst, want)
	}
}

func TestCompositeSpan_BlendOpaqueDestination(t *testing.T) {
	src := image.Pixel{R: 255, G: 0, B: 0, A: 128}

	// out = (src*128 + dst*127 + 127) / 255
	info := image.FormatRGB8.Info()
	dst := row(3, 0, 255, 0)
	CompositeSpan(dst, info, hspan(info, 0, 3), src, true)
	want := row(3, 128, 127, 0)
	if !bytes.Equal(dst, want) {
		t.Errorf("RGB: got %v, want %v", dst, want)
	}

	bgr := image.FormatBGR8.Info()
	dst = row(1, 0, 255, 0) // b, g, r
	CompositeSpan(dst, bgr, hspan(bgr, 0, 1), src, true)
	if want := []byte{0, 127, 128}; !bytes.Equal(dst, want) {
		t.Errorf("BGR: got %v, want %v", dst, want)
	}
}

func TestCompositeSpan_BlendWithDestinationAlpha(t *testing.T) {
	tests := []struct {
		name string
		dst  []byte
		src  image.Pixel
		want []byte
	}{
		{
			name: "opaque destination matches opaque formula",
			dst:  []byte{0, 255, 0, 255},
			src:  image.Pixel{R: 255, A: 128},
			want: []byte{128, 127, 0, 255},
		},
		{
			name: "transparent destination keeps source color",
			dst:  []byte{0, 0, 0, 0},
			src:  image.Pixel{R: 200, G: 100, B: 50, A: 100},
			want: []byte{200, 100, 50, 100},
		},
		{
			name: "half transparent destination",
			dst:  []byte{0, 0, 255, 128},
			src:  image.Pixel{R: 255, A: 128},
			// outA = 128 + div255(128*127) = 192
			// r = (255*128 + 0) / 192 = 170
			// b = div255(255*128*127) / 192 = 16256 / 192, rounded to 85
			want: []byte{170, 0, 85, 192},
		},
	}

	info := image.FormatRGBA8.Info()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := bytes.Clone(tt.dst)
			CompositeSpan(dst, info, hspan(info, 0, 1), tt.src, true)
			if !bytes.Equal(dst, tt.want) {
				t.Errorf("got %v, want %v", dst, tt.want)
			}
		})
	}
}

func TestCompositeSpan_GrayUsesBrightness(t *testing.T) {
	src := image.Pixel{R: 10, G: 200, B: 30, A: 128}

	gray := image.FormatGray8.Info()
	dst := []byte{50}
	CompositeSpan(dst, gray, hspan(gray, 0, 1), src, true)
	// (200*128 + 50*127 + 127) / 255 = 125
	if dst[0] != 125 {
		t.Errorf("Gray8: got %d, want 125", dst[0])
	}

	ga := image.FormatGrayAlpha8.Info()
	dst = []byte{50, 255}
	CompositeSpan(dst, ga, hspan(ga, 0, 1), src, true)
	if want := []byte{125, 255}; !bytes.Equal(dst, want) {
		t.Errorf("GrayAlpha8: got %v, want %v", dst, want)
	}
}

func TestCompositeSpan_VerticalStep(t *testing.T) {
	// 3x3 RGB buffer, write the middle column.
	info := image.FormatRGB8.Info()
	stride := 3 * info.Channels
	dst := make([]byte, 3*stride)
	CompositeSpan(dst, info, Span{Start: info.Channels, Step: stride, N: 3},
		image.Pixel{R: 1, G: 2, B: 3, A: 255}, false)

	for y := range 3 {
		for x := range 3 {
			px := dst[y*stride+x*3 : y*stride+x*3+3]
			want := []byte{0, 0, 0}
			if x == 1 {
				want = []byte{1, 2, 3}
			}
			if !bytes.Equal(px, want) {
				t.Errorf("(%d,%d) = %v, want %v", x, y, px, want)
			}
		}
	}
}

func TestCompositeSpan_Rejects(t *testing.T) {
	info := image.FormatRGBA8.Info()
	src := image.Pixel{R: 255, A: 255}
	base := make([]byte, 4*4)

	tests := []struct {
		name string
		info image.FormatInfo
		span Span
	}{
		{"zero length", info, Span{Start: 0, Step: 4, N: 0}},
		{"negative length", info, Span{Start: 0, Step: 4, N: -3}},
		{"zero channels", image.FormatUnknown.Info(), Span{Start: 0, Step: 4, N: 2}},
		{"past end", info, Span{Start: 8, Step: 4, N: 3}},
		{"negative start", info, Span{Start: -4, Step: 4, N: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := bytes.Clone(base)
			CompositeSpan(dst, tt.info, tt.span, src, false)
			if !bytes.Equal(dst, base) {
				t.Errorf("buffer modified: %v", dst)
			}
		})
	}

	// Empty destination.
	CompositeSpan(nil, info, Span{Start: 0, Step: 4, N: 1}, src, false)
}

func TestCompositeSpan_UndescribedLayoutWritesVerbatim(t *testing.T) {
	info := image.FormatInfo{Channels: 2, R: image.NoChannel, G: image.NoChannel, B: image.NoChannel, A: image.NoChannel}
	dst := []byte{7, 7, 7, 7}
	CompositeSpan(dst, info, Span{Start: 0, Step: 2, N: 2}, image.Pixel{R: 1, G: 2, B: 3, A: 4}, true)
	if want := []byte{1, 2, 1, 2}; !bytes.Equal(dst, want) {
		t.Errorf("got %v, want %v", dst, want)
	}
}
