package image

import (
	"bytes"
	"testing"
)

func TestPixel_Brightness(t *testing.T) {
	tests := []struct {
		p    Pixel
		want uint8
	}{
		{Pixel{}, 0},
		{Pixel{R: 255}, 255},
		{Pixel{R: 10, G: 200, B: 30}, 200},
		{Pixel{R: 1, G: 2, B: 3, A: 255}, 3},
	}
	for _, tt := range tests {
		if got := tt.p.Brightness(); got != tt.want {
			t.Errorf("%+v.Brightness() = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestFormatInfo_EncodeDecode(t *testing.T) {
	p := Pixel{R: 10, G: 20, B: 30, A: 40}

	tests := []struct {
		format  Format
		encoded []byte
		decoded Pixel
	}{
		{FormatRGB8, []byte{10, 20, 30}, Pixel{10, 20, 30, 255}},
		{FormatRGBA8, []byte{10, 20, 30, 40}, Pixel{10, 20, 30, 40}},
		{FormatBGR8, []byte{30, 20, 10}, Pixel{10, 20, 30, 255}},
		{FormatBGRA8, []byte{30, 20, 10, 40}, Pixel{10, 20, 30, 40}},
		{FormatGray8, []byte{30}, Pixel{30, 30, 30, 255}},
		{FormatGrayAlpha8, []byte{30, 40}, Pixel{30, 30, 30, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			info := tt.format.Info()
			buf := make([]byte, info.Channels)
			info.Encode(buf, p)
			if !bytes.Equal(buf, tt.encoded) {
				t.Errorf("Encode = %v, want %v", buf, tt.encoded)
			}
			if got := info.Decode(buf); got != tt.decoded {
				t.Errorf("Decode = %+v, want %+v", got, tt.decoded)
			}
		})
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		format Format
		src    []byte
		want   []byte
	}{
		{FormatRGBA8, []byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{FormatBGRA8, []byte{1, 2, 3, 4}, []byte{3, 2, 1, 4}},
		{FormatRGB8, []byte{1, 2, 3, 4, 5, 6}, []byte{1, 2, 3, 255, 4, 5, 6, 255}},
		{FormatBGR8, []byte{1, 2, 3}, []byte{3, 2, 1, 255}},
		{FormatGray8, []byte{9, 200}, []byte{9, 9, 9, 255, 200, 200, 200, 255}},
		{FormatGrayAlpha8, []byte{9, 100}, []byte{9, 9, 9, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			dst := make([]byte, len(tt.want))
			ToRGBA(dst, tt.src, tt.format.Info())
			if !bytes.Equal(dst, tt.want) {
				t.Errorf("ToRGBA = %v, want %v", dst, tt.want)
			}
		})
	}
}

func TestToRGBA_ShortDestination(t *testing.T) {
	dst := make([]byte, 4)
	ToRGBA(dst, []byte{1, 2, 3, 4, 5, 6}, FormatRGB8.Info())
	if want := []byte{1, 2, 3, 255}; !bytes.Equal(dst, want) {
		t.Errorf("ToRGBA = %v, want %v", dst, want)
	}
	ToRGBA(dst, []byte{1}, FormatUnknown.Info())
}
