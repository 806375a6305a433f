package image

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestFormat_Channels(t *testing.T) {
	tests := []struct {
		format   Format
		expected int
	}{
		{FormatUnknown, 0},
		{FormatRGB8, 3},
		{FormatRGBA8, 4},
		{FormatBGR8, 3},
		{FormatBGRA8, 4},
		{FormatGray8, 1},
		{FormatGrayAlpha8, 2},
		{Format(200), 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.Channels(); got != tt.expected {
				t.Errorf("Channels() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFormat_HasAlpha(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{FormatUnknown, false},
		{FormatRGB8, false},
		{FormatRGBA8, true},
		{FormatBGR8, false},
		{FormatBGRA8, true},
		{FormatGray8, false},
		{FormatGrayAlpha8, true},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.HasAlpha(); got != tt.expected {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	for f := range formatCount {
		want := f != FormatUnknown
		if got := f.IsValid(); got != want {
			t.Errorf("%v.IsValid() = %v, want %v", f, got, want)
		}
		if want && !f.Info().Described() {
			t.Errorf("%v.Info() is not described", f)
		}
	}
	if Format(99).IsValid() {
		t.Error("Format(99).IsValid() = true, want false")
	}
}

func TestFormat_TextureFormat(t *testing.T) {
	tests := []struct {
		format   Format
		expected gputypes.TextureFormat
	}{
		{FormatRGBA8, gputypes.TextureFormatRGBA8Unorm},
		{FormatBGRA8, gputypes.TextureFormatBGRA8Unorm},
		{FormatGray8, gputypes.TextureFormatR8Unorm},
		{FormatGrayAlpha8, gputypes.TextureFormatRG8Unorm},
		{FormatRGB8, gputypes.TextureFormatUndefined},
		{FormatBGR8, gputypes.TextureFormatUndefined},
		{FormatUnknown, gputypes.TextureFormatUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.TextureFormat(); got != tt.expected {
				t.Errorf("TextureFormat() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_ImageBytes(t *testing.T) {
	if got := FormatRGB8.ImageBytes(10, 5); got != 150 {
		t.Errorf("RGB8 ImageBytes(10, 5) = %d, want 150", got)
	}
	if got := FormatGrayAlpha8.RowBytes(7); got != 14 {
		t.Errorf("GrayAlpha8 RowBytes(7) = %d, want 14", got)
	}
	if got := FormatUnknown.ImageBytes(10, 10); got != 0 {
		t.Errorf("Unknown ImageBytes = %d, want 0", got)
	}
}

func TestFormatInfo_Described(t *testing.T) {
	tests := []struct {
		name string
		info FormatInfo
		want bool
	}{
		{"zero", FormatInfo{}, false},
		{"offset out of pixel", FormatInfo{Channels: 2, R: 0, G: 1, B: 2, A: NoChannel}, false},
		{"missing color", FormatInfo{Channels: 3, R: 0, G: NoChannel, B: 2, A: NoChannel}, false},
		{"alpha out of pixel", FormatInfo{Channels: 3, R: 0, G: 1, B: 2, A: 3}, false},
		{"rgb", FormatRGB8.Info(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Described(); got != tt.want {
				t.Errorf("Described() = %v, want %v", got, tt.want)
			}
		})
	}
}
