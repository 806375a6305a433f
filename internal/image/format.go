// Package image describes the pixel layouts a headless framebuffer can hold.
//
// Each Format resolves once to a FormatInfo descriptor (channel count, byte
// offsets of the color channels, alpha presence). Compositing and conversion
// code is driven by the descriptor instead of switching on the format for
// every pixel.
package image

import "github.com/gogpu/gputypes"

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatUnknown is the zero value and marks an unallocated buffer.
	FormatUnknown Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA (4 bytes per pixel, straight alpha).
	FormatRGBA8

	// FormatBGR8 is 24-bit BGR (3 bytes per pixel, no alpha).
	FormatBGR8

	// FormatBGRA8 is 32-bit BGRA (4 bytes per pixel, straight alpha).
	// Common on Windows and some GPU surfaces.
	FormatBGRA8

	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8

	// FormatGrayAlpha8 is 8-bit grayscale followed by 8-bit alpha.
	FormatGrayAlpha8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// NoChannel marks a channel that is absent from a layout.
const NoChannel = -1

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Channels is the number of bytes per pixel. All formats use one byte
	// per channel.
	Channels int

	// R, G and B are byte offsets of the color channels within a pixel.
	// Grayscale formats store their single value at offset 0 and report
	// it for all three.
	R, G, B int

	// A is the byte offset of the alpha channel, or NoChannel.
	A int

	// IsGrayscale indicates a single luminance channel.
	IsGrayscale bool

	// Texture is the GPU texture format with the same memory layout.
	// 24-bit formats have no GPU equivalent and report
	// gputypes.TextureFormatUndefined.
	Texture gputypes.TextureFormat
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatUnknown: {
		R: NoChannel, G: NoChannel, B: NoChannel, A: NoChannel,
		Texture: gputypes.TextureFormatUndefined,
	},
	FormatRGB8: {
		Channels: 3,
		R:        0, G: 1, B: 2, A: NoChannel,
		Texture: gputypes.TextureFormatUndefined,
	},
	FormatRGBA8: {
		Channels: 4,
		R:        0, G: 1, B: 2, A: 3,
		Texture: gputypes.TextureFormatRGBA8Unorm,
	},
	FormatBGR8: {
		Channels: 3,
		R:        2, G: 1, B: 0, A: NoChannel,
		Texture: gputypes.TextureFormatUndefined,
	},
	FormatBGRA8: {
		Channels: 4,
		R:        2, G: 1, B: 0, A: 3,
		Texture: gputypes.TextureFormatBGRA8Unorm,
	},
	FormatGray8: {
		Channels: 1,
		R:        0, G: 0, B: 0, A: NoChannel,
		IsGrayscale: true,
		Texture:     gputypes.TextureFormatR8Unorm,
	},
	FormatGrayAlpha8: {
		Channels: 2,
		R:        0, G: 0, B: 0, A: 1,
		IsGrayscale: true,
		Texture:     gputypes.TextureFormatRG8Unorm,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return formatInfoTable[FormatUnknown]
	}
	return formatInfoTable[f]
}

// Channels returns the number of channels (and bytes) per pixel.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha()
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// TextureFormat returns the GPU texture format sharing this memory layout.
func (f Format) TextureFormat() gputypes.TextureFormat {
	return f.Info().Texture
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGR8:
		return "BGR8"
	case FormatBGRA8:
		return "BGRA8"
	case FormatGray8:
		return "Gray8"
	case FormatGrayAlpha8:
		return "GrayAlpha8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a known format that can be allocated.
func (f Format) IsValid() bool {
	return f > FormatUnknown && f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.Channels()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// HasAlpha reports whether the layout carries an alpha channel.
func (i FormatInfo) HasAlpha() bool {
	return i.A != NoChannel
}

// Described reports whether the color channel offsets fit inside a pixel.
// Layouts that are not described can only be written verbatim.
func (i FormatInfo) Described() bool {
	if i.Channels <= 0 {
		return false
	}
	for _, off := range [...]int{i.R, i.G, i.B} {
		if off < 0 || off >= i.Channels {
			return false
		}
	}
	return i.A == NoChannel || (i.A >= 0 && i.A < i.Channels)
}
