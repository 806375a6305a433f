package headless

import intImage "github.com/gogpu/headless/internal/image"

// PixelFormat is the channel layout of a framebuffer.
//
// Channels, HasAlpha, IsGrayscale, IsValid, RowBytes and ImageBytes describe
// the layout; TextureFormat names the matching GPU texture format, or
// gputypes.TextureFormatUndefined for 24-bit layouts, which are expanded to
// RGBA before upload.
type PixelFormat = intImage.Format

// Pixel formats.
const (
	// FormatUnknown marks an unallocated buffer. Allocating with it is a no-op.
	FormatUnknown PixelFormat = intImage.FormatUnknown

	// FormatRGB is 3 bytes per pixel: red, green, blue.
	FormatRGB PixelFormat = intImage.FormatRGB8

	// FormatRGBA is 4 bytes per pixel: red, green, blue, straight alpha.
	FormatRGBA PixelFormat = intImage.FormatRGBA8

	// FormatBGR is 3 bytes per pixel: blue, green, red.
	FormatBGR PixelFormat = intImage.FormatBGR8

	// FormatBGRA is 4 bytes per pixel: blue, green, red, straight alpha.
	FormatBGRA PixelFormat = intImage.FormatBGRA8

	// FormatGray is 1 byte per pixel.
	FormatGray PixelFormat = intImage.FormatGray8

	// FormatGrayAlpha is 2 bytes per pixel: gray, alpha.
	FormatGrayAlpha PixelFormat = intImage.FormatGrayAlpha8
)

// ParsePixelFormat maps a lower-case name ("rgb", "rgba", "bgr", "bgra",
// "gray", "grayalpha") to its format. Unknown names return FormatUnknown.
func ParsePixelFormat(name string) PixelFormat {
	switch name {
	case "rgb":
		return FormatRGB
	case "rgba":
		return FormatRGBA
	case "bgr":
		return FormatBGR
	case "bgra":
		return FormatBGRA
	case "gray":
		return FormatGray
	case "grayalpha":
		return FormatGrayAlpha
	default:
		return FormatUnknown
	}
}
