package headless

import (
	"errors"
	"fmt"
	"io"

	intImage "github.com/gogpu/headless/internal/image"
)

// ImageFormat selects an encoded image container for export.
type ImageFormat = intImage.FileFormat

// Export formats.
const (
	ImagePNG  = intImage.FilePNG
	ImageJPEG = intImage.FileJPEG
	ImageBMP  = intImage.FileBMP
	ImageWebP = intImage.FileWebP
)

// Encode writes the framebuffer to w in the given format.
func (fb *Framebuffer) Encode(w io.Writer, f ImageFormat) error {
	if !fb.pix.IsAllocated() {
		return ErrNotAllocated
	}
	return exportErr(intImage.Encode(w, fb.pix.ToImage(), f))
}

// Save writes the framebuffer to path, choosing the format from the file
// extension (.png, .jpg, .jpeg, .bmp, .webp).
func (fb *Framebuffer) Save(path string) error {
	f, err := intImage.FileFormatFromPath(path)
	if err != nil {
		return exportErr(err)
	}
	return fb.save(path, f)
}

// SavePNG saves the framebuffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	return fb.save(path, ImagePNG)
}

// SaveBMP saves the framebuffer to an uncompressed BMP file.
func (fb *Framebuffer) SaveBMP(path string) error {
	return fb.save(path, ImageBMP)
}

// SaveWebP saves the framebuffer to a lossless WebP file.
func (fb *Framebuffer) SaveWebP(path string) error {
	return fb.save(path, ImageWebP)
}

func (fb *Framebuffer) save(path string, f ImageFormat) error {
	if !fb.pix.IsAllocated() {
		return ErrNotAllocated
	}
	return exportErr(intImage.Save(path, fb.pix.ToImage(), f))
}

// Load replaces the buffer with the decoded image file at path converted to
// format. PNG, JPEG, BMP and WebP are always recognized; other decoders can
// be registered with the image package.
func (fb *Framebuffer) Load(path string, format PixelFormat) error {
	img, err := intImage.Load(path)
	if err != nil {
		return fmt.Errorf("headless: load %s: %w", path, err)
	}
	return fb.SetFromImage(img, format)
}

// exportErr maps internal format errors onto ErrUnsupportedImageFormat.
func exportErr(err error) error {
	if errors.Is(err, intImage.ErrUnsupportedFormat) {
		return fmt.Errorf("%w: %w", ErrUnsupportedImageFormat, err)
	}
	return err
}
