package image

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a file format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyImage is returned when an image has no pixels.
	ErrEmptyImage = errors.New("image: empty image")
)

// FileFormat is an encoded image container.
type FileFormat uint8

const (
	// FilePNG is lossless PNG.
	FilePNG FileFormat = iota

	// FileJPEG is baseline JPEG. Alpha is discarded.
	FileJPEG

	// FileBMP is uncompressed Windows bitmap.
	FileBMP

	// FileWebP is lossless WebP (VP8L).
	FileWebP
)

// String returns the conventional name of the format.
func (f FileFormat) String() string {
	switch f {
	case FilePNG:
		return "png"
	case FileJPEG:
		return "jpeg"
	case FileBMP:
		return "bmp"
	case FileWebP:
		return "webp"
	default:
		return "unknown"
	}
}

// FileFormatFromPath picks a file format from the extension of path.
func FileFormatFromPath(path string) (FileFormat, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FilePNG, nil
	case ".jpg", ".jpeg":
		return FileJPEG, nil
	case ".bmp":
		return FileBMP, nil
	case ".webp":
		return FileWebP, nil
	default:
		return 0, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

// ToNRGBA converts packed pixels of the given layout into a new
// straight-alpha image.
func ToNRGBA(data []byte, width, height int, info FormatInfo) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	ToRGBA(img.Pix, data, info)
	return img
}

// FromStdImage converts any image into packed pixels of the given layout.
// It returns the pixel bytes and the image dimensions.
func FromStdImage(img image.Image, info FormatInfo) ([]byte, int, int, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return nil, 0, 0, ErrEmptyImage
	}
	if info.Channels <= 0 {
		return nil, 0, 0, fmt.Errorf("%w: pixel layout with no channels", ErrUnsupportedFormat)
	}

	// Normalize the source to non-premultiplied RGBA at the origin.
	src, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) || src.Stride != width*4 {
		src = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)
	}

	ch := info.Channels
	out := make([]byte, width*height*ch)
	for i := range width * height {
		s := src.Pix[i*4 : i*4+4]
		info.Encode(out[i*ch:i*ch+ch], Pixel{R: s[0], G: s[1], B: s[2], A: s[3]})
	}
	return out, width, height, nil
}

// Encode writes img to w in the given file format.
func Encode(w io.Writer, img image.Image, f FileFormat) error {
	var err error
	switch f {
	case FilePNG:
		err = png.Encode(w, img)
	case FileJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpeg.DefaultQuality})
	case FileBMP:
		err = bmp.Encode(w, img)
	case FileWebP:
		err = nativewebp.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", f, err)
	}
	return nil
}

// Save writes img to the file at path in the given format.
func Save(path string, img image.Image, f FileFormat) error {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(file, img, f); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// Load decodes the image file at path with whichever registered decoder
// recognizes it.
func Load(path string) (image.Image, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return img, nil
}
