package headless

import "errors"

// Common errors returned by headless operations.
// Drawing itself never fails: invalid shapes are silently ignored.
var (
	// ErrNotAllocated is returned when exporting a framebuffer with no storage.
	ErrNotAllocated = errors.New("headless: framebuffer is not allocated")

	// ErrInvalidFormat is returned when a pixel format is unknown.
	ErrInvalidFormat = errors.New("headless: invalid pixel format")

	// ErrNilDrawer is returned when Present is called with a nil drawer.
	ErrNilDrawer = errors.New("headless: nil TextureDrawer")

	// ErrNoTextureCreator is returned when the drawer cannot create textures.
	ErrNoTextureCreator = errors.New("headless: drawer has no TextureCreator")

	// ErrUnsupportedImageFormat is returned for unknown export formats.
	ErrUnsupportedImageFormat = errors.New("headless: unsupported image format")
)
