package headless

// Option configures a Framebuffer during creation.
// Use functional options to customize Framebuffer behavior.
//
// Example:
//
//	// Unallocated framebuffer with the default drawing state
//	fb := headless.New()
//
//	// 640x480 RGBA, drawing translucent outlines
//	fb := headless.New(
//	    headless.WithSize(640, 480, headless.FormatRGBA),
//	    headless.WithColor(headless.RGBA(255, 0, 0, 128)),
//	    headless.WithFill(false),
//	    headless.WithAlphaBlending(true),
//	)
type Option func(*options)

// options holds optional configuration for Framebuffer creation.
type options struct {
	state DrawingState

	width, height int
	format        PixelFormat
	pixels        []byte
}

// defaultOptions returns the default framebuffer options.
func defaultOptions() options {
	return options{
		state: DefaultDrawingState(),
	}
}

// WithColor sets the initial draw color.
func WithColor(c Color) Option {
	return func(o *options) {
		o.state.Color = c
	}
}

// WithFill sets the initial fill mode.
func WithFill(fill bool) Option {
	return func(o *options) {
		o.state.Fill = fill
	}
}

// WithAlphaBlending sets whether drawing blends with existing pixels.
func WithAlphaBlending(enabled bool) Option {
	return func(o *options) {
		o.state.Blend = enabled
	}
}

// WithSize allocates a zeroed buffer at creation. Invalid arguments leave
// the framebuffer unallocated.
func WithSize(width, height int, format PixelFormat) Option {
	return func(o *options) {
		o.width, o.height, o.format = width, height, format
		o.pixels = nil
	}
}

// WithPixels initializes the buffer with a copy of data, as SetFromPixels
// does.
func WithPixels(data []byte, width, height int, format PixelFormat) Option {
	return func(o *options) {
		o.width, o.height, o.format = width, height, format
		o.pixels = data
	}
}
