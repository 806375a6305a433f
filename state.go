package headless

// DrawingState holds the pen used by the drawing primitives.
type DrawingState struct {
	// Color is the draw color.
	Color Color

	// Fill selects solid shapes; false draws outlines.
	Fill bool

	// Blend composites Color over the existing pixels using its alpha.
	// When false, pixels are overwritten.
	Blend bool
}

// DefaultDrawingState returns opaque white, filled, with blending off.
func DefaultDrawingState() DrawingState {
	return DrawingState{
		Color: White,
		Fill:  true,
		Blend: false,
	}
}

// noop reports whether drawing with this state cannot change any pixel.
func (s DrawingState) noop() bool {
	return s.Blend && s.Color.A == 0
}
