// Package headless provides a CPU 2D rasterizer that draws aliased primitives
// straight into an in-memory pixel buffer.
//
// # Overview
//
// A Framebuffer owns a Pixmap in one of six byte layouts (RGB, RGBA, BGR,
// BGRA, gray, gray+alpha) and a DrawingState (color, fill or outline,
// alpha blending). Points, lines, rectangles, triangles, circles, rounded
// rectangles and ellipses are scan converted into horizontal and vertical
// spans, clipped to the buffer and composited in the buffer's own format.
// No GPU is needed to draw; a GPU texture is only used as a lazily refreshed
// copy when the framebuffer is presented.
//
// # Quick Start
//
//	import "github.com/gogpu/headless"
//
//	fb := headless.New(headless.WithSize(100, 100, headless.FormatRGB))
//	fb.Clear(headless.Green)
//
//	fb.SetColor(headless.Red)
//	fb.DrawLine(0, 0, 99, 99)
//
//	fb.SetFill(false)
//	fb.DrawCircle(50, 50, 30)
//
//	fb.SavePNG("output.png")
//
// # Presenting
//
// Present uploads the buffer to a gpucontext.TextureDrawer and draws it at a
// position. Every mutation advances the buffer generation and marks the
// touched rows; Present compares generations and uploads only the damaged
// row bands, so presenting an unchanged buffer every frame costs one draw
// call.
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    fb.Present(dc.AsTextureDrawer(), 0, 0)
//	})
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left pixel
//   - X increases right
//   - Y increases down
//   - A point covers the pixel containing it; circle centers and radii are
//     rounded to whole pixels
//
// # Errors
//
// Drawing never fails. Invalid sizes, NaN or infinite coordinates and
// shapes outside the buffer are ignored. Only Present and the export
// functions return errors.
package headless
