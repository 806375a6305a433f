// Command headlessdemo draws every headless primitive into a framebuffer and
// saves the result.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	_ "github.com/ftrvxmtrx/tga"

	"github.com/gogpu/headless"
)

func main() {
	var (
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 600, "image height")
		format     = flag.String("format", "rgb", "pixel format: rgb, rgba, bgr, bgra, gray, grayalpha")
		output     = flag.String("output", "demo.png", "output file (.png, .jpg, .bmp, .webp)")
		background = flag.String("background", "", "optional background image (png, jpeg, bmp, webp, tga)")
		verbose    = flag.Bool("v", false, "log allocations and uploads to stderr")
	)
	flag.Parse()

	if *verbose {
		headless.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pf := headless.ParsePixelFormat(*format)
	if !pf.IsValid() {
		log.Fatalf("Unknown pixel format %q", *format)
	}

	fb := headless.New()
	if *background != "" {
		if err := fb.Load(*background, pf); err != nil {
			log.Fatalf("Failed to load background: %v", err)
		}
	} else {
		fb.Allocate(*width, *height, pf)
		if !fb.IsAllocated() {
			log.Fatalf("Invalid size %dx%d", *width, *height)
		}
		fb.Clear(headless.Green)
	}

	w, h := float64(fb.Width()), float64(fb.Height())

	// Reference diagonal
	fb.SetColor(headless.Red)
	fb.DrawLine(0, 0, w-1, h-1)

	drawShapes(fb, w, h, true, 0)
	drawShapes(fb, w, h, false, h/2)
	drawOverlay(fb, w, h)

	if err := fb.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d %s)\n", *output, fb.Width(), fb.Height(), fb.Format())
}

// drawShapes lays out one of each primitive in a row starting at y0.
func drawShapes(fb *headless.Framebuffer, w, h float64, fill bool, y0 float64) {
	fb.DisableAlphaBlending()
	fb.SetFill(fill)

	cell := w / 5
	r := math.Min(cell, h/2) * 0.35
	cy := y0 + h/4

	fb.SetColor(headless.Hex("#3498db"))
	fb.DrawRectangle(cell*0.5-r, cy-r, 2*r, 2*r)

	fb.SetColor(headless.Yellow)
	fb.DrawCircle(cell*1.5, cy, r)

	fb.SetColor(headless.Magenta)
	fb.DrawTriangle(cell*2.5, cy-r, cell*2.5+r, cy+r, cell*2.5-r, cy+r)

	fb.SetColor(headless.Cyan)
	fb.DrawRoundedRectangle(cell*3.5-r, cy-r*0.7, 2*r, 1.4*r, r/3)

	fb.SetColor(headless.White)
	fb.DrawEllipse(cell*4.5, cy, 2*r, r)

	// Points along the bottom of the row
	fb.SetColor(headless.Black)
	for x := 0.0; x < w; x += 4 {
		fb.DrawPoint(x, y0+h/2-2)
	}
}

// drawOverlay composites a translucent band across the middle.
func drawOverlay(fb *headless.Framebuffer, w, h float64) {
	fb.EnableAlphaBlending()
	fb.SetFill(true)
	fb.SetColor(headless.RGBA(0, 0, 0, 96))
	fb.DrawRectangle(0, h*0.45, w, h*0.1)

	fb.SetColor(headless.RGBA(255, 255, 255, 160))
	for i := range 8 {
		x := w * float64(i) / 8
		fb.DrawLine(x, h*0.45, x+w/16, h*0.55)
	}
}
