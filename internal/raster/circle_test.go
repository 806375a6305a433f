package raster

import "testing"

func TestCirclePixelCounts(t *testing.T) {
	tests := []struct {
		r       float64
		outline int
		fill    int
	}{
		{0, 1, 1},
		{1, 4, 5},
		{2, 12, 21},
		{3, 16, 37},
		{5, 28, 97},
	}

	for _, tt := range tests {
		outline := draw(30, 30, func(c *Clipper) { Circle(c, 15, 15, tt.r, false) })
		fill := draw(30, 30, func(c *Clipper) { Circle(c, 15, 15, tt.r, true) })
		checkClean(t, outline)
		checkClean(t, fill)

		if len(outline.hits) != tt.outline {
			t.Errorf("r=%v: outline wrote %d pixels, want %d", tt.r, len(outline.hits), tt.outline)
		}
		if len(fill.hits) != tt.fill {
			t.Errorf("r=%v: fill wrote %d pixels, want %d", tt.r, len(fill.hits), tt.fill)
		}
	}
}

func TestCircleShape(t *testing.T) {
	for r := 1; r <= 40; r++ {
		outline := draw(100, 100, func(c *Clipper) { Circle(c, 50, 50, float64(r), false) })
		fill := draw(100, 100, func(c *Clipper) { Circle(c, 50, 50, float64(r), true) })
		checkClean(t, outline)
		checkClean(t, fill)

		for _, rec := range []*recorder{outline, fill} {
			if x0, y0, x1, y1 := rec.bounds(); x0 != 50-r || y0 != 50-r || x1 != 50+r || y1 != 50+r {
				t.Fatalf("r=%d: bounds = (%d,%d)-(%d,%d)", r, x0, y0, x1, y1)
			}
			if !rec.mirrored() {
				t.Fatalf("r=%d: circle is not symmetric", r)
			}
		}
		for p := range outline.hits {
			if !fill.has(p[0], p[1]) {
				t.Fatalf("r=%d: outline pixel %v outside the fill", r, p)
			}
		}
		// Every pixel center within the radius is covered.
		for y := 50 - r; y <= 50+r; y++ {
			for x := 50 - r; x <= 50+r; x++ {
				dx, dy := x-50, y-50
				if dx*dx+dy*dy <= r*r && !fill.has(x, y) {
					t.Fatalf("r=%d: fill is missing (%d,%d)", r, x, y)
				}
			}
		}
	}
}

func TestCircleRounding(t *testing.T) {
	a := draw(30, 30, func(c *Clipper) { Circle(c, 10.4, 9.6, 2.6, true) })
	b := draw(30, 30, func(c *Clipper) { Circle(c, 10, 10, 3, true) })
	if len(a.hits) != len(b.hits) {
		t.Fatalf("got %d pixels, want %d", len(a.hits), len(b.hits))
	}
	for p := range b.hits {
		if !a.has(p[0], p[1]) {
			t.Errorf("missing %v", p)
		}
	}
}

func TestCircleNegativeRadius(t *testing.T) {
	rec := draw(10, 10, func(c *Clipper) { Circle(c, 4, 4, -3, true) })
	if len(rec.hits) != 1 || !rec.has(4, 4) {
		t.Errorf("hits = %v, want the center pixel", rec.hits)
	}
}

func TestCircleClipped(t *testing.T) {
	rec := draw(10, 10, func(c *Clipper) { Circle(c, 0, 0, 1000, true) })
	checkClean(t, rec)
	if len(rec.hits) != 100 {
		t.Errorf("wrote %d pixels, want 100", len(rec.hits))
	}

	rec = draw(10, 10, func(c *Clipper) { Circle(c, 0, 0, 1000, false) })
	if len(rec.hits) != 0 || rec.outside != 0 {
		t.Errorf("outline wrote %d pixels, want none", len(rec.hits))
	}

}

func TestCircleHuge(t *testing.T) {
	const r = 300000

	tests := []struct {
		name       string
		cx, cy     float64
		fill       bool
		wantPixels int
		maxX       int
	}{
		{"fill encloses target", 5, 5, true, 100, 9},
		{"outline encloses target", 5, 5, false, 0, -1},
		{"fill edge crosses target", 5 - r, 5, true, 60, 5},
		{"outline edge crosses target", 5 - r, 5, false, 10, 5},
		{"far away", 5 + 3*r, 5, true, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := draw(10, 10, func(c *Clipper) { Circle(c, tt.cx, tt.cy, r, tt.fill) })
			checkClean(t, rec)
			if len(rec.hits) != tt.wantPixels {
				t.Errorf("wrote %d pixels, want %d", len(rec.hits), tt.wantPixels)
			}
			if len(rec.hits) > 0 {
				if _, _, x1, _ := rec.bounds(); x1 != tt.maxX {
					t.Errorf("rightmost column = %d, want %d", x1, tt.maxX)
				}
			}
		})
	}
}
