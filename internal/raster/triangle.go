package raster

import "math"

// degenerateArea is the |cross product| below which a triangle is treated
// as a line.
const degenerateArea = 1e-6

// Triangle draws a triangle. The outline is its three edges drawn as lines.
//
// The filled triangle samples every row at its pixel center (y + 0.5),
// intersects that scanline with each edge whose half-open Y range contains
// it and fills floor(minX)..floor(maxX). Zero-area triangles draw their
// longest edge.
func Triangle(c *Clipper, x0, y0, x1, y1, x2, y2 float64, fill bool) {
	if c.empty() || !finite(x0, y0, x1, y1, x2, y2) {
		return
	}
	if !fill {
		Line(c, x0, y0, x1, y1)
		Line(c, x1, y1, x2, y2)
		Line(c, x2, y2, x0, y0)
		return
	}

	cross := (x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)
	if math.Abs(cross) < degenerateArea {
		longestEdge(c, [3][2]float64{{x0, y0}, {x1, y1}, {x2, y2}})
		return
	}

	edges := [3][4]float64{
		{x0, y0, x1, y1},
		{x1, y1, x2, y2},
		{x2, y2, x0, y0},
	}

	minY := min(y0, y1, y2)
	maxY := max(y0, y1, y2)
	rowStart := max(math.Floor(minY), 0)
	rowEnd := min(math.Ceil(maxY), float64(c.Height))

	// Intersections are clamped to a little outside the target before
	// conversion; the span is clipped again by HLine.
	lo, hi := -2.0, float64(c.Width)+1

	for row := rowStart; row < rowEnd; row++ {
		sy := row + 0.5
		left, right := math.Inf(1), math.Inf(-1)
		for _, e := range edges {
			ax, ay, bx, by := e[0], e[1], e[2], e[3]
			if ay > by {
				ax, ay, bx, by = bx, by, ax, ay
			}
			if ay <= sy && sy < by {
				x := ax + (sy-ay)*(bx-ax)/(by-ay)
				left = min(left, x)
				right = max(right, x)
			}
		}
		if left > right || math.IsNaN(left) || math.IsNaN(right) {
			continue
		}
		left = math.Min(math.Max(left, lo), hi)
		right = math.Min(math.Max(right, lo), hi)
		c.HLine(int(math.Floor(left)), int(math.Floor(right)), int(row))
	}
}

// longestEdge draws the longest of the three edges between pts.
func longestEdge(c *Clipper, pts [3][2]float64) {
	best, bestLen := 0, -1.0
	for i := range pts {
		j := (i + 1) % 3
		dx := pts[j][0] - pts[i][0]
		dy := pts[j][1] - pts[i][1]
		if l := dx*dx + dy*dy; l > bestLen {
			best, bestLen = i, l
		}
	}
	j := (best + 1) % 3
	Line(c, pts[best][0], pts[best][1], pts[j][0], pts[j][1])
}
