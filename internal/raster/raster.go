// Package raster scan-converts aliased 2D primitives into horizontal and
// vertical pixel spans.
//
// Every primitive takes float64 coordinates, snaps them to integer pixels and
// reduces the shape to spans. The spans pass through a Clipper, which
// restricts them to the target rectangle before handing them to a Writer.
// Nothing outside [0, width-1] x [0, height-1] ever reaches the Writer.
package raster

import "math"

// Writer receives spans that are already clipped to the target.
// This is an interface for writing pixels (avoids import cycle).
type Writer interface {
	// HSpan writes n pixels starting at (x, y) going right.
	HSpan(x, y, n int)

	// VSpan writes n pixels starting at (x, y) going down.
	VSpan(x, y, n int)
}

const (
	// maxCoord bounds every coordinate converted to int so that integer
	// arithmetic on it cannot overflow.
	maxCoord = 1 << 24

	// MaxExtent is the largest ellipse width or height run through the
	// integer stepper, whose error terms grow with the cube of the extent.
	// Larger ellipses are traced over the target columns only.
	MaxExtent = 1 << 18
)

// finite reports whether all values are neither NaN nor infinite.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// toInt converts v to int, saturating at ±maxCoord. v must be finite.
func toInt(v float64) int {
	switch {
	case v > maxCoord:
		return maxCoord
	case v < -maxCoord:
		return -maxCoord
	}
	return int(v)
}

// floorInt returns floor(v) as a saturated int.
func floorInt(v float64) int {
	return toInt(math.Floor(v))
}

// ceilInt returns ceil(v) as a saturated int.
func ceilInt(v float64) int {
	return toInt(math.Ceil(v))
}

// roundInt returns v rounded to the nearest integer (halves away from zero)
// as a saturated int.
func roundInt(v float64) int {
	return toInt(math.Round(v))
}
