// Package blend writes solid-color spans into packed 8-bit pixel buffers,
// either overwriting the destination or compositing over it with
// straight-alpha source-over.
//
// All divisions by 255 round half up: (x + 127) / 255. The results are
// bit-exact and deterministic, which the framebuffer tests depend on.
package blend

// div255 divides x by 255, rounding half up.
//
// Formula: (x + 127) / 255
//
// Valid for any x that does not overflow uint32 after adding 127.
func div255(x uint32) uint32 {
	return (x + 127) / 255
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x uint8) uint8 {
	return 255 - x
}

// divRound divides num by den rounding half up and clamps the result to 255.
// den must be non-zero.
func divRound(num, den uint32) uint8 {
	v := (num + den/2) / den
	if v > 255 {
		return 255
	}
	return uint8(v)
}
