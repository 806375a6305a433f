// Package damage tracks which rows of a pixel buffer changed since the
// last upload.
//
// Rows are grouped into fixed-height bands; one bit per band is kept in a
// packed bitmap. Uploading full-width bands keeps every dirty region a
// contiguous slice of the source buffer.
package damage

import (
	"math/bits"
	"sync/atomic"
)

// DefaultBandHeight is the band height used when none is given.
const DefaultBandHeight = 16

// Bands tracks dirty row bands using an atomic bitmap.
// All methods are safe for concurrent use without external synchronization.
type Bands struct {
	// words holds one bit per band, 64 bands per word.
	words []atomic.Uint64

	rows       int
	bandHeight int
	bands      int
}

// New creates a tracker for a buffer of the given number of rows split into
// bands of bandHeight rows. A non-positive bandHeight selects
// DefaultBandHeight. All bands start clean. Returns nil if rows is not
// positive.
func New(rows, bandHeight int) *Bands {
	if rows <= 0 {
		return nil
	}
	if bandHeight <= 0 {
		bandHeight = DefaultBandHeight
	}

	bands := (rows + bandHeight - 1) / bandHeight
	return &Bands{
		words:      make([]atomic.Uint64, (bands+63)/64),
		rows:       rows,
		bandHeight: bandHeight,
		bands:      bands,
	}
}

// Rows returns the number of rows tracked.
func (b *Bands) Rows() int { return b.rows }

// BandHeight returns the number of rows per band.
func (b *Bands) BandHeight() int { return b.bandHeight }

// Len returns the number of bands.
func (b *Bands) Len() int { return b.bands }

// markBand sets one band bit. Out of range bands are ignored.
func (b *Bands) markBand(i int) {
	if i < 0 || i >= b.bands {
		return
	}
	b.words[i/64].Or(1 << (i & 63))
}

// MarkRows marks the bands covering rows y .. y+n-1 as dirty. Rows outside
// the buffer are ignored.
func (b *Bands) MarkRows(y, n int) {
	if b == nil || n <= 0 {
		return
	}
	y0 := max(y, 0)
	y1 := min(y+n-1, b.rows-1)
	if y0 > y1 {
		return
	}
	for i := y0 / b.bandHeight; i <= y1/b.bandHeight; i++ {
		b.markBand(i)
	}
}

// MarkAll marks every band as dirty.
func (b *Bands) MarkAll() {
	if b == nil {
		return
	}
	full := b.bands / 64
	for i := range full {
		b.words[i].Store(^uint64(0))
	}
	if rem := b.bands % 64; rem > 0 {
		b.words[full].Store((uint64(1) << rem) - 1)
	}
}

// Clear marks every band as clean.
func (b *Bands) Clear() {
	if b == nil {
		return
	}
	for i := range b.words {
		b.words[i].Store(0)
	}
}

// IsDirty reports whether band i is dirty.
func (b *Bands) IsDirty(i int) bool {
	if b == nil || i < 0 || i >= b.bands {
		return false
	}
	return b.words[i/64].Load()&(1<<(i&63)) != 0
}

// IsEmpty reports whether no band is dirty.
func (b *Bands) IsEmpty() bool {
	if b == nil {
		return true
	}
	for i := range b.words {
		if b.words[i].Load() != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of dirty bands.
func (b *Bands) Count() int {
	if b == nil {
		return 0
	}
	count := 0
	for i := range b.words {
		count += bits.OnesCount64(b.words[i].Load())
	}
	return count
}

// IsFull reports whether every band is dirty.
func (b *Bands) IsFull() bool {
	return b != nil && b.Count() == b.bands
}

// Runs calls fn for each maximal run of consecutive dirty bands, top to
// bottom, with the covered rows as the half-open range [y0, y1). The last
// band is cut at the buffer height. Flags are left unchanged.
func (b *Bands) Runs(fn func(y0, y1 int)) {
	if b == nil || fn == nil {
		return
	}

	start := -1
	for i := 0; i <= b.bands; i++ {
		dirty := i < b.bands && b.IsDirty(i)
		switch {
		case dirty && start < 0:
			start = i
		case !dirty && start >= 0:
			fn(start*b.bandHeight, min(i*b.bandHeight, b.rows))
			start = -1
		}
	}
}
