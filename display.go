// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	intImage "github.com/gogpu/headless/internal/image"
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// displayCache is the GPU-presentable copy of a Pixmap. It keeps an RGBA
// staging buffer and the texture built from it, and refreshes both only when
// the pixmap generation moved since the last sync.
type displayCache struct {
	staging []byte
	width   int
	height  int
	format  PixelFormat

	texture gpucontext.Texture
	synced  uint64 // pixmap generation the texture reflects
	valid   bool   // texture holds the staging contents
	uploads int
}

// Present draws the framebuffer at (x, y) through dc.
//
// The GPU texture is created on first use and recreated when the buffer
// size or format changed. Its contents are uploaded again only when the
// buffer was modified since the previous Present, and then only the row
// bands that were touched. Present on an unallocated framebuffer draws
// nothing and returns nil.
func (fb *Framebuffer) Present(dc gpucontext.TextureDrawer, x, y float32) error {
	if dc == nil {
		return ErrNilDrawer
	}
	if !fb.pix.IsAllocated() {
		return nil
	}
	if err := fb.cache.sync(dc, &fb.pix); err != nil {
		return err
	}
	if err := dc.DrawTexture(fb.cache.texture, x, y); err != nil {
		return fmt.Errorf("headless: draw texture: %w", err)
	}
	return nil
}

// Uploads returns how many times texture contents were sent to the GPU.
func (fb *Framebuffer) Uploads() int {
	return fb.cache.uploads
}

// Close destroys the cached texture. The framebuffer stays usable; the next
// Present creates a new texture.
func (fb *Framebuffer) Close() {
	fb.cache.release()
}

// sync brings the texture up to date with p.
func (c *displayCache) sync(dc gpucontext.TextureDrawer, p *Pixmap) error {
	resized := c.width != p.width || c.height != p.height || c.format != p.format
	if resized {
		c.release()
		c.width, c.height, c.format = p.width, p.height, p.format
		c.staging = make([]byte, p.width*p.height*4)
		Logger().Debug("headless: display cache resized",
			"width", p.width, "height", p.height, "format", p.format.String())
	}
	if c.valid && c.synced == p.generation {
		return nil
	}

	full := !c.valid || p.damage.IsFull()
	if full {
		c.convert(p, 0, p.height)
	} else {
		p.damage.Runs(func(y0, y1 int) { c.convert(p, y0, y1) })
	}
	if err := c.upload(dc, p, full); err != nil {
		// Staging may be ahead of the texture; force a full upload next time.
		c.valid = false
		Logger().Warn("headless: texture upload failed", "err", err)
		return err
	}

	c.uploads++
	c.valid = true
	c.synced = p.generation
	p.damage.Clear()
	return nil
}

// convert refreshes staging rows y0 .. y1-1 from the pixmap.
func (c *displayCache) convert(p *Pixmap, y0, y1 int) {
	ch := p.info.Channels
	src := p.data[y0*p.width*ch : y1*p.width*ch]
	dst := c.staging[y0*p.width*4 : y1*p.width*4]
	intImage.ToRGBA(dst, src, p.info)
}

// upload sends staging to the texture. When full is false only the dirty
// row bands are sent, if the texture supports region updates.
func (c *displayCache) upload(dc gpucontext.TextureDrawer, p *Pixmap, full bool) error {
	if c.texture == nil {
		return c.create(dc)
	}

	if region, ok := c.texture.(gpucontext.TextureRegionUpdater); ok && !full {
		var err error
		bands := 0
		rowBytes := c.width * 4
		p.damage.Runs(func(y0, y1 int) {
			if err != nil {
				return
			}
			bands++
			err = region.UpdateRegion(0, y0, c.width, y1-y0, c.staging[y0*rowBytes:y1*rowBytes])
		})
		if err != nil {
			return fmt.Errorf("headless: update texture region: %w", err)
		}
		Logger().Debug("headless: partial upload", "runs", bands)
		return nil
	}

	if updater, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(c.staging); err != nil {
			return fmt.Errorf("headless: update texture: %w", err)
		}
		return nil
	}

	// The texture cannot be rewritten in place; replace it.
	c.release()
	return c.create(dc)
}

// create builds a new texture from staging.
func (c *displayCache) create(dc gpucontext.TextureDrawer) error {
	creator := dc.TextureCreator()
	if creator == nil {
		return ErrNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(c.width, c.height, c.staging)
	if err != nil {
		return fmt.Errorf("headless: create texture: %w", err)
	}
	c.texture = tex
	Logger().Debug("headless: texture created", "width", c.width, "height", c.height)
	return nil
}

// release destroys the texture and forgets its contents.
func (c *displayCache) release() {
	if c.texture != nil {
		if d, ok := c.texture.(textureDestroyer); ok {
			d.Destroy()
		}
	}
	c.texture = nil
	c.valid = false
}
