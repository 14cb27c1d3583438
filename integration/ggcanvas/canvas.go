// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/raster"
)

// Errors returned by Canvas methods.
var (
	ErrCanvasClosed      = errors.New("ggcanvas: use of closed canvas")
	ErrInvalidDimensions = errors.New("ggcanvas: canvas size must be positive")
	ErrNilProvider       = errors.New("ggcanvas: no device provider")
	ErrNilViewer         = errors.New("ggcanvas: no viewer to draw")
)

// Canvas plots charts into a CPU image and presents that image in a gogpu
// window through a GPU texture. It must be used from one goroutine, which
// in practice is the window's draw loop.
type Canvas struct {
	img      *raster.Canvas
	provider gpucontext.DeviceProvider
	tex      textureSlot
	size     image.Point
	dirty    bool // image changed since the last upload
	resized  bool // texture no longer matches size
	closed   bool
}

// New returns a w x h canvas bound to provider, typically
// gogpu.App.GPUContextProvider(). opts tune the raster canvas.
func New(provider gpucontext.DeviceProvider, w, h int, opts ...raster.Option) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if err := checkSize(w, h); err != nil {
		return nil, err
	}

	info := provider.AdapterInfo()
	log := ggplot.Logger().With("adapter", info.Name, "type", info.Type.String())
	if f := provider.SurfaceFormat(); f == gputypes.TextureFormatUndefined {
		log.Info("ggcanvas: headless provider, no surface attached")
	} else {
		log.Debug("ggcanvas: presenting to surface", "format", f.String())
	}

	return &Canvas{
		img:      raster.New(w, h, opts...),
		provider: provider,
		size:     image.Pt(w, h),
		dirty:    true,
	}, nil
}

// MustNew calls New and panics on error.
func MustNew(provider gpucontext.DeviceProvider, w, h int, opts ...raster.Option) *Canvas {
	c, err := New(provider, w, h, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, w, h)
	}
	return nil
}

func (c *Canvas) Width() int { return c.size.X }
func (c *Canvas) Height() int { return c.size.Y }
func (c *Canvas) Size() (w, h int) { return c.size.X, c.size.Y }

// Texture returns the current texture without flushing. It is nil until
// the first RenderTo.
func (c *Canvas) Texture() gpucontext.Texture { return c.tex.live }

// Image exposes the CPU image. It is nil after Close.
func (c *Canvas) Image() *image.RGBA {
	if c.closed {
		return nil
	}
	return c.img.Image()
}

// Draw runs one plot pass of v over the full canvas. The image is marked
// for upload even when the pass fails part way.
func (c *Canvas) Draw(v *ggplot.Viewer) error {
	switch {
	case c.closed:
		return ErrCanvasClosed
	case v == nil:
		return ErrNilViewer
	}
	defer c.MarkDirty()
	return v.Plot(ggplot.Bounds{Width: float64(c.size.X), Height: float64(c.size.Y)}, c.img)
}

// MarkDirty schedules an upload, for callers that paint Image directly.
func (c *Canvas) MarkDirty() { c.dirty = true }

// IsDirty reports whether the image has changes the GPU has not seen.
func (c *Canvas) IsDirty() bool { return c.dirty }

// Resize clears the image to the new size. The texture is rebuilt by the
// next RenderTo.
func (c *Canvas) Resize(w, h int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if err := checkSize(w, h); err != nil {
		return err
	}
	if image.Pt(w, h) == c.size {
		return nil
	}
	c.img.Resize(w, h)
	c.size = image.Pt(w, h)
	c.resized, c.dirty = true, true
	return nil
}

// Flush pushes pending image changes to the GPU and returns the texture.
// Until RenderTo has created the first texture there is nothing to push
// to, and Flush returns a nil texture.
func (c *Canvas) Flush() (gpucontext.Texture, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if c.resized {
		c.tex.retire()
		c.resized = false
	}
	if c.dirty || c.tex.live == nil {
		if err := c.tex.upload(c.img.Data()); err != nil {
			return nil, err
		}
		c.dirty = false
	}
	return c.tex.live, nil
}

// Provider returns the device provider, or nil after Close.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// Close destroys the canvas textures. Further calls do nothing.
func (c *Canvas) Close() error {
	if !c.closed {
		c.closed = true
		c.tex.release()
		c.provider = nil
	}
	return nil
}
