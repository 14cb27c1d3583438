// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"

	"github.com/gogpu/gpucontext"
)

// ErrNoTextureCreator means the draw context cannot allocate textures, so
// the chart has nowhere to be uploaded.
var ErrNoTextureCreator = errors.New("ggcanvas: draw context has no TextureCreator")

// RenderTo presents the chart at the window origin:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToPosition(dc, 0, 0)
}

// RenderToPosition flushes the canvas, creating its texture through dc on
// first use or after a resize, and draws it with the top-left corner at
// (x, y).
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	tex, err := c.Flush()
	if err != nil {
		return err
	}
	if c.tex.missing {
		tc := dc.TextureCreator()
		if tc == nil {
			return ErrNoTextureCreator
		}
		if err := c.tex.create(tc, c.size.X, c.size.Y, c.img.Data()); err != nil {
			return err
		}
		tex = c.tex.live
	}
	return dc.DrawTexture(tex, x, y)
}
