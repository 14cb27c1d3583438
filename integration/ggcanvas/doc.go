// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas presents ggplot charts in gogpu GPU-accelerated windows.
//
// The data flow is:
//
//	Viewer (plot) -> raster.Canvas (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	canvas := ggcanvas.MustNew(app.GPUContextProvider(), 800, 600)
//	defer canvas.Close()
//
//	viewer := ggplot.NewViewer(&ggplot.DrawAreaModel{Background: ggplot.White, Chart: chart})
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.Draw(viewer)
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// The texture is created lazily on the first RenderTo and updated in
// place afterwards, only when the canvas has been drawn since the last
// upload. After a Resize the old texture is kept until its replacement
// has been written.
//
// This package talks to the GPU only through gpucontext interfaces, so it
// does not import gogpu itself.
package ggcanvas
