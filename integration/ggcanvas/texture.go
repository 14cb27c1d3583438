// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// textureSlot tracks the GPU copy of the chart image across resizes.
//
// A texture replaced by a resize can still be referenced by command
// buffers in flight, so it is parked in retired and only destroyed once
// its successor has been created.
type textureSlot struct {
	live    gpucontext.Texture
	retired gpucontext.Texture
	missing bool // live must be created from the next draw context
}

// retire parks the live texture so the next flush recreates it.
func (s *textureSlot) retire() {
	if s.live == nil {
		return
	}
	destroy(s.retired)
	s.retired, s.live = s.live, nil
}

// upload writes pix into the live texture, or flags it as missing.
func (s *textureSlot) upload(pix []byte) error {
	if s.live == nil {
		s.missing = true
		return nil
	}
	if u, ok := s.live.(gpucontext.TextureUpdater); ok {
		if err := u.UpdateData(pix); err != nil {
			return fmt.Errorf("ggcanvas: upload chart image: %w", err)
		}
	}
	return nil
}

// create builds the missing texture through tc and drops the retired one.
func (s *textureSlot) create(tc gpucontext.TextureCreator, w, h int, pix []byte) error {
	tex, err := tc.NewTextureFromRGBA(w, h, pix)
	if err != nil {
		return fmt.Errorf("ggcanvas: create %dx%d texture: %w", w, h, err)
	}
	// Raster output is alpha-premultiplied.
	if p, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		p.SetPremultiplied(true)
	}
	s.live, s.missing = tex, false
	destroy(s.retired)
	s.retired = nil
	return nil
}

// release destroys everything the slot holds.
func (s *textureSlot) release() {
	destroy(s.retired)
	destroy(s.live)
	*s = textureSlot{}
}

func destroy(tex gpucontext.Texture) {
	if d, ok := tex.(interface{ Destroy() }); ok {
		d.Destroy()
	}
}
