package ggplot

import "sync"

// DrawAreaModel is the state a Viewer renders: a background color and the
// chart drawn over it.
type DrawAreaModel struct {
	Background BackendColor
	Chart      Chart
}

// NewDrawAreaModel returns a model with a white background and no chart.
func NewDrawAreaModel() *DrawAreaModel {
	return &DrawAreaModel{Background: White}
}

// SharedModel guards a DrawAreaModel shared between the code that updates
// the chart and the code that renders it.
type SharedModel struct {
	mu    sync.RWMutex
	model DrawAreaModel
}

// NewSharedModel wraps m. A nil m starts from NewDrawAreaModel.
func NewSharedModel(m *DrawAreaModel) *SharedModel {
	if m == nil {
		m = NewDrawAreaModel()
	}
	return &SharedModel{model: *m}
}

// Update runs fn with exclusive access to the model.
func (s *SharedModel) Update(fn func(m *DrawAreaModel)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.model)
}

// Read runs fn with shared access to a copy of the model.
func (s *SharedModel) Read(fn func(m DrawAreaModel)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.model)
}

// Viewer renders a shared model onto a canvas, one pass per call.
type Viewer struct {
	model *SharedModel
	opts  []BackendOption
}

// NewViewer creates a viewer over a private copy of m.
func NewViewer(m *DrawAreaModel, opts ...BackendOption) *Viewer {
	return NewSharedViewer(NewSharedModel(m), opts...)
}

// NewSharedViewer creates a viewer over a model shared with other code.
func NewSharedViewer(m *SharedModel, opts ...BackendOption) *Viewer {
	return &Viewer{model: m, opts: opts}
}

// Model returns the shared model.
func (v *Viewer) Model() *SharedModel {
	return v.model
}

// Plot paints the background over bounds, plots the chart and presents.
// The model stays write-locked for the whole pass.
func (v *Viewer) Plot(bounds Bounds, canvas Canvas) error {
	v.model.mu.Lock()
	defer v.model.mu.Unlock()

	return Paint(bounds, canvas, func(b *Backend) error {
		w, h := b.Size()
		bg := ShapeStyle{Fill: v.model.model.Background}
		if err := b.DrawRect(C(0, 0), C(int(w), int(h)), bg, true); err != nil {
			return err
		}
		if v.model.model.Chart != nil {
			if err := v.model.model.Chart.Plot(b); err != nil {
				return err
			}
		}
		return b.Present()
	}, v.opts...)
}

// Render is Plot for hosts that cannot handle errors: failures are logged.
func (v *Viewer) Render(bounds Bounds, canvas Canvas) {
	if err := v.Plot(bounds, canvas); err != nil {
		Logger().Error("ggplot: failed to plot chart", "error", err)
	}
}
