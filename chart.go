package ggplot

// Chart draws itself through the drawing protocol.
type Chart interface {
	Plot(b *Backend) error
}

// ChartFunc adapts an ordinary function to the Chart interface.
type ChartFunc func(b *Backend) error

// Plot calls f(b).
func (f ChartFunc) Plot(b *Backend) error {
	return f(b)
}

// Charts plots several charts in order onto the same backend.
// Plotting stops at the first error.
type Charts []Chart

// Plot plots each chart in order.
func (cs Charts) Plot(b *Backend) error {
	for _, c := range cs {
		if c == nil {
			continue
		}
		if err := c.Plot(b); err != nil {
			return err
		}
	}
	return nil
}
