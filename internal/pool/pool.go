// Package pool provides object pools for render-path allocations that
// otherwise churn every frame.
package pool

import (
	"sync"

	"charm.land/lipgloss/v2"
)

var layerSlicePool = sync.Pool{
	New: func() any {
		s := make([]*lipgloss.Layer, 0, 32)
		return &s
	},
}

// GetLayerSlice returns a pooled layer slice. Callers must reslice to zero
// length before use and return it with PutLayerSlice.
func GetLayerSlice() *[]*lipgloss.Layer {
	return layerSlicePool.Get().(*[]*lipgloss.Layer)
}

// PutLayerSlice returns a layer slice to the pool.
func PutLayerSlice(s *[]*lipgloss.Layer) {
	*s = (*s)[:0]
	layerSlicePool.Put(s)
}

var stylePool = sync.Pool{
	New: func() any {
		return lipgloss.NewStyle()
	},
}

// GetStyle returns a pooled base style.
func GetStyle() lipgloss.Style {
	return stylePool.Get().(lipgloss.Style)
}

// PutStyle returns a style to the pool.
func PutStyle(s lipgloss.Style) {
	stylePool.Put(s)
}
