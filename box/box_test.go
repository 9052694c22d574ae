package box

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArea(t *testing.T) {
	tests := []struct {
		name     string
		box      Box
		expected float32
	}{
		{
			name:     "Unit square",
			box:      Box{0, 0, 1, 1},
			expected: 1,
		},
		{
			name:     "Offset rectangle",
			box:      Box{10, 20, 40, 50},
			expected: 900,
		},
		{
			name:     "Degenerate zero width",
			box:      Box{5, 0, 5, 10},
			expected: 0,
		},
		{
			name:     "Degenerate point",
			box:      Box{3, 3, 3, 3},
			expected: 0,
		},
		{
			// Corner order is the caller's contract; the arithmetic result
			// is propagated, not clamped.
			name:     "Inverted corners",
			box:      Box{10, 0, 0, 10},
			expected: -100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.box.Area())
		})
	}
}

// Nesting a box inside another must never increase its area.
func TestAreaMonotonicity(t *testing.T) {
	outer := Box{0, 0, 100, 100}
	inners := []Box{
		{0, 0, 100, 100},
		{10, 10, 90, 90},
		{0, 0, 1, 1},
		{50, 50, 50, 50},
	}
	for _, inner := range inners {
		assert.LessOrEqual(t, inner.Area(), outer.Area())
	}
}

func TestIoU(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected float32
	}{
		{
			name:     "Identical boxes",
			a:        Box{0, 0, 100, 100},
			b:        Box{0, 0, 100, 100},
			expected: 1.0,
		},
		{
			name:     "No overlap",
			a:        Box{0, 0, 100, 100},
			b:        Box{200, 200, 300, 300},
			expected: 0.0,
		},
		{
			name:     "Touching edges",
			a:        Box{0, 0, 100, 100},
			b:        Box{100, 0, 200, 100},
			expected: 0.0,
		},
		{
			name:     "Half shifted overlap",
			a:        Box{0, 0, 100, 100},
			b:        Box{50, 50, 150, 150},
			expected: 0.142857, // 2500 / (10000 + 10000 - 2500)
		},
		{
			name:     "One inside other",
			a:        Box{0, 0, 100, 100},
			b:        Box{25, 25, 75, 75},
			expected: 0.25, // 2500 / 10000
		},
		{
			name:     "Degenerate box",
			a:        Box{10, 10, 10, 10},
			b:        Box{0, 0, 100, 100},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.a.IoU(tt.b), 0.001)
			// IoU(A, B) must equal IoU(B, A).
			assert.Equal(t, tt.a.IoU(tt.b), tt.b.IoU(tt.a))
		})
	}
}
