package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRandom struct{ v float64 }

func (f fixedRandom) Float64() float64 { return f.v }

func TestStarfieldScrollsAndWraps(t *testing.T) {
	sf := NewStarfield(4, 100, 50, fixedRandom{0.5})
	require.Len(t, sf.Stars, 4)
	for _, s := range sf.Stars {
		assert.Equal(t, 50.0, s.X)
		assert.Equal(t, 25.0, s.Y)
		assert.Equal(t, 60.0, s.Speed)
	}

	sf.Update(0.25)
	assert.InDelta(t, 40.0, sf.Stars[0].Y, 1e-9)

	sf.Update(0.25)
	assert.InDelta(t, 5.0, sf.Stars[0].Y, 1e-9)
	for _, s := range sf.Stars {
		assert.GreaterOrEqual(t, s.Y, 0.0)
		assert.Less(t, s.Y, sf.H)
	}
}
