package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath(t *testing.T) {
	{
		min, max := MinMax([]float64{3, -1, 7, 2})
		assert.Equal(t, -1., min)
		assert.Equal(t, 7., max)
		min, max = MinMax(nil)
		assert.Equal(t, 0., min)
		assert.Equal(t, 0., max)
	}
	{
		assert.Equal(t, 6., Sum(ConstArray(3, 2)))
		assert.Equal(t, []float64{1, 3}, AddSlices([]float64{0, 1}, []float64{1, 2}))
	}
	{
		x := CellCenters(4, 0.5)
		assert.InDeltaSlice(t, []float64{0.25, 0.75, 1.25, 1.75}, x, 1.e-14)
		assert.Equal(t, []float64{0.5}, CellCenters(1, 1))
		assert.Empty(t, CellCenters(0, 1))
	}
}
