package utils

import (
	"gonum.org/v1/gonum/floats"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// MinMax returns zeros for an empty slice
func MinMax(v []float64) (min, max float64) {
	if len(v) == 0 {
		return
	}
	return floats.Min(v), floats.Max(v)
}

func Sum(v []float64) float64 {
	return floats.Sum(v)
}

// CellCenters returns (i+0.5)*dx for N cells
func CellCenters(N int, dx float64) (x []float64) {
	x = make([]float64, N)
	switch N {
	case 0:
	case 1:
		x[0] = 0.5 * dx
	default:
		floats.Span(x, 0.5*dx, (float64(N)-0.5)*dx)
	}
	return
}

// AddSlices returns a + b elementwise
func AddSlices(a, b []float64) (c []float64) {
	c = make([]float64, len(a))
	floats.AddTo(c, a, b)
	return
}
