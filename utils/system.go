package utils

import "math"

func IsNan(A any) bool {
	switch v := A.(type) {
	case float64:
		return math.IsNaN(v)
	case []float64:
		for _, f := range v {
			if math.IsNaN(f) {
				return true
			}
		}
	case [2]float64:
		return math.IsNaN(v[0]) || math.IsNaN(v[1])
	case [3]float64:
		return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
	}
	return false
}
