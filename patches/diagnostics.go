package patches

import (
	"math"

	"github.com/notargets/gotsunami/solvers"
	"github.com/notargets/gotsunami/utils"
)

// TotalMass is the sum of the interior heights
func TotalMass(wp WavePropagation) float64 {
	return utils.Sum(wp.GetHeight())
}

func MaxHeight(wp WavePropagation) (hMax float64) {
	_, hMax = utils.MinMax(wp.GetHeight())
	return
}

// MaxWaveSpeed is the largest |u| + sqrt(g*h) over the wet interior cells,
// using the larger velocity component in 2D.
func MaxWaveSpeed(wp WavePropagation) (speed float64) {
	var (
		h, hu, hv = wp.GetHeight(), wp.GetMomentumX(), wp.GetMomentumY()
	)
	for i, height := range h {
		if height <= 0 {
			continue
		}
		u := math.Abs(hu[i] / height)
		if hv != nil {
			u = math.Max(u, math.Abs(hv[i]/height))
		}
		speed = math.Max(speed, u+solvers.GSqrt*math.Sqrt(height))
	}
	return
}
