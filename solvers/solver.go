package solvers

import (
	"math"

	"github.com/notargets/gotsunami/types"
)

const (
	G     = 9.80665     // gravitational acceleration
	GSqrt = 3.131557121 // sqrt(G)
)

// NetUpdates solves the Riemann problem at a single edge with the selected
// solver. States are ordered [height, momentum, bathymetry]; the Roe solver
// ignores the bathymetry entry.
//
// A dry side (height <= 0) is replaced by the mirror image of the wet side so
// that it acts as a reflecting wall. Two dry sides produce zero updates.
func NetUpdates(st types.SolverType, stateLeft, stateRight [3]float64) (netUpdateLeft, netUpdateRight [2]float64) {
	var (
		dryLeft, dryRight = stateLeft[0] <= 0, stateRight[0] <= 0
	)
	switch {
	case dryLeft && dryRight:
		return
	case dryLeft:
		stateLeft = Mirror(stateRight)
	case dryRight:
		stateRight = Mirror(stateLeft)
	}
	switch st {
	case types.FWave:
		netUpdateLeft, netUpdateRight = FWaveNetUpdates(stateLeft, stateRight)
	default:
		netUpdateLeft, netUpdateRight = RoeNetUpdates(stateLeft[0], stateRight[0], stateLeft[1], stateRight[1])
	}
	return
}

// Mirror returns the state seen across a reflecting wall
func Mirror(state [3]float64) [3]float64 {
	return [3]float64{state[0], -state[1], state[2]}
}

// RoeEigenvalues returns the Roe-averaged wave speeds s1 < s2
func RoeEigenvalues(heightLeft, heightRight, momentumLeft, momentumRight float64) (eigenvalues [2]float64) {
	var (
		sqrtHL, sqrtHR = math.Sqrt(heightLeft), math.Sqrt(heightRight)
		uL, uR         = momentumLeft / heightLeft, momentumRight / heightRight
		hRoe           = 0.5 * (heightLeft + heightRight)
		uRoe           = (uL*sqrtHL + uR*sqrtHR) / (sqrtHL + sqrtHR)
		celerity       = GSqrt * math.Sqrt(hRoe)
	)
	eigenvalues[0] = uRoe - celerity
	eigenvalues[1] = uRoe + celerity
	return
}

// InvertedEigenmatrix inverts R = [[1, 1], [s1, s2]]
func InvertedEigenmatrix(eigenvalues [2]float64) (rInv [2][2]float64) {
	var (
		oodet = 1. / (eigenvalues[1] - eigenvalues[0])
	)
	rInv[0][0] = oodet * eigenvalues[1]
	rInv[0][1] = -oodet
	rInv[1][0] = -oodet * eigenvalues[0]
	rInv[1][1] = oodet
	return
}

// MomentumFlux is hu^2/h + 0.5*g*h^2
func MomentumFlux(height, momentum float64) float64 {
	return momentum*momentum/height + 0.5*G*height*height
}

// decompose splits a jump into the two eigenvector directions and assigns
// each wave upwind: negative speeds update the left cell, all others the right.
func decompose(eigenvalues [2]float64, jump [2]float64) (netUpdateLeft, netUpdateRight [2]float64) {
	var (
		rInv  = InvertedEigenmatrix(eigenvalues)
		alpha [2]float64
	)
	for i := 0; i < 2; i++ {
		alpha[i] = rInv[i][0]*jump[0] + rInv[i][1]*jump[1]
	}
	for i := 0; i < 2; i++ {
		wave := [2]float64{alpha[i], alpha[i] * eigenvalues[i]}
		if eigenvalues[i] < 0 {
			netUpdateLeft[0] += wave[0]
			netUpdateLeft[1] += wave[1]
		} else {
			netUpdateRight[0] += wave[0]
			netUpdateRight[1] += wave[1]
		}
	}
	return
}
