package solvers

// RoeNetUpdates computes the net updates of the classical Roe solver. There is
// no bathymetry source term, so results are only meaningful on a flat bed.
// Heights must be positive.
func RoeNetUpdates(heightLeft, heightRight, momentumLeft, momentumRight float64) (netUpdateLeft, netUpdateRight [2]float64) {
	var (
		eigenvalues = RoeEigenvalues(heightLeft, heightRight, momentumLeft, momentumRight)
		jump        = [2]float64{
			momentumRight - momentumLeft,
			MomentumFlux(heightRight, momentumRight) - MomentumFlux(heightLeft, momentumLeft),
		}
	)
	return decompose(eigenvalues, jump)
}
