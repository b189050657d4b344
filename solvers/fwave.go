package solvers

// Flux returns the shallow water flux (hu, hu^2/h + 0.5*g*h^2)
func Flux(height, momentum float64) (flux [2]float64) {
	flux[0] = momentum
	flux[1] = MomentumFlux(height, momentum)
	return
}

// BathymetrySource is the centered source term -g * (bR - bL) * (hL + hR) / 2
func BathymetrySource(heightLeft, heightRight, bathymetryLeft, bathymetryRight float64) float64 {
	return -G * (bathymetryRight - bathymetryLeft) * 0.5 * (heightLeft + heightRight)
}

// FWaveNetUpdates decomposes the flux difference, corrected by the bathymetry
// source term, into two waves with Roe speeds. States are [h, hu, b] and the
// heights must be positive. A lake at rest produces zero net updates.
func FWaveNetUpdates(stateLeft, stateRight [3]float64) (netUpdateLeft, netUpdateRight [2]float64) {
	var (
		hL, huL, bL = stateLeft[0], stateLeft[1], stateLeft[2]
		hR, huR, bR = stateRight[0], stateRight[1], stateRight[2]
		eigenvalues = RoeEigenvalues(hL, hR, huL, huR)
		fluxL       = Flux(hL, huL)
		fluxR       = Flux(hR, huR)
		dxPsi       = BathymetrySource(hL, hR, bL, bR)
		jump        = [2]float64{
			fluxR[0] - fluxL[0],
			fluxR[1] - fluxL[1] - dxPsi,
		}
	)
	return decompose(eigenvalues, jump)
}
