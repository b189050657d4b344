package middle_state

import (
	"fmt"
	"math"

	"github.com/notargets/gotsunami/solvers"
)

// riemannProblem holds the exact wet-bed solution of a 1D shallow water
// Riemann problem without bathymetry.
type riemannProblem struct {
	hL, uL, aL   float64
	hR, uR, aR   float64
	hStar, uStar float64
}

func newRiemannProblem(hL, huL, hR, huR float64) (rp *riemannProblem, err error) {
	if hL <= 0 || hR <= 0 {
		err = fmt.Errorf("exact solution needs positive heights, have hL = %v, hR = %v", hL, hR)
		return
	}
	rp = &riemannProblem{
		hL: hL, uL: huL / hL, aL: math.Sqrt(solvers.G * hL),
		hR: hR, uR: huR / hR, aR: math.Sqrt(solvers.G * hR),
	}
	if 2*(rp.aL+rp.aR) <= rp.uR-rp.uL {
		err = fmt.Errorf("states (h, hu) = (%v, %v) and (%v, %v) create a dry middle state",
			hL, huL, hR, huR)
		return
	}
	if rp.hStar, err = fzero(rp.residual, rp.guess()); err != nil {
		return
	}
	fL, _ := waveCurve(rp.hStar, rp.hL)
	fR, _ := waveCurve(rp.hStar, rp.hR)
	rp.uStar = 0.5*(rp.uL+rp.uR) + 0.5*(fR-fL)
	return
}

// guess is the two rarefaction estimate of the middle height
func (rp *riemannProblem) guess() float64 {
	a := 0.5*(rp.aL+rp.aR) - 0.25*(rp.uR-rp.uL)
	return a * a / solvers.G
}

func (rp *riemannProblem) residual(h float64) (f, df float64) {
	fL, dfL := waveCurve(h, rp.hL)
	fR, dfR := waveCurve(h, rp.hR)
	return fL + fR + rp.uR - rp.uL, dfL + dfR
}

// waveCurve is the velocity jump across a shock (h > hK) or a rarefaction
// (h <= hK) connecting height hK to h, and its derivative in h.
func waveCurve(h, hK float64) (f, df float64) {
	if h > hK {
		gs := math.Sqrt(0.5 * solvers.G * (h + hK) / (h * hK))
		f = (h - hK) * gs
		df = gs - solvers.G*(h-hK)/(4*h*h*gs)
		return
	}
	f = 2 * (math.Sqrt(solvers.G*h) - math.Sqrt(solvers.G*hK))
	df = math.Sqrt(solvers.G / h)
	return
}

func fzero(f func(h float64) (y, dy float64), start float64) (h float64, err error) {
	var (
		tol     = 1.e-14
		maxIter = 100
	)
	h = start
	for i := 0; i < maxIter; i++ {
		y, dy := f(h)
		dh := y / dy
		hNew := h - dh
		if hNew <= 0 {
			hNew = 0.5 * h
		}
		if math.Abs(hNew-h) <= tol*math.Max(1, h) {
			return hNew, nil
		}
		h = hNew
	}
	err = fmt.Errorf("middle state did not converge after %d iterations, last value %v", maxIter, h)
	return
}

// sample evaluates the similarity solution at xi = x/t
func (rp *riemannProblem) sample(xi float64) (h, u float64) {
	var (
		g     = solvers.G
		aStar = math.Sqrt(g * rp.hStar)
	)
	if xi <= rp.uStar {
		if rp.hStar > rp.hL {
			q := math.Sqrt(0.5 * (rp.hStar + rp.hL) * rp.hStar / (rp.hL * rp.hL))
			if xi < rp.uL-rp.aL*q {
				return rp.hL, rp.uL
			}
			return rp.hStar, rp.uStar
		}
		switch {
		case xi <= rp.uL-rp.aL:
			return rp.hL, rp.uL
		case xi < rp.uStar-aStar:
			a := (rp.uL + 2*rp.aL - xi) / 3
			return a * a / g, (rp.uL + 2*rp.aL + 2*xi) / 3
		default:
			return rp.hStar, rp.uStar
		}
	}
	if rp.hStar > rp.hR {
		q := math.Sqrt(0.5 * (rp.hStar + rp.hR) * rp.hStar / (rp.hR * rp.hR))
		if xi > rp.uR+rp.aR*q {
			return rp.hR, rp.uR
		}
		return rp.hStar, rp.uStar
	}
	switch {
	case xi >= rp.uR+rp.aR:
		return rp.hR, rp.uR
	case xi > rp.uStar+aStar:
		a := (-rp.uR + 2*rp.aR + xi) / 3
		return a * a / g, (rp.uR - 2*rp.aR + 2*xi) / 3
	default:
		return rp.hStar, rp.uStar
	}
}

// MiddleState returns the exact height and momentum between the two waves
// emanating from the discontinuity (hL, huL) | (hR, huR).
func MiddleState(hL, huL, hR, huR float64) (hStar, huStar float64, err error) {
	var (
		rp *riemannProblem
	)
	if rp, err = newRiemannProblem(hL, huL, hR, huR); err != nil {
		return
	}
	return rp.hStar, rp.hStar * rp.uStar, nil
}

// Sample returns the exact height and momentum at xi = (x - x0)/t
func Sample(hL, huL, hR, huR, xi float64) (h, hu float64, err error) {
	var (
		rp *riemannProblem
		u  float64
	)
	if rp, err = newRiemannProblem(hL, huL, hR, huR); err != nil {
		return
	}
	h, u = rp.sample(xi)
	return h, h * u, nil
}

// Profile evaluates the exact solution at time t at the points X for a
// discontinuity located at x0. At t <= 0 the initial data is returned.
func Profile(hL, huL, hR, huR, x0, t float64, X []float64) (H, HU []float64, err error) {
	var (
		rp *riemannProblem
	)
	if rp, err = newRiemannProblem(hL, huL, hR, huR); err != nil {
		return
	}
	H, HU = make([]float64, len(X)), make([]float64, len(X))
	for i, x := range X {
		if t <= 0 {
			if x < x0 {
				H[i], HU[i] = hL, huL
			} else {
				H[i], HU[i] = hR, huR
			}
			continue
		}
		h, u := rp.sample((x - x0) / t)
		H[i], HU[i] = h, h*u
	}
	return
}
