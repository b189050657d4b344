package setups

import "math"

// Profile1d replaces the bathymetry of Base with a sampled profile, cell i
// covering [i*Dx, (i+1)*Dx). The water surface of Base is kept, cells whose
// bottom rises above it are dry.
type Profile1d struct {
	Base    Setup
	Profile []float64
	Dx      float64
}

func NewProfile1d(base Setup, profile []float64, dx float64) *Profile1d {
	return &Profile1d{Base: base, Profile: profile, Dx: dx}
}

func (pr *Profile1d) GetHeight(x, y float64) float64 {
	var (
		surface = pr.Base.GetHeight(x, y) + pr.Base.GetBathymetry(x, y)
	)
	return math.Max(0, surface-pr.GetBathymetry(x, y))
}

func (pr *Profile1d) GetMomentumX(x, y float64) float64 {
	if pr.GetHeight(x, y) == 0 {
		return 0
	}
	return pr.Base.GetMomentumX(x, y)
}

func (pr *Profile1d) GetMomentumY(x, y float64) float64 {
	if pr.GetHeight(x, y) == 0 {
		return 0
	}
	return pr.Base.GetMomentumY(x, y)
}

func (pr *Profile1d) GetBathymetry(x, _ float64) float64 {
	if len(pr.Profile) == 0 {
		return 0
	}
	i := int(math.Floor(x / pr.Dx))
	switch {
	case i < 0:
		i = 0
	case i >= len(pr.Profile):
		i = len(pr.Profile) - 1
	}
	return pr.Profile[i]
}
