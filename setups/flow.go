package setups

// Flows over a hump on [0, 25], dry outside. The water surface is flat at 0.

type Subcritical1d struct{}

func (Subcritical1d) GetHeight(x, y float64) float64 {
	if x >= 0 && x <= 25 {
		return -Subcritical1d{}.GetBathymetry(x, y)
	}
	return 0
}

func (Subcritical1d) GetMomentumX(x, _ float64) float64 {
	if x >= 0 && x <= 25 {
		return 4.42
	}
	return 0
}

func (Subcritical1d) GetMomentumY(_, _ float64) float64 { return 0 }

func (Subcritical1d) GetBathymetry(x, _ float64) float64 {
	if x > 8 && x < 12 {
		return -1.8 - 0.05*(x-10)*(x-10)
	}
	return -2
}

type Supercritical1d struct{}

func (Supercritical1d) GetHeight(x, y float64) float64 {
	if x >= 0 && x <= 25 {
		return -Supercritical1d{}.GetBathymetry(x, y)
	}
	return 0
}

func (Supercritical1d) GetMomentumX(x, _ float64) float64 {
	if x >= 0 && x <= 25 {
		return 0.18
	}
	return 0
}

func (Supercritical1d) GetMomentumY(_, _ float64) float64 { return 0 }

func (Supercritical1d) GetBathymetry(x, _ float64) float64 {
	if x > 8 && x < 12 {
		return -0.13 - 0.05*(x-10)*(x-10)
	}
	return -0.33
}
