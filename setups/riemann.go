package setups

// RareRare1d sends two rarefaction waves out of xMid: the momentum points
// away from the middle on both sides.
type RareRare1d struct {
	Height, Momentum, MidPos float64
}

func NewRareRare1d(height, momentum, midPos float64) *RareRare1d {
	return &RareRare1d{Height: height, Momentum: momentum, MidPos: midPos}
}

func (rr *RareRare1d) GetHeight(_, _ float64) float64 { return rr.Height }

func (rr *RareRare1d) GetMomentumX(x, _ float64) float64 {
	if x < rr.MidPos {
		return -rr.Momentum
	}
	return rr.Momentum
}

func (rr *RareRare1d) GetMomentumY(_, _ float64) float64  { return 0 }
func (rr *RareRare1d) GetBathymetry(_, _ float64) float64 { return 0 }

// ShockShock1d collides two streams at xMid
type ShockShock1d struct {
	Height, Momentum, MidPos float64
}

func NewShockShock1d(height, momentum, midPos float64) *ShockShock1d {
	return &ShockShock1d{Height: height, Momentum: momentum, MidPos: midPos}
}

func (ss *ShockShock1d) GetHeight(_, _ float64) float64 { return ss.Height }

func (ss *ShockShock1d) GetMomentumX(x, _ float64) float64 {
	if x < ss.MidPos {
		return ss.Momentum
	}
	return -ss.Momentum
}

func (ss *ShockShock1d) GetMomentumY(_, _ float64) float64  { return 0 }
func (ss *ShockShock1d) GetBathymetry(_, _ float64) float64 { return 0 }

// ShockShockReflective1d is a uniform stream, run against a reflecting
// boundary it produces the same shock as ShockShock1d.
type ShockShockReflective1d struct {
	Height, Momentum float64
}

func NewShockShockReflective1d(height, momentum float64) *ShockShockReflective1d {
	return &ShockShockReflective1d{Height: height, Momentum: momentum}
}

func (sr *ShockShockReflective1d) GetHeight(_, _ float64) float64     { return sr.Height }
func (sr *ShockShockReflective1d) GetMomentumX(_, _ float64) float64  { return sr.Momentum }
func (sr *ShockShockReflective1d) GetMomentumY(_, _ float64) float64  { return 0 }
func (sr *ShockShockReflective1d) GetBathymetry(_, _ float64) float64 { return 0 }
