package setups

import "math"

// DamBreak1d places a dam at xDam holding back heightLeft against heightRight
type DamBreak1d struct {
	HeightLeft, HeightRight float64
	LocationDam             float64
}

func NewDamBreak1d(heightLeft, heightRight, locationDam float64) *DamBreak1d {
	return &DamBreak1d{
		HeightLeft:  heightLeft,
		HeightRight: heightRight,
		LocationDam: locationDam,
	}
}

func (db *DamBreak1d) GetHeight(x, _ float64) float64 {
	if x < db.LocationDam {
		return db.HeightLeft
	}
	return db.HeightRight
}

func (db *DamBreak1d) GetMomentumX(_, _ float64) float64  { return 0 }
func (db *DamBreak1d) GetMomentumY(_, _ float64) float64  { return 0 }
func (db *DamBreak1d) GetBathymetry(_, _ float64) float64 { return 0 }

// Bathymetry1d is a dam break over a flat bottom at -2 with a small ridge at
// 7.5 < x < 7.6. Heights describe the surface elevation on both sides.
type Bathymetry1d struct {
	DamBreak1d
}

func NewBathymetry1d(heightLeft, heightRight, locationDam float64) *Bathymetry1d {
	return &Bathymetry1d{DamBreak1d: *NewDamBreak1d(heightLeft, heightRight, locationDam)}
}

func (bt *Bathymetry1d) GetHeight(x, y float64) float64 {
	return bt.DamBreak1d.GetHeight(x, y) - bt.GetBathymetry(x, y)
}

func (bt *Bathymetry1d) GetBathymetry(x, _ float64) float64 {
	if x > 7.5 && x < 7.6 {
		return -1
	}
	return -2
}

// DamBreak2d is a cylindrical column of water of HeightInner centred in the
// domain [0, xMax]x[0, yMax], surrounded by HeightOuter.
type DamBreak2d struct {
	HeightInner, HeightOuter float64
	RadiusDam                float64
	CenterDam                [2]float64
}

func NewDamBreak2d(heightInner, heightOuter, radiusDam, xMax, yMax float64) *DamBreak2d {
	return &DamBreak2d{
		HeightInner: heightInner,
		HeightOuter: heightOuter,
		RadiusDam:   radiusDam,
		CenterDam:   [2]float64{0.5 * xMax, 0.5 * yMax},
	}
}

func (db *DamBreak2d) GetHeight(x, y float64) float64 {
	if math.Hypot(x-db.CenterDam[0], y-db.CenterDam[1]) < db.RadiusDam {
		return db.HeightInner
	}
	return db.HeightOuter
}

func (db *DamBreak2d) GetMomentumX(_, _ float64) float64  { return 0 }
func (db *DamBreak2d) GetMomentumY(_, _ float64) float64  { return 0 }
func (db *DamBreak2d) GetBathymetry(_, _ float64) float64 { return 0 }

// Bathymetry2d is the 2D dam break over a bottom at -2 with a raised square
// at 7.5 < x, y < 8.
type Bathymetry2d struct {
	DamBreak2d
}

func NewBathymetry2d(heightInner, heightOuter, radiusDam, xMax, yMax float64) *Bathymetry2d {
	return &Bathymetry2d{DamBreak2d: *NewDamBreak2d(heightInner, heightOuter, radiusDam, xMax, yMax)}
}

func (bt *Bathymetry2d) GetBathymetry(x, y float64) float64 {
	if x > 7.5 && x < 8 && y > 7.5 && y < 8 {
		return -1
	}
	return -2
}
