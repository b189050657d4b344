package setups

import (
	"fmt"
	"sort"
	"strings"
)

// Setup is a closed form initial condition sampled at a point (x, y)
type Setup interface {
	GetHeight(x, y float64) float64
	GetMomentumX(x, y float64) float64
	GetMomentumY(x, y float64) float64
	GetBathymetry(x, y float64) float64
}

type SetupType uint8

const (
	DAMBREAK1D SetupType = iota
	RARERARE1D
	SHOCKSHOCK1D
	SHOCKSHOCKREFLECTIVE1D
	SUBCRITICAL1D
	SUPERCRITICAL1D
	BATHYMETRY1D
	DAMBREAK2D
	BATHYMETRY2D
)

var (
	SetupNames = map[string]SetupType{
		"dambreak":               DAMBREAK1D,
		"dambreak1d":             DAMBREAK1D,
		"rare":                   RARERARE1D,
		"rarerare1d":             RARERARE1D,
		"shock":                  SHOCKSHOCK1D,
		"shockshock1d":           SHOCKSHOCK1D,
		"shockshockreflective1d": SHOCKSHOCKREFLECTIVE1D,
		"reflective":             SHOCKSHOCKREFLECTIVE1D,
		"subcritical1d":          SUBCRITICAL1D,
		"subcritical":            SUBCRITICAL1D,
		"supercritical1d":        SUPERCRITICAL1D,
		"supercritical":          SUPERCRITICAL1D,
		"bathymetry1d":           BATHYMETRY1D,
		"dambreak2d":             DAMBREAK2D,
		"bathymetry2d":           BATHYMETRY2D,
	}
	SetupPrintNames = []string{
		"DamBreak1d",
		"RareRare1d",
		"ShockShock1d",
		"ShockShockReflective1d",
		"Subcritical1d",
		"Supercritical1d",
		"Bathymetry1d",
		"DamBreak2d",
		"Bathymetry2d",
	}
)

func (st SetupType) String() string {
	if int(st) < len(SetupPrintNames) {
		return SetupPrintNames[st]
	}
	return fmt.Sprintf("SetupType(%d)", st)
}

// Is2D reports whether the setup varies in y
func (st SetupType) Is2D() bool {
	return st == DAMBREAK2D || st == BATHYMETRY2D
}

func NewSetupType(label string) (st SetupType, err error) {
	var (
		ok bool
	)
	if st, ok = SetupNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unable to use setup named %q, choose one of %s", label, setupList())
	}
	return
}

func setupList() string {
	names := make([]string, 0, len(SetupNames))
	for name := range SetupNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Parameter defaults, keys are lower case
var defaultParams = map[string]float64{
	"hl":     10,
	"hr":     5,
	"xdam":   5,
	"h":      10,
	"hu":     50,
	"xmid":   5,
	"hinner": 10,
	"houter": 5,
	"radius": 10,
	"xmax":   100,
	"ymax":   100,
}

func param(params map[string]float64, key string) float64 {
	for k, v := range params {
		if strings.ToLower(k) == key {
			return v
		}
	}
	return defaultParams[key]
}

// NewSetup builds a setup by name. Parameters missing from params take the
// values of defaultParams.
func NewSetup(name string, params map[string]float64) (s Setup, err error) {
	var (
		st SetupType
	)
	if st, err = NewSetupType(name); err != nil {
		return
	}
	p := func(key string) float64 { return param(params, key) }
	switch st {
	case DAMBREAK1D:
		s = NewDamBreak1d(p("hl"), p("hr"), p("xdam"))
	case RARERARE1D:
		s = NewRareRare1d(p("h"), p("hu"), p("xmid"))
	case SHOCKSHOCK1D:
		s = NewShockShock1d(p("h"), p("hu"), p("xmid"))
	case SHOCKSHOCKREFLECTIVE1D:
		s = NewShockShockReflective1d(p("h"), p("hu"))
	case SUBCRITICAL1D:
		s = Subcritical1d{}
	case SUPERCRITICAL1D:
		s = Supercritical1d{}
	case BATHYMETRY1D:
		s = NewBathymetry1d(p("hl"), p("hr"), p("xdam"))
	case DAMBREAK2D:
		s = NewDamBreak2d(p("hinner"), p("houter"), p("radius"), p("xmax"), p("ymax"))
	case BATHYMETRY2D:
		s = NewBathymetry2d(p("hinner"), p("houter"), p("radius"), p("xmax"), p("ymax"))
	}
	return
}
