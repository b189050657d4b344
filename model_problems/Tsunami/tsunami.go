package Tsunami

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gotsunami/InputParameters"
	"github.com/notargets/gotsunami/middle_state"
	"github.com/notargets/gotsunami/patches"
	"github.com/notargets/gotsunami/readfiles"
	"github.com/notargets/gotsunami/setups"
	"github.com/notargets/gotsunami/snapshot"
	"github.com/notargets/gotsunami/types"
	"github.com/notargets/gotsunami/utils"
)

type Tsunami struct {
	// Input parameters
	IP         *InputParameters.InputParametersTsunami
	Solver     types.SolverType
	Boundaries []types.BoundaryType
	SetupType  setups.SetupType
	Setup      setups.Setup
	Patch      patches.WavePropagation
	NX, NY     int

	// Cell size, fixed time step and the ratio dt/dxy
	Dxy, Dt, Scaling float64
	InitialMass      float64
	SimTime          float64
	TimeSteps        int
	Frames           int
	plotOnce         sync.Once
	chart            *chart2d.Chart2D
	colorMap         *utils2.ColorMap
	fmin, fmax       float32
}

func NewTsunami(ip *InputParameters.InputParametersTsunami) (c *Tsunami, err error) {
	var (
		speedMax float64
	)
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Tsunami{
		IP:  ip,
		NX:  ip.CellsX,
		NY:  1,
		Dxy: ip.Dxy(),
	}
	c.Solver, _ = ip.SolverType()
	c.Boundaries, _ = ip.BoundaryTypes()
	c.SetupType, _ = setups.NewSetupType(ip.Setup)
	if c.Setup, err = setups.NewSetup(ip.Setup, ip.SetupParams); err != nil {
		return nil, err
	}
	if len(ip.BathymetryFile) != 0 {
		var profile []float64
		if profile, err = readfiles.ReadBathymetry(ip.BathymetryFile); err != nil {
			return nil, err
		}
		c.Setup = setups.NewProfile1d(c.Setup, profile, ip.DomainSize/float64(len(profile)))
	}
	if ip.Is1D() {
		c.Patch = patches.NewWavePropagation1d(c.NX)
	} else {
		c.NY = ip.CellsY
		c.Patch = patches.NewWavePropagation2d(c.NX, c.NY)
	}
	c.Initialize()
	if speedMax = patches.MaxWaveSpeed(c.Patch); speedMax == 0 {
		return nil, fmt.Errorf("setup %s has no wet cells", c.SetupType)
	}
	// The time step is derived once, changes of the wave speed are ignored
	c.Dt = ip.CFL * c.Dxy / speedMax
	c.Scaling = c.Dt / c.Dxy
	c.InitialMass = patches.TotalMass(c.Patch)
	return
}

// Initialize samples the setup at the cell origins (ix*dxy, iy*dxy)
func (c *Tsunami) Initialize() {
	for iy := 0; iy < c.NY; iy++ {
		y := float64(iy) * c.Dxy
		for ix := 0; ix < c.NX; ix++ {
			x := float64(ix) * c.Dxy
			c.Patch.SetHeight(ix, iy, c.Setup.GetHeight(x, y))
			c.Patch.SetMomentumX(ix, iy, c.Setup.GetMomentumX(x, y))
			c.Patch.SetMomentumY(ix, iy, c.Setup.GetMomentumY(x, y))
			c.Patch.SetBathymetry(ix, iy, c.Setup.GetBathymetry(x, y))
		}
	}
}

func (c *Tsunami) Run(showGraph bool, graphDelay ...time.Duration) (err error) {
	var (
		simTime         float64
		timeStep, nOut  int
		ip              = c.IP
		graph1D         = showGraph && ip.Is1D()
		dims            = 2
		massDrift, hMax float64
	)
	if ip.Is1D() {
		dims = 1
	}
	fmt.Printf("Shallow Water Equations in %d Dimension(s)\nSolver: %s, Setup: %s\n",
		dims, c.Solver, c.SetupType)
	fmt.Printf("runtime configuration\n")
	fmt.Printf("  number of cells in x-direction: %d\n", c.NX)
	fmt.Printf("  number of cells in y-direction: %d\n", c.NY)
	fmt.Printf("  cell size:                      %g\n", c.Dxy)
	fmt.Printf("  time step:                      %g\n", c.Dt)
	fmt.Printf("entering time loop\n")
	for simTime < ip.EndTime {
		if timeStep%ip.OutputSteps == 0 {
			if utils.IsNan(c.Patch.GetHeight()) {
				return fmt.Errorf("NaN found in the height field at time step %d, reduce the CFL number", timeStep)
			}
			fmt.Printf("  simulation time / #time steps: %8.5f / %d\n", simTime, timeStep)
			path := fmt.Sprintf("%s_%d.csv", ip.OutputPrefix, nOut)
			fmt.Printf("  writing wave field to %s\n", path)
			if err = c.WriteSnapshot(path); err != nil {
				return
			}
			nOut++
			if graph1D {
				c.Plot(simTime, graphDelay)
			}
		}
		c.Patch.SetGhostOutflow(c.Boundaries)
		c.Patch.TimeStep(c.Scaling, c.Solver)
		timeStep++
		simTime += c.Dt
	}
	fmt.Printf("finished time loop\n")
	c.SimTime, c.TimeSteps, c.Frames = simTime, timeStep, nOut
	massDrift = patches.TotalMass(c.Patch) - c.InitialMass
	hMax = patches.MaxHeight(c.Patch)
	fmt.Printf("time steps = %d, final time = %8.5f, max height = %8.5f, mass drift = %g (%g relative)\n",
		timeStep, simTime, hMax, massDrift, massDrift/c.InitialMass)
	return
}

func (c *Tsunami) WriteSnapshot(path string) error {
	return snapshot.WriteFile(path, c.Dxy, c.NX, c.NY, c.Patch.GetStride(),
		c.Patch.GetHeight(), c.Patch.GetBathymetry(), c.Patch.GetMomentumX(), c.Patch.GetMomentumY())
}

// ExactSolution returns the exact heights and momenta at the cell centres
// for the 1D Riemann problem setups over a flat bottom, ok is false otherwise.
func (c *Tsunami) ExactSolution(timeT float64) (X, H, HU []float64, ok bool) {
	var (
		x0  float64
		err error
	)
	if !c.IP.Is1D() || len(c.IP.BathymetryFile) != 0 {
		return
	}
	switch s := c.Setup.(type) {
	case *setups.DamBreak1d:
		x0 = s.LocationDam
	case *setups.RareRare1d:
		x0 = s.MidPos
	case *setups.ShockShock1d:
		x0 = s.MidPos
	default:
		return
	}
	var (
		xL, xR = x0 - 0.5*c.Dxy, x0 + 0.5*c.Dxy
	)
	X = utils.CellCenters(c.NX, c.Dxy)
	H, HU, err = middle_state.Profile(
		c.Setup.GetHeight(xL, 0), c.Setup.GetMomentumX(xL, 0),
		c.Setup.GetHeight(xR, 0), c.Setup.GetMomentumX(xR, 0),
		x0, timeT, X)
	ok = err == nil
	return
}

func (c *Tsunami) Plot(timeT float64, graphDelay []time.Duration) {
	var (
		X       = utils.CellCenters(c.NX, c.Dxy)
		b       = c.Patch.GetBathymetry()
		surface = utils.AddSlices(c.Patch.GetHeight(), b)
	)
	c.plotOnce.Do(func() {
		bMin, _ := utils.MinMax(b)
		_, sMax := utils.MinMax(surface)
		span := math.Max(sMax-bMin, 1)
		c.fmin, c.fmax = float32(bMin-0.1*span), float32(sMax+0.1*span)
		c.chart = chart2d.NewChart2D(1920, 1280, 0, float32(c.IP.DomainSize), c.fmin, c.fmax)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})
	pSeries := func(name string, Y []float64, color float32, gl chart2d.GlyphType) {
		if err := c.chart.AddSeries(name, X, Y, gl, chart2d.Solid, c.colorMap.GetRGB(color)); err != nil {
			panic("unable to add graph series")
		}
	}
	pSeries("Surface", surface, 0.7, chart2d.NoGlyph)
	pSeries("Bathymetry", b, -0.7, chart2d.NoGlyph)
	if XE, HE, _, ok := c.ExactSolution(timeT); ok {
		if err := c.chart.AddSeries("ExactHeight", XE, HE, chart2d.XGlyph, chart2d.NoLine,
			c.colorMap.GetRGB(0.0)); err != nil {
			panic("unable to add exact solution height")
		}
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
