package patches

import (
	"fmt"

	"github.com/notargets/gotsunami/solvers"
	"github.com/notargets/gotsunami/types"
)

// WavePropagation1d is a double buffered 1D grid with one ghost cell on each
// side. Cell i of the domain lives at index i+1.
type WavePropagation1d struct {
	cellCount int
	step      int
	// height and momentum for the current and the next time step
	height, momentum [2][]float64
	bathymetry       []float64
}

func NewWavePropagation1d(cellCount int) (wp *WavePropagation1d) {
	wp = &WavePropagation1d{
		cellCount:  cellCount,
		bathymetry: make([]float64, cellCount+2),
	}
	for step := 0; step < 2; step++ {
		wp.height[step] = make([]float64, cellCount+2)
		wp.momentum[step] = make([]float64, cellCount+2)
	}
	return
}

func (wp *WavePropagation1d) CellCount() int { return wp.cellCount }

// index maps a domain cell onto the padded arrays
func (wp *WavePropagation1d) index(x int) int {
	if x < 0 || x >= wp.cellCount {
		panic(fmt.Errorf("cell %d is outside of the domain [0, %d)", x, wp.cellCount))
	}
	return x + 1
}

func (wp *WavePropagation1d) TimeStep(scaling float64, solver types.SolverType) {
	var (
		heightOld, momentumOld = wp.height[wp.step], wp.momentum[wp.step]
		b                      = wp.bathymetry
	)
	wp.step = (wp.step + 1) % 2
	var (
		heightNew, momentumNew = wp.height[wp.step], wp.momentum[wp.step]
	)
	copy(heightNew, heightOld)
	copy(momentumNew, momentumOld)

	for edge := 0; edge < wp.cellCount+1; edge++ {
		cellLeft, cellRight := edge, edge+1
		netUpdateLeft, netUpdateRight := solvers.NetUpdates(solver,
			[3]float64{heightOld[cellLeft], momentumOld[cellLeft], b[cellLeft]},
			[3]float64{heightOld[cellRight], momentumOld[cellRight], b[cellRight]})
		// Ghost cells never receive updates, dry cells are walls
		if cellLeft > 0 && heightOld[cellLeft] > 0 {
			heightNew[cellLeft] -= scaling * netUpdateLeft[0]
			momentumNew[cellLeft] -= scaling * netUpdateLeft[1]
		}
		if cellRight <= wp.cellCount && heightOld[cellRight] > 0 {
			heightNew[cellRight] -= scaling * netUpdateRight[0]
			momentumNew[cellRight] -= scaling * netUpdateRight[1]
		}
	}
}

// SetGhostOutflow sets the ghost cells from boundary[0] (left) and
// boundary[1] (right). Reflecting ghosts are dry, NetUpdates mirrors the
// interior state across them. Their bathymetry is set above the interior
// water height.
func (wp *WavePropagation1d) SetGhostOutflow(boundary []types.BoundaryType) {
	var (
		sides    = expandBoundaries(boundary, 2)
		h, hu, b = wp.height[wp.step], wp.momentum[wp.step], wp.bathymetry
		n        = wp.cellCount
	)
	setGhost := func(ghost, interior int, bt types.BoundaryType) {
		switch bt {
		case types.Outflow:
			h[ghost], hu[ghost], b[ghost] = h[interior], hu[interior], b[interior]
		case types.Reflecting:
			h[ghost], hu[ghost], b[ghost] = 0, 0, h[interior]+1
		}
	}
	setGhost(0, 1, sides[0])
	setGhost(n+1, n, sides[1])
}

func (wp *WavePropagation1d) GetStride() int { return wp.cellCount }

func (wp *WavePropagation1d) GetHeight() []float64 {
	return wp.height[wp.step][1 : wp.cellCount+1]
}

func (wp *WavePropagation1d) GetMomentumX() []float64 {
	return wp.momentum[wp.step][1 : wp.cellCount+1]
}

// GetMomentumY is nil, there is no y-momentum in 1D
func (wp *WavePropagation1d) GetMomentumY() []float64 { return nil }

func (wp *WavePropagation1d) GetBathymetry() []float64 {
	return wp.bathymetry[1 : wp.cellCount+1]
}

func (wp *WavePropagation1d) SetHeight(x, _ int, height float64) {
	wp.height[wp.step][wp.index(x)] = height
}

func (wp *WavePropagation1d) SetMomentumX(x, _ int, momentum float64) {
	wp.momentum[wp.step][wp.index(x)] = momentum
}

func (wp *WavePropagation1d) SetMomentumY(_, _ int, _ float64) {}

func (wp *WavePropagation1d) SetBathymetry(x, _ int, bathymetry float64) {
	wp.bathymetry[wp.index(x)] = bathymetry
}
