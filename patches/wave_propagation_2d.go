package patches

import (
	"fmt"

	"github.com/notargets/gotsunami/solvers"
	"github.com/notargets/gotsunami/types"
	"github.com/notargets/gotsunami/utils"
)

// ReflectingBathymetry is the land marker written into reflecting ghost cells
const ReflectingBathymetry = 20.

// WavePropagation2d is a double buffered 2D grid with a one cell ghost frame.
// Fields are stored row major in (cellCountX+2)*(cellCountY+2) slices, domain
// cell (x, y) lives at padded position (x+1, y+1).
type WavePropagation2d struct {
	cellCountX, cellCountY int
	step                   int
	height                 [2][]float64
	momentumX, momentumY   [2][]float64
	bathymetry             []float64
	// sides of the last SetGhostOutflow
	sides []types.BoundaryType
	// heights after the x-sweep, input of the y-sweep
	heightSwept []float64
	// linearized interior views handed out by the getters
	heightView, momentumXView, momentumYView, bathymetryView []float64
	// row and column partitions swept in parallel
	rows, columns *utils.PartitionMap
}

func NewWavePropagation2d(cellCountX, cellCountY int) (wp *WavePropagation2d) {
	var (
		total    = (cellCountX + 2) * (cellCountY + 2)
		interior = cellCountX * cellCountY
	)
	wp = &WavePropagation2d{
		cellCountX:     cellCountX,
		cellCountY:     cellCountY,
		bathymetry:     make([]float64, total),
		heightSwept:    make([]float64, total),
		heightView:     make([]float64, interior),
		momentumXView:  make([]float64, interior),
		momentumYView:  make([]float64, interior),
		bathymetryView: make([]float64, interior),
		rows:           utils.NewPartitionMap(0, cellCountY),
		columns:        utils.NewPartitionMap(0, cellCountX),
	}
	for step := 0; step < 2; step++ {
		wp.height[step] = make([]float64, total)
		wp.momentumX[step] = make([]float64, total)
		wp.momentumY[step] = make([]float64, total)
	}
	return
}

func (wp *WavePropagation2d) CellCount() (nx, ny int) { return wp.cellCountX, wp.cellCountY }

// ind is the position of padded cell (x, y), ghosts included
func (wp *WavePropagation2d) ind(x, y int) int {
	return x + y*(wp.cellCountX+2)
}

func (wp *WavePropagation2d) index(x, y int) int {
	if x < 0 || x >= wp.cellCountX || y < 0 || y >= wp.cellCountY {
		panic(fmt.Errorf("cell (%d, %d) is outside of the domain [0, %d)x[0, %d)",
			x, y, wp.cellCountX, wp.cellCountY))
	}
	return wp.ind(x+1, y+1)
}

// TimeStep performs a dimensionally split update: all x-edges, then all
// y-edges using the heights produced by the x-sweep.
func (wp *WavePropagation2d) TimeStep(scaling float64, solver types.SolverType) {
	var (
		nx, ny                     = wp.cellCountX, wp.cellCountY
		heightOld                  = wp.height[wp.step]
		momentumXOld, momentumYOld = wp.momentumX[wp.step], wp.momentumY[wp.step]
	)
	wp.step = (wp.step + 1) % 2
	var (
		heightNew                  = wp.height[wp.step]
		momentumXNew, momentumYNew = wp.momentumX[wp.step], wp.momentumY[wp.step]
	)
	copy(heightNew, heightOld)
	copy(momentumXNew, momentumXOld)
	copy(momentumYNew, momentumYOld)

	// x-sweep, ghost rows would only update ghost cells. Rows only write
	// their own cells and are swept concurrently, as are the columns below.
	wp.rows.Parallel(func(yMin, yMax int) {
		for y := yMin + 1; y < yMax+1; y++ {
			for edgeX := 0; edgeX < nx+1; edgeX++ {
				wp.updateEdge(solver, scaling, heightOld, momentumXOld, heightNew, momentumXNew,
					wp.ind(edgeX, y), wp.ind(edgeX+1, y), edgeX > 0, edgeX < nx)
			}
		}
	})

	// y-sweep, momentum-y is untouched by the x-sweep so the old values are current
	copy(wp.heightSwept, heightNew)
	if wp.sides != nil {
		wp.setGhosts(wp.heightSwept, wp.sides, 0)
	}
	wp.columns.Parallel(func(xMin, xMax int) {
		for x := xMin + 1; x < xMax+1; x++ {
			for edgeY := 0; edgeY < ny+1; edgeY++ {
				wp.updateEdge(solver, scaling, wp.heightSwept, momentumYOld, heightNew, momentumYNew,
					wp.ind(x, edgeY), wp.ind(x, edgeY+1), edgeY > 0, edgeY < ny)
			}
		}
	})
}

func (wp *WavePropagation2d) updateEdge(solver types.SolverType, scaling float64,
	heightIn, momentumIn, heightOut, momentumOut []float64,
	cellLeft, cellRight int, interiorLeft, interiorRight bool) {
	var (
		b = wp.bathymetry
	)
	stateLeft, stateRight, skip := edgeStates(
		[3]float64{heightIn[cellLeft], momentumIn[cellLeft], b[cellLeft]},
		[3]float64{heightIn[cellRight], momentumIn[cellRight], b[cellRight]})
	if skip {
		return
	}
	netUpdateLeft, netUpdateRight := solvers.NetUpdates(solver, stateLeft, stateRight)
	if interiorLeft && !IsLand(b[cellLeft]) {
		heightOut[cellLeft] -= scaling * netUpdateLeft[0]
		momentumOut[cellLeft] -= scaling * netUpdateLeft[1]
	}
	if interiorRight && !IsLand(b[cellRight]) {
		heightOut[cellRight] -= scaling * netUpdateRight[0]
		momentumOut[cellRight] -= scaling * netUpdateRight[1]
	}
}

// SetGhostOutflow sets the ghost frame. Boundaries are ordered -x, +x, -y, +y;
// two entries are used as (low, high) in both directions and one entry for all
// sides. Corner ghosts copy the diagonal interior cell only when both adjacent
// sides are outflow.
func (wp *WavePropagation2d) SetGhostOutflow(boundary []types.BoundaryType) {
	var (
		sides = expandBoundaries(boundary, 4)
	)
	wp.sides = sides
	wp.setGhosts(wp.height[wp.step], sides, 0)
	wp.setGhosts(wp.momentumX[wp.step], sides, 0)
	wp.setGhosts(wp.momentumY[wp.step], sides, 0)
	wp.setGhosts(wp.bathymetry, sides, ReflectingBathymetry)
}

func (wp *WavePropagation2d) setGhosts(field []float64, sides []types.BoundaryType, wallValue float64) {
	var (
		xMax, yMax = wp.cellCountX + 1, wp.cellCountY + 1
	)
	set := func(ghost, interior int, bt types.BoundaryType) {
		if bt == types.Outflow {
			field[ghost] = field[interior]
		} else {
			field[ghost] = wallValue
		}
	}
	for y := 1; y < yMax; y++ {
		set(wp.ind(0, y), wp.ind(1, y), sides[0])
		set(wp.ind(xMax, y), wp.ind(xMax-1, y), sides[1])
	}
	for x := 1; x < xMax; x++ {
		set(wp.ind(x, 0), wp.ind(x, 1), sides[2])
		set(wp.ind(x, yMax), wp.ind(x, yMax-1), sides[3])
	}
	corner := func(sideX, sideY types.BoundaryType) types.BoundaryType {
		if sideX == types.Outflow && sideY == types.Outflow {
			return types.Outflow
		}
		return types.Reflecting
	}
	set(wp.ind(0, 0), wp.ind(1, 1), corner(sides[0], sides[2]))
	set(wp.ind(xMax, 0), wp.ind(xMax-1, 1), corner(sides[1], sides[2]))
	set(wp.ind(0, yMax), wp.ind(1, yMax-1), corner(sides[0], sides[3]))
	set(wp.ind(xMax, yMax), wp.ind(xMax-1, yMax-1), corner(sides[1], sides[3]))
}

func (wp *WavePropagation2d) GetStride() int { return wp.cellCountX }

// linearize copies the interior of a padded field into out
func (wp *WavePropagation2d) linearize(field, out []float64) []float64 {
	for y := 0; y < wp.cellCountY; y++ {
		row := wp.ind(1, y+1)
		copy(out[y*wp.cellCountX:(y+1)*wp.cellCountX], field[row:row+wp.cellCountX])
	}
	return out
}

func (wp *WavePropagation2d) GetHeight() []float64 {
	return wp.linearize(wp.height[wp.step], wp.heightView)
}

func (wp *WavePropagation2d) GetMomentumX() []float64 {
	return wp.linearize(wp.momentumX[wp.step], wp.momentumXView)
}

func (wp *WavePropagation2d) GetMomentumY() []float64 {
	return wp.linearize(wp.momentumY[wp.step], wp.momentumYView)
}

func (wp *WavePropagation2d) GetBathymetry() []float64 {
	return wp.linearize(wp.bathymetry, wp.bathymetryView)
}

func (wp *WavePropagation2d) SetHeight(x, y int, height float64) {
	wp.height[wp.step][wp.index(x, y)] = height
}

func (wp *WavePropagation2d) SetMomentumX(x, y int, momentum float64) {
	wp.momentumX[wp.step][wp.index(x, y)] = momentum
}

func (wp *WavePropagation2d) SetMomentumY(x, y int, momentum float64) {
	wp.momentumY[wp.step][wp.index(x, y)] = momentum
}

func (wp *WavePropagation2d) SetBathymetry(x, y int, bathymetry float64) {
	wp.bathymetry[wp.index(x, y)] = bathymetry
}
