package patches

import (
	"fmt"

	"github.com/notargets/gotsunami/solvers"
	"github.com/notargets/gotsunami/types"
)

// WavePropagation is implemented by the 1D and 2D patches. The getters return
// views of the interior cells of the current buffer in row major order with
// GetStride() entries per row; they are only valid until the next TimeStep and
// must not be modified. Setters take logical cell indices (ghosts excluded).
type WavePropagation interface {
	TimeStep(scaling float64, solver types.SolverType)
	SetGhostOutflow(boundary []types.BoundaryType)
	GetStride() int
	GetHeight() []float64
	GetMomentumX() []float64
	GetMomentumY() []float64
	GetBathymetry() []float64
	SetHeight(x, y int, height float64)
	SetMomentumX(x, y int, momentum float64)
	SetMomentumY(x, y int, momentum float64)
	SetBathymetry(x, y int, bathymetry float64)
}

// IsLand marks cells that act as reflecting walls inside the sweeps
func IsLand(bathymetry float64) bool {
	return bathymetry > 0
}

// edgeStates applies the wall rule at an edge: a land cell is replaced by the
// mirror image of its wet neighbour. Edges between two land cells are skipped.
func edgeStates(stateLeft, stateRight [3]float64) (left, right [3]float64, skip bool) {
	var (
		landLeft, landRight = IsLand(stateLeft[2]), IsLand(stateRight[2])
	)
	switch {
	case landLeft && landRight:
		skip = true
	case landLeft:
		left, right = solvers.Mirror(stateRight), stateRight
	case landRight:
		left, right = stateLeft, solvers.Mirror(stateLeft)
	default:
		left, right = stateLeft, stateRight
	}
	return
}

// expandBoundaries maps a boundary list onto nSides domain sides. A single
// entry applies to every side; two entries on four sides are read as
// (low side, high side) and used for both directions.
func expandBoundaries(boundary []types.BoundaryType, nSides int) (sides []types.BoundaryType) {
	sides = make([]types.BoundaryType, nSides)
	switch {
	case len(boundary) == 0:
		// Outflow everywhere
	case len(boundary) == 1:
		for i := range sides {
			sides[i] = boundary[0]
		}
	case len(boundary) >= nSides:
		copy(sides, boundary)
	case len(boundary) == 2 && nSides == 4:
		sides[0], sides[1], sides[2], sides[3] = boundary[0], boundary[1], boundary[0], boundary[1]
	default:
		panic(fmt.Errorf("unable to map %d boundary conditions onto %d sides", len(boundary), nSides))
	}
	return
}
