package InputParameters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gotsunami/setups"
	"github.com/notargets/gotsunami/types"
)

// Parameters obtained from the YAML input file
type InputParametersTsunami struct {
	Title          string             `yaml:"Title"`
	Solver         string             `yaml:"Solver"`
	Setup          string             `yaml:"Setup"`
	CellsX         int                `yaml:"CellsX"`
	CellsY         int                `yaml:"CellsY"`
	DomainSize     float64            `yaml:"DomainSize"` // Length of the domain in x, cells are square
	EndTime        float64            `yaml:"EndTime"`
	CFL            float64            `yaml:"CFL"`
	Boundaries     []string           `yaml:"Boundaries"` // Ordered -x, +x, -y, +y
	OutputSteps    int                `yaml:"OutputSteps"`
	OutputPrefix   string             `yaml:"OutputPrefix"`
	BathymetryFile string             `yaml:"BathymetryFile"`
	SetupParams    map[string]float64 `yaml:"SetupParams"`
}

// NewInputParametersTsunami returns the defaults of a 1D dam break run
func NewInputParametersTsunami() *InputParametersTsunami {
	return &InputParametersTsunami{
		Title:        "Tsunami",
		Solver:       "fwave",
		Setup:        "dambreak1d",
		CellsX:       100,
		CellsY:       1,
		DomainSize:   10,
		EndTime:      1.25,
		CFL:          0.5,
		Boundaries:   []string{"outflow", "outflow"},
		OutputSteps:  25,
		OutputPrefix: "solution",
		SetupParams:  make(map[string]float64),
	}
}

func (ip *InputParametersTsunami) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersTsunami) Is1D() bool {
	return ip.CellsY <= 1
}

func (ip *InputParametersTsunami) Dxy() float64 {
	return ip.DomainSize / float64(ip.CellsX)
}

func (ip *InputParametersTsunami) SolverType() (types.SolverType, error) {
	return types.NewSolverType(ip.Solver)
}

func (ip *InputParametersTsunami) BoundaryTypes() ([]types.BoundaryType, error) {
	return types.NewBoundaryTypes(ip.Boundaries)
}

// Validate checks ranges and labels before a run is built
func (ip *InputParametersTsunami) Validate() (err error) {
	switch {
	case ip.CellsX < 1:
		return fmt.Errorf("invalid number of cells in x-direction: %d", ip.CellsX)
	case ip.CellsY < 0:
		return fmt.Errorf("invalid number of cells in y-direction: %d", ip.CellsY)
	case ip.DomainSize <= 0:
		return fmt.Errorf("invalid domain size: %v", ip.DomainSize)
	case ip.EndTime <= 0:
		return fmt.Errorf("invalid end time: %v", ip.EndTime)
	case ip.CFL <= 0 || ip.CFL > 1:
		return fmt.Errorf("CFL number %v is outside of (0, 1]", ip.CFL)
	case ip.OutputSteps < 1:
		return fmt.Errorf("invalid output frequency: %d", ip.OutputSteps)
	}
	if _, err = ip.SolverType(); err != nil {
		return
	}
	if _, err = ip.BoundaryTypes(); err != nil {
		return
	}
	var st setups.SetupType
	if st, err = setups.NewSetupType(ip.Setup); err != nil {
		return
	}
	if st.Is2D() && ip.Is1D() {
		return fmt.Errorf("setup %s needs CellsY > 1", st)
	}
	return
}

func (ip *InputParametersTsunami) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Solver\n", ip.Solver)
	fmt.Printf("[%s]\t\t= Setup\n", ip.Setup)
	fmt.Printf("[%d, %d]\t\t= Cells\n", ip.CellsX, ip.CellsY)
	fmt.Printf("%8.5f\t\t= Domain Size\n", ip.DomainSize)
	fmt.Printf("%8.5f\t\t= Cell Size\n", ip.Dxy())
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= EndTime\n", ip.EndTime)
	fmt.Printf("[%s]\t= Boundaries\n", strings.Join(ip.Boundaries, ", "))
	fmt.Printf("[%d]\t\t\t= Output Steps\n", ip.OutputSteps)
	fmt.Printf("\"%s\"\t\t= Output Prefix\n", ip.OutputPrefix)
	if len(ip.BathymetryFile) != 0 {
		fmt.Printf("\"%s\"\t= Bathymetry File\n", ip.BathymetryFile)
	}
	keys := make([]string, len(ip.SetupParams))
	i := 0
	for k := range ip.SetupParams {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("SetupParams[%s] = %v\n", key, ip.SetupParams[key])
	}
}
