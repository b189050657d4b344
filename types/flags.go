package types

import (
	"fmt"
	"strings"
)

type SolverType uint8

const (
	Roe SolverType = iota
	FWave
)

var (
	SolverNames = map[string]SolverType{
		"roe":    Roe,
		"fwave":  FWave,
		"f-wave": FWave,
	}
	SolverPrintNames = []string{"Roe", "F-Wave"}
)

func (st SolverType) String() string {
	if int(st) < len(SolverPrintNames) {
		return SolverPrintNames[st]
	}
	return fmt.Sprintf("SolverType(%d)", st)
}

// NewSolverType parses a solver label, ignoring case
func NewSolverType(label string) (st SolverType, err error) {
	var ok bool
	if st, ok = SolverNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unable to use solver named %q, use one of [ROE, FWAVE]", label)
	}
	return
}

type BoundaryType uint8

const (
	Outflow BoundaryType = iota
	Reflecting
)

var (
	BoundaryNames = map[string]BoundaryType{
		"outflow":    Outflow,
		"out":        Outflow,
		"reflecting": Reflecting,
		"reflect":    Reflecting,
		"wall":       Reflecting,
	}
	BoundaryPrintNames = []string{"Outflow", "Reflecting"}
)

func (bt BoundaryType) String() string {
	if int(bt) < len(BoundaryPrintNames) {
		return BoundaryPrintNames[bt]
	}
	return fmt.Sprintf("BoundaryType(%d)", bt)
}

func NewBoundaryType(label string) (bt BoundaryType, err error) {
	var ok bool
	if bt, ok = BoundaryNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unable to use boundary named %q, use one of [OUTFLOW, REFLECTING]", label)
	}
	return
}

// NewBoundaryTypes parses one label per domain side
func NewBoundaryTypes(labels []string) (bts []BoundaryType, err error) {
	bts = make([]BoundaryType, len(labels))
	for i, label := range labels {
		if bts[i], err = NewBoundaryType(label); err != nil {
			return nil, err
		}
	}
	return
}
