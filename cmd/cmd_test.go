package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gotsunami/InputParameters"
)

func TestProcessInput(t *testing.T) {
	var (
		dir = t.TempDir()
	)
	{ // height and velocity become the setup state
		m := &ModelTsunami{
			Height: 2, Velocity: 3, HeightSet: true,
			IP: InputParameters.NewInputParametersTsunami(),
		}
		m.IP.Setup = "shockshock1d"
		ip, err := processInput(m)
		assert.Nil(t, err)
		assert.Equal(t, 2., ip.SetupParams["h"])
		assert.Equal(t, 6., ip.SetupParams["hu"])
	}
	{ // the input file overrides the flags
		filename := filepath.Join(dir, "input.yaml")
		assert.Nil(t, os.WriteFile(filename, []byte(`
Title: "Reflected shock"
Solver: roe
Setup: ShockShockReflective1d
Boundaries: [outflow, reflecting]
SetupParams:
  h: 5
  hu: 20
`), 0644))
		m := &ModelTsunami{ICFile: filename, IP: InputParameters.NewInputParametersTsunami()}
		m.IP.CellsX = 40
		ip, err := processInput(m)
		assert.Nil(t, err)
		assert.Equal(t, "roe", ip.Solver)
		assert.Equal(t, 40, ip.CellsX)
		assert.Equal(t, []string{"outflow", "reflecting"}, ip.Boundaries)
		assert.Equal(t, 20., ip.SetupParams["hu"])
	}
	{
		m := &ModelTsunami{ICFile: filepath.Join(dir, "missing.yaml"), IP: InputParameters.NewInputParametersTsunami()}
		_, err := processInput(m)
		assert.NotNil(t, err)
		m = &ModelTsunami{IP: InputParameters.NewInputParametersTsunami()}
		m.IP.Solver = "hll"
		_, err = processInput(m)
		assert.NotNil(t, err)
	}
}

func TestCommands(t *testing.T) {
	var (
		dir = t.TempDir()
	)
	{
		rootCmd.SetArgs([]string{"1D", "-k", "20", "-s", "roe", "--endTime", "0.05",
			"-o", filepath.Join(dir, "oned")})
		assert.Nil(t, rootCmd.Execute())
		_, err := os.Stat(filepath.Join(dir, "oned_0.csv"))
		assert.Nil(t, err)
	}
	{
		rootCmd.SetArgs([]string{"2D", "-k", "10", "--cellsY", "10", "--endTime", "0.5",
			"-b", "reflecting,outflow", "-o", filepath.Join(dir, "twod")})
		assert.Nil(t, rootCmd.Execute())
		_, err := os.Stat(filepath.Join(dir, "twod_0.csv"))
		assert.Nil(t, err)
	}
}
