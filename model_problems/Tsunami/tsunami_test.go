package Tsunami

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gotsunami/InputParameters"
	"github.com/notargets/gotsunami/patches"
)

func newInput(t *testing.T) *InputParameters.InputParametersTsunami {
	ip := InputParameters.NewInputParametersTsunami()
	ip.OutputPrefix = filepath.Join(t.TempDir(), "solution")
	return ip
}

func countLines(t *testing.T, path string) (n int) {
	f, err := os.Open(path)
	assert.Nil(t, err)
	defer f.Close()
	s := bufio.NewScanner(f)
	for s.Scan() {
		n++
	}
	return
}

func TestTsunami1D(t *testing.T) {
	{ // time step and snapshot frequency
		ip := newInput(t)
		ip.EndTime = 0.1
		ip.OutputSteps = 5
		c, err := NewTsunami(ip)
		assert.Nil(t, err)
		assert.InDelta(t, 0.5*0.1/math.Sqrt(9.80665*10), c.Dt, 1.e-6)
		assert.InDelta(t, c.Dt/0.1, c.Scaling, 1.e-12)
		assert.Nil(t, c.Run(false))
		assert.Equal(t, 20, c.TimeSteps)
		assert.Equal(t, 4, c.Frames)
		for n := 0; n < 4; n++ {
			assert.Equal(t, 101, countLines(t, fmt.Sprintf("%s_%d.csv", ip.OutputPrefix, n)))
		}
		_, err = os.Stat(ip.OutputPrefix + "_4.csv")
		assert.True(t, os.IsNotExist(err))
	}
	{ // dam break against the exact solution
		ip := newInput(t)
		ip.CellsX = 200
		ip.EndTime = 0.5
		ip.OutputSteps = 1000
		c, err := NewTsunami(ip)
		assert.Nil(t, err)
		assert.Nil(t, c.Run(false))
		_, H, _, ok := c.ExactSolution(c.SimTime)
		assert.True(t, ok)
		h := c.Patch.GetHeight()
		var l1 float64
		for i := range h {
			l1 += math.Abs(h[i] - H[i])
		}
		assert.Less(t, l1/float64(len(h)), 0.1)
		assert.InDelta(t, 7.2692045, h[100], 0.1)
	}
	{ // walls keep the mass
		ip := newInput(t)
		ip.Boundaries = []string{"wall"}
		ip.EndTime = 3
		ip.OutputSteps = 1000
		c, err := NewTsunami(ip)
		assert.Nil(t, err)
		assert.Nil(t, c.Run(false))
		assert.InDelta(t, c.InitialMass, patches.TotalMass(c.Patch), 1.e-9)
	}
	{
		ip := newInput(t)
		ip.Setup = "subcritical"
		ip.DomainSize = 25
		c, err := NewTsunami(ip)
		assert.Nil(t, err)
		_, _, _, ok := c.ExactSolution(0)
		assert.False(t, ok)
		assert.Equal(t, -2., c.Patch.GetBathymetry()[0])
		assert.Equal(t, 2., c.Patch.GetHeight()[0])
	}
}

func TestTsunamiBathymetryFile(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "profile.csv")
	)
	assert.Nil(t, os.WriteFile(filename, []byte("a,b,c,d\n0,0,0,-20\n0,0,0,-10\n"), 0644))
	{
		ip := newInput(t)
		ip.BathymetryFile = filename
		c, err := NewTsunami(ip)
		assert.Nil(t, err)
		b, h := c.Patch.GetBathymetry(), c.Patch.GetHeight()
		assert.Equal(t, -20., b[0])
		assert.Equal(t, -10., b[99])
		assert.Equal(t, 30., h[0])
		assert.Equal(t, 15., h[99])
		_, _, _, ok := c.ExactSolution(0)
		assert.False(t, ok)
	}
	{
		assert.Nil(t, os.WriteFile(filename, []byte("0,0,0,100\n"), 0644))
		ip := newInput(t)
		ip.BathymetryFile = filename
		_, err := NewTsunami(ip)
		assert.NotNil(t, err)
		ip.BathymetryFile = filepath.Join(dir, "missing.csv")
		_, err = NewTsunami(ip)
		assert.NotNil(t, err)
	}
}

func TestTsunami2D(t *testing.T) {
	{
		ip := newInput(t)
		ip.Setup = "dambreak2d"
		ip.CellsX, ip.CellsY = 20, 20
		ip.DomainSize = 100
		ip.Boundaries = []string{"reflecting"}
		ip.EndTime = 5
		ip.OutputSteps = 10
		c, err := NewTsunami(ip)
		assert.Nil(t, err)
		assert.Equal(t, 20, c.NY)
		assert.Nil(t, c.Run(true))
		assert.InDelta(t, c.InitialMass, patches.TotalMass(c.Patch), 1.e-8)
		assert.Equal(t, 401, countLines(t, ip.OutputPrefix+"_0.csv"))
		_, _, _, ok := c.ExactSolution(1)
		assert.False(t, ok)
	}
	{
		ip := newInput(t)
		ip.Setup = "tohoku"
		_, err := NewTsunami(ip)
		assert.NotNil(t, err)
	}
}
