package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gotsunami/types"
)

func TestInputParametersTsunami(t *testing.T) {
	{ // defaults are a valid 1D run
		ip := NewInputParametersTsunami()
		assert.Nil(t, ip.Validate())
		assert.True(t, ip.Is1D())
		assert.InDelta(t, 0.1, ip.Dxy(), 1.e-15)
	}
	{
		var input = []byte(`
Title: "Circular dam break"
Solver: Roe
Setup: DamBreak2d
CellsX: 50
CellsY: 50
DomainSize: 100
EndTime: 5
Boundaries: [reflecting, outflow]
SetupParams:
  hInner: 10
  hOuter: 5
  radius: 10
`)
		ip := NewInputParametersTsunami()
		assert.Nil(t, ip.Parse(input))
		assert.Nil(t, ip.Validate())
		assert.Equal(t, "Circular dam break", ip.Title)
		assert.False(t, ip.Is1D())
		assert.Equal(t, 2., ip.Dxy())
		assert.Equal(t, 0.5, ip.CFL)
		assert.Equal(t, 25, ip.OutputSteps)
		assert.Equal(t, 10., ip.SetupParams["hInner"])
		st, err := ip.SolverType()
		assert.Nil(t, err)
		assert.Equal(t, types.Roe, st)
		bts, err := ip.BoundaryTypes()
		assert.Nil(t, err)
		assert.Equal(t, []types.BoundaryType{types.Reflecting, types.Outflow}, bts)
		ip.Print()
	}
	{
		ip := NewInputParametersTsunami()
		assert.NotNil(t, ip.Parse([]byte("CellsX: [1")))
	}
	{
		for _, modify := range []func(ip *InputParametersTsunami){
			func(ip *InputParametersTsunami) { ip.CellsX = 0 },
			func(ip *InputParametersTsunami) { ip.CFL = 1.5 },
			func(ip *InputParametersTsunami) { ip.EndTime = 0 },
			func(ip *InputParametersTsunami) { ip.Solver = "hllc" },
			func(ip *InputParametersTsunami) { ip.Setup = "tohoku" },
			func(ip *InputParametersTsunami) { ip.Setup = "dambreak2d" },
			func(ip *InputParametersTsunami) { ip.Boundaries = []string{"open"} },
		} {
			ip := NewInputParametersTsunami()
			modify(ip)
			assert.NotNil(t, ip.Validate())
		}
	}
}
