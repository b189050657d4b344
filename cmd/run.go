/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/notargets/gotsunami/InputParameters"
	"github.com/notargets/gotsunami/model_problems/Tsunami"
)

type ModelTsunami struct {
	ICFile           string
	Graph            bool
	Delay            time.Duration
	Height, Velocity float64
	// Height and Velocity only override the setup when given
	HeightSet, VelocitySet bool
	IP                     *InputParameters.InputParametersTsunami
}

// addRunFlags registers the run flags of a command, defaults taken from ip,
// and binds each of them to the viper key prefix.name
func addRunFlags(cmd *cobra.Command, prefix string, ip *InputParameters.InputParametersTsunami) {
	flags := cmd.Flags()
	flags.IntP("cells", "k", ip.CellsX, "number of cells in x-direction")
	flags.StringP("solver", "s", ip.Solver, "Riemann solver: roe or fwave")
	flags.StringP("setup", "S", ip.Setup, "initial condition, one of dambreak1d, rarerare1d, shockshock1d, "+
		"shockshockreflective1d, subcritical1d, supercritical1d, bathymetry1d, dambreak2d, bathymetry2d")
	flags.Float64("height", 10, "water height of the rare-rare and shock-shock setups")
	flags.Float64("velocity", 5, "particle velocity of the rare-rare and shock-shock setups")
	flags.StringSliceP("boundaries", "b", ip.Boundaries, "boundary conditions ordered -x,+x,-y,+y: outflow or reflecting")
	flags.Float64("domainSize", ip.DomainSize, "length of the domain in x-direction")
	flags.Float64("endTime", ip.EndTime, "simulated end time")
	flags.Float64("CFL", ip.CFL, "CFL number of the fixed time step")
	flags.Int("outputSteps", ip.OutputSteps, "number of time steps between snapshots")
	flags.StringP("outputPrefix", "o", ip.OutputPrefix, "snapshots are written to <prefix>_<n>.csv")
	flags.String("bathymetryFile", "", "CSV file with a bathymetry profile in the 4th column")
	flags.StringP("inputConditionsFile", "I", "", "YAML file with run parameters, overrides the flags")
	flags.BoolP("graph", "g", false, "display a graph while computing solution (1D)")
	flags.IntP("delay", "d", 0, "milliseconds of delay for plotting")
	flags.VisitAll(func(f *pflag.Flag) {
		if err := viper.BindPFlag(prefix+"."+f.Name, f); err != nil {
			panic(err)
		}
	})
}

// readRunFlags collects the bound values of a command into a model
func readRunFlags(prefix string) (m *ModelTsunami) {
	key := func(name string) string { return prefix + "." + name }
	m = &ModelTsunami{
		ICFile:      viper.GetString(key("inputConditionsFile")),
		Graph:       viper.GetBool(key("graph")),
		Delay:       time.Duration(viper.GetInt(key("delay"))) * time.Millisecond,
		Height:      viper.GetFloat64(key("height")),
		Velocity:    viper.GetFloat64(key("velocity")),
		HeightSet:   viper.IsSet(key("height")),
		VelocitySet: viper.IsSet(key("velocity")),
		IP:          InputParameters.NewInputParametersTsunami(),
	}
	ip := m.IP
	ip.CellsX = viper.GetInt(key("cells"))
	ip.Solver = viper.GetString(key("solver"))
	ip.Setup = viper.GetString(key("setup"))
	ip.Boundaries = viper.GetStringSlice(key("boundaries"))
	ip.DomainSize = viper.GetFloat64(key("domainSize"))
	ip.EndTime = viper.GetFloat64(key("endTime"))
	ip.CFL = viper.GetFloat64(key("CFL"))
	ip.OutputSteps = viper.GetInt(key("outputSteps"))
	ip.OutputPrefix = viper.GetString(key("outputPrefix"))
	ip.BathymetryFile = viper.GetString(key("bathymetryFile"))
	return
}

// processInput merges the input file into the flag values
func processInput(m *ModelTsunami) (ip *InputParameters.InputParametersTsunami, err error) {
	var (
		data []byte
	)
	ip = m.IP
	if m.HeightSet || m.VelocitySet {
		ip.SetupParams["h"] = m.Height
		ip.SetupParams["hu"] = m.Height * m.Velocity
	}
	if len(m.ICFile) != 0 {
		if data, err = os.ReadFile(m.ICFile); err != nil {
			return nil, fmt.Errorf("unable to read input file: %w", err)
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("unable to parse input file %s: %w", m.ICFile, err)
		}
	}
	err = ip.Validate()
	return
}

func RunTsunami(m *ModelTsunami) {
	var (
		ip  *InputParameters.InputParametersTsunami
		c   *Tsunami.Tsunami
		err error
	)
	exitOnError := func(err error) {
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}
	ip, err = processInput(m)
	exitOnError(err)
	ip.Print()
	c, err = Tsunami.NewTsunami(ip)
	exitOnError(err)
	exitOnError(c.Run(m.Graph, m.Delay))
}
