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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gotsunami/InputParameters"
)

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional shallow water runs on a square cell grid",
	Long: `
Runs a two dimensional setup with dimensional splitting and writes CSV
snapshots, boundaries are given as -x,+x,-y,+y or low,high,

gotsunami 2D -k 100 --cellsY 100 -S dambreak2d -b reflecting`,
	Run: func(cmd *cobra.Command, args []string) {
		m := readRunFlags("twoD")
		m.IP.CellsY = viper.GetInt("twoD.cellsY")
		RunTsunami(m)
	},
}

func defaults2D() (ip *InputParameters.InputParametersTsunami) {
	ip = InputParameters.NewInputParametersTsunami()
	ip.Setup = "dambreak2d"
	ip.CellsY = 100
	ip.DomainSize = 100
	ip.EndTime = 20
	ip.Boundaries = []string{"outflow", "outflow", "outflow", "outflow"}
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	ip := defaults2D()
	TwoDCmd.Flags().Int("cellsY", ip.CellsY, "number of cells in y-direction")
	addRunFlags(TwoDCmd, "twoD", ip)
}
