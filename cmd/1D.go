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

	"github.com/notargets/gotsunami/InputParameters"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional shallow water runs",
	Long: `
Runs a one dimensional setup (dam break, rare-rare, shock-shock, sub- and
supercritical flow, bathymetry profiles) and writes CSV snapshots,

gotsunami 1D -k 500 -s roe -S shockshock1d --height 10 --velocity 5`,
	Run: func(cmd *cobra.Command, args []string) {
		m := readRunFlags("oneD")
		m.IP.CellsY = 1
		RunTsunami(m)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	addRunFlags(OneDCmd, "oneD", InputParameters.NewInputParametersTsunami())
}
