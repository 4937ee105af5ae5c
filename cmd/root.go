// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the cordband command line interface
package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cordband",
	Short: "Author compression band fields for spinal cord FE models",
	Long: `cordband authors graded compression bands for finite element models
of the spinal cord. Mesh nodes are classified into axial bands around
each compression site and every band receives one node set and one
predefined temperature field, written either directly into a solver
input deck or into a JSON model database.

Band magnitudes follow a raised cosine from a peak at the site centre
down to a baseline at the zero-crossing, so the loading fades out
smoothly instead of stepping at the edge of the region.`,
	Run: func(cmd *cobra.Command, args []string) {
		printHeader()
		io.Pf("Use 'cordband --help' to see the available commands.\n\n")
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// printHeader prints the program banner
func printHeader() {
	io.PfWhite("\ncordband v%s -- compression band field authoring\n\n", Version)
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")
}

// catch recovers from a panic and exits with a message. The geometry and
// input readers panic on malformed root input.
func catch() {
	if err := recover(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
