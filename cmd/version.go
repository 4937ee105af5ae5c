// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// Version is the semantic version of cordband
const Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cordband",
	Run: func(cmd *cobra.Command, args []string) {
		io.Pf("cordband v%s\n", Version)
		io.Pf("Compression band field authoring for spinal cord FE models\n")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
