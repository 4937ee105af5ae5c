// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/brassc/cordband/field"
	"github.com/brassc/cordband/vis"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	profNbands int
	profPeak   float64
	profMin    float64
	profExt    float64
	profGraph  bool
	profFig    string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the band magnitudes of a raised-cosine profile",
	Long: `Show the band magnitudes of a raised-cosine profile: one sample per
band plus the virtual zero-crossing where the magnitude returns to the
baseline. An ASCII graph of the mirrored profile is drawn below the
table; with --fig a figure file is saved as well.

Examples:
  # the default profile: 5 bands from 0.15 down
  cordband profile

  # 8 narrow bands peaking at 0.2, with a figure
  cordband profile --nbands 8 --peak 0.2 --fig bands.png`,
	Run: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().IntVarP(&profNbands, "nbands", "n", 5, "number of bands")
	profileCmd.Flags().Float64VarP(&profPeak, "peak", "p", 0.15, "magnitude at the centre")
	profileCmd.Flags().Float64VarP(&profMin, "min", "m", 0, "baseline magnitude at the zero-crossing")
	profileCmd.Flags().Float64VarP(&profExt, "ext", "e", 1.2, "extension factor")
	profileCmd.Flags().BoolVarP(&profGraph, "graph", "g", true, "draw the ASCII graph")
	profileCmd.Flags().StringVarP(&profFig, "fig", "f", "", "save a figure to this file (.png, .pdf or .svg)")
}

func runProfile(cmd *cobra.Command, args []string) {
	defer catch()

	// profile
	prof := new(field.Profile)
	err := prof.Init([]*fun.Prm{
		&fun.Prm{N: "nbands", V: float64(profNbands)},
		&fun.Prm{N: "peak", V: profPeak},
		&fun.Prm{N: "min", V: profMin},
		&fun.Prm{N: "ext", V: profExt},
	})
	if err != nil {
		chk.Panic("cannot initialise profile:\n%v", err)
	}

	// table
	io.Pf("\nRAISED-COSINE PROFILE: %d band(s), peak %g, baseline %g, extension %g\n\n",
		prof.Nbands, prof.Peak, prof.Min, prof.Ext)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Band\tPosition\tMagnitude\n")
	fmt.Fprintf(w, "  ────\t────────\t─────────\n")
	for _, b := range prof.Bands() {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\n", b.Index, b.X, b.Value)
	}
	zc := prof.ZeroCrossing()
	fmt.Fprintf(w, "  (zero-crossing)\t%.3f\t%.3f\n", zc.X, zc.Value)
	w.Flush()
	io.Pf("\n")

	// ASCII graph
	if profGraph {
		io.Pf("%s\n\n", vis.ProfileGraph(prof, 0, 0))
	}

	// figure
	if profFig != "" {
		err = vis.ExportProfileFigure(prof, profFig)
		if err != nil {
			chk.Panic("cannot save figure:\n%v", err)
		}
		io.Pfblue2("file <%s> written\n", profFig)
	}
}
