// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/brassc/cordband/geo"
	"github.com/brassc/cordband/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var sitesCmd = &cobra.Command{
	Use:   "sites <file.job>",
	Short: "Check the compression sites of a job before a run",
	Long: `Check the compression sites of a job before a run: build the axis
frame of every site and report its direction and extent, and look up
whether the control points coincide with mesh nodes. Control points are
usually picked on the mesh; a point without a node often means a typo
in the table.

Sites whose upper and lower control points coincide cannot define an
axis; the command fails when any site is degenerate.`,
	Args: cobra.ExactArgs(1),
	Run:  runSites,
}

func init() {
	rootCmd.AddCommand(sitesCmd)
}

func runSites(cmd *cobra.Command, args []string) {
	defer catch()

	// job and sites
	job := inp.ReadJob(args[0], false)
	sites, fromTable, err := job.Sites()
	if err != nil {
		chk.Panic("%v", err)
	}
	if fromTable {
		io.Pf("job %q: %d site(s) from table %s\n", job.Fnk, len(sites), job.Data.Sitesfile)
	} else {
		io.Pf("job %q: 1 inline site\n", job.Fnk)
	}
	if job.Msh == nil {
		io.Pfyel("job has no mesh; the control point check is skipped\n")
	} else {
		io.Pf("mesh: %v\n", job.Msh)
	}

	// per-site frames and control point lookup
	nbad := 0
	for i, site := range sites {
		name := site.Name
		if name == "" {
			name = "(unnamed)"
		}
		io.Pf("\nsite %d: %s\n", i+1, name)
		frame, err := geo.NewFrame(site.Center, site.Upper, site.Lower)
		if err != nil {
			io.PfRed("  %v\n", err)
			nbad++
			continue
		}
		io.Pf("  %v\n", frame)
		if job.Msh != nil {
			printVertAt(job.Msh, "center", site.Center)
			printVertAt(job.Msh, "upper", site.Upper)
			printVertAt(job.Msh, "lower", site.Lower)
		}
	}

	// outcome
	if nbad > 0 {
		chk.Panic("preflight failed: %d of %d site(s) cannot be processed", nbad, len(sites))
	}
	io.Pf("\npreflight ok: all %d site(s) can be processed\n", len(sites))
}

// printVertAt reports the mesh node coinciding with one control point
func printVertAt(msh *inp.Mesh, label string, x []float64) {
	id := msh.FindVert(x)
	if id < 0 {
		io.Pfyel("  %-6s = (%g, %g, %g)  no mesh node here\n", label, x[0], x[1], x[2])
		return
	}
	io.Pf("  %-6s = (%g, %g, %g)  node %d\n", label, x[0], x[1], x[2], id)
}
