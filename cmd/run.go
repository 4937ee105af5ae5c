// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/brassc/cordband/inp"
	"github.com/brassc/cordband/proc"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	runVerbose bool
	runErase   bool
)

var runCmd = &cobra.Command{
	Use:   "run <file.job>",
	Short: "Process all compression sites of a job",
	Long: `Process all compression sites of a job: classify the mesh nodes of
every site into axial bands, compute the band magnitudes and
materialise one node set and one predefined field per band through the
configured backend (solver deck or JSON model database). A report with
the per-site outcomes is saved next to the other run outputs.

Sites whose control points cannot define an axis are reported and the
batch continues. Backend failures (missing deck, bad anchors) abort the
whole run with nothing written.

Examples:
  # single inline site
  cordband run band5.job

  # keep previous reports
  cordband run batch2.job --erase=false`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", true, "show messages")
	runCmd.Flags().BoolVarP(&runErase, "erase", "e", true, "erase previous reports")
}

func runRun(cmd *cobra.Command, args []string) {
	defer catch()

	// message
	if runVerbose {
		printHeader()
		io.Pf("%v\n", io.ArgsTable(
			"job file", "jobfile", args[0],
			"show messages", "verbose", runVerbose,
			"erase previous reports", "erase", runErase,
		))
	}

	// read job and process all sites
	job := inp.ReadJob(args[0], runErase)
	_, err := proc.RunBatch(job, runVerbose)
	if err != nil {
		chk.Panic("run failed:\n%v", err)
	}
}
