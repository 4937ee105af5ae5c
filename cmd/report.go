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

var reportCmd = &cobra.Command{
	Use:   "report <file.job>",
	Short: "Print the saved report of an earlier run",
	Long: `Print the saved report of an earlier run of the given job: the band
magnitudes and the per-site tables of node sets, node counts, field
values and statuses.`,
	Args: cobra.ExactArgs(1),
	Run:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) {
	defer catch()

	// the job file names the report directory and the encoder
	job := inp.ReadJob(args[0], false)
	rep, err := proc.ReadReport(job.DirOut, job.Fnk, job.Data.Encoder)
	if err != nil {
		chk.Panic("cannot read report of job %q:\n%v", job.Fnk, err)
	}

	// message
	io.Pf("job      = %s\n", rep.Fnkey)
	io.Pf("backend  = %s\n", rep.Backend)
	io.Pf("bands    = %d\n", rep.Profile.Nbands)
	io.Pf("values   = %.3f\n", rep.Values)
	io.Pf("sites    = %d\n", len(rep.Sites))
	rep.PrintSummary()
}
