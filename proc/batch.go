// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proc

import (
	"time"

	"github.com/brassc/cordband/field"
	"github.com/brassc/cordband/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RunBatch processes all sites of a job and materialises the band
// definitions through the configured backend. A site whose geometry cannot
// be processed is recorded in the report and the batch continues; backend
// failures (missing deck, bad anchors) abort the whole run with nothing
// written.
func RunBatch(job *inp.Job, verbose bool) (rep *Report, err error) {

	// start
	cputime := time.Now()
	if job.Msh == nil {
		return nil, chk.Err("job %q has no mesh (data.mshfile)", job.Fnk)
	}
	sites, _, err := job.Sites()
	if err != nil {
		return
	}

	// profile
	prof := new(field.Profile)
	err = prof.Init(job.Profile.Prms())
	if err != nil {
		return
	}

	// backend
	mat, err := NewMaterializer(job)
	if err != nil {
		return
	}

	// processor
	pro := &Processor{
		Prof:   prof,
		Src:    job.Msh,
		Rlim:   job.Select.Rlim,
		Prefix: job.Deck.SetPrefix,
	}

	// report
	bands := prof.Bands()
	values := make([]float64, len(bands))
	for i, b := range bands {
		values[i] = b.Value
	}
	rep = &Report{
		Fnkey:   job.Fnk,
		Dirout:  job.DirOut,
		Backend: mat.Name(),
		Profile: job.Profile,
		Values:  values,
	}

	// process sites
	if verbose {
		io.Pf("found %d site(s); %d mesh nodes\n", len(sites), len(job.Msh.Verts))
	}
	for i, site := range sites {
		defs, res := pro.Process(site, i+1)
		rep.Sites = append(rep.Sites, res)
		if res.Failed() {
			if verbose {
				io.PfRed("site %d (%s) failed: %v\n", i+1, site.Name, res.Error)
			}
			continue
		}
		status, merr := mat.Materialize(defs)
		if merr != nil {
			return nil, merr
		}
		for _, b := range res.Bands {
			if s, ok := status[b.SetName]; ok {
				b.Status = s
			}
		}
	}

	// commit model changes
	err = mat.Flush()
	if err != nil {
		return nil, err
	}

	// save report
	err = rep.Save(job.Data.Encoder, verbose)
	if err != nil {
		return nil, err
	}

	// message
	if verbose {
		rep.PrintSummary()
		io.Pflmag("\ncpu time = %v\n", time.Now().Sub(cputime))
	}
	return
}
