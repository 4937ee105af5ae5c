// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proc

import (
	"path/filepath"

	"github.com/brassc/cordband/deck"
	"github.com/brassc/cordband/inp"
	"github.com/cpmech/gosl/chk"
)

// DeckBackend materialises band definitions by writing node set and
// predefined field blocks into a solver deck. The deck is loaded and its
// anchors resolved when the backend is allocated, so structural problems
// abort the run before any site is processed.
type DeckBackend struct {
	inj *deck.Injector // performs the actual insertion
	out string         // output path; may equal the input path
}

// register
func init() {
	allocators["deck"] = func(job *inp.Job) (Materializer, error) {
		if job.Deck.Inpfile == "" {
			return nil, chk.Err("job %q needs deck.inpfile for the deck backend", job.Fnk)
		}
		fn := jobpath(job, job.Deck.Inpfile)
		out := fn
		if job.Deck.Outfile != "" {
			out = jobpath(job, job.Deck.Outfile)
		}
		o := &DeckBackend{
			inj: deck.NewInjector(job.Model.Instance, job.Deck.Amplitude),
			out: out,
		}
		if err := o.inj.Load(fn); err != nil {
			return nil, err
		}
		return o, nil
	}
}

// Name returns "deck"
func (o *DeckBackend) Name() string {
	return "deck"
}

// Injector returns the underlying injector
func (o *DeckBackend) Injector() *deck.Injector {
	return o.inj
}

// Materialize queues one site's definitions for injection
func (o *DeckBackend) Materialize(defs []*BandDef) (status map[string]string, err error) {
	dd := make([]*deck.Definition, len(defs))
	for i, d := range defs {
		dd[i] = &deck.Definition{
			SetName:   d.SetName,
			FieldName: d.FieldName,
			Value:     d.Magnitude,
			Nodes:     d.Nodes,
		}
	}
	nw, nd, ne := len(o.inj.Written), len(o.inj.Duplicates), len(o.inj.Empty)
	err = o.inj.Add(dd)
	if err != nil {
		return
	}
	status = make(map[string]string)
	for _, name := range o.inj.Written[nw:] {
		status[name] = StatusWritten
	}
	for _, name := range o.inj.Duplicates[nd:] {
		status[name] = StatusDuplicate
	}
	for _, name := range o.inj.Empty[ne:] {
		status[name] = StatusEmpty
	}
	return
}

// Flush writes the modified deck
func (o *DeckBackend) Flush() error {
	return o.inj.Write(o.out)
}

// jobpath resolves a path from the job file's directory unless it is
// absolute already
func jobpath(job *inp.Job, fn string) string {
	if filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(job.Dir, fn)
}
