// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proc

import (
	"sort"

	"github.com/brassc/cordband/inp"
	"github.com/cpmech/gosl/chk"
)

// Materializer turns band definitions into model changes
type Materializer interface {

	// Name returns the backend name; e.g. "deck" or "mdb"
	Name() string

	// Materialize applies the definitions of one site and reports the status
	// of each set name (written, duplicate or empty). An error means the run
	// cannot continue.
	Materialize(defs []*BandDef) (status map[string]string, err error)

	// Flush commits the accumulated changes
	Flush() error
}

// allocators holds all available materializers
var allocators = make(map[string]func(job *inp.Job) (Materializer, error))

// NewMaterializer returns the materializer selected by job.Data.Backend
func NewMaterializer(job *inp.Job) (Materializer, error) {
	alloc, ok := allocators[job.Data.Backend]
	if !ok {
		return nil, chk.Err("cannot find backend named %q", job.Data.Backend)
	}
	return alloc(job)
}

// Backends returns the names of the available materializers, sorted
func Backends() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
