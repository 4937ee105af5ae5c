// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deck

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// injector states
const (
	StateIdle            = iota // no deck loaded yet
	StateAnchorsResolved        // deck loaded and both anchors located
	StateBlocksComputed         // pending blocks assembled
	StateWritten                // output written, or nothing was pending
	StateAborted                // anchor or write failure; no output produced
)

// Definition holds one node set and the predefined field applied to it
type Definition struct {
	SetName   string  // node set name
	FieldName string  // predefined field name
	Value     float64 // field magnitude
	Nodes     []int   // node labels; empty means nothing to inject
}

// Injector inserts node sets and predefined temperature fields into a deck.
// Node set blocks go immediately before *End Assembly and field blocks
// immediately after ** PREDEFINED FIELDS. The operation is all-or-nothing:
// anchor failures abort before anything is written and the output file
// appears atomically.
type Injector struct {

	// configuration
	Instance  string // part instance owning the node labels
	Amplitude string // amplitude referenced by the field blocks

	// state
	state   int
	dck     *Deck
	anchors Anchors
	nsets   []string        // pending node set lines
	fields  []string        // pending field lines
	pending map[string]bool // lowercase names added in this run

	// outcome
	Written    []string // set names injected
	Duplicates []string // set names skipped: already in the deck or pending
	Empty      []string // set names skipped: no nodes
}

// NewInjector returns an injector writing node sets on the given part
// instance and temperature fields driven by the given amplitude
func NewInjector(instance, amplitude string) *Injector {
	return &Injector{
		Instance:  instance,
		Amplitude: amplitude,
		pending:   make(map[string]bool),
	}
}

// State returns the current state
func (o *Injector) State() int {
	return o.state
}

// Deck returns the loaded deck; nil before Load
func (o *Injector) Deck() *Deck {
	return o.dck
}

// Load reads the deck and resolves the anchors. An anchor failure aborts the
// injection: the typed error names the offending anchor and nothing will be
// written.
func (o *Injector) Load(fname string) (err error) {
	if o.state != StateIdle {
		return chk.Err("injector: Load must be the first call")
	}
	o.dck, err = ReadDeck(fname)
	if err != nil {
		o.state = StateAborted
		return
	}
	o.anchors, err = o.dck.FindAnchors()
	if err != nil {
		o.state = StateAborted
		return
	}
	o.state = StateAnchorsResolved
	return
}

// Add assembles the blocks for the given definitions. Definitions whose set
// or field name exists in the deck already, or was added earlier in this
// run, are skipped and recorded in Duplicates; definitions without nodes are
// recorded in Empty. Add may be called once per site.
func (o *Injector) Add(defs []*Definition) (err error) {
	if o.state != StateAnchorsResolved && o.state != StateBlocksComputed {
		return chk.Err("injector: Add needs a loaded deck with resolved anchors")
	}
	for _, d := range defs {
		if len(d.Nodes) == 0 {
			o.Empty = append(o.Empty, d.SetName)
			continue
		}
		if o.isDuplicate(d) {
			o.Duplicates = append(o.Duplicates, d.SetName)
			continue
		}
		o.nsets = append(o.nsets, NsetBlock(d.SetName, o.Instance, d.Nodes)...)
		o.fields = append(o.fields, FieldBlock(d.FieldName, o.Amplitude, d.SetName, d.Value)...)
		o.pending[strings.ToLower(d.SetName)] = true
		o.pending[strings.ToLower(d.FieldName)] = true
		o.Written = append(o.Written, d.SetName)
	}
	o.state = StateBlocksComputed
	return
}

// Write writes the modified deck to fname. The content goes to a temporary
// file in the same directory which is then renamed, so readers never observe
// a half-written deck. When nothing is pending and fname is the loaded file,
// the deck is left untouched.
func (o *Injector) Write(fname string) (err error) {
	if o.state != StateBlocksComputed {
		return chk.Err("injector: Write needs computed blocks")
	}
	if len(o.nsets)+len(o.fields) == 0 && fname == o.dck.Fname {
		o.state = StateWritten
		return
	}
	out := make([]string, 0, len(o.dck.Lines)+len(o.nsets)+len(o.fields))
	for i, line := range o.dck.Lines {
		if i == o.anchors.EndAssembly {
			out = append(out, o.nsets...)
		}
		out = append(out, line)
		if i == o.anchors.PredefinedFields {
			out = append(out, o.fields...)
		}
	}
	err = writeAtomic(fname, []byte(strings.Join(out, "\n")))
	if err != nil {
		o.state = StateAborted
		return chk.Err("cannot write deck:\n%v", err)
	}
	o.state = StateWritten
	return
}

// isDuplicate tells whether the definition's set or field name is taken
func (o *Injector) isDuplicate(d *Definition) bool {
	if o.pending[strings.ToLower(d.SetName)] || o.pending[strings.ToLower(d.FieldName)] {
		return true
	}
	return o.dck.HasSet(d.SetName) || o.dck.HasField(d.FieldName)
}

// writeAtomic writes b to a temporary file next to fname and renames it over
// fname
func writeAtomic(fname string, b []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(fname), filepath.Base(fname)+".tmp-*")
	if err != nil {
		return
	}
	if _, err = tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return
	}
	return os.Rename(tmp.Name(), fname)
}
