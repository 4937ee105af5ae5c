// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package deck implements reading and structure-preserving modification of
// solver input decks (.inp files)
package deck

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// anchor lines
const (

	// EndAssembly closes the assembly section. Node set blocks are inserted
	// immediately before this line.
	EndAssembly = "*End Assembly"

	// PredefinedFields opens the predefined fields section of a step. Field
	// blocks are inserted immediately after this line.
	PredefinedFields = "** PREDEFINED FIELDS"
)

// AnchorNotFoundError indicates that a required anchor line is missing from
// the deck
type AnchorNotFoundError struct {
	Anchor string // the anchor line
}

func (o *AnchorNotFoundError) Error() string {
	return io.Sf("deck has no %q line", o.Anchor)
}

// AmbiguousAnchorError indicates that an anchor line occurs more than once
// in the deck
type AmbiguousAnchorError struct {
	Anchor string // the anchor line
	Count  int    // number of occurrences
}

func (o *AmbiguousAnchorError) Error() string {
	return io.Sf("deck has %d %q lines; need exactly one", o.Count, o.Anchor)
}

// Anchors holds the deck line indices where new blocks are inserted
type Anchors struct {
	EndAssembly      int // index of the *End Assembly line
	PredefinedFields int // index of the ** PREDEFINED FIELDS line
}

// Deck holds a solver input deck as lines of text. Matching of keywords and
// anchors trims surrounding blanks, so files with CR-LF endings work too.
type Deck struct {
	Fname string   // path of the file this deck was read from
	Lines []string // content split at newlines
}

// ReadDeck reads a deck file
func ReadDeck(fname string) (o *Deck, err error) {
	b, err := io.ReadFile(fname)
	if err != nil {
		return nil, chk.Err("cannot read deck file:\n%v", err)
	}
	return &Deck{Fname: fname, Lines: strings.Split(string(b), "\n")}, nil
}

// FindAnchors locates the insertion anchors. Each anchor must occur exactly
// once; otherwise an AnchorNotFoundError or AmbiguousAnchorError is returned
// and the deck must not be modified.
func (o *Deck) FindAnchors() (a Anchors, err error) {
	a.EndAssembly, err = o.FindLine(EndAssembly)
	if err != nil {
		return
	}
	a.PredefinedFields, err = o.FindLine(PredefinedFields)
	return
}

// FindLine locates the line whose trimmed content equals the given anchor.
// The line must occur exactly once.
func (o *Deck) FindLine(anchor string) (idx int, err error) {
	idx, n := -1, 0
	for i, line := range o.Lines {
		if strings.TrimSpace(line) == anchor {
			idx, n = i, n+1
		}
	}
	if n == 0 {
		return -1, &AnchorNotFoundError{anchor}
	}
	if n > 1 {
		return -1, &AmbiguousAnchorError{anchor, n}
	}
	return
}

// Audit counts the occurrences of each anchor line. A deck ready for
// injection has exactly one of each.
func (o *Deck) Audit() (nEndAssembly, nPredefinedFields int) {
	for _, line := range o.Lines {
		switch strings.TrimSpace(line) {
		case EndAssembly:
			nEndAssembly++
		case PredefinedFields:
			nPredefinedFields++
		}
	}
	return
}

// SetNames returns the names of all node sets defined in the deck, in order
// of appearance
func (o *Deck) SetNames() (names []string) {
	for _, line := range o.Lines {
		key, params := parseKeyword(line)
		if key != "*nset" {
			continue
		}
		if name, ok := params["nset"]; ok && name != "" {
			names = append(names, name)
		}
	}
	return
}

// FieldNames returns the names of all predefined fields (and other named
// history definitions) declared in comment lines, in order of appearance
func (o *Deck) FieldNames() (names []string) {
	for _, line := range o.Lines {
		s := strings.TrimSpace(line)
		if !strings.HasPrefix(s, "** Name:") {
			continue
		}
		s = strings.TrimSpace(strings.TrimPrefix(s, "** Name:"))
		if k := strings.Index(s, "   Type:"); k >= 0 {
			s = strings.TrimSpace(s[:k])
		}
		if s != "" {
			names = append(names, s)
		}
	}
	return
}

// HasSet tells whether a node set with the given name is defined. Names are
// compared case-insensitively as the solver does.
func (o *Deck) HasSet(name string) bool {
	for _, n := range o.SetNames() {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// HasField tells whether a named definition (e.g. a predefined field) is
// declared. Names are compared case-insensitively.
func (o *Deck) HasField(name string) bool {
	for _, n := range o.FieldNames() {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// SetNodes returns the node labels of the named set, expanding generate
// ranges. Returns nil labels (and no error) when the set is not defined.
func (o *Deck) SetNodes(name string) (labels []int, err error) {
	for i, line := range o.Lines {
		key, params := parseKeyword(line)
		if key != "*nset" || !strings.EqualFold(params["nset"], name) {
			continue
		}
		_, generate := params["generate"]
		for j := i + 1; j < len(o.Lines); j++ {
			s := strings.TrimSpace(o.Lines[j])
			if strings.HasPrefix(s, "*") {
				break
			}
			if s == "" {
				continue
			}
			var vals []int
			for _, tok := range strings.Split(s, ",") {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				v, e := strconv.Atoi(tok)
				if e != nil {
					return nil, chk.Err("set %q has a non-integer node label %q", name, tok)
				}
				vals = append(vals, v)
			}
			if generate {
				if len(vals) < 2 {
					return nil, chk.Err("set %q: generate line needs start, end[, increment]", name)
				}
				inc := 1
				if len(vals) > 2 {
					inc = vals[2]
				}
				if inc < 1 {
					return nil, chk.Err("set %q: generate increment must be positive", name)
				}
				for v := vals[0]; v <= vals[1]; v += inc {
					labels = append(labels, v)
				}
			} else {
				labels = append(labels, vals...)
			}
		}
		return
	}
	return
}

// InsertSet adds a node set block immediately before the *End Assembly line.
// Fails when the name is already taken or the anchor is missing or ambiguous.
func (o *Deck) InsertSet(name, instance string, labels []int) (err error) {
	if o.HasSet(name) {
		return chk.Err("deck already defines a set named %q", name)
	}
	idx, err := o.FindLine(EndAssembly)
	if err != nil {
		return
	}
	block := NsetBlock(name, instance, labels)
	lines := make([]string, 0, len(o.Lines)+len(block))
	lines = append(lines, o.Lines[:idx]...)
	lines = append(lines, block...)
	lines = append(lines, o.Lines[idx:]...)
	o.Lines = lines
	return
}

// Write writes the deck lines to fname. The content goes to a temporary file
// in the same directory which is then renamed, so readers never observe a
// half-written deck.
func (o *Deck) Write(fname string) (err error) {
	return writeAtomic(fname, []byte(strings.Join(o.Lines, "\n")))
}

// parseKeyword splits a keyword line into its lowercase keyword and a map of
// lowercase parameter names to values. Data and comment lines give an empty
// keyword.
func parseKeyword(line string) (key string, params map[string]string) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "*") || strings.HasPrefix(s, "**") {
		return
	}
	fields := strings.Split(s, ",")
	key = strings.ToLower(strings.TrimSpace(fields[0]))
	params = make(map[string]string)
	for _, f := range fields[1:] {
		kv := strings.SplitN(f, "=", 2)
		pname := strings.ToLower(strings.TrimSpace(kv[0]))
		if pname == "" {
			continue
		}
		if len(kv) == 2 {
			params[pname] = strings.TrimSpace(kv[1])
		} else {
			params[pname] = ""
		}
	}
	return
}
