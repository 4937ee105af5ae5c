// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proc

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"
	"strings"

	"github.com/brassc/cordband/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Report records the outcome of one banding run
type Report struct {
	Fnkey   string          // filename key of the job
	Dirout  string          // directory where outputs are stored
	Backend string          // materializer used; e.g. "deck"
	Profile inp.ProfileData // profile parameters of the run
	Values  []float64       // band magnitudes, centre band first
	Sites   []*SiteResult   // per-site outcomes in table order
}

// Save saves the report to Dirout, encoded as enctype (gob or json)
func (o *Report) Save(enctype string, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode report
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode report:\n%v", err)
	}

	// save file
	fn := out_rep_path(o.Dirout, o.Fnkey, enctype)
	return save_file(fn, &buf, verbose)
}

// ReadReport reads a report back
func ReadReport(dir, fnkey, enctype string) (o *Report, err error) {
	b, err := io.ReadFile(out_rep_path(dir, fnkey, enctype))
	if err != nil {
		return
	}
	o = new(Report)
	dec := GetDecoder(bytes.NewReader(b), enctype)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode report:\n%v", err)
	}
	return
}

// PrintSummary prints the per-site tables of set names, node counts and
// field values
func (o *Report) PrintSummary() {
	for _, s := range o.Sites {
		io.Pf("\n%s\n", strings.Repeat("#", 60))
		if s.Site == "" {
			io.Pf("SITE %d\n", s.Index)
		} else {
			io.Pf("SITE %d: %s\n", s.Index, s.Site)
		}
		io.Pf("%s\n", strings.Repeat("#", 60))
		if s.Failed() {
			io.PfRed("failed: %v\n", s.Error)
			continue
		}
		io.Pf("axis direction    = (%.3f, %.3f, %.3f)\n", s.Dir[0], s.Dir[1], s.Dir[2])
		io.Pf("distance to upper = %.3f\n", s.DUp)
		io.Pf("distance to lower = %.3f\n", s.DLo)
		io.Pf("nodes outside     = %d\n", s.Outside)
		io.Pf("%s\n", strings.Repeat("=", 85))
		io.Pf("SUMMARY: Node Sets and Field Values\n")
		io.Pf("%s\n", strings.Repeat("=", 85))
		io.Pf("%-20s %10s %15s %-30s %s\n", "Node Set", "Nodes", "Field Value", "Predefined Field", "Status")
		io.Pf("%s\n", strings.Repeat("-", 85))
		for _, b := range s.Bands {
			io.Pf("%-20s %10d %15.3f %-30s %s\n", b.SetName, b.Nnodes, b.Magnitude, b.FieldName, b.Status)
		}
		io.Pf("%s\n", strings.Repeat("=", 85))
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_rep_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_rep.%s", fnkey, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() { err = fil.Close() }()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
