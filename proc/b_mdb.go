// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proc

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/brassc/cordband/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DBSet is an assembly-level node set in the model database
type DBSet struct {
	Name  string `json:"name"`  // set name
	Nodes []int  `json:"nodes"` // sorted node labels
}

// DBField is a predefined temperature field in the model database
type DBField struct {
	Name      string  `json:"name"`      // field name
	Step      string  `json:"step"`      // step the field is created in
	Set       string  `json:"set"`       // node set the field applies to
	Amplitude string  `json:"amplitude"` // amplitude driving the field
	Magnitude float64 `json:"magnitude"` // field magnitude
}

// ModelDB is an in-memory stand-in for the CAE model database: named node
// sets and the predefined fields applied to them
type ModelDB struct {
	Model    string     `json:"model"`    // model name
	Instance string     `json:"instance"` // part instance owning the nodes
	Sets     []*DBSet   `json:"sets"`     // assembly-level node sets
	Fields   []*DBField `json:"fields"`   // predefined fields
}

// HasSet tells whether a set with the given name exists. Names are compared
// case-insensitively.
func (o *ModelDB) HasSet(name string) bool {
	for _, s := range o.Sets {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

// GetSet returns the named set; nil when absent
func (o *ModelDB) GetSet(name string) *DBSet {
	for _, s := range o.Sets {
		if strings.EqualFold(s.Name, name) {
			return s
		}
	}
	return nil
}

// ReadModelDB reads a model database saved by the mdb backend
func ReadModelDB(fname string) (o *ModelDB, err error) {
	b, err := io.ReadFile(fname)
	if err != nil {
		return nil, chk.Err("cannot read model database:\n%v", err)
	}
	o = new(ModelDB)
	dec := GetDecoder(bytes.NewReader(b), "json")
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode model database %q:\n%v", fname, err)
	}
	return
}

// MdbBackend materialises band definitions into an in-memory model database
// which Flush saves as JSON in the job's output directory. This is the
// counterpart of creating sets and fields through the CAE API instead of
// editing the deck.
type MdbBackend struct {
	db  *ModelDB // the database being filled
	amp string   // amplitude recorded on new fields
	out string   // output path of the saved database
}

// register
func init() {
	allocators["mdb"] = func(job *inp.Job) (Materializer, error) {
		o := &MdbBackend{
			db: &ModelDB{
				Model:    job.Model.Model,
				Instance: job.Model.Instance,
			},
			amp: job.Deck.Amplitude,
			out: filepath.Join(job.DirOut, job.Fnk+"_mdb.json"),
		}
		return o, nil
	}
}

// Name returns "mdb"
func (o *MdbBackend) Name() string {
	return "mdb"
}

// DB returns the underlying model database
func (o *MdbBackend) DB() *ModelDB {
	return o.db
}

// Materialize creates the sets and fields of one site in the database.
// Fields are created in the Initial step as the CAE workflow does.
func (o *MdbBackend) Materialize(defs []*BandDef) (status map[string]string, err error) {
	status = make(map[string]string)
	for _, d := range defs {
		if len(d.Nodes) == 0 {
			status[d.SetName] = StatusEmpty
			continue
		}
		if o.db.HasSet(d.SetName) {
			status[d.SetName] = StatusDuplicate
			continue
		}
		o.db.Sets = append(o.db.Sets, &DBSet{Name: d.SetName, Nodes: d.Nodes})
		o.db.Fields = append(o.db.Fields, &DBField{
			Name:      d.FieldName,
			Step:      "Initial",
			Set:       d.SetName,
			Amplitude: o.amp,
			Magnitude: d.Magnitude,
		})
		status[d.SetName] = StatusWritten
	}
	return
}

// Flush saves the database as JSON
func (o *MdbBackend) Flush() (err error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, "json")
	err = enc.Encode(o.db)
	if err != nil {
		return chk.Err("cannot encode model database:\n%v", err)
	}
	return save_file(o.out, &buf, false)
}
