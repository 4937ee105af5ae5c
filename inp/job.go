// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Data holds global run data
type Data struct {
	Desc      string `json:"desc"`      // description of the run
	Mshfile   string `json:"mshfile"`   // mesh file with the node coordinates
	Sitesfile string `json:"sitesfile"` // site table (csv or yaml); takes priority over the inline site
	DirOut    string `json:"dirout"`    // directory for report output; empty means alongside the job file
	Encoder   string `json:"encoder"`   // encoder name; e.g. "gob" "json"
	Backend   string `json:"backend"`   // materializer name; e.g. "deck" "mdb"
}

// SetDefault sets default values
func (o *Data) SetDefault() {
	o.Encoder = "gob"
	o.Backend = "deck"
}

// ModelData holds the names addressing the originating CAE model
type ModelData struct {
	Model    string `json:"model"`    // model name
	Instance string `json:"instance"` // part instance owning the nodes
}

// SetDefault sets default values
func (o *ModelData) SetDefault() {
	o.Model = "Model-1"
	o.Instance = "PART-1_1-1"
}

// ProfileData holds the raised-cosine profile parameters
type ProfileData struct {
	Nbands int     `json:"nbands"` // number of bands
	Peak   float64 `json:"peak"`   // magnitude at the centre
	Min    float64 `json:"min"`    // baseline magnitude at the zero-crossing
	Ext    float64 `json:"ext"`    // extension factor
}

// SetDefault sets default values
func (o *ProfileData) SetDefault() {
	o.Nbands = 5
	o.Peak = 0.15
	o.Min = 0
	o.Ext = 1.2
}

// Prms returns the profile parameters as a parameter set
func (o *ProfileData) Prms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "nbands", V: float64(o.Nbands)},
		&fun.Prm{N: "peak", V: o.Peak},
		&fun.Prm{N: "min", V: o.Min},
		&fun.Prm{N: "ext", V: o.Ext},
	}
}

// SelectData holds node selection options
type SelectData struct {
	Rlim float64 `json:"rlim"` // radial limit from the axis; <= 0 disables the radial test
}

// DeckData holds deck injection options
type DeckData struct {
	Inpfile   string `json:"inpfile"`   // target input deck
	Outfile   string `json:"outfile"`   // output path; empty means in-place (same file)
	Amplitude string `json:"amplitude"` // amplitude name referenced by the field blocks
	SetPrefix string `json:"setprefix"` // set name prefix in single-site mode
}

// SetDefault sets default values
func (o *DeckData) SetDefault() {
	o.Amplitude = "Amp-1-preload"
	o.SetPrefix = "FIELD_BAND"
}

// Job holds all data for one banding run
type Job struct {

	// input
	Data    Data           `json:"data"`    // global data
	Model   ModelData      `json:"model"`   // CAE model names
	Profile ProfileData    `json:"profile"` // profile parameters
	Select  SelectData     `json:"select"`  // node selection options
	Deck    DeckData       `json:"deck"`    // deck injection options
	Site    *ControlPoints `json:"site"`    // single inline site; ignored when a table is given

	// derived
	Dir    string // directory of the job file
	Fnk    string // filename key of the job file; e.g. band5.job => band5
	DirOut string // directory for run reports
	Msh    *Mesh  // the mesh; nil when data.mshfile is empty
}

// ReadJob reads all run data from a .job JSON file
//
//	Note: this function panics on errors since the job file is the root input
func ReadJob(jobfilepath string, erasefiles bool) *Job {

	// new job
	var o Job

	// read file
	b, err := io.ReadFile(jobfilepath)
	if err != nil {
		chk.Panic("ReadJob: cannot read job file %q", jobfilepath)
	}

	// set default values
	o.Data.SetDefault()
	o.Model.SetDefault()
	o.Profile.SetDefault()
	o.Deck.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadJob: cannot unmarshal job file %q:\n%v", jobfilepath, err)
	}

	// input directory and filename key
	o.Dir = os.ExpandEnv(filepath.Dir(jobfilepath))
	o.Fnk = io.FnKey(filepath.Base(jobfilepath))

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/cordband/" + o.Fnk
	}

	// encoder type
	if o.Data.Encoder != "gob" && o.Data.Encoder != "json" {
		o.Data.Encoder = "gob"
	}

	// create directory and erase previous reports
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for run reports (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Fnk))
	}

	// read mesh
	if o.Data.Mshfile != "" {
		o.Msh, err = ReadMsh(o.Dir, o.Data.Mshfile)
		if err != nil {
			chk.Panic("ReadJob: cannot read mesh file:\n%v", err)
		}
	}
	return &o
}

// Sites returns the sites to process. The table takes priority over the
// inline site; table sites are returned in table order.
func (o *Job) Sites() (sites []*ControlPoints, fromTable bool, err error) {
	if o.Data.Sitesfile != "" {
		fn := o.Data.Sitesfile
		if !filepath.IsAbs(fn) {
			fn = filepath.Join(o.Dir, fn)
		}
		sites, err = ReadSites(fn)
		if err != nil {
			return nil, true, err
		}
		return sites, true, nil
	}
	if o.Site != nil {
		if err = o.Site.Check(); err != nil {
			return nil, false, err
		}
		return []*ControlPoints{o.Site}, false, nil
	}
	return nil, false, chk.Err("job %q has neither a site table nor an inline site", o.Fnk)
}
