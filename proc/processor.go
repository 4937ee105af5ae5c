// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package proc implements the pipeline turning compression sites into band
// definitions and materialised model changes
package proc

import (
	"sort"
	"strings"

	"github.com/brassc/cordband/field"
	"github.com/brassc/cordband/geo"
	"github.com/brassc/cordband/inp"
	"github.com/cpmech/gosl/io"
)

// band statuses
const (
	StatusPending   = "pending"   // computed but not materialised yet
	StatusWritten   = "written"   // materialised into the model
	StatusDuplicate = "duplicate" // skipped: name exists already
	StatusEmpty     = "empty"     // skipped: no nodes in band
)

// BandDef holds one fully resolved band: the node set and the predefined
// field applied to it
type BandDef struct {
	Site      string  // site name; empty for an unnamed site
	Index     int     // band index; 1 is the centre band
	SetName   string  // node set name; e.g. C4-C5_BAND_1
	FieldName string  // predefined field name; e.g. predefinedfield-2-fieldband1
	Magnitude float64 // field magnitude (full precision)
	Nodes     []int   // sorted unique node labels
}

// BandResult records the outcome of one band of one site
type BandResult struct {
	Index     int     // band index; 1 is the centre band
	SetName   string  // node set name
	FieldName string  // predefined field name
	Magnitude float64 // field magnitude
	Nnodes    int     // number of nodes in the band
	Status    string  // pending, written, duplicate or empty
}

// SiteResult records the outcome of processing one site
type SiteResult struct {
	Site    string        // site name
	Index   int           // 1-based site index
	Dir     []float64     // axis direction
	HalfExt float64       // half extent of the region
	DUp     float64       // signed distance from centre to the upper control point
	DLo     float64       // signed distance from centre to the lower control point
	Outside int           // nodes outside all bands
	Bands   []*BandResult // per-band outcome, centre band first
	Error   string        // failure message; empty on success
}

// Failed tells whether the site could not be processed
func (o *SiteResult) Failed() bool {
	return o.Error != ""
}

// Processor turns compression sites into band definitions
type Processor struct {
	Prof   *field.Profile  // magnitude profile
	Src    geo.PointSource // mesh nodes
	Rlim   float64         // radial limit from the axis; <= 0 disables
	Prefix string          // set name prefix for unnamed sites; e.g. FIELD_BAND
}

// SetPrefix returns the node set name prefix for a site. Named sites use
// their upper-cased name with blanks replaced by underscores; unnamed sites
// fall back to the given default.
func SetPrefix(siteName, fallback string) string {
	if siteName == "" {
		return fallback
	}
	return strings.ToUpper(strings.Replace(siteName, " ", "_", -1)) + "_BAND"
}

// Process classifies the source nodes of one site and assembles the band
// definitions, centre band first. Geometry and classification failures are
// recorded in the result with nil definitions so a batch can carry on with
// the remaining sites.
func (o *Processor) Process(site *inp.ControlPoints, siteIndex int) (defs []*BandDef, res *SiteResult) {

	// results holder
	res = &SiteResult{Site: site.Name, Index: siteIndex}

	// axis frame
	frame, err := geo.NewFrame(site.Center, site.Upper, site.Lower)
	if err != nil {
		res.Error = err.Error()
		return
	}
	res.Dir = frame.Dir
	res.HalfExt = frame.HalfExt
	res.DUp = frame.DUp
	res.DLo = frame.DLo

	// slab boundaries from the profile sample positions, including the
	// virtual zero-crossing
	bands := o.Prof.Bands()
	xs := make([]float64, len(bands)+1)
	for i, b := range bands {
		xs[i] = b.X
	}
	xs[len(bands)] = o.Prof.ZeroCrossing().X
	cla, err := geo.NewClassifier(frame, xs, o.Rlim)
	if err != nil {
		res.Error = err.Error()
		return
	}

	// classify nodes
	groups, outside, err := cla.Groups(o.Src)
	if err != nil {
		res.Error = err.Error()
		return
	}
	res.Outside = outside

	// assemble definitions
	prefix := SetPrefix(site.Name, o.Prefix)
	defs = make([]*BandDef, len(bands))
	res.Bands = make([]*BandResult, len(bands))
	for i, b := range bands {
		nodes := make([]int, len(groups[i]))
		copy(nodes, groups[i])
		sort.Ints(nodes)
		k := 0
		for _, v := range nodes {
			if k == 0 || v != nodes[k-1] {
				nodes[k] = v
				k++
			}
		}
		nodes = nodes[:k]
		defs[i] = &BandDef{
			Site:      site.Name,
			Index:     b.Index,
			SetName:   io.Sf("%s_%d", prefix, b.Index),
			FieldName: io.Sf("predefinedfield-%d-fieldband%d", siteIndex, b.Index),
			Magnitude: b.Value,
			Nodes:     nodes,
		}
		status := StatusPending
		if len(nodes) == 0 {
			status = StatusEmpty
		}
		res.Bands[i] = &BandResult{
			Index:     b.Index,
			SetName:   defs[i].SetName,
			FieldName: defs[i].FieldName,
			Magnitude: b.Value,
			Nnodes:    len(nodes),
			Status:    status,
		}
	}
	return
}
