// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// PointSource provides read-only access to mesh node ids and coordinates
type PointSource interface {
	Ids() []int             // all node ids
	Coord(id int) []float64 // coordinates of one node; nil if id is unknown
}

// Classifier partitions mesh nodes into the axial band slabs of one
// compression site. Band i (1-based) covers the half-open interval
// [bounds[i-1], bounds[i]) of the absolute axial projection |t|; thus no
// node can fall into two bands.
type Classifier struct {
	frame  *Frame    // the site's axis frame
	bounds []float64 // [nbands+1] slab boundaries of |t|, ascending, bounds[0] = 0
	rlim   float64   // radial limit; values <= 0 disable the radial test
}

// NewClassifier computes the band slab boundaries from the fractional axial
// positions xs of the bands. xs must hold the positions of all real bands
// plus the final zero-crossing position, in strictly increasing order; the
// boundary between two consecutive bands is the midpoint of their offsets.
func NewClassifier(frame *Frame, xs []float64, rlim float64) (o *Classifier, err error) {
	if len(xs) < 2 {
		return nil, chk.Err("at least one band position and the zero-crossing position are required (got %d)", len(xs))
	}
	o = new(Classifier)
	o.frame = frame
	o.rlim = rlim
	o.bounds = make([]float64, len(xs))
	o.bounds[0] = 0
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, chk.Err("band positions must be strictly increasing: xs[%d]=%g <= xs[%d]=%g", i, xs[i], i-1, xs[i-1])
		}
		oa := xs[i-1] * frame.HalfExt
		ob := xs[i] * frame.HalfExt
		o.bounds[i] = (oa + ob) / 2.0
	}
	return
}

// Nbands returns the number of real bands
func (o *Classifier) Nbands() int {
	return len(o.bounds) - 1
}

// Bounds returns the slab boundaries of |t|
func (o *Classifier) Bounds() []float64 {
	return o.bounds
}

// BandOf returns the 1-based band index of point p, or 0 when p lies outside
// all bands or beyond the radial limit
func (o *Classifier) BandOf(p []float64) int {
	t, radial := o.frame.Proj(p)
	if o.rlim > 0 && radial > o.rlim {
		return 0
	}
	d := math.Abs(t)
	for i := 1; i < len(o.bounds); i++ {
		if d < o.bounds[i] {
			return i
		}
	}
	return 0
}

// Groups classifies all nodes of src. groups[i] holds the ids falling into
// band i+1, in source order; outside counts the nodes beyond the outermost
// boundary or the radial limit. Empty groups are legal: thin bands in coarse
// meshes catch no nodes.
func (o *Classifier) Groups(src PointSource) (groups [][]int, outside int, err error) {
	groups = make([][]int, o.Nbands())
	for _, id := range src.Ids() {
		x := src.Coord(id)
		if x == nil {
			return nil, 0, chk.Err("cannot get coordinates of node %d", id)
		}
		band := o.BandOf(x)
		if band < 1 {
			outside++
			continue
		}
		groups[band-1] = append(groups[band-1], id)
	}
	return
}
