// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data: mesh vertices, site tables and
// the (.job) JSON run configuration
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// constants
const (
	Ctol = 1e-7 // tolerance to compare x-y-z coordinates
	Ndiv = 20   // bins n-division
)

// Vert holds vertex data
type Vert struct {
	Id  int       // id (Abaqus node label; need not be contiguous)
	Tag int       // tag
	C   []float64 // coordinates (size==3)
}

// Mesh holds the mesh vertices used for band classification. Cells are not
// needed: bands group nodes, not elements.
type Mesh struct {

	// from JSON
	Verts []*Vert // vertices

	// derived
	FnamePath  string  // complete filename path
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: access and search
	ids     []int         // all vertex ids, in file order
	id2vert map[int]*Vert // vertex id => vertex
	bins    gm.Bins       // bins to locate vertices by coordinates
}

// ReadMsh reads a mesh file with vertex data
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", o.FnamePath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", o.FnamePath, err)
	}

	// check
	if len(o.Verts) < 1 {
		return nil, chk.Err("mesh file %q has no vertices", o.FnamePath)
	}

	// vertex related derived data
	o.Xmin = o.Verts[0].C[0]
	o.Ymin = o.Verts[0].C[1]
	o.Zmin = o.Verts[0].C[2]
	o.Xmax = o.Xmin
	o.Ymax = o.Ymin
	o.Zmax = o.Zmin
	o.ids = make([]int, len(o.Verts))
	o.id2vert = make(map[int]*Vert)
	for i, v := range o.Verts {

		// check vertex
		if len(v.C) != 3 {
			return nil, chk.Err("vertex %d has %d coordinates; the mesh must be three-dimensional", v.Id, len(v.C))
		}
		if _, ok := o.id2vert[v.Id]; ok {
			return nil, chk.Err("duplicate vertex id %d", v.Id)
		}
		o.ids[i] = v.Id
		o.id2vert[v.Id] = v

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
		o.Zmin = utl.Min(o.Zmin, v.C[2])
		o.Zmax = utl.Max(o.Zmax, v.C[2])
	}

	// bins
	δ := Ctol * 2
	xi := []float64{o.Xmin - δ, o.Ymin - δ, o.Zmin - δ}
	xf := []float64{o.Xmax + δ, o.Ymax + δ, o.Zmax + δ}
	err = o.bins.Init(xi, xf, Ndiv)
	if err != nil {
		return nil, chk.Err("cannot initialise bins for vertices:\n%v", err)
	}
	for _, v := range o.Verts {
		err = o.bins.Append(v.C, v.Id)
		if err != nil {
			return nil, chk.Err("cannot append vertex %d to bins:\n%v", v.Id, err)
		}
	}
	return
}

// Ids returns all vertex ids, in file order
func (o *Mesh) Ids() []int {
	return o.ids
}

// Coord returns the coordinates of one vertex; nil if id is unknown
func (o *Mesh) Coord(id int) []float64 {
	if v, ok := o.id2vert[id]; ok {
		return v.C
	}
	return nil
}

// FindVert locates the vertex with coordinates x; returns -1 if no vertex
// lies at x (within Ctol)
func (o *Mesh) FindVert(x []float64) int {
	if x[0] < o.Xmin-Ctol || x[0] > o.Xmax+Ctol ||
		x[1] < o.Ymin-Ctol || x[1] > o.Ymax+Ctol ||
		x[2] < o.Zmin-Ctol || x[2] > o.Zmax+Ctol {
		return -1
	}
	id := o.bins.Find(x)
	if id < 0 {
		return -1
	}
	// bins return the closest entry in the bin; keep exact matches only
	c := o.id2vert[id].C
	dx := x[0] - c[0]
	dy := x[1] - c[1]
	dz := x[2] - c[2]
	if dx*dx+dy*dy+dz*dz > Ctol*Ctol {
		return -1
	}
	return id
}

// String returns a one-line summary of the mesh
func (o *Mesh) String() string {
	return io.Sf("%d vertices, x:[%g,%g] y:[%g,%g] z:[%g,%g]",
		len(o.Verts), o.Xmin, o.Xmax, o.Ymin, o.Ymax, o.Zmin, o.Zmax)
}
