// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"github.com/cpmech/gosl/io"
)

// constants
const (
	AxisTol = 1e-9 // minimum distance between upper and lower control points [model length units]
)

// DegenerateAxisError indicates control points that cannot define an axis
// because the upper and lower points (almost) coincide
type DegenerateAxisError struct {
	Dist float64 // |upper - lower|
}

// Error returns the error message
func (e *DegenerateAxisError) Error() string {
	return io.Sf("degenerate axis: |upper - lower| = %g < %g", e.Dist, AxisTol)
}

// Frame holds the local 1D coordinate system of one compression site.
// It is immutable once built.
type Frame struct {
	Origin  []float64 // centre control point
	Dir     []float64 // unit direction from lower to upper control point
	HalfExt float64   // half distance between upper and lower control points
	DUp     float64   // signed axial distance from origin to upper point
	DLo     float64   // signed axial distance from origin to lower point
}

// NewFrame builds the axis frame of one compression site from its three
// control points. The axis runs from lower to upper; the centre point is the
// origin of axial distances.
func NewFrame(center, upper, lower []float64) (o *Frame, err error) {
	axis := Sub(upper, lower)
	dist := Norm(axis)
	if dist < AxisTol {
		return nil, &DegenerateAxisError{dist}
	}
	o = new(Frame)
	o.Origin = []float64{center[0], center[1], center[2]}
	o.Dir = Unit(axis)
	o.HalfExt = dist / 2.0
	o.DUp = Dot(Sub(upper, center), o.Dir)
	o.DLo = Dot(Sub(lower, center), o.Dir)
	return
}

// Proj computes the axial projection t of point p and its radial
// (perpendicular) distance from the axis
func (o *Frame) Proj(p []float64) (t, radial float64) {
	dx := p[0] - o.Origin[0]
	dy := p[1] - o.Origin[1]
	dz := p[2] - o.Origin[2]
	t = dx*o.Dir[0] + dy*o.Dir[1] + dz*o.Dir[2]
	rx := dx - t*o.Dir[0]
	ry := dy - t*o.Dir[1]
	rz := dz - t*o.Dir[2]
	radial = Norm([]float64{rx, ry, rz})
	return
}

// String returns a one-line description of the frame
func (o *Frame) String() string {
	return io.Sf("dir=(%.3f, %.3f, %.3f) halfext=%.3f dup=%.3f dlo=%.3f",
		o.Dir[0], o.Dir[1], o.Dir[2], o.HalfExt, o.DUp, o.DLo)
}
