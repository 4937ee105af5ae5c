// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_frame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame01. axis frame along z")

	frm, err := NewFrame([]float64{0, 0, 0}, []float64{0, 0, 10}, []float64{0, 0, -10})
	if err != nil {
		tst.Errorf("NewFrame failed: %v\n", err)
		return
	}
	io.Pforan("frame = %v\n", frm)

	chk.Vector(tst, "origin", 1e-17, frm.Origin, []float64{0, 0, 0})
	chk.Vector(tst, "dir", 1e-17, frm.Dir, []float64{0, 0, 1})
	chk.Scalar(tst, "halfext", 1e-17, frm.HalfExt, 10)
	chk.Scalar(tst, "dup", 1e-17, frm.DUp, 10)
	chk.Scalar(tst, "dlo", 1e-17, frm.DLo, -10)

	t, radial := frm.Proj([]float64{3, 4, 5})
	chk.Scalar(tst, "t", 1e-15, t, 5)
	chk.Scalar(tst, "radial", 1e-15, radial, 5)
}

func Test_frame02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame02. oblique axis")

	// axis = (6,8,0): length 10, dir (0.6,0.8,0)
	frm, err := NewFrame([]float64{1, 1, 1}, []float64{4, 5, 1}, []float64{-2, -3, 1})
	if err != nil {
		tst.Errorf("NewFrame failed: %v\n", err)
		return
	}

	chk.Vector(tst, "dir", 1e-15, frm.Dir, []float64{0.6, 0.8, 0})
	chk.Scalar(tst, "halfext", 1e-15, frm.HalfExt, 5)
	chk.Scalar(tst, "dup", 1e-15, frm.DUp, 5)
	chk.Scalar(tst, "dlo", 1e-15, frm.DLo, -5)

	// point on the axis origin normal plane
	t, radial := frm.Proj([]float64{1, 1, 4})
	chk.Scalar(tst, "t", 1e-15, t, 0)
	chk.Scalar(tst, "radial", 1e-15, radial, 3)
}

func Test_frame03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame03. degenerate axis")

	frm, err := NewFrame([]float64{0, 0, 0}, []float64{1, 2, 3}, []float64{1, 2, 3})
	if err == nil {
		tst.Errorf("error due to degenerate axis is missing\n")
		return
	}
	if frm != nil {
		tst.Errorf("frame must be nil on error\n")
		return
	}
	if _, ok := err.(*DegenerateAxisError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
		return
	}
	io.Pfyel("err = %v\n", err)
}
