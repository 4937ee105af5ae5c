// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proc

import (
	"testing"

	"github.com/brassc/cordband/field"
	"github.com/brassc/cordband/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_proc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("proc01. one site over the cord mesh")

	msh, err := inp.ReadMsh("data", "cord16.msh")
	if err != nil {
		tst.Errorf("ReadMsh failed:\n%v", err)
		return
	}
	prof := new(field.Profile)
	err = prof.Init(nil)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	pro := &Processor{Prof: prof, Src: msh, Rlim: 0, Prefix: "FIELD_BAND"}

	site := &inp.ControlPoints{
		Name:   "C4-C5",
		Center: []float64{0, 0, 0},
		Upper:  []float64{0, 0, 6},
		Lower:  []float64{0, 0, -6},
	}
	defs, res := pro.Process(site, 1)
	if res.Failed() {
		tst.Errorf("Process failed: %v\n", res.Error)
		return
	}

	// frame data
	chk.StrAssert(res.Site, "C4-C5")
	chk.IntAssert(res.Index, 1)
	chk.Vector(tst, "dir", 1e-15, res.Dir, []float64{0, 0, 1})
	chk.Scalar(tst, "halfext", 1e-15, res.HalfExt, 6)
	chk.Scalar(tst, "dup", 1e-15, res.DUp, 6)
	chk.Scalar(tst, "dlo", 1e-15, res.DLo, -6)
	chk.IntAssert(res.Outside, 4)

	// definitions: names, nodes and magnitudes
	chk.IntAssert(len(defs), 5)
	chk.StrAssert(defs[0].SetName, "C4-C5_BAND_1")
	chk.StrAssert(defs[1].SetName, "C4-C5_BAND_2")
	chk.StrAssert(defs[1].FieldName, "predefinedfield-1-fieldband2")
	chk.IntAssert(len(defs[0].Nodes), 0) // no node at the exact centre
	chk.Ints(tst, "band 2 nodes", defs[1].Nodes, []int{4, 5, 14, 15})
	chk.Ints(tst, "band 3 nodes", defs[2].Nodes, []int{3, 6, 13, 16})
	chk.Ints(tst, "band 4 nodes", defs[3].Nodes, []int{2, 7, 12, 17})
	chk.IntAssert(len(defs[4].Nodes), 0)
	chk.Scalar(tst, "band 1 magnitude", 1e-15, defs[0].Magnitude, 0.15)
	chk.Scalar(tst, "band 2 magnitude", 1e-5, defs[1].Magnitude, 0.13568)
	chk.Scalar(tst, "band 4 magnitude", 1e-5, defs[3].Magnitude, 0.05182)

	// per-band results
	io.Pforan("bands = %v\n", res.Bands)
	chk.StrAssert(res.Bands[0].Status, StatusEmpty)
	chk.StrAssert(res.Bands[1].Status, StatusPending)
	chk.IntAssert(res.Bands[1].Nnodes, 4)
	chk.StrAssert(res.Bands[4].Status, StatusEmpty)
}

func Test_proc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("proc02. degenerate site and set prefixes")

	msh, err := inp.ReadMsh("data", "cord16.msh")
	if err != nil {
		tst.Errorf("ReadMsh failed:\n%v", err)
		return
	}
	prof := new(field.Profile)
	err = prof.Init(nil)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	pro := &Processor{Prof: prof, Src: msh, Prefix: "FIELD_BAND"}

	// upper == lower gives no axis
	site := &inp.ControlPoints{
		Name:   "Bad site",
		Center: []float64{1, 1, 1},
		Upper:  []float64{1, 1, 1},
		Lower:  []float64{1, 1, 1},
	}
	defs, res := pro.Process(site, 2)
	if !res.Failed() {
		tst.Errorf("Process must fail on a degenerate axis\n")
		return
	}
	io.Pforan("error = %v\n", res.Error)
	if defs != nil {
		tst.Errorf("failed site must give no definitions\n")
		return
	}
	chk.IntAssert(res.Index, 2)

	// prefix rules
	chk.StrAssert(SetPrefix("C6 stenosis", "FIELD_BAND"), "C6_STENOSIS_BAND")
	chk.StrAssert(SetPrefix("T1 burst", "FIELD_BAND"), "T1_BURST_BAND")
	chk.StrAssert(SetPrefix("", "FIELD_BAND"), "FIELD_BAND")
}

func Test_proc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("proc03. radial limit excludes the off-axis column")

	msh, err := inp.ReadMsh("data", "cord16.msh")
	if err != nil {
		tst.Errorf("ReadMsh failed:\n%v", err)
		return
	}
	prof := new(field.Profile)
	err = prof.Init(nil)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	pro := &Processor{Prof: prof, Src: msh, Rlim: 0.5, Prefix: "FIELD_BAND"}

	site := &inp.ControlPoints{
		Center: []float64{0, 0, 0},
		Upper:  []float64{0, 0, 6},
		Lower:  []float64{0, 0, -6},
	}
	defs, res := pro.Process(site, 1)
	if res.Failed() {
		tst.Errorf("Process failed: %v\n", res.Error)
		return
	}
	chk.StrAssert(defs[0].SetName, "FIELD_BAND_1")
	chk.IntAssert(res.Outside, 10)
	chk.Ints(tst, "band 2 nodes", defs[1].Nodes, []int{4, 5})
	chk.Ints(tst, "band 3 nodes", defs[2].Nodes, []int{3, 6})
	chk.Ints(tst, "band 4 nodes", defs[3].Nodes, []int{2, 7})
}
