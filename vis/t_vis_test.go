// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"os"
	"strings"
	"testing"

	"github.com/brassc/cordband/field"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_vis01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vis01. ascii profile graph")

	prof := new(field.Profile)
	err := prof.Init(nil)
	if err != nil {
		tst.Errorf("profile initialisation failed:\n%v", err)
		return
	}

	g := ProfileGraph(prof, 0, 0)
	io.Pf("%s\n", g)
	if g == "" {
		tst.Errorf("graph must not be empty\n")
		return
	}
	if strings.Count(g, "\n") < 10 {
		tst.Errorf("graph must span at least the requested height\n")
		return
	}
	if !strings.Contains(g, "0.150") {
		tst.Errorf("graph must label the peak magnitude\n")
		return
	}
	if !strings.Contains(g, "centre") {
		tst.Errorf("graph must carry the caption\n")
		return
	}
}

func Test_vis02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vis02. profile figure")

	prof := new(field.Profile)
	err := prof.Init(nil)
	if err != nil {
		tst.Errorf("profile initialisation failed:\n%v", err)
		return
	}

	// explicit extension
	fn := "/tmp/cordband/vis/profile.png"
	err = ExportProfileFigure(prof, fn)
	if err != nil {
		tst.Errorf("ExportProfileFigure failed:\n%v", err)
		return
	}
	st, err := os.Stat(fn)
	if err != nil {
		tst.Errorf("figure was not written:\n%v", err)
		return
	}
	io.Pforan("%s: %d bytes\n", fn, st.Size())
	if st.Size() == 0 {
		tst.Errorf("figure file is empty\n")
		return
	}

	// without an extension a .png is written
	err = ExportProfileFigure(prof, "/tmp/cordband/vis/profile2")
	if err != nil {
		tst.Errorf("ExportProfileFigure failed:\n%v", err)
		return
	}
	if _, err = os.Stat("/tmp/cordband/vis/profile2.png"); err != nil {
		tst.Errorf("figure was not written:\n%v", err)
		return
	}
}
