// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_inject01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inject01. in-place injection and idempotency")

	fn := cpfile(tst, "data/mini.inp", "inject01.inp")
	defs := []*Definition{
		{SetName: "FIELD_BAND_1", FieldName: "predefinedfield-1-fieldband1", Value: 0.15, Nodes: []int{14, 4, 5}},
		{SetName: "FIELD_BAND_2", FieldName: "predefinedfield-1-fieldband2", Value: 0.09818152, Nodes: []int{3, 6}},
		{SetName: "FIELD_BAND_3", FieldName: "predefinedfield-1-fieldband3", Value: 0.01431779, Nodes: nil},
	}

	// first run: two sets in, one empty
	inj := NewInjector("PART-1_1-1", "Amp-1-preload")
	err := inj.Load(fn)
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	nlines := len(inj.Deck().Lines)
	err = inj.Add(defs)
	if err != nil {
		tst.Errorf("Add failed:\n%v", err)
		return
	}
	err = inj.Write(fn)
	if err != nil {
		tst.Errorf("Write failed:\n%v", err)
		return
	}
	chk.IntAssert(inj.State(), StateWritten)
	chk.IntAssert(len(inj.Written), 2)
	chk.IntAssert(len(inj.Duplicates), 0)
	chk.IntAssert(len(inj.Empty), 1)
	chk.StrAssert(inj.Empty[0], "FIELD_BAND_3")

	// re-read and inspect
	d, err := ReadDeck(fn)
	if err != nil {
		tst.Errorf("ReadDeck failed:\n%v", err)
		return
	}
	io.Pforan("deck grew from %d to %d lines\n", nlines, len(d.Lines))
	chk.IntAssert(len(d.Lines), nlines+10) // 2 nset blocks (2 lines each) + 2 field blocks (3 lines each)
	nEnd, nFld := d.Audit()
	chk.IntAssert(nEnd, 1)
	chk.IntAssert(nFld, 1)

	// labels are stored sorted
	labels, err := d.SetNodes("FIELD_BAND_1")
	if err != nil {
		tst.Errorf("SetNodes failed:\n%v", err)
		return
	}
	chk.Ints(tst, "FIELD_BAND_1", labels, []int{4, 5, 14})

	// blocks sit at their anchors with the exact keyword text
	content := strings.Join(d.Lines, "\n")
	nsetBlock := "*Nset, nset=FIELD_BAND_1, instance=PART-1_1-1\n 4, 5, 14\n" +
		"*Nset, nset=FIELD_BAND_2, instance=PART-1_1-1\n 3, 6\n" + EndAssembly
	if !strings.Contains(content, nsetBlock) {
		tst.Errorf("node set blocks must sit right before %q\n", EndAssembly)
		return
	}
	fieldBlock := PredefinedFields + "\n" +
		"** Name: predefinedfield-1-fieldband1   Type: Temperature\n" +
		"*Temperature, amplitude=Amp-1-preload\nFIELD_BAND_1, 0.15\n" +
		"** Name: predefinedfield-1-fieldband2   Type: Temperature\n" +
		"*Temperature, amplitude=Amp-1-preload\nFIELD_BAND_2, 0.098"
	if !strings.Contains(content, fieldBlock) {
		tst.Errorf("field blocks must sit right after %q\n", PredefinedFields)
		return
	}

	// second run: everything is a duplicate and the file stays untouched
	inj = NewInjector("PART-1_1-1", "Amp-1-preload")
	err = inj.Load(fn)
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	err = inj.Add(defs)
	if err != nil {
		tst.Errorf("Add failed:\n%v", err)
		return
	}
	err = inj.Write(fn)
	if err != nil {
		tst.Errorf("Write failed:\n%v", err)
		return
	}
	chk.IntAssert(len(inj.Written), 0)
	chk.IntAssert(len(inj.Duplicates), 2)
	chk.StrAssert(inj.Duplicates[0], "FIELD_BAND_1")
	chk.StrAssert(inj.Duplicates[1], "FIELD_BAND_2")
	after, err := io.ReadFile(fn)
	if err != nil {
		tst.Errorf("cannot re-read deck:\n%v", err)
		return
	}
	if string(after) != content {
		tst.Errorf("idempotent re-run must leave the deck unchanged\n")
		return
	}
}

func Test_inject02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inject02. aborted injection writes nothing")

	fn := cpfile(tst, "data/noassembly.inp", "inject02.inp")
	before, _ := io.ReadFile(fn)

	inj := NewInjector("PART-1_1-1", "Amp-1-preload")
	err := inj.Load(fn)
	if err == nil {
		tst.Errorf("Load must fail on a deck without %q\n", EndAssembly)
		return
	}
	io.Pforan("err = %v\n", err)
	chk.IntAssert(inj.State(), StateAborted)

	// the state machine refuses to continue
	err = inj.Add([]*Definition{{SetName: "X", FieldName: "f", Value: 1, Nodes: []int{1}}})
	if err == nil {
		tst.Errorf("Add must fail after an aborted Load\n")
		return
	}
	err = inj.Write(fn)
	if err == nil {
		tst.Errorf("Write must fail after an aborted Load\n")
		return
	}

	// deck content is untouched and no temporary files are left behind
	after, _ := io.ReadFile(fn)
	if string(after) != string(before) {
		tst.Errorf("aborted injection must leave the deck unchanged\n")
		return
	}
	tmps, _ := filepath.Glob(fn + ".tmp-*")
	if len(tmps) > 0 {
		tst.Errorf("aborted injection must not leave temporary files: %v\n", tmps)
		return
	}
}

func Test_inject03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inject03. writing to a separate output deck")

	fn := cpfile(tst, "data/mini.inp", "inject03.inp")
	fnOut := fn + ".out"
	os.Remove(fnOut)
	before, _ := io.ReadFile(fn)

	inj := NewInjector("PART-1_1-1", "Amp-1-preload")
	err := inj.Load(fn)
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}

	// calling out of order fails
	err = inj.Write(fnOut)
	if err == nil {
		tst.Errorf("Write before Add must fail\n")
		return
	}

	err = inj.Add([]*Definition{
		{SetName: "C4-C5_BAND_1", FieldName: "predefinedfield-2-fieldband1", Value: 0.2, Nodes: []int{4, 5}},
	})
	if err != nil {
		tst.Errorf("Add failed:\n%v", err)
		return
	}
	err = inj.Write(fnOut)
	if err != nil {
		tst.Errorf("Write failed:\n%v", err)
		return
	}

	// original untouched, output carries the new set
	after, _ := io.ReadFile(fn)
	if string(after) != string(before) {
		tst.Errorf("writing to a separate file must leave the input unchanged\n")
		return
	}
	d, err := ReadDeck(fnOut)
	if err != nil {
		tst.Errorf("ReadDeck failed:\n%v", err)
		return
	}
	if !d.HasSet("C4-C5_BAND_1") {
		tst.Errorf("output deck must carry the new set\n")
		return
	}
}
