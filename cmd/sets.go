// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/brassc/cordband/deck"
	"github.com/brassc/cordband/geo"
	"github.com/brassc/cordband/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Exchange node sets as comma-separated label lists",
	Long: `Exchange node sets as comma-separated label lists: export a set from
a deck to a list file, import a list file into a deck as a new set,
collect the mesh nodes within a sphere, or subtract one list from
another.`,
}

var (
	exportOut      string
	importOut      string
	importInstance string
	sphereOut      string
	sphereDeck     string
	sphereName     string
	sphereInstance string
)

var setsExportCmd = &cobra.Command{
	Use:   "export <file.inp> <SETNAME>",
	Short: "Export the node labels of a deck set to a list file",
	Args:  cobra.ExactArgs(2),
	Run:   runSetsExport,
}

var setsImportCmd = &cobra.Command{
	Use:   "import <file.inp> <listfile> <SETNAME>",
	Short: "Create a node set in a deck from a label list file",
	Args:  cobra.ExactArgs(3),
	Run:   runSetsImport,
}

var setsSphereCmd = &cobra.Command{
	Use:   "sphere <file.msh> <cx> <cy> <cz> <radius>",
	Short: "List the mesh nodes within a sphere",
	Long: `List the mesh nodes within a sphere of the given radius around the
given centre. The labels go to a list file; with --deck the nodes also
become a new node set in that deck.`,
	Args: cobra.ExactArgs(5),
	Run:  runSetsSphere,
}

var setsDiffCmd = &cobra.Command{
	Use:   "diff <list1> <list2> <out>",
	Short: "Write the labels of list1 that are not in list2",
	Args:  cobra.ExactArgs(3),
	Run:   runSetsDiff,
}

func init() {
	rootCmd.AddCommand(setsCmd)
	setsCmd.AddCommand(setsExportCmd)
	setsCmd.AddCommand(setsImportCmd)
	setsCmd.AddCommand(setsSphereCmd)
	setsCmd.AddCommand(setsDiffCmd)
	setsExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default <SETNAME>_NodeList.txt)")
	setsImportCmd.Flags().StringVarP(&importOut, "out", "o", "", "output deck (default: modify the deck in place)")
	setsImportCmd.Flags().StringVarP(&importInstance, "instance", "i", "PART-1_1-1", "part instance owning the node labels")
	setsSphereCmd.Flags().StringVarP(&sphereOut, "out", "o", "NodesWithinSphere_NodeList.txt", "output list file")
	setsSphereCmd.Flags().StringVarP(&sphereDeck, "deck", "d", "", "also create the set in this deck")
	setsSphereCmd.Flags().StringVarP(&sphereName, "name", "n", "NodesWithinSphere", "name of the new set")
	setsSphereCmd.Flags().StringVarP(&sphereInstance, "instance", "i", "PART-1_1-1", "part instance owning the node labels")
}

func runSetsExport(cmd *cobra.Command, args []string) {
	defer catch()
	dck, err := deck.ReadDeck(args[0])
	if err != nil {
		chk.Panic("%v", err)
	}
	labels, err := dck.SetNodes(args[1])
	if err != nil {
		chk.Panic("%v", err)
	}
	if labels == nil {
		chk.Panic("deck %q has no set named %q", args[0], args[1])
	}
	out := exportOut
	if out == "" {
		out = args[1] + "_NodeList.txt"
	}
	writeLabels(out, labels)
	io.Pf("%d node labels of set %q exported\n", len(labels), args[1])
}

func runSetsImport(cmd *cobra.Command, args []string) {
	defer catch()
	labels, err := readLabels(args[1])
	if err != nil {
		chk.Panic("%v", err)
	}
	dck, err := deck.ReadDeck(args[0])
	if err != nil {
		chk.Panic("%v", err)
	}
	err = dck.InsertSet(args[2], importInstance, labels)
	if err != nil {
		chk.Panic("%v", err)
	}
	out := importOut
	if out == "" {
		out = args[0]
	}
	err = dck.Write(out)
	if err != nil {
		chk.Panic("%v", err)
	}
	io.Pfblue2("file <%s> written\n", out)
	io.Pf("created node set %q with %d nodes\n", args[2], len(labels))
}

func runSetsSphere(cmd *cobra.Command, args []string) {
	defer catch()
	msh, err := inp.ReadMsh(filepath.Dir(args[0]), filepath.Base(args[0]))
	if err != nil {
		chk.Panic("%v", err)
	}
	center := []float64{io.Atof(args[1]), io.Atof(args[2]), io.Atof(args[3])}
	radius := io.Atof(args[4])
	var labels []int
	for _, id := range msh.Ids() {
		if geo.Dist(msh.Coord(id), center) <= radius {
			labels = append(labels, id)
		}
	}
	writeLabels(sphereOut, labels)
	io.Pf("%d node(s) within radius %g of (%g, %g, %g)\n", len(labels), radius, center[0], center[1], center[2])
	if sphereDeck != "" {
		dck, err := deck.ReadDeck(sphereDeck)
		if err != nil {
			chk.Panic("%v", err)
		}
		err = dck.InsertSet(sphereName, sphereInstance, labels)
		if err != nil {
			chk.Panic("%v", err)
		}
		err = dck.Write(sphereDeck)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pfblue2("file <%s> written\n", sphereDeck)
		io.Pf("created node set %q with %d nodes\n", sphereName, len(labels))
	}
}

func runSetsDiff(cmd *cobra.Command, args []string) {
	defer catch()
	l1, err := readLabels(args[0])
	if err != nil {
		chk.Panic("%v", err)
	}
	l2, err := readLabels(args[1])
	if err != nil {
		chk.Panic("%v", err)
	}
	in2 := make(map[int]bool)
	for _, v := range l2 {
		in2[v] = true
	}
	var keep []int
	for _, v := range l1 {
		if !in2[v] {
			keep = append(keep, v)
		}
	}
	writeLabels(args[2], keep)
	io.Pf("%d of %d label(s) are not in %q\n", len(keep), len(l1), args[1])
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// readLabels reads a comma-separated node label file
func readLabels(fn string) (labels []int, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read label file:\n%v", err)
	}
	for _, tok := range strings.Split(string(b), ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, e := strconv.Atoi(tok)
		if e != nil {
			return nil, chk.Err("label file %q has a non-integer entry %q", fn, tok)
		}
		labels = append(labels, v)
	}
	return
}

// writeLabels writes node labels as one comma-separated list
func writeLabels(fn string, labels []int) {
	var buf bytes.Buffer
	for i, l := range labels {
		if i > 0 {
			io.Ff(&buf, ",")
		}
		io.Ff(&buf, "%d", l)
	}
	io.WriteFile(fn, &buf)
	io.Pfblue2("file <%s> written\n", fn)
}
