// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/brassc/cordband/deck"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect and compare solver input decks",
}

var deckCheckCmd = &cobra.Command{
	Use:   "check <file.inp>",
	Short: "Check a deck for the injection anchors and list its names",
	Long: `Check a deck for the injection anchors and list its names. A deck
ready for injection has exactly one *End Assembly line and exactly one
** PREDEFINED FIELDS line; decks with several steps have several of the
latter and cannot take bands without editing.`,
	Args: cobra.ExactArgs(1),
	Run:  runDeckCheck,
}

var deckDiffCmd = &cobra.Command{
	Use:   "diff <file1> <file2> <out>",
	Short: "Write the lines present in only one of two decks",
	Long: `Write the lines present in only one of two decks: lines of file1
missing from file2 are prefixed with "- " and lines of file2 missing
from file1 with "+ ". The comparison is by membership, not position, so
moved blocks do not show up.`,
	Args: cobra.ExactArgs(3),
	Run:  runDeckDiff,
}

func init() {
	rootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckCheckCmd)
	deckCmd.AddCommand(deckDiffCmd)
}

func runDeckCheck(cmd *cobra.Command, args []string) {
	defer catch()
	dck, err := deck.ReadDeck(args[0])
	if err != nil {
		chk.Panic("%v", err)
	}

	// anchors
	io.Pf("deck = %s (%d lines)\n\n", args[0], len(dck.Lines))
	nEnd, nFld := dck.Audit()
	printAnchorCount(deck.EndAssembly, nEnd)
	printAnchorCount(deck.PredefinedFields, nFld)

	// node sets
	names := dck.SetNames()
	io.Pf("\n%d node set(s)\n", len(names))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		labels, err := dck.SetNodes(name)
		if err != nil {
			chk.Panic("%v", err)
		}
		fmt.Fprintf(w, "  %s\t%d node(s)\n", name, len(labels))
	}
	w.Flush()

	// named fields
	fields := dck.FieldNames()
	io.Pf("\n%d named field(s)\n", len(fields))
	for _, name := range fields {
		io.Pf("  %s\n", name)
	}
}

func printAnchorCount(anchor string, n int) {
	if n == 1 {
		io.Pf("%-24q found once\n", anchor)
		return
	}
	io.PfRed("WARNING: deck must have exactly one %q line (found %d)\n", anchor, n)
}

func runDeckDiff(cmd *cobra.Command, args []string) {
	defer catch()
	la, err := readList(args[0])
	if err != nil {
		chk.Panic("%v", err)
	}
	lb, err := readList(args[1])
	if err != nil {
		chk.Panic("%v", err)
	}
	inA := make(map[string]bool)
	for _, l := range la {
		inA[l] = true
	}
	inB := make(map[string]bool)
	for _, l := range lb {
		inB[l] = true
	}
	var diff []string
	for _, l := range la {
		if !inB[l] {
			diff = append(diff, "- "+l)
		}
	}
	for _, l := range lb {
		if !inA[l] {
			diff = append(diff, "+ "+l)
		}
	}
	var buf bytes.Buffer
	io.Ff(&buf, "%s", strings.Join(diff, "\n"))
	io.WriteFile(args[2], &buf)
	io.Pfblue2("file <%s> written\n", args[2])
	io.Pf("%d differing line(s)\n", len(diff))
}

// readList reads a text file as lines
func readList(fn string) (lines []string, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read %q:\n%v", fn, err)
	}
	return strings.Split(string(b), "\n"), nil
}
