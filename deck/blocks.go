// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deck

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"
)

// NodesPerLine is the number of node labels written per data line
const NodesPerLine = 16

// FormatValue renders a field magnitude rounded to 3 decimals
func FormatValue(v float64) string {
	return io.Sf("%g", math.Round(v*1000)/1000)
}

// FormatLabels formats node labels into data lines, NodesPerLine per line
func FormatLabels(labels []int) (lines []string) {
	for start := 0; start < len(labels); start += NodesPerLine {
		end := start + NodesPerLine
		if end > len(labels) {
			end = len(labels)
		}
		toks := make([]string, end-start)
		for i, n := range labels[start:end] {
			toks[i] = strconv.Itoa(n)
		}
		lines = append(lines, " "+strings.Join(toks, ", "))
	}
	return
}

// NsetBlock returns the lines declaring one assembly-level node set. Labels
// are written in ascending order; the input slice is not modified.
func NsetBlock(name, instance string, labels []int) (lines []string) {
	sorted := make([]int, len(labels))
	copy(sorted, labels)
	sort.Ints(sorted)
	lines = append(lines, io.Sf("*Nset, nset=%s, instance=%s", name, instance))
	return append(lines, FormatLabels(sorted)...)
}

// FieldBlock returns the lines declaring one predefined temperature field
// applied to a node set
func FieldBlock(fieldName, amplitude, setName string, value float64) []string {
	return []string{
		io.Sf("** Name: %s   Type: Temperature", fieldName),
		io.Sf("*Temperature, amplitude=%s", amplitude),
		io.Sf("%s, %s", setName, FormatValue(value)),
	}
}
