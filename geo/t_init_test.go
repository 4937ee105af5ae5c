// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testSource implements PointSource for the tests
type testSource struct {
	ids    []int
	coords map[int][]float64
}

func (o *testSource) Ids() []int             { return o.ids }
func (o *testSource) Coord(id int) []float64 { return o.coords[id] }
