// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vis renders the band magnitude profile as terminal graphs and
// figure files
package vis

import (
	"math"

	"github.com/brassc/cordband/field"
	"github.com/guptarohit/asciigraph"
)

// ProfileGraph renders the mirrored magnitude profile as an ASCII graph. The
// curve spans the extended region on both sides of the centre, so the left
// and right ends sit at the zero-crossings.
func ProfileGraph(prof *field.Profile, width, height int) string {
	if width < 2 {
		width = 61
	}
	if height < 2 {
		height = 10
	}
	data := make([]float64, width)
	for i := 0; i < width; i++ {
		u := -1.0 + 2.0*float64(i)/float64(width-1)
		data[i] = prof.F(math.Abs(u) * prof.Ext)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption("magnitude across the extended region (centre at the middle)"))
}
