// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field implements the raised-cosine magnitude profile of the
// compression bands
package field

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// InvalidBandCountError indicates a profile with less than one band
type InvalidBandCountError struct {
	N int // requested number of bands
}

// Error returns the error message
func (e *InvalidBandCountError) Error() string {
	return io.Sf("invalid band count: %d (at least 1 band is required)", e.N)
}

// BandSpec holds one sample of the profile
type BandSpec struct {
	Index int     // 1-based band index; band 1 sits at the centre
	X     float64 // fractional axial position of the sample
	Value float64 // magnitude at X
}

// Profile implements the raised-cosine magnitude profile. The curve has zero
// gradient at the centre and at the zero-crossing, giving a smooth step from
// Peak down to Min over the extended region [0, Ext].
type Profile struct {
	Nbands int     // number of real bands
	Peak   float64 // magnitude at the centre (band 1)
	Min    float64 // baseline magnitude, reached at the zero-crossing
	Ext    float64 // extension factor: fractional position of the zero-crossing
}

// Init initialises the profile
func (o *Profile) Init(prms fun.Prms) (err error) {

	// default values
	o.Nbands = 5
	o.Peak = 0.15
	o.Min = 0.0
	o.Ext = 1.2

	// parameters
	for _, p := range prms {
		switch p.N {
		case "nbands":
			o.Nbands = int(p.V)
		case "peak":
			o.Peak = p.V
		case "min":
			o.Min = p.V
		case "ext":
			o.Ext = p.V
		default:
			return chk.Err("profile: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.Nbands < 1 {
		return &InvalidBandCountError{o.Nbands}
	}
	if o.Ext <= 0 {
		return chk.Err("profile: extension factor must be positive (got %g)", o.Ext)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Profile) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "nbands", V: 5},
		&fun.Prm{N: "peak", V: 0.15},
		&fun.Prm{N: "min", V: 0},
		&fun.Prm{N: "ext", V: 1.2},
	}
}

// F computes the magnitude at fractional axial position x
func (o Profile) F(x float64) float64 {
	return (o.Peak-o.Min)*(1.0+math.Cos(math.Pi*x/o.Ext))/2.0 + o.Min
}

// G computes the derivative dF/dx. It vanishes at x = 0 and x = Ext
func (o Profile) G(x float64) float64 {
	return -(o.Peak - o.Min) * math.Pi * math.Sin(math.Pi*x/o.Ext) / (2.0 * o.Ext)
}

// Positions returns the fractional axial positions of all samples: the
// Nbands real bands followed by the zero-crossing
func (o Profile) Positions() (xs []float64) {
	xs = make([]float64, o.Nbands+1)
	for i := 0; i <= o.Nbands; i++ {
		xs[i] = float64(i) / float64(o.Nbands) * o.Ext
	}
	return
}

// Bands returns the samples of the real bands, band 1 first
func (o Profile) Bands() (bands []BandSpec) {
	bands = make([]BandSpec, o.Nbands)
	for i := 0; i < o.Nbands; i++ {
		x := float64(i) / float64(o.Nbands) * o.Ext
		bands[i] = BandSpec{Index: i + 1, X: x, Value: o.F(x)}
	}
	return
}

// ZeroCrossing returns the virtual sample beyond the last band, where the
// profile reaches the baseline. It carries no node set or field; it only
// documents where the magnitude returns to Min.
func (o Profile) ZeroCrossing() BandSpec {
	return BandSpec{Index: o.Nbands + 1, X: o.Ext, Value: o.F(o.Ext)}
}
