// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/brassc/cordband/field"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// band fill colours, centre band first. With more bands than colours the
// palette repeats.
var bandColours = []color.RGBA{
	{R: 0x21, G: 0x66, B: 0xac, A: 140},
	{R: 0x67, G: 0xa9, B: 0xcf, A: 140},
	{R: 0xd1, G: 0xe5, B: 0xf0, A: 140},
	{R: 0xfd, G: 0xdb, B: 0xc7, A: 140},
	{R: 0xef, G: 0x8a, B: 0x62, A: 140},
}

// ExportProfileFigure saves the mirrored band profile as a figure: one
// rectangle per band on each side of the centre, the smooth raised-cosine
// curve on top and one marker per sample. The x-axis is the axial distance as
// a percentage of the extended region, so the curve reaches the baseline at
// -100% and +100%. The image format follows the file extension (.png, .pdf or
// .svg); without an extension a .png is written.
func ExportProfileFigure(prof *field.Profile, fname string) (err error) {

	p := plot.New()
	p.Title.Text = "Sinusoidal predefined field distribution"
	p.X.Label.Text = "Distance from centre (%)"
	p.Y.Label.Text = "Field amplitude"

	// band slab boundaries in fractional position: midpoints of consecutive
	// samples, as the classifier draws them
	xs := prof.Positions()
	bounds := make([]float64, len(xs))
	for i := 1; i < len(xs); i++ {
		bounds[i] = (xs[i-1] + xs[i]) / 2.0
	}

	// band rectangles, mirrored about the centre
	bands := prof.Bands()
	for i, b := range bands {
		lo := 100.0 * bounds[i] / prof.Ext
		hi := 100.0 * bounds[i+1] / prof.Ext
		c := bandColours[i%len(bandColours)]
		for _, sgn := range []float64{1, -1} {
			var poly *plotter.Polygon
			poly, err = plotter.NewPolygon(plotter.XYs{
				{X: sgn * lo, Y: 0},
				{X: sgn * hi, Y: 0},
				{X: sgn * hi, Y: b.Value},
				{X: sgn * lo, Y: b.Value},
			})
			if err != nil {
				return
			}
			poly.Color = c
			poly.LineStyle.Color = color.Gray{Y: 128}
			poly.LineStyle.Width = vg.Points(0.8)
			p.Add(poly)
		}
	}

	// smooth curve over the full symmetric profile
	curve := make(plotter.XYs, 401)
	for i := range curve {
		u := -1.0 + 2.0*float64(i)/400.0
		curve[i] = plotter.XY{X: 100.0 * u, Y: prof.F(math.Abs(u) * prof.Ext)}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return
	}
	line.LineStyle.Width = vg.Points(1.8)
	line.LineStyle.Color = color.Black
	p.Add(line)

	// sample markers and value annotations on the positive side
	var pts plotter.XYs
	var lbl plotter.XYLabels
	for _, b := range bands {
		x := 100.0 * b.X / prof.Ext
		pts = append(pts, plotter.XY{X: x, Y: b.Value})
		if b.Index > 1 {
			pts = append(pts, plotter.XY{X: -x, Y: b.Value})
		}
		lbl.XYs = append(lbl.XYs, plotter.XY{X: x, Y: b.Value + 0.04*prof.Peak})
		lbl.Labels = append(lbl.Labels, io.Sf("%.3f", b.Value))
	}
	scat, err := plotter.NewScatter(pts)
	if err != nil {
		return
	}
	scat.GlyphStyle.Color = color.Black
	scat.GlyphStyle.Radius = vg.Points(3)
	scat.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scat)
	labels, err := plotter.NewLabels(lbl)
	if err != nil {
		return
	}
	p.Add(labels)

	// axes as percentages of the extended region
	p.X.Min, p.X.Max = -105, 105
	p.Y.Min, p.Y.Max = -0.01, prof.Peak*1.25

	// save
	if filepath.Ext(fname) == "" {
		fname += ".png"
	}
	if dir := filepath.Dir(fname); dir != "" && dir != "." {
		os.MkdirAll(dir, 0777)
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, fname)
}
