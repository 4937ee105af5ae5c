// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// ControlPoints holds the three control points of one compression site
type ControlPoints struct {
	Name   string    `json:"name" yaml:"name"`     // site name; may be empty for a single unnamed site
	Center []float64 `json:"center" yaml:"center"` // centre of the site (peak magnitude)
	Upper  []float64 `json:"upper" yaml:"upper"`   // upper end of the region
	Lower  []float64 `json:"lower" yaml:"lower"`   // lower end of the region
}

// Check verifies that all three control points are 3D
func (o *ControlPoints) Check() error {
	if len(o.Center) != 3 || len(o.Upper) != 3 || len(o.Lower) != 3 {
		return chk.Err("site %q: control points must have 3 coordinates each (got %d/%d/%d)",
			o.Name, len(o.Center), len(o.Upper), len(o.Lower))
	}
	return nil
}

// sitesFile is the YAML form of the site table
type sitesFile struct {
	Sites []*ControlPoints `yaml:"sites"`
}

// ReadSites reads a site table. YAML files are recognised by their
// extension (.yaml or .yml); anything else is read as CSV.
func ReadSites(fn string) (sites []*ControlPoints, err error) {
	switch io.FnExt(fn) {
	case ".yaml", ".yml":
		return ReadSitesYaml(fn)
	}
	return ReadSitesCsv(fn)
}

// ReadSitesCsv reads a site table in CSV format:
//
//	site_name,center_x,center_y,center_z,upper_x,upper_y,upper_z,lower_x,lower_y,lower_z
//
// The first line is a header and is skipped. Blank lines and lines with too
// few or unparsable fields are reported and skipped; the table is tolerant.
func ReadSitesCsv(fn string) (sites []*ControlPoints, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read site table %q:\n%v", fn, err)
	}
	lines := strings.Split(string(b), "\n")
	for i, line := range lines {
		if i == 0 {
			continue // header
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 10 {
			io.Pfyel("warning: skipping invalid line: %s\n", line)
			continue
		}
		var vals [9]float64
		ok := true
		for j := 0; j < 9; j++ {
			vals[j], err = strconv.ParseFloat(strings.TrimSpace(parts[1+j]), 64)
			if err != nil {
				io.Pfyel("warning: skipping line with bad number %q: %s\n", parts[1+j], line)
				ok = false
				err = nil
				break
			}
		}
		if !ok {
			continue
		}
		sites = append(sites, &ControlPoints{
			Name:   strings.TrimSpace(parts[0]),
			Center: []float64{vals[0], vals[1], vals[2]},
			Upper:  []float64{vals[3], vals[4], vals[5]},
			Lower:  []float64{vals[6], vals[7], vals[8]},
		})
	}
	return
}

// ReadSitesYaml reads a site table in YAML format:
//
//	sites:
//	  - name: Site1
//	    center: [0, 0, 0]
//	    upper: [0, 0, 10]
//	    lower: [0, 0, -10]
func ReadSitesYaml(fn string) (sites []*ControlPoints, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read site table %q:\n%v", fn, err)
	}
	var sf sitesFile
	err = yaml.Unmarshal(b, &sf)
	if err != nil {
		return nil, chk.Err("cannot unmarshal site table %q:\n%v", fn, err)
	}
	for _, site := range sf.Sites {
		if err = site.Check(); err != nil {
			return nil, err
		}
	}
	return sf.Sites, nil
}
