// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of gob fields: profiles, rasters, tables and charts
package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/longwallgobs/gob/field"
)

// Keys holds the keys of all outputs in the order of field.State
var Keys = []string{"vsi", "n", "R1", "R2", "R3", "C2"}

// Profile holds outputs sampled along a straight line parallel to one panel axis
type Profile struct {
	Title string               // title; e.g. "along panel @ x=0"
	Slbl  string               // label of abscissa
	S     []float64            // abscissa: local coordinate along the line
	Vals  map[string][]float64 // maps key to values; see Keys
}

// Along samples outputs along the panel at distance xl from the centreline.
// The abscissa is the local along-panel coordinate in [0, L]
func Along(drv *field.Driver, xl float64, npts int) (o *Profile, err error) {
	if npts < 2 {
		return nil, chk.Err("number of points must be at least 2. %d is invalid", npts)
	}
	mdl := drv.Vsi
	s := utl.LinSpace(0, mdl.L, npts)
	return sample(drv, io.Sf("along panel @ x=%g", xl), "y (local)", s, func(i int) (x, y float64) {
		_, y = mdl.Global(s[i])
		return mdl.Xoff + xl, y
	}), nil
}

// Across samples outputs across the panel at local along-panel coordinate yl.
// The abscissa is the signed distance to the centreline in [-hw, hw]
func Across(drv *field.Driver, yl float64, npts int) (o *Profile, err error) {
	if npts < 2 {
		return nil, chk.Err("number of points must be at least 2. %d is invalid", npts)
	}
	mdl := drv.Vsi
	s := utl.LinSpace(-mdl.Hw, mdl.Hw, npts)
	return sample(drv, io.Sf("across panel @ y=%g", yl), "x (local)", s, func(i int) (x, y float64) {
		_, y = mdl.Global(yl)
		return mdl.Xoff + s[i], y
	}), nil
}

// Path samples outputs along a polyline with vertices {xl, yl} given in local panel
// coordinates; xl is the signed distance to the centreline. Each segment is divided
// into ndiv parts and the abscissa is the arc length
func Path(drv *field.Driver, verts [][]float64, ndiv int) (o *Profile, err error) {
	if len(verts) < 2 {
		return nil, chk.Err("path must have at least 2 vertices. %d is invalid", len(verts))
	}
	if ndiv < 1 {
		return nil, chk.Err("number of divisions must be positive. %d is invalid", ndiv)
	}
	for i, v := range verts {
		if len(v) != 2 {
			return nil, chk.Err("vertex %d of path must have 2 coordinates. %v is invalid", i, v)
		}
	}
	var s []float64
	var pts [][2]float64
	arc := 0.0
	for i := 0; i < len(verts)-1; i++ {
		a, b := verts[i], verts[i+1]
		length := math.Hypot(b[0]-a[0], b[1]-a[1])
		for k := 0; k < ndiv; k++ {
			t := float64(k) / float64(ndiv)
			s = append(s, arc+t*length)
			pts = append(pts, [2]float64{a[0] + t*(b[0]-a[0]), a[1] + t*(b[1]-a[1])})
		}
		arc += length
	}
	last := verts[len(verts)-1]
	s = append(s, arc)
	pts = append(pts, [2]float64{last[0], last[1]})
	mdl := drv.Vsi
	return sample(drv, io.Sf("path with %d vertices", len(verts)), "arc length", s, func(i int) (x, y float64) {
		_, y = mdl.Global(pts[i][1])
		return mdl.Xoff + pts[i][0], y
	}), nil
}

// Get returns the values of a key
func (o *Profile) Get(key string) []float64 {
	vals, ok := o.Vals[key]
	if !ok {
		chk.Panic("profile does not have key %q. keys = %v", key, Keys)
	}
	return vals
}

// sample evaluates the driver at the points of a line
func sample(drv *field.Driver, title, slbl string, s []float64, point func(i int) (x, y float64)) (o *Profile) {
	o = &Profile{Title: title, Slbl: slbl, S: s, Vals: make(map[string][]float64)}
	for _, key := range Keys {
		o.Vals[key] = make([]float64, len(s))
	}
	for i := range s {
		x, y := point(i)
		st := drv.Evaluate(field.Cell{Id: i, X: []float64{x, y}})
		for j, v := range values(st) {
			o.Vals[Keys[j]][i] = v
		}
	}
	return
}

// values returns the outputs of a state in the order of Keys
func values(s field.State) []float64 {
	return []float64{s.Vsi, s.Porosity, s.Resist[0], s.Resist[1], s.Resist[2], s.Inertia}
}
