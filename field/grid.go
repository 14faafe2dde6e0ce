// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid implements Mesh with structured rectangular regions. Cell ids are global and
// consecutive in the order regions are added
type Grid struct {
	regions map[string][]Cell // cells of each region
	ncells  int               // total number of cells
}

// NewGrid returns a new empty grid
func NewGrid() *Grid {
	return &Grid{regions: make(map[string][]Cell)}
}

// AddRegion adds a region of nx×ny cells covering [xmin,xmax]×[ymin,ymax].
// Cells are ordered with x running fastest
func (o *Grid) AddRegion(name string, xmin, xmax, ymin, ymax float64, nx, ny int) (err error) {
	if _, ok := o.regions[name]; ok {
		return chk.Err("region %q already exists", name)
	}
	if nx < 1 || ny < 1 {
		return chk.Err("region %q: number of cells must be positive. nx=%d ny=%d are invalid", name, nx, ny)
	}
	if !(xmax > xmin && ymax > ymin) {
		return chk.Err("region %q: limits [%g,%g]×[%g,%g] are invalid", name, xmin, xmax, ymin, ymax)
	}
	X, Y := centres(xmin, xmax, nx), centres(ymin, ymax, ny)
	cells := make([]Cell, 0, nx*ny)
	for _, y := range Y {
		for _, x := range X {
			cells = append(cells, Cell{Id: o.ncells, X: []float64{x, y}})
			o.ncells++
		}
	}
	o.regions[name] = cells
	return
}

// AddCells adds a region with given cells; e.g. cells read from another mesh
func (o *Grid) AddCells(name string, cells []Cell) (err error) {
	if _, ok := o.regions[name]; ok {
		return chk.Err("region %q already exists", name)
	}
	o.regions[name] = cells
	o.ncells += len(cells)
	return
}

// Cells returns the cells of a region
func (o *Grid) Cells(region string) ([]Cell, error) {
	cells, ok := o.regions[region]
	if !ok {
		return nil, chk.Err("region %q is not available", region)
	}
	return cells, nil
}

// Regions returns the sorted names of all regions
func (o *Grid) Regions() (names []string) {
	for name := range o.regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Ncells returns the total number of cells
func (o *Grid) Ncells() int {
	return o.ncells
}

// centres returns the centres of n equal divisions of [a,b]
func centres(a, b float64, n int) []float64 {
	if n == 1 {
		return []float64{(a + b) / 2}
	}
	δ := (b - a) / float64(n)
	return utl.LinSpace(a+δ/2, b-δ/2, n)
}
