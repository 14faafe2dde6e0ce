// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/longwallgobs/gob/field"
	"github.com/longwallgobs/gob/mdl/vsi"
	"gonum.org/v1/gonum/mat"
)

// shades used by Ascii from low to high VSI
const shades = " .:-=+*#%@"

// Raster holds VSI sampled at the centres of a regular grid covering the panel
type Raster struct {
	Xmin, Xmax float64    // limits along x (solver coordinates)
	Ymin, Ymax float64    // limits along y (solver coordinates)
	X, Y       []float64  // coordinates of cell centres
	V          *mat.Dense // [ny][nx] VSI values; row 0 is at Ymin
}

// NewRaster samples the VSI model over its panel extent with nx×ny cells
func NewRaster(mdl *vsi.Model, nx, ny int) (o *Raster, err error) {
	if nx < 1 || ny < 1 {
		return nil, chk.Err("raster: number of cells must be positive. nx=%d ny=%d are invalid", nx, ny)
	}
	o = new(Raster)
	o.Xmin, o.Xmax, o.Ymin, o.Ymax = mdl.Extent()
	grid := field.NewGrid()
	if err = grid.AddRegion("raster", o.Xmin, o.Xmax, o.Ymin, o.Ymax, nx, ny); err != nil {
		return nil, err
	}
	cells, err := grid.Cells("raster")
	if err != nil {
		return nil, err
	}
	o.X, o.Y = make([]float64, nx), make([]float64, ny)
	o.V = mat.NewDense(ny, nx, nil)
	for k, c := range cells {
		i, j := k/nx, k%nx
		o.X[j], o.Y[i] = c.X[0], c.X[1]
		o.V.Set(i, j, mdl.Vsi(c.X[0], c.X[1]))
	}
	return
}

// Range returns the statistics of the finite values
func (o *Raster) Range() field.Range {
	var vals []float64
	for _, v := range o.V.RawMatrix().Data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	return field.NewRange(vals)
}

// Ascii renders the raster as text with the top row at Ymax. Values are shaded relative
// to vmax; non-finite values are shown as '?'
func (o *Raster) Ascii(vmax float64) string {
	ny, nx := o.V.Dims()
	n := float64(len(shades) - 1)
	var sb strings.Builder
	for i := ny - 1; i >= 0; i-- {
		for j := 0; j < nx; j++ {
			v := o.V.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				sb.WriteByte('?')
				continue
			}
			k := 0
			if vmax > 0 {
				k = int(math.Round(math.Min(math.Max(v/vmax, 0), 1) * n))
			}
			sb.WriteByte(shades[k])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
