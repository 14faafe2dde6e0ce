// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Range holds statistics of one output over the finite values of a pass
type Range struct {
	Min  float64 // minimum
	Max  float64 // maximum
	Mean float64 // mean
}

// Report holds statistics of a computing pass
type Report struct {
	Ncells    int      // number of cells
	Nonfinite int      // number of cells with at least one non-finite value
	Vsi       Range    // VSI
	Porosity  Range    // porosity
	Resist    [3]Range // viscous resistance in each direction
	Inertia   Range    // inertial resistance
}

// NewReport computes the statistics of a set of states
func NewReport(states []State) (o *Report) {
	o = new(Report)
	o.Ncells = len(states)
	cols := make([][]float64, 6)
	for _, s := range states {
		if !s.Finite() {
			o.Nonfinite++
			continue
		}
		for j, v := range []float64{s.Vsi, s.Porosity, s.Resist[0], s.Resist[1], s.Resist[2], s.Inertia} {
			cols[j] = append(cols[j], v)
		}
	}
	o.Vsi = NewRange(cols[0])
	o.Porosity = NewRange(cols[1])
	for dir := 0; dir < 3; dir++ {
		o.Resist[dir] = NewRange(cols[2+dir])
	}
	o.Inertia = NewRange(cols[5])
	return
}

// Fields returns the statistics as log fields
func (o *Report) Fields() logrus.Fields {
	return logrus.Fields{
		"vsi":      o.Vsi.String(),
		"porosity": o.Porosity.String(),
		"resist1":  o.Resist[0].String(),
		"resist2":  o.Resist[1].String(),
		"resist3":  o.Resist[2].String(),
		"inertia":  o.Inertia.String(),
	}
}

// String returns a table with the statistics
func (o *Report) String() (l string) {
	l = io.Sf("cells = %d  non-finite = %d\n", o.Ncells, o.Nonfinite)
	l += io.Sf("%-10s %14s %14s %14s\n", "", "min", "max", "mean")
	row := func(name string, r Range) string {
		return io.Sf("%-10s %14g %14g %14g\n", name, r.Min, r.Max, r.Mean)
	}
	l += row("vsi", o.Vsi)
	l += row("porosity", o.Porosity)
	for dir := 0; dir < 3; dir++ {
		l += row(io.Sf("resist%d", dir+1), o.Resist[dir])
	}
	l += row("inertia", o.Inertia)
	return
}

// String returns "[min, max] mean"
func (o Range) String() string {
	return io.Sf("[%g, %g] %g", o.Min, o.Max, o.Mean)
}

// NewRange computes the statistics of values; all NaN if values is empty
func NewRange(values []float64) Range {
	if len(values) == 0 {
		return Range{math.NaN(), math.NaN(), math.NaN()}
	}
	return Range{
		Min:  floats.Min(values),
		Max:  floats.Max(values),
		Mean: floats.Sum(values) / float64(len(values)),
	}
}
