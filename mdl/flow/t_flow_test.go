// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_flow01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("flow01")

	mdl := new(Model)
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", mdl)

	// initial values
	chk.Float64(tst, "k0", 1e-17, mdl.K0, 6.909869395448802e-06)
	chk.Float64(tst, "C20", 1e-10, mdl.C20, 758.268549731248)

	// porosity
	chk.Float64(tst, "n(0.15)", 1e-15, mdl.Porosity(0.15), 0.25)
	chk.Float64(tst, "n(0.5)", 1e-17, mdl.Porosity(0.5), 0)
	chk.Float64(tst, "n(0)", 1e-17, mdl.Porosity(0), 0.4)

	// resistance within bounds
	n := 0.30
	chk.Float64(tst, "R(0.3)", 1e-6, mdl.Resistance(0, n), 632964.7426598904)
	chk.Float64(tst, "C2(0.3)", 1e-9, mdl.InertiaResistance(n), 19658.814252291617)

	// guards
	chk.Float64(tst, "R(0)", 1e-17, mdl.Resistance(1, 0), mdl.Rmax)
	chk.Float64(tst, "R(-1)", 1e-17, mdl.Resistance(1, -1), mdl.Rmax)
	chk.Float64(tst, "R(1)", 1e-17, mdl.Resistance(2, 1), mdl.Rmin)
	chk.Float64(tst, "C2(0)", 1e-17, mdl.InertiaResistance(0), mdl.Imax)
	chk.Float64(tst, "C2(1)", 1e-17, mdl.InertiaResistance(1), mdl.Imin)
	chk.Float64(tst, "C2(0.1)", 1e-17, mdl.InertiaResistance(0.1), mdl.Imax)

	// NaN propagates
	if !math.IsNaN(mdl.Resistance(0, mdl.Porosity(math.NaN()))) {
		tst.Errorf("NaN porosity must yield NaN resistance\n")
	}
}

func Test_flow02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("flow02")

	// clamping and scalers
	mdl := new(Model)
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "rmax", V: 5e5},
		&dbf.P{N: "rscal", V: 3},
		&dbf.P{N: "rscal2", V: 2},
		&dbf.P{N: "iscal", V: 10},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Array(tst, "rscal", 1e-17, mdl.Rscal[:], []float64{3, 2, 3})
	n := 0.30
	chk.Float64(tst, "R1(0.3)", 1e-17, mdl.Resistance(0, n), 3*5e5)
	chk.Float64(tst, "R2(0.3)", 1e-17, mdl.Resistance(1, n), 2*5e5)
	chk.Float64(tst, "C2(0.3)", 1e-8, mdl.InertiaResistance(n), 196588.14252291617)

	// monotonic decrease with porosity
	N := utl.LinSpace(0, 1, 101)
	for i := 1; i < len(N); i++ {
		if mdl.Resistance(0, N[i]) > mdl.Resistance(0, N[i-1]) {
			tst.Errorf("resistance must not increase with porosity: n=%g\n", N[i])
			return
		}
		if mdl.InertiaResistance(N[i]) > mdl.InertiaResistance(N[i-1]) {
			tst.Errorf("inertial resistance must not increase with porosity: n=%g\n", N[i])
			return
		}
	}

	// parameters
	prms := mdl.GetPrms(false)
	chk.Float64(tst, "rmax", 1e-17, prms.Find("rmax").V, 5e5)
	chk.Float64(tst, "rscal3", 1e-17, prms.Find("rscal3").V, 3)
}

func Test_flow03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("flow03")

	bad := []dbf.Params{
		{&dbf.P{N: "n0", V: 0}},
		{&dbf.P{N: "n0", V: 1}},
		{&dbf.P{N: "dp", V: 0}},
		{&dbf.P{N: "rmin", V: 6e6}},
		{&dbf.P{N: "imin", V: 2e5}},
		{&dbf.P{N: "kozeny", V: 180}},
	}
	for i, prms := range bad {
		mdl := new(Model)
		if err := mdl.Init(prms); err == nil {
			tst.Errorf("test %d: Init should have failed\n", i)
			return
		}
	}
}
