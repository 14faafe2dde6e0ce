// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test complete gob runs
package tests

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/longwallgobs/gob/field"
	"github.com/longwallgobs/gob/inp"
)

// Point holds the reference state at one centroid
type Point struct {
	X        []float64  // centroid (solver coordinates)
	Vsi      float64    // volumetric strain increment
	Porosity float64    // porosity
	Resist   [3]float64 // viscous resistance in each direction
	Inertia  float64    // inertial resistance
}

// Results holds reference results
type Results struct {
	Note   string  // note about the configuration
	Points []Point // reference states
}

// Tolerances holds the tolerances used by CompareResults
type Tolerances struct {
	Vsi     float64 // tolerance for VSI and porosity
	Resist  float64 // tolerance for viscous resistances
	Inertia float64 // tolerance for inertial resistance
}

// CompareResults runs npass passes of a configuration over the points in a .cmp file and
// compares every pass against the reference states
func CompareResults(tst *testing.T, cfgpath, cmpfname string, npass int, tol Tolerances, verbose bool) {

	// configuration
	store, err := inp.NewStore(cfgpath)
	if err != nil {
		tst.Errorf("CompareResults: cannot read configuration:\n%v\n", err)
		return
	}
	cfg, err := inp.Resolve(store)
	if err != nil {
		tst.Errorf("CompareResults: cannot resolve configuration:\n%v\n", err)
		return
	}
	if verbose {
		io.Pf("%s\n", cfg.Echo())
	}

	// driver
	drv, err := field.NewDriver(cfg, Logger())
	if err != nil {
		tst.Errorf("CompareResults: cannot allocate driver:\n%v\n", err)
		return
	}

	// read file with comparison results
	buf, err := inp.ReadFile(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: ReadFile failed:%v\n", err)
		return
	}
	var cmp Results
	err = json.Unmarshal(buf, &cmp)
	if err != nil {
		tst.Errorf("CompareResults: Unmarshal failed:\n%v\n", err)
		return
	}
	if verbose {
		io.Pfyel("%s: %d points\n", cmp.Note, len(cmp.Points))
	}

	// mesh with one cell per point
	cells := make([]field.Cell, len(cmp.Points))
	for i, p := range cmp.Points {
		cells[i] = field.Cell{Id: i, X: p.X}
	}
	mesh := field.NewGrid()
	if err = mesh.AddCells("gob", cells); err != nil {
		tst.Errorf("CompareResults: cannot add cells:\n%v\n", err)
		return
	}
	sto := field.NewMemory(len(cells))

	// run passes
	for epoch := 1; epoch <= npass; epoch++ {
		states, err := drv.Pass(epoch, mesh, "gob", sto)
		if err != nil {
			tst.Errorf("CompareResults: pass %d failed:\n%v\n", epoch, err)
			return
		}
		if verbose {
			io.Pfyel("\nepoch = %d (%v)\n", epoch, field.ModeFor(epoch))
		}
		for i, s := range states {
			p := cmp.Points[i]
			lbl := io.Sf("p%d(%g,%g)", i, p.X[0], p.X[1])
			chk.Float64(tst, lbl+": vsi", tol.Vsi, s.Vsi, p.Vsi)
			chk.Float64(tst, lbl+": n", tol.Vsi, s.Porosity, p.Porosity)
			chk.Array(tst, lbl+": R", tol.Resist, s.Resist[:], p.Resist[:])
			chk.Float64(tst, lbl+": C2", tol.Inertia, s.Inertia, p.Inertia)
		}
	}
}
