// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field implements the per-cell material state of gob regions and the driver that
// computes it once per run and replays it on every later solver pass
package field

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// State holds the material state of one cell
type State struct {
	Vsi      float64    // volumetric strain increment
	Porosity float64    // porosity
	Resist   [3]float64 // viscous resistance in each direction
	Inertia  float64    // inertial resistance
}

// String returns a one-line summary of the state
func (o State) String() string {
	return io.Sf("vsi=%g n=%g R=[%g %g %g] C2=%g", o.Vsi, o.Porosity, o.Resist[0], o.Resist[1], o.Resist[2], o.Inertia)
}

// Finite tells whether all values are finite
func (o State) Finite() bool {
	for _, v := range []float64{o.Vsi, o.Porosity, o.Resist[0], o.Resist[1], o.Resist[2], o.Inertia} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Cell holds the identifier and centroid of a mesh cell
type Cell struct {
	Id int       // identifier of the cell slot in storage
	X  []float64 // centroid; only X[0] and X[1] are used
}

// Check returns an error if the centroid cannot be used
func (o Cell) Check() error {
	if len(o.X) < 2 {
		return chk.Err("cell %d: centroid must have at least 2 coordinates. %v is invalid", o.Id, o.X)
	}
	for _, x := range o.X[:2] {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return chk.Err("cell %d: centroid %v is not finite", o.Id, o.X)
		}
	}
	return nil
}

// Mesh defines the host view of cells grouped into named regions
type Mesh interface {
	Cells(region string) ([]Cell, error) // returns the cells of a region
}

// Storage defines the host per-cell storage with one State slot per cell.
// Save and Load are called concurrently for distinct cells
type Storage interface {
	Save(id int, s State) error       // writes the slot of a cell
	Load(id int) (s State, err error) // reads the slot of a cell
}

// Mode selects what a pass does
type Mode int

// modes
const (
	Computing Mode = iota // evaluate all cells and write their slots
	Replaying             // read slots written by the computing pass
)

// String returns the name of the mode
func (o Mode) String() string {
	if o == Computing {
		return "computing"
	}
	return "replaying"
}

// ModeFor returns the mode of a pass given the 1-based solver iteration counter
func ModeFor(epoch int) Mode {
	if epoch <= 1 {
		return Computing
	}
	return Replaying
}
