// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements the transforms from volumetric strain increment (VSI) to the porosity,
// viscous resistance and inertial resistance of caved gob material
//  References:
//   [1] Carman PC (1937) Fluid flow through granular beds. Transactions of the Institution of
//       Chemical Engineers, 15, 150-166
//   [2] Ergun S (1952) Fluid flow through packed columns. Chemical Engineering Progress,
//       48(2), 89-94
package flow

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Model holds the parameters of the VSI-to-flow transforms
type Model struct {

	// parameters
	Nmax  float64    // maximum porosity (voids fraction right behind the shields)
	Nscal float64    // porosity scaler
	N0    float64    // initial porosity of the undisturbed rock
	Dp    float64    // mean particle diameter
	Rscal [3]float64 // viscous resistance scaler in each direction
	Rmax  float64    // maximum viscous resistance
	Rmin  float64    // minimum viscous resistance
	Iscal float64    // inertial resistance scaler
	Imax  float64    // maximum inertial resistance
	Imin  float64    // minimum inertial resistance

	// derived
	K0  float64 // initial permeability
	C20 float64 // initial inertial resistance
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {

	// defaults
	o.Nmax, o.Nscal, o.N0, o.Dp = 0.40, 1, 0.25778, 0.2
	o.Rmax, o.Rmin = 5e6, 1.45e5
	o.Iscal, o.Imax, o.Imin = 1, 1.3e5, 0

	// isotropic scaler
	rscal := 1.0
	if p := prms.Find("rscal"); p != nil {
		rscal = p.V
	}
	o.Rscal = [3]float64{rscal, rscal, rscal}

	// parameters
	for _, p := range prms {
		switch p.N {
		case "nmax":
			o.Nmax = p.V
		case "nscal":
			o.Nscal = p.V
		case "n0":
			o.N0 = p.V
		case "dp":
			o.Dp = p.V
		case "rscal":
		case "rscal1":
			o.Rscal[0] = p.V
		case "rscal2":
			o.Rscal[1] = p.V
		case "rscal3":
			o.Rscal[2] = p.V
		case "rmax":
			o.Rmax = p.V
		case "rmin":
			o.Rmin = p.V
		case "iscal":
			o.Iscal = p.V
		case "imax":
			o.Imax = p.V
		case "imin":
			o.Imin = p.V
		default:
			return chk.Err("flow model: parameter named %q is invalid", p.N)
		}
	}

	// check
	if o.N0 <= 0 || o.N0 >= 1 {
		return chk.Err("flow model: initial porosity must be in (0,1). %g is invalid", o.N0)
	}
	if o.Dp <= 0 {
		return chk.Err("flow model: particle diameter must be positive. %g is invalid", o.Dp)
	}
	if o.Rmin > o.Rmax {
		return chk.Err("flow model: minimum resistance %g must not exceed maximum resistance %g", o.Rmin, o.Rmax)
	}
	if o.Imin > o.Imax {
		return chk.Err("flow model: minimum inertial resistance %g must not exceed maximum %g", o.Imin, o.Imax)
	}

	// derived
	o.K0 = InitialPermeability(o.N0, o.Dp)
	o.C20 = InitialInertia(o.N0, o.Dp)
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "nmax", V: 0.40},   // [-]
			&dbf.P{N: "nscal", V: 1},     // [-]
			&dbf.P{N: "n0", V: 0.25778},  // [-]
			&dbf.P{N: "dp", V: 0.2},      // [m]
			&dbf.P{N: "rscal", V: 1},     // [-]
			&dbf.P{N: "rmax", V: 5e6},    // [1/m²]
			&dbf.P{N: "rmin", V: 1.45e5}, // [1/m²]
			&dbf.P{N: "iscal", V: 1},     // [-]
			&dbf.P{N: "imax", V: 1.3e5},  // [1/m]
			&dbf.P{N: "imin", V: 0},      // [1/m]
		}
	}
	return dbf.Params{
		&dbf.P{N: "nmax", V: o.Nmax},
		&dbf.P{N: "nscal", V: o.Nscal},
		&dbf.P{N: "n0", V: o.N0},
		&dbf.P{N: "dp", V: o.Dp},
		&dbf.P{N: "rscal1", V: o.Rscal[0]},
		&dbf.P{N: "rscal2", V: o.Rscal[1]},
		&dbf.P{N: "rscal3", V: o.Rscal[2]},
		&dbf.P{N: "rmax", V: o.Rmax},
		&dbf.P{N: "rmin", V: o.Rmin},
		&dbf.P{N: "iscal", V: o.Iscal},
		&dbf.P{N: "imax", V: o.Imax},
		&dbf.P{N: "imin", V: o.Imin},
	}
}

// Porosity computes the porosity corresponding to a VSI. Negative values are clamped to zero
func (o *Model) Porosity(vsi float64) float64 {
	n := (o.Nmax - vsi) * o.Nscal
	if n < 0 {
		return 0
	}
	return n
}

// Resistance computes the viscous resistance 1/k in direction dir ∈ {0,1,2}
//  Note: n ≤ 0 yields the maximum and n ≥ 1 yields the minimum before scaling
func (o *Model) Resistance(dir int, n float64) float64 {
	if dir < 0 || dir > 2 {
		chk.Panic("direction must be 0, 1 or 2. %d is invalid", dir)
	}
	var r float64
	switch {
	case n <= 0:
		r = o.Rmax
	case n >= 1:
		r = o.Rmin
	default:
		r = clamp(1/CarmanKozeny(n, o.K0), o.Rmin, o.Rmax)
	}
	return r * o.Rscal[dir]
}

// InertiaResistance computes the inertial resistance
//  Note: n ≤ 0 yields the maximum and n ≥ 1 yields the minimum before scaling
func (o *Model) InertiaResistance(n float64) float64 {
	var c float64
	switch {
	case n <= 0:
		c = o.Imax
	case n >= 1:
		c = o.Imin
	default:
		c = clamp(BlakeKozeny(n, o.C20), o.Imin, o.Imax)
	}
	return c * o.Iscal
}

// String returns a summary of the model
func (o *Model) String() string {
	return io.Sf("n0=%g dp=%g => k0=%g C20=%g; R∈[%g,%g]×%v; C2∈[%g,%g]×%g", o.N0, o.Dp, o.K0, o.C20, o.Rmin, o.Rmax, o.Rscal, o.Imin, o.Imax, o.Iscal)
}

// InitialPermeability computes the Kozeny permeability of the undisturbed rock
//
//   k0 = n0³ d² / (180 (1-n0)²)
//
func InitialPermeability(n0, d float64) float64 {
	return n0 * n0 * n0 / (180 * (1 - n0) * (1 - n0)) * d * d
}

// InitialInertia computes the inertial resistance of the undisturbed rock (Ergun)
//
//   C20 = 3.5 (1-n0) / (d n0³)
//
func InitialInertia(n0, d float64) float64 {
	return 3.5 / d * (1 - n0) / (n0 * n0 * n0)
}

// CarmanKozeny computes the permeability for porosity n ∈ (0,1) scaled from k0
//
//   k = k0 / 0.241 · n³ / (1-n)²
//
func CarmanKozeny(n, k0 float64) float64 {
	return k0 / 0.241 * n * n * n / ((1 - n) * (1 - n))
}

// BlakeKozeny computes the inertial resistance for porosity n ∈ (0,1) scaled from C20
//
//   C2 = C20 (1-n) / n³
//
func BlakeKozeny(n, c20 float64) float64 {
	return c20 * (1 - n) / (n * n * n)
}

// clamp crops v into [lo, hi]; NaN is returned unchanged
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
