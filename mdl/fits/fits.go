// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fits implements regression surfaces of the volumetric strain increment (VSI)
// in longwall gobs. Each surface was fitted to FLAC3D results over one region of a panel,
// in normalised coordinates u (across the panel) and v (along the panel), both in [0,1].
//  Note: the power-law families evaluate pow(u·v, p); for u·v < 0 this yields NaN, which is
//        propagated unchanged. Callers only pass coordinates inside the panel domain.
package fits

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Region identifies a fitted region of a panel
type Region int

// regions
const (
	StartupCorner     Region = iota // startup room corner (sub-critical and super-critical)
	StartupCenter                   // startup room centre (super-critical)
	StartupGateroad                 // startup room gateroad (super-critical)
	MidPanelCenter                  // mid-panel centre (super-critical)
	MidPanelGateroad                // mid-panel gateroad
	WorkingFaceCenter               // working face centre (super-critical)
	WorkingFaceCorner               // working face corner
)

// String returns the name of the region
func (r Region) String() string {
	switch r {
	case StartupCorner:
		return "startup-corner"
	case StartupCenter:
		return "startup-center"
	case StartupGateroad:
		return "startup-gateroad"
	case MidPanelCenter:
		return "mid-panel-center"
	case MidPanelGateroad:
		return "mid-panel-gateroad"
	case WorkingFaceCenter:
		return "working-face-center"
	case WorkingFaceCorner:
		return "working-face-corner"
	}
	return "unknown"
}

// Fit defines a regression surface f(u, v)
type Fit interface {
	Nargs() int             // number of arguments actually used: 1 => f(u), 2 => f(u,v)
	F(u, v float64) float64 // evaluates the fit; result is never negative (NaN propagates)
}

// Set maps regions of one mine onto their fits
type Set map[Region]Fit

// Get returns the fit of a region
func (o Set) Get(r Region) (fit Fit, err error) {
	fit, ok := o[r]
	if !ok {
		return nil, chk.Err("fit for region %q is not available in this set", r)
	}
	return
}

// New returns a new set of fits
func New(name string) (set Set, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("fit set %q is not available in 'fits' database", name)
	}
	return allocator(), nil
}

// allocators holds all available sets of fits
var allocators = map[string]func() Set{}

// positive clamps negative values to zero
func positive(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Corner implements the startup corner family
//
//   f = (uv)ᵖ · (c0 + c1·exp(a0·v)·uv + c2·exp(a1·uv) + c3·exp(a2·u) + c4·exp(a3·v) + c5·u²·exp(a4·u))
//
type Corner struct {
	P float64    // exponent
	C [6]float64 // coefficients
	A [5]float64 // rates
}

// Nargs returns the number of arguments
func (o *Corner) Nargs() int { return 2 }

// F evaluates the fit
func (o *Corner) F(u, v float64) float64 {
	uv := u * v
	c, a := &o.C, &o.A
	s := c[0] +
		c[1]*math.Exp(a[0]*v)*uv +
		c[2]*math.Exp(a[1]*uv) +
		c[3]*math.Exp(a[2]*u) +
		c[4]*math.Exp(a[3]*v) +
		c[5]*u*u*math.Exp(a[4]*u)
	return positive(math.Pow(uv, o.P) * s)
}

// Face implements the working face corner family
//
//   f = (uv)ᵖ · (c0 + c1·exp(a0·v)·uv + c2·exp(a1·uv) + c3·exp(a2·v) + c4·u²·exp(a3·u²)
//              + c5·v²·exp(a4·v) + c6·u·exp(a5·u) + c7·u·exp(a6·u²) + c8·exp(a7·u)
//              + c9·v·exp(a8·v) + c10·v·exp(a9·v²))
//
type Face struct {
	P float64     // exponent
	C [11]float64 // coefficients
	A [10]float64 // rates
}

// Nargs returns the number of arguments
func (o *Face) Nargs() int { return 2 }

// F evaluates the fit
func (o *Face) F(u, v float64) float64 {
	uv, uu, vv := u*v, u*u, v*v
	c, a := &o.C, &o.A
	s := c[0] +
		c[1]*math.Exp(a[0]*v)*uv +
		c[2]*math.Exp(a[1]*uv) +
		c[3]*math.Exp(a[2]*v) +
		c[4]*uu*math.Exp(a[3]*uu) +
		c[5]*vv*math.Exp(a[4]*v) +
		c[6]*u*math.Exp(a[5]*u) +
		c[7]*u*math.Exp(a[6]*uu) +
		c[8]*math.Exp(a[7]*u) +
		c[9]*v*math.Exp(a[8]*v) +
		c[10]*v*math.Exp(a[9]*vv)
	return positive(math.Pow(uv, o.P) * s)
}

// Gateroad implements the gateroad family
//
//   f = c0 + c1·u + c2·v + c3·u·exp(a0·u) + c4·exp(a1·u²) + c5·u·exp(a2·u²) + c6·u²·exp(a3·u²)
//
//  Note: with c2 = 0 the fit depends on u only
type Gateroad struct {
	C [7]float64 // coefficients
	A [4]float64 // rates
}

// Nargs returns the number of arguments
func (o *Gateroad) Nargs() int {
	if o.C[2] == 0 {
		return 1
	}
	return 2
}

// F evaluates the fit
func (o *Gateroad) F(u, v float64) float64 {
	uu := u * u
	c, a := &o.C, &o.A
	return positive(c[0] +
		c[1]*u +
		c[2]*v +
		c[3]*u*math.Exp(a[0]*u) +
		c[4]*math.Exp(a[1]*uu) +
		c[5]*u*math.Exp(a[2]*uu) +
		c[6]*uu*math.Exp(a[3]*uu))
}

// Center implements the startup and working face centre family
//
//   f = c0 + c1·u² + c2·v·exp(a0·v²) + c3·exp(a1·v²) + c4·v²·exp(a2·v²)
//
type Center struct {
	C [5]float64 // coefficients
	A [3]float64 // rates
}

// Nargs returns the number of arguments
func (o *Center) Nargs() int { return 2 }

// F evaluates the fit
func (o *Center) F(u, v float64) float64 {
	vv := v * v
	c, a := &o.C, &o.A
	return positive(c[0] +
		c[1]*u*u +
		c[2]*v*math.Exp(a[0]*vv) +
		c[3]*math.Exp(a[1]*vv) +
		c[4]*vv*math.Exp(a[2]*vv))
}

// Cubic implements the mid-panel centre family
//
//   f = c0 + c1·v + c2·u² + c3·u³
//
type Cubic struct {
	C [4]float64 // coefficients
}

// Nargs returns the number of arguments
func (o *Cubic) Nargs() int { return 2 }

// F evaluates the fit
func (o *Cubic) F(u, v float64) float64 {
	c := &o.C
	return positive(c[0] + c[1]*v + c[2]*u*u + c[3]*u*u*u)
}
