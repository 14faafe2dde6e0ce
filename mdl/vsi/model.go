// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vsi implements the stepped model of the volumetric strain increment (VSI) in the gob
// behind a retreating longwall face. The panel is split into regions, each one described by a
// regression surface (see package fits), and adjacent regions are linearly blended across bands
package vsi

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/longwallgobs/gob/mdl/fits"
)

// Term is one weighted region of a composite
type Term struct {
	Region fits.Region // region
	W      float64     // weight
}

// Model implements the stepped VSI field of one panel
type Model struct {

	// parameters
	Mine   MineType // mine type
	Hw     float64  // panel half-width
	L      float64  // panel length
	Xoff   float64  // x-coordinate of the panel centreline
	Yoff   float64  // y-offset of the panel origin
	MaxVsi float64  // upper bound of VSI
	Gw     float64  // width of the gateroad strip (super-critical)

	// derived
	Bkp  *Breakpoints // breakpoints
	Fits fits.Set     // regression surfaces

	// auxiliary
	lay  *layout                                           // constants of the mine
	norm map[fits.Region]func(x, y float64) (u, v float64) // normalisation of each region
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {

	// mine type
	o.Mine = SubCriticalSingleSeam
	if p := prms.Find("mine"); p != nil {
		o.Mine = MineType(int(p.V))
		if !o.Mine.Valid() || float64(o.Mine) != p.V {
			return chk.Err("vsi model: mine type %g is invalid", p.V)
		}
	}
	o.lay = layouts[o.Mine]

	// defaults
	o.Hw, o.L, o.MaxVsi = o.lay.hw, o.lay.length, o.lay.maxvsi
	o.Xoff, o.Yoff = 0, 0
	o.Gw = 100

	// parameters
	for _, p := range prms {
		switch p.N {
		case "mine":
		case "hw":
			o.Hw = p.V
		case "L":
			o.L = p.V
		case "xoff":
			o.Xoff = p.V
		case "yoff":
			o.Yoff = p.V
		case "maxvsi":
			o.MaxVsi = p.V
		case "gw":
			o.Gw = p.V
		default:
			return chk.Err("vsi model: parameter named %q is invalid", p.N)
		}
	}
	if o.MaxVsi <= 0 {
		return chk.Err("vsi model: maximum VSI must be positive. %g is invalid", o.MaxVsi)
	}

	// breakpoints and fits
	o.Bkp, err = DeriveBreakpoints(o.Mine, o.Hw, o.L, o.Gw)
	if err != nil {
		return
	}
	o.Fits, err = fits.New(o.lay.fits)
	if err != nil {
		return
	}
	for _, strip := range o.lay.regions {
		for _, r := range strip {
			if _, err = o.Fits.Get(r); err != nil {
				return
			}
		}
	}
	o.setNormalisers()
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "mine", V: float64(SubCriticalSingleSeam)},
			&dbf.P{N: "hw", V: 100},      // [m]
			&dbf.P{N: "L", V: 3078.48},   // [m]
			&dbf.P{N: "xoff", V: 0},      // [m]
			&dbf.P{N: "yoff", V: 0},      // [m]
			&dbf.P{N: "maxvsi", V: 0.22}, // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "mine", V: float64(o.Mine)},
		&dbf.P{N: "hw", V: o.Hw},
		&dbf.P{N: "L", V: o.L},
		&dbf.P{N: "xoff", V: o.Xoff},
		&dbf.P{N: "yoff", V: o.Yoff},
		&dbf.P{N: "maxvsi", V: o.MaxVsi},
		&dbf.P{N: "gw", V: o.Gw},
	}
}

// Local converts solver coordinates into local panel coordinates.
// x is mirrored about the centreline; y runs from the startup room (0) to the face (L)
func (o *Model) Local(x, y float64) (xl, yl float64) {
	xl = math.Abs(x - o.Xoff)
	if o.Mine.Super() {
		yl = o.L - y - o.Yoff
		return
	}
	yl = o.L + y - o.Yoff
	return
}

// Global returns the solver coordinates of the point (0, yl) on the centreline
func (o *Model) Global(yl float64) (x, y float64) {
	x = o.Xoff
	if o.Mine.Super() {
		y = o.L - yl - o.Yoff
		return
	}
	y = yl - o.L + o.Yoff
	return
}

// Extent returns the bounding box of the panel in solver coordinates
func (o *Model) Extent() (xmin, xmax, ymin, ymax float64) {
	_, y0 := o.Global(0)
	_, y1 := o.Global(o.L)
	return o.Xoff - o.Hw, o.Xoff + o.Hw, math.Min(y0, y1), math.Max(y0, y1)
}

// Zone classifies a point given in local coordinates. The weights of the returned terms
// add up to one; an empty zone means the point lies outside the panel
func (o *Model) Zone(xl, yl float64) (terms []Term) {
	if !(xl >= 0 && xl <= o.Hw && yl >= 0 && yl <= o.L) {
		return nil
	}
	if o.Bkp.Nstrips() == 1 {
		return o.along(nil, 0, yl, 1)
	}
	xb := o.Bkp.Xband
	switch {
	case xl <= xb.Lo:
		return o.along(nil, 0, yl, 1)
	case xl > xb.Hi:
		return o.along(nil, 1, yl, 1)
	}
	m := xb.Mix(xl)
	terms = o.along(nil, 0, yl, 1-m)
	return o.along(terms, 1, yl, m)
}

// Normalise converts local coordinates into the normalised coordinates of a region
func (o *Model) Normalise(r fits.Region, xl, yl float64) (u, v float64) {
	norm, ok := o.norm[r]
	if !ok {
		chk.Panic("region %v is not used by %v panels", r, o.Mine)
	}
	return norm(xl, yl)
}

// Raw computes the composite VSI at local coordinates before clamping
func (o *Model) Raw(xl, yl float64) (res float64) {
	for _, t := range o.Zone(xl, yl) {
		if t.W == 0 {
			continue
		}
		u, v := o.Normalise(t.Region, xl, yl)
		res += t.W * o.Fits[t.Region].F(u, v)
	}
	return
}

// Vsi computes the VSI at a point given in solver coordinates. The result lies in [0, MaxVsi]
// except when a fit yields NaN, which is returned unchanged
func (o *Model) Vsi(x, y float64) float64 {
	return clamp(o.Raw(o.Local(x, y)), 0, o.MaxVsi)
}

// along appends the terms of an along-panel classification within one strip
func (o *Model) along(terms []Term, strip int, yl, w float64) []Term {
	regs := o.lay.regions[strip]
	bands := o.Bkp.Bands[strip]
	switch {
	case yl <= bands[0].Lo:
		return append(terms, Term{regs[0], w})
	case yl <= bands[0].Hi:
		m := bands[0].Mix(yl)
		return append(terms, Term{regs[0], w * (1 - m)}, Term{regs[1], w * m})
	case yl <= bands[1].Lo:
		return append(terms, Term{regs[1], w})
	case yl <= bands[1].Hi:
		m := bands[1].Mix(yl)
		return append(terms, Term{regs[1], w * (1 - m)}, Term{regs[2], w * m})
	}
	return append(terms, Term{regs[2], w})
}

// setNormalisers sets the normalisation of each region. Offsets are those used in calibration
func (o *Model) setNormalisers() {
	hw, L := o.Hw, o.L
	b0, b1 := o.Bkp.Along[1], o.Bkp.Along[2]
	vStartup := func(y float64) float64 { return y / b0 }
	vMid := func(y float64) float64 { return (y - b0) / (b1 - b0) }
	vFace := func(y float64) float64 { return 1 - (y-b1)/(L-b1) }

	// sub-critical
	if !o.Mine.Super() {
		o.norm = map[fits.Region]func(x, y float64) (u, v float64){
			fits.StartupCorner: func(x, y float64) (float64, float64) {
				return (hw - x) / hw, y / L
			},
			fits.MidPanelGateroad: func(x, y float64) (float64, float64) {
				return (hw - x) / hw, vMid(y)
			},
			fits.WorkingFaceCorner: func(x, y float64) (float64, float64) {
				return (hw-x)/(hw+40) + 0.02, (L-y)/(L-b1) + 0.012
			},
		}
		return
	}

	// super-critical
	xb, bx := o.Bkp.Across[1], o.lay.across
	uGate := func(x float64) float64 { return 1 - (x-xb)/(hw-xb) }
	o.norm = map[fits.Region]func(x, y float64) (u, v float64){
		fits.StartupCenter: func(x, y float64) (float64, float64) {
			return (xb - 20 - x) / xb, vStartup(y)
		},
		fits.MidPanelCenter: func(x, y float64) (float64, float64) {
			return (xb - 10 - x) / xb, vMid(y)
		},
		fits.WorkingFaceCenter: func(x, y float64) (float64, float64) {
			return (x - xb + bx + 15) / xb, vFace(y)
		},
		fits.StartupGateroad: func(x, y float64) (float64, float64) {
			return uGate(x), vStartup(y)
		},
		fits.MidPanelGateroad: func(x, y float64) (float64, float64) {
			return uGate(x), vMid(y)
		},
		fits.WorkingFaceCorner: func(x, y float64) (float64, float64) {
			return uGate(x), vFace(y)
		},
	}
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
