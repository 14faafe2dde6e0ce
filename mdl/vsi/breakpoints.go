// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vsi

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Interval is a blend band (Lo, Hi]
type Interval struct {
	Lo float64 // near edge (excluded)
	Hi float64 // far edge (included)
}

// Contains tells whether Lo < s ≤ Hi
func (o Interval) Contains(s float64) bool {
	return s > o.Lo && s <= o.Hi
}

// Mix returns the fraction of s within the band: 0 at Lo and 1 at Hi
func (o Interval) Mix(s float64) float64 {
	return (s - o.Lo) / (o.Hi - o.Lo)
}

// Breakpoints holds the partition of a panel into regions and blend bands.
// All values are in local panel coordinates
type Breakpoints struct {
	Along  []float64     // 0, end of startup band, start of working-face band, L
	Across []float64     // 0, [outer edge of centre strip,] half-width
	Bands  [][2]Interval // startup/mid and mid/face blend bands of each strip
	Xband  Interval      // centre/gateroad blend band (super-critical only)
}

// Nstrips returns the number of across-panel strips
func (o *Breakpoints) Nstrips() int {
	return len(o.Bands)
}

// String returns a summary of the breakpoints
func (o *Breakpoints) String() (l string) {
	l = io.Sf("along  = %v\n", o.Along)
	l += io.Sf("across = %v\n", o.Across)
	for i, b := range o.Bands {
		l += io.Sf("strip %d: startup band = (%g, %g]  face band = (%g, %g]\n", i, b[0].Lo, b[0].Hi, b[1].Lo, b[1].Hi)
	}
	if len(o.Bands) > 1 {
		l += io.Sf("across band = (%g, %g]\n", o.Xband.Lo, o.Xband.Hi)
	}
	return
}

// DeriveBreakpoints computes the breakpoints of a panel
//  Input:
//   mine      -- mine type
//   halfWidth -- panel half-width
//   length    -- panel length
//   gateroad  -- width of the gateroad strip; used by super-critical panels only
func DeriveBreakpoints(mine MineType, halfWidth, length, gateroad float64) (o *Breakpoints, err error) {

	// check
	lay, ok := layouts[mine]
	if !ok {
		return nil, chk.Err("mine type %d is invalid", mine)
	}
	if halfWidth <= 0 {
		return nil, chk.Err("panel half-width must be positive. %g is invalid", halfWidth)
	}
	if length <= 0 {
		return nil, chk.Err("panel length must be positive. %g is invalid", length)
	}

	// along-panel breakpoints
	b0, b1 := lay.startup, length-lay.face
	o = new(Breakpoints)
	o.Along = []float64{0, b0, b1, length}
	o.Across = []float64{0, halfWidth}

	// along-panel bands
	o.Bands = make([][2]Interval, len(lay.bands))
	for i, bands := range lay.bands {
		o.Bands[i][0] = Interval{b0 + bands[0].shift - bands[0].half, b0 + bands[0].shift + bands[0].half}
		o.Bands[i][1] = Interval{b1 + bands[1].shift - bands[1].half, b1 + bands[1].shift + bands[1].half}
		s, f := o.Bands[i][0], o.Bands[i][1]
		if s.Lo <= 0 || s.Hi >= f.Lo || f.Hi >= length {
			return nil, chk.Err("panel length %g is too short for %v: blend bands (%g,%g] and (%g,%g] must lie strictly inside (0,%g) without overlapping", length, mine, s.Lo, s.Hi, f.Lo, f.Hi, length)
		}
	}

	// across-panel breakpoint
	if lay.across > 0 {
		if gateroad <= 0 {
			return nil, chk.Err("gateroad width must be positive. %g is invalid", gateroad)
		}
		xb := halfWidth - gateroad
		o.Across = []float64{0, xb, halfWidth}
		o.Xband = Interval{xb - lay.across, xb + lay.across}
		if o.Xband.Lo <= 0 || o.Xband.Hi >= halfWidth {
			return nil, chk.Err("gateroad width %g is incompatible with half-width %g: blend band (%g,%g] must lie strictly inside (0,%g)", gateroad, halfWidth, o.Xband.Lo, o.Xband.Hi, halfWidth)
		}
	}
	return
}
