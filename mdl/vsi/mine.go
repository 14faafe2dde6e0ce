// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vsi

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/longwallgobs/gob/mdl/fits"
)

// MineType selects the panel regime and the set of fits
type MineType int

// mine types
const (
	SubCriticalSingleSeam MineType = iota // Trona mine
	SuperCriticalTypeA                    // mine C
	SuperCriticalTypeB                    // mine E
)

// String returns the name of the mine type
func (o MineType) String() string {
	switch o {
	case SubCriticalSingleSeam:
		return "SubCriticalSingleSeam"
	case SuperCriticalTypeA:
		return "SuperCriticalTypeA"
	case SuperCriticalTypeB:
		return "SuperCriticalTypeB"
	}
	return "unknown"
}

// Mine returns the name of the mine the fits were calibrated with
func (o MineType) Mine() string {
	switch o {
	case SubCriticalSingleSeam:
		return "Trona"
	case SuperCriticalTypeA:
		return "mine C"
	case SuperCriticalTypeB:
		return "mine E"
	}
	return "unknown"
}

// Super tells whether the panel is super-critical
func (o MineType) Super() bool {
	return o == SuperCriticalTypeA || o == SuperCriticalTypeB
}

// Valid tells whether o is a known mine type
func (o MineType) Valid() bool {
	_, ok := layouts[o]
	return ok
}

// ParseMineType parses a mine type given by its name or the name of the mine
func ParseMineType(s string) (mine MineType, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "subcriticalsingleseam", "trona", "t":
		return SubCriticalSingleSeam, nil
	case "supercriticaltypea", "mine-c", "c":
		return SuperCriticalTypeA, nil
	case "supercriticaltypeb", "mine-e", "e":
		return SuperCriticalTypeB, nil
	}
	return 0, chk.Err("mine type %q is invalid", s)
}

// Defaults returns the default panel dimensions and maximum VSI of a mine type
func (o MineType) Defaults() (halfWidth, length, maxVsi float64) {
	lay, ok := layouts[o]
	if !ok {
		chk.Panic("mine type %d is invalid", o)
	}
	return lay.hw, lay.length, lay.maxvsi
}

// band locates a blend band relative to its along-panel breakpoint
type band struct {
	shift float64 // offset of the band centre from the breakpoint
	half  float64 // half-width
}

// layout holds the constants used when the fits of one mine were calibrated
type layout struct {
	fits    string           // name of the set of fits
	startup float64          // length of the startup band measured from the startup room
	face    float64          // length of the working-face band measured back from the face
	across  float64          // half-width of the across-panel blend band; zero => one strip
	bands   [][2]band        // startup/mid and mid/face blend bands of each strip
	regions [][3]fits.Region // startup, mid-panel and working-face regions of each strip
	hw      float64          // default panel half-width
	length  float64          // default panel length
	maxvsi  float64          // default maximum VSI
}

// layouts holds the layout of each mine type. The centre strip comes first
var layouts = map[MineType]*layout{
	SubCriticalSingleSeam: {
		fits:    "trona",
		startup: 300,
		face:    400,
		bands:   [][2]band{{{0, 25}, {0, 45}}},
		regions: [][3]fits.Region{{fits.StartupCorner, fits.MidPanelGateroad, fits.WorkingFaceCorner}},
		hw:      100,
		length:  3078.48,
		maxvsi:  0.22,
	},
	SuperCriticalTypeA: {
		fits:    "mine-c",
		startup: 190,
		face:    300,
		across:  15,
		bands: [][2]band{
			{{-15, 25}, {0, 40}},
			{{0, 25}, {0, 45}},
		},
		regions: [][3]fits.Region{
			{fits.StartupCenter, fits.MidPanelCenter, fits.WorkingFaceCenter},
			{fits.StartupGateroad, fits.MidPanelGateroad, fits.WorkingFaceCorner},
		},
		hw:     151.4856,
		length: 1000,
		maxvsi: 0.2623,
	},
	SuperCriticalTypeB: {
		fits:    "mine-e",
		startup: 190,
		face:    300,
		across:  20,
		bands: [][2]band{
			{{-15, 20}, {-15, 20}},
			{{0, 20}, {0, 40}},
		},
		regions: [][3]fits.Region{
			{fits.StartupCenter, fits.MidPanelCenter, fits.WorkingFaceCenter},
			{fits.StartupGateroad, fits.MidPanelGateroad, fits.WorkingFaceCorner},
		},
		hw:     151.4856,
		length: 1000,
		maxvsi: 0.179,
	},
}
