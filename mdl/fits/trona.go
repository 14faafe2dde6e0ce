// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fits

// Trona returns the fits of the sub-critical single-seam Trona mine
func Trona() Set {
	return Set{
		StartupCorner: &Corner{
			P: 0.1007,
			C: [6]float64{0.1796, 0.2762, 0.04375, -0.3093, -0.2702, 0.437},
			A: [5]float64{-4.552, -5.354, -60.54, -50.36, -2.728},
		},
		MidPanelGateroad: &Gateroad{
			C: [7]float64{0.2031, 0.007304, 0, 1.495, -0.1661, -0.1315, -3.298},
			A: [4]float64{-19.69, -162.6, -7.204, -44.01},
		},
		WorkingFaceCorner: &Face{
			P: 0.107302089705487,
			C: [11]float64{0.1477, -0.812278751377339, 0.103507270969929, -0.1738, 0.1971, 13.6, -14.56, 11.19, 0.07992, -6.274, 0.03141},
			A: [10]float64{-9.96978304250904, -688.057090793680, -6.368, -1.38, -2890, -47.01, -7883, -2.155, -99.58, -8.748},
		},
	}
}

// add set to factory
func init() {
	allocators["trona"] = Trona
}
