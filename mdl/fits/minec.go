// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fits

// MineC returns the fits of the super-critical mine C (type A)
func MineC() Set {
	return Set{
		StartupCenter: &Center{
			C: [5]float64{0.23446547, -0.007274502, 0.21112871, -0.232563013, -0.288213205},
			A: [3]float64{-1.254341353, -986.7723584, -2.41029839},
		},
		StartupGateroad: &Corner{
			P: 0.072583782,
			C: [6]float64{0.222803703, 0.217897624, 0.035000529, -0.213737696, -0.399728137, 0.36279155},
			A: [5]float64{-3.019723703, -4.519932999, -33.3990023, -49.33761923, -2.519206805},
		},
		MidPanelCenter: &Cubic{
			C: [4]float64{0.26928324, 0.000607666, -0.001387445, -0.005923021406},
		},
		MidPanelGateroad: &Gateroad{
			C: [7]float64{0.10083973, 0.128284224, 0.000603995, 2.171935712, -0.101220528, -0.474820214, -1.477162806},
			A: [4]float64{-4.062177714, -1464.235434, -5.389192365, -23.91528913},
		},
		WorkingFaceCenter: &Center{
			C: [5]float64{0.054623275, -0.007156676, 0.537305093, -0.028010127, 0.501978887},
			A: [3]float64{-3.725760322, -290, -0.911642577},
		},
		WorkingFaceCorner: &Face{
			P: 0.162024335,
			C: [11]float64{0.262664371, -0.253166473007042, 0.065491826, -0.243491669, -0.01, 5.007983398, -27.10582475, 0.315580701, 38.98661392, 2.089424053, -0.303675247},
			A: [10]float64{-3.203358282, -228.3897538, -8.890275525, -47.29743004, -5.70033048, -73.60496053, -51.89579568, -3169.255209, -30.00980383, -7.38256233},
		},
	}
}

// add set to factory
func init() {
	allocators["mine-c"] = MineC
}
