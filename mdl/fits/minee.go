// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fits

// MineE returns the fits of the super-critical mine E (type B)
func MineE() Set {
	return Set{
		StartupCenter: &Center{
			C: [5]float64{0.155394214, -0.004966014, 0.142894504, -0.154156852, -0.165429282},
			A: [3]float64{-1.11507158, -994.6190264, -2.119029131},
		},
		StartupGateroad: &Corner{
			P: 0.070680995,
			C: [6]float64{0.162003881, 0.114056257, 0.027309527, -0.134663756, -0.263467643, 51.01309648},
			A: [5]float64{-2.060750448, -2.32002878, -8.323851432, -50.02086538, -24.66420708},
		},
		MidPanelCenter: &Cubic{
			C: [4]float64{0.182881808, 0.000219076, -0.001701901, -0.003415753},
		},
		MidPanelGateroad: &Gateroad{
			C: [7]float64{0.10083973, 0.05329973, 0.000111875, 0.715710581, -0.100070375, -0.151653961, -0.378856069},
			A: [4]float64{-3.193027724, -1200.384929, -3.716593738, -16.20732696},
		},
		WorkingFaceCenter: &Center{
			C: [5]float64{0.034705045, -0.007156676, 0.392853454, -0.016570035, 0.206091545},
			A: [3]float64{-2.690847002, -290, -0.513740978},
		},
		WorkingFaceCorner: &Face{
			P: 0.251307505,
			C: [11]float64{0.197539477, -0.258183405, 0.02301539, -0.15928258, 0.445654501, 4.68818221, -13.90840849, 0.772026679, 34.5, 0.263621861, -0.255066042},
			A: [10]float64{-2.062155525, -21.41498958, -10.01527015, -17.13983263, -5.633256844, -65.9273908, -68.99785585, -3200.000001, -27.16257242, -9.010678902},
		},
	}
}

// add set to factory
func init() {
	allocators["mine-e"] = MineE
}
