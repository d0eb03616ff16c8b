// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import "math"

// series is a cubic polynomial plus a sum of sinusoids evaluated in a
// single independent variable: years since 2000 for the solar terms and
// half lunations for the moon phases. The result is in days since the
// start of the year.
type series struct {
	poly  [4]float64
	freq  []float64
	amp   []float64
	phase []float64
}

func (s *series) eval(offset, x float64) float64 {
	v := s.poly[0] + offset + x*(s.poly[1]+x*(s.poly[2]+x*s.poly[3]))
	for i, w := range s.freq {
		v += s.amp[i] * math.Sin(mod2pi(w*x)+s.phase[i])
	}
	return v
}

// mod2pi reduces x to [-π, π).
func mod2pi(x float64) float64 {
	return x - 2*math.Pi*math.Floor(0.5*x/math.Pi+0.5)
}

var solarFrequencies = []float64{
	2 * math.Pi, 6.282886, 12.565772, 0.337563, 83.99505, 77.712164, 5.7533, 3.9301,
}

var solarSeries = [2]series{
	// 1500 < year <= 2500
	{
		poly: [4]float64{-10.6111079510509, 365.2421925947405, -3.888654930760874e-08, -5.434707919089998e-12},
		freq: solarFrequencies,
		amp: []float64{
			0.1633918030382493, 1.95409759473169, 0.01184405584067255, 0.004842563463555804,
			0.0004137082581449113, 0.001732513547029885, 0.002025850272284684, 0.001363226024948773,
		},
		phase: []float64{
			-1.767045717746641, 2.832417615687159, -0.465176623256009, 0.9461667782644696,
			2.713020913181211, -0.2031148059020781, 0.9980808019332812, -1.832536089597202,
		},
	},
	// year > 2500
	{
		poly: [4]float64{-10.60617210417765, 365.2421759265393, -2.701502510496315e-08, 2.303900971263569e-12},
		freq: solarFrequencies,
		amp: []float64{
			0.1736157870707964, 1.914572713893651, 0.0113716862045686, 0.004885711219368455,
			0.0004032584498264633, 0.001736052092601642, 0.002035081600709588, 0.001360448706185977,
		},
		phase: []float64{
			-2.012792258215681, 2.824063083728992, -0.4826844382278376, 0.9488391363261893,
			2.646697770061209, -0.2675341497460084, 0.9646288791219602, -1.808852094435626,
		},
	},
}

var lunarFrequencies = []float64{
	2 * math.Pi, 6.733776, 13.467552, 0.507989, 0.0273143, 0.507984, 20.201328, 6.225791,
	7.24176, 5.32461, 12.058386, 0.901181, 5.832595, 12.56637061435917, 19.300146, 11.665189,
	18.398965, 6.791174, 13.636974, 1.015968, 6.903198, 13.07437, 1.070354, 6.340578614359172,
}

var lunarSeries = [2]series{
	// 1500 < year <= 2500
	{
		poly: [4]float64{5.097475813506625, 29.53058886049267, 1.095399949433705e-10, -6.926279905270773e-16},
		freq: lunarFrequencies,
		amp: []float64{
			0.003064332812182054, 0.8973816160666801, 0.03119866094731004, 0.07068988004978655,
			0.0001583070735157395, 0.1762683983928151, 0.0004131592685474231, 0.005950873973350208,
			0.008489324571543966, 0.00334306526160656, 0.00052946042568393, 0.003743585488835091,
			0.2156913373736315, 44576.30467073629, 0.1050203948601217, 0.01883710371633125,
			0.380047745859265, 0.0003472930592917774, 0.009225665415301823, 0.002061407071938891,
			0.001454599562245767, 5.856419090840883e-05, 0.0007688706809666596, 0.001415547168551922,
		},
		phase: []float64{
			-0.0003231124735555465, 0.380955331199635, 0.762645225819612, 1.4676293538949,
			-2.15595770830073, -0.3633370464549665, 1.134950591549256, -2.808169363709888,
			0.422381840383887, -0.4226859182049138, -3.091797336860658, 0.7563140142610324,
			-0.3787677293480213, 1.863828515720658e-10, 0.3794794147818532, -0.7671105159156101,
			-0.3850942687637987, -3.098506117162865, -0.6738173539748421, 0.09011906278589261,
			2.089832317302934, 2.160228985413543, -0.6734226930504117, -0.3333652792566645,
		},
	},
	// year > 2500
	{
		poly: [4]float64{5.093879710922470, 29.53058981687484, 2.670339910922144e-11, 1.807808217274283e-15},
		freq: lunarFrequencies,
		amp: []float64{
			0.00306380948959271, 6.08567588841838, 0.3023856209133756, 0.07481389897992345,
			0.0001587661348338354, 0.1740759063081489, 0.0004131985233772993, 0.005796584475300004,
			0.008268929076163079, 0.003256244384807976, 0.000520983165608148, 0.003742624708965854,
			1.709506053530008, 28216.70389751519, 1.598844831045378, 0.314745599206173,
			6.602993931108911, 0.0003387269181720862, 0.009226112317341887, 0.00196073145843697,
			0.001457643607929487, 6.467401779992282e-05, 0.0007716739483064076, 0.001378880922256705,
		},
		phase: []float64{
			-0.0001879456766404132, -2.745704167588171, -2.348884895288619, 1.420037528559222,
			-2.393586904955103, -0.3914194006325855, 1.183088056748942, -2.782692143601458,
			0.4430565056744425, -0.4357413971405519, -3.081209195003025, 0.7945051912707899,
			-0.4010911170136437, 3.003035462639878e-10, 0.4040070684461441, 2.351831380989509,
			2.748612213507844, 3.133002890683667, -0.6902922380876192, 0.09563473131477442,
			2.056490394534053, 2.017507533465959, 2.394015964756036, -0.3466427504049927,
		},
	},
}

func band(year int) int {
	if year > 2500 {
		return 1
	}
	return 0
}
