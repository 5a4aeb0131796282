// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Mix combines compositions by mass. weights are masses [kg]; negative
// weights subtract. The result is the mixture composition in mole
// percent (non-zero species only) and the total mass [kg].
//
// With checkInput false, invalid inputs (mismatched lengths, unknown
// species, zero composition sums, negative resultant moles, negative
// total mass) yield a NaN-valued composition over the input species
// and a NaN total mass. With checkInput true they are errors.
func (o *AGA8) Mix(comps []Composition, weights []float64, checkInput bool) (mix Composition, totalMass float64, err error) {

	nanResult := func() (Composition, float64, error) {
		bad := make(Composition)
		for _, comp := range comps {
			for name := range comp {
				bad[name] = math.NaN()
			}
		}
		return bad, math.NaN(), nil
	}

	if len(comps) != len(weights) {
		if checkInput {
			return nil, 0, chk.Err("compositions and weights must have the same length: %d != %d", len(comps), len(weights))
		}
		return nanResult()
	}
	if len(comps) == 0 {
		if checkInput {
			return nil, 0, chk.Err("at least one composition must be given")
		}
		return nanResult()
	}

	// normalised composition matrix, one row per input
	n := len(comps)
	X := mat.NewDense(n, NumSpecies, nil)
	for i, comp := range comps {
		x, nerr := normalize(comp)
		if nerr != nil {
			if checkInput {
				return nil, 0, nerr
			}
			return nanResult()
		}
		X.SetRow(i, x)
	}

	// molar flow of each input from its mass and average molar mass
	mw := mat.NewVecDense(NumSpecies, o.model.MolarMasses())
	avgMW := mat.NewVecDense(n, nil)
	avgMW.MulVec(X, mw)
	molarFlow := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		molarFlow.SetVec(i, weights[i]*1000.0/avgMW.AtVec(i))
	}

	// signed per-species mole balance
	moles := mat.NewVecDense(NumSpecies, nil)
	moles.MulVec(X.T(), molarFlow)

	totalMass = floats.Sum(weights)
	for i := 0; i < NumSpecies; i++ {
		if moles.AtVec(i) < 0 {
			if checkInput {
				return nil, 0, chk.Err("mixing removes more %s than is present (%g mol)", Species[i], moles.AtVec(i))
			}
			return nanResult()
		}
	}
	if totalMass < 0 {
		if checkInput {
			return nil, 0, chk.Err("total mass is negative (%g kg)", totalMass)
		}
		return nanResult()
	}

	totalMoles := floats.Sum(moles.RawVector().Data)
	if totalMoles == 0 {
		if checkInput {
			return nil, 0, chk.Err("total moles is zero after mixing")
		}
		return nanResult()
	}

	mix = make(Composition)
	for i := 0; i < NumSpecies; i++ {
		if pct := moles.AtVec(i) / totalMoles * 100.0; pct > 0 {
			mix[Species[i]] = pct
		}
	}
	return
}

// MixStreams combines flowing streams into a resultant composition
// [mol %] and net mass flow [kg/h]. Volumetric flows are converted to
// mass flows with densities from the property engine at each stream's
// own pressure and temperature. Negative flows subtract. Zero or
// negative net flow is not rejected; a negative per-species balance
// (over-subtraction) is flagged as an error, never silently clamped.
func (o *AGA8) MixStreams(streams []Stream) (mix Composition, netMassFlow float64, err error) {
	n := len(streams)
	if n == 0 {
		return nil, 0, chk.Err("at least one stream must be given")
	}
	X := mat.NewDense(n, NumSpecies, nil)
	molarFlow := mat.NewVecDense(n, nil)
	mw := mat.NewVecDense(NumSpecies, o.model.MolarMasses())
	for i, stream := range streams {
		x, nerr := normalize(stream.Composition)
		if nerr != nil {
			return nil, 0, nerr
		}
		m := stream.MassFlowKgh
		if m == 0 && stream.VolFlowM3h != 0 {
			r, perr := o.CalcPT(stream.Composition, stream.PressureBara, stream.TemperatureC, "", "")
			if perr != nil {
				return nil, 0, perr
			}
			m = stream.VolFlowM3h * r.Rho
		}
		X.SetRow(i, x)
		molarFlow.SetVec(i, m*1000.0/mat.Dot(mat.NewVecDense(NumSpecies, x), mw))
		netMassFlow += m
	}

	moles := mat.NewVecDense(NumSpecies, nil)
	moles.MulVec(X.T(), molarFlow)
	for i := 0; i < NumSpecies; i++ {
		if moles.AtVec(i) < 0 {
			return nil, netMassFlow, chk.Err("mixing removes more %s than the streams supply (%g mol/h)", Species[i], moles.AtVec(i))
		}
	}

	mix = make(Composition)
	totalMoles := floats.Sum(moles.RawVector().Data)
	if totalMoles == 0 {
		return
	}
	for i := 0; i < NumSpecies; i++ {
		if pct := moles.AtVec(i) / totalMoles * 100.0; pct > 0 {
			mix[Species[i]] = pct
		}
	}
	return
}
