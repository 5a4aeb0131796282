// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metering

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// gravity of the Froude correlations [m/s²]
const froudeG = 9.81

// WetGasResult is the outcome of a wet-gas Venturi correction
type WetGasResult struct {
	MassFlowGasInitial   float64 // uncorrected gas mass flow, C=1 [kg/h]
	MassFlowGasCorrected float64 // corrected gas mass flow [kg/h]
	MassFlowLiq          float64 // liquid mass flow [kg/h]
	MassFlowTot          float64 // total mass flow [kg/h]
	OverRead             float64 // overread ratio phi [-]
	CWet                 float64 // wet-gas discharge coefficient [-]
	LockhartMartinelli   float64 // Lockhart-Martinelli parameter X [-]
	FrGas                float64 // gas densiometric Froude number [-]
	FrGasTh              float64 // throat Froude number [-]
	N                    float64 // Chisholm exponent [-]
	CCh                  float64 // Chisholm coefficient [-]
	Epsilon              float64 // expansibility [-]
	Iterations           int
}

// nanWetGas returns an all-NaN result for bad measurement inputs
func nanWetGas() (r WetGasResult) {
	nan := math.NaN()
	r = WetGasResult{nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, 0}
	return
}

// GasFroude computes the gas densiometric Froude number from the gas
// mass flow [kg/s], pipe diameter [m] and phase densities [kg/m³].
// Degenerate inputs give NaN.
func GasFroude(massflowGas, D, rhoG, rhoL float64) float64 {
	if D <= 0 || rhoG <= 0 || rhoL <= 0 || massflowGas < 0 || rhoL-rhoG <= 0 {
		return math.NaN()
	}
	usg := massflowGas / (rhoG * math.Pi / 4.0 * D * D)
	return usg / math.Sqrt(froudeG*D) * math.Sqrt(rhoG/(rhoL-rhoG))
}

// LockhartMartinelliGMF computes the Lockhart-Martinelli parameter
// from the gas mass fraction and the phase densities
func LockhartMartinelliGMF(gmf, rhoG, rhoL float64) float64 {
	return (1.0 - gmf) / gmf * math.Sqrt(rhoG/rhoL)
}

// GMFFromGVF converts a gas volume fraction to a gas mass fraction at
// the given phase densities
func GMFFromGVF(gvf, rhoG, rhoL float64) float64 {
	return gvf * rhoG / (gvf*rhoG + (1.0-gvf)*rhoL)
}

// WetGasC computes the wet-gas Venturi discharge coefficient of the
// Reader-Harris/Graham correlation (ISO/TR 11583) from the throat
// Froude number and the Lockhart-Martinelli parameter. Negative
// inputs give NaN.
func WetGasC(frGasTh, X float64) float64 {
	if frGasTh < 0 || X < 0 {
		return math.NaN()
	}
	return 1.0 - 0.0463*math.Exp(-0.05*frGasTh)*math.Min(1.0, math.Sqrt(X/0.016))
}

// chisholmN computes the Chisholm exponent. H is the liquid parameter
// of ISO/TR 11583: 1 for hydrocarbon liquid, 1.35 for water.
func chisholmN(beta, frGas, H float64) float64 {
	n := 0.583 - 0.18*beta*beta - 0.578*math.Exp(-0.8*frGas/H)
	return math.Max(n, 0.392-0.18*beta*beta)
}

// chisholmC computes the Chisholm coefficient from the density ratio
func chisholmC(rhoG, rhoL, n float64) float64 {
	return math.Pow(rhoL/rhoG, n) + math.Pow(rhoG/rhoL, n)
}

// overreadRatio is phi = sqrt(1 + C·X + X²)
func overreadRatio(cCh, X float64) float64 {
	return math.Sqrt(1.0 + cCh*X + X*X)
}

// WetGasVenturiInput holds the inputs of the wet-gas Venturi
// correction. Exactly one of GMF and GVF must be set in (0,1]. A zero
// H selects the hydrocarbon-liquid value of 1; use 1.35 for water.
type WetGasVenturiInput struct {
	D     float64 // pipe diameter [m]
	Dt    float64 // throat diameter [m]
	P1    float64 // upstream pressure [bara]
	DP    float64 // differential pressure [mbar]
	RhoG  float64 // gas density [kg/m³]
	RhoL  float64 // liquid density [kg/m³]
	GMF   float64 // gas mass fraction (0,1]
	GVF   float64 // gas volume fraction (0,1]
	Kappa float64 // isentropic exponent [-]
	H     float64 // liquid parameter [-]
}

// WetGasVenturi corrects a Venturi gas flow for liquid carry-over with
// the Reader-Harris/Graham correlation of ISO/TR 11583. The gas flow
// and Froude number are iterated to a fixed point with a hard cap.
// The correlation was validated for X below about 0.3; larger values
// are still computed as an extrapolation. Bad measurement inputs give
// an all-NaN result, or errors with checkInput.
func WetGasVenturi(in WetGasVenturiInput, checkInput bool) (res WetGasResult, err error) {

	bad := func(msg string, v float64) (WetGasResult, error) {
		if checkInput {
			return res, chk.Err(msg, v)
		}
		return nanWetGas(), nil
	}

	switch {
	case in.D <= 0:
		return bad("pipe diameter must be positive. D=%g is invalid", in.D)
	case in.Dt <= 0:
		return bad("throat diameter must be positive. Dt=%g is invalid", in.Dt)
	case in.Dt >= in.D:
		return bad("throat diameter must be smaller than the pipe diameter. Dt=%g is invalid", in.Dt)
	case in.P1 <= 0:
		return bad("upstream pressure must be positive. P1=%g is invalid", in.P1)
	case in.DP < 0:
		return bad("differential pressure cannot be negative. dP=%g is invalid", in.DP)
	case in.RhoG <= 0:
		return bad("gas density must be positive. rhoG=%g is invalid", in.RhoG)
	case in.RhoL <= 0:
		return bad("liquid density must be positive. rhoL=%g is invalid", in.RhoL)
	}

	gmf := in.GMF
	if gmf == 0 && in.GVF > 0 && in.GVF <= 1 {
		gmf = GMFFromGVF(in.GVF, in.RhoG, in.RhoL)
	}
	if gmf <= 0 || gmf > 1 {
		return bad("gas mass fraction must lie in (0,1]. GMF=%g is invalid", gmf)
	}
	H := in.H
	if H == 0 {
		H = 1.0
	}

	beta := in.Dt / in.D
	res.Epsilon = VenturiExpansibility(in.P1, in.DP, beta, in.Kappa)
	res.MassFlowGasInitial = massflowDPMeter(beta, in.Dt, in.DP, in.RhoG, 1.0, res.Epsilon)
	res.LockhartMartinelli = LockhartMartinelliGMF(gmf, in.RhoG, in.RhoL)

	// fixed-point iteration on the gas Froude number
	massGas := res.MassFlowGasInitial
	frPrev := math.Inf(1)
	for res.Iterations = 1; res.Iterations <= 50; res.Iterations++ {
		res.FrGas = GasFroude(massGas/3600.0, in.D, in.RhoG, in.RhoL)
		res.FrGasTh = res.FrGas / math.Pow(beta, 2.5)
		res.N = chisholmN(beta, res.FrGas, H)
		res.CCh = chisholmC(in.RhoG, in.RhoL, res.N)
		res.OverRead = overreadRatio(res.CCh, res.LockhartMartinelli)
		res.CWet = WetGasC(res.FrGasTh, res.LockhartMartinelli)
		massGas = res.MassFlowGasInitial * res.CWet / res.OverRead
		if math.Abs(res.FrGas-frPrev) < 1e-8 {
			break
		}
		frPrev = res.FrGas
	}

	res.MassFlowGasCorrected = massGas
	res.MassFlowLiq = massGas * (1.0 - gmf) / gmf
	res.MassFlowTot = massGas / gmf
	return
}

// OverreadResult is the outcome of the standalone overread correction
type OverreadResult struct {
	LockhartMartinelli float64 // X [-]
	OverRead           float64 // phi [-]
	CorrectedGasFlow   float64 // apparent flow divided by phi [kg/h]
}

// Overread corrects an apparent gas mass flow for liquid carry-over
// given independently measured liquid flow. X is formed from the flow
// ratio; the overread ratio uses the Chisholm coefficient at the gas
// Froude number of the apparent flow. Flows are in kg/h.
func Overread(gasFlowApparent, liquidFlow, rhoG, rhoL, D, beta, H float64) (res OverreadResult) {
	if gasFlowApparent <= 0 || liquidFlow < 0 || rhoG <= 0 || rhoL <= 0 {
		nan := math.NaN()
		return OverreadResult{nan, nan, nan}
	}
	if H == 0 {
		H = 1.0
	}
	res.LockhartMartinelli = liquidFlow / gasFlowApparent * math.Sqrt(rhoG/rhoL)
	fr := GasFroude(gasFlowApparent/3600.0, D, rhoG, rhoL)
	n := chisholmN(beta, fr, H)
	res.OverRead = overreadRatio(chisholmC(rhoG, rhoL, n), res.LockhartMartinelli)
	res.CorrectedGasFlow = gasFlowApparent / res.OverRead
	return
}
