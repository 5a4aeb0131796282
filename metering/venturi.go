// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metering implements differential-pressure flow metering
// after ISO 5167: Venturi tubes, orifice plates and cone meters, plus
// the wet-gas overread corrections of ISO/TR 11583. Differential
// pressures are in mbar and upstream pressures in bara, matching the
// instrument conventions the package is used with.
package metering

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/equinor/pvtlib/eos"
)

// default discharge coefficients of ISO 5167 (2022 edition)
const (
	VenturiC = 0.984 // as-cast convergent section Venturi
	VConeC   = 0.82  // uncalibrated cone meter
)

// FlowResult is the outcome of a DP-meter flow calculation
type FlowResult struct {
	MassFlow float64 // [kg/h]
	VolFlow  float64 // [m³/h]
	Velocity float64 // [m/s]
	C        float64 // discharge coefficient used
	Epsilon  float64 // expansibility used
}

// nanFlow returns an all-NaN result for bad measurement inputs
func nanFlow() FlowResult {
	nan := math.NaN()
	return FlowResult{nan, nan, nan, nan, nan}
}

// Beta computes the diameter ratio d/D of a Venturi or orifice meter.
// The pipe diameter must be positive.
func Beta(D, d float64) (beta float64, err error) {
	if D <= 0 {
		return 0, chk.Err("pipe diameter must be positive. D=%g is invalid", D)
	}
	return d / D, nil
}

// massflowDPMeter evaluates formula (1) of ISO 5167 parts 2 and 4.
// dP is in mbar; the result is in kg/h.
func massflowDPMeter(beta, d, dP, rho1, C, epsilon float64) float64 {
	dPPa := dP * 100.0
	return C / math.Sqrt(1.0-math.Pow(beta, 4)) * epsilon * (math.Pi / 4.0) * d * d * math.Sqrt(2.0*dPPa*rho1) * 3600.0
}

// VenturiExpansibility computes the gas expansibility factor of a
// Venturi tube after ISO 5167-4:2022. P1 is in bara and dP in mbar.
// kappa equal to one or a non-positive upstream pressure gives NaN.
func VenturiExpansibility(P1, dP, beta, kappa float64) float64 {
	if kappa == 1 || P1 <= 0 {
		return math.NaN()
	}
	tau := (P1 - dP/1000.0) / P1
	t2k := math.Pow(tau, 2.0/kappa)
	b4 := math.Pow(beta, 4)
	return math.Sqrt(kappa * t2k / (kappa - 1.0) * (1.0 - b4) / (1.0 - b4*t2k) * (1.0 - math.Pow(tau, (kappa-1.0)/kappa)) / (1.0 - tau))
}

// VenturiFlow computes mass and volume flow through a Venturi tube
// after ISO 5167-4:2022. dP is in mbar. Zero C or epsilon select the
// standard defaults (0.984 and 1). With checkInput false, degenerate
// geometry, density or a negative dP give an all-NaN result; with
// checkInput true they are errors.
func VenturiFlow(D, d, dP, rho1, C, epsilon float64, checkInput bool) (res FlowResult, err error) {
	if checkInput {
		if D <= 0 {
			return res, chk.Err("pipe diameter must be positive. D=%g is invalid", D)
		}
		if d <= 0 {
			return res, chk.Err("throat diameter must be positive. d=%g is invalid", d)
		}
		if rho1 <= 0 {
			return res, chk.Err("upstream density must be positive. rho1=%g is invalid", rho1)
		}
		if dP < 0 {
			return res, chk.Err("differential pressure cannot be negative. dP=%g is invalid", dP)
		}
	} else {
		if D <= 0 || d <= 0 || rho1 <= 0 || dP < 0 {
			return nanFlow(), nil
		}
	}
	if C == 0 {
		C = VenturiC
	}
	if epsilon == 0 {
		epsilon = 1.0
	}
	beta := d / D
	res.MassFlow = massflowDPMeter(beta, d, dP, rho1, C, epsilon)
	res.VolFlow = res.MassFlow / rho1
	res.Velocity = res.VolFlow / (math.Pi * (d / 2.0) * (d / 2.0) * 3600.0)
	res.C = C
	res.Epsilon = epsilon
	return
}

// VenturiFlowFromState computes Venturi flow with density and
// isentropic exponent evaluated by the property engine at the
// upstream pressure [bara] and temperature [°C]. The expansibility is
// a single closed-form evaluation; any iteration lives inside the
// property engine.
func VenturiFlowFromState(engine *eos.AGA8, comp eos.Composition, D, d, dP, P1Bara, T1C, C float64, checkInput bool) (res FlowResult, err error) {
	props, err := engine.CalcPT(comp, P1Bara, T1C, "", "")
	if err != nil {
		return
	}
	beta, err := Beta(D, d)
	if err != nil {
		return
	}
	epsilon := VenturiExpansibility(P1Bara, dP, beta, props.Kappa)
	return VenturiFlow(D, d, dP, props.Rho, C, epsilon, checkInput)
}
