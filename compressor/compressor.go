// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compressor evaluates centrifugal compressor performance from
// measured suction and discharge conditions: polytropic exponent, head
// and efficiency, and the dimensionless flow, head and work
// coefficients. Zero pressures or densities are treated as bad
// measurements and give NaN so that batch evaluation of historian data
// does not stop on a dead sensor.
package compressor

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// PolyExponent computes the polytropic exponent from the suction and
// discharge pressures [bara] and densities [kg/m³]
func PolyExponent(pSuction, pDischarge, rhoSuction, rhoDischarge float64) float64 {
	if pSuction == 0 || pDischarge == 0 || rhoSuction == 0 || rhoDischarge == 0 {
		return math.NaN()
	}
	return math.Log(pDischarge/pSuction) / math.Log(rhoDischarge/rhoSuction)
}

// PolyHead computes the polytropic head [kJ/kg] from the polytropic
// exponent and the suction and discharge pressures [bara] and
// densities [kg/m³]
func PolyHead(n, pSuction, pDischarge, rhoSuction, rhoDischarge float64) float64 {
	if rhoSuction == 0 || rhoDischarge == 0 {
		return math.NaN()
	}
	return 100.0 * (n / (n - 1.0)) * (pDischarge/rhoDischarge - pSuction/rhoSuction)
}

// PolyEff computes the polytropic efficiency from the polytropic head
// and the specific enthalpy rise over the stage [kJ/kg]
func PolyEff(head, enthalpyRise float64) float64 {
	if enthalpyRise == 0 {
		return math.NaN()
	}
	return head / enthalpyRise
}

// EnthalpyRise is the specific enthalpy rise over the compressor
// [kJ/kg] from the inlet and discharge specific enthalpies
func EnthalpyRise(h1, h2 float64) float64 {
	return h2 - h1
}

// TipSpeed computes the impeller tangential velocity [m/s] from the
// speed N [rpm] and the impeller outer diameter D [m]
func TipSpeed(N, D float64) float64 {
	return math.Pi * N * D / 60.0
}

// SigmaUSquared is the sum of squared impeller tip speeds [J/kg],
// the reference kinetic energy of a multistage machine
func SigmaUSquared(tipSpeeds []float64) float64 {
	return floats.Dot(tipSpeeds, tipSpeeds)
}

// PolyHeadCoeff computes the dimensionless polytropic head coefficient
// from the head [kJ/kg] and sigma U squared [J/kg]
func PolyHeadCoeff(head, sigmaUSq float64) float64 {
	if sigmaUSq == 0 {
		return math.NaN()
	}
	return 1000.0 * head / sigmaUSq
}

// WorkCoeff computes the dimensionless work coefficient from the
// specific enthalpy rise [kJ/kg] and sigma U squared [J/kg]
func WorkCoeff(enthalpyRise, sigmaUSq float64) float64 {
	if sigmaUSq == 0 {
		return math.NaN()
	}
	return 1000.0 * enthalpyRise / sigmaUSq
}

// FlowCoeff computes the dimensionless flow coefficient from the inlet
// volumetric flow Q [m³/s], the speed N [rpm] and the first impeller
// diameter D [m]. The convention selects the definition: "MAN" uses
// Q/(D²U), "ISO 5389" uses 4Q/(πD²U). An unknown convention is a
// configuration error.
func FlowCoeff(Q, N, D float64, convention string) (phi float64, err error) {
	U := TipSpeed(N, D)
	var den float64
	switch convention {
	case "MAN":
		den = D * D * U
	case "ISO 5389":
		den = math.Pi * D * D * U
		Q = 4.0 * Q
	default:
		return 0, chk.Err("convention must be one of [MAN, ISO 5389], got %q", convention)
	}
	if den == 0 {
		return math.NaN(), nil
	}
	return Q / den, nil
}
