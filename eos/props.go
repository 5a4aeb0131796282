// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Props holds the complete single-phase property set of a gas mixture
type Props struct {
	P         float64 // pressure [kPa]
	T         float64 // temperature [K]
	Z         float64 // compressibility factor [-]
	D         float64 // molar density [mol/l]
	Rho       float64 // mass density [kg/m³]
	MolarMass float64 // molar mass [g/mol]
	H         float64 // molar enthalpy [J/mol]
	U         float64 // molar internal energy [J/mol]
	S         float64 // molar entropy [J/(mol·K)]
	G         float64 // molar Gibbs energy [J/mol]
	A         float64 // molar Helmholtz energy [J/mol]
	Cp        float64 // isobaric heat capacity [J/(mol·K)]
	Cv        float64 // isochoric heat capacity [J/(mol·K)]
	W         float64 // speed of sound [m/s]
	Kappa     float64 // isentropic exponent [-]
	JT        float64 // Joule-Thomson coefficient [K/kPa]

	PressureBara   float64     // pressure [bara]
	TemperatureC   float64     // temperature [°C]
	GasComposition Composition // normalised composition [mol %]
}

// nanProps returns a record with every numeric field set to NaN. Bad
// measurement inputs flow through as NaN rather than stopping a batch.
func nanProps() (r Props) {
	nan := math.NaN()
	r = Props{
		P: nan, T: nan, Z: nan, D: nan, Rho: nan, MolarMass: nan,
		H: nan, U: nan, S: nan, G: nan, A: nan,
		Cp: nan, Cv: nan, W: nan, Kappa: nan, JT: nan,
		PressureBara: nan, TemperatureC: nan,
	}
	return
}

// StateKind selects which pair of variables defines a State
type StateKind int

// state kinds
const (
	StatePT   StateKind = iota // pressure and temperature
	StateRhoT                  // mass density and temperature
	StatePH                    // pressure and enthalpy
	StatePS                    // pressure and entropy
)

// State is a tagged pair of defining variables for Calc
type State struct {
	Kind StateKind
	P    float64 // pressure [bara] (PT, PH, PS)
	T    float64 // temperature [°C] (PT, RhoT)
	Rho  float64 // mass density [kg/m³] (RhoT)
	H    float64 // molar enthalpy [J/mol] (PH)
	S    float64 // molar entropy [J/(mol·K)] (PS)
}

// Stream is a flowing gas with its own composition. Negative flow
// rates denote outgoing streams in a mass balance.
type Stream struct {
	Composition  Composition
	PressureBara float64
	TemperatureC float64
	MassFlowKgh  float64 // mass flow [kg/h]; used when VolFlow is zero
	VolFlowM3h   float64 // volume flow at P,T [m³/h]
}

// FlashError reports that an inverse flash calculation did not
// converge. It is distinct from configuration errors so callers can
// tell a hard solver failure from a bad input.
type FlashError struct {
	Spec   string  // "PH" or "PS"
	P      float64 // pressure [kPa]
	Target float64 // target enthalpy or entropy
	Reason string
}

// Error returns the message
func (o *FlashError) Error() string {
	return io.Sf("%s flash did not converge at P=%g kPa, target=%g: %s", o.Spec, o.P, o.Target, o.Reason)
}
