// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fluidmech holds pipe flow relations used around the metering
// station: superficial velocities, no-slip liquid holdup, the NFOGM
// critical velocities for a uniform water-in-oil dispersion, and the
// Lee et al. natural gas viscosity correlation.
package fluidmech

import "math"

// SuperficialVelocity computes the superficial velocity [m/s] of a
// phase from its volume flow [m³/h] and the inner pipe diameter [m].
// A zero diameter gives NaN.
func SuperficialVelocity(Q, D float64) float64 {
	A := math.Pi * D * D / 4.0
	if A == 0 {
		return math.NaN()
	}
	return Q / 3600.0 / A
}

// LiquidHoldup computes the no-slip liquid holdup fraction from a
// measured mix density and the pure phase densities [kg/m³]. Readings
// outside the phase envelope clip to 0 or 1.
func LiquidHoldup(rhoMix, rhoLiq, rhoGas float64) float64 {
	if rhoMix > rhoLiq {
		return 1.0
	}
	if rhoMix < rhoGas {
		return 0.0
	}
	if rhoLiq == rhoGas {
		return math.NaN()
	}
	return (rhoMix - rhoGas) / (rhoLiq - rhoGas)
}

// CriticalVelocityHorizontal computes the minimum velocity [m/s] that
// keeps water uniformly dispersed in oil in a horizontal pipe, from
// the NFOGM Handbook of Water Fraction Metering, chapter 5.1. st is
// the oil-water interfacial tension [N/m], rhoO and rhoAq the oil and
// water densities [kg/m³], viscO the oil viscosity [Pa·s] and D the
// inner diameter [m]. Zero K1 and G select the SI constant 2.02 and
// the ISO 3171 dispersion degree 10.
func CriticalVelocityHorizontal(st, rhoO, rhoAq, viscO, D, K1, G float64) float64 {
	if K1 == 0 {
		K1 = 2.02
	}
	if G == 0 {
		G = 10.0
	}
	if rhoO == 0 || viscO == 0 {
		return math.NaN()
	}
	return K1 * math.Pow(G, 0.325) * math.Pow(st, 0.39) *
		math.Pow(rhoAq-rhoO, 0.325) / math.Pow(rhoO, 0.283) *
		math.Pow(D, 0.366) / math.Pow(viscO, 0.431)
}

// CriticalVelocityVertical computes the minimum velocity [m/s] that
// keeps a water-in-oil flow homogeneous in a vertical or inclined
// pipe, from the same NFOGM handbook chapter. beta is the water
// fraction [vol%]. A zero K2 selects the SI constant 2910.
func CriticalVelocityVertical(beta, st, rhoO, rhoAq, viscO, D, K2 float64) float64 {
	if K2 == 0 {
		K2 = 2910.0
	}
	if rhoO == 0 || viscO == 0 || beta == 100 || beta < 0 {
		return math.NaN()
	}
	return K2 * math.Pow(beta, 0.556) / math.Pow(100.0-beta, 1.556) *
		math.Pow(st, 0.278) *
		math.Pow(rhoAq-rhoO, 0.278) / math.Pow(rhoO, 0.444) *
		math.Pow(D/viscO, 0.111)
}

// GasViscosityLee computes the natural gas viscosity [cP] with the
// Lee, Gonzalez and Eakin correlation from the temperature T [°C], the
// molar mass M [g/mol] and the density rho [kg/m³]. Zero temperature
// span or density gives NaN.
func GasViscosityLee(T, M, rho float64) float64 {
	tR := (T + 273.15) * 1.8 // Rankine
	if tR <= 0 || rho <= 0 {
		return math.NaN()
	}
	K := (9.4 + 0.02*M) * math.Pow(tR, 1.5) / (209.0 + 19.0*M + tR)
	X := 3.5 + 986.0/tR + 0.01*M
	Y := 2.4 - 0.2*X
	rhoCgs := rho / 1000.0 // g/cm³
	return 1e-4 * K * math.Exp(X*math.Pow(rhoCgs, Y))
}
