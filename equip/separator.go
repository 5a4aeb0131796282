// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equip

import "math"

// ScrubberKValue computes the Souders-Brown load factor [m/s] of a
// scrubber from the superficial gas velocity [m/s] and the gas and
// liquid densities [kg/m³]. A gas at least as dense as the liquid, or
// a negative gas density, gives NaN.
func ScrubberKValue(usg, rhoGas, rhoLiq float64) float64 {
	if rhoLiq-rhoGas <= 0 || rhoGas < 0 {
		return math.NaN()
	}
	return usg * math.Sqrt(rhoGas/(rhoLiq-rhoGas))
}

// InletMomentum computes the scrubber inlet momentum rho v² [Pa]. For
// a gas-liquid mixture use the mixture density and velocity.
func InletMomentum(u, rho float64) float64 {
	return rho * u * u
}
