// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equip

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Gravity is the standard acceleration of free fall [m/s²]
const Gravity = 9.80665

// LevelFromDP computes the level [m] of the lower (denser) fluid in a
// vessel from a differential pressure measurement. dP [mbar] is taken
// positive with the higher pressure at the lower tapping, rho1 and
// rho2 [kg/m³] are the upper and lower fluid densities and h [m] the
// tapping span. Negative dP or h, or rho1 >= rho2, is rejected per the
// checkInput policy.
func LevelFromDP(dP, rho1, rho2, h float64, checkInput bool) (h2 float64, err error) {
	bad := func(msg string, args ...interface{}) (float64, error) {
		if checkInput {
			return 0, chk.Err(msg, args...)
		}
		return math.NaN(), nil
	}
	if dP < 0 {
		return bad("dP must be positive; got %g mbar", dP)
	}
	if h < 0 {
		return bad("tapping span must be positive; got %g m", h)
	}
	if rho1 >= rho2 {
		return bad("upper fluid density %g must be less than lower fluid density %g", rho1, rho2)
	}
	return (dP*100.0 - rho1*Gravity*h) / (Gravity * (rho2 - rho1)), nil
}

// StaticPressure computes the pressure of a static fluid column of
// density rho [kg/m³] and height h [m] in the requested unit (Pa,
// mbar, bar or bara). An unknown unit is a configuration error.
func StaticPressure(rho, h float64, unit string) (p float64, err error) {
	pPa := rho * Gravity * h
	switch strings.ToLower(unit) {
	case "pa":
		return pPa, nil
	case "mbar":
		return pPa / 100.0, nil
	case "bar", "bara":
		return pPa / 100000.0, nil
	}
	return 0, chk.Err("pressure unit must be Pa, mbar, bar or bara; got %q", unit)
}
