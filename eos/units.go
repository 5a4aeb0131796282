// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Atm is the standard atmosphere [kPa]
const Atm = 101.325

// CelsiusOffset converts between Celsius and Kelvin
const CelsiusOffset = 273.15

// PressureToKPa converts a pressure to kPa. Accepted units are
// bara, barg, Pa, kPa, MPa, psi, psia and psig (case insensitive).
func PressureToKPa(p float64, unit string) (pkpa float64, err error) {
	switch strings.ToLower(unit) {
	case "bara":
		return p * 100.0, nil
	case "barg":
		return p*100.0 + Atm, nil
	case "pa":
		return p / 1000.0, nil
	case "kpa":
		return p, nil
	case "mpa":
		return p * 1000.0, nil
	case "psi", "psia":
		return p * 6.894757293168362, nil
	case "psig":
		return p*6.894757293168362 + Atm, nil
	}
	return 0, chk.Err("pressure unit %q is not available", unit)
}

// KPaToPressure converts a pressure in kPa to the given unit
func KPaToPressure(pkpa float64, unit string) (p float64, err error) {
	switch strings.ToLower(unit) {
	case "bara":
		return pkpa / 100.0, nil
	case "barg":
		return (pkpa - Atm) / 100.0, nil
	case "pa":
		return pkpa * 1000.0, nil
	case "kpa":
		return pkpa, nil
	case "mpa":
		return pkpa / 1000.0, nil
	case "psi", "psia":
		return pkpa / 6.894757293168362, nil
	case "psig":
		return (pkpa - Atm) / 6.894757293168362, nil
	}
	return 0, chk.Err("pressure unit %q is not available", unit)
}

// TemperatureToK converts a temperature to Kelvin. Accepted units are
// C, F and K (case insensitive).
func TemperatureToK(t float64, unit string) (tk float64, err error) {
	switch strings.ToUpper(unit) {
	case "C":
		return t + CelsiusOffset, nil
	case "F":
		return (t-32.0)*5.0/9.0 + CelsiusOffset, nil
	case "K":
		return t, nil
	}
	return 0, chk.Err("temperature unit %q is not available", unit)
}

// KToTemperature converts a temperature in Kelvin to the given unit
func KToTemperature(tk float64, unit string) (t float64, err error) {
	switch strings.ToUpper(unit) {
	case "C":
		return tk - CelsiusOffset, nil
	case "F":
		return (tk-CelsiusOffset)*9.0/5.0 + 32.0, nil
	case "K":
		return tk, nil
	}
	return 0, chk.Err("temperature unit %q is not available", unit)
}
