// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gdm corrects vibrating-element gas density meter readings.
// The raw time period is converted to an uncorrected density, then
// corrected for the temperature and speed-of-sound differences between
// the process gas and the calibration gas. The equations follow the
// Micro Motion GDM and 7812 manuals.
package gdm

import (
	"math"

	"github.com/equinor/pvtlib/eos"
)

// MWAir is the reference molar mass of air [g/mol]
const MWAir = 28.96469

// SOSConstant is the speed-of-sound sensor constant of the Micro
// Motion 7812 and GDM transducers
const SOSConstant = 2.1e4

// UncorrectedDensity converts the instrument time period tau [µs] to
// the uncorrected density [kg/m³] with the K0, K1, K2 calibration
// constants
func UncorrectedDensity(tau, K0, K1, K2 float64) float64 {
	return K0 + K1*tau + K2*tau*tau
}

// TemperatureCorrected corrects the uncorrected density for the
// difference between the meter temperature T and the calibration
// temperature Tcal [°C] with the K18, K19 constants
func TemperatureCorrected(Du, K18, K19, T, Tcal float64) float64 {
	return Du*(1.0+K18*(T-Tcal)) + K19*(T-Tcal)
}

// SpecificGravity is the gas molar mass over the molar mass of air
func SpecificGravity(MWGas, MWAirRef float64) float64 {
	if MWAirRef == 0 {
		MWAirRef = MWAir
	}
	return MWGas / MWAirRef
}

// GRatio is specific gravity over Cp/Cv, evaluated at base conditions,
// used by the user-gas-equation VOS correction
func GRatio(SG, CpCv float64) float64 {
	return SG / CpCv
}

// VOSCorrected applies the simplified user-gas-equation speed-of-sound
// correction with the K3, K4 constants. t is the meter temperature
// [°C]; a zero A selects the manual's value of 0.00236.
func VOSCorrected(DT, K3, K4, G, t, A float64) float64 {
	if A == 0 {
		A = 0.00236
	}
	return DT * (1.0 + K3/(DT+K4)*(A-G/(t+273.0)))
}

// SOSCorrected applies the full speed-of-sound correction (Stansfeld)
// from the calibration-gas and process-gas speeds of sound [m/s] at
// the meter. A zero K selects the sensor constant 2.1e4. A zero time
// period or speed of sound gives NaN.
func SOSCorrected(rho, tau, cCal, cGas, K float64) float64 {
	if tau == 0 || cCal == 0 || cGas == 0 {
		return math.NaN()
	}
	if K == 0 {
		K = SOSConstant
	}
	rc := K / (tau * cCal)
	rg := K / (tau * cGas)
	return rho * (1.0 + rc*rc) / (1.0 + rg*rg)
}

// Flow computes the volume flow [l/h] through the meter from the
// differential pressure [mbar], density [kg/m³] and the flow K-factor.
// Negative dP gives a signed reverse flow for troubleshooting.
func Flow(dP, rho, K float64) float64 {
	if dP >= 0 {
		return K * math.Sqrt(dP/rho)
	}
	return -K * math.Sqrt(-dP/rho)
}

// DensityFromSOS computes gas density [kg/m³] from speed of sound
// [m/s], isentropic exponent and pressure [bara]
func DensityFromSOS(SOS, IE, PBara float64) float64 {
	if SOS == 0 {
		return math.NaN()
	}
	return IE * PBara * 1e5 / (SOS * SOS)
}

// SOSFromDensity computes gas speed of sound [m/s] from density
// [kg/m³], isentropic exponent and pressure [bara]
func SOSFromDensity(rho, IE, PBara float64) float64 {
	if rho == 0 {
		return math.NaN()
	}
	return math.Sqrt(IE * PBara * 1e5 / rho)
}

// Calibration holds the constants of a density meter calibration
type Calibration struct {
	K0, K1, K2 float64 // period to density
	K18, K19   float64 // temperature correction
	Tcal       float64 // calibration temperature [°C]
	K          float64 // speed-of-sound sensor constant; 0 means 2.1e4
	Gas        eos.Composition // calibration gas, typically nitrogen
}

// ProcessDensity runs the full correction chain: period to density,
// temperature correction, then the Stansfeld speed-of-sound
// correction. The calibration-gas speed of sound is evaluated by the
// property engine at the uncorrected density and the calibration
// temperature, which is where the chain depends on an EOS rhoT
// evaluation rather than a standalone formula. cProcess is the process
// gas speed of sound at meter conditions [m/s].
func (o Calibration) ProcessDensity(engine *eos.AGA8, tau, T, cProcess float64) (rho float64, err error) {
	du := UncorrectedDensity(tau, o.K0, o.K1, o.K2)
	dt := TemperatureCorrected(du, o.K18, o.K19, T, o.Tcal)
	cal, err := engine.CalcRhoT(o.Gas, du, o.Tcal, "")
	if err != nil {
		return
	}
	return SOSCorrected(dt, tau, cal.W, cProcess, o.K), nil
}
