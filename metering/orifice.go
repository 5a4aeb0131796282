// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metering

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// OrificeExpansibility computes the gas expansibility factor of an
// orifice plate after ISO 5167-2:2022 formula (5). P1 is in bara and
// dP in mbar. kappa or P1 equal to zero gives NaN.
func OrificeExpansibility(P1, dP, beta, kappa float64) float64 {
	if kappa == 0 || P1 == 0 {
		return math.NaN()
	}
	tau := (P1 - dP/1000.0) / P1
	b4 := math.Pow(beta, 4)
	return 1.0 - (0.351+0.256*b4+0.93*b4*b4)*(1.0-math.Pow(tau, 1.0/kappa))
}

// OrificeFlow computes mass and volume flow through an orifice plate
// after ISO 5167-2:2022. dP is in mbar. The discharge coefficient has
// no standard default; zero epsilon selects 1. Degenerate inputs give
// an all-NaN result, or errors with checkInput.
func OrificeFlow(D, d, dP, rho1, C, epsilon float64, checkInput bool) (res FlowResult, err error) {
	if checkInput {
		if D <= 0 {
			return res, chk.Err("pipe diameter must be positive. D=%g is invalid", D)
		}
		if d <= 0 {
			return res, chk.Err("bore diameter must be positive. d=%g is invalid", d)
		}
		if rho1 <= 0 {
			return res, chk.Err("upstream density must be positive. rho1=%g is invalid", rho1)
		}
		if dP < 0 {
			return res, chk.Err("differential pressure cannot be negative. dP=%g is invalid", dP)
		}
		if C <= 0 {
			return res, chk.Err("discharge coefficient must be positive. C=%g is invalid", C)
		}
	} else {
		if D <= 0 || d <= 0 || rho1 <= 0 || dP < 0 || C <= 0 {
			return nanFlow(), nil
		}
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

// OrificeC computes the orifice discharge coefficient with the
// Reader-Harris/Gallagher equation of ISO 5167-2:2022. The tapping
// arrangement is one of "corner", "D", "D/2" or "flange". With
// checkInput false a zero Reynolds number gives NaN; an unknown
// tapping is always a configuration error.
func OrificeC(D, beta, Re float64, tapping string, checkInput bool) (C float64, err error) {
	if checkInput {
		if Re <= 0 {
			return 0, chk.Err("Reynolds number must be positive. Re=%g is invalid", Re)
		}
	} else {
		if Re == 0 {
			return math.NaN(), nil
		}
	}

	Dmm := D * 1000.0
	var L1, L2 float64
	switch strings.ToLower(tapping) {
	case "corner":
		L1, L2 = 0.0, 0.0
	case "d", "d/2":
		L1, L2 = 1.0, 0.47
	case "flange":
		L1, L2 = 25.4/Dmm, 25.4/Dmm
	default:
		return 0, chk.Err("tapping %q is not available; use corner, D, D/2 or flange", tapping)
	}

	M2 := 2.0 * L2 / (1.0 - beta)
	A := math.Pow(19000.0*beta/Re, 0.8)

	// small-bore term of ISO 5167-1:2022, D in millimetres
	additional := 0.0
	if Dmm < 71.12 {
		additional = 0.011 * (0.75 - beta) * (2.8 - Dmm/25.4)
	}

	b4 := math.Pow(beta, 4)
	C = 0.5961 + 0.0261*beta*beta - 0.216*b4*b4 +
		0.000521*math.Pow(1e6*beta/Re, 0.7) +
		(0.0188+0.0063*A)*math.Pow(beta, 3.5)*math.Pow(1e6/Re, 0.3) +
		(0.043+0.080*math.Exp(-10.0*L1)-0.123*math.Exp(-7.0*L1))*(1.0-0.11*A)*b4/(1.0-b4) -
		0.031*(M2-0.8*math.Pow(M2, 1.1))*math.Pow(beta, 1.3) +
		additional
	return
}
