// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metering

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// VConeBeta computes the beta of a cone meter after ISO 5167-5:2022
// from the pipe diameter at the beta edge and the cone diameter dc.
// Cone meters define beta from the open annulus, not a diameter ratio.
func VConeBeta(D, dc float64) (beta float64, err error) {
	if D <= 0 {
		return 0, chk.Err("pipe diameter must be positive. D=%g is invalid", D)
	}
	return math.Sqrt(1.0 - dc*dc/(D*D)), nil
}

// VConeExpansibility computes the cone-meter expansibility factor
// with the Stewart correlation. P1 is in bara and dP in mbar. The
// correlation was fitted for pressure ratios at or above 0.75.
func VConeExpansibility(beta, P1, dP, kappa float64, checkInput bool) (epsilon float64, err error) {
	if checkInput {
		if P1 <= 0 {
			return 0, chk.Err("upstream pressure must be positive. P1=%g is invalid", P1)
		}
		if dP < 0 {
			return 0, chk.Err("differential pressure cannot be negative. dP=%g is invalid", dP)
		}
	} else {
		if P1 <= 0 || dP < 0 {
			return math.NaN(), nil
		}
	}
	dPPa := dP * 100.0
	P1Pa := P1 * 1e5
	return 1.0 - (0.649+0.696*math.Pow(beta, 4))*dPPa/(kappa*P1Pa), nil
}

// VConeFlow computes mass and volume flow through a cone meter after
// ISO 5167-5:2022. dP is in mbar. Zero C or epsilon select the
// standard defaults (0.82 and 1). The reported velocity is the pipe
// velocity, not a throat velocity.
func VConeFlow(D, beta, dP, rho1, C, epsilon float64, checkInput bool) (res FlowResult, err error) {
	if checkInput {
		if D <= 0 {
			return res, chk.Err("pipe diameter must be positive. D=%g is invalid", D)
		}
		if rho1 <= 0 {
			return res, chk.Err("upstream density must be positive. rho1=%g is invalid", rho1)
		}
		if dP < 0 {
			return res, chk.Err("differential pressure cannot be negative. dP=%g is invalid", dP)
		}
	} else {
		if D <= 0 || rho1 <= 0 || dP < 0 {
			return nanFlow(), nil
		}
	}
	if C == 0 {
		C = VConeC
	}
	if epsilon == 0 {
		epsilon = 1.0
	}
	res.MassFlow = massflowDPMeter(beta, D*beta, dP, rho1, C, epsilon)
	res.VolFlow = res.MassFlow / rho1
	res.Velocity = res.VolFlow / (math.Pi * (D / 2.0) * (D / 2.0) * 3600.0)
	res.C = C
	res.Epsilon = epsilon
	return
}
