// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metering

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_orifice01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orifice01. expansibility against ISO 5167-2 table A.12")

	cases := []struct {
		P1, dP, beta, kappa, expected float64
	}{
		{50, 12500, 0.1, 1.2, 0.9252},
		{50, 12500, 0.75, 1.2, 0.8881},
		{50, 1000, 0.1, 1.2, 0.9941},
		{50, 1000, 0.75, 1.2, 0.9912},
	}
	for i, c := range cases {
		epsilon := OrificeExpansibility(c.P1, c.dP, c.beta, c.kappa)
		chk.Float64(tst, io.Sf("case %d: epsilon", i+1), 6e-5, epsilon, c.expected)
	}

	if !math.IsNaN(OrificeExpansibility(0, 500, 0.6, 1.3)) {
		tst.Errorf("zero upstream pressure must give NaN\n")
	}
	if !math.IsNaN(OrificeExpansibility(50, 500, 0.6, 0)) {
		tst.Errorf("zero kappa must give NaN\n")
	}
}

func Test_orifice02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orifice02. Reader-Harris/Gallagher discharge coefficient")

	cases := []struct {
		D, beta, Re float64
		tapping     string
		expected    float64
	}{
		{0.1, 0.1, 5000, "corner", 0.6006},
		{0.1, 0.1, 100000000, "corner", 0.5964},
		{0.1, 0.5, 5000, "corner", 0.6276},
		{0.1, 0.5, 100000000, "corner", 0.6022},
		{0.072, 0.1, 5000, "D", 0.6003},
		{0.072, 0.1, 100000000, "D", 0.5961},
		{0.072, 0.5, 5000, "D", 0.6264},
		{0.072, 0.5, 100000000, "D", 0.6016},
		{0.072, 0.1, 5000, "D/2", 0.6003},
		{0.072, 0.5, 100000000, "D/2", 0.6016},
		{1, 0.1, 100000, "flange", 0.5969},
		{1, 0.1, 100000000, "flange", 0.5963},
		{1, 0.75, 100000, "flange", 0.6055},
		{1, 0.75, 100000000, "flange", 0.5905},
	}
	for i, c := range cases {
		C, err := OrificeC(c.D, c.beta, c.Re, c.tapping, false)
		if err != nil {
			tst.Errorf("OrificeC failed: %v\n", err)
			return
		}
		if chk.Verbose {
			io.Pf("case %2d: C = %.5f (%.4f)\n", i+1, C, c.expected)
		}
		chk.Float64(tst, io.Sf("case %d: C", i+1), 5e-4, C, c.expected)
	}

	// unknown tapping is a configuration error
	if _, err := OrificeC(0.1, 0.5, 1e6, "vena contracta", false); err == nil {
		tst.Errorf("unknown tapping must be an error\n")
	}

	// zero Reynolds number is a bad measurement
	C, err := OrificeC(0.1, 0.5, 0, "corner", false)
	if err != nil || !math.IsNaN(C) {
		tst.Errorf("zero Re must give NaN without checkInput\n")
	}
	if _, err = OrificeC(0.1, 0.5, 0, "corner", true); err == nil {
		tst.Errorf("zero Re with checkInput must be an error\n")
	}
}

func Test_orifice03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orifice03. orifice flow")

	// orifice and Venturi share the ISO 5167 formula (1); with the
	// same C and epsilon they must agree
	v, _ := VenturiFlow(0.1, 0.05, 250, 45.0, 0.6, 0.99, false)
	o, err := OrificeFlow(0.1, 0.05, 250, 45.0, 0.6, 0.99, false)
	if err != nil {
		tst.Errorf("OrificeFlow failed: %v\n", err)
		return
	}
	chk.Float64(tst, "massflow", 1e-12, o.MassFlow, v.MassFlow)
	chk.Float64(tst, "volflow", 1e-12, o.VolFlow, v.VolFlow)

	// an orifice has no default discharge coefficient
	res, err := OrificeFlow(0.1, 0.05, 250, 45.0, 0, 0.99, false)
	if err != nil || !math.IsNaN(res.MassFlow) {
		tst.Errorf("missing C must give NaN without checkInput\n")
	}
	if _, err = OrificeFlow(0.1, 0.05, 250, 45.0, 0, 0.99, true); err == nil {
		tst.Errorf("missing C with checkInput must be an error\n")
	}

	// negative dP is a bad measurement
	res, err = OrificeFlow(0.1, 0.05, -5, 45.0, 0.6, 0, false)
	if err != nil || !math.IsNaN(res.MassFlow) {
		tst.Errorf("negative dP must give NaN\n")
	}
}
