// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compressor

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

func Test_comp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp01. polytropic exponent, head and efficiency")

	n := PolyExponent(1.5, 5.0, 6.0, 12.0)
	chk.Float64(tst, "n", 1e-15, n, 1.7369655941662063)

	// typical natural gas compression stays between 1 and 2
	nGas := PolyExponent(50.0, 100.0, 40.0, 75.0)
	if nGas <= 1.0 || nGas >= 2.0 {
		tst.Errorf("polytropic exponent %g is outside (1,2)\n", nGas)
	}

	head := PolyHead(1.25, 1.0, 5.0, 10, 40)
	chk.Float64(tst, "head", 1e-12, head, 480.0)

	head = PolyHead(1.36, 51.0, 81.0, 40.7, 57.1)
	chk.Float64(tst, "head", 1e-12, head, 62.51945306236031)

	eff := PolyEff(80.0, 100.0)
	chk.Float64(tst, "eff", 1e-15, eff, 0.8)

	// bad measurements give NaN
	if !math.IsNaN(PolyExponent(0, 5.0, 6.0, 12.0)) {
		tst.Errorf("zero suction pressure must give NaN\n")
	}
	if !math.IsNaN(PolyExponent(1.5, 5.0, 6.0, 0)) {
		tst.Errorf("zero discharge density must give NaN\n")
	}
	if !math.IsNaN(PolyHead(1.25, 1.0, 5.0, 0, 40)) {
		tst.Errorf("zero suction density must give NaN\n")
	}
	if !math.IsNaN(PolyHead(1.25, 1.0, 5.0, 10, 0)) {
		tst.Errorf("zero discharge density must give NaN\n")
	}
	if !math.IsNaN(PolyEff(80.0, 0)) {
		tst.Errorf("zero enthalpy rise must give NaN\n")
	}
}

func Test_comp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp02. enthalpy rise")

	chk.Float64(tst, "dh", 1e-15, EnthalpyRise(100.0, 150.0), 50.0)

	// expansion gives a signed negative rise
	chk.Float64(tst, "dh reverse", 1e-15, EnthalpyRise(150.0, 100.0), -50.0)
}

func Test_comp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp03. flow coefficient conventions")

	Q, N, D := 10.0, 3000.0, 0.5

	man, err := FlowCoeff(Q, N, D, "MAN")
	if err != nil {
		tst.Errorf("FlowCoeff failed: %v\n", err)
		return
	}
	iso, err := FlowCoeff(Q, N, D, "ISO 5389")
	if err != nil {
		tst.Errorf("FlowCoeff failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("MAN      = %v\n", man)
		io.Pf("ISO 5389 = %v\n", iso)
	}
	U := TipSpeed(N, D)
	chk.Float64(tst, "U", 1e-12, U, 78.53981633974483)
	chk.Float64(tst, "MAN", 1e-12, man, Q/(D*D*U))
	chk.Float64(tst, "ISO 5389", 1e-12, iso, 4.0*Q/(math.Pi*D*D*U))

	// the two conventions give distinct finite values
	if math.IsNaN(man) || math.IsNaN(iso) || man == iso {
		tst.Errorf("conventions must give distinct finite values; got %g and %g\n", man, iso)
	}

	// an unknown convention is a configuration error
	for _, bad := range []string{"INVALID", "man", ""} {
		if _, err = FlowCoeff(Q, N, D, bad); err == nil {
			tst.Errorf("convention %q must be an error\n", bad)
		}
	}

	// zero speed is a bad measurement
	phi, err := FlowCoeff(Q, 0, D, "MAN")
	if err != nil || !math.IsNaN(phi) {
		tst.Errorf("zero speed must give NaN, not an error\n")
	}
}

func Test_comp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp04. tip speed and stage coefficients")

	u := TipSpeed(0, 0.5)
	chk.Float64(tst, "U at standstill", 1e-15, u, 0)

	sum := SigmaUSquared([]float64{3, 4, 5, 3, 4, 5})
	chk.Float64(tst, "sigma U²", 1e-15, sum, 100.0)

	// doubling the stages doubles the sum
	single := SigmaUSquared([]float64{3, 4, 5})
	chk.Float64(tst, "sigma U² linearity", 1e-15, sum, 2.0*single)
	chk.Float64(tst, "single stage", 1e-15, SigmaUSquared([]float64{5}), 25.0)

	mu := PolyHeadCoeff(500, 900000)
	chk.Float64(tst, "head coefficient", 1e-15, mu, 0.5555555555555556)

	s := WorkCoeff(1000, 2000000.0)
	chk.Float64(tst, "work coefficient", 1e-15, s, 0.5)

	if !math.IsNaN(PolyHeadCoeff(500, 0)) {
		tst.Errorf("zero sigma U² must give NaN\n")
	}
	if !math.IsNaN(WorkCoeff(1000, 0)) {
		tst.Errorf("zero sigma U² must give NaN\n")
	}
}

func Test_comp05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp05. full performance chain")

	n := PolyExponent(50.0, 100.0, 40.0, 75.0)
	head := PolyHead(n, 50.0, 100.0, 40.0, 75.0)
	dh := EnthalpyRise(500.0, 600.0)
	eff := PolyEff(head, dh)
	if chk.Verbose {
		io.Pf("n    = %v\n", n)
		io.Pf("head = %v kJ/kg\n", head)
		io.Pf("dh   = %v kJ/kg\n", dh)
		io.Pf("eff  = %v\n", eff)
	}
	chk.Float64(tst, "dh", 1e-15, dh, 100.0)
	if math.IsNaN(head) || head <= 0 {
		tst.Errorf("head must be finite and positive; got %g\n", head)
	}
	if eff <= 0 || eff > 1.0 {
		tst.Errorf("efficiency %g is outside (0,1]\n", eff)
	}
}
