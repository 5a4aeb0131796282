// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roots

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

func Test_brent01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brent01. cubic with one root in bracket")

	f := func(x float64) (float64, error) {
		return x*x*x - 2.0*x - 5.0, nil
	}

	o := NewBrent()
	res, err := o.Solve(f, 2.0, 3.0)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("x = %.10f  nit = %d\n", res, o.NIt)
	}
	chk.Float64(tst, "x", 1e-10, res, 2.0945514815423265)
}

func Test_brent02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brent02. transcendental")

	f := func(x float64) (float64, error) {
		return math.Cos(x) - x, nil
	}

	o := NewBrent()
	res, err := o.Solve(f, 0.0, 1.0)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	chk.Float64(tst, "x", 1e-10, res, 0.7390851332151607)
}

func Test_brent03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brent03. no sign change")

	f := func(x float64) (float64, error) {
		return x*x + 1.0, nil
	}

	o := NewBrent()
	_, err := o.Solve(f, -1.0, 1.0)
	if err == nil {
		tst.Errorf("Solve should have failed on non-bracketing interval\n")
	}
}

func Test_expand01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expand01. bracket expansion")

	f := func(x float64) (float64, error) {
		return x - 100.0, nil
	}

	xa, xb, err := Expand(f, 0.0, 1.0, 50)
	if err != nil {
		tst.Errorf("Expand failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("xa = %g  xb = %g\n", xa, xb)
	}
	if xa > 100.0 || xb < 100.0 {
		tst.Errorf("interval [%g,%g] does not bracket 100\n", xa, xb)
	}

	o := NewBrent()
	res, err := o.Solve(f, xa, xb)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	chk.Float64(tst, "x", 1e-8, res, 100.0)
}
