// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gdm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/equinor/pvtlib/eos"
)

func verbose() {
	chk.Verbose = true
}

func Test_gdm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gdm01. period to density and temperature correction")

	du := UncorrectedDensity(657.2723, -109.934, -0.0035718, 0.000432733)
	chk.Float64(tst, "Du", 5e-4, du, 74.662)

	dt := TemperatureCorrected(50.0, -1.7973e-05, 3.4502e-04, 100, 20.0)
	chk.Float64(tst, "DT", 1e-7, dt, 49.9557096)
}

func Test_gdm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gdm02. specific gravity and VOS correction ratio")

	sg := SpecificGravity(20.0, 0)
	chk.Float64(tst, "SG", 5e-5, sg, 0.6905)

	g := GRatio(0.6905, 1.3)
	chk.Float64(tst, "G", 1e-10, g, 0.6905/1.3)
}

func Test_gdm03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gdm03. Stansfeld speed-of-sound correction")

	dvos := SOSCorrected(108.07, 714.07, 372.89, 418.8, 0)
	chk.Float64(tst, "Dvos", 1e-5, dvos, 108.20862)

	// VOS correction factor examples from the 7812 manual, D.4.1
	low := SOSCorrected(10.0, 532, 350, 441, 0)
	chk.Float64(tst, "VOS factor at 10 kg/m³", 1e-4, low/10.0, 1.0046)

	high := SOSCorrected(60.0, 633, 359, 433, 0)
	chk.Float64(tst, "VOS factor at 60 kg/m³", 1e-4, high/60.0, 1.0026)

	// degenerate inputs
	if !math.IsNaN(SOSCorrected(100, 0, 350, 440, 0)) {
		tst.Errorf("zero period must give NaN\n")
	}
	if !math.IsNaN(SOSCorrected(100, 600, 0, 440, 0)) {
		tst.Errorf("zero calibration speed of sound must give NaN\n")
	}
}

func Test_gdm04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gdm04. speed of sound, density and isentropic exponent")

	// the two relations invert each other
	rho := DensityFromSOS(420.0, 1.32, 80.0)
	sos := SOSFromDensity(rho, 1.32, 80.0)
	chk.Float64(tst, "SOS round trip", 1e-10, sos, 420.0)

	if !math.IsNaN(DensityFromSOS(0, 1.3, 80)) {
		tst.Errorf("zero speed of sound must give NaN\n")
	}
	if !math.IsNaN(SOSFromDensity(0, 1.3, 80)) {
		tst.Errorf("zero density must give NaN\n")
	}

	// signed flow
	q := Flow(4.0, 100.0, 0.5)
	chk.Float64(tst, "flow", 1e-12, q, 0.1)
	qr := Flow(-4.0, 100.0, 0.5)
	chk.Float64(tst, "reverse flow", 1e-12, qr, -0.1)
}

func Test_gdm05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gdm05. full correction chain with EOS calibration gas")

	engine, err := eos.New("GERG-2008")
	if err != nil {
		tst.Errorf("eos.New failed: %v\n", err)
		return
	}

	cal := Calibration{
		K0:   -109.934,
		K1:   -0.0035718,
		K2:   0.000432733,
		K18:  -1.7973e-05,
		K19:  3.4502e-04,
		Tcal: 20.0,
		Gas:  eos.Composition{"N2": 100},
	}

	tau := 657.2723
	T := 45.0
	du := UncorrectedDensity(tau, cal.K0, cal.K1, cal.K2)
	dt := TemperatureCorrected(du, cal.K18, cal.K19, T, cal.Tcal)
	calGas, err := engine.CalcRhoT(cal.Gas, du, cal.Tcal, "")
	if err != nil {
		tst.Errorf("CalcRhoT failed: %v\n", err)
		return
	}
	cProcess := 430.0
	want := SOSCorrected(dt, tau, calGas.W, cProcess, 0)

	got, err := cal.ProcessDensity(engine, tau, T, cProcess)
	if err != nil {
		tst.Errorf("ProcessDensity failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("Du   = %v kg/m³\n", du)
		io.Pf("DT   = %v kg/m³\n", dt)
		io.Pf("cCal = %v m/s\n", calGas.W)
		io.Pf("rho  = %v kg/m³\n", got)
	}
	chk.Float64(tst, "process density", 1e-12, got, want)
	if math.IsNaN(got) || got <= 0 {
		tst.Errorf("process density must be finite and positive; got %g\n", got)
	}
}
