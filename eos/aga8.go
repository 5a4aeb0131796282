// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eos computes thermodynamic properties of natural gas
// mixtures with pluggable equation-of-state backends. Pressures and
// temperatures cross the package boundary in engineering units (bara
// and °C by default); internally the package works in kPa, K and
// mol/l.
package eos

import (
	"math"

	"github.com/equinor/pvtlib/roots"
)

// AGA8 is the property engine. It validates compositions, converts
// units, dispatches to the configured backend and shapes the results.
// The zero value is not usable; construct with New.
type AGA8 struct {
	model Model

	// flash settings
	FlashMaxIt  int     // max iterations of the temperature solve
	FlashTolT   float64 // temperature tolerance [K]
	FlashSeedT  float64 // initial temperature guess [K]
	FlashSeedDT float64 // initial bracket half-width [K]
}

// New returns a property engine backed by the named equation of state
// ("GERG-2008" or "DETAIL", case insensitive)
func New(equation string) (o *AGA8, err error) {
	model, err := NewModel(equation)
	if err != nil {
		return nil, err
	}
	o = new(AGA8)
	o.model = model
	o.FlashMaxIt = 100
	o.FlashTolT = 1e-8
	o.FlashSeedT = 293.15
	o.FlashSeedDT = 10.0
	return
}

// Equation returns the name of the configured backend
func (o *AGA8) Equation() string {
	return o.model.Name()
}

// CalcPT computes the property set at pressure p and temperature t.
// Default units are bara and °C; punit and tunit override them when
// non-empty. NaN or non-positive pressure or absolute temperature
// flows through as an all-NaN record; unit and composition problems
// are errors.
func (o *AGA8) CalcPT(comp Composition, p, t float64, punit, tunit string) (r Props, err error) {
	if punit == "" {
		punit = "bara"
	}
	if tunit == "" {
		tunit = "C"
	}
	pkpa, err := PressureToKPa(p, punit)
	if err != nil {
		return
	}
	tk, err := TemperatureToK(t, tunit)
	if err != nil {
		return
	}
	if math.IsNaN(pkpa) || math.IsNaN(tk) || hasNaN(comp) || pkpa <= 0 || tk <= 0 {
		return nanProps(), nil
	}
	x, err := normalize(comp)
	if err != nil {
		return
	}
	return o.propsAtPT(x, pkpa, tk)
}

// CalcRhoT computes the property set at mass density rho [kg/m³] and
// temperature t. The default temperature unit is °C.
func (o *AGA8) CalcRhoT(comp Composition, rho, t float64, tunit string) (r Props, err error) {
	if tunit == "" {
		tunit = "C"
	}
	tk, err := TemperatureToK(t, tunit)
	if err != nil {
		return
	}
	if math.IsNaN(rho) || math.IsNaN(tk) || hasNaN(comp) || rho <= 0 || tk <= 0 {
		return nanProps(), nil
	}
	x, err := normalize(comp)
	if err != nil {
		return
	}
	d := rho / o.model.MolarMass(x) // [mol/l]
	r, err = o.model.Properties(x, d, tk)
	if err != nil {
		return
	}
	o.shape(&r, x)
	return
}

// CalcPH computes the property set at pressure p and molar enthalpy
// h [J/mol] by solving for temperature. Non-convergence returns a
// *FlashError.
func (o *AGA8) CalcPH(comp Composition, p, h float64, punit string) (r Props, err error) {
	return o.flash(comp, p, h, punit, "PH")
}

// CalcPS computes the property set at pressure p and molar entropy
// s [J/(mol·K)] by solving for temperature. Non-convergence returns a
// *FlashError.
func (o *AGA8) CalcPS(comp Composition, p, s float64, punit string) (r Props, err error) {
	return o.flash(comp, p, s, punit, "PS")
}

// Calc dispatches on the state variant tag
func (o *AGA8) Calc(comp Composition, state State) (r Props, err error) {
	switch state.Kind {
	case StatePT:
		return o.CalcPT(comp, state.P, state.T, "", "")
	case StateRhoT:
		return o.CalcRhoT(comp, state.Rho, state.T, "")
	case StatePH:
		return o.CalcPH(comp, state.P, state.H, "")
	case StatePS:
		return o.CalcPS(comp, state.P, state.S, "")
	}
	return r, &FlashError{Spec: "?", Reason: "unknown state kind"}
}

// flash solves a P,H or P,S specification for temperature with a
// bracketing root solver seeded at the configured guess
func (o *AGA8) flash(comp Composition, p, target float64, punit, spec string) (r Props, err error) {
	if punit == "" {
		punit = "bara"
	}
	pkpa, err := PressureToKPa(p, punit)
	if err != nil {
		return
	}
	if math.IsNaN(pkpa) || math.IsNaN(target) || hasNaN(comp) || pkpa <= 0 {
		return nanProps(), nil
	}
	x, err := normalize(comp)
	if err != nil {
		return
	}

	f := func(tk float64) (float64, error) {
		if tk <= 0 {
			// keep the bracket search inside the physical range
			return math.Inf(-1), nil
		}
		res, ferr := o.propsAtPT(x, pkpa, tk)
		if ferr != nil {
			return 0, ferr
		}
		if spec == "PH" {
			return res.H - target, nil
		}
		return res.S - target, nil
	}

	ta, tb, err := roots.Expand(f, o.FlashSeedT, o.FlashSeedDT, 30)
	if err != nil {
		return r, &FlashError{Spec: spec, P: pkpa, Target: target, Reason: err.Error()}
	}
	solver := roots.NewBrent()
	solver.MaxIt = o.FlashMaxIt
	solver.TolX = o.FlashTolT
	tk, err := solver.Solve(f, ta, tb)
	if err != nil {
		return r, &FlashError{Spec: spec, P: pkpa, Target: target, Reason: err.Error()}
	}
	return o.propsAtPT(x, pkpa, tk)
}

// propsAtPT evaluates the backend at pkpa [kPa] and tk [K] and shapes
// the result
func (o *AGA8) propsAtPT(x []float64, pkpa, tk float64) (r Props, err error) {
	d, err := o.model.Density(x, pkpa, tk)
	if err != nil {
		return
	}
	r, err = o.model.Properties(x, d, tk)
	if err != nil {
		return
	}
	o.shape(&r, x)
	return
}

// shape fills the engineering-unit mirror fields
func (o *AGA8) shape(r *Props, x []float64) {
	r.PressureBara = r.P / 100.0
	r.TemperatureC = r.T - CelsiusOffset
	comp := make(Composition)
	for i, xi := range x {
		if xi > 0 {
			comp[Species[i]] = xi * 100.0
		}
	}
	r.GasComposition = comp
}
