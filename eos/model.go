// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Model defines the interface of an equation-of-state backend. All
// methods take mole fractions in canonical species order (see Species)
// summing to one. Backends hold immutable reference data only and are
// safe for concurrent use.
type Model interface {

	// Name returns the canonical name of the equation of state
	Name() string

	// MolarMasses returns the per-species molar mass table [g/mol]
	MolarMasses() []float64

	// MolarMass computes the mixture molar mass [g/mol]
	MolarMass(x []float64) float64

	// Density solves for the gas molar density [mol/l] at pressure
	// p [kPa] and temperature t [K]
	Density(x []float64, p, t float64) (d float64, err error)

	// Pressure computes pressure [kPa] and compressibility factor
	// from molar density d [mol/l] and temperature t [K]
	Pressure(x []float64, d, t float64) (p, z float64)

	// Properties computes the full property set from molar density
	// d [mol/l] and temperature t [K]
	Properties(x []float64, d, t float64) (r Props, err error)
}

// NewModel returns a new equation-of-state backend. Names are matched
// case insensitively.
func NewModel(name string) (model Model, err error) {
	allocator, ok := allocators[strings.ToUpper(name)]
	if !ok {
		return nil, chk.Err("equation of state %q is not available", name)
	}
	return allocator(), nil
}

// allocators holds the available equation-of-state backends
var allocators = map[string]func() Model{}
