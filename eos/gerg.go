// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// Gerg2008 is the GERG-2008 variant of the property backend. It
// carries the GERG-2008 molar mass table; the cubic property core is
// shared with the DETAIL variant.
type Gerg2008 struct {
	prCore
}

// molar masses of the GERG-2008 publication [g/mol]
var gergMolarMass = []float64{
	16.04246, 28.0134, 44.0095, 30.06904, 44.09562,
	58.1222, 58.1222, 72.14878, 72.14878, 86.17536,
	100.20194, 114.22852, 128.2551, 142.28168, 2.01588,
	31.9988, 28.0101, 18.01528, 34.08088, 4.002602, 39.948,
}

// Name returns the canonical name
func (o *Gerg2008) Name() string {
	return "GERG-2008"
}

// add model to factory
func init() {
	allocators["GERG-2008"] = func() Model {
		return &Gerg2008{prCore{mm: gergMolarMass}}
	}
}
