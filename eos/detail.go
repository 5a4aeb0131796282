// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// Detail is the AGA8 DETAIL variant of the property backend. It
// carries the DETAIL molar mass table; the cubic property core is
// shared with the GERG-2008 variant.
type Detail struct {
	prCore
}

// molar masses of the AGA Report No. 8 Part 1 [g/mol]
var detailMolarMass = []float64{
	16.043, 28.0135, 44.01, 30.07, 44.097,
	58.123, 58.123, 72.15, 72.15, 86.177,
	100.204, 114.231, 128.258, 142.285, 2.0159,
	31.9988, 28.01, 18.0153, 34.082, 4.0026, 39.948,
}

// Name returns the canonical name
func (o *Detail) Name() string {
	return "DETAIL"
}

// add model to factory
func init() {
	allocators["DETAIL"] = func() Model {
		return &Detail{prCore{mm: detailMolarMass}}
	}
}
