// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package equip holds sizing and verification relations for the
// auxiliary equipment around a metering station: valve flow factors,
// scrubber load factors and differential pressure level measurement.
package equip

import "math"

// Kv computes the metric valve flow factor [m³/h] from the flow rate Q
// [m³/h], the specific gravity SG (water = 1) and the differential
// pressure dP [bar]. Zero or adverse dP gives NaN.
func Kv(Q, SG, dP float64) float64 {
	if dP == 0 || SG/dP < 0 {
		return math.NaN()
	}
	return Q * math.Sqrt(SG/dP)
}

// FlowFromKv inverts Kv: the flow rate [m³/h] through a device with a
// known flow factor at the given specific gravity and differential
// pressure [bar]. Non-positive dP or SG gives NaN.
func FlowFromKv(Kv, SG, dP float64) float64 {
	if dP <= 0 || SG <= 0 {
		return math.NaN()
	}
	return Kv / math.Sqrt(SG/dP)
}
