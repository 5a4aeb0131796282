// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meas

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RelativeDifference is the difference between two properties in
// percent of their mean. Two values summing to zero give NaN.
func RelativeDifference(a, b float64) float64 {
	if a+b == 0 {
		return math.NaN()
	}
	return 100.0 * (a - b) / ((a + b) / 2.0)
}

// Deviation is the difference between an observed and a reference
// measurement
func Deviation(observed, reference float64) float64 {
	return observed - reference
}

// RelativeDeviation is the deviation in percent of the reference. A
// zero reference gives NaN.
func RelativeDeviation(observed, reference float64) float64 {
	if reference == 0 {
		return math.NaN()
	}
	return 100.0 * (observed - reference) / reference
}

// MaxMinSpread is the span of a series in percent of its mean, used to
// judge the stability of repeated readings. A zero maximum or a zero
// mean gives NaN.
func MaxMinSpread(xs []float64) float64 {
	max := floats.Max(xs)
	mean := stat.Mean(xs, nil)
	if max == 0 || mean == 0 {
		return math.NaN()
	}
	return 100.0 * (max - floats.Min(xs)) / mean
}
