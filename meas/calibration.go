// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meas holds calibration curves and the deviation measures
// used when proving a meter against a reference.
package meas

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/interp"
)

// Point is one node of a calibration curve: a correction factor at a
// flow rate, Reynolds number or another abscissa
type Point struct {
	X      float64
	Factor float64
}

// Curve is a calibration curve with strictly increasing abscissae
type Curve []Point

// Eval interpolates the correction factor at x, extrapolating linearly
// beyond the end points
func (o Curve) Eval(x float64) (float64, error) {
	xs := make([]float64, len(o))
	ys := make([]float64, len(o))
	for i, p := range o {
		xs[i] = p.X
		ys[i] = p.Factor
	}
	return Interp(x, xs, ys)
}

func checkAbscissae(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return chk.Err("curve needs as many factors as abscissae; got %d and %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return chk.Err("curve needs at least two points; got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return chk.Err("curve abscissae must be strictly increasing; x[%d]=%g, x[%d]=%g", i-1, xs[i-1], i, xs[i])
		}
	}
	return nil
}

// Interp evaluates a piecewise linear curve at x. Outside the range of
// xs the end segments are extended, which is how flow calibration
// factors are applied slightly beyond the calibrated envelope. The
// abscissae must be strictly increasing.
func Interp(x float64, xs, ys []float64) (y float64, err error) {
	if err = checkAbscissae(xs, ys); err != nil {
		return
	}
	if math.IsNaN(x) {
		return math.NaN(), nil
	}
	n := len(xs)
	switch {
	case x < xs[0]:
		slope := (ys[1] - ys[0]) / (xs[1] - xs[0])
		return ys[0] + slope*(x-xs[0]), nil
	case x > xs[n-1]:
		slope := (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])
		return ys[n-1] + slope*(x-xs[n-1]), nil
	}
	var pl interp.PiecewiseLinear
	if err = pl.Fit(xs, ys); err != nil {
		return 0, chk.Err("curve fit failed: %v", err)
	}
	return pl.Predict(x), nil
}

// InterpStrict evaluates a piecewise linear curve at x and refuses to
// extrapolate
func InterpStrict(x float64, xs, ys []float64) (y float64, err error) {
	if err = checkAbscissae(xs, ys); err != nil {
		return
	}
	if x < xs[0] || x > xs[len(xs)-1] {
		return 0, chk.Err("x=%g is outside the calibrated range [%g,%g]", x, xs[0], xs[len(xs)-1])
	}
	return Interp(x, xs, ys)
}
