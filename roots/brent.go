// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roots implements scalar root-finding used by the inverse
// flash calculations. Brent's method combines bisection, secant and
// inverse quadratic interpolation and needs no derivatives.
package roots

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Brent solves f(x) = 0 within a bracketing interval
type Brent struct {
	MaxIt int     // max iterations
	TolX  float64 // tolerance on interval size
	TolF  float64 // tolerance on |f|
	NIt   int     // number of iterations of last call
}

// NewBrent returns a solver with default settings
func NewBrent() (o *Brent) {
	o = new(Brent)
	o.MaxIt = 100
	o.TolX = 1e-10
	o.TolF = 1e-12
	return
}

// Solve finds a root of f in [xa, xb]. The interval must bracket the
// root; i.e. f(xa) and f(xb) must have opposite signs.
func (o *Brent) Solve(f func(x float64) (float64, error), xa, xb float64) (res float64, err error) {

	a, b := xa, xb
	fa, err := f(a)
	if err != nil {
		return
	}
	fb, err := f(b)
	if err != nil {
		return
	}
	if fa*fb > 0 {
		return 0, chk.Err("root is not bracketed: f(%g)=%g and f(%g)=%g have the same sign", a, fa, b, fb)
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}

	c, fc := a, fa
	d := b - a
	e := d
	o.NIt = 0
	for it := 0; it < o.MaxIt; it++ {
		o.NIt = it + 1

		// make b the best estimate
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2.0*math.SmallestNonzeroFloat64*math.Abs(b) + o.TolX/2.0
		xm := (c - b) / 2.0
		if math.Abs(xm) <= tol || math.Abs(fb) < o.TolF {
			return b, nil
		}

		// interpolation or bisection
		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			s := fb / fa
			var p, q float64
			if a == c {
				// secant
				p = 2.0 * xm * s
				q = 1.0 - s
			} else {
				// inverse quadratic
				q = fa / fc
				r := fb / fc
				p = s * (2.0*xm*q*(q-r) - (b-a)*(r-1.0))
				q = (q - 1.0) * (r - 1.0) * (s - 1.0)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2.0*p < math.Min(3.0*xm*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, xm)
		}
		fb, err = f(b)
		if err != nil {
			return
		}
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}
	return b, chk.Err("max number of iterations reached: nit=%d, xa=%g, xb=%g", o.NIt, xa, xb)
}

// Expand grows an interval around x0 geometrically until f changes
// sign. dx is the initial half-width. Returns a bracketing pair.
func Expand(f func(x float64) (float64, error), x0, dx float64, maxExp int) (xa, xb float64, err error) {
	if dx <= 0 {
		return 0, 0, chk.Err("initial half-width must be positive. dx=%g is invalid", dx)
	}
	xa, xb = x0-dx, x0+dx
	fa, err := f(xa)
	if err != nil {
		return
	}
	fb, err := f(xb)
	if err != nil {
		return
	}
	for i := 0; i < maxExp; i++ {
		if fa*fb <= 0 {
			return
		}
		dx *= 1.6
		if math.Abs(fa) < math.Abs(fb) {
			xa -= dx
			fa, err = f(xa)
		} else {
			xb += dx
			fb, err = f(xb)
		}
		if err != nil {
			return
		}
	}
	return 0, 0, chk.Err("cannot find a sign change around x0=%g after %d expansions", x0, maxExp)
}
