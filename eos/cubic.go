// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Rgas is the universal gas constant [J/(mol·K)]
const Rgas = 8.31446261815324

// reference state of the ideal-gas caloric functions
const (
	refT = 298.15  // [K]
	refP = 101325. // [Pa]
)

// critical temperatures [K], canonical species order
var critT = []float64{
	190.564, 126.192, 304.1282, 305.322, 369.825,
	407.817, 425.125, 460.35, 469.7, 507.82,
	540.13, 569.32, 594.55, 617.7, 33.145,
	154.581, 132.86, 647.096, 373.1, 5.1953, 150.687,
}

// critical pressures [MPa], canonical species order
var critP = []float64{
	4.5992, 3.3958, 7.3773, 4.8722, 4.2512,
	3.629, 3.796, 3.378, 3.370, 3.034,
	2.736, 2.497, 2.281, 2.103, 1.2964,
	5.043, 3.494, 22.064, 9.0, 0.22746, 4.863,
}

// acentric factors, canonical species order
var acentric = []float64{
	0.01142, 0.0372, 0.22394, 0.0995, 0.1521,
	0.1835, 0.1995, 0.2274, 0.2515, 0.3013,
	0.3495, 0.3996, 0.4435, 0.4923, -0.216,
	0.0222, 0.0497, 0.3443, 0.1005, -0.390, -0.00219,
}

// ideal-gas isobaric heat capacities at the reference temperature
// [J/(mol·K)], canonical species order
var cpIdeal = []float64{
	35.69, 29.12, 37.13, 52.49, 73.60,
	96.82, 98.49, 118.78, 120.07, 142.60,
	165.20, 187.78, 210.41, 233.05, 28.84,
	29.38, 29.14, 33.59, 34.19, 20.786, 20.786,
}

// prCore evaluates gas-phase thermodynamic properties with the
// Peng-Robinson cubic and a constant-Cp ideal-gas part. The molar
// mass table is supplied by the registered backend.
type prCore struct {
	mm []float64 // molar masses [g/mol], canonical species order
}

// sqrt2 constants of the Peng-Robinson volume integral
var (
	prDelta1 = 1.0 + math.Sqrt2
	prDelta2 = 1.0 - math.Sqrt2
)

// mixParams computes the mixture attraction parameter a [Pa·m⁶/mol²]
// with its first and second temperature derivatives, and the covolume
// b [m³/mol]. Binary interaction parameters are zero, so the mixture
// square root is a linear combination of the pure-component ones.
func (o *prCore) mixParams(x []float64, t float64) (a, da, d2a, b float64) {
	var s, ds, d2s float64
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		tc := critT[i]
		pc := critP[i] * 1e6
		kap := 0.37464 + 1.54226*acentric[i] - 0.26992*acentric[i]*acentric[i]
		sqAc := math.Sqrt(0.45724 * Rgas * Rgas * tc * tc / pc)
		sqAlpha := 1.0 + kap*(1.0-math.Sqrt(t/tc))
		s += xi * sqAc * sqAlpha
		ds -= xi * sqAc * kap / (2.0 * math.Sqrt(t*tc))
		d2s += xi * sqAc * kap / (4.0 * t * math.Sqrt(t*tc))
		b += xi * 0.07780 * Rgas * tc / pc
	}
	a = s * s
	da = 2.0 * s * ds
	d2a = 2.0 * (ds*ds + s*d2s)
	return
}

// MolarMasses returns the backend molar mass table [g/mol]
func (o *prCore) MolarMasses() []float64 {
	return o.mm
}

// MolarMass computes the mixture molar mass [g/mol]
func (o *prCore) MolarMass(x []float64) (m float64) {
	for i, xi := range x {
		m += xi * o.mm[i]
	}
	return
}

// Density solves the cubic for the gas compressibility factor and
// returns the molar density [mol/l] at p [kPa] and t [K]
func (o *prCore) Density(x []float64, p, t float64) (d float64, err error) {
	if p <= 0 || t <= 0 {
		return 0, chk.Err("cannot compute density at p=%g kPa, t=%g K; both must be positive", p, t)
	}
	psi := p * 1000.0 // [Pa]
	a, _, _, b := o.mixParams(x, t)
	A := a * psi / (Rgas * Rgas * t * t)
	B := b * psi / (Rgas * t)
	z, err := gasZ(A, B)
	if err != nil {
		return
	}
	d = psi / (z * Rgas * t) / 1000.0
	return
}

// Pressure computes pressure [kPa] and compressibility factor from
// molar density d [mol/l] and temperature t [K]
func (o *prCore) Pressure(x []float64, d, t float64) (p, z float64) {
	v := 1.0 / (1000.0 * d) // [m³/mol]
	a, _, _, b := o.mixParams(x, t)
	psi := Rgas*t/(v-b) - a/(v*v+2.0*b*v-b*b)
	p = psi / 1000.0
	z = psi * v / (Rgas * t)
	return
}

// Properties computes the full property set at molar density d [mol/l]
// and temperature t [K]. Residual contributions come from the cubic;
// the ideal-gas caloric part uses constant reference heat capacities.
func (o *prCore) Properties(x []float64, d, t float64) (r Props, err error) {
	if d <= 0 || t <= 0 {
		return r, chk.Err("cannot compute properties at d=%g mol/l, t=%g K; both must be positive", d, t)
	}
	v := 1.0 / (1000.0 * d) // [m³/mol]
	a, da, d2a, b := o.mixParams(x, t)
	if v <= b {
		return r, chk.Err("molar volume %g m³/mol is below the covolume %g m³/mol", v, b)
	}

	den := v*v + 2.0*b*v - b*b
	psi := Rgas*t/(v-b) - a/den // [Pa]
	z := psi * v / (Rgas * t)
	bigB := b * psi / (Rgas * t)
	vint := math.Log((v+prDelta1*b)/(v+prDelta2*b)) / (2.0 * math.Sqrt2 * b)

	hres := Rgas*t*(z-1.0) + (t*da-a)*vint
	sres := Rgas*math.Log(z-bigB) + da*vint
	cvres := t * d2a * vint

	dPdV := -Rgas*t/((v-b)*(v-b)) + a*(2.0*v+2.0*b)/(den*den)
	dPdT := Rgas/(v-b) - da/den
	cpmcv := -t * dPdT * dPdT / dPdV

	// ideal-gas part
	var cp0, sx float64
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		cp0 += xi * cpIdeal[i]
		sx += xi * math.Log(xi)
	}
	hig := cp0 * (t - refT)
	sig := cp0*math.Log(t/refT) - Rgas*math.Log(psi/refP) - Rgas*sx

	mkg := o.MolarMass(x) / 1000.0 // [kg/mol]
	cv := cp0 - Rgas + cvres
	cp := cv + cpmcv
	w := math.Sqrt(cp / cv * (-v * v * dPdV) / mkg)
	rho := o.MolarMass(x) * d // g/l = kg/m³

	r.P = psi / 1000.0
	r.T = t
	r.Z = z
	r.D = d
	r.Rho = rho
	r.MolarMass = o.MolarMass(x)
	r.H = hig + hres
	r.S = sig + sres
	r.U = r.H - psi*v
	r.G = r.H - t*r.S
	r.A = r.U - t*r.S
	r.Cp = cp
	r.Cv = cv
	r.W = w
	r.Kappa = rho * w * w / psi
	r.JT = -(t*dPdT/dPdV + v) / cp * 1000.0 // [K/kPa]
	return
}

// gasZ returns the gas-phase (largest real) root of the Peng-Robinson
// compressibility cubic
//
//	Z³ - (1-B)Z² + (A-3B²-2B)Z - (AB-B²-B³) = 0
func gasZ(A, B float64) (z float64, err error) {
	c2 := -(1.0 - B)
	c1 := A - 3.0*B*B - 2.0*B
	c0 := -(A*B - B*B - B*B*B)
	roots := solveCubic(c2, c1, c0)
	z = math.Inf(-1)
	for _, root := range roots {
		if root > B && root > z {
			z = root
		}
	}
	if math.IsInf(z, -1) {
		return 0, chk.Err("compressibility cubic has no root above B=%g (A=%g)", B, A)
	}
	return
}

// solveCubic returns the real roots of z³ + c2 z² + c1 z + c0 = 0
func solveCubic(c2, c1, c0 float64) []float64 {
	// depressed form t³ + pt + q with z = t - c2/3
	p := c1 - c2*c2/3.0
	q := 2.0*c2*c2*c2/27.0 - c2*c1/3.0 + c0
	shift := -c2 / 3.0
	disc := q*q/4.0 + p*p*p/27.0
	switch {
	case disc > 0:
		s := math.Sqrt(disc)
		u := math.Cbrt(-q/2.0 + s)
		w := math.Cbrt(-q/2.0 - s)
		return []float64{u + w + shift}
	case disc == 0:
		if p == 0 {
			return []float64{shift}
		}
		u := math.Cbrt(-q / 2.0)
		return []float64{2.0*u + shift, -u + shift}
	}
	// three distinct real roots
	m := 2.0 * math.Sqrt(-p/3.0)
	theta := math.Acos(3.0*q/(p*m)) / 3.0
	res := make([]float64, 3)
	for k := 0; k < 3; k++ {
		res[k] = m*math.Cos(theta-2.0*math.Pi*float64(k)/3.0) + shift
	}
	return res
}
