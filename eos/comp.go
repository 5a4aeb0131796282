// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Composition maps species names to relative amounts. Values need not
// sum to 100; they are normalised before use. Species names follow the
// AGA8 convention (C1, N2, CO2, C2, C3, iC4, nC4, iC5, nC5, nC6, nC7,
// nC8, nC9, nC10, H2, O2, CO, H2O, H2S, He, Ar).
type Composition map[string]float64

// Species holds the 21 AGA8 component names in canonical order
var Species = []string{
	"C1", "N2", "CO2", "C2", "C3",
	"iC4", "nC4", "iC5", "nC5", "nC6",
	"nC7", "nC8", "nC9", "nC10", "H2",
	"O2", "CO", "H2O", "H2S", "He", "Ar",
}

// NumSpecies is the number of AGA8 components
const NumSpecies = 21

// speciesIdx maps canonical names to their position in Species
var speciesIdx map[string]int

func init() {
	speciesIdx = make(map[string]int)
	for i, name := range Species {
		speciesIdx[name] = i
	}
}

// foldName maps an input species name onto a canonical AGA8 name.
// Suffixes after a dash are ignored (e.g. "C1-methane" reads as "C1").
// Hexanes and heavier fold onto the normal alkane of the same carbon
// number; C10 and heavier fold onto nC10.
func foldName(name string) (canonical string, err error) {
	base := strings.SplitN(name, "-", 2)[0]
	base = strings.TrimSpace(base)
	if _, ok := speciesIdx[base]; ok {
		return base, nil
	}
	if strings.HasPrefix(base, "C") {
		if n, cerr := strconv.Atoi(base[1:]); cerr == nil {
			switch {
			case n >= 6 && n <= 9:
				return "nC" + base[1:], nil
			case n >= 10:
				return "nC10", nil
			}
		}
	}
	return "", chk.Err("species %q is not available in the AGA8 component set", name)
}

// hasNaN reports whether any amount in the composition is NaN
func hasNaN(comp Composition) bool {
	for _, v := range comp {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// normalize folds and normalises a composition into mole fractions in
// canonical species order. The fractions sum to one.
func normalize(comp Composition) (x []float64, err error) {
	x = make([]float64, NumSpecies)
	sum := 0.0
	for name, v := range comp {
		canonical, ferr := foldName(name)
		if ferr != nil {
			return nil, ferr
		}
		if v < 0 {
			return nil, chk.Err("species %q has negative amount %g", name, v)
		}
		x[speciesIdx[canonical]] += v
		sum += v
	}
	if sum <= 0 {
		return nil, chk.Err("composition sums to %g; it must have a positive total", sum)
	}
	for i := range x {
		x[i] /= sum
	}
	return
}
