// Copyright 2025 The Pvtlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp reads reference case databases from JSON files. The
// cases carry a gas composition, a state point and the expected
// property values used by data-driven verification.
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
)

// Case holds one reference state point
type Case struct {
	Name         string             `json:"name"`         // label of this case
	Equation     string             `json:"equation"`     // equation of state; e.g. "GERG-2008", "DETAIL"
	Composition  map[string]float64 `json:"composition"`  // gas composition [mol%]
	PressureKPa  float64            `json:"pressureKPa"`  // pressure [kPa]
	TemperatureK float64            `json:"temperatureK"` // temperature [K]

	// expected values; zero means not checked
	RefMolarMass float64 `json:"refMolarMass"` // molar mass [g/mol]
	RefDensity   float64 `json:"refDensity"`   // mass density [kg/m³]
	RefSpeed     float64 `json:"refSpeed"`     // speed of sound [m/s]
}

// CaseDb implements a database of reference cases
type CaseDb struct {
	Cases []*Case `json:"cases"` // all cases
}

// ReadCases reads a case database from a JSON file
func ReadCases(dir, fn string) (db *CaseDb, err error) {

	// new database
	db = new(CaseDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read case database %q: %v", fn, err)
	}

	// decode
	err = json.Unmarshal(b, db)
	if err != nil {
		return nil, chk.Err("cannot parse case database %q: %v", fn, err)
	}

	// check
	if len(db.Cases) == 0 {
		return nil, chk.Err("case database %q has no cases", fn)
	}
	for i, c := range db.Cases {
		if c.Name == "" {
			return nil, chk.Err("case %d has no name", i)
		}
		if c.Equation == "" {
			return nil, chk.Err("case %q has no equation of state", c.Name)
		}
		if len(c.Composition) == 0 {
			return nil, chk.Err("case %q has no composition", c.Name)
		}
		if c.PressureKPa <= 0 || c.TemperatureK <= 0 {
			return nil, chk.Err("case %q has an invalid state point: P=%g kPa, T=%g K", c.Name, c.PressureKPa, c.TemperatureK)
		}
	}
	return
}
