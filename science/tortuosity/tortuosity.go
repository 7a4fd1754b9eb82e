/*
Copyright © 2019 the echem authors.
This file is part of echem.

echem is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

echem is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with echem.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package tortuosity contains submodels relating tortuosity to porosity.
package tortuosity

import (
	"fmt"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// Phase selects the phase a tortuosity submodel describes.
type Phase int

// Phases.
const (
	Electrolyte Phase = iota
	Electrode
)

func (p Phase) String() string {
	if p == Electrode {
		return "electrode"
	}
	return "electrolyte"
}

// Bruggeman relates tortuosity to porosity with the Bruggeman correlation.
// In the electrolyte the tortuosity is ε^b; in the electrode solid phase it
// is (1-ε)^b.
type Bruggeman struct {
	echem.Base
	phase Phase
}

// NewBruggeman returns a Bruggeman tortuosity submodel for the given phase.
func NewBruggeman(param *echem.ParameterSet, phase Phase) Bruggeman {
	return Bruggeman{Base: echem.NewBase(param, echem.None), phase: phase}
}

// Name implements echem.Submodel.
func (b Bruggeman) Name() string { return "Bruggeman " + b.phase.String() + " tortuosity" }

// Phase returns the phase the submodel describes.
func (b Bruggeman) Phase() Phase { return b.phase }

// CoupledVariables implements echem.Submodel.
func (b Bruggeman) CoupledVariables(vars *echem.VariableSet) (echem.VariableMap, error) {
	domains := echem.Domains
	if b.phase == Electrode {
		domains = echem.Electrodes
	}
	v := make(echem.VariableMap)
	for _, d := range domains {
		eps := names.Porosity(d)
		if err := vars.Require(eps); err != nil {
			return nil, fmt.Errorf("tortuosity: %w", err)
		}
		if b.phase == Electrode {
			v[names.ElectrodeTortuosity(d)] = echem.Exprf("(1 - %s) ** %s", eps, names.BruggemanCoefficient)
		} else {
			v[names.ElectrolyteTortuosity(d)] = echem.Exprf("%s ** %s", eps, names.BruggemanCoefficient)
		}
	}
	return v, nil
}
