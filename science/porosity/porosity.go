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

// Package porosity contains submodels for the porosity of the electrodes
// and separator.
package porosity

import (
	"fmt"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// Constant keeps the porosity of every domain at its initial value.
type Constant struct {
	echem.Base
}

// NewConstant returns a constant-porosity submodel.
func NewConstant(param *echem.ParameterSet) Constant {
	return Constant{echem.NewBase(param, echem.None)}
}

// Name implements echem.Submodel.
func (Constant) Name() string { return "constant porosity" }

// FundamentalVariables implements echem.Submodel.
func (Constant) FundamentalVariables() (echem.VariableMap, error) {
	v := make(echem.VariableMap)
	for _, d := range echem.Domains {
		eps := echem.Exprf("%s", names.InitialPorosity(d))
		v[names.Porosity(d)] = eps
		v[names.XAvgPorosity(d)] = eps
	}
	return v, nil
}

// LeadingOrder evolves the x-averaged electrode porosities with the
// volume change of the electrode reactions, as in lead-acid cells, where
// the solid reaction products take up more space than the reactants.
// The separator porosity is constant.
type LeadingOrder struct {
	echem.Base
}

// NewLeadingOrder returns a leading-order porosity submodel.
func NewLeadingOrder(param *echem.ParameterSet) LeadingOrder {
	return LeadingOrder{echem.NewBase(param, echem.None)}
}

// Name implements echem.Submodel.
func (LeadingOrder) Name() string { return "leading-order porosity" }

// FundamentalVariables implements echem.Submodel.
func (LeadingOrder) FundamentalVariables() (echem.VariableMap, error) {
	v := make(echem.VariableMap)
	for _, d := range echem.Domains {
		if d.IsElectrode() {
			v[names.XAvgPorosity(d)] = echem.StateVariable(names.XAvgPorosity(d))
			v[names.Porosity(d)] = echem.Exprf("%s", names.XAvgPorosity(d))
			continue
		}
		v[names.XAvgPorosity(d)] = echem.Exprf("%s", names.InitialPorosity(d))
		v[names.Porosity(d)] = echem.Exprf("%s", names.InitialPorosity(d))
	}
	return v, nil
}

// Equations implements echem.Submodel.
func (LeadingOrder) Equations(vars *echem.VariableSet) (echem.Equations, error) {
	rhs := make(echem.VariableMap)
	for _, d := range echem.Electrodes {
		j := names.XAvgInterfacialCurrent(d)
		if err := vars.Require(j); err != nil {
			return echem.Equations{}, fmt.Errorf("porosity: %w", err)
		}
		rhs[names.XAvgPorosity(d)] = echem.Exprf("- %s * %s / %s",
			names.VolumeChange(d), j, names.FaradayConstant)
	}
	return echem.Equations{Rhs: rhs}, nil
}

// InitialConditions implements echem.Submodel.
func (LeadingOrder) InitialConditions(vars *echem.VariableSet) (echem.VariableMap, error) {
	ic := make(echem.VariableMap)
	for _, d := range echem.Electrodes {
		ic[names.XAvgPorosity(d)] = echem.Exprf("%s", names.InitialPorosity(d))
	}
	return ic, nil
}
