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

// Package ohm contains submodels for charge conservation in the solid
// phase of the electrodes, which obeys Ohm's law.
package ohm

import (
	"fmt"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// LeadingOrder is the leading-order solution of Ohm's law in electrode d.
// The solid-phase potential is uniform through the electrode thickness and
// the solid-phase current density varies linearly from the current
// collector to the separator.
type LeadingOrder struct {
	echem.Base
}

// NewLeadingOrder returns a leading-order Ohm's law submodel for electrode
// d.
func NewLeadingOrder(param *echem.ParameterSet, d echem.Domain) LeadingOrder {
	return LeadingOrder{echem.NewBase(param, d)}
}

// Name implements echem.Submodel.
func (LeadingOrder) Name() string { return "leading-order Ohm's law" }

// FundamentalVariables implements echem.Submodel. The negative electrode
// is the reference for all potentials.
func (o LeadingOrder) FundamentalVariables() (echem.VariableMap, error) {
	switch o.Domain() {
	case echem.Negative:
		phi := names.XAvgElectrodePotential(echem.Negative)
		v := echem.VariableMap{phi: echem.Constant(0)}
		v[names.ElectrodePotential(echem.Negative)] = echem.Exprf("%s", phi)
		return v, nil
	case echem.Positive:
		return nil, nil
	}
	return nil, fmt.Errorf("ohm: no solid phase in domain %s", o.Domain())
}

// CoupledVariables implements echem.Submodel.
func (o LeadingOrder) CoupledVariables(vars *echem.VariableSet) (echem.VariableMap, error) {
	ccd := names.CurrentCollectorCurrentDensity
	if err := vars.Require(ccd); err != nil {
		return nil, err
	}
	n, s, p := echem.Negative, echem.Separator, echem.Positive
	if o.Domain() == n {
		i, err := echem.ParseExprf("%s * (1 - %s / %s)", ccd, "x_n", names.Thickness(n))
		if err != nil {
			return nil, err
		}
		return echem.VariableMap{names.ElectrodeCurrentDensity(n): i}, nil
	}

	spd := names.XAvgSurfacePotentialDifference(p)
	phiE := names.XAvgElectrolytePotential(p)
	if err := vars.Require(spd, phiE); err != nil {
		return nil, err
	}
	phi := names.XAvgElectrodePotential(p)
	v := echem.VariableMap{phi: echem.Exprf("%s + %s", spd, phiE)}
	v[names.ElectrodePotential(p)] = echem.Exprf("%s", phi)
	i, err := echem.ParseExprf("%s * (%s - %s - %s) / %s",
		ccd, "x_p", names.Thickness(n), names.Thickness(s), names.Thickness(p))
	if err != nil {
		return nil, err
	}
	v[names.ElectrodeCurrentDensity(p)] = i
	return v, nil
}
