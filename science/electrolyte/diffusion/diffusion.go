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

// Package diffusion contains submodels for the transport of the salt in
// the electrolyte.
package diffusion

import (
	"fmt"
	"strings"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

func concentrations(xavg echem.Expression) echem.VariableMap {
	v := echem.VariableMap{names.XAvgElectrolyteConcentration: xavg}
	for _, d := range echem.Domains {
		v[names.ElectrolyteConcentration(d)] = echem.Exprf("%s", names.XAvgElectrolyteConcentration)
	}
	return v
}

// ConstantConcentration keeps the electrolyte concentration at its typical
// value everywhere.
type ConstantConcentration struct {
	echem.Base
}

// NewConstantConcentration returns a constant electrolyte concentration
// submodel.
func NewConstantConcentration(param *echem.ParameterSet) ConstantConcentration {
	return ConstantConcentration{echem.NewBase(param, echem.None)}
}

// Name implements echem.Submodel.
func (ConstantConcentration) Name() string { return "constant electrolyte concentration" }

// FundamentalVariables implements echem.Submodel.
func (c ConstantConcentration) FundamentalVariables() (echem.VariableMap, error) {
	v := concentrations(echem.Exprf("%s", names.TypicalElectrolyteConc))
	v[names.ElectrolyteFlux] = echem.Constant(0)
	return v, nil
}

// LeadingOrder is the leading-order electrolyte diffusion for a cell whose
// reactions consume or produce salt. The x-averaged concentration changes
// with the net production of salt by every active reaction, divided by the
// volume of electrolyte.
type LeadingOrder struct {
	echem.Base
	reactions *echem.Reactions
}

// NewLeadingOrder returns leading-order electrolyte diffusion. It fails
// with echem.ErrMissingDependency if no reactions have been declared.
func NewLeadingOrder(param *echem.ParameterSet, reactions *echem.Reactions) (*LeadingOrder, error) {
	if reactions == nil || len(reactions.Declared()) == 0 {
		return nil, &echem.DependencyError{Name: "reactions", By: "leading-order electrolyte diffusion"}
	}
	return &LeadingOrder{Base: echem.NewBase(param, echem.None), reactions: reactions}, nil
}

// Name implements echem.Submodel.
func (*LeadingOrder) Name() string { return "leading-order electrolyte diffusion" }

// FundamentalVariables implements echem.Submodel.
func (l *LeadingOrder) FundamentalVariables() (echem.VariableMap, error) {
	v := concentrations(echem.StateVariable(names.XAvgElectrolyteConcentration))
	v[names.ElectrolyteFlux] = echem.Constant(0)
	return v, nil
}

// Equations implements echem.Submodel.
func (l *LeadingOrder) Equations(vars *echem.VariableSet) (echem.Equations, error) {
	var terms []string
	for _, d := range echem.Electrodes {
		active, err := l.reactions.Lookup(d)
		if err != nil {
			return echem.Equations{}, fmt.Errorf("diffusion: %w", err)
		}
		for _, a := range active {
			rx, err := l.reactions.Reaction(a.Reaction)
			if err != nil {
				return echem.Equations{}, fmt.Errorf("diffusion: %w", err)
			}
			s, ok := rx.Stoichiometry[d]
			if !ok || s == "" {
				continue
			}
			if err := vars.Require(a.CurrentDensity); err != nil {
				return echem.Equations{}, err
			}
			terms = append(terms, fmt.Sprintf("%s * %s * %s / %d",
				echem.Ref(s), echem.Ref(a.CurrentDensity), echem.Ref(names.Thickness(d)), rx.Electrons))
		}
	}
	if len(terms) == 0 {
		return echem.Equations{}, fmt.Errorf("diffusion: no active reaction changes the electrolyte concentration")
	}
	volume := make([]string, len(echem.Domains))
	for i, d := range echem.Domains {
		if err := vars.Require(names.XAvgPorosity(d)); err != nil {
			return echem.Equations{}, err
		}
		volume[i] = fmt.Sprintf("%s * %s", echem.Ref(names.Thickness(d)), echem.Ref(names.XAvgPorosity(d)))
	}
	e, err := echem.NewExpression(fmt.Sprintf("(%s) / (%s * (%s))", strings.Join(terms, " + "),
		echem.Ref(names.FaradayConstant), strings.Join(volume, " + ")))
	if err != nil {
		return echem.Equations{}, err
	}
	return echem.Equations{Rhs: echem.VariableMap{names.XAvgElectrolyteConcentration: e}}, nil
}

// InitialConditions implements echem.Submodel.
func (l *LeadingOrder) InitialConditions(vars *echem.VariableSet) (echem.VariableMap, error) {
	return echem.VariableMap{
		names.XAvgElectrolyteConcentration: echem.Exprf("%s", names.TypicalElectrolyteConc),
	}, nil
}
