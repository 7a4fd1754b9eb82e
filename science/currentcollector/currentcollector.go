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

// Package currentcollector contains submodels for the current collectors,
// which set the terminal voltage of the cell.
package currentcollector

import (
	"fmt"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// events returns the voltage cut-off events shared by every current
// collector variant.
func events(vars *echem.VariableSet) ([]echem.Event, error) {
	if err := vars.Require(names.TerminalVoltage); err != nil {
		return nil, err
	}
	return []echem.Event{
		{Name: "Minimum voltage", Expression: echem.Exprf("%s - %s", names.TerminalVoltage, names.LowerVoltageCutoff)},
		{Name: "Maximum voltage", Expression: echem.Exprf("%s - %s", names.UpperVoltageCutoff, names.TerminalVoltage)},
	}, nil
}

func electrodePotentials(vars *echem.VariableSet) (n, p string, err error) {
	n = names.XAvgElectrodePotential(echem.Negative)
	p = names.XAvgElectrodePotential(echem.Positive)
	return n, p, vars.Require(n, p)
}

// Uniform treats the current collectors as perfect conductors: the
// current density through the cell is uniform and equal to the total
// current density.
type Uniform struct {
	echem.Base
}

// NewUniform returns a uniform current collector submodel.
func NewUniform(param *echem.ParameterSet) Uniform {
	return Uniform{echem.NewBase(param, echem.None)}
}

// Name implements echem.Submodel.
func (Uniform) Name() string { return "uniform current collector" }

// FundamentalVariables implements echem.Submodel.
func (Uniform) FundamentalVariables() (echem.VariableMap, error) {
	v := echem.VariableMap{names.CurrentCollectorCurrentDensity: echem.Exprf("%s", names.TotalCurrentDensity)}
	v[names.CurrentCollectorPotential(echem.Negative)] = echem.Constant(0)
	return v, nil
}

// CoupledVariables implements echem.Submodel.
func (Uniform) CoupledVariables(vars *echem.VariableSet) (echem.VariableMap, error) {
	n, p, err := electrodePotentials(vars)
	if err != nil {
		return nil, err
	}
	v := echem.VariableMap{names.TerminalVoltage: echem.Exprf("%s - %s", p, n)}
	v[names.CurrentCollectorPotential(echem.Positive)] = echem.Exprf("%s", names.TerminalVoltage)
	v[names.LocalVoltage] = echem.Exprf("%s", names.TerminalVoltage)
	return v, nil
}

// Events implements echem.EventSource.
func (Uniform) Events(vars *echem.VariableSet) ([]echem.Event, error) { return events(vars) }

// PotentialPair solves for the potentials of both current collectors
// across the face of the cell. The current collector current density and
// the negative current collector potential are algebraic states.
type PotentialPair struct {
	echem.Base
}

// NewPotentialPair returns a potential-pair current collector submodel.
func NewPotentialPair(param *echem.ParameterSet) PotentialPair {
	return PotentialPair{echem.NewBase(param, echem.None)}
}

// Name implements echem.Submodel.
func (PotentialPair) Name() string { return "potential pair current collector" }

// FundamentalVariables implements echem.Submodel.
func (PotentialPair) FundamentalVariables() (echem.VariableMap, error) {
	phi := names.CurrentCollectorPotential(echem.Negative)
	v := echem.VariableMap{phi: echem.StateVariable(phi)}
	v[names.CurrentCollectorCurrentDensity] = echem.StateVariable(names.CurrentCollectorCurrentDensity)
	return v, nil
}

// CoupledVariables implements echem.Submodel.
func (PotentialPair) CoupledVariables(vars *echem.VariableSet) (echem.VariableMap, error) {
	n, p, err := electrodePotentials(vars)
	if err != nil {
		return nil, err
	}
	phiN := names.CurrentCollectorPotential(echem.Negative)
	phiP := names.CurrentCollectorPotential(echem.Positive)
	v := echem.VariableMap{names.LocalVoltage: echem.Exprf("%s - %s", p, n)}
	v[phiP] = echem.Exprf("%s + %s", phiN, names.LocalVoltage)
	v[names.TerminalVoltage] = echem.Exprf("positive_tab(%s) - negative_tab(%s)", phiP, phiN)
	return v, nil
}

// Equations implements echem.Submodel.
func (PotentialPair) Equations(vars *echem.VariableSet) (echem.Equations, error) {
	cc := func(d echem.Domain, sign string) (echem.Expression, error) {
		return echem.NewExpression(fmt.Sprintf("%s * %s * laplacian(%s) %s %s",
			echem.Ref(names.CurrentCollectorThickness(d)), echem.Ref(names.CurrentCollectorConductivity(d)),
			echem.Ref(names.CurrentCollectorPotential(d)), sign, echem.Ref(names.CurrentCollectorCurrentDensity)))
	}
	neg, err := cc(echem.Negative, "-")
	if err != nil {
		return echem.Equations{}, err
	}
	pos, err := cc(echem.Positive, "+")
	if err != nil {
		return echem.Equations{}, err
	}
	return echem.Equations{Algebraic: echem.VariableMap{
		names.CurrentCollectorPotential(echem.Negative): neg,
		names.CurrentCollectorCurrentDensity:            pos,
	}}, nil
}

// BoundaryConditions implements echem.Submodel. The negative tab is
// grounded and the current leaves through the positive tab.
func (PotentialPair) BoundaryConditions(vars *echem.VariableSet) (map[string]echem.BoundaryCondition, error) {
	zero := echem.Condition{Value: echem.Constant(0), Type: echem.Neumann}
	return map[string]echem.BoundaryCondition{
		names.CurrentCollectorPotential(echem.Negative): {
			Left:  echem.Condition{Value: echem.Constant(0), Type: echem.Dirichlet},
			Right: zero,
		},
		names.CurrentCollectorPotential(echem.Positive): {
			Left: zero,
			Right: echem.Condition{
				Value: echem.Exprf("%s / %s", names.TotalCurrentDensity, names.CurrentCollectorConductivity(echem.Positive)),
				Type:  echem.Neumann,
			},
		},
	}, nil
}

// InitialConditions implements echem.Submodel. These are initial guesses
// for the algebraic states.
func (PotentialPair) InitialConditions(vars *echem.VariableSet) (echem.VariableMap, error) {
	v := echem.VariableMap{names.CurrentCollectorPotential(echem.Negative): echem.Constant(0)}
	v[names.CurrentCollectorCurrentDensity] = echem.Exprf("%s", names.TotalCurrentDensity)
	return v, nil
}

// Events implements echem.EventSource.
func (PotentialPair) Events(vars *echem.VariableSet) ([]echem.Event, error) { return events(vars) }
