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

// Package kinetics contains interfacial kinetics submodels, which relate
// the interfacial current density of an electrode reaction to the surface
// potential difference.
package kinetics

import (
	"fmt"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

type kinetics struct {
	echem.Base
	reaction echem.Reaction
}

func newKinetics(param *echem.ParameterSet, d echem.Domain, reaction echem.Reaction) kinetics {
	return kinetics{Base: echem.NewBase(param, d), reaction: reaction}
}

// Reaction implements echem.ReactionSource.
func (k kinetics) Reaction() echem.ActiveReaction {
	return echem.ActiveReaction{
		Domain:         k.Domain(),
		Reaction:       k.reaction.Name,
		CurrentDensity: names.XAvgInterfacialCurrent(k.Domain()),
	}
}

func (k kinetics) checkDomain() error {
	if !k.Domain().IsElectrode() {
		return fmt.Errorf("kinetics: no interfacial reaction in domain %s", k.Domain())
	}
	return nil
}

// thermalVoltage returns the text for RT/(nF).
func (k kinetics) thermalVoltage() string {
	return fmt.Sprintf("(%s * %s / (%d * %s))",
		echem.Ref(names.GasConstant), echem.Ref(names.XAvgCellTemperature),
		k.reaction.Electrons, echem.Ref(names.FaradayConstant))
}

// common returns the exchange current density and open-circuit potential.
func (k kinetics) common(vars *echem.VariableSet) (echem.VariableMap, error) {
	if err := k.checkDomain(); err != nil {
		return nil, err
	}
	d := k.Domain()
	j0, err := k.reaction.ExchangeCurrent(d)
	if err != nil {
		return nil, fmt.Errorf("kinetics: exchange current of %q: %w", k.reaction.Name, err)
	}
	ocp, err := k.reaction.OpenCircuitPotential(d)
	if err != nil {
		return nil, fmt.Errorf("kinetics: open-circuit potential of %q: %w", k.reaction.Name, err)
	}
	if err := vars.Resolve(j0, ocp); err != nil {
		return nil, err
	}
	if err := vars.Require(names.XAvgCellTemperature); err != nil {
		return nil, err
	}
	v := echem.VariableMap{
		names.ExchangeCurrent(d):      j0,
		names.OpenCircuitPotential(d): ocp,
	}
	v[d.String()+" electrode open circuit potential"] = echem.Exprf("%s", names.OpenCircuitPotential(d))
	return v, nil
}

// InverseButlerVolmer inverts the Butler-Volmer relation: the interfacial
// current density follows from the applied current, and the surface
// potential difference is computed from it. It is used when the surface
// potential difference is not a state of its own.
type InverseButlerVolmer struct {
	kinetics
}

// NewInverseButlerVolmer returns inverse Butler-Volmer kinetics for
// reaction in electrode d.
func NewInverseButlerVolmer(param *echem.ParameterSet, d echem.Domain, reaction echem.Reaction) InverseButlerVolmer {
	return InverseButlerVolmer{newKinetics(param, d, reaction)}
}

// Name implements echem.Submodel.
func (InverseButlerVolmer) Name() string { return "inverse Butler-Volmer" }

// CoupledVariables implements echem.Submodel.
func (k InverseButlerVolmer) CoupledVariables(vars *echem.VariableSet) (echem.VariableMap, error) {
	v, err := k.common(vars)
	if err != nil {
		return nil, err
	}
	if err := vars.Require(names.CurrentCollectorCurrentDensity); err != nil {
		return nil, err
	}
	d := k.Domain()
	sign := ""
	if d == echem.Positive {
		sign = "- "
	}
	j := names.XAvgInterfacialCurrent(d)
	v[j] = echem.Exprf(sign+"%s / %s", names.CurrentCollectorCurrentDensity, names.Thickness(d))
	v[names.InterfacialCurrent(d)] = echem.Exprf("%s", j)
	eta, err := echem.NewExpression(fmt.Sprintf("2 * %s * arcsinh(%s / (2 * %s))",
		k.thermalVoltage(), echem.Ref(j), echem.Ref(names.ExchangeCurrent(d))))
	if err != nil {
		return nil, err
	}
	v[names.Overpotential(d)] = eta
	delta := names.XAvgSurfacePotentialDifference(d)
	v[delta] = echem.Exprf("%s + %s", names.Overpotential(d), names.OpenCircuitPotential(d))
	v[names.SurfacePotentialDifference(d)] = echem.Exprf("%s", delta)
	return v, nil
}

// ButlerVolmer computes the interfacial current density from the surface
// potential difference, which another submodel defines as a state.
type ButlerVolmer struct {
	kinetics
}

// NewButlerVolmer returns Butler-Volmer kinetics for reaction in
// electrode d.
func NewButlerVolmer(param *echem.ParameterSet, d echem.Domain, reaction echem.Reaction) ButlerVolmer {
	return ButlerVolmer{newKinetics(param, d, reaction)}
}

// Name implements echem.Submodel.
func (ButlerVolmer) Name() string { return "Butler-Volmer" }

// CoupledVariables implements echem.Submodel.
func (k ButlerVolmer) CoupledVariables(vars *echem.VariableSet) (echem.VariableMap, error) {
	v, err := k.common(vars)
	if err != nil {
		return nil, err
	}
	d := k.Domain()
	if err := vars.Require(names.XAvgSurfacePotentialDifference(d)); err != nil {
		return nil, err
	}
	eta := names.Overpotential(d)
	v[eta] = echem.Exprf("%s - %s", names.XAvgSurfacePotentialDifference(d), names.OpenCircuitPotential(d))
	j := names.XAvgInterfacialCurrent(d)
	current, err := echem.NewExpression(fmt.Sprintf("2 * %s * sinh(%s / (2 * %s))",
		echem.Ref(names.ExchangeCurrent(d)), echem.Ref(eta), k.thermalVoltage()))
	if err != nil {
		return nil, err
	}
	v[j] = current
	v[names.InterfacialCurrent(d)] = echem.Exprf("%s", j)
	return v, nil
}
