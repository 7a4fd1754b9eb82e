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

// Package conductivity contains submodels for charge conservation in the
// electrolyte.
package conductivity

import (
	"fmt"
	"strings"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// currentDensity returns the leading-order electrolyte current density in
// domain d. It rises linearly through the negative electrode, carries the
// whole current across the separator and falls linearly through the
// positive electrode.
func currentDensity(d echem.Domain) (echem.Expression, error) {
	ccd := echem.Ref(names.CurrentCollectorCurrentDensity)
	ln := echem.Ref(names.Thickness(echem.Negative))
	lp := echem.Ref(names.Thickness(echem.Positive))
	switch d {
	case echem.Negative:
		return echem.NewExpression(fmt.Sprintf("%s * %s / %s", ccd, echem.Ref("x_n"), ln))
	case echem.Positive:
		return echem.NewExpression(fmt.Sprintf("%s * (%s - %s) / %s", ccd, names.CellThickness(), echem.Ref("x_p"), lp))
	}
	return echem.ParseExprf("%s", names.CurrentCollectorCurrentDensity)
}

// potential returns the electrolyte potential variables of domain d, given
// the template for its x-average over the name ref.
func potential(d echem.Domain, xavg, ref string) (echem.VariableMap, error) {
	e, err := echem.ParseExprf(xavg, ref)
	if err != nil {
		return nil, err
	}
	i, err := currentDensity(d)
	if err != nil {
		return nil, err
	}
	phi := names.XAvgElectrolytePotential(d)
	v := echem.VariableMap{phi: e}
	v[names.ElectrolytePotential(d)] = echem.Exprf("%s", phi)
	v[names.ElectrolyteCurrentDensity(d)] = i
	return v, nil
}

// LeadingOrder is the leading-order electrolyte conductivity for every
// domain at once. The electrolyte potential is uniform through the cell
// and is fixed by the negative electrode surface potential difference.
type LeadingOrder struct {
	echem.Base
}

// NewLeadingOrder returns leading-order electrolyte conductivity.
func NewLeadingOrder(param *echem.ParameterSet) LeadingOrder {
	return LeadingOrder{echem.NewBase(param, echem.None)}
}

// Name implements echem.Submodel.
func (LeadingOrder) Name() string { return "leading-order electrolyte conductivity" }

// CoupledVariables implements echem.Submodel.
func (c LeadingOrder) CoupledVariables(vars *echem.VariableSet) (echem.VariableMap, error) {
	spd := names.XAvgSurfacePotentialDifference(echem.Negative)
	if err := vars.Require(spd, names.CurrentCollectorCurrentDensity); err != nil {
		return nil, err
	}
	phiN := names.XAvgElectrolytePotential(echem.Negative)
	v, err := potential(echem.Negative, "- %s", spd)
	if err != nil {
		return nil, err
	}
	for _, d := range []echem.Domain{echem.Separator, echem.Positive} {
		pv, err := potential(d, "%s", phiN)
		if err != nil {
			return nil, err
		}
		for k, e := range pv {
			v[k] = e
		}
	}
	return v, nil
}

// surfaceForm holds the shared behaviour of the surface-form variants,
// which make the x-averaged surface potential difference of each electrode
// a state of its own. One instance is added per domain.
type surfaceForm struct {
	echem.Base
	reactions []echem.ActiveReaction
}

func newSurfaceForm(param *echem.ParameterSet, d echem.Domain, reactions *echem.Reactions) (surfaceForm, error) {
	if d == echem.None {
		return surfaceForm{}, fmt.Errorf("conductivity: surface form needs a cell domain")
	}
	if reactions == nil {
		return surfaceForm{}, &echem.DependencyError{Name: "reactions", By: d.Lower() + " electrolyte conductivity"}
	}
	list, err := reactions.Lookup(d)
	if err != nil {
		return surfaceForm{}, fmt.Errorf("conductivity: %w", err)
	}
	return surfaceForm{Base: echem.NewBase(param, d), reactions: list}, nil
}

// Reactions returns the reactions the submodel sums over.
func (s surfaceForm) Reactions() []echem.ActiveReaction {
	return append([]echem.ActiveReaction(nil), s.reactions...)
}

// FundamentalVariables implements echem.Submodel.
func (s surfaceForm) FundamentalVariables() (echem.VariableMap, error) {
	d := s.Domain()
	if !d.IsElectrode() {
		return nil, nil
	}
	spd := names.XAvgSurfacePotentialDifference(d)
	v := echem.VariableMap{spd: echem.StateVariable(spd)}
	v[names.SurfacePotentialDifference(d)] = echem.Exprf("%s", spd)
	return v, nil
}

// CoupledVariables implements echem.Submodel.
func (s surfaceForm) CoupledVariables(vars *echem.VariableSet) (echem.VariableMap, error) {
	if err := vars.Require(names.CurrentCollectorCurrentDensity); err != nil {
		return nil, err
	}
	d := s.Domain()
	if d == echem.Negative {
		return potential(d, "- %s", names.XAvgSurfacePotentialDifference(d))
	}
	phiN := names.XAvgElectrolytePotential(echem.Negative)
	if err := vars.Require(phiN); err != nil {
		return nil, err
	}
	return potential(d, "%s", phiN)
}

// residual returns the text of the difference between the summed
// interfacial current density and the current the electrode must carry.
func (s surfaceForm) residual(vars *echem.VariableSet) (string, error) {
	d := s.Domain()
	terms := make([]string, len(s.reactions))
	for i, r := range s.reactions {
		if err := vars.Require(r.CurrentDensity); err != nil {
			return "", err
		}
		terms[i] = echem.Ref(r.CurrentDensity)
	}
	target := fmt.Sprintf("%s / %s", echem.Ref(names.CurrentCollectorCurrentDensity), echem.Ref(names.Thickness(d)))
	if d == echem.Positive {
		target = "- " + target
	}
	return fmt.Sprintf("(%s) - (%s)", strings.Join(terms, " + "), target), nil
}

// InitialConditions implements echem.Submodel. The surface potential
// difference starts at the open-circuit potential.
func (s surfaceForm) InitialConditions(vars *echem.VariableSet) (echem.VariableMap, error) {
	d := s.Domain()
	if !d.IsElectrode() {
		return nil, nil
	}
	ocp := names.OpenCircuitPotential(d)
	if err := vars.Require(ocp); err != nil {
		return nil, err
	}
	return echem.VariableMap{names.XAvgSurfacePotentialDifference(d): echem.Exprf("%s", ocp)}, nil
}

// LeadingOrderDifferential charges the double layer: the surface potential
// difference evolves with the mismatch between the reaction current and
// the current the electrode carries.
type LeadingOrderDifferential struct {
	surfaceForm
}

// NewLeadingOrderDifferential returns the differential surface form of the
// leading-order conductivity in domain d. It fails with
// echem.ErrMissingDependency if no reaction is active in an electrode d.
func NewLeadingOrderDifferential(param *echem.ParameterSet, d echem.Domain, reactions *echem.Reactions) (*LeadingOrderDifferential, error) {
	s, err := newSurfaceForm(param, d, reactions)
	if err != nil {
		return nil, err
	}
	return &LeadingOrderDifferential{s}, nil
}

// Name implements echem.Submodel.
func (*LeadingOrderDifferential) Name() string {
	return "leading-order differential surface form conductivity"
}

// Equations implements echem.Submodel.
func (c *LeadingOrderDifferential) Equations(vars *echem.VariableSet) (echem.Equations, error) {
	d := c.Domain()
	if !d.IsElectrode() {
		return echem.Equations{}, nil
	}
	r, err := c.residual(vars)
	if err != nil {
		return echem.Equations{}, err
	}
	e, err := echem.NewExpression(fmt.Sprintf("(%s) / (%s * %s)", r,
		echem.Ref(names.DoubleLayerCapacity(d)), echem.Ref(names.SurfaceAreaDensity(d))))
	if err != nil {
		return echem.Equations{}, err
	}
	return echem.Equations{Rhs: echem.VariableMap{names.XAvgSurfacePotentialDifference(d): e}}, nil
}

// LeadingOrderAlgebraic neglects double-layer capacitance: the reaction
// current balances the electrode current at every instant.
type LeadingOrderAlgebraic struct {
	surfaceForm
}

// NewLeadingOrderAlgebraic returns the algebraic surface form of the
// leading-order conductivity in domain d. It fails with
// echem.ErrMissingDependency if no reaction is active in an electrode d.
func NewLeadingOrderAlgebraic(param *echem.ParameterSet, d echem.Domain, reactions *echem.Reactions) (*LeadingOrderAlgebraic, error) {
	s, err := newSurfaceForm(param, d, reactions)
	if err != nil {
		return nil, err
	}
	return &LeadingOrderAlgebraic{s}, nil
}

// Name implements echem.Submodel.
func (*LeadingOrderAlgebraic) Name() string {
	return "leading-order algebraic surface form conductivity"
}

// Equations implements echem.Submodel.
func (c *LeadingOrderAlgebraic) Equations(vars *echem.VariableSet) (echem.Equations, error) {
	d := c.Domain()
	if !d.IsElectrode() {
		return echem.Equations{}, nil
	}
	r, err := c.residual(vars)
	if err != nil {
		return echem.Equations{}, err
	}
	e, err := echem.NewExpression(r)
	if err != nil {
		return echem.Equations{}, err
	}
	return echem.Equations{Algebraic: echem.VariableMap{names.XAvgSurfacePotentialDifference(d): e}}, nil
}
