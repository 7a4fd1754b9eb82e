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

// Package fickian contains particle submodels in which lithium moves
// through the active material particles by Fickian diffusion.
package fickian

import (
	"fmt"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// SingleParticle describes a single spherical particle per electrode,
// standing in for every particle of that electrode.
type SingleParticle struct {
	echem.Base
}

// NewSingleParticle returns a Fickian single-particle submodel for
// electrode d.
func NewSingleParticle(param *echem.ParameterSet, d echem.Domain) SingleParticle {
	return SingleParticle{echem.NewBase(param, d)}
}

// Name implements echem.Submodel.
func (SingleParticle) Name() string { return "Fickian single particle" }

// FundamentalVariables implements echem.Submodel.
func (p SingleParticle) FundamentalVariables() (echem.VariableMap, error) {
	d := p.Domain()
	if !d.IsElectrode() {
		return nil, fmt.Errorf("fickian: no particles in domain %s", d)
	}
	c := names.XAvgParticleConcentration(d)
	surf := names.XAvgParticleSurfaceConcentration(d)
	v := echem.VariableMap{c: echem.StateVariable(c)}
	v[names.ParticleConcentration(d)] = echem.Exprf("%s", c)
	v[surf] = echem.Exprf("surf(%s)", c)
	v[names.ParticleSurfaceConcentration(d)] = echem.Exprf("%s", surf)
	v[names.ParticleFlux(d)] = echem.Exprf("- %s * grad(%s)", names.ParticleDiffusivity(d), c)
	return v, nil
}

// Equations implements echem.Submodel.
func (p SingleParticle) Equations(vars *echem.VariableSet) (echem.Equations, error) {
	d := p.Domain()
	return echem.Equations{Rhs: echem.VariableMap{
		names.XAvgParticleConcentration(d): echem.Exprf("-div(%s)", names.ParticleFlux(d)),
	}}, nil
}

// BoundaryConditions implements echem.Submodel. There is no flux at the
// particle centre; the flux at the surface is set by the interfacial
// current density.
func (p SingleParticle) BoundaryConditions(vars *echem.VariableSet) (map[string]echem.BoundaryCondition, error) {
	d := p.Domain()
	j := names.XAvgInterfacialCurrent(d)
	if err := vars.Require(j); err != nil {
		return nil, fmt.Errorf("fickian: %w", err)
	}
	return map[string]echem.BoundaryCondition{
		names.XAvgParticleConcentration(d): {
			Left: echem.Condition{Value: echem.Constant(0), Type: echem.Neumann},
			Right: echem.Condition{
				Value: echem.Exprf("- %s / (%s * %s * %s)", j,
					names.SurfaceAreaDensity(d), names.FaradayConstant, names.ParticleDiffusivity(d)),
				Type: echem.Neumann,
			},
		},
	}, nil
}

// InitialConditions implements echem.Submodel.
func (p SingleParticle) InitialConditions(vars *echem.VariableSet) (echem.VariableMap, error) {
	d := p.Domain()
	return echem.VariableMap{
		names.XAvgParticleConcentration(d): echem.Exprf("%s", names.InitialConcentration(d)),
	}, nil
}
