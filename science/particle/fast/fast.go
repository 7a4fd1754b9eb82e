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

// Package fast contains particle submodels in the limit of fast
// diffusion, where the concentration within each particle is uniform.
package fast

import (
	"fmt"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// SingleParticle describes a single particle per electrode with uniform
// concentration.
type SingleParticle struct {
	echem.Base
}

// NewSingleParticle returns a fast-diffusion single-particle submodel for
// electrode d.
func NewSingleParticle(param *echem.ParameterSet, d echem.Domain) SingleParticle {
	return SingleParticle{echem.NewBase(param, d)}
}

// Name implements echem.Submodel.
func (SingleParticle) Name() string { return "fast diffusion single particle" }

// FundamentalVariables implements echem.Submodel.
func (p SingleParticle) FundamentalVariables() (echem.VariableMap, error) {
	d := p.Domain()
	if !d.IsElectrode() {
		return nil, fmt.Errorf("fast: no particles in domain %s", d)
	}
	c := names.XAvgParticleConcentration(d)
	v := echem.VariableMap{c: echem.StateVariable(c)}
	v[names.ParticleConcentration(d)] = echem.Exprf("%s", c)
	v[names.XAvgParticleSurfaceConcentration(d)] = echem.Exprf("%s", c)
	v[names.ParticleSurfaceConcentration(d)] = echem.Exprf("%s", c)
	return v, nil
}

// Equations implements echem.Submodel. The particle concentration changes
// with the flux through the particle surface, 3/R times the surface flux.
func (p SingleParticle) Equations(vars *echem.VariableSet) (echem.Equations, error) {
	d := p.Domain()
	j := names.XAvgInterfacialCurrent(d)
	if err := vars.Require(j); err != nil {
		return echem.Equations{}, fmt.Errorf("fast: %w", err)
	}
	return echem.Equations{Rhs: echem.VariableMap{
		names.XAvgParticleConcentration(d): echem.Exprf("-3 * %s / (%s * %s * %s)", j,
			names.SurfaceAreaDensity(d), names.FaradayConstant, names.ParticleRadius(d)),
	}}, nil
}

// InitialConditions implements echem.Submodel.
func (p SingleParticle) InitialConditions(vars *echem.VariableSet) (echem.VariableMap, error) {
	d := p.Domain()
	return echem.VariableMap{
		names.XAvgParticleConcentration(d): echem.Exprf("%s", names.InitialConcentration(d)),
	}, nil
}
