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

// Package convection contains submodels for electrolyte convection.
package convection

import (
	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// NoConvection is a submodel for an electrolyte at rest.
type NoConvection struct {
	echem.Base
}

// NewNoConvection returns a submodel without convection.
func NewNoConvection(param *echem.ParameterSet) NoConvection {
	return NoConvection{echem.NewBase(param, echem.None)}
}

// Name implements echem.Submodel.
func (NoConvection) Name() string { return "no convection" }

// FundamentalVariables implements echem.Submodel.
func (NoConvection) FundamentalVariables() (echem.VariableMap, error) {
	return echem.VariableMap{
		names.VolumeAveragedVelocity:      echem.Constant(0),
		names.SeparatorTransverseVelocity: echem.Constant(0),
	}, nil
}
