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

// Package thermal contains submodels for the cell temperature.
package thermal

import (
	"fmt"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// Isothermal holds the cell at the ambient temperature.
type Isothermal struct {
	echem.Base
}

// NewIsothermal returns an isothermal submodel.
func NewIsothermal(param *echem.ParameterSet) Isothermal {
	return Isothermal{echem.NewBase(param, echem.None)}
}

// Name implements echem.Submodel.
func (Isothermal) Name() string { return "isothermal" }

// FundamentalVariables implements echem.Submodel.
func (Isothermal) FundamentalVariables() (echem.VariableMap, error) {
	v := echem.VariableMap{names.XAvgCellTemperature: echem.Exprf("%s", names.AmbientTemperature)}
	v[names.CellTemperature] = echem.Exprf("%s", names.XAvgCellTemperature)
	v[names.VolumeAvgCellTemperature] = echem.Exprf("%s", names.XAvgCellTemperature)
	return v, nil
}

// heating returns the x-averaged total heat source: the irreversible part
// of the power drawn from the cell, spread over the cell thickness.
func heating(vars *echem.VariableSet) (echem.VariableMap, error) {
	ocpN := names.OpenCircuitPotential(echem.Negative)
	ocpP := names.OpenCircuitPotential(echem.Positive)
	ccd := names.CurrentCollectorCurrentDensity
	if err := vars.Require(ccd, ocpN, ocpP, names.TerminalVoltage); err != nil {
		return nil, err
	}
	e, err := echem.NewExpression(fmt.Sprintf("%s * (%s - %s - %s) / %s",
		echem.Ref(ccd), echem.Ref(ocpP), echem.Ref(ocpN), echem.Ref(names.TerminalVoltage),
		names.CellThickness()))
	if err != nil {
		return nil, err
	}
	return echem.VariableMap{names.XAvgTotalHeating: e}, nil
}

// XLumped solves for a single cell temperature, uniform through the
// cell thickness, cooled at its surfaces.
type XLumped struct {
	echem.Base
}

// NewXLumped returns an x-lumped thermal submodel.
func NewXLumped(param *echem.ParameterSet) XLumped {
	return XLumped{echem.NewBase(param, echem.None)}
}

// Name implements echem.Submodel.
func (XLumped) Name() string { return "x-lumped thermal" }

// FundamentalVariables implements echem.Submodel.
func (XLumped) FundamentalVariables() (echem.VariableMap, error) {
	v := echem.VariableMap{names.XAvgCellTemperature: echem.StateVariable(names.XAvgCellTemperature)}
	v[names.CellTemperature] = echem.Exprf("%s", names.XAvgCellTemperature)
	v[names.VolumeAvgCellTemperature] = echem.Exprf("%s", names.XAvgCellTemperature)
	return v, nil
}

// CoupledVariables implements echem.Submodel.
func (XLumped) CoupledVariables(vars *echem.VariableSet) (echem.VariableMap, error) {
	return heating(vars)
}

// Equations implements echem.Submodel.
func (XLumped) Equations(vars *echem.VariableSet) (echem.Equations, error) {
	e, err := echem.NewExpression(fmt.Sprintf("(%s - %s * (%s - %s) / %s) / %s",
		echem.Ref(names.XAvgTotalHeating), echem.Ref(names.HeatTransferCoefficient),
		echem.Ref(names.XAvgCellTemperature), echem.Ref(names.AmbientTemperature),
		names.CellThickness(), echem.Ref(names.VolumetricHeatCapacity)))
	if err != nil {
		return echem.Equations{}, err
	}
	return echem.Equations{Rhs: echem.VariableMap{names.XAvgCellTemperature: e}}, nil
}

// InitialConditions implements echem.Submodel.
func (XLumped) InitialConditions(vars *echem.VariableSet) (echem.VariableMap, error) {
	return echem.VariableMap{names.XAvgCellTemperature: echem.Exprf("%s", names.AmbientTemperature)}, nil
}

// XFull resolves the temperature through the cell thickness, with heat
// conducted to cooled surfaces at both current collectors.
type XFull struct {
	echem.Base
}

// NewXFull returns an x-full thermal submodel.
func NewXFull(param *echem.ParameterSet) XFull {
	return XFull{echem.NewBase(param, echem.None)}
}

// Name implements echem.Submodel.
func (XFull) Name() string { return "x-full thermal" }

// FundamentalVariables implements echem.Submodel.
func (XFull) FundamentalVariables() (echem.VariableMap, error) {
	v := echem.VariableMap{names.CellTemperature: echem.StateVariable(names.CellTemperature)}
	v[names.XAvgCellTemperature] = echem.Exprf("x_average(%s)", names.CellTemperature)
	v[names.VolumeAvgCellTemperature] = echem.Exprf("%s", names.XAvgCellTemperature)
	return v, nil
}

// CoupledVariables implements echem.Submodel.
func (XFull) CoupledVariables(vars *echem.VariableSet) (echem.VariableMap, error) {
	return heating(vars)
}

// Equations implements echem.Submodel.
func (XFull) Equations(vars *echem.VariableSet) (echem.Equations, error) {
	e, err := echem.NewExpression(fmt.Sprintf("(%s * laplacian(%s) + %s) / %s",
		echem.Ref(names.ThermalConductivity), echem.Ref(names.CellTemperature),
		echem.Ref(names.XAvgTotalHeating), echem.Ref(names.VolumetricHeatCapacity)))
	if err != nil {
		return echem.Equations{}, err
	}
	return echem.Equations{Rhs: echem.VariableMap{names.CellTemperature: e}}, nil
}

// BoundaryConditions implements echem.Submodel. Heat leaves through both
// faces in proportion to the excess over the ambient temperature.
func (XFull) BoundaryConditions(vars *echem.VariableSet) (map[string]echem.BoundaryCondition, error) {
	flux := func(side, sign string) (echem.Expression, error) {
		return echem.NewExpression(fmt.Sprintf("%s%s * (%s(%s) - %s) / %s", sign,
			echem.Ref(names.HeatTransferCoefficient), side, echem.Ref(names.CellTemperature),
			echem.Ref(names.AmbientTemperature), echem.Ref(names.ThermalConductivity)))
	}
	left, err := flux("boundary_left", "")
	if err != nil {
		return nil, err
	}
	right, err := flux("boundary_right", "- ")
	if err != nil {
		return nil, err
	}
	return map[string]echem.BoundaryCondition{
		names.CellTemperature: {
			Left:  echem.Condition{Value: left, Type: echem.Neumann},
			Right: echem.Condition{Value: right, Type: echem.Neumann},
		},
	}, nil
}

// InitialConditions implements echem.Submodel.
func (XFull) InitialConditions(vars *echem.VariableSet) (echem.VariableMap, error) {
	return echem.VariableMap{names.CellTemperature: echem.Exprf("%s", names.AmbientTemperature)}, nil
}
