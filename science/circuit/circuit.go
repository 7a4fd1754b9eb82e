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

// Package circuit contains external circuit submodels, which set the
// condition (current, voltage or power) that drives the cell.
package circuit

import (
	"fmt"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// secondsPerHour converts ampere seconds to ampere hours.
const secondsPerHour = 3600

// base tracks the discharge capacity, which every operating mode defines.
type base struct {
	echem.Base
}

func (b base) current() string { return echem.Ref(names.Current) }

func (b base) area() string {
	return fmt.Sprintf("(%s * %s)", echem.Ref(names.ElectrodeHeight), echem.Ref(names.ElectrodeWidth))
}

func (b base) dischargeCapacity() echem.VariableMap {
	return echem.VariableMap{names.DischargeCapacity: echem.StateVariable(names.DischargeCapacity)}
}

func (b base) capacityRhs() (echem.VariableMap, error) {
	e, err := echem.NewExpression(fmt.Sprintf("%s / %d", b.current(), secondsPerHour))
	if err != nil {
		return nil, err
	}
	return echem.VariableMap{names.DischargeCapacity: e}, nil
}

// expressions parses texts into v under the matching names.
func expressions(v echem.VariableMap, texts map[string]string) (echem.VariableMap, error) {
	for name, text := range texts {
		e, err := echem.NewExpression(text)
		if err != nil {
			return nil, fmt.Errorf("circuit: %s: %w", name, err)
		}
		v[name] = e
	}
	return v, nil
}

// InitialConditions implements echem.Submodel.
func (b base) InitialConditions(vars *echem.VariableSet) (echem.VariableMap, error) {
	return echem.VariableMap{names.DischargeCapacity: echem.Constant(0)}, nil
}

// CurrentControl prescribes the cell current with the functional
// parameter "Current function" of time.
type CurrentControl struct {
	base
}

// NewCurrentControl returns a current-controlled external circuit.
func NewCurrentControl(param *echem.ParameterSet) CurrentControl {
	return CurrentControl{base{echem.NewBase(param, echem.None)}}
}

// Name implements echem.Submodel.
func (CurrentControl) Name() string { return "current control" }

// FundamentalVariables implements echem.Submodel.
func (c CurrentControl) FundamentalVariables() (echem.VariableMap, error) {
	i := echem.Call(names.CurrentFunction, echem.Ref("t"))
	return expressions(c.dischargeCapacity(), map[string]string{
		names.Current:             i,
		names.TotalCurrentDensity: fmt.Sprintf("%s / %s", i, c.area()),
	})
}

// Equations implements echem.Submodel.
func (c CurrentControl) Equations(vars *echem.VariableSet) (echem.Equations, error) {
	rhs, err := c.capacityRhs()
	if err != nil {
		return echem.Equations{}, err
	}
	return echem.Equations{Rhs: rhs}, nil
}

// control is shared by the modes where the current density is an
// algebraic state.
type control struct {
	base
}

func (c control) FundamentalVariables() (echem.VariableMap, error) {
	v := c.dischargeCapacity()
	v[names.TotalCurrentDensity] = echem.StateVariable(names.TotalCurrentDensity)
	return expressions(v, map[string]string{
		names.Current: fmt.Sprintf("%s * %s", echem.Ref(names.TotalCurrentDensity), c.area()),
	})
}

func (c control) InitialConditions(vars *echem.VariableSet) (echem.VariableMap, error) {
	v, _ := c.base.InitialConditions(vars)
	return expressions(v, map[string]string{
		names.TotalCurrentDensity: fmt.Sprintf("%s / %s", echem.Call(names.CurrentFunction, "0"), c.area()),
	})
}

func (c control) equations(vars *echem.VariableSet, constraint string) (echem.Equations, error) {
	if err := vars.Require(names.TerminalVoltage); err != nil {
		return echem.Equations{}, err
	}
	e, err := echem.NewExpression(constraint)
	if err != nil {
		return echem.Equations{}, err
	}
	rhs, err := c.capacityRhs()
	if err != nil {
		return echem.Equations{}, err
	}
	return echem.Equations{
		Rhs:       rhs,
		Algebraic: echem.VariableMap{names.TotalCurrentDensity: e},
	}, nil
}

// VoltageControl holds the terminal voltage at the functional parameter
// "Voltage function" of time; the current is solved for.
type VoltageControl struct {
	control
}

// NewVoltageControl returns a voltage-controlled external circuit.
func NewVoltageControl(param *echem.ParameterSet) VoltageControl {
	return VoltageControl{control{base{echem.NewBase(param, echem.None)}}}
}

// Name implements echem.Submodel.
func (VoltageControl) Name() string { return "voltage control" }

// Equations implements echem.Submodel.
func (c VoltageControl) Equations(vars *echem.VariableSet) (echem.Equations, error) {
	return c.equations(vars, fmt.Sprintf("%s - %s",
		echem.Ref(names.TerminalVoltage), echem.Call(names.VoltageFunction, echem.Ref("t"))))
}

// PowerControl holds the delivered power at the functional parameter
// "Power function" of time; the current is solved for.
type PowerControl struct {
	control
}

// NewPowerControl returns a power-controlled external circuit.
func NewPowerControl(param *echem.ParameterSet) PowerControl {
	return PowerControl{control{base{echem.NewBase(param, echem.None)}}}
}

// Name implements echem.Submodel.
func (PowerControl) Name() string { return "power control" }

// Equations implements echem.Submodel.
func (c PowerControl) Equations(vars *echem.VariableSet) (echem.Equations, error) {
	return c.equations(vars, fmt.Sprintf("%s * %s - %s",
		echem.Ref(names.TerminalVoltage), c.current(), echem.Call(names.PowerFunction, echem.Ref("t"))))
}
