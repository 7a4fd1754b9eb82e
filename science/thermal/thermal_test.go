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

package thermal_test

import (
	"errors"
	"math"
	"testing"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/lithiumion"
	"github.com/spatialmodel/echem/science/names"
	"github.com/spatialmodel/echem/science/thermal"
)

// cell supplies the electrical variables the thermal submodels need.
type cell struct {
	echem.Base
}

func (cell) Name() string { return "fixed cell" }

func (cell) FundamentalVariables() (echem.VariableMap, error) {
	v := echem.VariableMap{names.CurrentCollectorCurrentDensity: echem.Constant(24)}
	v[names.OpenCircuitPotential(echem.Negative)] = echem.Constant(0.2)
	v[names.OpenCircuitPotential(echem.Positive)] = echem.Constant(4)
	v[names.TerminalVoltage] = echem.Constant(3.7)
	return v, nil
}

func build(t *testing.T, s echem.Submodel, withCell bool) (*echem.BuiltModel, error) {
	m := echem.New("thermal test", echem.DefaultOptions(), lithiumion.DefaultParameters())
	if err := m.SetSubmodel("thermal", s); err != nil {
		t.Fatal(err)
	}
	if withCell {
		if err := m.SetSubmodel("cell", cell{}); err != nil {
			t.Fatal(err)
		}
	}
	return m.Build()
}

func TestXLumped(t *testing.T) {
	p := lithiumion.DefaultParameters()
	b, err := build(t, thermal.NewXLumped(p), true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Rhs()[names.XAvgCellTemperature]; !ok {
		t.Error("no equation for the cell temperature")
	}
	q, err := b.Evaluate(names.XAvgTotalHeating, nil)
	if err != nil {
		t.Fatal(err)
	}
	// 24 A/m2 * 0.1 V over 225 um.
	if want := 24 * 0.1 / 2.25e-4; math.Abs(q.(float64)-want) > 1e-6*want {
		t.Errorf("heating %v != %g", q, want)
	}
}

func TestXFull(t *testing.T) {
	p := lithiumion.DefaultParameters()
	b, err := build(t, thermal.NewXFull(p), true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.BoundaryConditions()[names.CellTemperature]; !ok {
		t.Error("no boundary condition for the cell temperature")
	}
	if states := b.States(); len(states) != 1 || states[0] != names.CellTemperature {
		t.Errorf("states %v", states)
	}
}

func TestHeatingNeedsCell(t *testing.T) {
	p := lithiumion.DefaultParameters()
	for _, s := range []echem.Submodel{thermal.NewXLumped(p), thermal.NewXFull(p)} {
		if _, err := build(t, s, false); !errors.Is(err, echem.ErrMissingDependency) {
			t.Errorf("%s: want ErrMissingDependency, have %v", s.Name(), err)
		}
	}
}

func TestIsothermal(t *testing.T) {
	p := lithiumion.DefaultParameters()
	b, err := build(t, thermal.NewIsothermal(p), false)
	if err != nil {
		t.Fatal(err)
	}
	v, err := b.Evaluate(names.VolumeAvgCellTemperature, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != 298.15 {
		t.Errorf("temperature %v != 298.15", v)
	}
}
