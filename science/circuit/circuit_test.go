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

package circuit_test

import (
	"math"
	"testing"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/internal/echemtest"
	"github.com/spatialmodel/echem/lithiumion"
	"github.com/spatialmodel/echem/science/circuit"
	"github.com/spatialmodel/echem/science/names"
)

// area is the electrode area of the default lithium-ion cell [m2].
const area = 0.137 * 0.207

func TestCircuit(t *testing.T) {
	p := lithiumion.DefaultParameters()
	voltage := echemtest.Constants(map[string]float64{names.TerminalVoltage: 3.7})
	for _, test := range []struct {
		name    string
		s       echem.Submodel
		inputs  []echem.Submodel
		states  map[string]string
		missing string
	}{
		{
			name:   "current",
			s:      circuit.NewCurrentControl(p),
			states: map[string]string{names.DischargeCapacity: "rhs"},
		},
		{
			name:   "voltage",
			s:      circuit.NewVoltageControl(p),
			inputs: []echem.Submodel{voltage},
			states: map[string]string{
				names.DischargeCapacity:   "rhs",
				names.TotalCurrentDensity: "algebraic",
			},
			missing: names.TerminalVoltage,
		},
		{
			name:   "power",
			s:      circuit.NewPowerControl(p),
			inputs: []echem.Submodel{voltage},
			states: map[string]string{
				names.DischargeCapacity:   "rhs",
				names.TotalCurrentDensity: "algebraic",
			},
			missing: names.TerminalVoltage,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			b, err := echemtest.Build(t, echemtest.New(t, p), append([]echem.Submodel{test.s}, test.inputs...)...)
			if err != nil {
				t.Fatal(err)
			}
			echemtest.CheckStates(t, b, test.states)
			for state := range test.states {
				if _, ok := b.InitialConditions()[state]; !ok {
					t.Errorf("no initial condition for %q", state)
				}
			}
			if test.missing == "" {
				return
			}
			_, err = echemtest.Build(t, echemtest.New(t, p), test.s)
			echemtest.CheckMissing(t, err, test.missing)
		})
	}
}

func TestCurrentControl(t *testing.T) {
	p := lithiumion.DefaultParameters()
	b, err := echemtest.Build(t, echemtest.New(t, p), circuit.NewCurrentControl(p))
	if err != nil {
		t.Fatal(err)
	}
	values := map[string]interface{}{"t": 10.0}
	if i := echemtest.Float(t, b, names.Current, values); i != lithiumion.TypicalCurrent {
		t.Errorf("current %g != %g", i, lithiumion.TypicalCurrent)
	}
	want := lithiumion.TypicalCurrent / area
	if i := echemtest.Float(t, b, names.TotalCurrentDensity, values); math.Abs(i-want) > 1e-12*want {
		t.Errorf("current density %g != %g", i, want)
	}
	rhs, err := b.Rhs()[names.DischargeCapacity].Evaluate(map[string]interface{}{names.Current: 7200.0}, p)
	if err != nil {
		t.Fatal(err)
	}
	if rhs.(float64) != 2 {
		t.Errorf("capacity rate %v A h/s, want 2", rhs)
	}
}

func TestVoltageControlInitialCurrent(t *testing.T) {
	p := lithiumion.DefaultParameters()
	b, err := echemtest.Build(t, echemtest.New(t, p), circuit.NewVoltageControl(p),
		echemtest.Constants(map[string]float64{names.TerminalVoltage: 3.7}))
	if err != nil {
		t.Fatal(err)
	}
	ic := b.InitialConditions()[names.TotalCurrentDensity]
	values := map[string]interface{}{
		names.ElectrodeHeight: 0.137,
		names.ElectrodeWidth:  0.207,
	}
	v, err := ic.Evaluate(values, p)
	if err != nil {
		t.Fatal(err)
	}
	want := lithiumion.TypicalCurrent / area
	if math.Abs(v.(float64)-want) > 1e-12*want {
		t.Errorf("initial current density %v != %g", v, want)
	}
	// The residual vanishes at the voltage the hold asks for.
	res, err := b.Algebraic()[names.TotalCurrentDensity].Evaluate(map[string]interface{}{
		names.TerminalVoltage: 4.1, "t": 0.0,
	}, p)
	if err != nil {
		t.Fatal(err)
	}
	if res.(float64) != 0 {
		t.Errorf("residual %v at the held voltage", res)
	}
}
