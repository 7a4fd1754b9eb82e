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

package currentcollector_test

import (
	"math"
	"testing"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/internal/echemtest"
	"github.com/spatialmodel/echem/lithiumion"
	"github.com/spatialmodel/echem/science/currentcollector"
	"github.com/spatialmodel/echem/science/names"
)

func electrodes(current bool) echemtest.Fixed {
	v := map[string]float64{
		names.XAvgElectrodePotential(echem.Negative): 0.1,
		names.XAvgElectrodePotential(echem.Positive): 3.8,
	}
	if current {
		v[names.TotalCurrentDensity] = 24
	}
	return echemtest.Constants(v)
}

func TestCurrentCollector(t *testing.T) {
	p := lithiumion.DefaultParameters()
	for _, test := range []struct {
		name   string
		s      echem.Submodel
		states map[string]string
		bcs    int
	}{
		{
			name: "uniform",
			s:    currentcollector.NewUniform(p),
		},
		{
			name: "potential pair",
			s:    currentcollector.NewPotentialPair(p),
			states: map[string]string{
				names.CurrentCollectorPotential(echem.Negative): "algebraic",
				names.CurrentCollectorCurrentDensity:            "algebraic",
			},
			bcs: 2,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			b, err := echemtest.Build(t, echemtest.New(t, p), test.s, electrodes(true))
			if err != nil {
				t.Fatal(err)
			}
			echemtest.CheckStates(t, b, test.states)
			if n := len(b.BoundaryConditions()); n != test.bcs {
				t.Errorf("%d boundary conditions, want %d", n, test.bcs)
			}
			events := b.Events()
			if len(events) != 2 {
				t.Fatalf("events %+v", events)
			}
			for _, e := range events {
				if e.Name != "Minimum voltage" && e.Name != "Maximum voltage" {
					t.Errorf("unexpected event %q", e.Name)
				}
			}
			for _, name := range []string{names.TerminalVoltage, names.LocalVoltage,
				names.CurrentCollectorPotential(echem.Positive)} {
				if _, ok := b.Variable(name); !ok {
					t.Errorf("%q is not defined", name)
				}
			}

			_, err = echemtest.Build(t, echemtest.New(t, p), test.s,
				echemtest.Constants(map[string]float64{names.TotalCurrentDensity: 24}))
			echemtest.CheckMissing(t, err, names.XAvgElectrodePotential(echem.Negative))
		})
	}
}

func TestUniform(t *testing.T) {
	p := lithiumion.DefaultParameters()
	b, err := echemtest.Build(t, echemtest.New(t, p), currentcollector.NewUniform(p), electrodes(true))
	if err != nil {
		t.Fatal(err)
	}
	if v := echemtest.Float(t, b, names.TerminalVoltage, nil); math.Abs(v-3.7) > 1e-12 {
		t.Errorf("terminal voltage %g != 3.7", v)
	}
	if i := echemtest.Float(t, b, names.CurrentCollectorCurrentDensity, nil); i != 24 {
		t.Errorf("current collector current density %g != 24", i)
	}
	for _, e := range b.Events() {
		// 3.7 V lies inside the cut-offs of the default cell.
		v, err := e.Expression.Evaluate(map[string]interface{}{
			names.TerminalVoltage:    3.7,
			names.LowerVoltageCutoff: 3.105,
			names.UpperVoltageCutoff: 4.7,
		}, p)
		if err != nil {
			t.Fatal(err)
		}
		if v.(float64) <= 0 {
			t.Errorf("event %q triggered at 3.7 V", e.Name)
		}
	}

	_, err = echemtest.Build(t, echemtest.New(t, p), currentcollector.NewUniform(p), electrodes(false))
	echemtest.CheckMissing(t, err, names.TotalCurrentDensity)
}

func TestPotentialPairBoundaryConditions(t *testing.T) {
	p := lithiumion.DefaultParameters()
	b, err := echemtest.Build(t, echemtest.New(t, p), currentcollector.NewPotentialPair(p), electrodes(true))
	if err != nil {
		t.Fatal(err)
	}
	bcs := b.BoundaryConditions()
	neg := bcs[names.CurrentCollectorPotential(echem.Negative)]
	if neg.Left.Type != echem.Dirichlet || neg.Right.Type != echem.Neumann {
		t.Errorf("negative tab conditions %+v", neg)
	}
	pos := bcs[names.CurrentCollectorPotential(echem.Positive)]
	if pos.Left.Type != echem.Neumann || pos.Right.Type != echem.Neumann {
		t.Errorf("positive tab conditions %+v", pos)
	}
	v, err := pos.Right.Value.Evaluate(map[string]interface{}{
		names.TotalCurrentDensity:                          24.0,
		names.CurrentCollectorConductivity(echem.Positive): 3.55e7,
	}, p)
	if err != nil {
		t.Fatal(err)
	}
	if want := 24 / 3.55e7; v.(float64) != want {
		t.Errorf("positive tab flux %v != %g", v, want)
	}
	if _, err := b.Evaluate(names.TerminalVoltage, nil); err == nil {
		t.Error("evaluated a tab value without a discretisation")
	}

	_, err = echemtest.Build(t, echemtest.New(t, p), currentcollector.NewPotentialPair(p), electrodes(false))
	echemtest.CheckMissing(t, err, names.TotalCurrentDensity)
}
