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

package porosity_test

import (
	"math"
	"testing"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/internal/echemtest"
	"github.com/spatialmodel/echem/leadacid"
	"github.com/spatialmodel/echem/science/names"
	"github.com/spatialmodel/echem/science/porosity"
)

func currents(jn, jp float64) echemtest.Fixed {
	return echemtest.Constants(map[string]float64{
		names.XAvgInterfacialCurrent(echem.Negative): jn,
		names.XAvgInterfacialCurrent(echem.Positive): jp,
	})
}

func TestPorosity(t *testing.T) {
	p := leadacid.DefaultParameters()
	for _, test := range []struct {
		name    string
		s       echem.Submodel
		inputs  []echem.Submodel
		states  map[string]string
		missing string
	}{
		{
			name: "constant",
			s:    porosity.NewConstant(p),
		},
		{
			name:   "leading order",
			s:      porosity.NewLeadingOrder(p),
			inputs: []echem.Submodel{currents(100, -100)},
			states: map[string]string{
				names.XAvgPorosity(echem.Negative): "rhs",
				names.XAvgPorosity(echem.Positive): "rhs",
			},
			missing: names.XAvgInterfacialCurrent(echem.Negative),
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			b, err := echemtest.Build(t, echemtest.New(t, p), append([]echem.Submodel{test.s}, test.inputs...)...)
			if err != nil {
				t.Fatal(err)
			}
			echemtest.CheckStates(t, b, test.states)
			for _, d := range echem.Domains {
				for _, name := range []string{names.Porosity(d), names.XAvgPorosity(d)} {
					if _, ok := b.Variable(name); !ok {
						t.Errorf("%q is not defined", name)
					}
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

func TestConstant(t *testing.T) {
	p := leadacid.DefaultParameters()
	b, err := echemtest.Build(t, echemtest.New(t, p), porosity.NewConstant(p))
	if err != nil {
		t.Fatal(err)
	}
	for d, want := range map[echem.Domain]float64{echem.Negative: 0.53, echem.Separator: 0.92, echem.Positive: 0.57} {
		if eps := echemtest.Float(t, b, names.Porosity(d), nil); eps != want {
			t.Errorf("%s porosity %g != %g", d, eps, want)
		}
	}
}

func TestLeadingOrderRate(t *testing.T) {
	p := leadacid.DefaultParameters()
	b, err := echemtest.Build(t, echemtest.New(t, p), porosity.NewLeadingOrder(p), currents(100, -100))
	if err != nil {
		t.Fatal(err)
	}
	values := p.Values()
	values[names.XAvgInterfacialCurrent(echem.Negative)] = 100.0
	values[names.XAvgInterfacialCurrent(echem.Positive)] = -100.0
	const f = 96485.33212
	for d, want := range map[echem.Domain]float64{
		// Discharge fills the pores of both electrodes with lead sulfate.
		echem.Negative: -3.03e-5 * 100 / f,
		echem.Positive: -2.35e-5 * 100 / f,
	} {
		rate, err := b.Rhs()[names.XAvgPorosity(d)].Evaluate(values, p)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(rate.(float64)-want) > 1e-12*math.Abs(want) {
			t.Errorf("%s porosity rate %v != %g", d, rate, want)
		}
	}
	ic := b.InitialConditions()
	if got := ic[names.XAvgPorosity(echem.Negative)].String(); got != echem.Ref(names.InitialPorosity(echem.Negative)) {
		t.Errorf("negative initial porosity %q", got)
	}
	if _, ok := ic[names.XAvgPorosity(echem.Separator)]; ok {
		t.Error("the separator porosity is a state")
	}
}
