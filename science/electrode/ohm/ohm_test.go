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

package ohm_test

import (
	"errors"
	"math"
	"testing"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/internal/echemtest"
	"github.com/spatialmodel/echem/lithiumion"
	"github.com/spatialmodel/echem/science/electrode/ohm"
	"github.com/spatialmodel/echem/science/names"
)

const ccd = 24.0

func inputs(drop string) echemtest.Fixed {
	v := map[string]float64{
		names.CurrentCollectorCurrentDensity:                 ccd,
		names.XAvgSurfacePotentialDifference(echem.Positive): 3.9,
		names.XAvgElectrolytePotential(echem.Positive):       -0.1,
	}
	delete(v, drop)
	return echemtest.Constants(v)
}

func TestLeadingOrder(t *testing.T) {
	p := lithiumion.DefaultParameters()
	n, s, pos := 1e-4, 2.5e-5, 1e-4
	for _, test := range []struct {
		d       echem.Domain
		defines []string
		current map[float64]float64
		missing []string
	}{
		{
			d: echem.Negative,
			defines: []string{names.XAvgElectrodePotential(echem.Negative),
				names.ElectrodePotential(echem.Negative), names.ElectrodeCurrentDensity(echem.Negative)},
			// The current leaves the negative collector and is all
			// transferred by the separator.
			current: map[float64]float64{0: ccd, n / 2: ccd / 2, n: 0},
			missing: []string{names.CurrentCollectorCurrentDensity},
		},
		{
			d: echem.Positive,
			defines: []string{names.XAvgElectrodePotential(echem.Positive),
				names.ElectrodePotential(echem.Positive), names.ElectrodeCurrentDensity(echem.Positive)},
			current: map[float64]float64{n + s: 0, n + s + pos/2: ccd / 2, n + s + pos: ccd},
			missing: []string{
				names.CurrentCollectorCurrentDensity,
				names.XAvgSurfacePotentialDifference(echem.Positive),
				names.XAvgElectrolytePotential(echem.Positive),
			},
		},
	} {
		t.Run(test.d.String(), func(t *testing.T) {
			b, err := echemtest.Build(t, echemtest.New(t, p), ohm.NewLeadingOrder(p, test.d), inputs(""))
			if err != nil {
				t.Fatal(err)
			}
			echemtest.CheckStates(t, b, nil)
			for _, name := range test.defines {
				if b.Owner(name) != "0" {
					t.Errorf("%q is owned by %q", name, b.Owner(name))
				}
			}
			x := "x_" + test.d.Abbrev()
			for xv, want := range test.current {
				i := echemtest.Float(t, b, names.ElectrodeCurrentDensity(test.d), map[string]interface{}{x: xv})
				if math.Abs(i-want) > 1e-9*ccd {
					t.Errorf("current density at %s = %g: %g != %g", x, xv, i, want)
				}
			}
			for _, m := range test.missing {
				_, err := echemtest.Build(t, echemtest.New(t, p), ohm.NewLeadingOrder(p, test.d), inputs(m))
				echemtest.CheckMissing(t, err, m)
			}
		})
	}
}

func TestLeadingOrderPositivePotential(t *testing.T) {
	p := lithiumion.DefaultParameters()
	b, err := echemtest.Build(t, echemtest.New(t, p),
		ohm.NewLeadingOrder(p, echem.Negative), ohm.NewLeadingOrder(p, echem.Positive), inputs(""))
	if err != nil {
		t.Fatal(err)
	}
	if phi := echemtest.Float(t, b, names.XAvgElectrodePotential(echem.Negative), nil); phi != 0 {
		t.Errorf("negative electrode potential %g != 0", phi)
	}
	if phi := echemtest.Float(t, b, names.XAvgElectrodePotential(echem.Positive), nil); math.Abs(phi-3.8) > 1e-12 {
		t.Errorf("positive electrode potential %g != 3.8", phi)
	}
}

func TestLeadingOrderSeparator(t *testing.T) {
	p := lithiumion.DefaultParameters()
	_, err := echemtest.Build(t, echemtest.New(t, p), ohm.NewLeadingOrder(p, echem.Separator), inputs(""))
	if err == nil {
		t.Fatal("built a solid phase in the separator")
	}
	if errors.Is(err, echem.ErrMissingDependency) {
		t.Errorf("got a missing dependency instead of a domain error: %v", err)
	}
}
