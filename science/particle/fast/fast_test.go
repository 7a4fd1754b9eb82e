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

package fast_test

import (
	"errors"
	"math"
	"testing"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/internal/echemtest"
	"github.com/spatialmodel/echem/lithiumion"
	"github.com/spatialmodel/echem/science/names"
	"github.com/spatialmodel/echem/science/particle/fast"
)

func TestSingleParticle(t *testing.T) {
	p := lithiumion.DefaultParameters()
	for _, test := range []struct {
		d       echem.Domain
		current float64
		initial float64
	}{
		{d: echem.Negative, current: 2.4e5, initial: 19986.609595075},
		{d: echem.Positive, current: -2.4e5, initial: 30730.7554385565},
	} {
		t.Run(test.d.String(), func(t *testing.T) {
			j := names.XAvgInterfacialCurrent(test.d)
			c := names.XAvgParticleConcentration(test.d)
			b, err := echemtest.Build(t, echemtest.New(t, p), fast.NewSingleParticle(p, test.d),
				echemtest.Constants(map[string]float64{j: test.current}))
			if err != nil {
				t.Fatal(err)
			}
			echemtest.CheckStates(t, b, map[string]string{c: "rhs"})

			for _, name := range []string{names.ParticleConcentration(test.d),
				names.XAvgParticleSurfaceConcentration(test.d), names.ParticleSurfaceConcentration(test.d)} {
				v := echemtest.Float(t, b, name, map[string]interface{}{c: 1000.0})
				if v != 1000 {
					t.Errorf("%s = %g, want the particle concentration", name, v)
				}
			}

			values := p.Values()
			values[j] = test.current
			rate, err := b.Rhs()[c].Evaluate(values, p)
			if err != nil {
				t.Fatal(err)
			}
			// Lithium leaves the negative particles and enters the positive
			// ones on discharge.
			want := -3 * test.current / (1.8e5 * 96485.33212 * 1e-5)
			if math.Abs(rate.(float64)-want) > 1e-9*math.Abs(want) {
				t.Errorf("concentration rate %v != %g", rate, want)
			}

			ic, err := b.InitialConditions()[c].Evaluate(values, p)
			if err != nil {
				t.Fatal(err)
			}
			if ic.(float64) != test.initial {
				t.Errorf("initial concentration %v != %g", ic, test.initial)
			}

			_, err = echemtest.Build(t, echemtest.New(t, p), fast.NewSingleParticle(p, test.d))
			echemtest.CheckMissing(t, err, j)
		})
	}
}

func TestSingleParticleSeparator(t *testing.T) {
	p := lithiumion.DefaultParameters()
	_, err := echemtest.Build(t, echemtest.New(t, p), fast.NewSingleParticle(p, echem.Separator))
	if err == nil {
		t.Fatal("built particles in the separator")
	}
	if errors.Is(err, echem.ErrMissingDependency) {
		t.Errorf("got a missing dependency instead of a domain error: %v", err)
	}
}
