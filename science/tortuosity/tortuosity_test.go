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

package tortuosity_test

import (
	"math"
	"testing"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/internal/echemtest"
	"github.com/spatialmodel/echem/lithiumion"
	"github.com/spatialmodel/echem/science/names"
	"github.com/spatialmodel/echem/science/porosity"
	"github.com/spatialmodel/echem/science/tortuosity"
)

func TestBruggeman(t *testing.T) {
	p := lithiumion.DefaultParameters()
	eps := map[echem.Domain]float64{echem.Negative: 0.3, echem.Separator: 1, echem.Positive: 0.3}
	for _, test := range []struct {
		phase tortuosity.Phase
		name  func(echem.Domain) string
		want  map[echem.Domain]float64
	}{
		{
			phase: tortuosity.Electrolyte,
			name:  names.ElectrolyteTortuosity,
			want: map[echem.Domain]float64{
				echem.Negative:  math.Pow(0.3, 1.5),
				echem.Separator: 1,
				echem.Positive:  math.Pow(0.3, 1.5),
			},
		},
		{
			phase: tortuosity.Electrode,
			name:  names.ElectrodeTortuosity,
			want: map[echem.Domain]float64{
				echem.Negative: math.Pow(0.7, 1.5),
				echem.Positive: math.Pow(0.7, 1.5),
			},
		},
	} {
		t.Run(test.phase.String(), func(t *testing.T) {
			b, err := echemtest.Build(t, echemtest.New(t, p),
				tortuosity.NewBruggeman(p, test.phase), porosity.NewConstant(p))
			if err != nil {
				t.Fatal(err)
			}
			echemtest.CheckStates(t, b, nil)
			for _, d := range echem.Domains {
				want, ok := test.want[d]
				if !ok {
					if _, defined := b.Variable(test.name(d)); defined {
						t.Errorf("%q is defined", test.name(d))
					}
					continue
				}
				if got := echemtest.Float(t, b, test.name(d), nil); math.Abs(got-want) > 1e-12 {
					t.Errorf("%s tortuosity with porosity %g: %g != %g", d, eps[d], got, want)
				}
			}

			_, err = echemtest.Build(t, echemtest.New(t, p), tortuosity.NewBruggeman(p, test.phase))
			echemtest.CheckMissing(t, err, names.Porosity(echem.Negative))
		})
	}
}
