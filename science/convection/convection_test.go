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

package convection_test

import (
	"testing"

	"github.com/spatialmodel/echem/internal/echemtest"
	"github.com/spatialmodel/echem/leadacid"
	"github.com/spatialmodel/echem/science/convection"
	"github.com/spatialmodel/echem/science/names"
)

func TestNoConvection(t *testing.T) {
	p := leadacid.DefaultParameters()
	b, err := echemtest.Build(t, echemtest.New(t, p), convection.NewNoConvection(p))
	if err != nil {
		t.Fatal(err)
	}
	echemtest.CheckStates(t, b, nil)
	for _, name := range []string{names.VolumeAveragedVelocity, names.SeparatorTransverseVelocity} {
		if v := echemtest.Float(t, b, name, nil); v != 0 {
			t.Errorf("%s = %g", name, v)
		}
	}
}
