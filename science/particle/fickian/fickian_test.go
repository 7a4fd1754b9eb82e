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

package fickian

import (
	"testing"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

func TestFundamentalVariables(t *testing.T) {
	v, err := NewSingleParticle(nil, echem.Positive).FundamentalVariables()
	if err != nil {
		t.Fatal(err)
	}
	c := names.XAvgParticleConcentration(echem.Positive)
	if !v[c].IsState() {
		t.Errorf("%q is not a state", c)
	}
	for _, name := range []string{
		names.ParticleConcentration(echem.Positive),
		names.XAvgParticleSurfaceConcentration(echem.Positive),
		names.ParticleSurfaceConcentration(echem.Positive),
		names.ParticleFlux(echem.Positive),
	} {
		e, ok := v[name]
		if !ok {
			t.Errorf("missing %q", name)
			continue
		}
		if e.IsState() {
			t.Errorf("%q should not be a state", name)
		}
	}
	if _, err := NewSingleParticle(nil, echem.Separator).FundamentalVariables(); err == nil {
		t.Error("separator particle: expected an error")
	}
}
