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

package diffusion_test

import (
	"errors"
	"math"
	"testing"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/internal/echemtest"
	"github.com/spatialmodel/echem/leadacid"
	"github.com/spatialmodel/echem/lithiumion"
	"github.com/spatialmodel/echem/science/electrolyte/diffusion"
	"github.com/spatialmodel/echem/science/names"
)

// model returns a model where rx is active in both electrodes.
func model(t *testing.T, p *echem.ParameterSet, rx echem.Reaction) *echem.Model {
	m := echemtest.New(t, p, rx)
	for _, d := range echem.Electrodes {
		err := m.Reactions().Activate(echem.ActiveReaction{
			Domain:         d,
			Reaction:       rx.Name,
			CurrentDensity: names.XAvgInterfacialCurrent(d),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	return m
}

// inputs returns the interfacial currents and porosities the kinetics and
// porosity submodels would supply, leaving out drop.
func inputs(drop string) echemtest.Fixed {
	v := map[string]float64{
		names.XAvgInterfacialCurrent(echem.Negative): 100,
		names.XAvgInterfacialCurrent(echem.Positive): -80,
		names.XAvgPorosity(echem.Negative):           0.5,
		names.XAvgPorosity(echem.Separator):          0.9,
		names.XAvgPorosity(echem.Positive):           0.6,
	}
	delete(v, drop)
	return echemtest.Constants(v)
}

func TestDiffusion(t *testing.T) {
	p := leadacid.DefaultParameters()
	for _, test := range []struct {
		name    string
		s       func(m *echem.Model) (echem.Submodel, error)
		inputs  []echem.Submodel
		states  map[string]string
		missing []string
	}{
		{
			name: "constant",
			s: func(*echem.Model) (echem.Submodel, error) {
				return diffusion.NewConstantConcentration(p), nil
			},
		},
		{
			name: "leading order",
			s: func(m *echem.Model) (echem.Submodel, error) {
				return diffusion.NewLeadingOrder(p, m.Reactions())
			},
			inputs: []echem.Submodel{inputs("")},
			states: map[string]string{names.XAvgElectrolyteConcentration: "rhs"},
			missing: []string{
				names.XAvgInterfacialCurrent(echem.Negative),
				names.XAvgInterfacialCurrent(echem.Positive),
				names.XAvgPorosity(echem.Separator),
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			m := model(t, p, leadacid.Reaction())
			s, err := test.s(m)
			if err != nil {
				t.Fatal(err)
			}
			b, err := echemtest.Build(t, m, append([]echem.Submodel{s}, test.inputs...)...)
			if err != nil {
				t.Fatal(err)
			}
			echemtest.CheckStates(t, b, test.states)
			for _, d := range echem.Domains {
				if _, ok := b.Variable(names.ElectrolyteConcentration(d)); !ok {
					t.Errorf("no %s electrolyte concentration", d)
				}
			}
			for _, drop := range test.missing {
				m := model(t, p, leadacid.Reaction())
				s, err := test.s(m)
				if err != nil {
					t.Fatal(err)
				}
				_, err = echemtest.Build(t, m, s, inputs(drop))
				echemtest.CheckMissing(t, err, drop)
			}
		})
	}
}

func TestConstantConcentration(t *testing.T) {
	p := lithiumion.DefaultParameters()
	b, err := echemtest.Build(t, echemtest.New(t, p), diffusion.NewConstantConcentration(p))
	if err != nil {
		t.Fatal(err)
	}
	if c := echemtest.Float(t, b, names.ElectrolyteConcentration(echem.Separator), nil); c != 1000 {
		t.Errorf("separator concentration %g != 1000", c)
	}
	if f := echemtest.Float(t, b, names.ElectrolyteFlux, nil); f != 0 {
		t.Errorf("flux %g != 0", f)
	}
}

func TestLeadingOrderRate(t *testing.T) {
	p := leadacid.DefaultParameters()
	m := model(t, p, leadacid.Reaction())
	s, err := diffusion.NewLeadingOrder(p, m.Reactions())
	if err != nil {
		t.Fatal(err)
	}
	b, err := echemtest.Build(t, m, s, inputs(""))
	if err != nil {
		t.Fatal(err)
	}
	values := p.Values()
	for name, v := range map[string]float64{
		names.XAvgInterfacialCurrent(echem.Negative): 100,
		names.XAvgInterfacialCurrent(echem.Positive): -80,
		names.XAvgPorosity(echem.Negative):           0.5,
		names.XAvgPorosity(echem.Separator):          0.9,
		names.XAvgPorosity(echem.Positive):           0.6,
	} {
		values[name] = v
	}
	rate, err := b.Rhs()[names.XAvgElectrolyteConcentration].Evaluate(values, p)
	if err != nil {
		t.Fatal(err)
	}
	// Stoichiometries -1 and 3, two electrons, over the pore volume.
	source := -1*100*9e-4/2 + 3*-80*1.25e-3/2
	volume := 9e-4*0.5 + 1.5e-3*0.9 + 1.25e-3*0.6
	want := source / (96485.33212 * volume)
	if math.Abs(rate.(float64)-want) > 1e-9*math.Abs(want) {
		t.Errorf("concentration rate %v != %g", rate, want)
	}
	if ic := b.InitialConditions()[names.XAvgElectrolyteConcentration].String(); ic != echem.Ref(names.TypicalElectrolyteConc) {
		t.Errorf("initial concentration %q", ic)
	}
}

func TestLeadingOrderReactions(t *testing.T) {
	p := leadacid.DefaultParameters()
	if _, err := diffusion.NewLeadingOrder(p, echem.NewReactions()); !errors.Is(err, echem.ErrMissingDependency) {
		t.Errorf("no reactions: got %v", err)
	}

	// Reactions that leave the electrolyte unchanged give no equation.
	lp := lithiumion.DefaultParameters()
	m := model(t, lp, lithiumion.Reaction())
	s, err := diffusion.NewLeadingOrder(lp, m.Reactions())
	if err != nil {
		t.Fatal(err)
	}
	_, err = echemtest.Build(t, m, s, inputs(""))
	if err == nil || errors.Is(err, echem.ErrMissingDependency) {
		t.Errorf("no stoichiometry: got %v", err)
	}

	// Lookups fail when an electrode hosts no reaction.
	m = echemtest.New(t, p, leadacid.Reaction())
	s, err = diffusion.NewLeadingOrder(p, m.Reactions())
	if err != nil {
		t.Fatal(err)
	}
	_, err = echemtest.Build(t, m, s, inputs(""))
	echemtest.CheckMissing(t, err, echem.Negative.Lower()+" interfacial reaction")
}
