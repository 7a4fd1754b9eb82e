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

// Package echemtest builds single submodels in isolation, with fixed
// stand-ins for the variables other submodels would supply.
package echemtest

import (
	"errors"
	"fmt"
	"io/ioutil"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/echem"
)

// Fixed is a submodel that defines Vars as fundamental variables.
type Fixed struct {
	echem.Base
	Vars echem.VariableMap
}

// Name implements echem.Submodel.
func (Fixed) Name() string { return "fixed inputs" }

// FundamentalVariables implements echem.Submodel.
func (f Fixed) FundamentalVariables() (echem.VariableMap, error) { return f.Vars, nil }

// Constants returns a Fixed submodel holding each of values as a constant.
func Constants(values map[string]float64) Fixed {
	v := make(echem.VariableMap, len(values))
	for name, x := range values {
		v[name] = echem.Constant(x)
	}
	return Fixed{Vars: v}
}

// New returns a model with the default options, param and each of
// reactions declared. Its log output is discarded.
func New(t testing.TB, param *echem.ParameterSet, reactions ...echem.Reaction) *echem.Model {
	t.Helper()
	m := echem.New(t.Name(), echem.DefaultOptions(), param)
	log := logrus.New()
	log.Out = ioutil.Discard
	m.Log = log
	for _, rx := range reactions {
		if err := m.Reactions().Declare(rx); err != nil {
			t.Fatal(err)
		}
	}
	return m
}

// Build sets subs in m under their position in the list and builds it.
func Build(t testing.TB, m *echem.Model, subs ...echem.Submodel) (*echem.BuiltModel, error) {
	t.Helper()
	for i, s := range subs {
		if err := m.SetSubmodel(fmt.Sprint(i), s); err != nil {
			t.Fatal(err)
		}
	}
	return m.Build()
}

// Kind returns "rhs" or "algebraic" for the kind of equation that governs
// state, or "" if none does.
func Kind(b *echem.BuiltModel, state string) string {
	if _, ok := b.Rhs()[state]; ok {
		return "rhs"
	}
	if _, ok := b.Algebraic()[state]; ok {
		return "algebraic"
	}
	return ""
}

// CheckStates fails t unless the states of b are exactly want, each
// governed by the given kind of equation.
func CheckStates(t testing.TB, b *echem.BuiltModel, want map[string]string) {
	t.Helper()
	states := b.States()
	if len(states) != len(want) {
		t.Errorf("states %v, want %d", states, len(want))
	}
	for _, s := range states {
		kind, ok := want[s]
		if !ok {
			t.Errorf("unexpected state %q", s)
			continue
		}
		if got := Kind(b, s); got != kind {
			t.Errorf("state %q has %q equation, want %q", s, got, kind)
		}
	}
}

// CheckMissing fails t unless err reports that name is undefined.
func CheckMissing(t testing.TB, err error, name string) {
	t.Helper()
	if !errors.Is(err, echem.ErrMissingDependency) {
		t.Fatalf("got error %v, want a missing dependency", err)
	}
	var de *echem.DependencyError
	if !errors.As(err, &de) {
		t.Fatalf("%v is not a *echem.DependencyError", err)
	}
	if de.Name != name {
		t.Errorf("missing %q, want %q", de.Name, name)
	}
}

// Float evaluates name in b, failing t if it is not a number.
func Float(t testing.TB, b *echem.BuiltModel, name string, values map[string]interface{}) float64 {
	t.Helper()
	v, err := b.Evaluate(name, values)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := v.(float64)
	if !ok {
		t.Fatalf("%s = %v (%T), want a number", name, v, v)
	}
	return f
}
