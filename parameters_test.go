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

package echem

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ctessum/unit"
)

func testParameters(t *testing.T) *ParameterSet {
	p, err := NewParameterSet(
		Scalar("Electrode height", 0.137, unit.Dimensions{unit.LengthDim: 1}, ""),
		Scalar("Typical current", 0.68, Ampere, ""),
		Function("Current function", 1, func(x ...float64) float64 { return 0.68 }, ""),
	)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewParameterSet(t *testing.T) {
	p := testParameters(t)
	if p.Len() != 3 {
		t.Errorf("length %d != 3", p.Len())
	}
	want := []string{"Current function", "Electrode height", "Typical current"}
	if !reflect.DeepEqual(p.Names(), want) {
		t.Errorf("%v != %v", p.Names(), want)
	}
	if !p.IsFunction("Current function") || p.IsFunction("Typical current") {
		t.Error("IsFunction")
	}
	if p.IsFunction("missing") || p.Has("missing") {
		t.Error("missing parameter reported as present")
	}
	v := p.Values()
	if len(v) != 2 || v["Typical current"] != 0.68 {
		t.Errorf("values %v", v)
	}

	bad := [][]Parameter{
		{Scalar("", 1, unit.Dimless, "")},
		{Scalar("[x]", 1, unit.Dimless, "")},
		{Scalar("x", 1, unit.Dimless, ""), Scalar("x", 2, unit.Dimless, "")},
		{{Name: "x"}},
		{{Name: "x", Value: unit.New(1, unit.Dimless), Func: func(...float64) float64 { return 1 }}},
	}
	for i, params := range bad {
		if _, err := NewParameterSet(params...); err == nil {
			t.Errorf("case %d: expected an error", i)
		}
	}
}

func TestParameterGetCopies(t *testing.T) {
	p := testParameters(t)
	h, ok := p.Get("Electrode height")
	if !ok {
		t.Fatal("missing parameter")
	}
	h.Value.Mul(unit.New(2, unit.Dimless))
	h2, _ := p.Get("Electrode height")
	if h2.Value.Value() != 0.137 {
		t.Errorf("stored value changed to %g", h2.Value.Value())
	}
	if !h2.Value.Dimensions().Matches(unit.Dimensions{unit.LengthDim: 1}) {
		t.Errorf("dimensions %v", h2.Value.Dimensions())
	}
}

func TestWithValues(t *testing.T) {
	p := testParameters(t)
	p2, err := p.WithValues(map[string]float64{"Typical current": 5})
	if err != nil {
		t.Fatal(err)
	}
	if v := p2.Values()["Typical current"]; v != 5. {
		t.Errorf("new value %v != 5", v)
	}
	if v := p.Values()["Typical current"]; v != 0.68 {
		t.Errorf("original value changed to %v", v)
	}
	c, _ := p2.Get("Typical current")
	if !c.Value.Dimensions().Matches(Ampere) {
		t.Errorf("dimensions changed to %v", c.Value.Dimensions())
	}
	if _, err := p.WithValues(map[string]float64{"missing": 1}); err == nil {
		t.Error("unknown parameter: expected an error")
	}
	if _, err := p.WithValues(map[string]float64{"Current function": 1}); err == nil {
		t.Error("functional parameter: expected an error")
	}
}

func TestLoadParameterOverrides(t *testing.T) {
	r := strings.NewReader(`
[parameters]
"Typical current" = 2
"Electrode height" = 0.2
`)
	v, err := LoadParameterOverrides(r)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"Typical current": 2, "Electrode height": 0.2}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("%v != %v", v, want)
	}

	for _, text := range []string{"[parameters]\nx = \"abc\"\n", "[parameters\n"} {
		if _, err := LoadParameterOverrides(strings.NewReader(text)); err == nil {
			t.Errorf("%q: expected an error", text)
		}
	}
}
