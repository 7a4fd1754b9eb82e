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

package battery

import (
	"errors"
	"testing"

	"github.com/spatialmodel/echem"
)

// Every legal option value must have a variant.
func TestDispatchTables(t *testing.T) {
	for _, v := range echem.OperatingModes {
		if _, ok := externalCircuits[v]; !ok {
			t.Errorf("no external circuit for %v", v)
		}
	}
	for _, v := range echem.SurfaceForms {
		if _, ok := interfaces[v]; !ok {
			t.Errorf("no interfacial kinetics for %v", v)
		}
		if _, ok := conductivities[v]; !ok {
			t.Errorf("no electrolyte conductivity for %v", v)
		}
	}
	for _, v := range echem.Thermals {
		if _, ok := thermals[v]; !ok {
			t.Errorf("no thermal submodel for %v", v)
		}
	}
	for _, v := range echem.CurrentCollectors {
		if _, ok := currentCollectors[v]; !ok {
			t.Errorf("no current collector for %v", v)
		}
	}
	if len(externalCircuits) != len(echem.OperatingModes) || len(thermals) != len(echem.Thermals) ||
		len(currentCollectors) != len(echem.CurrentCollectors) || len(interfaces) != len(echem.SurfaceForms) {
		t.Error("dispatch table has entries for illegal option values")
	}
}

func TestKeys(t *testing.T) {
	tests := []struct{ have, want string }{
		{InterfaceKey(echem.Negative), "negative interface"},
		{ParticleKey(echem.Positive), "positive particle"},
		{ElectrodeKey(echem.Negative), "negative electrode"},
		{SurfaceFormKey(echem.Separator), "leading-order separator electrolyte conductivity"},
	}
	for _, test := range tests {
		if test.have != test.want {
			t.Errorf("%q != %q", test.have, test.want)
		}
	}
}

func TestUnsupported(t *testing.T) {
	b := NewBase("test", echem.DefaultOptions(), nil, "main")
	o := echem.DefaultOptions()
	o.Thermal = echem.Thermal(9)
	b.Model = echem.New("test", o, nil)
	err := b.SetThermalSubmodel()
	if !errors.Is(err, echem.ErrUnsupportedConfiguration) {
		t.Errorf("want ErrUnsupportedConfiguration, have %v", err)
	}
	var ce *echem.ConfigurationError
	if !errors.As(err, &ce) || ce.Aspect != echem.ThermalKey {
		t.Errorf("error %#v", err)
	}
	if b.Len() != 0 {
		t.Errorf("%d submodels set", b.Len())
	}
}

func TestSteps(t *testing.T) {
	var calls []int
	f := func(i int) func() error {
		return func() error {
			calls = append(calls, i)
			return nil
		}
	}
	m := echem.New("test", echem.DefaultOptions(), nil)
	if err := m.Assemble(Steps(f(1), f(2), f(3))...); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 3 || calls[0] != 1 || calls[2] != 3 {
		t.Errorf("calls %v", calls)
	}
}
