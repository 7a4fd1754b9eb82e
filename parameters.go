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
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/unit"
	"github.com/spf13/cast"
)

// MoleDim is the dimension representing amount of substance.
var MoleDim = unit.NewDimension("mole")

// Dimensions used by battery parameters that are not provided by package unit.
var (
	Ampere               = unit.Dimensions{unit.CurrentDim: 1}
	AmperePerMeter2      = unit.Dimensions{unit.CurrentDim: 1, unit.LengthDim: -2}
	Volt                 = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -3, unit.CurrentDim: -1}
	SiemensPerMeter      = unit.Dimensions{unit.MassDim: -1, unit.LengthDim: -3, unit.TimeDim: 3, unit.CurrentDim: 2}
	FaradPerMeter2       = unit.Dimensions{unit.MassDim: -1, unit.LengthDim: -4, unit.TimeDim: 4, unit.CurrentDim: 2}
	PerMeter             = unit.Dimensions{unit.LengthDim: -1}
	Meter2PerSecond      = unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -1}
	MolePerMeter3        = unit.Dimensions{MoleDim: 1, unit.LengthDim: -3}
	Meter3PerMole        = unit.Dimensions{MoleDim: -1, unit.LengthDim: 3}
	CoulombPerMole       = unit.Dimensions{unit.CurrentDim: 1, unit.TimeDim: 1, MoleDim: -1}
	JoulePerMoleKelvin   = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -2, unit.TemperatureDim: -1, MoleDim: -1}
	JoulePerMeter3Kelvin = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2, unit.TemperatureDim: -1}
	WattPerMeter2Kelvin  = unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -3, unit.TemperatureDim: -1}
	WattPerMeterKelvin   = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 1, unit.TimeDim: -3, unit.TemperatureDim: -1}
)

// FunctionalParameter is a parameter whose value depends on other
// quantities, such as an open-circuit potential curve.
type FunctionalParameter func(args ...float64) float64

// Parameter is a named physical constant or function.
// Exactly one of Value and Func is set.
type Parameter struct {
	Name        string
	Description string
	Value       *unit.Unit
	Func        FunctionalParameter
	// Arity is the number of arguments Func takes.
	Arity int
}

// Scalar returns a dimensioned scalar parameter.
func Scalar(name string, value float64, d unit.Dimensions, description string) Parameter {
	return Parameter{Name: name, Description: description, Value: unit.New(value, d)}
}

// Function returns a functional parameter taking arity arguments.
func Function(name string, arity int, f FunctionalParameter, description string) Parameter {
	return Parameter{Name: name, Description: description, Func: f, Arity: arity}
}

// IsFunction reports whether p is a functional parameter.
func (p Parameter) IsFunction() bool { return p.Func != nil }

func (p Parameter) check() error {
	if p.Name == "" {
		return fmt.Errorf("echem: parameter with empty name")
	}
	if strings.ContainsAny(p.Name, "[]'") {
		return fmt.Errorf("echem: parameter name %q may not contain brackets or quotes", p.Name)
	}
	if (p.Value == nil) == (p.Func == nil) {
		return fmt.Errorf("echem: parameter %q must have exactly one of a value and a function", p.Name)
	}
	if p.Func != nil && p.Arity < 0 {
		return fmt.Errorf("echem: parameter %q has negative arity %d", p.Name, p.Arity)
	}
	return nil
}

// ParameterSet is an immutable collection of parameters shared by every
// submodel of a model. It is safe for concurrent use.
type ParameterSet struct {
	params map[string]Parameter
}

// NewParameterSet returns a parameter set holding params.
func NewParameterSet(params ...Parameter) (*ParameterSet, error) {
	p := &ParameterSet{params: make(map[string]Parameter, len(params))}
	for _, pp := range params {
		if err := pp.check(); err != nil {
			return nil, err
		}
		if _, ok := p.params[pp.Name]; ok {
			return nil, fmt.Errorf("echem: duplicate parameter %q", pp.Name)
		}
		if pp.Value != nil {
			pp.Value = pp.Value.Clone()
		}
		p.params[pp.Name] = pp
	}
	return p, nil
}

// Get returns the parameter called name.
func (p *ParameterSet) Get(name string) (Parameter, bool) {
	pp, ok := p.params[name]
	if ok && pp.Value != nil {
		pp.Value = pp.Value.Clone()
	}
	return pp, ok
}

// Has reports whether the set holds a parameter called name.
func (p *ParameterSet) Has(name string) bool {
	_, ok := p.params[name]
	return ok
}

// IsFunction reports whether name is a functional parameter.
func (p *ParameterSet) IsFunction(name string) bool {
	return p.params[name].Func != nil
}

// Len returns the number of parameters.
func (p *ParameterSet) Len() int { return len(p.params) }

// Names returns the parameter names in sorted order.
func (p *ParameterSet) Names() []string {
	names := make([]string, 0, len(p.params))
	for n := range p.params {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Values returns the raw values of the scalar parameters, keyed by name.
func (p *ParameterSet) Values() map[string]interface{} {
	o := make(map[string]interface{}, len(p.params))
	for n, pp := range p.params {
		if pp.Value != nil {
			o[n] = pp.Value.Value()
		}
	}
	return o
}

// WithValues returns a copy of the receiver where the named scalar
// parameters take new values. Dimensions are kept.
func (p *ParameterSet) WithValues(values map[string]float64) (*ParameterSet, error) {
	o := &ParameterSet{params: make(map[string]Parameter, len(p.params))}
	for n, pp := range p.params {
		o.params[n] = pp
	}
	for n, v := range values {
		pp, ok := o.params[n]
		if !ok {
			return nil, fmt.Errorf("echem: cannot set value of unknown parameter %q", n)
		}
		if pp.Func != nil {
			return nil, fmt.Errorf("echem: cannot set a scalar value for functional parameter %q", n)
		}
		pp.Value = unit.New(v, pp.Value.Dimensions())
		o.params[n] = pp
	}
	return o, nil
}

// call implements the 'fn' expression function.
func (p *ParameterSet) call(args ...interface{}) (interface{}, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("echem: 'fn' needs a parameter name")
	}
	name, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("echem: first argument of 'fn' must be a parameter name, not %v", args[0])
	}
	pp, ok := p.params[name]
	if !ok || pp.Func == nil {
		return nil, &DependencyError{Name: name, By: "fn"}
	}
	if len(args)-1 != pp.Arity {
		return nil, fmt.Errorf("echem: got %d arguments for functional parameter %q, but needs %d", len(args)-1, name, pp.Arity)
	}
	x := make([]float64, pp.Arity)
	for i, a := range args[1:] {
		v, ok := a.(float64)
		if !ok {
			return nil, fmt.Errorf("echem: invalid argument type %T for functional parameter %q", a, name)
		}
		x[i] = v
	}
	return pp.Func(x...), nil
}

// LoadParameterOverrides reads scalar parameter values from a TOML
// document of the form
//
//	[parameters]
//	"Typical current" = 0.68
//
// for use with ParameterSet.WithValues.
func LoadParameterOverrides(r io.Reader) (map[string]float64, error) {
	var f struct {
		Parameters map[string]interface{} `toml:"parameters"`
	}
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return nil, fmt.Errorf("echem: reading parameter file: %v", err)
	}
	o := make(map[string]float64, len(f.Parameters))
	for k, v := range f.Parameters {
		x, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("echem: parameter %q: %v", k, err)
		}
		o[k] = x
	}
	return o, nil
}
