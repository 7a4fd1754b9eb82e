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
	"sort"
)

// BuiltModel is the immutable result of Model.Build: the complete set of
// variables, equations, boundary and initial conditions and events of a
// model, ready for discretisation. Accessors return copies.
type BuiltModel struct {
	name     string
	options  Options
	geometry Geometry
	param    *ParameterSet

	variables VariableMap
	rhs       VariableMap
	algebraic VariableMap
	initial   VariableMap
	boundary  map[string]BoundaryCondition
	events    []Event

	keys      []string
	submodels map[string]Submodel
	owners    map[string]string
}

// Name returns the model name.
func (b *BuiltModel) Name() string { return b.name }

// Options returns the options the model was built with.
func (b *BuiltModel) Options() Options { return b.options }

// Geometry returns the geometry for the model's dimensionality.
func (b *BuiltModel) Geometry() Geometry { return b.geometry }

// Param returns the parameter set the model was built with.
func (b *BuiltModel) Param() *ParameterSet { return b.param }

// Variables returns every variable of the model.
func (b *BuiltModel) Variables() VariableMap { return copyMap(b.variables) }

// Variable returns the variable called name.
func (b *BuiltModel) Variable(name string) (Expression, bool) {
	e, ok := b.variables[name]
	return e, ok
}

// Owner returns the key of the submodel that defined variable name.
func (b *BuiltModel) Owner(name string) string { return b.owners[name] }

// Rhs returns the differential equations, keyed by state variable.
func (b *BuiltModel) Rhs() VariableMap { return copyMap(b.rhs) }

// Algebraic returns the algebraic equations, keyed by state variable.
func (b *BuiltModel) Algebraic() VariableMap { return copyMap(b.algebraic) }

// InitialConditions returns the initial conditions, keyed by state variable.
func (b *BuiltModel) InitialConditions() VariableMap { return copyMap(b.initial) }

// BoundaryConditions returns the boundary conditions, keyed by variable.
func (b *BuiltModel) BoundaryConditions() map[string]BoundaryCondition {
	o := make(map[string]BoundaryCondition, len(b.boundary))
	for k, v := range b.boundary {
		o[k] = v
	}
	return o
}

// Events returns the model events.
func (b *BuiltModel) Events() []Event { return append([]Event(nil), b.events...) }

// States returns the names of the state variables in sorted order.
func (b *BuiltModel) States() []string {
	var s []string
	for name, e := range b.variables {
		if e.IsState() {
			s = append(s, name)
		}
	}
	sort.Strings(s)
	return s
}

// SubmodelKeys returns the submodel keys in build order.
func (b *BuiltModel) SubmodelKeys() []string { return append([]string(nil), b.keys...) }

// Submodel returns the submodel stored under key.
func (b *BuiltModel) Submodel(key string) (Submodel, bool) {
	s, ok := b.submodels[key]
	return s, ok
}

// Evaluate evaluates the variable called name. values holds values for
// state and independent variables, and may override any other name.
// Parameters and other variables are filled in as needed. Expressions that
// use spatial differential operators cannot be evaluated.
func (b *BuiltModel) Evaluate(name string, values map[string]interface{}) (interface{}, error) {
	return b.evaluate(name, values, make(map[string]bool))
}

func (b *BuiltModel) evaluate(name string, values map[string]interface{}, visiting map[string]bool) (interface{}, error) {
	if v, ok := values[name]; ok {
		return v, nil
	}
	e, ok := b.variables[name]
	if !ok {
		return nil, &DependencyError{Name: name, By: "evaluation"}
	}
	if e.IsState() {
		return nil, fmt.Errorf("echem: evaluating %q needs a value for state variable %q", name, name)
	}
	if visiting[name] {
		return nil, fmt.Errorf("echem: variable %q is defined in terms of itself", name)
	}
	visiting[name] = true
	defer delete(visiting, name)

	env := make(map[string]interface{})
	for _, ref := range e.Vars() {
		if v, ok := values[ref]; ok {
			env[ref] = v
			continue
		}
		if p, ok := b.param.Get(ref); ok && !p.IsFunction() {
			env[ref] = p.Value.Value()
			continue
		}
		if isIndependent(ref) {
			return nil, fmt.Errorf("echem: evaluating %q needs a value for %q", name, ref)
		}
		v, err := b.evaluate(ref, values, visiting)
		if err != nil {
			return nil, err
		}
		env[ref] = v
	}
	return e.Evaluate(env, b.param)
}

// check verifies that the merged contributions form a closed system.
func (b *BuiltModel) check(vars *VariableSet, eqOwner, bcOwner, icOwner, evOwner map[string]string) error {
	for _, eqs := range []VariableMap{b.rhs, b.algebraic} {
		for _, name := range sortedKeys(eqs) {
			e, ok := b.variables[name]
			if !ok {
				return &DependencyError{Name: name, By: fmt.Sprintf("equation of submodel %q", eqOwner[name])}
			}
			if !e.IsState() {
				return buildError("submodel %q gives an equation for %q, which is not a state variable", eqOwner[name], name)
			}
		}
	}
	for _, name := range sortedKeys(b.variables) {
		if !b.variables[name].IsState() {
			continue
		}
		_, isRhs := b.rhs[name]
		_, isAlg := b.algebraic[name]
		if !isRhs && !isAlg {
			return buildError("state variable %q of submodel %q has no governing equation", name, b.owners[name])
		}
		if _, ok := b.initial[name]; isRhs && !ok {
			return buildError("state variable %q of submodel %q has no initial condition", name, b.owners[name])
		}
	}
	for _, name := range sortedKeys(b.initial) {
		if e, ok := b.variables[name]; !ok || !e.IsState() {
			return buildError("submodel %q gives an initial condition for %q, which is not a state variable", icOwner[name], name)
		}
	}
	for _, name := range sortedBCKeys(b.boundary) {
		if _, ok := b.variables[name]; !ok {
			return &DependencyError{Name: name, By: fmt.Sprintf("boundary condition of submodel %q", bcOwner[name])}
		}
		bc := b.boundary[name]
		if bc.Left.Value.IsZero() || bc.Right.Value.IsZero() {
			return buildError("boundary condition for %q of submodel %q needs both a left and a right value", name, bcOwner[name])
		}
		if err := vars.Resolve(bc.Left.Value, bc.Right.Value); err != nil {
			return fmt.Errorf("echem: boundary condition for %q of submodel %q: %w", name, bcOwner[name], err)
		}
	}

	for _, name := range sortedKeys(b.variables) {
		if err := vars.Resolve(b.variables[name]); err != nil {
			return fmt.Errorf("echem: variable %q of submodel %q: %w", name, b.owners[name], err)
		}
	}
	for _, eqs := range []VariableMap{b.rhs, b.algebraic} {
		for _, name := range sortedKeys(eqs) {
			if err := vars.Resolve(eqs[name]); err != nil {
				return fmt.Errorf("echem: equation for %q of submodel %q: %w", name, eqOwner[name], err)
			}
		}
	}
	for _, name := range sortedKeys(b.initial) {
		if err := vars.Resolve(b.initial[name]); err != nil {
			return fmt.Errorf("echem: initial condition for %q of submodel %q: %w", name, icOwner[name], err)
		}
	}
	for _, e := range b.events {
		if err := vars.Resolve(e.Expression); err != nil {
			return fmt.Errorf("echem: event %q of submodel %q: %w", e.Name, evOwner[e.Name], err)
		}
	}
	return nil
}

func copyMap(m VariableMap) VariableMap {
	o := make(VariableMap, len(m))
	for k, v := range m {
		o[k] = v
	}
	return o
}

func sortedBCKeys(m map[string]BoundaryCondition) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
