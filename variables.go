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

import "sort"

// VariableMap maps variable names to their expressions.
type VariableMap map[string]Expression

// VariableSet is the read-only registry of the variables defined so far
// during a build. Submodels receive it when computing coupled variables,
// equations and conditions.
type VariableSet struct {
	vars  VariableMap
	owner map[string]string
	param *ParameterSet
}

func newVariableSet(param *ParameterSet) *VariableSet {
	return &VariableSet{
		vars:  make(VariableMap),
		owner: make(map[string]string),
		param: param,
	}
}

// Get returns the variable called name, or an error wrapping
// ErrMissingDependency if no submodel has defined it yet.
func (v *VariableSet) Get(name string) (Expression, error) {
	e, ok := v.vars[name]
	if !ok {
		return Expression{}, &DependencyError{Name: name}
	}
	return e, nil
}

// Has reports whether name has been defined.
func (v *VariableSet) Has(name string) bool {
	_, ok := v.vars[name]
	return ok
}

// Owner returns the key of the submodel that defined name.
func (v *VariableSet) Owner(name string) string { return v.owner[name] }

// Len returns the number of variables.
func (v *VariableSet) Len() int { return len(v.vars) }

// Names returns the variable names in sorted order.
func (v *VariableSet) Names() []string {
	names := make([]string, 0, len(v.vars))
	for n := range v.vars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Require checks that every one of names has been defined.
func (v *VariableSet) Require(names ...string) error {
	for _, n := range names {
		if !v.Has(n) {
			return &DependencyError{Name: n}
		}
	}
	return nil
}

// Resolve checks that every name referenced by exprs is a defined
// variable, a parameter or an independent variable, and that every
// functional parameter they call exists.
func (v *VariableSet) Resolve(exprs ...Expression) error {
	for _, e := range exprs {
		if err := v.resolve(e); err != nil {
			return err
		}
	}
	return nil
}

func (v *VariableSet) resolve(e Expression) error {
	for _, n := range e.Vars() {
		if v.Has(n) || isIndependent(n) {
			continue
		}
		if v.param != nil && v.param.Has(n) && !v.param.IsFunction(n) {
			continue
		}
		return &DependencyError{Name: n, By: "expression " + e.String()}
	}
	for _, f := range e.Functions() {
		if v.param == nil || !v.param.IsFunction(f) {
			return &DependencyError{Name: f, By: "expression " + e.String()}
		}
	}
	return nil
}

// add merges m into the set on behalf of the submodel with key owner.
func (v *VariableSet) add(owner string, m VariableMap) error {
	for _, name := range sortedKeys(m) {
		if prev, ok := v.owner[name]; ok {
			return &ConflictError{Kind: "variable", Key: name, First: prev, Second: owner}
		}
		if v.param != nil && v.param.Has(name) {
			return buildError("variable %q defined by submodel %q has the same name as a parameter", name, owner)
		}
		if isIndependent(name) {
			return buildError("variable %q defined by submodel %q has the same name as an independent variable", name, owner)
		}
	}
	for name, e := range m {
		v.vars[name] = e
		v.owner[name] = owner
	}
	return nil
}

func (v *VariableSet) copyMap() VariableMap {
	o := make(VariableMap, len(v.vars))
	for k, e := range v.vars {
		o[k] = e
	}
	return o
}

func sortedKeys(m VariableMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
