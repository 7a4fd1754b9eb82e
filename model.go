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
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Step is one stage of model assembly. Steps typically select a submodel
// variant based on the model's options and insert it with SetSubmodel.
type Step func(m *Model) error

// Model is a battery model under construction. Submodels are added in
// order with SetSubmodel, and Build merges them into an immutable
// BuiltModel. After a successful Build the Model can no longer be changed.
type Model struct {
	// Name is the name of the model.
	Name string

	// Log receives assembly progress. It defaults to the logrus standard
	// logger.
	Log logrus.FieldLogger

	options   Options
	param     *ParameterSet
	reactions *Reactions

	keys      []string
	submodels map[string]Submodel

	built *BuiltModel
}

// New returns an empty model with the given options and parameters.
// options should come from ParseOptions.
func New(name string, options Options, param *ParameterSet) *Model {
	return &Model{
		Name:      name,
		Log:       logrus.StandardLogger(),
		options:   options,
		param:     param,
		reactions: NewReactions(),
		submodels: make(map[string]Submodel),
	}
}

// Options returns the model options.
func (m *Model) Options() Options { return m.options }

// Param returns the shared parameter set.
func (m *Model) Param() *ParameterSet { return m.param }

// Reactions returns the model's reactions registry.
func (m *Model) Reactions() *Reactions { return m.reactions }

// Submodel returns the submodel stored under key.
func (m *Model) Submodel(key string) (Submodel, bool) {
	s, ok := m.submodels[key]
	return s, ok
}

// Keys returns the submodel keys in insertion order.
func (m *Model) Keys() []string { return append([]string(nil), m.keys...) }

// Len returns the number of submodels.
func (m *Model) Len() int { return len(m.keys) }

// Built returns the result of a successful Build, or nil if the model
// has not been built.
func (m *Model) Built() *BuiltModel { return m.built }

// SetSubmodel stores s under key. If key is already in use, the previous
// submodel is replaced and keeps its position in the build order.
// Interfacial submodels (see ReactionSource) activate their reaction; a
// reaction may be hosted in each domain by only one key.
// SetSubmodel fails with ErrModelAlreadyBuilt once the model is built.
func (m *Model) SetSubmodel(key string, s Submodel) error {
	if m.built != nil {
		return fmt.Errorf("echem: setting submodel %q of %s: %w", key, m.Name, ErrModelAlreadyBuilt)
	}
	if key == "" {
		return fmt.Errorf("echem: submodel key may not be empty")
	}
	if s == nil {
		return fmt.Errorf("echem: nil submodel for key %q", key)
	}
	prev, exists := m.submodels[key]
	if rs, ok := s.(ReactionSource); ok {
		a := rs.Reaction()
		for _, k := range m.keys {
			other, ok := m.submodels[k].(ReactionSource)
			if k == key || !ok {
				continue
			}
			if o := other.Reaction(); o.Domain == a.Domain && o.Reaction == a.Reaction {
				return &ConflictError{Kind: "reaction", Key: a.Reaction + " in " + a.Domain.String(), First: k, Second: key}
			}
		}
	}
	prevRS, prevIsRS := prev.(ReactionSource)
	if exists && prevIsRS {
		m.reactions.deactivate(prevRS.Reaction())
	}
	if rs, ok := s.(ReactionSource); ok {
		if err := m.reactions.Activate(rs.Reaction()); err != nil {
			if exists && prevIsRS {
				m.reactions.Activate(prevRS.Reaction())
			}
			return fmt.Errorf("echem: setting submodel %q: %w", key, err)
		}
	}
	if !exists {
		m.keys = append(m.keys, key)
	}
	m.submodels[key] = s
	m.Log.WithFields(logrus.Fields{
		"model":    m.Name,
		"key":      key,
		"submodel": s.Name(),
		"replaced": exists,
	}).Debug("echem: set submodel")
	return nil
}

// Assemble runs steps in order, stopping at the first error.
func (m *Model) Assemble(steps ...Step) error {
	for _, step := range steps {
		if err := step(m); err != nil {
			return err
		}
	}
	return nil
}

// Build merges the contributions of every submodel into a BuiltModel and
// freezes the model. Variables are collected in two phases: first the
// fundamental variables of every submodel, then the coupled variables,
// which may refer to any variable defined by another submodel. Equations
// and conditions are collected last.
//
// Build fails with an error wrapping ErrModelBuild if two submodels define
// the same key or the equations do not match the state variables, with
// ErrMissingDependency if an expression refers to an undefined name, and
// with ErrModelAlreadyBuilt if the model has already been built. A failed
// build leaves the model open for changes. Coupled variables do not depend
// on insertion order, so an out-of-order assembly still builds; only
// constructors that look up reactions fail fast on order.
func (m *Model) Build() (*BuiltModel, error) {
	if m.built != nil {
		return nil, fmt.Errorf("echem: building %s: %w", m.Name, ErrModelAlreadyBuilt)
	}
	start := time.Now()
	geometry, err := ResolveGeometry(m.options.Dimensionality)
	if err != nil {
		return nil, err
	}

	vars := newVariableSet(m.param)
	for _, key := range m.keys {
		fv, err := m.submodels[key].FundamentalVariables()
		if err != nil {
			return nil, fmt.Errorf("echem: fundamental variables of submodel %q: %w", key, err)
		}
		if err := vars.add(key, fv); err != nil {
			return nil, err
		}
	}
	if err := m.coupledVariables(vars); err != nil {
		return nil, err
	}

	b := &BuiltModel{
		name:      m.Name,
		options:   m.options,
		geometry:  geometry,
		param:     m.param,
		rhs:       make(VariableMap),
		algebraic: make(VariableMap),
		initial:   make(VariableMap),
		boundary:  make(map[string]BoundaryCondition),
		keys:      m.Keys(),
		submodels: make(map[string]Submodel, len(m.submodels)),
		owners:    make(map[string]string),
	}
	for k, s := range m.submodels {
		b.submodels[k] = s
	}
	eqOwner := make(map[string]string)
	bcOwner := make(map[string]string)
	icOwner := make(map[string]string)
	evOwner := make(map[string]string)
	for _, key := range m.keys {
		s := m.submodels[key]
		eqs, err := s.Equations(vars)
		if err != nil {
			return nil, fmt.Errorf("echem: equations of submodel %q: %w", key, err)
		}
		if err := merge("equation", key, b.rhs, eqOwner, eqs.Rhs); err != nil {
			return nil, err
		}
		if err := merge("equation", key, b.algebraic, eqOwner, eqs.Algebraic); err != nil {
			return nil, err
		}
		bcs, err := s.BoundaryConditions(vars)
		if err != nil {
			return nil, fmt.Errorf("echem: boundary conditions of submodel %q: %w", key, err)
		}
		for _, name := range sortedBCKeys(bcs) {
			if prev, ok := bcOwner[name]; ok {
				return nil, &ConflictError{Kind: "boundary condition", Key: name, First: prev, Second: key}
			}
			bcOwner[name] = key
			b.boundary[name] = bcs[name]
		}
		ics, err := s.InitialConditions(vars)
		if err != nil {
			return nil, fmt.Errorf("echem: initial conditions of submodel %q: %w", key, err)
		}
		if err := merge("initial condition", key, b.initial, icOwner, ics); err != nil {
			return nil, err
		}
		if es, ok := s.(EventSource); ok {
			events, err := es.Events(vars)
			if err != nil {
				return nil, fmt.Errorf("echem: events of submodel %q: %w", key, err)
			}
			for _, e := range events {
				if prev, ok := evOwner[e.Name]; ok {
					return nil, &ConflictError{Kind: "event", Key: e.Name, First: prev, Second: key}
				}
				evOwner[e.Name] = key
				b.events = append(b.events, e)
			}
		}
	}
	b.variables = vars.copyMap()
	for name := range b.variables {
		b.owners[name] = vars.Owner(name)
	}
	if err := b.check(vars, eqOwner, bcOwner, icOwner, evOwner); err != nil {
		return nil, err
	}

	m.reactions.freeze()
	m.built = b
	m.Log.WithFields(logrus.Fields{
		"model":      m.Name,
		"submodels":  len(b.keys),
		"variables":  len(b.variables),
		"rhs":        len(b.rhs),
		"algebraic":  len(b.algebraic),
		"geometry":   geometry.String(),
		"build time": time.Since(start),
	}).Info("echem: built model")
	return b, nil
}

// coupledVariables asks every submodel for its coupled variables in
// insertion order. A submodel that is missing an input is retried after
// the others, until a whole round makes no progress.
func (m *Model) coupledVariables(vars *VariableSet) error {
	pending := m.Keys()
	for len(pending) > 0 {
		var next []string
		var missing error
		for _, key := range pending {
			cv, err := m.submodels[key].CoupledVariables(vars)
			if err != nil {
				if errors.Is(err, ErrMissingDependency) {
					next = append(next, key)
					if missing == nil {
						missing = fmt.Errorf("echem: coupled variables of submodel %q: %w", key, err)
					}
					continue
				}
				return fmt.Errorf("echem: coupled variables of submodel %q: %w", key, err)
			}
			if err := vars.add(key, cv); err != nil {
				return err
			}
		}
		if len(next) == len(pending) {
			return missing
		}
		if len(next) > 0 {
			m.Log.WithFields(logrus.Fields{
				"model":    m.Name,
				"deferred": next,
			}).Debug("echem: deferring coupled variables")
		}
		pending = next
	}
	return nil
}

func merge(kind, key string, dst VariableMap, owner map[string]string, src VariableMap) error {
	for _, name := range sortedKeys(src) {
		if prev, ok := owner[name]; ok {
			return &ConflictError{Kind: kind, Key: name, First: prev, Second: key}
		}
		owner[name] = key
		dst[name] = src[name]
	}
	return nil
}
