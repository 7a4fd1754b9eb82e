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
)

// Errors returned while configuring, assembling or building a model.
// The typed errors below wrap one of these, so callers can test with errors.Is.
var (
	// ErrInvalidOption is returned for unrecognized option keys, values
	// outside an option's legal set and incompatible option combinations.
	ErrInvalidOption = errors.New("invalid option")

	// ErrUnsupportedConfiguration is returned when a legal option value has
	// no submodel variant registered for it.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")

	// ErrModelBuild is returned when submodel contributions are inconsistent,
	// for example when two submodels define the same variable.
	ErrModelBuild = errors.New("model build error")

	// ErrModelAlreadyBuilt is returned by any attempt to mutate or rebuild
	// a model that has already been built.
	ErrModelAlreadyBuilt = errors.New("model already built")

	// ErrMissingDependency is returned when a variable or reaction lookup
	// references something that has not been defined.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrUnsupportedDimensionality is returned for dimensionalities other
	// than 0, 1 and 2.
	ErrUnsupportedDimensionality = errors.New("unsupported dimensionality")
)

// OptionError describes a rejected option.
type OptionError struct {
	Key    string
	Value  interface{}
	Reason string

	// Err, if set, is a more specific cause, such as
	// ErrUnsupportedDimensionality.
	Err error
}

func (e *OptionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("echem: invalid option %q = %v", e.Key, e.Value)
	}
	return fmt.Sprintf("echem: invalid option %q = %v: %s", e.Key, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidOption and the specific cause, if any.
func (e *OptionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidOption}
	}
	return []error{ErrInvalidOption, e.Err}
}

// ConfigurationError reports an option value with no registered
// submodel variant for the given aspect.
type ConfigurationError struct {
	Model, Aspect string
	Value         fmt.Stringer
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("echem: %s has no %s submodel for option value %q", e.Model, e.Aspect, e.Value.String())
}

// Unwrap returns ErrUnsupportedConfiguration.
func (e *ConfigurationError) Unwrap() error { return ErrUnsupportedConfiguration }

// ConflictError reports two submodels contributing the same key.
type ConflictError struct {
	// Kind is the kind of contribution, e.g. "variable" or "boundary condition".
	Kind string
	Key  string
	// First and Second are the submodel map keys of the two contributors.
	First, Second string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("echem: %s %q is defined by both submodel %q and submodel %q", e.Kind, e.Key, e.First, e.Second)
}

// Unwrap returns ErrModelBuild.
func (e *ConflictError) Unwrap() error { return ErrModelBuild }

// DependencyError reports a name that was needed but not available.
type DependencyError struct {
	// Name is the missing variable, parameter or reaction.
	Name string
	// By names whatever needed it, if known.
	By string
}

func (e *DependencyError) Error() string {
	if e.By == "" {
		return fmt.Sprintf("echem: missing dependency %q", e.Name)
	}
	return fmt.Sprintf("echem: %s requires %q, which is not defined", e.By, e.Name)
}

// Unwrap returns ErrMissingDependency.
func (e *DependencyError) Unwrap() error { return ErrMissingDependency }

// buildError is a structural inconsistency that is not a key collision.
func buildError(format string, args ...interface{}) error {
	return fmt.Errorf("echem: %s: %w", fmt.Sprintf(format, args...), ErrModelBuild)
}
