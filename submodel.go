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

// Submodel describes one physical aspect of a cell. Every variant of every
// aspect satisfies this interface; variants differ only in the expressions
// they return.
//
// The methods are called by Model.Build in phases: FundamentalVariables for
// every submodel first, then CoupledVariables, then the equations and
// conditions. Submodels must not keep state between calls.
type Submodel interface {
	// Name returns a short description of the variant.
	Name() string

	// Domain returns the domain the submodel acts in, or None.
	Domain() Domain

	// FundamentalVariables returns the variables the submodel defines
	// without reference to other submodels. State variables are declared
	// here.
	FundamentalVariables() (VariableMap, error)

	// CoupledVariables returns the variables that depend on variables
	// defined by other submodels. Missing inputs are reported by returning
	// the error from vars.Get or vars.Require unchanged.
	CoupledVariables(vars *VariableSet) (VariableMap, error)

	// Equations returns the governing equations for the submodel's states.
	Equations(vars *VariableSet) (Equations, error)

	// BoundaryConditions returns the boundary conditions for the
	// submodel's distributed variables.
	BoundaryConditions(vars *VariableSet) (map[string]BoundaryCondition, error)

	// InitialConditions returns initial values (or initial guesses for
	// algebraic states) for the submodel's states.
	InitialConditions(vars *VariableSet) (VariableMap, error)
}

// EventSource is implemented by submodels that define events, such as
// voltage cut-offs, that end a simulation.
type EventSource interface {
	Events(vars *VariableSet) ([]Event, error)
}

// ReactionSource is implemented by interfacial kinetics submodels. When
// one is added to a Model, its reaction is activated in the model's
// reactions registry.
type ReactionSource interface {
	Reaction() ActiveReaction
}

// Equations holds differential (Rhs) and algebraic equations keyed by the
// state variable they govern.
type Equations struct {
	Rhs       VariableMap
	Algebraic VariableMap
}

// ConditionType is the type of a boundary condition.
type ConditionType int

// Boundary condition types.
const (
	Dirichlet ConditionType = iota
	Neumann
)

func (c ConditionType) String() string {
	if c == Neumann {
		return "Neumann"
	}
	return "Dirichlet"
}

// Condition is the condition at one boundary.
type Condition struct {
	Value Expression
	Type  ConditionType
}

// BoundaryCondition holds the conditions at both ends of a variable's
// domain.
type BoundaryCondition struct {
	Left, Right Condition
}

// Event is a named expression whose sign change ends a simulation.
type Event struct {
	Name       string
	Expression Expression
}

// Base provides default, empty implementations of the Submodel methods.
// It is meant to be embedded.
type Base struct {
	param  *ParameterSet
	domain Domain
}

// NewBase returns a Base for a submodel acting in domain.
func NewBase(param *ParameterSet, domain Domain) Base {
	return Base{param: param, domain: domain}
}

// Param returns the shared parameter set.
func (b Base) Param() *ParameterSet { return b.param }

// Domain implements Submodel.
func (b Base) Domain() Domain { return b.domain }

// FundamentalVariables implements Submodel.
func (b Base) FundamentalVariables() (VariableMap, error) { return nil, nil }

// CoupledVariables implements Submodel.
func (b Base) CoupledVariables(vars *VariableSet) (VariableMap, error) { return nil, nil }

// Equations implements Submodel.
func (b Base) Equations(vars *VariableSet) (Equations, error) { return Equations{}, nil }

// BoundaryConditions implements Submodel.
func (b Base) BoundaryConditions(vars *VariableSet) (map[string]BoundaryCondition, error) {
	return nil, nil
}

// InitialConditions implements Submodel.
func (b Base) InitialConditions(vars *VariableSet) (VariableMap, error) { return nil, nil }
