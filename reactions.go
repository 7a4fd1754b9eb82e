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

// Reaction describes an electrochemical reaction that interfacial
// submodels can host.
type Reaction struct {
	Name string

	// Electrons is the number of electrons transferred per reaction.
	Electrons int

	// Stoichiometry gives, per electrode, the name of the parameter holding
	// the electrolyte stoichiometry of the reaction. It may be empty for
	// reactions that do not change the electrolyte concentration.
	Stoichiometry map[Domain]string

	// ExchangeCurrent returns the exchange-current density of the
	// reaction in the given electrode.
	ExchangeCurrent func(d Domain) (Expression, error)

	// OpenCircuitPotential returns the open-circuit potential of the
	// reaction in the given electrode.
	OpenCircuitPotential func(d Domain) (Expression, error)
}

// ActiveReaction records that a reaction takes place in a domain and names
// the variable holding its interfacial current density.
type ActiveReaction struct {
	Domain         Domain
	Reaction       string
	CurrentDensity string
}

// Reactions tracks which reactions are declared for a model and which are
// active in each domain. Interfacial submodels activate reactions; later
// submodels, such as surface-form electrolyte conductivity, look them up
// instead of referencing the interfacial submodel directly.
type Reactions struct {
	declared map[string]Reaction
	active   map[Domain][]ActiveReaction
	frozen   bool
}

// NewReactions returns an empty registry.
func NewReactions() *Reactions {
	return &Reactions{
		declared: make(map[string]Reaction),
		active:   make(map[Domain][]ActiveReaction),
	}
}

// Declare makes rx available to interfacial submodels. Declaring a
// reaction that already exists replaces it.
func (r *Reactions) Declare(rx Reaction) error {
	if r.frozen {
		return fmt.Errorf("echem: declaring reaction %q: %w", rx.Name, ErrModelAlreadyBuilt)
	}
	if rx.Name == "" {
		return fmt.Errorf("echem: reaction with empty name")
	}
	if rx.ExchangeCurrent == nil || rx.OpenCircuitPotential == nil {
		return fmt.Errorf("echem: reaction %q needs exchange current and open-circuit potential", rx.Name)
	}
	r.declared[rx.Name] = rx
	return nil
}

// Reaction returns the declared reaction called name.
func (r *Reactions) Reaction(name string) (Reaction, error) {
	rx, ok := r.declared[name]
	if !ok {
		return Reaction{}, &DependencyError{Name: name, By: "reactions registry"}
	}
	return rx, nil
}

// Declared returns the names of the declared reactions in sorted order.
func (r *Reactions) Declared() []string {
	names := make([]string, 0, len(r.declared))
	for n := range r.declared {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Activate records that a reaction takes place in a domain. The reaction
// must have been declared, and the domain must be an electrode.
// Activating a reaction again replaces its current-density variable.
func (r *Reactions) Activate(a ActiveReaction) error {
	if r.frozen {
		return fmt.Errorf("echem: activating reaction %q: %w", a.Reaction, ErrModelAlreadyBuilt)
	}
	if _, err := r.Reaction(a.Reaction); err != nil {
		return err
	}
	if !a.Domain.IsElectrode() {
		return fmt.Errorf("echem: reaction %q cannot take place in domain %s", a.Reaction, a.Domain)
	}
	list := r.active[a.Domain]
	for i, prev := range list {
		if prev.Reaction == a.Reaction {
			list[i] = a
			return nil
		}
	}
	r.active[a.Domain] = append(list, a)
	return nil
}

func (r *Reactions) deactivate(a ActiveReaction) {
	list := r.active[a.Domain]
	for i, prev := range list {
		if prev == a {
			r.active[a.Domain] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Lookup returns the reactions active in domain d. It returns an error
// wrapping ErrMissingDependency if no reaction has been declared, or if d is
// an electrode with no active reaction. The separator hosts no reactions.
func (r *Reactions) Lookup(d Domain) ([]ActiveReaction, error) {
	if len(r.declared) == 0 {
		return nil, &DependencyError{Name: "reactions", By: d.Lower() + " reaction lookup"}
	}
	list := r.active[d]
	if d.IsElectrode() && len(list) == 0 {
		return nil, &DependencyError{Name: d.Lower() + " interfacial reaction", By: d.Lower() + " reaction lookup"}
	}
	return append([]ActiveReaction(nil), list...), nil
}

func (r *Reactions) freeze() { r.frozen = true }
