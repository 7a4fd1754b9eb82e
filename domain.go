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

import "strings"

// Domain identifies the region of the cell a submodel or reaction acts in.
type Domain int

// Cell domains. None is used for aspects that are not tied to one region.
const (
	None Domain = iota
	Negative
	Separator
	Positive
)

// Domains lists the through-cell domains in order.
var Domains = []Domain{Negative, Separator, Positive}

// Electrodes lists the domains that host reactions.
var Electrodes = []Domain{Negative, Positive}

func (d Domain) String() string {
	switch d {
	case Negative:
		return "Negative"
	case Separator:
		return "Separator"
	case Positive:
		return "Positive"
	default:
		return "None"
	}
}

// Lower returns the lower-case domain name, as used inside variable names.
func (d Domain) Lower() string { return strings.ToLower(d.String()) }

// Region returns the name of the region used to prefix region properties:
// "Negative electrode", "Separator" or "Positive electrode".
func (d Domain) Region() string {
	if d == Negative || d == Positive {
		return d.String() + " electrode"
	}
	return d.String()
}

// Abbrev returns the subscript used for the domain's spatial variable:
// "n", "s" or "p".
func (d Domain) Abbrev() string {
	switch d {
	case Negative:
		return "n"
	case Separator:
		return "s"
	case Positive:
		return "p"
	}
	return ""
}

// IsElectrode reports whether reactions take place in d.
func (d Domain) IsElectrode() bool { return d == Negative || d == Positive }
