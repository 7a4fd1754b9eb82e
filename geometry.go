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

import "fmt"

// Geometry describes the spatial structure a discretiser should build
// for a model: the macroscale (through-cell plus current collector)
// structure and the microscale (particle) structure.
type Geometry struct {
	Macro, Micro string
}

func (g Geometry) String() string { return g.Macro + ", " + g.Micro }

// ResolveGeometry returns the geometry for a model with the given number
// of current-collector dimensions. It fails with an error wrapping
// ErrUnsupportedDimensionality for anything other than 0, 1 or 2.
func ResolveGeometry(dimensionality int) (Geometry, error) {
	switch dimensionality {
	case 0:
		return Geometry{Macro: "1D macro", Micro: "1D micro"}, nil
	case 1:
		return Geometry{Macro: "1+1D macro", Micro: "(1+0)+1D micro"}, nil
	case 2:
		return Geometry{Macro: "2+1D macro", Micro: "(2+0)+1D micro"}, nil
	}
	return Geometry{}, fmt.Errorf("echem: dimensionality %d: %w", dimensionality, ErrUnsupportedDimensionality)
}
