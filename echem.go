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

// Package echem assembles mathematical models of electrochemical cells
// from interchangeable physics submodels.
//
// A model family (see packages lithiumion and leadacid) validates an
// Options record, runs a fixed sequence of Steps that each pick a submodel
// variant and insert it into a Model, and finally calls Build, which merges
// every submodel's variables, equations, boundary conditions and initial
// conditions into an immutable BuiltModel ready for discretisation.
package echem

// Version gives the version number.
const Version = "0.3.0"
