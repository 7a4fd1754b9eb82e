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

package leadacid

import (
	"math"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// MainReaction is the name of the lead / lead dioxide reaction.
const MainReaction = "lead-acid main"

// Reaction returns the main reaction of a lead-acid cell: lead sulfate
// forms at both electrodes, consuming sulfuric acid from the electrolyte.
func Reaction() echem.Reaction {
	return echem.Reaction{
		Name:      MainReaction,
		Electrons: 2,
		Stoichiometry: map[echem.Domain]string{
			echem.Negative: names.Stoichiometry(echem.Negative),
			echem.Positive: names.Stoichiometry(echem.Positive),
		},
		ExchangeCurrent:      exchangeCurrent,
		OpenCircuitPotential: openCircuitPotential,
	}
}

func exchangeCurrent(d echem.Domain) (echem.Expression, error) {
	return echem.ParseExprf("%s * %s * %s / %s", names.SurfaceAreaDensity(d), names.ReferenceExchangeCurrent(d),
		names.XAvgElectrolyteConcentration, names.TypicalElectrolyteConc)
}

func openCircuitPotential(d echem.Domain) (echem.Expression, error) {
	return echem.NewExpression(echem.Call(names.OCPFunction(d), echem.Ref(names.XAvgElectrolyteConcentration)))
}

// molality returns log10 of the molality [mol/kg] of sulfuric acid at
// concentration c [mol/m3], assuming a solvent density of 1000 kg/m3.
func molality(c float64) float64 {
	return math.Log10(c / 1000)
}

// LeadOCP is the open-circuit potential [V] of the lead electrode against
// a standard hydrogen electrode, as a function of electrolyte
// concentration [mol/m3].
func LeadOCP(x ...float64) float64 {
	l := molality(x[0])
	return -0.294 - 0.074*l - 0.030*l*l - 0.031*l*l*l - 0.012*l*l*l*l
}

// LeadDioxideOCP is the open-circuit potential [V] of the lead dioxide
// electrode against a standard hydrogen electrode, as a function of
// electrolyte concentration [mol/m3].
func LeadDioxideOCP(x ...float64) float64 {
	l := molality(x[0])
	return 1.628 + 0.074*l + 0.033*l*l + 0.043*l*l*l + 0.022*l*l*l*l
}
