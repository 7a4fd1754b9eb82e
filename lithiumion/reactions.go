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

package lithiumion

import (
	"fmt"
	"math"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// MainReaction is the name of the intercalation reaction.
const MainReaction = "lithium-ion main"

// Reaction returns the intercalation reaction of lithium into the
// electrode particles. The exchange-current density depends on the
// particle surface concentration and the electrolyte concentration, and
// the open-circuit potential on the surface stoichiometry.
func Reaction() echem.Reaction {
	return echem.Reaction{
		Name:                 MainReaction,
		Electrons:            1,
		ExchangeCurrent:      exchangeCurrent,
		OpenCircuitPotential: openCircuitPotential,
	}
}

// stoichiometry returns the text of the surface stoichiometry of electrode d.
func stoichiometry(d echem.Domain) string {
	return fmt.Sprintf("%s / %s", echem.Ref(names.XAvgParticleSurfaceConcentration(d)),
		echem.Ref(names.MaximumConcentration(d)))
}

func exchangeCurrent(d echem.Domain) (echem.Expression, error) {
	x := stoichiometry(d)
	return echem.NewExpression(fmt.Sprintf("%s * %s * sqrt(%s * (1 - %s) * %s / %s)",
		echem.Ref(names.SurfaceAreaDensity(d)), echem.Ref(names.ReferenceExchangeCurrent(d)),
		x, x, echem.Ref(names.XAvgElectrolyteConcentration), echem.Ref(names.TypicalElectrolyteConc)))
}

func openCircuitPotential(d echem.Domain) (echem.Expression, error) {
	return echem.NewExpression(echem.Call(names.OCPFunction(d), stoichiometry(d)))
}

// GraphiteOCP is the open-circuit potential [V] of MCMB 2528 graphite as a
// function of stoichiometry, fitted to data from Dualfoil.
func GraphiteOCP(x ...float64) float64 {
	s := x[0]
	return 0.194 + 1.5*math.Exp(-120.0*s) +
		0.0351*math.Tanh((s-0.286)/0.083) -
		0.0045*math.Tanh((s-0.849)/0.119) -
		0.035*math.Tanh((s-0.9233)/0.05) -
		0.0147*math.Tanh((s-0.5)/0.034) -
		0.102*math.Tanh((s-0.194)/0.142) -
		0.022*math.Tanh((s-0.9)/0.0164) -
		0.011*math.Tanh((s-0.124)/0.0226) +
		0.0155*math.Tanh((s-0.105)/0.029)
}

// LiCoO2OCP is the open-circuit potential [V] of lithium cobalt oxide as a
// function of stoichiometry, fitted to data from Dualfoil.
func LiCoO2OCP(x ...float64) float64 {
	const stretch = 1.062
	s := stretch * x[0]
	return 2.16216 + 0.07645*math.Tanh(30.834-54.4806*s) +
		2.1581*math.Tanh(52.294-50.294*s) -
		0.14169*math.Tanh(11.0923-19.8543*s) +
		0.2051*math.Tanh(1.4684-5.4888*s) +
		0.2531*math.Tanh((-s+0.56478)/0.1316) -
		0.02167*math.Tanh((s-0.525)/0.006)
}
