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
	"github.com/ctessum/unit"
	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// TypicalCurrent is the default applied current [A].
const TypicalCurrent = 1.0

func constant(v float64) echem.FunctionalParameter {
	return func(...float64) float64 { return v }
}

// DefaultParameters returns parameters for a small flooded lead-acid cell.
func DefaultParameters() *echem.ParameterSet {
	n, s, p := echem.Negative, echem.Separator, echem.Positive
	params := []echem.Parameter{
		echem.Scalar(names.FaradayConstant, 96485.33212, echem.CoulombPerMole, "charge per mole of electrons"),
		echem.Scalar(names.GasConstant, 8.314462618, echem.JoulePerMoleKelvin, ""),
		echem.Scalar(names.ReferenceTemperature, 294.85, unit.Kelvin, ""),
		echem.Scalar(names.AmbientTemperature, 294.85, unit.Kelvin, ""),

		echem.Scalar(names.Thickness(n), 9e-4, unit.Meter, ""),
		echem.Scalar(names.Thickness(s), 1.5e-3, unit.Meter, ""),
		echem.Scalar(names.Thickness(p), 1.25e-3, unit.Meter, ""),
		echem.Scalar(names.ElectrodeHeight, 0.114, unit.Meter, ""),
		echem.Scalar(names.ElectrodeWidth, 0.065, unit.Meter, ""),

		echem.Scalar(names.InitialPorosity(n), 0.53, unit.Dimless, ""),
		echem.Scalar(names.InitialPorosity(s), 0.92, unit.Dimless, ""),
		echem.Scalar(names.InitialPorosity(p), 0.57, unit.Dimless, ""),
		echem.Scalar(names.BruggemanCoefficient, 1.5, unit.Dimless, ""),

		echem.Scalar(names.SurfaceAreaDensity(n), 2.5e6, echem.PerMeter, ""),
		echem.Scalar(names.SurfaceAreaDensity(p), 2.3e6, echem.PerMeter, ""),
		echem.Scalar(names.ReferenceExchangeCurrent(n), 0.06, echem.AmperePerMeter2, ""),
		echem.Scalar(names.ReferenceExchangeCurrent(p), 0.004, echem.AmperePerMeter2, ""),
		echem.Function(names.OCPFunction(n), 1, LeadOCP, "Pb / PbSO4"),
		echem.Function(names.OCPFunction(p), 1, LeadDioxideOCP, "PbO2 / PbSO4"),
		echem.Scalar(names.DoubleLayerCapacity(n), 0.2, echem.FaradPerMeter2, ""),
		echem.Scalar(names.DoubleLayerCapacity(p), 0.2, echem.FaradPerMeter2, ""),
		echem.Scalar(names.VolumeChange(n), 3.03e-5, echem.Meter3PerMole, "molar volume of PbSO4 minus Pb"),
		echem.Scalar(names.VolumeChange(p), -2.35e-5, echem.Meter3PerMole, "molar volume of PbO2 minus PbSO4"),
		echem.Scalar(names.Stoichiometry(n), -1, unit.Dimless, "acid produced per reaction"),
		echem.Scalar(names.Stoichiometry(p), 3, unit.Dimless, "acid produced per reaction"),

		echem.Scalar(names.TypicalElectrolyteConc, 5650, echem.MolePerMeter3, ""),
		echem.Scalar(names.ElectrolyteDiffusivity, 1.75e-9, echem.Meter2PerSecond, ""),
		echem.Scalar(names.CationTransferenceNumber, 0.7, unit.Dimless, ""),
		echem.Scalar(names.ElectrolyteConductivity, 70, echem.SiemensPerMeter, ""),

		echem.Scalar(names.CurrentCollectorThickness(n), 1e-3, unit.Meter, ""),
		echem.Scalar(names.CurrentCollectorThickness(p), 1e-3, unit.Meter, ""),
		echem.Scalar(names.CurrentCollectorConductivity(n), 4.8e6, echem.SiemensPerMeter, "lead"),
		echem.Scalar(names.CurrentCollectorConductivity(p), 4.8e6, echem.SiemensPerMeter, "lead"),

		echem.Scalar(names.VolumetricHeatCapacity, 2.8e6, echem.JoulePerMeter3Kelvin, ""),
		echem.Scalar(names.HeatTransferCoefficient, 10, echem.WattPerMeter2Kelvin, ""),
		echem.Scalar(names.ThermalConductivity, 0.6, echem.WattPerMeterKelvin, ""),

		echem.Scalar(names.TypicalCurrent, TypicalCurrent, echem.Ampere, ""),
		echem.Function(names.CurrentFunction, 1, constant(TypicalCurrent), "constant-current discharge"),
		echem.Function(names.VoltageFunction, 1, constant(2.1), "constant-voltage hold"),
		echem.Function(names.PowerFunction, 1, constant(2), "constant-power discharge"),
		echem.Scalar(names.LowerVoltageCutoff, 1.75, echem.Volt, ""),
		echem.Scalar(names.UpperVoltageCutoff, 2.42, echem.Volt, ""),
	}
	ps, err := echem.NewParameterSet(params...)
	if err != nil {
		panic(err)
	}
	return ps
}
