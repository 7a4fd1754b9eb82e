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
	"github.com/ctessum/unit"
	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/names"
)

// TypicalCurrent is the default applied current [A].
const TypicalCurrent = 0.68

// constant returns a functional parameter of time with a fixed value.
func constant(v float64) echem.FunctionalParameter {
	return func(...float64) float64 { return v }
}

// DefaultParameters returns parameters for a graphite / lithium cobalt
// oxide pouch cell discharged at about 1C.
func DefaultParameters() *echem.ParameterSet {
	n, s, p := echem.Negative, echem.Separator, echem.Positive
	params := []echem.Parameter{
		echem.Scalar(names.FaradayConstant, 96485.33212, echem.CoulombPerMole, "charge per mole of electrons"),
		echem.Scalar(names.GasConstant, 8.314462618, echem.JoulePerMoleKelvin, ""),
		echem.Scalar(names.ReferenceTemperature, 298.15, unit.Kelvin, ""),
		echem.Scalar(names.AmbientTemperature, 298.15, unit.Kelvin, ""),

		echem.Scalar(names.Thickness(n), 1e-4, unit.Meter, ""),
		echem.Scalar(names.Thickness(s), 2.5e-5, unit.Meter, ""),
		echem.Scalar(names.Thickness(p), 1e-4, unit.Meter, ""),
		echem.Scalar(names.ElectrodeHeight, 0.137, unit.Meter, ""),
		echem.Scalar(names.ElectrodeWidth, 0.207, unit.Meter, ""),

		echem.Scalar(names.InitialPorosity(n), 0.3, unit.Dimless, ""),
		echem.Scalar(names.InitialPorosity(s), 1.0, unit.Dimless, ""),
		echem.Scalar(names.InitialPorosity(p), 0.3, unit.Dimless, ""),
		echem.Scalar(names.BruggemanCoefficient, 1.5, unit.Dimless, ""),

		echem.Scalar(names.ParticleRadius(n), 1e-5, unit.Meter, ""),
		echem.Scalar(names.ParticleRadius(p), 1e-5, unit.Meter, ""),
		echem.Scalar(names.SurfaceAreaDensity(n), 1.8e5, echem.PerMeter, "3 * active volume fraction / particle radius"),
		echem.Scalar(names.SurfaceAreaDensity(p), 1.8e5, echem.PerMeter, "3 * active volume fraction / particle radius"),
		echem.Scalar(names.ParticleDiffusivity(n), 3.9e-14, echem.Meter2PerSecond, ""),
		echem.Scalar(names.ParticleDiffusivity(p), 1e-13, echem.Meter2PerSecond, ""),
		echem.Scalar(names.MaximumConcentration(n), 24983.2619938437, echem.MolePerMeter3, ""),
		echem.Scalar(names.MaximumConcentration(p), 51217.9257309275, echem.MolePerMeter3, ""),
		echem.Scalar(names.InitialConcentration(n), 19986.609595075, echem.MolePerMeter3, "80% lithiated"),
		echem.Scalar(names.InitialConcentration(p), 30730.7554385565, echem.MolePerMeter3, "60% lithiated"),
		echem.Scalar(names.ReferenceExchangeCurrent(n), 16, echem.AmperePerMeter2, ""),
		echem.Scalar(names.ReferenceExchangeCurrent(p), 1, echem.AmperePerMeter2, ""),
		echem.Function(names.OCPFunction(n), 1, GraphiteOCP, "MCMB 2528 graphite"),
		echem.Function(names.OCPFunction(p), 1, LiCoO2OCP, "LiCoO2"),
		echem.Scalar(names.DoubleLayerCapacity(n), 0.2, echem.FaradPerMeter2, ""),
		echem.Scalar(names.DoubleLayerCapacity(p), 0.2, echem.FaradPerMeter2, ""),

		echem.Scalar(names.TypicalElectrolyteConc, 1000, echem.MolePerMeter3, ""),
		echem.Scalar(names.ElectrolyteDiffusivity, 5.34e-10, echem.Meter2PerSecond, ""),
		echem.Scalar(names.CationTransferenceNumber, 0.4, unit.Dimless, ""),
		echem.Scalar(names.ElectrolyteConductivity, 1.1, echem.SiemensPerMeter, ""),

		echem.Scalar(names.CurrentCollectorThickness(n), 2.5e-5, unit.Meter, "copper"),
		echem.Scalar(names.CurrentCollectorThickness(p), 2.5e-5, unit.Meter, "aluminium"),
		echem.Scalar(names.CurrentCollectorConductivity(n), 5.96e7, echem.SiemensPerMeter, "copper"),
		echem.Scalar(names.CurrentCollectorConductivity(p), 3.55e7, echem.SiemensPerMeter, "aluminium"),

		echem.Scalar(names.VolumetricHeatCapacity, 1.9e6, echem.JoulePerMeter3Kelvin, ""),
		echem.Scalar(names.HeatTransferCoefficient, 10, echem.WattPerMeter2Kelvin, ""),
		echem.Scalar(names.ThermalConductivity, 1, echem.WattPerMeterKelvin, "through-cell average"),

		echem.Scalar(names.TypicalCurrent, TypicalCurrent, echem.Ampere, ""),
		echem.Function(names.CurrentFunction, 1, constant(TypicalCurrent), "constant-current discharge"),
		echem.Function(names.VoltageFunction, 1, constant(4.1), "constant-voltage hold"),
		echem.Function(names.PowerFunction, 1, constant(2.5), "constant-power discharge"),
		echem.Scalar(names.LowerVoltageCutoff, 3.105, echem.Volt, ""),
		echem.Scalar(names.UpperVoltageCutoff, 4.7, echem.Volt, ""),
	}
	ps, err := echem.NewParameterSet(params...)
	if err != nil {
		panic(err)
	}
	return ps
}
