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

// Package names holds the names of the variables and parameters that
// submodels share. Submodels refer to each other's outputs only through
// these names.
package names

import (
	"fmt"

	"github.com/spatialmodel/echem"
)

// Cell-wide variables.
const (
	Current                        = "Current"
	TotalCurrentDensity            = "Total current density"
	CurrentCollectorCurrentDensity = "Current collector current density"
	DischargeCapacity              = "Discharge capacity"
	TerminalVoltage                = "Terminal voltage"
	LocalVoltage                   = "Local voltage"
	CellTemperature                = "Cell temperature"
	XAvgCellTemperature            = "X-averaged cell temperature"
	VolumeAvgCellTemperature       = "Volume-averaged cell temperature"
	XAvgTotalHeating               = "X-averaged total heating"
	XAvgElectrolyteConcentration   = "X-averaged electrolyte concentration"
	ElectrolyteFlux                = "Electrolyte flux"
	VolumeAveragedVelocity         = "Volume-averaged velocity"
	SeparatorTransverseVelocity    = "X-averaged separator transverse volume-averaged velocity"
)

// Cell-wide parameters.
const (
	FaradayConstant          = "Faraday constant"
	GasConstant              = "Ideal gas constant"
	ReferenceTemperature     = "Reference temperature"
	AmbientTemperature       = "Ambient temperature"
	ElectrodeHeight          = "Electrode height"
	ElectrodeWidth           = "Electrode width"
	TypicalCurrent           = "Typical current"
	TypicalElectrolyteConc   = "Typical electrolyte concentration"
	BruggemanCoefficient     = "Bruggeman coefficient"
	CurrentFunction          = "Current function"
	VoltageFunction          = "Voltage function"
	PowerFunction            = "Power function"
	LowerVoltageCutoff       = "Lower voltage cut-off"
	UpperVoltageCutoff       = "Upper voltage cut-off"
	VolumetricHeatCapacity   = "Cell volumetric heat capacity"
	HeatTransferCoefficient  = "Total heat transfer coefficient"
	ThermalConductivity      = "Thermal conductivity"
	ElectrolyteDiffusivity   = "Electrolyte diffusivity"
	CationTransferenceNumber = "Cation transference number"
	ElectrolyteConductivity  = "Electrolyte conductivity"
)

func xavg(name string) string { return "X-averaged " + lowerFirst(name) }

func lowerFirst(s string) string {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return s
	}
	return string(s[0]+'a'-'A') + s[1:]
}

// Porosity is the porosity of domain d.
func Porosity(d echem.Domain) string { return d.Region() + " porosity" }

// XAvgPorosity is the x-averaged porosity of domain d.
func XAvgPorosity(d echem.Domain) string { return xavg(Porosity(d)) }

// ElectrolyteTortuosity is the tortuosity of the electrolyte in domain d.
func ElectrolyteTortuosity(d echem.Domain) string { return d.String() + " electrolyte tortuosity" }

// ElectrodeTortuosity is the tortuosity of the solid phase in electrode d.
func ElectrodeTortuosity(d echem.Domain) string { return d.String() + " electrode tortuosity" }

// InterfacialCurrent is the interfacial current density in electrode d.
func InterfacialCurrent(d echem.Domain) string {
	return d.String() + " electrode interfacial current density"
}

// XAvgInterfacialCurrent is the x-averaged interfacial current density in electrode d.
func XAvgInterfacialCurrent(d echem.Domain) string { return xavg(InterfacialCurrent(d)) }

// ExchangeCurrent is the x-averaged exchange current density in electrode d.
func ExchangeCurrent(d echem.Domain) string {
	return xavg(d.String() + " electrode exchange current density")
}

// Overpotential is the x-averaged reaction overpotential in electrode d.
func Overpotential(d echem.Domain) string {
	return xavg(d.String() + " electrode reaction overpotential")
}

// OpenCircuitPotential is the x-averaged open circuit potential of electrode d.
func OpenCircuitPotential(d echem.Domain) string {
	return xavg(d.String() + " electrode open circuit potential")
}

// SurfacePotentialDifference is the surface potential difference in electrode d.
func SurfacePotentialDifference(d echem.Domain) string {
	return d.String() + " electrode surface potential difference"
}

// XAvgSurfacePotentialDifference is the x-averaged surface potential difference in electrode d.
func XAvgSurfacePotentialDifference(d echem.Domain) string {
	return xavg(SurfacePotentialDifference(d))
}

// ParticleConcentration is the concentration in the particles of electrode d.
func ParticleConcentration(d echem.Domain) string { return d.String() + " particle concentration" }

// XAvgParticleConcentration is the x-averaged particle concentration in electrode d.
func XAvgParticleConcentration(d echem.Domain) string { return xavg(ParticleConcentration(d)) }

// ParticleSurfaceConcentration is the particle surface concentration in electrode d.
func ParticleSurfaceConcentration(d echem.Domain) string {
	return d.String() + " particle surface concentration"
}

// XAvgParticleSurfaceConcentration is the x-averaged particle surface concentration in electrode d.
func XAvgParticleSurfaceConcentration(d echem.Domain) string {
	return xavg(ParticleSurfaceConcentration(d))
}

// ParticleFlux is the x-averaged flux within the particles of electrode d.
func ParticleFlux(d echem.Domain) string { return xavg(d.String() + " particle flux") }

// ElectrodePotential is the solid-phase potential of electrode d.
func ElectrodePotential(d echem.Domain) string { return d.String() + " electrode potential" }

// XAvgElectrodePotential is the x-averaged solid-phase potential of electrode d.
func XAvgElectrodePotential(d echem.Domain) string { return xavg(ElectrodePotential(d)) }

// ElectrodeCurrentDensity is the solid-phase current density in electrode d.
func ElectrodeCurrentDensity(d echem.Domain) string { return d.String() + " electrode current density" }

// ElectrolytePotential is the electrolyte potential in domain d.
func ElectrolytePotential(d echem.Domain) string { return d.String() + " electrolyte potential" }

// XAvgElectrolytePotential is the x-averaged electrolyte potential in domain d.
func XAvgElectrolytePotential(d echem.Domain) string { return xavg(ElectrolytePotential(d)) }

// ElectrolyteCurrentDensity is the electrolyte current density in domain d.
func ElectrolyteCurrentDensity(d echem.Domain) string {
	return d.String() + " electrolyte current density"
}

// ElectrolyteConcentration is the electrolyte concentration in domain d.
func ElectrolyteConcentration(d echem.Domain) string {
	return d.String() + " electrolyte concentration"
}

// CurrentCollectorPotential is the potential of the current collector
// attached to electrode d.
func CurrentCollectorPotential(d echem.Domain) string {
	return d.String() + " current collector potential"
}

// Thickness is the thickness parameter of domain d.
func Thickness(d echem.Domain) string { return d.Region() + " thickness" }

// InitialPorosity is the initial porosity parameter of domain d.
func InitialPorosity(d echem.Domain) string { return d.Region() + " initial porosity" }

// ParticleRadius is the particle radius parameter of electrode d.
func ParticleRadius(d echem.Domain) string { return d.String() + " particle radius" }

// ParticleDiffusivity is the particle diffusivity parameter of electrode d.
func ParticleDiffusivity(d echem.Domain) string { return d.String() + " particle diffusivity" }

// MaximumConcentration is the maximum particle concentration parameter of electrode d.
func MaximumConcentration(d echem.Domain) string {
	return fmt.Sprintf("Maximum concentration in %s electrode", d.Lower())
}

// InitialConcentration is the initial particle concentration parameter of electrode d.
func InitialConcentration(d echem.Domain) string {
	return fmt.Sprintf("Initial concentration in %s electrode", d.Lower())
}

// SurfaceAreaDensity is the surface area per unit volume parameter of electrode d.
func SurfaceAreaDensity(d echem.Domain) string { return d.Region() + " surface area density" }

// ReferenceExchangeCurrent is the reference exchange-current density parameter of electrode d.
func ReferenceExchangeCurrent(d echem.Domain) string {
	return d.Region() + " reference exchange-current density"
}

// OCPFunction is the open-circuit potential functional parameter of electrode d.
func OCPFunction(d echem.Domain) string { return d.Region() + " OCP" }

// DoubleLayerCapacity is the double-layer capacity parameter of electrode d.
func DoubleLayerCapacity(d echem.Domain) string { return d.Region() + " double-layer capacity" }

// VolumeChange is the volume change per mole of reaction parameter of electrode d.
func VolumeChange(d echem.Domain) string { return d.Region() + " volume change" }

// Stoichiometry is the electrolyte stoichiometry parameter of the main reaction in electrode d.
func Stoichiometry(d echem.Domain) string { return d.Region() + " electrolyte stoichiometry" }

// CurrentCollectorConductivity is the conductivity parameter of the current
// collector attached to electrode d.
func CurrentCollectorConductivity(d echem.Domain) string {
	return d.String() + " current collector conductivity"
}

// CurrentCollectorThickness is the thickness parameter of the current
// collector attached to electrode d.
func CurrentCollectorThickness(d echem.Domain) string {
	return d.String() + " current collector thickness"
}

// CellThickness returns the expression text for the total thickness of the
// negative electrode, separator and positive electrode.
func CellThickness() string {
	return fmt.Sprintf("(%s + %s + %s)",
		echem.Ref(Thickness(echem.Negative)),
		echem.Ref(Thickness(echem.Separator)),
		echem.Ref(Thickness(echem.Positive)))
}
