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

// Package battery holds the assembly steps shared by the battery model
// families. Each step reads the model options, picks a submodel variant
// from a dispatch table and stores it under a fixed key.
package battery

import (
	"fmt"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/science/circuit"
	"github.com/spatialmodel/echem/science/convection"
	"github.com/spatialmodel/echem/science/currentcollector"
	"github.com/spatialmodel/echem/science/electrode/ohm"
	"github.com/spatialmodel/echem/science/electrolyte/conductivity"
	"github.com/spatialmodel/echem/science/kinetics"
	"github.com/spatialmodel/echem/science/thermal"
	"github.com/spatialmodel/echem/science/tortuosity"
)

// Submodel map keys.
const (
	ExternalCircuitKey       = "external circuit"
	PorosityKey              = "porosity"
	ElectrolyteTortuosityKey = "electrolyte tortuosity"
	ElectrodeTortuosityKey   = "electrode tortuosity"
	ConvectionKey            = "convection"
	ConductivityKey          = "leading-order electrolyte conductivity"
	DiffusionKey             = "electrolyte diffusion"
	ThermalKey               = "thermal"
	CurrentCollectorKey      = "current collector"
)

// InterfaceKey returns the key of the interfacial kinetics of electrode d.
func InterfaceKey(d echem.Domain) string { return d.Lower() + " interface" }

// ParticleKey returns the key of the particle submodel of electrode d.
func ParticleKey(d echem.Domain) string { return d.Lower() + " particle" }

// ElectrodeKey returns the key of the solid-phase submodel of electrode d.
func ElectrodeKey(d echem.Domain) string { return d.Lower() + " electrode" }

// SurfaceFormKey returns the key of the surface-form electrolyte
// conductivity submodel of domain d.
func SurfaceFormKey(d echem.Domain) string {
	return "leading-order " + d.Lower() + " electrolyte conductivity"
}

// keyed is a submodel and the key it is stored under.
type keyed struct {
	key string
	sub echem.Submodel
}

var externalCircuits = map[echem.OperatingMode]func(*echem.ParameterSet) echem.Submodel{
	echem.ModeCurrent: func(p *echem.ParameterSet) echem.Submodel { return circuit.NewCurrentControl(p) },
	echem.ModeVoltage: func(p *echem.ParameterSet) echem.Submodel { return circuit.NewVoltageControl(p) },
	echem.ModePower:   func(p *echem.ParameterSet) echem.Submodel { return circuit.NewPowerControl(p) },
}

// Without a surface-form state, the inverse kinetics supply the surface
// potential difference.
var interfaces = map[echem.SurfaceForm]func(*echem.ParameterSet, echem.Domain, echem.Reaction) echem.Submodel{
	echem.SurfaceFormNone: func(p *echem.ParameterSet, d echem.Domain, rx echem.Reaction) echem.Submodel {
		return kinetics.NewInverseButlerVolmer(p, d, rx)
	},
	echem.SurfaceFormDifferential: func(p *echem.ParameterSet, d echem.Domain, rx echem.Reaction) echem.Submodel {
		return kinetics.NewButlerVolmer(p, d, rx)
	},
	echem.SurfaceFormAlgebraic: func(p *echem.ParameterSet, d echem.Domain, rx echem.Reaction) echem.Submodel {
		return kinetics.NewButlerVolmer(p, d, rx)
	},
}

var conductivities = map[echem.SurfaceForm]func(*echem.ParameterSet, *echem.Reactions) ([]keyed, error){
	echem.SurfaceFormNone: func(p *echem.ParameterSet, _ *echem.Reactions) ([]keyed, error) {
		return []keyed{{ConductivityKey, conductivity.NewLeadingOrder(p)}}, nil
	},
	echem.SurfaceFormDifferential: func(p *echem.ParameterSet, rx *echem.Reactions) ([]keyed, error) {
		o := make([]keyed, len(echem.Domains))
		for i, d := range echem.Domains {
			s, err := conductivity.NewLeadingOrderDifferential(p, d, rx)
			if err != nil {
				return nil, err
			}
			o[i] = keyed{SurfaceFormKey(d), s}
		}
		return o, nil
	},
	echem.SurfaceFormAlgebraic: func(p *echem.ParameterSet, rx *echem.Reactions) ([]keyed, error) {
		o := make([]keyed, len(echem.Domains))
		for i, d := range echem.Domains {
			s, err := conductivity.NewLeadingOrderAlgebraic(p, d, rx)
			if err != nil {
				return nil, err
			}
			o[i] = keyed{SurfaceFormKey(d), s}
		}
		return o, nil
	},
}

var thermals = map[echem.Thermal]func(*echem.ParameterSet) echem.Submodel{
	echem.ThermalIsothermal: func(p *echem.ParameterSet) echem.Submodel { return thermal.NewIsothermal(p) },
	echem.ThermalXLumped:    func(p *echem.ParameterSet) echem.Submodel { return thermal.NewXLumped(p) },
	echem.ThermalXFull:      func(p *echem.ParameterSet) echem.Submodel { return thermal.NewXFull(p) },
}

var currentCollectors = map[echem.CurrentCollector]func(*echem.ParameterSet) echem.Submodel{
	echem.CollectorUniform:       func(p *echem.ParameterSet) echem.Submodel { return currentcollector.NewUniform(p) },
	echem.CollectorPotentialPair: func(p *echem.ParameterSet) echem.Submodel { return currentcollector.NewPotentialPair(p) },
}

// Base is a battery model under assembly. Model families embed it and
// add their own steps.
type Base struct {
	*echem.Model

	// Reaction is the name of the main electrode reaction.
	Reaction string
}

// NewBase returns a model with no submodels whose interfaces host the
// reaction with the given name.
func NewBase(name string, options echem.Options, param *echem.ParameterSet, reaction string) *Base {
	return &Base{Model: echem.New(name, options, param), Reaction: reaction}
}

// Steps adapts assembly methods to echem.Step so they can be run by
// Model.Assemble.
func Steps(fs ...func() error) []echem.Step {
	o := make([]echem.Step, len(fs))
	for i, f := range fs {
		f := f
		o[i] = func(*echem.Model) error { return f() }
	}
	return o
}

// Unsupported returns the error for an option value that has no variant
// for aspect.
func (b *Base) Unsupported(aspect string, v fmt.Stringer) error {
	return &echem.ConfigurationError{Model: b.Name, Aspect: aspect, Value: v}
}

// DefaultGeometry returns the geometry for the model's dimensionality.
func (b *Base) DefaultGeometry() (echem.Geometry, error) {
	return echem.ResolveGeometry(b.Options().Dimensionality)
}

// SetExternalCircuitSubmodel selects the external circuit for the
// operating mode.
func (b *Base) SetExternalCircuitSubmodel() error {
	mode := b.Options().OperatingMode
	f, ok := externalCircuits[mode]
	if !ok {
		return b.Unsupported(echem.OperatingModeKey, mode)
	}
	return b.SetSubmodel(ExternalCircuitKey, f(b.Param()))
}

// SetTortuositySubmodels adds Bruggeman tortuosity for the electrolyte and
// the electrode solid phase.
func (b *Base) SetTortuositySubmodels() error {
	if err := b.SetSubmodel(ElectrolyteTortuosityKey, tortuosity.NewBruggeman(b.Param(), tortuosity.Electrolyte)); err != nil {
		return err
	}
	return b.SetSubmodel(ElectrodeTortuosityKey, tortuosity.NewBruggeman(b.Param(), tortuosity.Electrode))
}

// SetConvectionSubmodel adds the convection submodel.
func (b *Base) SetConvectionSubmodel() error {
	return b.SetSubmodel(ConvectionKey, convection.NewNoConvection(b.Param()))
}

// SetInterfacialSubmodel adds the kinetics of the main reaction in both
// electrodes. The reaction must already be declared.
func (b *Base) SetInterfacialSubmodel() error {
	rx, err := b.Reactions().Reaction(b.Reaction)
	if err != nil {
		return err
	}
	form := b.Options().SurfaceForm
	f, ok := interfaces[form]
	if !ok {
		return b.Unsupported(echem.SurfaceFormKey, form)
	}
	for _, d := range echem.Electrodes {
		if err := b.SetSubmodel(InterfaceKey(d), f(b.Param(), d, rx)); err != nil {
			return err
		}
	}
	return nil
}

// SetNegativeElectrodeSubmodel adds leading-order Ohm's law in the
// negative electrode.
func (b *Base) SetNegativeElectrodeSubmodel() error {
	return b.SetSubmodel(ElectrodeKey(echem.Negative), ohm.NewLeadingOrder(b.Param(), echem.Negative))
}

// SetPositiveElectrodeSubmodel adds leading-order Ohm's law in the
// positive electrode.
func (b *Base) SetPositiveElectrodeSubmodel() error {
	return b.SetSubmodel(ElectrodeKey(echem.Positive), ohm.NewLeadingOrder(b.Param(), echem.Positive))
}

// SetElectrolyteConductivitySubmodel selects the electrolyte conductivity
// for the surface form. The surface-form variants look up the active
// reactions, so the interfacial submodels must be set first.
func (b *Base) SetElectrolyteConductivitySubmodel() error {
	form := b.Options().SurfaceForm
	f, ok := conductivities[form]
	if !ok {
		return b.Unsupported(echem.SurfaceFormKey, form)
	}
	subs, err := f(b.Param(), b.Reactions())
	if err != nil {
		return err
	}
	for _, s := range subs {
		if err := b.SetSubmodel(s.key, s.sub); err != nil {
			return err
		}
	}
	return nil
}

// SetThermalSubmodel selects the thermal submodel.
func (b *Base) SetThermalSubmodel() error {
	opt := b.Options().Thermal
	f, ok := thermals[opt]
	if !ok {
		return b.Unsupported(echem.ThermalKey, opt)
	}
	return b.SetSubmodel(ThermalKey, f(b.Param()))
}

// SetCurrentCollectorSubmodel selects the current collector submodel.
func (b *Base) SetCurrentCollectorSubmodel() error {
	opt := b.Options().CurrentCollector
	f, ok := currentCollectors[opt]
	if !ok {
		return b.Unsupported(echem.CurrentCollectorKey, opt)
	}
	return b.SetSubmodel(CurrentCollectorKey, f(b.Param()))
}
