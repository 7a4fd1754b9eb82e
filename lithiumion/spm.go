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

// Package lithiumion assembles lithium-ion battery models from the
// submodels in the science packages.
package lithiumion

import (
	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/battery"
	"github.com/spatialmodel/echem/science/electrolyte/diffusion"
	"github.com/spatialmodel/echem/science/particle/fast"
	"github.com/spatialmodel/echem/science/particle/fickian"
	"github.com/spatialmodel/echem/science/porosity"
)

var particles = map[echem.Particle]func(*echem.ParameterSet, echem.Domain) echem.Submodel{
	echem.ParticleFickian: func(p *echem.ParameterSet, d echem.Domain) echem.Submodel { return fickian.NewSingleParticle(p, d) },
	echem.ParticleFast:    func(p *echem.ParameterSet, d echem.Domain) echem.Submodel { return fast.NewSingleParticle(p, d) },
}

// SPM is the Single Particle Model. Each electrode is represented by a
// single spherical particle and the electrolyte concentration is uniform.
type SPM struct {
	*battery.Base
}

// NewSPM creates a Single Particle Model from raw options (see
// echem.ParseOptions). If param is nil, DefaultParameters is used. If
// build is true the model is also built; otherwise the caller can replace
// submodels with SetSubmodel before calling Build.
//
// Invalid options are reported before any model is created.
func NewSPM(raw map[string]interface{}, param *echem.ParameterSet, build bool) (*SPM, error) {
	options, err := echem.ParseOptions(raw)
	if err != nil {
		return nil, err
	}
	if param == nil {
		param = DefaultParameters()
	}
	m := &SPM{battery.NewBase("Single Particle Model", options, param, MainReaction)}
	err = m.Assemble(battery.Steps(
		m.SetReactions,
		m.SetExternalCircuitSubmodel,
		m.SetPorositySubmodel,
		m.SetTortuositySubmodels,
		m.SetConvectionSubmodel,
		m.SetInterfacialSubmodel,
		m.SetParticleSubmodel,
		m.SetNegativeElectrodeSubmodel,
		m.SetPositiveElectrodeSubmodel,
		m.SetElectrolyteSubmodel,
		m.SetThermalSubmodel,
		m.SetCurrentCollectorSubmodel,
	)...)
	if err != nil {
		return nil, err
	}
	if build {
		if _, err := m.Build(); err != nil {
			return nil, err
		}
	}
	echem.RegisterCitation("marquis2019asymptotic")
	return m, nil
}

// SetReactions declares the intercalation reaction.
func (m *SPM) SetReactions() error {
	return m.Reactions().Declare(Reaction())
}

// SetPorositySubmodel keeps the porosity constant.
func (m *SPM) SetPorositySubmodel() error {
	return m.SetSubmodel(battery.PorosityKey, porosity.NewConstant(m.Param()))
}

// SetParticleSubmodel adds one particle per electrode.
func (m *SPM) SetParticleSubmodel() error {
	opt := m.Options().Particle
	f, ok := particles[opt]
	if !ok {
		return m.Unsupported(echem.ParticleKey, opt)
	}
	for _, d := range echem.Electrodes {
		if err := m.SetSubmodel(battery.ParticleKey(d), f(m.Param(), d)); err != nil {
			return err
		}
	}
	return nil
}

// SetElectrolyteSubmodel adds leading-order electrolyte conductivity and a
// constant electrolyte concentration.
func (m *SPM) SetElectrolyteSubmodel() error {
	if err := m.SetElectrolyteConductivitySubmodel(); err != nil {
		return err
	}
	return m.SetSubmodel(battery.DiffusionKey, diffusion.NewConstantConcentration(m.Param()))
}
