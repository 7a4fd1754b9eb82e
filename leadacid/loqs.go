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

// Package leadacid assembles lead-acid battery models from the submodels
// in the science packages.
package leadacid

import (
	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/battery"
	"github.com/spatialmodel/echem/science/electrolyte/diffusion"
	"github.com/spatialmodel/echem/science/porosity"
)

// LOQS is the leading-order quasi-static lead-acid model. The electrolyte
// concentration and the electrode porosities are uniform through the cell
// and change as acid is consumed.
type LOQS struct {
	*battery.Base
}

// NewLOQS creates a LOQS model from raw options (see echem.ParseOptions).
// If param is nil, DefaultParameters is used. If build is true the model
// is also built. Only isothermal models are available.
func NewLOQS(raw map[string]interface{}, param *echem.ParameterSet, build bool) (*LOQS, error) {
	options, err := echem.ParseOptions(raw)
	if err != nil {
		return nil, err
	}
	if param == nil {
		param = DefaultParameters()
	}
	m := &LOQS{battery.NewBase("LOQS model", options, param, MainReaction)}
	err = m.Assemble(battery.Steps(
		m.SetReactions,
		m.SetExternalCircuitSubmodel,
		m.SetPorositySubmodel,
		m.SetTortuositySubmodels,
		m.SetConvectionSubmodel,
		m.SetInterfacialSubmodel,
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
	echem.RegisterCitation("sulzer2019faster")
	return m, nil
}

// SetReactions declares the main lead-acid reaction.
func (m *LOQS) SetReactions() error {
	return m.Reactions().Declare(Reaction())
}

// SetPorositySubmodel lets the electrode porosities change with the
// volume of the reaction products.
func (m *LOQS) SetPorositySubmodel() error {
	return m.SetSubmodel(battery.PorosityKey, porosity.NewLeadingOrder(m.Param()))
}

// SetElectrolyteSubmodel adds leading-order electrolyte conductivity and
// diffusion.
func (m *LOQS) SetElectrolyteSubmodel() error {
	if err := m.SetElectrolyteConductivitySubmodel(); err != nil {
		return err
	}
	d, err := diffusion.NewLeadingOrder(m.Param(), m.Reactions())
	if err != nil {
		return err
	}
	return m.SetSubmodel(battery.DiffusionKey, d)
}

// SetThermalSubmodel rejects every thermal option but isothermal.
func (m *LOQS) SetThermalSubmodel() error {
	if opt := m.Options().Thermal; opt != echem.ThermalIsothermal {
		return m.Unsupported(echem.ThermalKey, opt)
	}
	return m.Base.SetThermalSubmodel()
}
