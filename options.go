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

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Option keys.
const (
	OperatingModeKey    = "operating mode"
	DimensionalityKey   = "dimensionality"
	CurrentCollectorKey = "current collector"
	SurfaceFormKey      = "surface form"
	ParticleKey         = "particle"
	ThermalKey          = "thermal"
)

// OptionKeys lists every recognized option key.
var OptionKeys = []string{
	OperatingModeKey,
	DimensionalityKey,
	CurrentCollectorKey,
	SurfaceFormKey,
	ParticleKey,
	ThermalKey,
}

// OperatingMode selects the external circuit condition.
type OperatingMode int

// Operating modes.
const (
	ModeCurrent OperatingMode = iota
	ModeVoltage
	ModePower
)

// OperatingModes lists every legal operating mode.
var OperatingModes = []OperatingMode{ModeCurrent, ModeVoltage, ModePower}

var operatingModeNames = []string{
	ModeCurrent: "current",
	ModeVoltage: "voltage",
	ModePower:   "power",
}

func (v OperatingMode) String() string { return enumString(operatingModeNames, int(v)) }

// CurrentCollector selects the current collector treatment.
type CurrentCollector int

// Current collector treatments.
const (
	CollectorUniform CurrentCollector = iota
	CollectorPotentialPair
)

// CurrentCollectors lists every legal current collector treatment.
var CurrentCollectors = []CurrentCollector{CollectorUniform, CollectorPotentialPair}

var currentCollectorNames = []string{
	CollectorUniform:       "uniform",
	CollectorPotentialPair: "potential pair",
}

func (v CurrentCollector) String() string { return enumString(currentCollectorNames, int(v)) }

// SurfaceForm selects whether, and how, the surface potential difference
// is solved for as a state of its own.
type SurfaceForm int

// Surface form treatments.
const (
	SurfaceFormNone SurfaceForm = iota
	SurfaceFormDifferential
	SurfaceFormAlgebraic
)

// SurfaceForms lists every legal surface form treatment.
var SurfaceForms = []SurfaceForm{SurfaceFormNone, SurfaceFormDifferential, SurfaceFormAlgebraic}

var surfaceFormNames = []string{
	SurfaceFormNone:         "false",
	SurfaceFormDifferential: "differential",
	SurfaceFormAlgebraic:    "algebraic",
}

func (v SurfaceForm) String() string { return enumString(surfaceFormNames, int(v)) }

// Particle selects the approximation for diffusion within particles.
type Particle int

// Particle diffusion approximations.
const (
	ParticleFickian Particle = iota
	ParticleFast
)

// Particles lists every legal particle approximation.
var Particles = []Particle{ParticleFickian, ParticleFast}

var particleNames = []string{
	ParticleFickian: "Fickian diffusion",
	ParticleFast:    "fast diffusion",
}

func (v Particle) String() string { return enumString(particleNames, int(v)) }

// Thermal selects the thermal model.
type Thermal int

// Thermal models.
const (
	ThermalIsothermal Thermal = iota
	ThermalXLumped
	ThermalXFull
)

// Thermals lists every legal thermal model.
var Thermals = []Thermal{ThermalIsothermal, ThermalXLumped, ThermalXFull}

var thermalNames = []string{
	ThermalIsothermal: "isothermal",
	ThermalXLumped:    "x-lumped",
	ThermalXFull:      "x-full",
}

func (v Thermal) String() string { return enumString(thermalNames, int(v)) }

// Dimensionalities lists the legal numbers of current-collector dimensions.
var Dimensionalities = []int{0, 1, 2}

func enumString(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("invalid(%d)", v)
	}
	return names[v]
}

// Options is a validated model configuration.
type Options struct {
	OperatingMode    OperatingMode
	Dimensionality   int
	CurrentCollector CurrentCollector
	SurfaceForm      SurfaceForm
	Particle         Particle
	Thermal          Thermal
}

// DefaultOptions returns the options used for any key that is not set.
func DefaultOptions() Options {
	return Options{
		OperatingMode:    ModeCurrent,
		Dimensionality:   0,
		CurrentCollector: CollectorUniform,
		SurfaceForm:      SurfaceFormNone,
		Particle:         ParticleFickian,
		Thermal:          ThermalIsothermal,
	}
}

// ParseOptions fills in defaults for the keys missing from raw and
// validates the result. Errors wrap ErrInvalidOption.
func ParseOptions(raw map[string]interface{}) (Options, error) {
	o := DefaultOptions()
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := raw[k]
		var err error
		var i int
		switch k {
		case OperatingModeKey:
			i, err = parseEnum(k, v, operatingModeNames)
			o.OperatingMode = OperatingMode(i)
		case CurrentCollectorKey:
			i, err = parseEnum(k, v, currentCollectorNames)
			o.CurrentCollector = CurrentCollector(i)
		case ParticleKey:
			i, err = parseEnum(k, v, particleNames)
			o.Particle = Particle(i)
		case ThermalKey:
			i, err = parseEnum(k, v, thermalNames)
			o.Thermal = Thermal(i)
		case SurfaceFormKey:
			o.SurfaceForm, err = parseSurfaceForm(v)
		case DimensionalityKey:
			o.Dimensionality, err = parseDimensionality(v)
		default:
			err = &OptionError{Key: k, Value: v, Reason: "unrecognized option; valid options are " + strings.Join(OptionKeys, ", ")}
		}
		if err != nil {
			return Options{}, err
		}
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// parseEnum returns the index of v in names.
func parseEnum(key string, v interface{}, names []string) (int, error) {
	if s, err := cast.ToStringE(v); err == nil {
		for i, name := range names {
			if name == s {
				return i, nil
			}
		}
	}
	return 0, &OptionError{Key: key, Value: v, Reason: "valid values are " + quoteJoin(names)}
}

func parseSurfaceForm(v interface{}) (SurfaceForm, error) {
	switch s := v.(type) {
	case bool:
		if !s {
			return SurfaceFormNone, nil
		}
	case string:
		for i, name := range surfaceFormNames {
			if name == s {
				return SurfaceForm(i), nil
			}
		}
	}
	return 0, &OptionError{Key: SurfaceFormKey, Value: v, Reason: `valid values are false, "differential" and "algebraic"`}
}

func parseDimensionality(v interface{}) (int, error) {
	if _, ok := v.(bool); ok {
		return 0, &OptionError{Key: DimensionalityKey, Value: v, Reason: "must be 0, 1 or 2"}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || f != math.Trunc(f) {
		return 0, &OptionError{Key: DimensionalityKey, Value: v, Reason: "must be 0, 1 or 2"}
	}
	d := int(f)
	if _, err := ResolveGeometry(d); err != nil {
		return 0, &OptionError{Key: DimensionalityKey, Value: v, Reason: "must be 0, 1 or 2", Err: ErrUnsupportedDimensionality}
	}
	return d, nil
}

func quoteJoin(s []string) string {
	q := make([]string, len(s))
	for i, v := range s {
		q[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(q, ", ")
}

func validEnum(names []string, v int) bool { return v >= 0 && v < len(names) }

// Validate checks that every field holds a legal value and that the
// values are compatible with each other.
func (o Options) Validate() error {
	if !validEnum(operatingModeNames, int(o.OperatingMode)) {
		return &OptionError{Key: OperatingModeKey, Value: int(o.OperatingMode)}
	}
	if !validEnum(currentCollectorNames, int(o.CurrentCollector)) {
		return &OptionError{Key: CurrentCollectorKey, Value: int(o.CurrentCollector)}
	}
	if !validEnum(surfaceFormNames, int(o.SurfaceForm)) {
		return &OptionError{Key: SurfaceFormKey, Value: int(o.SurfaceForm)}
	}
	if !validEnum(particleNames, int(o.Particle)) {
		return &OptionError{Key: ParticleKey, Value: int(o.Particle)}
	}
	if !validEnum(thermalNames, int(o.Thermal)) {
		return &OptionError{Key: ThermalKey, Value: int(o.Thermal)}
	}
	if _, err := parseDimensionality(o.Dimensionality); err != nil {
		return err
	}
	if o.CurrentCollector == CollectorPotentialPair && o.Dimensionality == 0 {
		return &OptionError{Key: CurrentCollectorKey, Value: o.CurrentCollector.String(),
			Reason: "a potential pair current collector needs dimensionality 1 or 2"}
	}
	if o.Thermal == ThermalXFull && o.Dimensionality != 0 {
		return &OptionError{Key: ThermalKey, Value: o.Thermal.String(),
			Reason: "the x-full thermal model is only available with dimensionality 0"}
	}
	if o.SurfaceForm != SurfaceFormNone && o.Dimensionality == 2 {
		return &OptionError{Key: SurfaceFormKey, Value: o.SurfaceForm.String(),
			Reason: "surface form is not available with dimensionality 2"}
	}
	return nil
}

// Map returns the options in their raw form, as accepted by ParseOptions.
func (o Options) Map() map[string]interface{} {
	m := map[string]interface{}{
		OperatingModeKey:    o.OperatingMode.String(),
		DimensionalityKey:   o.Dimensionality,
		CurrentCollectorKey: o.CurrentCollector.String(),
		SurfaceFormKey:      o.SurfaceForm.String(),
		ParticleKey:         o.Particle.String(),
		ThermalKey:          o.Thermal.String(),
	}
	if o.SurfaceForm == SurfaceFormNone {
		m[SurfaceFormKey] = false
	}
	return m
}

func (o Options) String() string {
	m := o.Map()
	parts := make([]string, len(OptionKeys))
	for i, k := range OptionKeys {
		parts[i] = fmt.Sprintf("%s: %v", k, m[k])
	}
	return strings.Join(parts, ", ")
}

// LegalValues returns the legal values of the option with the given key,
// as they are written in raw options, or nil for an unknown key.
func LegalValues(key string) []string {
	switch key {
	case OperatingModeKey:
		return append([]string(nil), operatingModeNames...)
	case DimensionalityKey:
		o := make([]string, len(Dimensionalities))
		for i, d := range Dimensionalities {
			o[i] = fmt.Sprint(d)
		}
		return o
	case CurrentCollectorKey:
		return append([]string(nil), currentCollectorNames...)
	case SurfaceFormKey:
		return append([]string(nil), surfaceFormNames...)
	case ParticleKey:
		return append([]string(nil), particleNames...)
	case ThermalKey:
		return append([]string(nil), thermalNames...)
	}
	return nil
}

// AllOptions returns every legal combination of options.
func AllOptions() []Options {
	var all []Options
	for _, mode := range OperatingModes {
		for _, dim := range Dimensionalities {
			for _, cc := range CurrentCollectors {
				for _, sf := range SurfaceForms {
					for _, p := range Particles {
						for _, th := range Thermals {
							o := Options{
								OperatingMode:    mode,
								Dimensionality:   dim,
								CurrentCollector: cc,
								SurfaceForm:      sf,
								Particle:         p,
								Thermal:          th,
							}
							if o.Validate() == nil {
								all = append(all, o)
							}
						}
					}
				}
			}
		}
	}
	return all
}
