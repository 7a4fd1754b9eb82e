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

package echemutil

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/leadacid"
	"github.com/spatialmodel/echem/lithiumion"
)

// family is a model family that can be selected by name.
type family struct {
	description string
	defaults    func() *echem.ParameterSet
	assemble    func(raw map[string]interface{}, param *echem.ParameterSet) (*echem.Model, error)
}

var families = map[string]family{
	"spm": {
		description: "lithium-ion Single Particle Model",
		defaults:    lithiumion.DefaultParameters,
		assemble: func(raw map[string]interface{}, param *echem.ParameterSet) (*echem.Model, error) {
			m, err := lithiumion.NewSPM(raw, param, false)
			if err != nil {
				return nil, err
			}
			return m.Model, nil
		},
	},
	"loqs": {
		description: "lead-acid leading-order quasi-static model",
		defaults:    leadacid.DefaultParameters,
		assemble: func(raw map[string]interface{}, param *echem.ParameterSet) (*echem.Model, error) {
			m, err := leadacid.NewLOQS(raw, param, false)
			if err != nil {
				return nil, err
			}
			return m.Model, nil
		},
	},
}

// Families returns the names of the available model families.
func Families() []string {
	o := make([]string, 0, len(families))
	for k := range families {
		o = append(o, k)
	}
	sort.Strings(o)
	return o
}

func lookupFamily(name string) (family, error) {
	f, ok := families[strings.ToLower(name)]
	if !ok {
		return family{}, fmt.Errorf("echemutil: unknown model %q; choose one of %s", name, strings.Join(Families(), ", "))
	}
	return f, nil
}

// Parameters returns the default parameters of the named model family,
// with the scalar overrides from the TOML file paramFile applied if
// paramFile is not empty.
func Parameters(model, paramFile string) (*echem.ParameterSet, error) {
	f, err := lookupFamily(model)
	if err != nil {
		return nil, err
	}
	param := f.defaults()
	if paramFile == "" {
		return param, nil
	}
	r, err := os.Open(os.ExpandEnv(paramFile))
	if err != nil {
		return nil, fmt.Errorf("echemutil: opening parameter file: %v", err)
	}
	defer r.Close()
	values, err := echem.LoadParameterOverrides(r)
	if err != nil {
		return nil, err
	}
	return param.WithValues(values)
}

// Build assembles and builds a model of the named family.
func Build(model string, raw map[string]interface{}, param *echem.ParameterSet) (*echem.BuiltModel, error) {
	f, err := lookupFamily(model)
	if err != nil {
		return nil, err
	}
	if param == nil {
		param = f.defaults()
	}
	m, err := f.assemble(raw, param)
	if err != nil {
		return nil, err
	}
	return m.Build()
}

// Summarize writes a description of b to w.
func Summarize(w io.Writer, b *echem.BuiltModel) {
	p := func(format string, a ...interface{}) {
		fmt.Fprintf(w, format, a...)
	}
	p("%s\n", b.Name())
	p("options:  %s\n", b.Options())
	p("geometry: %s\n", b.Geometry())
	p("submodels:\n")
	for _, k := range b.SubmodelKeys() {
		s, _ := b.Submodel(k)
		p("\t%-50s %s\n", k, s.Name())
	}
	rhs, alg := b.Rhs(), b.Algebraic()
	p("states:\n")
	for _, s := range b.States() {
		kind := "differential"
		if _, ok := alg[s]; ok {
			kind = "algebraic"
		} else if _, ok := rhs[s]; !ok {
			kind = "unknown"
		}
		p("\t%-60s %s\n", s, kind)
	}
	p("events:\n")
	for _, e := range b.Events() {
		p("\t%-20s %s\n", e.Name, e.Expression)
	}
	p("variables: %d\n", len(b.Variables()))
}
