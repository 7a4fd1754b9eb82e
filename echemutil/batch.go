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
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// batchFile is the layout of a batch file:
//
//	model "hot" {
//	  family     = "spm"
//	  options    = { thermal = "x-lumped", "surface form" = "differential" }
//	  parameters = "hot.toml"
//	}
type batchFile struct {
	Models []batchModel `hcl:"model,block"`
}

type batchModel struct {
	Name       string    `hcl:"name,label"`
	Family     string    `hcl:"family"`
	Options    cty.Value `hcl:"options,optional"`
	Parameters string    `hcl:"parameters,optional"`
}

// LoadBatch reads the model definitions in the HCL file at path and
// returns a request for each, with parameters loaded.
func LoadBatch(path string) ([]Request, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("echemutil: parsing batch file: %s", diags.Error())
	}
	return decodeBatch(file)
}

func decodeBatch(file *hcl.File) ([]Request, error) {
	var f batchFile
	if diags := gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("echemutil: decoding batch file: %s", diags.Error())
	}
	seen := make(map[string]bool)
	o := make([]Request, 0, len(f.Models))
	for _, m := range f.Models {
		if seen[m.Name] {
			return nil, fmt.Errorf("echemutil: batch file defines model %q more than once", m.Name)
		}
		seen[m.Name] = true
		raw, err := ctyOptions(m.Options)
		if err != nil {
			return nil, fmt.Errorf("echemutil: model %q: %v", m.Name, err)
		}
		param, err := Parameters(m.Family, m.Parameters)
		if err != nil {
			return nil, fmt.Errorf("echemutil: model %q: %v", m.Name, err)
		}
		r := Request{Name: m.Name, Model: m.Family, Options: raw}
		if m.Parameters != "" {
			r.Param = param
		}
		o = append(o, r)
	}
	return o, nil
}

// ctyOptions converts an HCL object of options to the raw option map
// accepted by echem.ParseOptions. Whole numbers become ints.
func ctyOptions(v cty.Value) (map[string]interface{}, error) {
	o := make(map[string]interface{})
	if v.IsNull() {
		return o, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("options are not known")
	}
	t := v.Type()
	if !t.IsObjectType() && !t.IsMapType() {
		return nil, fmt.Errorf("options must be an object, not %s", t.FriendlyName())
	}
	it := v.ElementIterator()
	for it.Next() {
		k, e := it.Element()
		key := k.AsString()
		if e.IsNull() || !e.IsKnown() {
			return nil, fmt.Errorf("option %q has no value", key)
		}
		switch e.Type() {
		case cty.String:
			o[key] = e.AsString()
		case cty.Bool:
			o[key] = e.True()
		case cty.Number:
			f := e.AsBigFloat()
			if f.IsInt() {
				i, acc := f.Int64()
				if acc == big.Exact {
					o[key] = int(i)
					continue
				}
			}
			var x float64
			if err := gocty.FromCtyValue(e, &x); err != nil {
				return nil, fmt.Errorf("option %q: %v", key, err)
			}
			o[key] = x
		default:
			return nil, fmt.Errorf("option %q has unsupported type %s", key, e.Type().FriendlyName())
		}
	}
	return o, nil
}
