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
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lnashier/viper"
)

func run(t *testing.T, args ...string) (string, error) {
	var buf bytes.Buffer
	Root.SetOutput(&buf)
	defer Root.SetOutput(nil)
	Root.SetArgs(args)
	err := Root.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "echem v") {
		t.Errorf("version output %q", out)
	}
}

func TestBuildCommand(t *testing.T) {
	Cfg.Set("options", `{"particle": "fast diffusion", "dimensionality": 1}`)
	defer Cfg.Set("options", "{}")
	out, err := run(t, "build")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"fast diffusion single particle", "1+1D macro", "references:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestBuildCommandInvalid(t *testing.T) {
	Cfg.Set("options", `{"particle": "unknown-mode"}`)
	defer Cfg.Set("options", "{}")
	if _, err := run(t, "build"); err == nil {
		t.Error("expected an error")
	}
}

func TestOptionsCommand(t *testing.T) {
	out, err := run(t, "options")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"surface form", "differential, algebraic", "Fickian diffusion"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	dir, err := ioutil.TempDir("", "echem")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	metrics := filepath.Join(dir, "metrics.prom")
	Cfg.Set("model", "loqs")
	Cfg.Set("metrics-file", metrics)
	defer func() {
		Cfg.Set("model", "spm")
		Cfg.Set("metrics-file", "")
	}()
	out, err := run(t, "check")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "66 built, 84 unsupported, 0 failed") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	b, err := ioutil.ReadFile(metrics)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `echem_model_builds_total{model="loqs",result="unsupported"} 84`) {
		t.Errorf("metrics:\n%s", b)
	}
}

func TestBatchCommand(t *testing.T) {
	dir, err := ioutil.TempDir("", "echem")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, "batch.hcl")
	if err := ioutil.WriteFile(file, []byte(batchSrc), 0644); err != nil {
		t.Fatal(err)
	}
	Cfg.Set("file", file)
	defer Cfg.Set("file", "")
	out, err := run(t, "batch")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "3 built, 0 unsupported, 0 failed") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestBatchCommandNoFile(t *testing.T) {
	Cfg.Set("file", "")
	if _, err := run(t, "batch"); err == nil {
		t.Error("expected an error")
	}
}

func TestGetOptions(t *testing.T) {
	cfg := viper.New()
	tests := []struct {
		value interface{}
		want  int
		err   bool
	}{
		{nil, 0, false},
		{"", 0, false},
		{`{"thermal": "x-lumped", "dimensionality": 1}`, 2, false},
		{map[string]interface{}{"thermal": "x-lumped"}, 1, false},
		{`{"thermal": `, 0, true},
		{42, 0, true},
	}
	for _, test := range tests {
		cfg.Set("options", test.value)
		o, err := getOptions("options", cfg)
		if (err != nil) != test.err {
			t.Errorf("%#v: error %v", test.value, err)
			continue
		}
		if len(o) != test.want {
			t.Errorf("%#v: %v", test.value, o)
		}
	}
}
