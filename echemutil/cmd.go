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

// Package echemutil contains the echem command-line interface and the
// helpers it uses to build models from configuration.
package echemutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/echem"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to echem.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose prints debugging information about model assembly.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "model",
			usage: `
              model specifies the model family: "spm" for the lithium-ion
              Single Particle Model or "loqs" for the lead-acid
              leading-order quasi-static model.`,
			shorthand:  "m",
			defaultVal: "spm",
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), checkCmd.Flags()},
		},
		{
			name: "options",
			usage: `
              options specifies the model options as a JSON object, for
              example '{"thermal": "x-lumped", "dimensionality": 1}'.
              Options that are not given take their default values.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{buildCmd.Flags()},
		},
		{
			name: "params",
			usage: `
              params specifies a TOML file with a [parameters] table of
              values replacing the model's default parameter values.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{buildCmd.Flags()},
		},
		{
			name: "file",
			usage: `
              file specifies the HCL file holding the model blocks to build.`,
			shorthand:  "f",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "metrics-file",
			usage: `
              metrics-file specifies a file to write build counts and
              durations to, in the Prometheus text format. Nothing is
              written if it is empty.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{checkCmd.Flags(), batchCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ECHEM")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := strings.TrimSpace(b.String())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(buildCmd)
	Root.AddCommand(optionsCmd)
	Root.AddCommand(checkCmd)
	Root.AddCommand(batchCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("echem: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// setLogging configures the standard logger used by models.
func setLogging() {
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
	logrus.SetOutput(os.Stderr)
	if Cfg.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// getOptions returns the raw model options from a viper configuration,
// accounting for the fact that they might be a JSON object if they were
// set from a command line argument.
func getOptions(varName string, cfg *viper.Viper) (map[string]interface{}, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case nil:
		return map[string]interface{}{}, nil
	case map[string]interface{}:
		return v, nil
	case string:
		o := make(map[string]interface{})
		if strings.TrimSpace(v) == "" {
			return o, nil
		}
		d := json.NewDecoder(strings.NewReader(v))
		if err := d.Decode(&o); err != nil {
			return nil, fmt.Errorf("echem: reading %s: %v", varName, err)
		}
		return o, nil
	default:
		o, err := cast.ToStringMapE(i)
		if err != nil {
			return nil, fmt.Errorf("echem: invalid type for %s: %#v", varName, i)
		}
		return o, nil
	}
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "echem",
	Short: "Assemble battery models from interchangeable submodels.",
	Long: `echem assembles electrochemical battery models from interchangeable
physics submodels. Use the subcommands specified below to access the model
functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'ECHEM_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		if err := setConfig(); err != nil {
			return err
		}
		setLogging()
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of echem.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("echem v%s\n", echem.Version)
	},
	DisableAutoGenTag: true,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a model.",
	Long: `build assembles and builds one model and prints its submodels,
state variables, events and geometry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := getOptions("options", Cfg)
		if err != nil {
			return err
		}
		model := Cfg.GetString("model")
		param, err := Parameters(model, Cfg.GetString("params"))
		if err != nil {
			return err
		}
		b, err := Build(model, raw, param)
		if err != nil {
			return err
		}
		Summarize(cmd.OutOrStdout(), b)
		if c := echem.Citations(); len(c) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "references: %s\n", strings.Join(c, ", "))
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the model options.",
	Long:  "options prints every model option with its legal values and default.",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		def := echem.DefaultOptions().Map()
		fmt.Fprintln(w, "option\tdefault\tlegal values")
		for _, k := range echem.OptionKeys {
			fmt.Fprintf(w, "%s\t%v\t%s\n", k, def[k], strings.Join(echem.LegalValues(k), ", "))
		}
		return w.Flush()
	},
	DisableAutoGenTag: true,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Build every option combination.",
	Long: `check builds the chosen model family with every legal combination
of options, concurrently, and reports which combinations build and which
have no submodel variant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reqs, err := CheckRequests(Cfg.GetString("model"))
		if err != nil {
			return err
		}
		return runRequests(cmd, reqs)
	},
	DisableAutoGenTag: true,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Build the models in a batch file.",
	Long: `batch builds every model block in the HCL file given by --file.
Each block names a model family, its options and, optionally, a TOML
parameter file:

	model "hot" {
	  family  = "spm"
	  options = { thermal = "x-lumped" }
	}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := Cfg.GetString("file")
		if f == "" {
			return fmt.Errorf("echem: please specify a batch file with --file")
		}
		reqs, err := LoadBatch(os.ExpandEnv(f))
		if err != nil {
			return err
		}
		return runRequests(cmd, reqs)
	},
	DisableAutoGenTag: true,
}

// runRequests builds reqs concurrently, prints a line per result and
// writes the metrics file if one is configured.
func runRequests(cmd *cobra.Command, reqs []Request) error {
	var metrics *Metrics
	metricsFile := Cfg.GetString("metrics-file")
	if metricsFile != "" {
		metrics = NewMetrics()
	}
	b := NewBuilder(logrus.StandardLogger(), metrics)
	results := b.Build(context.Background(), reqs)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	s := Summary(results)
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\n", r.Name, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d built, %d unsupported, %d failed; mean build time %v\n",
		s.Built, s.Unsupported, s.Failed, s.MeanDuration)
	if metrics != nil {
		if err := metrics.WriteFile(metricsFile); err != nil {
			return fmt.Errorf("echem: writing metrics: %v", err)
		}
	}
	if s.Failed > 0 {
		return fmt.Errorf("echem: %d of %d models failed to build", s.Failed, len(results))
	}
	return nil
}
