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
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/ctessum/requestcache"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/echem"
	"github.com/spatialmodel/echem/internal/hash"
	"gonum.org/v1/gonum/floats"
)

// Request asks for one model to be built.
type Request struct {
	// Name identifies the request in results and logs.
	Name string

	// Model is the model family, for example "spm".
	Model string

	// Options are the raw model options.
	Options map[string]interface{}

	// Param holds the model parameters. If nil, the family's defaults are
	// used.
	Param *echem.ParameterSet
}

// Result is the outcome of a Request.
type Result struct {
	Name  string
	Model *echem.BuiltModel
	Err   error

	// Duration is the time the build took. Results of requests that
	// shared a build report the same duration.
	Duration time.Duration
}

// built is what the cache holds for each request. Build errors are kept
// here rather than returned to the cache, which only clears deduplicated
// requests after a success.
type built struct {
	model    *echem.BuiltModel
	err      error
	duration time.Duration
}

// key returns the cache key for r. Requests with the same family and
// options share a key unless they bring their own parameters.
func (r Request) key() string {
	options, err := echem.ParseOptions(r.Options)
	if err != nil {
		// Invalid options fail fast; keying by name keeps each error.
		return "invalid " + r.Name
	}
	k := hash.Hash(struct {
		Model   string
		Options echem.Options
	}{r.Model, options})
	if r.Param != nil {
		k += " " + r.Name
	}
	return k
}

// Builder builds models concurrently. Identical requests are built once.
type Builder struct {
	// Log receives a line per build.
	Log logrus.FieldLogger

	// Metrics, if not nil, records every build.
	Metrics *Metrics

	cache *requestcache.Cache
}

// NewBuilder returns a Builder that runs up to GOMAXPROCS builds at once.
func NewBuilder(log logrus.FieldLogger, metrics *Metrics) *Builder {
	b := &Builder{Log: log, Metrics: metrics}
	b.cache = requestcache.NewCache(b.build, runtime.GOMAXPROCS(-1),
		requestcache.Deduplicate(), requestcache.Memory(64))
	return b
}

func (b *Builder) build(ctx context.Context, request interface{}) (interface{}, error) {
	r := request.(Request)
	start := time.Now()
	m, err := Build(r.Model, r.Options, r.Param)
	d := time.Since(start)
	b.Metrics.Observe(ctx, r.Model, err, d)
	b.Log.WithFields(logrus.Fields{
		"name":     r.Name,
		"model":    r.Model,
		"duration": d,
		"ok":       err == nil,
	}).Debug("echemutil: built model")
	return built{model: m, err: err, duration: d}, nil
}

// Build builds every request and returns the results in request order.
func (b *Builder) Build(ctx context.Context, requests []Request) []Result {
	o := make([]Result, len(requests))
	var wg sync.WaitGroup
	wg.Add(len(requests))
	for i, r := range requests {
		go func(i int, r Request) {
			defer wg.Done()
			o[i].Name = r.Name
			v, err := b.cache.NewRequest(ctx, r, r.key()).Result()
			if err != nil {
				o[i].Err = err
				return
			}
			bm := v.(built)
			o[i].Model, o[i].Err, o[i].Duration = bm.model, bm.err, bm.duration
		}(i, r)
	}
	wg.Wait()
	return o
}

// CheckRequests returns a request for every legal option combination of
// the named model family.
func CheckRequests(model string) ([]Request, error) {
	if _, err := lookupFamily(model); err != nil {
		return nil, err
	}
	all := echem.AllOptions()
	o := make([]Request, len(all))
	for i, opts := range all {
		o[i] = Request{Name: opts.String(), Model: model, Options: opts.Map()}
	}
	return o, nil
}

// BuildSummary counts the outcomes of a set of builds.
type BuildSummary struct {
	// Built is the number of models that built.
	Built int

	// Unsupported is the number of option combinations the model family
	// has no variant for.
	Unsupported int

	// Failed is the number of other failures.
	Failed int

	// MeanDuration is the mean build time of the successful builds.
	MeanDuration time.Duration
}

// Summary counts the outcomes in results.
func Summary(results []Result) BuildSummary {
	var s BuildSummary
	var seconds []float64
	for _, r := range results {
		switch {
		case r.Err == nil:
			s.Built++
			seconds = append(seconds, r.Duration.Seconds())
		case errors.Is(r.Err, echem.ErrUnsupportedConfiguration):
			s.Unsupported++
		default:
			s.Failed++
		}
	}
	if len(seconds) > 0 {
		mean := floats.Sum(seconds) / float64(len(seconds))
		s.MeanDuration = time.Duration(mean * float64(time.Second))
	}
	return s
}
