// Copyright 2026 The nutsdb Author. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bench times the nutshash algorithms as the backing hash of a
// hashmap.Map over the key streams of package keystream.
package bench

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants"
	"github.com/pkg/errors"

	"github.com/nutsdb/nutshash"
	"github.com/nutsdb/nutshash/hashmap"
	"github.com/nutsdb/nutshash/internal/utils"
	"github.com/nutsdb/nutshash/keystream"
	"github.com/nutsdb/nutshash/metrics"
)

// ErrInvalidOptions is returned by NewRunner for unusable Options.
var ErrInvalidOptions = errors.New("invalid bench options")

// Options records params for creating a Runner.
type Options struct {
	// Workers is the number of scenarios run at the same time.
	Workers int

	// Keys is the number of keys requested from every stream.
	Keys int

	// Iterations is the number of timed passes over the keys.
	Iterations int

	// Seed is the hasher seed of every scenario.
	Seed uint64

	// Map configures the maps of insert and get scenarios. Its Hasher is
	// replaced per scenario.
	Map hashmap.Options
}

// DefaultOptions mirror the 2000-key vectors the hashers were tuned on.
var DefaultOptions = Options{
	Workers:    1,
	Keys:       2000,
	Iterations: 100,
	Map:        hashmap.DefaultOptions,
}

// Runner executes scenarios on a worker pool. Every scenario owns its keys,
// map and hashers; nothing is shared between workers.
type Runner struct {
	opts     Options
	pool     *ants.Pool
	recorder *metrics.Recorder
}

// NewRunner returns a Runner with opts.Workers workers.
func NewRunner(opts Options) (*Runner, error) {
	switch {
	case opts.Workers <= 0:
		return nil, errors.Wrapf(ErrInvalidOptions, "workers must be positive, got %d", opts.Workers)
	case opts.Keys <= 0:
		return nil, errors.Wrapf(ErrInvalidOptions, "keys must be positive, got %d", opts.Keys)
	case opts.Iterations <= 0:
		return nil, errors.Wrapf(ErrInvalidOptions, "iterations must be positive, got %d", opts.Iterations)
	}

	pool, err := ants.NewPool(opts.Workers)
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}

	return &Runner{
		opts:     opts,
		pool:     pool,
		recorder: metrics.NewRecorder(),
	}, nil
}

// Close releases the worker pool.
func (r *Runner) Close() {
	r.pool.Release()
}

// Distributions returns the bucket distributions recorded so far, by
// scenario name.
func (r *Runner) Distributions() *metrics.Recorder {
	return r.recorder
}

// Run executes scenarios and returns their results in input order.
//
// Scenarios that have not started when ctx is done are skipped and Run
// returns ctx.Err() along with the results that did complete.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	var (
		wg      sync.WaitGroup
		results = make([]Result, len(scenarios))
		errs    = make([]error, len(scenarios))
	)

	for i, s := range scenarios {
		if ctx.Err() != nil {
			errs[i] = ctx.Err()
			continue
		}

		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = r.runScenario(s)
			if errs[i] == nil {
				r.recorder.Put(s.Name(), results[i].Stats)
				utils.GetLogger().Printf("bench: %s %.2f ns/op over %d keys", s.Name(), results[i].NsPerOp(), results[i].Keys)
			}
		})
		if err != nil {
			wg.Done()
			errs[i] = errors.Wrapf(err, "submit %s", s.Name())
		}
	}
	wg.Wait()

	done := make([]Result, 0, len(scenarios))
	var firstErr error
	for i := range scenarios {
		if errs[i] != nil {
			if firstErr == nil {
				firstErr = errs[i]
			}
			continue
		}
		done = append(done, results[i])
	}
	return done, firstErr
}

func (r *Runner) runScenario(s Scenario) (Result, error) {
	cfg := nutshash.Config{Algorithm: s.Algorithm, Seed: r.opts.Seed}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	var (
		res = Result{Scenario: s, Iterations: r.opts.Iterations}
		err error
	)
	if s.Stream.IsString() {
		if cfg.Algorithm.FixedWidth() {
			return Result{}, errors.Wrapf(nutshash.ErrInvalidKeyLength,
				"%s cannot hash %s keys", cfg.Algorithm, s.Stream)
		}
		var keys []string
		if keys, err = keystream.GenerateStrings(s.Stream, r.opts.Keys); err != nil {
			return Result{}, err
		}
		res.Keys = len(keys)
		res.Elapsed, res.Stats, err = timeOp(s.Op, cfg, r.opts, hashmap.NewString[string], hashmap.StringKey, keys)
	} else {
		var keys []uint64
		if keys, err = keystream.Generate(s.Stream, r.opts.Keys); err != nil {
			return Result{}, err
		}
		res.Keys = len(keys)
		res.Elapsed, res.Stats, err = timeOp(s.Op, cfg, r.opts, hashmap.NewUint64[uint64], hashmap.Uint64Key, keys)
	}
	if err != nil {
		return Result{}, errors.Wrap(err, s.Name())
	}
	return res, nil
}

func timeOp[K comparable](
	op Op,
	cfg nutshash.Config,
	opts Options,
	newMap func(hashmap.Options) (*hashmap.Map[K, K], error),
	enc hashmap.KeyEncoder[K],
	keys []K,
) (time.Duration, metrics.Distribution, error) {
	switch op {
	case OpInsert, OpGet:
		mapOpts := opts.Map
		mapOpts.Hasher = cfg
		m, err := newMap(mapOpts)
		if err != nil {
			return 0, metrics.Distribution{}, err
		}
		return timeMap(op, m, keys, opts.Iterations)
	case OpSingle:
		elapsed, stats := timeSingle(cfg, enc, keys, opts.Iterations)
		return elapsed, stats, nil
	default:
		return 0, metrics.Distribution{}, errors.Errorf("unknown op %q", op)
	}
}

func timeMap[K comparable](op Op, m *hashmap.Map[K, K], keys []K, iterations int) (time.Duration, metrics.Distribution, error) {
	fill := func() {
		for _, k := range keys {
			m.Put(k, k)
		}
	}

	var elapsed time.Duration
	switch op {
	case OpInsert:
		start := time.Now()
		for i := 0; i < iterations; i++ {
			m.Clear()
			fill()
		}
		elapsed = time.Since(start)
	case OpGet:
		fill()
		start := time.Now()
		for i := 0; i < iterations; i++ {
			for _, k := range keys {
				if !m.Contains(k) {
					return 0, metrics.Distribution{}, errors.Errorf("key %v missing after insert", k)
				}
			}
		}
		elapsed = time.Since(start)
	}
	return elapsed, m.Stats(), nil
}

// timeSingle feeds every key to one Hasher that is never reset, so
// seed-chaining algorithms chain across keys. The distribution is measured
// afterwards from per-key digests of fresh Hashers.
func timeSingle[K any](cfg nutshash.Config, enc hashmap.KeyEncoder[K], keys []K, iterations int) (time.Duration, metrics.Distribution) {
	var (
		h       = cfg.New()
		buf     = make([]byte, 0, 64)
		digests = make([]uint64, len(keys))
	)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		for j, k := range keys {
			buf = enc(buf[:0], k)
			_, _ = h.Write(buf)
			digests[j] = h.Sum64()
		}
	}
	elapsed := time.Since(start)

	for j, k := range keys {
		buf = enc(buf[:0], k)
		digests[j] = cfg.Sum64(buf)
	}

	buckets := uint64(len(keys))
	if buckets == 0 {
		buckets = 1
	}
	return elapsed, metrics.Measure(digests, buckets, metrics.Modulo(buckets))
}
