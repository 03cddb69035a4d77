package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/nutsdb/nutshash"
	"github.com/nutsdb/nutshash/bench"
	"github.com/nutsdb/nutshash/hashmap"
	"github.com/nutsdb/nutshash/keystream"
)

const (
	envPrefix = "hashbench"

	EnvDev  = "dev"
	EnvProd = "prod"
)

// envVars is the HASHBENCH_* environment. Command line flags take their
// defaults from it.
type envVars struct {
	Environment string           `envconfig:"ENV" default:"prod"`
	Algorithms  []string         `envconfig:"ALGORITHMS" default:"identity,u64,murmur2_64a,xxhash"`
	Streams     []keystream.Kind `envconfig:"STREAMS" default:"random,range,random_order,uuid"`
	Workers     int              `envconfig:"WORKERS" default:"1"`
	Keys        int              `envconfig:"KEYS" default:"2000"`
	Iterations  int              `envconfig:"ITERATIONS" default:"100"`
	Seed        uint64           `envconfig:"SEED" default:"0"`
	Shards      uint64           `envconfig:"SHARDS" default:"16"`
	Buckets     uint64           `envconfig:"BUCKETS" default:"8"`
	Output      string           `envconfig:"OUTPUT"`
	Timeout     time.Duration    `envconfig:"TIMEOUT" default:"5m"`
}

// loadEnv reads envFile into the process environment when it exists and
// then decodes the HASHBENCH_* variables. Variables already set win over
// the file.
func loadEnv(envFile string) (envVars, error) {
	var env envVars

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return env, errors.Wrapf(err, "load %s", envFile)
		}
	}

	if err := envconfig.Process(envPrefix, &env); err != nil {
		return env, errors.Wrap(err, "read environment")
	}
	return env, nil
}

func (e envVars) benchOptions() bench.Options {
	opts := bench.DefaultOptions
	opts.Workers = e.Workers
	opts.Keys = e.Keys
	opts.Iterations = e.Iterations
	opts.Seed = e.Seed

	opts.Map = hashmap.DefaultOptions
	opts.Map.ShardsCount = e.Shards
	opts.Map.BucketsPerShard = e.Buckets
	opts.Map.LogResize = e.Environment == EnvDev
	return opts
}

// algorithms parses the configured algorithm names.
func (e envVars) algorithms() ([]nutshash.Algorithm, error) {
	algs := make([]nutshash.Algorithm, 0, len(e.Algorithms))
	for _, name := range e.Algorithms {
		alg, err := nutshash.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}
