package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nutsdb/nutshash"
	"github.com/nutsdb/nutshash/bench"
	"github.com/nutsdb/nutshash/keystream"
)

func newRootCmd(env envVars) *cobra.Command {
	root := &cobra.Command{
		Use:           "hashbench",
		Short:         "Benchmark and inspect the nutshash hashers",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCmd(env, afero.NewOsFs()), newSumCmd(env))
	return root
}

func newRunCmd(env envVars, fs afero.Fs) *cobra.Command {
	var (
		algorithms []string
		streams    []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the algorithm x key stream x operation matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env.Algorithms = algorithms
			env.Streams = make([]keystream.Kind, 0, len(streams))
			for _, s := range streams {
				env.Streams = append(env.Streams, keystream.Kind(s))
			}

			log := newLogger(env.Environment)
			defer func() { _ = log.Sync() }()
			installLogger(log)

			ctx, cancel := context.WithTimeout(cmd.Context(), env.Timeout)
			defer cancel()

			return runMatrix(ctx, env, fs, log)
		},
	}

	streamNames := make([]string, 0, len(env.Streams))
	for _, s := range env.Streams {
		streamNames = append(streamNames, string(s))
	}

	f := cmd.Flags()
	f.StringSliceVarP(&algorithms, "algorithms", "a", env.Algorithms, "algorithms to compare")
	f.StringSliceVarP(&streams, "streams", "s", streamNames, "key streams to hash: random, range, random_order, snowflake, uuid")
	f.IntVarP(&env.Workers, "workers", "w", env.Workers, "scenarios run concurrently")
	f.IntVarP(&env.Keys, "keys", "n", env.Keys, "keys per stream")
	f.IntVarP(&env.Iterations, "iterations", "i", env.Iterations, "timed passes per scenario")
	f.Uint64Var(&env.Seed, "seed", env.Seed, "hasher seed")
	f.Uint64Var(&env.Shards, "shards", env.Shards, "map shards")
	f.Uint64Var(&env.Buckets, "buckets", env.Buckets, "initial buckets per shard")
	f.StringVarP(&env.Output, "output", "o", env.Output, "write a CSV report to this path")
	f.DurationVar(&env.Timeout, "timeout", env.Timeout, "abort scenarios not started after this long")
	return cmd
}

func runMatrix(ctx context.Context, env envVars, fs afero.Fs, log *zap.SugaredLogger) error {
	algs, err := env.algorithms()
	if err != nil {
		return err
	}

	runner, err := bench.NewRunner(env.benchOptions())
	if err != nil {
		return err
	}
	defer runner.Close()

	scenarios := bench.Matrix(algs, env.Streams, bench.Ops)
	log.Infow("running", "scenarios", len(scenarios), "keys", env.Keys, "iterations", env.Iterations)

	results, err := runner.Run(ctx, scenarios)
	for _, r := range results {
		log.Infow(r.Scenario.Name(),
			"ns_per_op", r.NsPerOp(),
			"occupied", r.Stats.Occupied,
			"max_chain", r.Stats.MaxChain,
			"collisions", r.Stats.Collisions,
		)
	}
	if err != nil {
		return err
	}

	if env.Output != "" {
		if err := bench.WriteCSV(fs, env.Output, results); err != nil {
			return err
		}
		log.Infow("report written", "path", env.Output)
	}
	return nil
}

func newSumCmd(env envVars) *cobra.Command {
	var (
		algorithm = nutshash.DefaultConfig.Algorithm.String()
		seed      = env.Seed
	)

	cmd := &cobra.Command{
		Use:   "sum VALUE...",
		Short: "Print the digest of every argument",
		Long: "Print the digest of every argument. Fixed-width algorithms " +
			"(identity, u64) read each argument as an unsigned integer.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := nutshash.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			cfg := nutshash.Config{Algorithm: alg, Seed: seed}

			for _, arg := range args {
				digest, err := sum(cfg, arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%016x  %s\n", digest, arg)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&algorithm, "algorithm", "a", algorithm, "algorithm name")
	f.Uint64Var(&seed, "seed", seed, "hasher seed")
	return cmd
}

func sum(cfg nutshash.Config, arg string) (uint64, error) {
	if !cfg.Algorithm.FixedWidth() {
		return cfg.Sum64([]byte(arg)), nil
	}

	v, err := strconv.ParseUint(arg, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s takes unsigned integers", cfg.Algorithm)
	}
	return cfg.SumUint64(v), nil
}
