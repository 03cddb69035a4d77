package bench

import (
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutsdb/nutshash"
	"github.com/nutsdb/nutshash/hashmap"
	"github.com/nutsdb/nutshash/keystream"
	"github.com/nutsdb/nutshash/metrics"
)

func testRunner(t *testing.T) *Runner {
	t.Helper()
	opts := DefaultOptions
	opts.Workers = 2
	opts.Keys = 200
	opts.Iterations = 2

	r, err := NewRunner(opts)
	require.NoError(t, err)
	t.Cleanup(r.Close)
	return r
}

func TestNewRunner_InvalidOptions(t *testing.T) {
	for _, mutate := range []func(o *Options){
		func(o *Options) { o.Workers = 0 },
		func(o *Options) { o.Keys = -1 },
		func(o *Options) { o.Iterations = 0 },
	} {
		opts := DefaultOptions
		mutate(&opts)
		_, err := NewRunner(opts)
		require.ErrorIs(t, err, ErrInvalidOptions)
	}
}

func TestMatrix(t *testing.T) {
	scenarios := Matrix(nutshash.Algorithms, []keystream.Kind{keystream.KindRange, keystream.KindRandom}, Ops)
	require.Len(t, scenarios, len(nutshash.Algorithms)*2*len(Ops))
	require.Equal(t, Scenario{Algorithm: nutshash.Identity64, Stream: keystream.KindRange, Op: OpInsert}, scenarios[0])
	require.Equal(t, "insert/range/identity", scenarios[0].Name())
}

func TestMatrix_SkipsFixedWidthStringStreams(t *testing.T) {
	scenarios := Matrix(nutshash.Algorithms, []keystream.Kind{keystream.KindUUID}, []Op{OpGet})
	require.Equal(t, []Scenario{
		{Algorithm: nutshash.Murmur2_64A, Stream: keystream.KindUUID, Op: OpGet},
		{Algorithm: nutshash.XXHash64, Stream: keystream.KindUUID, Op: OpGet},
	}, scenarios)
}

func TestRunner_Run(t *testing.T) {
	r := testRunner(t)
	scenarios := Matrix(
		nutshash.Algorithms,
		[]keystream.Kind{keystream.KindRange, keystream.KindRandomOrder},
		Ops,
	)

	results, err := r.Run(context.Background(), scenarios)
	require.NoError(t, err)
	require.Len(t, results, len(scenarios))

	for i, res := range results {
		assert.Equal(t, scenarios[i], res.Scenario)
		assert.Equal(t, 200, res.Keys)
		assert.Equal(t, 2, res.Iterations)
		assert.Equal(t, uint64(200), res.Stats.Entries, res.Scenario.Name())
		assert.Positive(t, res.Elapsed)
		assert.Positive(t, res.NsPerOp())
	}

	require.Len(t, r.Distributions().Names(), len(scenarios))
}

func TestRunner_SequentialKeysCollideLessWithMixer(t *testing.T) {
	r := testRunner(t)
	results, err := r.Run(context.Background(), []Scenario{
		{Algorithm: nutshash.Identity64, Stream: keystream.KindRange, Op: OpSingle},
		{Algorithm: nutshash.Murmur2_64A, Stream: keystream.KindRange, Op: OpSingle},
	})
	require.NoError(t, err)

	// 0..199 mod 200 is a perfect placement for the identity hash.
	require.Zero(t, results[0].Stats.Collisions)
	require.Positive(t, results[1].Stats.Collisions)
}

func TestRunner_UUIDStream(t *testing.T) {
	r := testRunner(t)
	scenarios := Matrix(
		[]nutshash.Algorithm{nutshash.Murmur2_64A, nutshash.XXHash64},
		[]keystream.Kind{keystream.KindUUID},
		Ops,
	)
	require.Len(t, scenarios, 2*len(Ops))

	results, err := r.Run(context.Background(), scenarios)
	require.NoError(t, err)
	require.Len(t, results, len(scenarios))
	for _, res := range results {
		assert.Equal(t, 200, res.Keys, res.Scenario.Name())
		assert.Equal(t, uint64(200), res.Stats.Entries, res.Scenario.Name())
		assert.Positive(t, res.Elapsed, res.Scenario.Name())
	}
}

func TestRunner_UUIDStreamRejectsFixedWidth(t *testing.T) {
	r := testRunner(t)
	for _, alg := range []nutshash.Algorithm{nutshash.Identity64, nutshash.U64Mixer} {
		for _, op := range Ops {
			_, err := r.Run(context.Background(), []Scenario{{Algorithm: alg, Stream: keystream.KindUUID, Op: op}})
			require.True(t, nutshash.IsInvalidKeyLength(err), "%s/%s: %v", alg, op, err)
		}
	}
}

func TestTimeSingle_StatsUseSeededDigests(t *testing.T) {
	cfg := nutshash.Config{Algorithm: nutshash.Murmur2_64A, Seed: 9}
	keys := keystream.Range(100)

	_, stats := timeSingle(cfg, hashmap.Uint64Key, keys, 3)

	digests := make([]uint64, len(keys))
	for i, k := range keys {
		digests[i] = cfg.SumUint64(k)
	}
	require.Equal(t, metrics.Measure(digests, 100, metrics.Modulo(100)), stats)
}

func TestRunner_Cancelled(t *testing.T) {
	r := testRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := r.Run(ctx, Matrix(nutshash.Algorithms, []keystream.Kind{keystream.KindRange}, Ops))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, results)
}

func TestRunner_UnknownStream(t *testing.T) {
	r := testRunner(t)
	_, err := r.Run(context.Background(), []Scenario{{Algorithm: nutshash.U64Mixer, Stream: "bogus", Op: OpGet}})
	require.ErrorIs(t, err, keystream.ErrUnknownKind)

	_, err = r.Run(context.Background(), []Scenario{{Algorithm: 0, Stream: keystream.KindRange, Op: OpGet}})
	require.True(t, nutshash.IsUnknownAlgorithm(err))

	_, err = r.Run(context.Background(), []Scenario{{Algorithm: nutshash.U64Mixer, Stream: keystream.KindRange, Op: "sort"}})
	require.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	fs := afero.NewMemMapFs()
	results := []Result{
		{
			Scenario:   Scenario{Algorithm: nutshash.U64Mixer, Stream: keystream.KindRange, Op: OpGet},
			Keys:       10,
			Iterations: 2,
			Elapsed:    40 * time.Nanosecond,
		},
	}

	require.NoError(t, WriteCSV(fs, "out/report.csv", results))

	f, err := fs.Open("out/report.csv")
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, csvHeader, rows[0])
	require.Equal(t, []string{"get", "range", "u64", "10", "2", "40", "2.000", "0", "0", "0", "0"}, rows[1])
}
