package bench

import (
	"fmt"
	"time"

	"github.com/nutsdb/nutshash"
	"github.com/nutsdb/nutshash/keystream"
	"github.com/nutsdb/nutshash/metrics"
)

// Op is the operation a scenario times.
type Op string

const (
	// OpInsert clears a map and inserts every key.
	OpInsert Op = "insert"

	// OpGet looks every key up in a filled map.
	OpGet Op = "get"

	// OpSingle hashes every key with one Hasher that is reused without
	// Reset, without a map. Murmur2_64A and XXHash64 therefore chain each
	// key onto the previous digest; Stats still places per-key digests
	// hashed from the seed.
	OpSingle Op = "single"
)

// Ops lists every operation.
var Ops = []Op{OpInsert, OpGet, OpSingle}

// Scenario is one cell of the benchmark matrix.
type Scenario struct {
	Algorithm nutshash.Algorithm
	Stream    keystream.Kind
	Op        Op
}

// Name identifies the scenario in logs and reports.
func (s Scenario) Name() string {
	return fmt.Sprintf("%s/%s/%s", s.Op, s.Stream, s.Algorithm)
}

// Result is the outcome of running one Scenario.
type Result struct {
	Scenario   Scenario
	Keys       int
	Iterations int
	Elapsed    time.Duration
	Stats      metrics.Distribution
}

// NsPerOp returns the mean time per key operation.
func (r Result) NsPerOp() float64 {
	ops := r.Keys * r.Iterations
	if ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(ops)
}

// Matrix returns every combination of the given algorithms, streams and ops,
// ops outermost. Fixed-width algorithms are left out of string streams.
func Matrix(algs []nutshash.Algorithm, streams []keystream.Kind, ops []Op) []Scenario {
	scenarios := make([]Scenario, 0, len(algs)*len(streams)*len(ops))
	for _, op := range ops {
		for _, stream := range streams {
			for _, alg := range algs {
				if stream.IsString() && alg.FixedWidth() {
					continue
				}
				scenarios = append(scenarios, Scenario{Algorithm: alg, Stream: stream, Op: op})
			}
		}
	}
	return scenarios
}
