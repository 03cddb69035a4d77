package metrics

import (
	"fmt"
	"sort"
	"sync"
)

type (
	// Distribution describes how a set of digests landed in a bucket array.
	Distribution struct {
		Buckets    uint64
		Entries    uint64
		Occupied   uint64
		MaxChain   uint64
		Collisions uint64
	}

	// Placement maps a digest to a bucket index.
	Placement func(digest uint64) uint64
)

// Modulo places a digest by digest % buckets.
func Modulo(buckets uint64) Placement {
	return func(digest uint64) uint64 { return digest % buckets }
}

// HighBits places a digest by its top bits bits, the way Fibonacci hashing
// indexes a table of 2^bits slots. bits >= 64 keeps the whole digest.
func HighBits(bits uint8) Placement {
	return func(digest uint64) uint64 {
		switch {
		case bits == 0:
			return 0
		case bits >= 64:
			return digest
		}
		return digest >> (64 - bits)
	}
}

// Measure places every digest and reports the resulting distribution.
func Measure(digests []uint64, buckets uint64, place Placement) Distribution {
	chains := make(map[uint64]uint64, len(digests))
	for _, d := range digests {
		chains[place(d)]++
	}

	dist := Distribution{Buckets: buckets}
	for _, n := range chains {
		dist.Add(n)
	}
	return dist
}

// Add records one bucket holding n entries. Empty buckets are ignored.
func (d *Distribution) Add(n uint64) {
	if n == 0 {
		return
	}
	d.Entries += n
	d.Occupied++
	d.Collisions += n - 1
	if n > d.MaxChain {
		d.MaxChain = n
	}
}

// Merge folds o into d, as when summing the shards of a map.
func (d *Distribution) Merge(o Distribution) {
	d.Buckets += o.Buckets
	d.Entries += o.Entries
	d.Occupied += o.Occupied
	d.Collisions += o.Collisions
	if o.MaxChain > d.MaxChain {
		d.MaxChain = o.MaxChain
	}
}

// LoadFactor returns entries per bucket.
func (d Distribution) LoadFactor() float64 {
	if d.Buckets == 0 {
		return 0
	}
	return float64(d.Entries) / float64(d.Buckets)
}

func (d Distribution) String() string {
	return fmt.Sprintf("buckets=%d entries=%d occupied=%d max_chain=%d collisions=%d",
		d.Buckets, d.Entries, d.Occupied, d.MaxChain, d.Collisions)
}

// Recorder collects named distributions from concurrent producers.
type Recorder struct {
	mu    sync.Mutex
	dists map[string]Distribution
}

func NewRecorder() *Recorder {
	return &Recorder{dists: make(map[string]Distribution)}
}

// Put stores d under name, replacing any previous value.
func (r *Recorder) Put(name string, d Distribution) {
	r.mu.Lock()
	r.dists[name] = d
	r.mu.Unlock()
}

func (r *Recorder) Get(name string) (Distribution, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.dists[name]
	return d, ok
}

// Names returns the recorded names in sorted order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.dists))
	for name := range r.dists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
