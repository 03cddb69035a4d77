package bench

import (
	"encoding/csv"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var csvHeader = []string{
	"op", "stream", "algorithm", "keys", "iterations", "elapsed_ns", "ns_per_op",
	"buckets", "occupied", "max_chain", "collisions",
}

// WriteCSV writes results to path on fs, creating parent directories.
func WriteCSV(fs afero.Fs, path string, results []Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}

	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, r := range results {
		row := []string{
			string(r.Scenario.Op),
			string(r.Scenario.Stream),
			r.Scenario.Algorithm.String(),
			strconv.Itoa(r.Keys),
			strconv.Itoa(r.Iterations),
			strconv.FormatInt(r.Elapsed.Nanoseconds(), 10),
			strconv.FormatFloat(r.NsPerOp(), 'f', 3, 64),
			strconv.FormatUint(r.Stats.Buckets, 10),
			strconv.FormatUint(r.Stats.Occupied, 10),
			strconv.FormatUint(r.Stats.MaxChain, 10),
			strconv.FormatUint(r.Stats.Collisions, 10),
		}
		if err := w.Write(row); err != nil {
			return errors.Wrapf(err, "write %s", r.Scenario.Name())
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "flush report")
}
