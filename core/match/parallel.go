// core/match/parallel.go
package match

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FindContext is Find with the query windows sharded across
// Config.Threads workers (0 = all CPUs). Each window reads only the
// immutable inputs and writes a worker-local set, so the only
// synchronization is the final merge. Cancellation is checked once per
// query-window iteration; a cancelled call returns ctx's error and no pairs.
// With identical inputs the output is identical to Find's.
func (m *Matcher) FindContext(ctx context.Context, query, text []byte) ([]Pair, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	n := m.cfg.N
	if n > len(query) || n > len(text) {
		return nil, nil
	}
	windows := len(query) - n + 1
	workers := m.cfg.Threads
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > windows {
		workers = windows
	}
	l := seedLen(n, m.cfg.K)

	var pre *prefilter
	if m.cfg.Prefilter {
		pre = newPrefilter(query, text, l)
	}

	sets := make([]map[posKey]int, workers)
	per := (windows + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * per
		hi := min(lo+per, windows)
		g.Go(func() error {
			set := make(map[posKey]int)
			for i := lo; i < hi; i++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				m.scanWindow(query, text, i, l, pre, set)
			}
			sets[w] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[posKey]int)
	for _, set := range sets {
		for k, mm := range set {
			merged[k] = mm
		}
	}
	return collect(merged), nil
}
