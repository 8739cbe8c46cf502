package depot

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForEachParallel partitions c and runs fn once per part, at most workers at
// a time. workers <= 0 means GOMAXPROCS. It returns the first error fn
// reports; the other parts still run to completion.
func ForEachParallel(c *Cursor, workers int, fn func(*Cursor) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for _, part := range c.Partition(workers * 2) {
		g.Go(func() error {
			return fn(part)
		})
	}
	return g.Wait()
}
