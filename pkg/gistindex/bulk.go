package gistindex

import (
	"fmt"
	"io"
	"runtime"
	"sync"
)

// NamedGeometry pairs an id with the geometry value to insert under it.
type NamedGeometry struct {
	ID       string
	Geometry Geometry
}

// BulkOptions controls parallel bulk loading behavior.
type BulkOptions struct {
	// Workers is the number of concurrent key-computation goroutines. If
	// 0, defaults to runtime.NumCPU().
	Workers int

	// SkipErrors causes loading to continue past individual failures
	// (only possible failure today is a nil Geometry); failures are
	// collected and returned rather than stopping the load.
	SkipErrors bool

	// Progress, if non-nil, is called after each item is processed.
	Progress func(done, total int)

	// ErrorLog, if non-nil, receives one line per failed item.
	ErrorLog io.Writer
}

// DefaultBulkOptions returns sensible defaults: NumCPU workers, errors
// skipped rather than aborting the load.
func DefaultBulkOptions() BulkOptions {
	return BulkOptions{Workers: runtime.NumCPU(), SkipErrors: true}
}

// BulkInsert loads many items into idx concurrently: each worker
// computes a key and bounding box independently (a pure function of its
// item, per the engine's passive/reentrant contract), and a single
// goroutine performs the R-tree inserts, since the tree itself is not
// safe for concurrent writers.
func BulkInsert(idx *Index, items []NamedGeometry, opts BulkOptions) []error {
	if len(items) == 0 {
		return nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(items) {
		workers = len(items)
	}

	type prepared struct {
		index int
		e     entry
		err   error
	}

	jobs := make(chan int, len(items))
	results := make(chan prepared, len(items))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jobIndex := range jobs {
				item := items[jobIndex]
				if item.Geometry == nil {
					results <- prepared{index: jobIndex, err: fmt.Errorf("item %q: nil geometry", item.ID)}
					continue
				}
				results <- prepared{index: jobIndex, e: entry{
					id:  item.ID,
					geo: item.Geometry,
					key: Compress(item.Geometry),
					box: geometryBox(item.Geometry),
				}}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	prepared2 := make([]prepared, len(items))
	done := 0
	for r := range results {
		prepared2[r.index] = r
		done++
		if opts.Progress != nil {
			opts.Progress(done, len(items))
		}
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	var errs []error
	anyReplaced := false
	for _, r := range prepared2 {
		if r.err != nil {
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "bulk insert error: %v\n", r.err)
			}
			errs = append(errs, r.err)
			if !opts.SkipErrors {
				if anyReplaced {
					idx.rebuildTree()
				}
				return errs
			}
			continue
		}
		if _, ok := idx.entries[r.e.id]; ok {
			anyReplaced = true
		}
		idx.entries[r.e.id] = r.e
		if !anyReplaced {
			idx.rtree.Insert(r.e)
		}
	}
	// A replacement invalidates any stale leaf already inserted this
	// batch, so the tree is rebuilt once from idx.entries rather than
	// tracked incrementally (rtreego has no single-leaf removal).
	if anyReplaced {
		idx.rebuildTree()
	}
	return errs
}
