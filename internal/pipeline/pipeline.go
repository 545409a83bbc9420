// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"protscan-core/analysis"
	"protscan-core/fasta"
	"protscan/internal/report"
)

// Config controls the analysis pipeline.
type Config struct {
	Threads     int          // number of worker goroutines (>=1)
	Window      int          // region-scan window (0 = core default)
	Method      string       // secondary-structure method ("" = simple)
	SkipInvalid bool         // log and skip records that fail validation
	Logger      *slog.Logger // nil = slog.Default()
}

// ForEachReport streams analysis reports to the caller via visit. Inline
// sequences are analyzed first (as records named arg1, arg2, ...), then every
// record of every FASTA file. Workers run concurrently; output order is
// therefore nondeterministic unless the caller sorts.
//
// A record that fails analysis aborts the run with that error unless
// SkipInvalid is set, in which case it is logged and dropped. The first error
// encountered (including context cancellation) is returned.
func ForEachReport(
	ctx context.Context,
	cfg Config,
	inline []string,
	seqFiles []string,
	visit func(report.Report) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	an := analysis.New(analysis.Config{Window: cfg.Window, Method: cfg.Method, Logger: log})

	type job struct {
		id         string
		raw        string
		sourceFile string
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan report.Report, cfg.Threads*2)

	var (
		errMu sync.Mutex
		cerr  error
	)
	fail := func(err error) {
		errMu.Lock()
		if cerr == nil {
			cerr = err
		}
		errMu.Unlock()
	}
	failed := func() bool {
		errMu.Lock()
		defer errMu.Unlock()
		return cerr != nil
	}

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					res, err := an.Analyze(j.raw)
					if err != nil {
						if cfg.SkipInvalid {
							log.Warn("skipping sequence", "id", j.id, "source", j.sourceFile, "err", err)
							continue
						}
						fail(fmt.Errorf("sequence %s: %w", j.id, err))
						continue
					}
					select {
					case results <- report.Report{SequenceID: j.id, SourceFile: j.sourceFile, Result: res}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if failed() {
				continue
			}
			if err := visit(r); err != nil {
				fail(err)
			}
		}
	}()

	// Feed work
	submit := func(j job) bool {
		select {
		case <-ctx.Done():
			return false
		case jobs <- j:
			return true
		}
	}
	for i, raw := range inline {
		if !submit(job{id: fmt.Sprintf("arg%d", i+1), raw: raw}) {
			break
		}
	}
	for _, fa := range seqFiles {
		err := fasta.StreamPathCtx(ctx, fa, func(rec fasta.Record) error {
			if !submit(job{id: rec.ID, raw: string(rec.Seq), sourceFile: fa}) {
				return ctx.Err()
			}
			return nil
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			// Keep scanning other files; first error will be returned.
			fail(err)
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
