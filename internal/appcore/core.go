// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"protscan/internal/pipeline"
	"protscan/internal/report"
	"protscan/internal/writers"
)

type Options struct {
	Inline   []string
	SeqFiles []string

	Window int
	Method string

	Threads int

	Output string
	Sort   bool
	Header bool

	SkipInvalid      bool
	Quiet            bool
	NoResultExitCode int
}

// Run executes the full analysis pipeline and returns a process exit code:
// 0 on success, NoResultExitCode when nothing was analyzed, 3 on runtime
// or write errors, 130 on cancellation.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, logger *slog.Logger) int {
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	inCh, writeErr := writers.StartReportWriter(outw, o.Output, o.Sort, o.Header, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total := 0
	perr := pipeline.ForEachReport(
		ctx,
		pipeline.Config{
			Threads:     thr,
			Window:      o.Window,
			Method:      o.Method,
			SkipInvalid: o.SkipInvalid,
			Logger:      logger,
		},
		o.Inline,
		o.SeqFiles,
		func(r report.Report) error {
			select {
			case inCh <- r:
				total++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if total == 0 {
		return o.NoResultExitCode
	}
	return 0
}
