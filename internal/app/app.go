// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"protscan/internal/appcore"
	"protscan/internal/cli"
	"protscan/internal/version"
	"protscan/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("protscan")
	fs.SetOutput(io.Discard)

	showUsage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		return showUsage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return showUsage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		if code := showUsage(); code != 0 {
			return code
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "protscan version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	level := slog.LevelInfo
	if opts.Quiet {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	coreOpts := appcore.Options{
		Inline:   opts.Inline,
		SeqFiles: opts.SeqFiles,
		Window:   opts.WindowSize,
		Method:   opts.Method,
		Threads:  opts.Threads,
		Output:   opts.Output,
		Sort:     opts.Sort,
		Header:   opts.Header,

		SkipInvalid:      opts.SkipInvalid,
		Quiet:            opts.Quiet,
		NoResultExitCode: opts.NoResultExitCode,
	}
	return appcore.Run(parent, stdout, stderr, coreOpts, logger)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
