// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"protscan/internal/cliutil"
	"protscan/internal/config"
	"protscan/internal/output"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Inline   []string // raw sequences given on the command line
	SeqFiles []string // FASTA file(s), '-' for stdin

	// Analysis
	WindowSize int
	Method     string

	// Performance
	Threads int

	// Output
	Output           string // text | json | jsonl | markdown
	Sort             bool
	Header           bool // true unless --no-header
	NoResultExitCode int

	// Misc
	Config      string
	SkipInvalid bool
	Quiet       bool
	Version     bool
}

// sliceValue appends each value to a *[]string (for repeatable flags).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	Usage(fs, name)
	return fs
}

// register wires all flags onto fs and returns the no-header pointer the
// caller uses to set Options.Header after parsing.
func register(fs *flag.FlagSet, o *Options) *bool {
	seqVal := &sliceValue{dst: &o.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")
	fs.Var(&sliceValue{dst: &o.Inline}, "sequence", "raw amino-acid sequence (repeatable)")

	fs.IntVar(&o.WindowSize, "window-size", 7, "sliding window for region detection [7]")
	fs.IntVar(&o.WindowSize, "w", 7, "alias of --window-size")
	fs.StringVar(&o.Method, "method", "simple", "secondary-structure method [simple]")

	fs.IntVar(&o.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")

	fs.StringVar(&o.Output, "output", output.FormatText, "output: text | json | jsonl | markdown [text]")
	fs.StringVar(&o.Output, "o", output.FormatText, "alias of --output")
	fs.BoolVar(&o.Sort, "sort", false, "sort outputs deterministically [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&o.NoResultExitCode, "no-result-exit-code", 1, "exit code when no sequence was analyzed [1]")

	fs.StringVar(&o.Config, "config", "", "YAML profile with default options")
	fs.BoolVar(&o.SkipInvalid, "skip-invalid", false, "log and skip records that fail validation [false]")
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// ParseArgs registers and parses all flags, merges the optional profile, and
// validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	noHeader := register(fs, &opt)
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.SeqFiles = append(opt.SeqFiles, exp...)
	}

	if opt.Config != "" {
		prof, err := config.Load(opt.Config)
		if err != nil {
			return opt, err
		}
		applyProfile(fs, &opt, prof)
	}

	return opt, Validate(&opt)
}

// applyProfile fills in profile values for flags the user did not set
// explicitly; command-line flags always win.
func applyProfile(fs *flag.FlagSet, o *Options, p config.Profile) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if p.WindowSize > 0 && !set["window-size"] && !set["w"] {
		o.WindowSize = p.WindowSize
	}
	if p.Method != "" && !set["method"] {
		o.Method = p.Method
	}
	if p.Output != "" && !set["output"] && !set["o"] {
		o.Output = p.Output
	}
	if p.Threads > 0 && !set["threads"] && !set["t"] {
		o.Threads = p.Threads
	}
	if p.SkipInvalid && !set["skip-invalid"] {
		o.SkipInvalid = true
	}
	if p.Sort && !set["sort"] {
		o.Sort = true
	}
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if len(o.Inline) == 0 && len(o.SeqFiles) == 0 {
		return errors.New("provide --sequence or at least one FASTA file (--sequences or positional)")
	}
	if o.WindowSize < 1 {
		return errors.New("--window-size must be >= 1")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be >= 0")
	}
	switch o.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatMarkdown:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.NoResultExitCode < 0 || o.NoResultExitCode > 255 {
		return errors.New("--no-result-exit-code must be between 0 and 255")
	}
	return nil
}
