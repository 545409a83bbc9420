// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// BoolFlags reports which registered flags take no value argument.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals partitions argv so FASTA paths may appear anywhere
// on the command line, before or between flags. A lone "-" stays positional
// (stdin) and "--" ends flag parsing. Call before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			return flagArgs, posArgs
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			posArgs = append(posArgs, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if strings.ContainsRune(arg, '=') {
			continue
		}
		// Value flags consume the next argument.
		if name := strings.TrimLeft(arg, "-"); !boolFlags[name] && i+1 < len(argv) {
			flagArgs = append(flagArgs, argv[i+1])
			i++
		}
	}
	return flagArgs, posArgs
}

// ExpandPositionals applies glob expansion to path arguments the shell left
// unexpanded (quoted patterns, non-POSIX shells). "-" passes through. A
// pattern matching nothing is an error rather than a silently empty input.
func ExpandPositionals(posArgs []string) ([]string, error) {
	out := make([]string, 0, len(posArgs))
	for _, a := range posArgs {
		if a == "-" || !strings.ContainsAny(a, "*?[") {
			out = append(out, a)
			continue
		}
		matches, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, matches...)
	}
	return out, nil
}
