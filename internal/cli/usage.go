// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"protscan/internal/version"
)

// Usage installs a custom Usage() handler on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s - protein sequence analysis toolkit\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] [FASTA ...]\n\n", name)
		fmt.Fprintln(out, "Examples:")
		fmt.Fprintf(out, "  %s --sequence MKCPECGKSFSQRANLQRHQRTHTGEK\n", name)
		fmt.Fprintf(out, "  %s -s proteins.fasta -o json\n", name)
		fmt.Fprintf(out, "  cat proteins.fasta | %s -s - -o jsonl\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable) or '-' for STDIN")
		fmt.Fprintln(out, "      --sequence string       Raw amino-acid sequence (repeatable)")

		fmt.Fprintln(out, "\nAnalysis:")
		fmt.Fprintf(out, "  -w, --window-size int       Sliding window for region detection [%s]\n", def("window-size"))
		fmt.Fprintf(out, "      --method string         Secondary-structure method: simple [%s]\n", def("method"))
		fmt.Fprintf(out, "      --skip-invalid          Log and skip records that fail validation [%s]\n", def("skip-invalid"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl | markdown [%s]\n", def("output"))
		fmt.Fprintf(out, "      --sort                  Sort outputs deterministically [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-result-exit-code int  Exit code when no sequence was analyzed [%s]\n", def("no-result-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --config file           YAML profile with default options [%s]\n", def("config"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
