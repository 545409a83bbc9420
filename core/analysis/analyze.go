// core/analysis/analyze.go
package analysis

import (
	"io"
	"log/slog"

	"protscan-core/protein"
)

// Config holds analysis parameters.
type Config struct {
	Window int          // sliding-window size for region scanning (0 = DefaultWindow)
	Method string       // secondary-structure method ("" = MethodSimple)
	Logger *slog.Logger // diagnostics on failure; nil discards
}

// Analyzer runs the full analysis chain over raw sequences. It is stateless
// apart from its config and safe for concurrent use.
type Analyzer struct {
	cfg Config
	log *slog.Logger
}

// New creates an Analyzer.
func New(c Config) *Analyzer {
	log := c.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Analyzer{cfg: c, log: log}
}

// Analyze validates raw and runs the four analyzers over the validated
// sequence. Failures are logged with context and returned unchanged; there is
// no partial-success mode.
func (a *Analyzer) Analyze(raw string) (Result, error) {
	seq, err := protein.Validate(raw)
	if err != nil {
		a.log.Error("sequence validation failed", "err", err)
		return Result{}, err
	}

	structure, err := SecondaryStructure(seq, a.cfg.Method)
	if err != nil {
		a.log.Error("secondary-structure estimate failed", "err", err, "method", a.cfg.Method)
		return Result{}, err
	}

	return Result{
		Sequence:        seq,
		Length:          len(seq),
		MolecularWeight: MolecularWeight(seq),
		Composition:     Composition(seq),
		Physicochemical: Physchem(seq),
		Regions:         ScanRegions(seq, a.cfg.Window),
		Structure:       structure,
	}, nil
}
