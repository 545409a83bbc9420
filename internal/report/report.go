// internal/report/report.go
package report

import "protscan-core/analysis"

// Report ties one analysis result to the record it came from.
type Report struct {
	SequenceID string
	SourceFile string
	analysis.Result
}
