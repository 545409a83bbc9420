// internal/output/sort.go
package output

import (
	"sort"

	"protscan/internal/report"
)

// LessReport defines a stable order for reports (for --sort).
func LessReport(a, b report.Report) bool {
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	if a.SequenceID != b.SequenceID {
		return a.SequenceID < b.SequenceID
	}
	return a.Length < b.Length
}

func SortReports(rs []report.Report) {
	sort.Slice(rs, func(i, j int) bool { return LessReport(rs[i], rs[j]) })
}
