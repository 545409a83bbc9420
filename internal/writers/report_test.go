package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"protscan-core/analysis"
	"protscan/internal/output"
	"protscan/internal/report"
	"protscan/pkg/api"
)

func testReport(id string) report.Report {
	return report.Report{
		SequenceID: id,
		Result: analysis.Result{
			Sequence: "GGGG", Length: 4, MolecularWeight: 246.22,
			Composition: map[string]float64{"G": 100},
			Structure:   analysis.StructureEstimate{Method: "simple"},
		},
	}
}

func collect(t *testing.T, format string, sort bool, rs ...report.Report) string {
	t.Helper()
	var buf bytes.Buffer
	in, errCh := StartReportWriter(&buf, format, sort, true, 4)
	for _, r := range rs {
		in <- r
	}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer error: %v", err)
	}
	return buf.String()
}

func TestStartReportWriterText(t *testing.T) {
	out := collect(t, output.FormatText, false, testReport("a"))
	if !strings.HasPrefix(out, output.TSVHeader+"\n") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, "\ta\t4\t") {
		t.Errorf("missing row: %q", out)
	}
}

func TestStartReportWriterJSON(t *testing.T) {
	out := collect(t, output.FormatJSON, true, testReport("b"), testReport("a"))
	var back []api.ReportV1
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(back) != 2 || back[0].SequenceID != "a" {
		t.Fatalf("want sorted [a b], got %+v", back)
	}
}

func TestStartReportWriterJSONL(t *testing.T) {
	out := collect(t, output.FormatJSONL, false, testReport("a"), testReport("b"))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d: %q", len(lines), out)
	}
	var r api.ReportV1
	if err := json.Unmarshal([]byte(lines[0]), &r); err != nil {
		t.Fatalf("invalid JSONL line: %v", err)
	}
}

func TestStartReportWriterMarkdown(t *testing.T) {
	out := collect(t, output.FormatMarkdown, false, testReport("a"))
	if !strings.Contains(out, "# Protein Sequence Analysis Report") {
		t.Fatalf("missing markdown title: %q", out)
	}
}

func TestStartReportWriterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartReportWriter(&buf, "xml", false, true, 4)
	in <- testReport("a")
	close(in)
	if err := <-errCh; err == nil {
		t.Fatal("want error for unknown format")
	}
}
