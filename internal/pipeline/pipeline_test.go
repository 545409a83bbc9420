package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"protscan/internal/report"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFASTA(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seqs.fasta")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runPipeline(t *testing.T, cfg Config, inline []string, files []string) ([]report.Report, error) {
	t.Helper()
	var (
		mu  sync.Mutex
		got []report.Report
	)
	err := ForEachReport(context.Background(), cfg, inline, files,
		func(r report.Report) error {
			mu.Lock()
			got = append(got, r)
			mu.Unlock()
			return nil
		})
	sort.Slice(got, func(i, j int) bool { return got[i].SequenceID < got[j].SequenceID })
	return got, err
}

func TestForEachReportInline(t *testing.T) {
	got, err := runPipeline(t, Config{Threads: 2, Logger: discard()},
		[]string{"MKCP", "GGGG"}, nil)
	if err != nil {
		t.Fatalf("ForEachReport: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 reports, got %d", len(got))
	}
	if got[0].SequenceID != "arg1" || got[1].SequenceID != "arg2" {
		t.Errorf("ids: %s %s", got[0].SequenceID, got[1].SequenceID)
	}
	if got[0].SourceFile != "" {
		t.Errorf("inline report should have no source file, got %q", got[0].SourceFile)
	}
	if got[0].Length != 4 {
		t.Errorf("length: %d", got[0].Length)
	}
}

func TestForEachReportFASTA(t *testing.T) {
	path := writeFASTA(t, ">s1 desc\nMKCP\n>s2\nGG\nGG\n")
	got, err := runPipeline(t, Config{Threads: 4, Logger: discard()}, nil, []string{path})
	if err != nil {
		t.Fatalf("ForEachReport: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 reports, got %d", len(got))
	}
	if got[0].SequenceID != "s1" || got[1].SequenceID != "s2" {
		t.Errorf("ids: %s %s", got[0].SequenceID, got[1].SequenceID)
	}
	if got[1].Sequence != "GGGG" {
		t.Errorf("multi-line record not joined: %q", got[1].Sequence)
	}
	if got[0].SourceFile != path {
		t.Errorf("source file: %q", got[0].SourceFile)
	}
}

func TestForEachReportInvalidAborts(t *testing.T) {
	path := writeFASTA(t, ">bad\nMK123\n>ok\nGGGG\n")
	_, err := runPipeline(t, Config{Threads: 1, Logger: discard()}, nil, []string{path})
	if err == nil {
		t.Fatal("want error for invalid residues")
	}
}

func TestForEachReportSkipInvalid(t *testing.T) {
	path := writeFASTA(t, ">bad\nMK123\n>ok\nGGGG\n")
	got, err := runPipeline(t, Config{Threads: 1, SkipInvalid: true, Logger: discard()}, nil, []string{path})
	if err != nil {
		t.Fatalf("ForEachReport: %v", err)
	}
	if len(got) != 1 || got[0].SequenceID != "ok" {
		t.Fatalf("want only the valid record, got %+v", got)
	}
}

func TestForEachReportMissingFile(t *testing.T) {
	_, err := runPipeline(t, Config{Threads: 1, Logger: discard()}, nil,
		[]string{filepath.Join(t.TempDir(), "nope.fasta")})
	if err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestForEachReportCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachReport(ctx, Config{Threads: 2, Logger: discard()},
		[]string{"MKCP"}, nil, func(report.Report) error { return nil })
	if err != context.Canceled {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestForEachReportVisitErrorPropagates(t *testing.T) {
	wantErr := os.ErrClosed
	err := ForEachReport(context.Background(), Config{Threads: 1, Logger: discard()},
		[]string{"MKCP"}, nil, func(report.Report) error { return wantErr })
	if err != wantErr {
		t.Fatalf("want visit error back, got %v", err)
	}
}

func TestForEachReportWindowAndMethodForwarded(t *testing.T) {
	got, err := runPipeline(t, Config{Threads: 1, Window: 3, Logger: discard()},
		[]string{"LLLDDD"}, nil)
	if err != nil {
		t.Fatalf("ForEachReport: %v", err)
	}
	if len(got) != 1 || len(got[0].Regions.Hydrophobic) == 0 {
		t.Fatalf("window override not applied: %+v", got)
	}

	_, err = runPipeline(t, Config{Threads: 1, Method: "fancy", Logger: discard()},
		[]string{"MKCP"}, nil)
	if err == nil {
		t.Fatal("want error for unsupported method")
	}
}
