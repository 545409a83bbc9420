// internal/writers/report.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"protscan/internal/jsonlutil"
	"protscan/internal/output"
	"protscan/internal/report"
)

// StartReportWriter spins up a writer goroutine for report.Report items.
// JSON and Markdown buffer the whole run (they emit one document); text and
// JSONL stream unless sorting forces buffering.
func StartReportWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- report.Report, <-chan error) {
	if format == output.FormatJSONL {
		return jsonlutil.Start[report.Report](out, bufSize,
			func(enc *json.Encoder, r report.Report) error {
				return enc.Encode(output.ToAPIReport(r))
			},
			IsBrokenPipe,
		)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan report.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []report.Report
			for r := range in {
				buf = append(buf, r)
			}
			if sort {
				output.SortReports(buf)
			}
			err = output.WriteJSON(out, buf)

		case output.FormatMarkdown:
			var buf []report.Report
			for r := range in {
				buf = append(buf, r)
			}
			if sort {
				output.SortReports(buf)
			}
			err = output.WriteMarkdown(out, buf)

		case output.FormatText:
			if sort {
				var buf []report.Report
				for r := range in {
					buf = append(buf, r)
				}
				output.SortReports(buf)
				err = output.WriteText(out, buf, header)
			} else {
				err = output.StreamText(out, in, header)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so producers never block after a writer error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
