// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"protscan/internal/report"
)

// FormatRowTSV returns the TSV columns for one report (no trailing newline).
func FormatRowTSV(r report.Report) string {
	pc := r.Physicochemical
	st := r.Structure
	return fmt.Sprintf("%s\t%s\t%d\t%.2f\t%.2f\t%d\t%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t%d",
		r.SourceFile, r.SequenceID, r.Length, r.MolecularWeight,
		pc.HydrophobicPercent, pc.PositiveCount, pc.NegativeCount, pc.NetCharge,
		pc.IsoelectricPoint, pc.Aromaticity,
		st.Helix, st.Sheet, st.Turn,
		len(r.Regions.Hydrophobic), len(r.Regions.Charged),
	)
}

// WriteText prints one TSV line per report.
func WriteText(w io.Writer, list []report.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText streams TSV lines from a channel to the writer.
func StreamText(w io.Writer, in <-chan report.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
