// internal/output/markdown.go
package output

import (
	"fmt"
	"io"
	"sort"

	"protscan/internal/report"
)

// WriteMarkdown renders reports as a human-readable Markdown document, one
// section per sequence. Output is deterministic for a given report list.
func WriteMarkdown(w io.Writer, list []report.Report) error {
	if _, err := fmt.Fprintf(w, "# Protein Sequence Analysis Report\n\nSequences analyzed: %d\n", len(list)); err != nil {
		return err
	}
	for _, r := range list {
		if err := writeMarkdownSection(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownSection(w io.Writer, r report.Report) error {
	pc := r.Physicochemical
	st := r.Structure

	if _, err := fmt.Fprintf(w, "\n## %s\n\n", r.SequenceID); err != nil {
		return err
	}
	if r.SourceFile != "" {
		if _, err := fmt.Fprintf(w, "Source: `%s`\n\n", r.SourceFile); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, `| Property | Value |
|----------|-------|
| Length | %d residues |
| Molecular weight | %.2f Da |
| Hydrophobic content | %.2f%% |
| Positive / negative residues | %d / %d |
| Net charge | %+d |
| Estimated isoelectric point | %.2f |
| Aromaticity | %.2f%% |
`,
		r.Length, r.MolecularWeight, pc.HydrophobicPercent,
		pc.PositiveCount, pc.NegativeCount, pc.NetCharge,
		pc.IsoelectricPoint, pc.Aromaticity); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n### Amino acid composition\n\n| Residue | %% |\n|---------|----|\n"); err != nil {
		return err
	}
	codes := make([]string, 0, len(r.Composition))
	for code := range r.Composition {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		if v := r.Composition[code]; v > 0 {
			if _, err := fmt.Fprintf(w, "| %s | %.2f |\n", code, v); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\n### Regions\n\n"); err != nil {
		return err
	}
	if len(r.Regions.Hydrophobic) == 0 && len(r.Regions.Charged) == 0 {
		if _, err := fmt.Fprintln(w, "No hydrophobic or charged regions detected."); err != nil {
			return err
		}
	}
	for _, h := range r.Regions.Hydrophobic {
		if _, err := fmt.Fprintf(w, "- Hydrophobic %d..%d: `%s`\n", h.Start, h.End, h.Seq); err != nil {
			return err
		}
	}
	for _, c := range r.Regions.Charged {
		if _, err := fmt.Fprintf(w, "- Charged %d..%d (net %+.1f): `%s`\n", c.Start, c.End, c.NetCharge, c.Seq); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n### Secondary structure (%s)\n\nHelix %.0f%%, sheet %.0f%%, turn %.0f%%\n\n> %s\n",
		st.Method, st.Helix*100, st.Sheet*100, st.Turn*100, st.Note)
	return err
}
