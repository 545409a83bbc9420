// internal/output/json.go
package output

import (
	"io"

	"protscan/internal/jsonutil"
	"protscan/internal/report"
	"protscan/pkg/api"
)

// ToAPIReport converts a domain report to the stable wire schema (v1).
func ToAPIReport(r report.Report) api.ReportV1 {
	v := api.ReportV1{
		SequenceID:           r.SequenceID,
		SourceFile:           r.SourceFile,
		SequenceLength:       r.Length,
		MolecularWeight:      r.MolecularWeight,
		AminoAcidComposition: r.Composition,
		Physicochemical: api.PhysicochemicalV1{
			HydrophobicPercent:        r.Physicochemical.HydrophobicPercent,
			PositiveChargeCount:       r.Physicochemical.PositiveCount,
			NegativeChargeCount:       r.Physicochemical.NegativeCount,
			NetCharge:                 r.Physicochemical.NetCharge,
			EstimatedIsoelectricPoint: r.Physicochemical.IsoelectricPoint,
			Aromaticity:               r.Physicochemical.Aromaticity,
		},
		SecondaryStructure: api.StructureV1{
			HelixFraction:    r.Structure.Helix,
			SheetFraction:    r.Structure.Sheet,
			TurnFraction:     r.Structure.Turn,
			PredictionMethod: r.Structure.Method,
			Note:             r.Structure.Note,
		},
	}
	v.Regions.Hydrophobic = make([]api.RegionV1, 0, len(r.Regions.Hydrophobic))
	for _, h := range r.Regions.Hydrophobic {
		v.Regions.Hydrophobic = append(v.Regions.Hydrophobic, api.RegionV1{
			Start: h.Start, End: h.End, Sequence: h.Seq,
		})
	}
	v.Regions.Charged = make([]api.ChargedRegionV1, 0, len(r.Regions.Charged))
	for _, c := range r.Regions.Charged {
		v.Regions.Charged = append(v.Regions.Charged, api.ChargedRegionV1{
			Start: c.Start, End: c.End, Sequence: c.Seq, NetCharge: c.NetCharge,
		})
	}
	return v
}

func toAPIReports(list []report.Report) []api.ReportV1 {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, list []report.Report) error {
	return jsonutil.EncodePretty(w, toAPIReports(list))
}
