package output

import (
	"protscan-core/analysis"
	"protscan/internal/report"
)

func sampleReport(id, src string) report.Report {
	return report.Report{
		SequenceID: id,
		SourceFile: src,
		Result: analysis.Result{
			Sequence:        "MKCPECG",
			Length:          7,
			MolecularWeight: 770.96,
			Composition:     map[string]float64{"M": 14.29, "K": 14.29, "C": 28.57, "P": 14.29, "E": 14.29, "G": 14.29, "A": 0},
			Physicochemical: analysis.Physicochemical{
				HydrophobicPercent: 42.86,
				PositiveCount:      1,
				NegativeCount:      1,
				NetCharge:          0,
				IsoelectricPoint:   7.0,
				Aromaticity:        0,
			},
			Regions: analysis.RegionSet{
				Hydrophobic: []analysis.Region{{Start: 0, End: 7, Seq: "MKCPECG"}},
				Charged:     []analysis.ChargedRegion{{Region: analysis.Region{Start: 0, End: 7, Seq: "MKCPECG"}, NetCharge: 0.1}},
			},
			Structure: analysis.StructureEstimate{
				Helix: 0.4, Sheet: 0.3, Turn: 0.3,
				Method: "simple", Note: "n/a",
			},
		},
	}
}
