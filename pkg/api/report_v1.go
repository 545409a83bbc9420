// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for per-sequence analysis reports.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	SequenceID           string             `json:"sequence_id"`
	SourceFile           string             `json:"source_file,omitempty"`
	SequenceLength       int                `json:"sequence_length"`
	MolecularWeight      float64            `json:"molecular_weight"`
	AminoAcidComposition map[string]float64 `json:"amino_acid_composition"`
	Physicochemical      PhysicochemicalV1  `json:"physicochemical_properties"`
	Regions              RegionsV1          `json:"regions"`
	SecondaryStructure   StructureV1        `json:"secondary_structure"`
}

type PhysicochemicalV1 struct {
	HydrophobicPercent        float64 `json:"hydrophobic_percent"`
	PositiveChargeCount       int     `json:"positive_charge_count"`
	NegativeChargeCount       int     `json:"negative_charge_count"`
	NetCharge                 int     `json:"net_charge"`
	EstimatedIsoelectricPoint float64 `json:"estimated_isoelectric_point"`
	Aromaticity               float64 `json:"aromaticity"`
}

type RegionsV1 struct {
	Hydrophobic []RegionV1        `json:"hydrophobic_regions"`
	Charged     []ChargedRegionV1 `json:"charged_regions"`
}

type RegionV1 struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Sequence string `json:"sequence"`
}

type ChargedRegionV1 struct {
	Start     int     `json:"start"`
	End       int     `json:"end"`
	Sequence  string  `json:"sequence"`
	NetCharge float64 `json:"net_charge"`
}

type StructureV1 struct {
	HelixFraction    float64 `json:"helix_fraction"`
	SheetFraction    float64 `json:"sheet_fraction"`
	TurnFraction     float64 `json:"turn_fraction"`
	PredictionMethod string  `json:"prediction_method"`
	Note             string  `json:"note"`
}
