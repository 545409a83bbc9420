// core/analysis/result.go
package analysis

// Physicochemical aggregates the charge/hydrophobicity summary of a sequence.
// NetCharge is the difference of the two counts, not a sum of fractional
// charges. IsoelectricPoint is the crude linear estimate 7.0 + 0.5*net; it is
// not derived from pKa values.
type Physicochemical struct {
	HydrophobicPercent float64
	PositiveCount      int
	NegativeCount      int
	NetCharge          int
	IsoelectricPoint   float64
	Aromaticity        float64
}

// Region is a half-open [Start, End) span of the validated sequence.
type Region struct {
	Start int
	End   int
	Seq   string
}

// ChargedRegion carries the net charge summed over the region's first
// qualifying window. The value is fixed at creation and is not recomputed
// when coalescing extends the region.
type ChargedRegion struct {
	Region
	NetCharge float64
}

// RegionSet holds the detected subregions in discovery order (ascending start).
type RegionSet struct {
	Hydrophobic []Region
	Charged     []ChargedRegion
}

// StructureEstimate is the propensity-based helix/sheet/turn split. The three
// fractions sum to 1.0 modulo rounding. Note always carries the disclaimer.
type StructureEstimate struct {
	Helix  float64
	Sheet  float64
	Turn   float64
	Method string
	Note   string
}

// Result is the complete per-sequence analysis record. It is assembled fresh
// on every Analyze call and never mutated afterward.
type Result struct {
	Sequence        string
	Length          int
	MolecularWeight float64
	Composition     map[string]float64
	Physicochemical Physicochemical
	Regions         RegionSet
	Structure       StructureEstimate
}
