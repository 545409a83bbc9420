// core/analysis/composition.go
package analysis

import (
	"math"

	"protscan-core/aminoacid"
)

func round2(x float64) float64 { return math.Round(x*100) / 100 }

// Composition returns the percent share of each of the 20 residue codes.
// Every code appears in the map, including those at 0.00, so consumers never
// need defensive lookups. Percentages are rounded to two decimals.
func Composition(seq string) map[string]float64 {
	counts := [256]int{}
	for i := 0; i < len(seq); i++ {
		counts[seq[i]]++
	}
	out := make(map[string]float64, len(aminoacid.Alphabet))
	n := float64(len(seq))
	for i := 0; i < len(aminoacid.Alphabet); i++ {
		c := aminoacid.Alphabet[i]
		out[string(c)] = round2(float64(counts[c]) / n * 100)
	}
	return out
}

// MolecularWeight sums the residue weights plus one water molecule for the
// chain termini, rounded to two decimals. Callers must pass a validated,
// non-empty sequence.
func MolecularWeight(seq string) float64 {
	mw := aminoacid.WaterMass
	for i := 0; i < len(seq); i++ {
		mw += aminoacid.Table[seq[i]].Weight
	}
	return round2(mw)
}
