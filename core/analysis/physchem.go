// core/analysis/physchem.go
package analysis

import "protscan-core/aminoacid"

// Physchem computes the aggregate physicochemical summary of a validated
// sequence. Residues with any positive charge count toward PositiveCount,
// so histidine's fractional charge places it in the positive tally.
func Physchem(seq string) Physicochemical {
	var hydrophobic, positive, negative, aromatic int
	for i := 0; i < len(seq); i++ {
		p := aminoacid.Table[seq[i]]
		if p.Hydrophobic {
			hydrophobic++
		}
		switch {
		case p.Charge > 0:
			positive++
		case p.Charge < 0:
			negative++
		}
		if aminoacid.Aromatic(seq[i]) {
			aromatic++
		}
	}
	n := float64(len(seq))
	net := positive - negative
	return Physicochemical{
		HydrophobicPercent: round2(float64(hydrophobic) / n * 100),
		PositiveCount:      positive,
		NegativeCount:      negative,
		NetCharge:          net,
		IsoelectricPoint:   round2(7.0 + 0.5*float64(net)),
		Aromaticity:        round2(float64(aromatic) / n * 100),
	}
}
