// core/aminoacid/aminoacid.go
package aminoacid

// Properties holds the fixed per-residue attributes used by all analyzers.
// Weight is the average (not monoisotopic) mass of the free amino acid in
// Daltons; Charge is -1, 0, +1, or the small fractional value for histidine.
type Properties struct {
	Hydrophobic bool
	Charge      float64
	Weight      float64
}

// Alphabet is the set of accepted single-letter residue codes.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

// WaterMass is the mass of one water molecule (Da), added once per chain to
// account for the terminal H and OH left after peptide-bond condensation.
const WaterMass = 18.01528

// Table maps each standard residue code to its properties. Initialized once,
// never mutated; safe to share across goroutines.
var Table = map[byte]Properties{
	'A': {Hydrophobic: true, Charge: 0, Weight: 89.09},
	'R': {Hydrophobic: false, Charge: 1, Weight: 174.20},
	'N': {Hydrophobic: false, Charge: 0, Weight: 132.12},
	'D': {Hydrophobic: false, Charge: -1, Weight: 133.10},
	'C': {Hydrophobic: true, Charge: 0, Weight: 121.15},
	'E': {Hydrophobic: false, Charge: -1, Weight: 147.13},
	'Q': {Hydrophobic: false, Charge: 0, Weight: 146.15},
	'G': {Hydrophobic: true, Charge: 0, Weight: 75.07},
	'H': {Hydrophobic: false, Charge: 0.1, Weight: 155.16},
	'I': {Hydrophobic: true, Charge: 0, Weight: 131.17},
	'L': {Hydrophobic: true, Charge: 0, Weight: 131.17},
	'K': {Hydrophobic: false, Charge: 1, Weight: 146.19},
	'M': {Hydrophobic: true, Charge: 0, Weight: 149.21},
	'F': {Hydrophobic: true, Charge: 0, Weight: 165.19},
	'P': {Hydrophobic: true, Charge: 0, Weight: 115.13},
	'S': {Hydrophobic: false, Charge: 0, Weight: 105.09},
	'T': {Hydrophobic: false, Charge: 0, Weight: 119.12},
	'W': {Hydrophobic: true, Charge: 0, Weight: 204.23},
	'Y': {Hydrophobic: false, Charge: 0, Weight: 181.19},
	'V': {Hydrophobic: true, Charge: 0, Weight: 117.15},
}

// IsStandard reports whether b is one of the 20 standard residue codes.
func IsStandard(b byte) bool {
	_, ok := Table[b]
	return ok
}

// Aromatic reports whether b is an aromatic residue (F, Y, W).
func Aromatic(b byte) bool {
	return b == 'F' || b == 'Y' || b == 'W'
}
