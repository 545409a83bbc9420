// core/aminoacid/propensity.go
package aminoacid

// Per-residue secondary-structure propensities for the "simple" estimator.
// These are coarse empirical scalars; the estimator that consumes them is
// documented as illustrative, not a validated predictor.

var HelixPropensity = map[byte]float64{
	'A': 1.4, 'R': 1.0, 'N': 0.8, 'D': 0.9, 'C': 0.6, 'Q': 1.2, 'E': 1.5,
	'G': 0.4, 'H': 1.0, 'I': 1.0, 'L': 1.2, 'K': 1.1, 'M': 1.4, 'F': 1.0,
	'P': 0.5, 'S': 0.7, 'T': 0.8, 'W': 1.1, 'Y': 0.7, 'V': 0.9,
}

var SheetPropensity = map[byte]float64{
	'A': 0.7, 'R': 0.9, 'N': 0.5, 'D': 0.4, 'C': 1.0, 'Q': 0.8, 'E': 0.6,
	'G': 0.6, 'H': 0.9, 'I': 1.5, 'L': 1.2, 'K': 0.7, 'M': 1.0, 'F': 1.2,
	'P': 0.4, 'S': 0.8, 'T': 1.2, 'W': 1.2, 'Y': 1.3, 'V': 1.7,
}

var TurnPropensity = map[byte]float64{
	'A': 0.7, 'R': 1.0, 'N': 1.5, 'D': 1.5, 'C': 0.9, 'Q': 1.0, 'E': 0.7,
	'G': 1.6, 'H': 1.0, 'I': 0.6, 'L': 0.6, 'K': 1.2, 'M': 0.6, 'F': 0.6,
	'P': 1.5, 'S': 1.2, 'T': 0.9, 'W': 0.7, 'Y': 1.0, 'V': 0.6,
}
