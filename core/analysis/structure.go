// core/analysis/structure.go
package analysis

import (
	"fmt"

	"protscan-core/aminoacid"
)

// MethodSimple is the only supported secondary-structure method. The contract
// admits future methods without changing the function signature.
const MethodSimple = "simple"

// StructureNote is attached to every estimate so callers cannot mistake the
// output for a validated structural prediction.
const StructureNote = "This is a simplified prediction and should not be used for scientific purposes."

// UnsupportedMethodError reports a secondary-structure method that no scorer
// implements.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported prediction method %q (supported: %s)", e.Method, MethodSimple)
}

// SecondaryStructure averages the three propensity tables over the sequence
// and normalizes the scores so the fractions sum to 1.0 modulo rounding.
func SecondaryStructure(seq string, method string) (StructureEstimate, error) {
	if method == "" {
		method = MethodSimple
	}
	if method != MethodSimple {
		return StructureEstimate{}, &UnsupportedMethodError{Method: method}
	}

	var helix, sheet, turn float64
	for i := 0; i < len(seq); i++ {
		helix += aminoacid.HelixPropensity[seq[i]]
		sheet += aminoacid.SheetPropensity[seq[i]]
		turn += aminoacid.TurnPropensity[seq[i]]
	}
	n := float64(len(seq))
	helix /= n
	sheet /= n
	turn /= n

	total := helix + sheet + turn
	return StructureEstimate{
		Helix:  round2(helix / total),
		Sheet:  round2(sheet / total),
		Turn:   round2(turn / total),
		Method: method,
		Note:   StructureNote,
	}, nil
}
