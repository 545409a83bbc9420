// core/protein/validate.go
package protein

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"protscan-core/aminoacid"
)

// ErrEmptyInput is returned when the raw input is empty or all whitespace.
var ErrEmptyInput = errors.New("empty sequence: input contains no residues")

// InvalidResidueError reports the characters that are not standard residue
// codes, in first-seen order with duplicates removed.
type InvalidResidueError struct {
	Invalid string
}

func (e *InvalidResidueError) Error() string {
	return fmt.Sprintf("invalid residue(s) %q; allowed codes: %s", e.Invalid, aminoacid.Alphabet)
}

// Normalize uppercases raw and strips all whitespace.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate normalizes raw and checks that every character is a standard
// residue code. It is a pure function; downstream analyzers assume its output
// and never re-validate.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", ErrEmptyInput
	}
	var bad []rune
	seen := map[rune]bool{}
	for _, r := range s {
		if r < utf8.RuneSelf && aminoacid.IsStandard(byte(r)) {
			continue
		}
		if !seen[r] {
			seen[r] = true
			bad = append(bad, r)
		}
	}
	if len(bad) > 0 {
		return "", &InvalidResidueError{Invalid: string(bad)}
	}
	return s, nil
}
