package bib

import (
	"strconv"
	"strings"
)

// EditionKind distinguishes a numbered edition from a literal description
// ("Revised edition").
type EditionKind int

const (
	EditionNumeric EditionKind = iota
	EditionLiteral
)

// Edition is the edition field's coerced value.
type Edition struct {
	Kind   EditionKind
	Number uint32
	Text   string
}

// ParseEdition strips at most one trailing '.' before testing whether the
// value parses as an unsigned integer; on failure the dot-stripped text is
// kept as a literal.
func ParseEdition(raw string) Edition {
	trimmed := strings.TrimSpace(raw)
	stripped := strings.TrimSuffix(trimmed, ".")
	if n, err := strconv.ParseUint(stripped, 10, 32); err == nil {
		return Edition{Kind: EditionNumeric, Number: uint32(n)}
	}
	return Edition{Kind: EditionLiteral, Text: stripped}
}
