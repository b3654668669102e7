package bib

import "fmt"

// MissingSymbolError is returned when an entry ends (or the stream ends)
// without a citation key ever having been read.
type MissingSymbolError struct{}

func (e *MissingSymbolError) Error() string {
	return "missing symbol for entry"
}

// DuplicateSymbolError is returned when a Symbol token arrives after one has
// already been recorded for the entry in progress.
type DuplicateSymbolError struct {
	Symbol string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate symbol: %q", e.Symbol)
}

// OrphanFieldNameError is returned when two FieldName tokens arrive in a row
// with no intervening Value.
type OrphanFieldNameError struct {
	Previous string
}

func (e *OrphanFieldNameError) Error() string {
	return fmt.Sprintf("orphan field name: %q", e.Previous)
}

// OrphanValueError is returned when a Value token arrives with no pending
// field name.
type OrphanValueError struct {
	Value string
}

func (e *OrphanValueError) Error() string {
	return fmt.Sprintf("orphan value: %q", e.Value)
}

// UnexpectedTokenError is returned when a Symbol or Value token arrives
// before any Type token has opened an entry. A well-formed tokenizer
// output never produces this shape, but Assemble accepts a hand-built
// token slice, so it is checked rather than assumed.
type UnexpectedTokenError struct {
	Kind string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %s token with no entry in progress", e.Kind)
}

// InvalidDateError is returned when a date-shaped field's raw value does
// not match the year[-month[-day]] grammar.
type InvalidDateError struct {
	Raw string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %q", e.Raw)
}

// InvalidYearError is returned when the year field is not a signed integer.
type InvalidYearError struct {
	Raw string
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("invalid year: %q", e.Raw)
}

// InvalidMonthError is returned when the month field is neither a 1-12
// integer nor a recognized month name.
type InvalidMonthError struct {
	Raw string
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month: %q", e.Raw)
}

// InvalidPageTotalError is returned when the pagetotal field is not an
// unsigned integer.
type InvalidPageTotalError struct {
	Raw string
}

func (e *InvalidPageTotalError) Error() string {
	return fmt.Sprintf("invalid page total: %q", e.Raw)
}
