package bib

import (
	"io"

	"github.com/Kingsford-Group/bibparse/lexer"
)

// Assembler consumes a token sequence and produces typed Entry records. It
// maintains a single in-flight entry at a time; a Type token while one is
// already in progress finalizes it (requiring a symbol) before a new entry
// begins.
type Assembler struct {
	opts Options

	current      *Entry
	havePending  bool
	pendingField string
}

// NewAssembler constructs an Assembler that coerces field values with opts.
func NewAssembler(opts Options) *Assembler {
	return &Assembler{opts: opts}
}

// Assemble drives tokens through the assembler's state machine, returning the
// completed entries or the first error encountered.
func (a *Assembler) Assemble(tokens []lexer.Token) ([]Entry, error) {
	var entries []Entry
	for _, tok := range tokens {
		entry, err := a.step(tok)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	if a.current != nil {
		if a.current.Symbol == "" {
			return nil, &MissingSymbolError{}
		}
		entries = append(entries, *a.current)
		a.current = nil
	}
	return entries, nil
}

// step feeds one token through the assembler, returning a completed entry
// when a Type token closes out the previous one.
func (a *Assembler) step(tok lexer.Token) (*Entry, error) {
	switch tok.Kind {
	case lexer.Type:
		var finished *Entry
		if a.current != nil {
			if a.current.Symbol == "" {
				return nil, &MissingSymbolError{}
			}
			finished = a.current
		}
		a.current = &Entry{Type: ClassifyEntryType(tok.Text)}
		a.havePending = false
		a.pendingField = ""
		return finished, nil

	case lexer.Symbol:
		if a.current == nil {
			return nil, &UnexpectedTokenError{Kind: "Symbol"}
		}
		if a.current.Symbol != "" {
			return nil, &DuplicateSymbolError{Symbol: tok.Text}
		}
		a.current.Symbol = tok.Text
		return nil, nil

	case lexer.FieldName:
		if a.havePending {
			return nil, &OrphanFieldNameError{Previous: a.pendingField}
		}
		a.pendingField = tok.Text
		a.havePending = true
		return nil, nil

	case lexer.Value:
		if !a.havePending {
			return nil, &OrphanValueError{Value: tok.Text}
		}
		if a.current == nil {
			return nil, &UnexpectedTokenError{Kind: "Value"}
		}
		field, err := CoerceField(a.pendingField, tok.Text, a.opts)
		if err != nil {
			return nil, err
		}
		a.current.Fields = append(a.current.Fields, field)
		a.havePending = false
		a.pendingField = ""
		return nil, nil

	default:
		return nil, nil
	}
}

// Assemble runs a fresh Assembler with default Options over tokens.
func Assemble(tokens []lexer.Token) ([]Entry, error) {
	return NewAssembler(Options{}).Assemble(tokens)
}

// Parse composes tokenization and assembly over r using default Options.
func Parse(r io.Reader) ([]Entry, error) {
	tokens, err := lexer.Tokenize(r)
	if err != nil {
		return nil, err
	}
	return Assemble(tokens)
}

// ParseWithOptions composes tokenization and assembly over r, coercing
// field values with opts.
func ParseWithOptions(r io.Reader, opts Options) ([]Entry, error) {
	tokens, err := lexer.Tokenize(r)
	if err != nil {
		return nil, err
	}
	return NewAssembler(opts).Assemble(tokens)
}
