package lexer

import (
	"io"
	"strings"

	"github.com/Kingsford-Group/bibparse/charstream"
	"github.com/Kingsford-Group/bibparse/literal"
)

type stateKind int

const (
	stateIdle stateKind = iota
	stateReadType
	stateReadSymbol
	stateReadPropertyName
	stateReadValue
)

func (s stateKind) String() string {
	switch s {
	case stateIdle:
		return "Idle"
	case stateReadType:
		return "ReadType"
	case stateReadSymbol:
		return "ReadSymbol"
	case stateReadPropertyName:
		return "ReadPropertyName"
	case stateReadValue:
		return "ReadValue"
	default:
		return "Unknown"
	}
}

type valueMode int

const (
	valueNormal valueMode = iota
	valueDoubleQuoted
	valueBraced
)

// Tokenizer drives the character-classification state machine that turns a
// byte stream into a flat Token sequence. It holds no knowledge of entry
// shape or vocabulary; that belongs to the assembler built on top of it.
type Tokenizer struct {
	cs    *charstream.CharStream
	state stateKind
	mode  valueMode

	braceDepth int
	buf        strings.Builder
	tokens     []Token
}

// New constructs a Tokenizer reading from r.
func New(r io.Reader) *Tokenizer {
	return &Tokenizer{
		cs:    charstream.New(r),
		state: stateIdle,
		mode:  valueNormal,
	}
}

// Tokenize reads r to completion and returns every token it produced, or the
// first error encountered.
func Tokenize(r io.Reader) ([]Token, error) {
	return New(r).Tokenize()
}

func (t *Tokenizer) flush(k Kind) {
	t.tokens = append(t.tokens, Token{Kind: k, Text: t.buf.String()})
	t.buf.Reset()
}

func (t *Tokenizer) position() charstream.Position {
	return t.cs.Position()
}

// Tokenize runs the state machine until the underlying stream is exhausted
// and returns the accumulated tokens.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	for {
		r, ok, err := t.cs.Next()
		if err != nil {
			return nil, err
		}
		var lit literal.Literal
		if !ok {
			lit = literal.EOF
		} else {
			lit = literal.Classify(r)
		}

		done, err := t.step(lit)
		if err != nil {
			return nil, err
		}
		if done {
			return t.tokens, nil
		}
	}
}

// step feeds one classified literal through the current state, returning
// true once EOF has been consumed from the Idle state (a clean end of
// stream between entries).
func (t *Tokenizer) step(lit literal.Literal) (bool, error) {
	switch t.state {
	case stateIdle:
		return t.stepIdle(lit)
	case stateReadType:
		return false, t.stepReadType(lit)
	case stateReadSymbol:
		return false, t.stepReadSymbol(lit)
	case stateReadPropertyName:
		return false, t.stepReadPropertyName(lit)
	case stateReadValue:
		return false, t.stepReadValue(lit)
	default:
		panic("lexer: unreachable state")
	}
}

func (t *Tokenizer) stepIdle(lit literal.Literal) (bool, error) {
	switch lit.Kind {
	case literal.EndOfFile:
		return true, nil
	case literal.AtSign:
		t.state = stateReadType
		return false, nil
	case literal.Whitespace, literal.Newline:
		return false, nil
	default:
		return false, &InvalidTokenError{Literal: lit, Position: t.position()}
	}
}

func (t *Tokenizer) stepReadType(lit literal.Literal) error {
	switch lit.Kind {
	case literal.Alphabetic:
		t.buf.WriteString(lit.Text())
		return nil
	case literal.LeftBrace:
		t.flush(Type)
		t.state = stateReadSymbol
		return nil
	case literal.EndOfFile:
		return &UnexpectedEOFError{State: t.state.String(), Position: t.position()}
	default:
		return &InvalidTokenError{Literal: lit, Position: t.position()}
	}
}

func (t *Tokenizer) stepReadSymbol(lit literal.Literal) error {
	switch lit.Kind {
	case literal.Alphabetic, literal.Numeric, literal.Other:
		t.buf.WriteString(lit.Text())
		return nil
	case literal.Comma:
		t.flush(Symbol)
		t.state = stateReadPropertyName
		return nil
	case literal.Whitespace, literal.Newline:
		return nil
	case literal.EndOfFile:
		return &UnexpectedEOFError{State: t.state.String(), Position: t.position()}
	default:
		return &InvalidTokenError{Literal: lit, Position: t.position()}
	}
}

func (t *Tokenizer) stepReadPropertyName(lit literal.Literal) error {
	switch lit.Kind {
	case literal.Alphabetic:
		t.buf.WriteString(lit.Text())
		return nil
	case literal.Equals:
		t.flush(FieldName)
		t.state = stateReadValue
		t.mode = valueNormal
		t.braceDepth = 0
		return nil
	case literal.RightBrace:
		// closes the entry even mid-name; any partial field name is discarded.
		t.buf.Reset()
		t.state = stateIdle
		return nil
	case literal.Whitespace, literal.Newline:
		return nil
	case literal.EndOfFile:
		return &UnexpectedEOFError{State: t.state.String(), Position: t.position()}
	default:
		return &InvalidTokenError{Literal: lit, Position: t.position()}
	}
}

func (t *Tokenizer) stepReadValue(lit literal.Literal) error {
	switch t.mode {
	case valueNormal:
		return t.stepValueNormal(lit)
	case valueDoubleQuoted:
		return t.stepValueDoubleQuoted(lit)
	case valueBraced:
		return t.stepValueBraced(lit)
	default:
		panic("lexer: unreachable value mode")
	}
}

func (t *Tokenizer) stepValueNormal(lit literal.Literal) error {
	switch lit.Kind {
	case literal.DoubleQuote:
		t.mode = valueDoubleQuoted
		return nil
	case literal.LeftBrace:
		t.mode = valueBraced
		t.braceDepth = 0
		return nil
	case literal.Comma:
		t.flush(Value)
		t.state = stateReadPropertyName
		return nil
	case literal.RightBrace:
		t.flush(Value)
		t.state = stateIdle
		return nil
	case literal.Whitespace, literal.Newline:
		return nil
	case literal.Alphabetic, literal.Numeric:
		t.buf.WriteString(lit.Text())
		return nil
	case literal.EndOfFile:
		return &UnexpectedEOFError{State: t.state.String(), Position: t.position()}
	default:
		return &InvalidTokenError{Literal: lit, Position: t.position()}
	}
}

func (t *Tokenizer) stepValueDoubleQuoted(lit literal.Literal) error {
	switch lit.Kind {
	case literal.DoubleQuote:
		t.mode = valueNormal
		return nil
	case literal.EndOfFile:
		return &UnexpectedEOFError{State: t.state.String(), Position: t.position()}
	default:
		t.buf.WriteString(lit.Text())
		return nil
	}
}

// stepValueBraced handles the ReadValue(Braced(n)) submode. Brace delimiters
// themselves are never appended to the value, at any depth: only depth
// bookkeeping happens on '{' and '}'. Every other literal is appended
// literally, matching the balanced-brace invariance property (nested brace
// groups are stripped from the produced value, not merely the outermost
// pair).
func (t *Tokenizer) stepValueBraced(lit literal.Literal) error {
	switch lit.Kind {
	case literal.LeftBrace:
		t.braceDepth++
		return nil
	case literal.RightBrace:
		if t.braceDepth == 0 {
			t.mode = valueNormal
			return nil
		}
		t.braceDepth--
		return nil
	case literal.EndOfFile:
		return &UnexpectedEOFError{State: t.state.String(), Position: t.position()}
	default:
		t.buf.WriteString(lit.Text())
		return nil
	}
}
