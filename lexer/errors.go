package lexer

import (
	"fmt"

	"github.com/Kingsford-Group/bibparse/charstream"
	"github.com/Kingsford-Group/bibparse/literal"
)

// InvalidTokenError is returned when the tokenizer's state machine has no
// transition defined for the current (state, literal) pair.
type InvalidTokenError struct {
	Literal  literal.Literal
	Position charstream.Position
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: %q. Position: %s", e.Literal.Text(), e.Position)
}

// UnexpectedEOFError is returned when end of file is reached in any state
// other than Idle.
type UnexpectedEOFError struct {
	State    string
	Position charstream.Position
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected EOF in state %s. Position: %s", e.State, e.Position)
}
