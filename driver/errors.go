package driver

import (
	"fmt"

	"github.com/halvardk/lr1gen"
)

// ParseError reports that the driver halted with no defined ACTION for the
// current (state, terminal) pair. The driver never retries and never
// attempts error recovery.
type ParseError struct {
	State    int
	Terminal string
	Token    lr1gen.Token // the offending token, nil only for the synthetic trailing EOF
}

func (e *ParseError) Error() string {
	line := -1
	if e.Token != nil {
		line = e.Token.Line()
	}
	return fmt.Sprintf("no action: state %d, terminal %q, line %d", e.State, e.Terminal, line)
}

func parseErrorf(state int, terminal string, tok lr1gen.Token) *ParseError {
	return &ParseError{State: state, Terminal: terminal, Token: tok}
}
