package grammar

import "fmt"

// ConfigError signals a malformed grammar: an undefined FIRST set, a symbol
// used in a production but never classified as terminal or nonterminal, or
// a structural violation of the grammar's invariants. Builders and the
// automaton package both report configuration errors this way, before any
// table is produced.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("grammar configuration error: %s", e.Reason)
}

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
