package tables

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/halvardk/lr1gen/grammar"
)

// WriteActionTable persists the ACTION table one line per entry,
// tab-separated `state<TAB>symbol<TAB>content`, content being the sN / rN /
// acc encoding of Action.String (production numbers 1-based). Row order is
// state id then symbol declaration order with '#' last, for a reproducible
// diff across rebuilds.
func (t *Tables) WriteActionTable(w io.Writer) error {
	for _, s := range t.stateIDs() {
		row := t.Action[s]
		for _, term := range t.G.Terminals {
			if term == t.G.EOF {
				continue // written once, after the loop
			}
			if act, ok := row[term]; ok {
				if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", s, term.Name, act); err != nil {
					return err
				}
			}
		}
		if act, ok := row[t.G.EOF]; ok {
			if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", s, t.G.EOF.Name, act); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteGotoTable persists the GOTO table one line per entry,
// `state<TAB>nonterminal<TAB>target_state`.
func (t *Tables) WriteGotoTable(w io.Writer) error {
	for _, s := range t.stateIDs() {
		row := t.Goto[s]
		for _, nt := range t.G.Nonterminals {
			if target, ok := row[nt.ID()]; ok {
				if _, err := fmt.Fprintf(w, "%d\t%s\t%d\n", s, nt.Name, target); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (t *Tables) stateIDs() []int {
	seen := make(map[int]bool)
	var ids []int
	for s := range t.Action {
		if !seen[s] {
			seen[s] = true
			ids = append(ids, s)
		}
	}
	for s := range t.Goto {
		if !seen[s] {
			seen[s] = true
			ids = append(ids, s)
		}
	}
	// insertion sort: table sizes are a handful of hundred states at most,
	// and this runs once per Dump/WriteHTML/WriteActionTable/WriteGotoTable call.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}

// ReadActionTable parses an ActionTable artifact written by
// WriteActionTable, resolving terminal names against g.
func ReadActionTable(r io.Reader, g *grammar.Grammar) (map[int]map[*grammar.Symbol]Action, error) {
	byName := make(map[string]*grammar.Symbol, len(g.Terminals)+1)
	for _, s := range g.Terminals {
		byName[s.Name] = s
	}
	byName[g.EOF.Name] = g.EOF

	out := make(map[int]map[*grammar.Symbol]Action)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("tables: malformed ActionTable line %q", line)
		}
		state, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("tables: malformed state id %q: %w", fields[0], err)
		}
		sym, ok := byName[fields[1]]
		if !ok {
			return nil, fmt.Errorf("tables: unknown terminal %q in ActionTable", fields[1])
		}
		act, err := parseAction(fields[2])
		if err != nil {
			return nil, err
		}
		row, ok := out[state]
		if !ok {
			row = make(map[*grammar.Symbol]Action)
			out[state] = row
		}
		row[sym] = act
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadGotoTable parses a GotoTable artifact written by WriteGotoTable,
// resolving nonterminal names against g.
func ReadGotoTable(r io.Reader, g *grammar.Grammar) (map[int]map[int]int, error) {
	byName := make(map[string]*grammar.Symbol, len(g.Nonterminals))
	for _, s := range g.Nonterminals {
		byName[s.Name] = s
	}

	out := make(map[int]map[int]int)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("tables: malformed GotoTable line %q", line)
		}
		state, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("tables: malformed state id %q: %w", fields[0], err)
		}
		sym, ok := byName[fields[1]]
		if !ok {
			return nil, fmt.Errorf("tables: unknown nonterminal %q in GotoTable", fields[1])
		}
		target, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("tables: malformed target state %q: %w", fields[2], err)
		}
		row, ok := out[state]
		if !ok {
			row = make(map[int]int)
			out[state] = row
		}
		row[sym.ID()] = target
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FromPersisted reconstructs a *Tables from previously-read ACTION/GOTO
// maps, e.g. the outputs of ReadActionTable/ReadGotoTable, without
// rebuilding the automaton.
func FromPersisted(g *grammar.Grammar, action map[int]map[*grammar.Symbol]Action, got map[int]map[int]int) *Tables {
	return &Tables{G: g, Action: action, Goto: got}
}

func parseAction(cell string) (Action, error) {
	switch {
	case cell == "acc":
		return Action{Kind: Accept}, nil
	case strings.HasPrefix(cell, "s"):
		n, err := strconv.Atoi(cell[1:])
		if err != nil {
			return Action{}, fmt.Errorf("tables: malformed shift cell %q: %w", cell, err)
		}
		return Action{Kind: Shift, Operand: n}, nil
	case strings.HasPrefix(cell, "r"):
		n, err := strconv.Atoi(cell[1:])
		if err != nil {
			return Action{}, fmt.Errorf("tables: malformed reduce cell %q: %w", cell, err)
		}
		// persisted reduce numbers are 1-based; Operand is the 0-based serial.
		return Action{Kind: Reduce, Operand: n - 1}, nil
	default:
		return Action{}, fmt.Errorf("tables: unrecognized ACTION cell %q", cell)
	}
}
