package tables

import (
	"fmt"
	"io"

	"github.com/halvardk/lr1gen/grammar"
)

// WriteHTML exports the ACTION and GOTO tables as a single HTML page,
// adapting the original tool's parserTableAsHTML debug helper to two
// independently-keyed tables instead of one shared sparse matrix.
func (t *Tables) WriteHTML(w io.Writer) error {
	if _, err := io.WriteString(w, "<html><body>\n"); err != nil {
		return err
	}
	if err := t.writeHTMLTable(w, "ACTION", t.G.Terminals, func(state int, sym *grammar.Symbol) string {
		if act, ok := t.ActionAt(state, sym); ok {
			return act.String()
		}
		return "&nbsp;"
	}); err != nil {
		return err
	}
	if err := t.writeHTMLTable(w, "GOTO", t.G.Nonterminals, func(state int, sym *grammar.Symbol) string {
		if target, ok := t.GotoAt(state, sym); ok {
			return fmt.Sprintf("%d", target)
		}
		return "&nbsp;"
	}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body></html>\n")
	return err
}

func (t *Tables) writeHTMLTable(w io.Writer, title string, cols []*grammar.Symbol, cell func(int, *grammar.Symbol) string) error {
	if _, err := fmt.Fprintf(w, "<p>%s table<p>\n", title); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n<tr bgcolor=#cccccc><td></td>\n"); err != nil {
		return err
	}
	for _, c := range cols {
		if _, err := fmt.Fprintf(w, "<td>%s</td>", c.Name); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</tr>\n"); err != nil {
		return err
	}
	for _, s := range t.stateIDs() {
		if _, err := fmt.Fprintf(w, "<tr><td>state %d</td>\n", s); err != nil {
			return err
		}
		for _, c := range cols {
			if _, err := fmt.Fprintf(w, "<td>%s</td>\n", cell(s, c)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</tr>\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</table>\n")
	return err
}
