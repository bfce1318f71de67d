package automaton

import (
	"fmt"
	"io"
)

// WriteDot exports the automaton to Graphviz's Dot format, mirroring the
// original tool's CFSM2GraphViz debug helper.
func (a *Automaton) WriteDot(w io.Writer) error {
	if _, err := io.WriteString(w, "digraph {\n"+
		"graph [splines=true, fontname=Helvetica, fontsize=10];\n"+
		"node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];\n"+
		"edge [fontname=Helvetica, fontsize=10];\n\n"); err != nil {
		return err
	}
	for _, st := range a.States {
		color := "white"
		if st.Accept {
			color = "lightgray"
		}
		if _, err := fmt.Fprintf(w, "s%03d [fillcolor=%s label=\"{%03d | %d items}\"]\n",
			st.ID, color, st.ID, st.Items.Size()); err != nil {
			return err
		}
	}
	it := a.edges.Iterator()
	for it.Next() {
		e := it.Value().(edge)
		if _, err := fmt.Fprintf(w, "s%03d -> s%03d [label=\"%s\"]\n", e.from, e.to, e.label.Name); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}
