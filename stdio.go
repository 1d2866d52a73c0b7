// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package rodd

import (
	"bufio"
	"fmt"
	"io"
	"text/tabwriter"
)

// number assigns display identifiers to the vertices reachable from the
// nodes in n. The terminals always have the ids 0 (False) and 1 (True);
// internal vertices are numbered from 2 in depth-first discovery order, so
// the output of Print and Dot is deterministic for a given diagram.
func number(n []*Node) (map[*Node]int, []*Node) {
	ids := map[*Node]int{zero: 0, one: 1}
	order := []*Node{}
	var visit func(*Node)
	visit = func(m *Node) {
		if _, ok := ids[m]; ok {
			return
		}
		ids[m] = 2 + len(order)
		order = append(order, m)
		visit(m.low)
		visit(m.high)
	}
	for _, m := range n {
		visit(m)
	}
	return ids, order
}

// Print outputs a textual representation of the diagrams rooted at the
// nodes in n, one vertex per line.
func Print(w io.Writer, n ...*Node) {
	ids, order := number(n)
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, m := range order {
		fmt.Fprintf(tw, "%d\t[x%d\t] ? \t%d\t : %d\n", ids[m], m.depth, ids[m.low], ids[m.high])
	}
	tw.Flush()
}

// Dot outputs a graph-like description of the diagrams rooted at the nodes
// in n using Graphviz's DOT format. We do not draw arcs that go to the
// constant false.
func Dot(w io.Writer, n ...*Node) {
	ids, order := number(n)
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "1 [shape=box, label=\"1\", style=filled, shape=box, height=0.3, width=0.3];")
	for _, m := range order {
		fmt.Fprintf(bw, "%d [label=<x%d>];\n", ids[m], m.depth)
		if m.low != zero {
			fmt.Fprintf(bw, "%d -> %d [style=dotted];\n", ids[m], ids[m.low])
		}
		if m.high != zero {
			fmt.Fprintf(bw, "%d -> %d [style=filled];\n", ids[m], ids[m.high])
		}
	}
	fmt.Fprintln(bw, "}")
	bw.Flush()
}

// Stats returns information about the store.
func (s *Store) Stats() string {
	res := fmt.Sprintf("Interned:   %d\n", len(s.unique))
	res += fmt.Sprintf("Produced:   %d\n", s.produced)
	if _DEBUG {
		res += "==============\n"
		res += fmt.Sprintf("Unique Access:  %d\n", s.uniqueAccess)
		res += fmt.Sprintf("Unique Hit:     %d\n", s.uniqueHit)
		res += fmt.Sprintf("Unique Miss:    %d\n", s.uniqueMiss)
	}
	return res
}
