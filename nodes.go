// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package rodd

import (
	"fmt"
	"math"
)

// _TERMDEPTH is the depth carried by the two terminal nodes. It is strictly
// larger than every admissible variable index, so the alignment logic in a
// join can never freeze an operand against a terminal, whatever the order of
// the short-circuit checks.
const _TERMDEPTH uint32 = math.MaxUint32

// Node is a vertex of a decision diagram. It is immutable: the depth and the
// two cofactors are fixed at creation and nodes are only ever built through
// Store.Emplace. Two nodes denote the same Boolean function exactly when
// they are the same pointer.
type Node struct {
	depth uint32 // Index of the tested variable
	low   *Node  // Cofactor when the variable is false
	high  *Node  // Cofactor when the variable is true
}

// The terminals are their own cofactors, like the two constant slots in a
// BuDDy node table. They are never members of a store.
var (
	zero = &Node{depth: _TERMDEPTH}
	one  = &Node{depth: _TERMDEPTH}
)

func init() {
	zero.low, zero.high = zero, zero
	one.low, one.high = one, one
}

// True returns the node for the constant true function.
func True() *Node { return one }

// False returns the node for the constant false function.
func False() *Node { return zero }

// From returns the terminal corresponding to a boolean value.
func From(v bool) *Node {
	if v {
		return one
	}
	return zero
}

// Depth returns the index of the variable tested by n or, for a node
// produced by a join, the shallowest index among its operands. The two
// terminals share the reserved depth MaxUint32.
func (n *Node) Depth() uint32 { return n.depth }

// Low returns the cofactor of n selected when the tested variable is false.
// Terminals are their own cofactors.
func (n *Node) Low() *Node { return n.low }

// High returns the cofactor of n selected when the tested variable is true.
func (n *Node) High() *Node { return n.high }

// Eval applies the function denoted by n to an assignment of the variables,
// where varset[i] is the value given to variable i. The slice must cover
// every variable tested in n.
func (n *Node) Eval(varset []bool) bool {
	for n != one && n != zero {
		if varset[n.depth] {
			n = n.high
		} else {
			n = n.low
		}
	}
	return n == one
}

// String returns a textual description of the function rooted at n, mostly
// useful for debugging small diagrams; shared vertices are printed once for
// every path that reaches them.
func (n *Node) String() string {
	if n == zero {
		return "False"
	}
	if n == one {
		return "True"
	}
	return fmt.Sprintf("(x%d ? %s : %s)", n.depth, n.high, n.low)
}
