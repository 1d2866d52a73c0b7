// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package rodd

import "math/big"

// Not returns the negation of the expression corresponding to node n. It
// negates a diagram by exchanging all references to the zero terminal with
// references to the one terminal and vice versa. The complement is computed
// bottom-up with a cache local to the call, so a vertex reachable through
// several paths is inverted exactly once and the cost stays linear in the
// number of distinct vertices.
func (s *Store) Not(n *Node) *Node {
	return s.not(make(map[*Node]*Node), n)
}

func (s *Store) not(cache map[*Node]*Node, n *Node) *Node {
	if n == zero {
		return one
	}
	if n == one {
		return zero
	}
	if res, ok := cache[n]; ok {
		return res
	}
	res := s.Emplace(n.depth, s.not(cache, n.low), s.not(cache, n.high))
	cache[n] = res
	return res
}

// join computes the combination of x and y under the commutative operator
// whose identity and annihilator terminals are ident and annih. The two
// operands may have been built over different variable sets: only the
// operand testing the shallowest variable is split into its cofactors, the
// deeper one is held unchanged on both branches. The cache key is the
// unordered operand pair, probed in both orders since the operation is
// symmetric.
func (s *Store) join(cache map[[2]*Node]*Node, ident, annih, x, y *Node) *Node {
	if x == ident {
		return y
	}
	if y == ident {
		return x
	}
	if x == annih || y == annih {
		return annih
	}
	if res, ok := cache[[2]*Node{x, y}]; ok {
		return res
	}
	if res, ok := cache[[2]*Node{y, x}]; ok {
		return res
	}
	xlow, xhigh := x.low, x.high
	ylow, yhigh := y.low, y.high
	if x.depth > y.depth {
		xlow, xhigh = x, x
	} else if y.depth > x.depth {
		ylow, yhigh = y, y
	}
	depth := x.depth
	if y.depth < depth {
		depth = y.depth
	}
	res := s.Emplace(depth,
		s.join(cache, ident, annih, xlow, ylow),
		s.join(cache, ident, annih, xhigh, yhigh))
	cache[[2]*Node{x, y}] = res
	return res
}

// Join folds the generalized combination over a sequence of operands, left
// to right. The (ident, annih) pair selects the connective: (True, False)
// yields a conjunction and (False, True) a disjunction; any other pair
// panics. All the steps of one call share a single cache, so results
// memoized while combining early operands are reused by later ones. An
// empty sequence yields ident.
func (s *Store) Join(ident, annih *Node, n ...*Node) *Node {
	if (ident != one && ident != zero) || (annih != one && annih != zero) || ident == annih {
		panic("rodd: identity and annihilator must be the two distinct terminals in call to Join")
	}
	if len(n) == 0 {
		return ident
	}
	res := n[0]
	cache := make(map[[2]*Node]*Node)
	for _, m := range n[1:] {
		res = s.join(cache, ident, annih, res, m)
	}
	return res
}

// And returns the logical 'and' of a sequence of nodes.
func (s *Store) And(n ...*Node) *Node { return s.Join(one, zero, n...) }

// Or returns the logical 'or' of a sequence of nodes.
func (s *Store) Or(n ...*Node) *Node { return s.Join(zero, one, n...) }

// Imp returns the logical 'implication' between two nodes.
func (s *Store) Imp(x, y *Node) *Node {
	return s.Or(s.Not(x), y)
}

// Equiv returns the logical 'bi-implication' between two nodes.
func (s *Store) Equiv(x, y *Node) *Node {
	return s.Or(s.And(x, y), s.And(s.Not(x), s.Not(y)))
}

// Xor returns the 'exclusive or' of two nodes.
func (s *Store) Xor(x, y *Node) *Node {
	return s.Or(s.And(x, s.Not(y)), s.And(s.Not(x), y))
}

// ************************************************************

// depthOf clamps the depth of terminals to varnum, mirroring the convention
// that the constants sit just below the deepest variable.
func depthOf(n *Node, varnum int) int {
	if n == one || n == zero {
		return varnum
	}
	return int(n.depth)
}

// Satcount computes the number of satisfying variable assignments for the
// function denoted by n, counted over varnum variables. Every variable
// tested in n must have an index smaller than varnum. We return a result
// using arbitrary-precision arithmetic to avoid possible overflows.
func Satcount(n *Node, varnum int) *big.Int {
	res := big.NewInt(0)
	// We compute 2^level with a bit shift 1 << level
	res.SetBit(res, depthOf(n, varnum), 1)
	satc := make(map[*Node]*big.Int)
	return res.Mul(res, satcount(n, varnum, satc))
}

func satcount(n *Node, varnum int, satc map[*Node]*big.Int) *big.Int {
	if n == zero {
		return big.NewInt(0)
	}
	if n == one {
		return big.NewInt(1)
	}
	// we use satc to memoize the value of satcount for each node
	if res, ok := satc[n]; ok {
		return res
	}
	res := big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, depthOf(n.low, varnum)-int(n.depth)-1, 1)
	res.Add(res, two.Mul(two, satcount(n.low, varnum, satc)))
	two = big.NewInt(0)
	two.SetBit(two, depthOf(n.high, varnum)-int(n.depth)-1, 1)
	res.Add(res, two.Mul(two, satcount(n.high, varnum, satc)))
	satc[n] = res
	return res
}

// Allsat iterates through all legal variable assignments for n, counted
// over varnum variables, and calls the function f on each of them. We pass
// an int slice of length varnum to f where each entry is either 0 if the
// variable is false, 1 if it is true, and -1 if it is a don't care. We stop
// and return an error if f returns an error at some point.
func Allsat(n *Node, varnum int, f func([]int) error) error {
	prof := make([]int, varnum)
	for k := range prof {
		prof[k] = -1
	}
	return allsat(n, varnum, prof, f)
}

func allsat(n *Node, varnum int, prof []int, f func([]int) error) error {
	if n == one {
		return f(prof)
	}
	if n == zero {
		return nil
	}
	if low := n.low; low != zero {
		prof[n.depth] = 0
		for v := depthOf(low, varnum) - 1; v > int(n.depth); v-- {
			prof[v] = -1
		}
		if err := allsat(low, varnum, prof, f); err != nil {
			return err
		}
	}
	if high := n.high; high != zero {
		prof[n.depth] = 1
		for v := depthOf(high, varnum) - 1; v > int(n.depth); v-- {
			prof[v] = -1
		}
		if err := allsat(high, varnum, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// NodeCount returns the number of distinct internal vertices reachable from
// the nodes in n. Shared vertices are counted once and terminals are not
// counted.
func NodeCount(n ...*Node) int {
	seen := make(map[*Node]bool)
	var count func(*Node)
	count = func(m *Node) {
		if m == one || m == zero || seen[m] {
			return
		}
		seen[m] = true
		count(m.low)
		count(m.high)
	}
	for _, m := range n {
		count(m)
	}
	return len(seen)
}
