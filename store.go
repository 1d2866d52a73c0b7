// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package rodd

import "log"

// triple is the unicity key of a node. Children take part in the key by
// identity, so value equality of triples coincides with the one-level value
// equality of nodes; deep structural equality follows because cofactors are
// themselves canonical.
type triple struct {
	depth uint32
	low   *Node
	high  *Node
}

// Store is a canonical node store: an interning table through which every
// internal vertex of a diagram is created. We use the runtime hashmap as the
// unicity table, keyed directly on the (depth, low, high) triple.
type Store struct {
	unique       map[triple]*Node // Unicity table
	produced     int              // Total number of new nodes ever produced
	uniqueAccess int              // accesses to the unique node table
	uniqueHit    int              // entries actually found in the the unique node table
	uniqueMiss   int              // entries not found in the the unique node table
}

// _DEFAULTSIZEHINT is the initial capacity of the unicity table when no
// Sizehint option is given.
const _DEFAULTSIZEHINT int = 256

// configs is used to store the values of the configurable parameters of a
// store.
type configs struct {
	sizehint int // initial capacity of the unicity table
}

// Option is a configuration option (function) accepted by New.
type Option func(*configs)

// Sizehint is a configuration option (function). Used as a parameter in New
// it preallocates room for size nodes in the unicity table. The table grows
// as needed, so the hint only matters for the efficiency of large sessions.
func Sizehint(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.sizehint = size
		}
	}
}

// New initializes an empty canonical node store.
func New(opts ...Option) *Store {
	c := &configs{sizehint: _DEFAULTSIZEHINT}
	for _, o := range opts {
		o(c)
	}
	return &Store{unique: make(map[triple]*Node, c.sizehint)}
}

// Emplace returns the canonical node with the given depth and cofactors,
// creating it in s only if an equal node was not emplaced before. When the
// two cofactors are the same node, the shared child is returned unchanged
// and nothing is created (the reduction rule). Emplace is the single choke
// point through which internal vertices are built, which is what makes
// pointer equality coincide with function equivalence.
//
// The cofactors may be canonical nodes of any store; unicity is only
// guaranteed among the nodes emplaced through s. The depth MaxUint32 is
// reserved for the terminals and panics, as does a nil cofactor.
func (s *Store) Emplace(depth uint32, low, high *Node) *Node {
	if depth == _TERMDEPTH {
		panic("rodd: reserved terminal depth in call to Emplace")
	}
	if low == nil || high == nil {
		panic("rodd: nil cofactor in call to Emplace")
	}
	if low == high {
		return low
	}
	if _DEBUG {
		s.uniqueAccess++
	}
	k := triple{depth: depth, low: low, high: high}
	if res, ok := s.unique[k]; ok {
		if _DEBUG {
			s.uniqueHit++
		}
		return res
	}
	if _DEBUG {
		s.uniqueMiss++
		if _LOGLEVEL > 2 {
			log.Printf("emplace (%d, %p, %p)\n", depth, low, high)
		}
	}
	res := &Node{depth: depth, low: low, high: high}
	s.unique[k] = res
	s.produced++
	return res
}

// Literal returns the canonical node for the expression "variable i equals
// sign": the node tests variable i and selects True on the branch matching
// sign, False on the other. Repeated calls with the same arguments on the
// same store return the same reference.
func (s *Store) Literal(i uint32, sign bool) *Node {
	if sign {
		return s.Emplace(i, zero, one)
	}
	return s.Emplace(i, one, zero)
}

// Ithvar returns the node representing the i'th variable, that is
// Literal(i, true).
func (s *Store) Ithvar(i uint32) *Node { return s.Literal(i, true) }

// NIthvar returns the node representing the negation of the i'th variable.
// See Ithvar for further info.
func (s *Store) NIthvar(i uint32) *Node { return s.Literal(i, false) }

// Size returns the number of nodes interned in s. The terminals are never
// part of a store.
func (s *Store) Size() int { return len(s.unique) }
