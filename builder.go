// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package rodd

// A Builder carries the store that receives newly built nodes. It is the
// explicit counterpart of an ambient "currently bound" table: code that
// alternates between independent diagram-building sessions threads one
// Builder through its calls and swaps the target between sessions.
//
// The zero value is an unbound Builder.
type Builder struct {
	cur *Store
}

// Bind makes s the target of all subsequent constructions through b and
// returns the previously bound store, so that a caller can restore it when
// its session ends:
//
//	prev := b.Bind(s)
//	defer b.Bind(prev)
//
// Bind is a flat swap with no nesting discipline of its own; both s and the
// result may be nil.
func (b *Builder) Bind(s *Store) *Store {
	prev := b.cur
	b.cur = s
	return prev
}

// store returns the bound target. Building through an unbound Builder is a
// protocol violation, not a recoverable condition.
func (b *Builder) store() *Store {
	if b.cur == nil {
		panic("rodd: no store bound in call to Builder")
	}
	return b.cur
}

// Emplace emplaces a node in the bound store. See Store.Emplace.
func (b *Builder) Emplace(depth uint32, low, high *Node) *Node {
	return b.store().Emplace(depth, low, high)
}

// Literal builds a signed variable reference in the bound store. See
// Store.Literal.
func (b *Builder) Literal(i uint32, sign bool) *Node {
	return b.store().Literal(i, sign)
}

// Ithvar builds the i'th variable in the bound store.
func (b *Builder) Ithvar(i uint32) *Node { return b.store().Ithvar(i) }

// NIthvar builds the negation of the i'th variable in the bound store.
func (b *Builder) NIthvar(i uint32) *Node { return b.store().NIthvar(i) }

// Not computes a complement into the bound store. See Store.Not.
func (b *Builder) Not(n *Node) *Node { return b.store().Not(n) }

// Join folds a generalized combination into the bound store. See
// Store.Join.
func (b *Builder) Join(ident, annih *Node, n ...*Node) *Node {
	return b.store().Join(ident, annih, n...)
}

// And returns the conjunction of a sequence of nodes, built into the bound
// store.
func (b *Builder) And(n ...*Node) *Node { return b.store().And(n...) }

// Or returns the disjunction of a sequence of nodes, built into the bound
// store.
func (b *Builder) Or(n ...*Node) *Node { return b.store().Or(n...) }
