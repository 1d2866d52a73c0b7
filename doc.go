// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

/*
Package rodd defines a concrete type for reduced ordered decision diagrams, a
canonical and structurally shared representation of Boolean functions over
indexed variables.

Basics

Every function is denoted by a *Node, an immutable vertex that tests the
variable with index Depth and branches to its Low (variable false) and High
(variable true) cofactors. The two constant functions are the terminals
True() and False(); they terminate every traversal and are compared by
identity, like every other node.

All internal vertices are created through the Emplace method of a Store,
which enforces the two invariants that make diagrams canonical: a vertex
whose two cofactors are the same node is never created (the reduction rule),
and structurally equal vertices are interned so that they are represented by
exactly one instance. As a consequence, two nodes built through the same
store denote the same Boolean function exactly when they are the same
pointer, and equality tests on arbitrarily large functions cost a single
comparison.

Stores and sessions

A Store is an independent interning table. Interning is local: building the
same function in two different stores yields two distinct, structurally
equal instances. Cofactors of an emplaced vertex may belong to another
store, so the inputs of a computation can live in one table while its
results are collected in a fresh one. The Builder type carries a swappable
"current target" store for callers that organize their work this way; its
Bind method is a flat swap that returns the previously bound store.

Operations

Not computes the structural complement of a diagram. Join is a generalized
combinator for commutative connectives, parameterized by the identity and
annihilator terminals of the operation; And and Or are its two useful
instantiations and accept any number of operands. Both algorithms memoize
intermediate results in a cache local to the exported call, so no vertex is
processed more than once however many paths lead to it.

The package is written in pure Go and piggybacks on the garbage collector of
the runtime: nodes stay alive as long as a store or a caller references
them, and there is no explicit reclamation.

Concurrency

Stores and builders are not safe for concurrent use. Confine construction to
a single goroutine; the resulting nodes are immutable and can be shared
freely once built.
*/
package rodd
