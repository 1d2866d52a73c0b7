// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package rodd

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	s := New()
	var literalTests = []struct {
		i    uint32
		sign bool
		low  *Node
		high *Node
	}{
		{0, true, False(), True()},
		{0, false, True(), False()},
		{3, true, False(), True()},
		{7, false, True(), False()},
	}
	for _, tt := range literalTests {
		n := s.Literal(tt.i, tt.sign)
		if n.Depth() != tt.i {
			t.Errorf("Literal(%d, %v): expected depth %d, actual %d", tt.i, tt.sign, tt.i, n.Depth())
		}
		require.Same(t, tt.low, n.Low())
		require.Same(t, tt.high, n.High())
		require.Same(t, n, s.Literal(tt.i, tt.sign))
	}
	require.Same(t, s.Ithvar(2), s.Literal(2, true))
	require.Same(t, s.NIthvar(2), s.Literal(2, false))
}

func TestNotTerminals(t *testing.T) {
	s := New()
	require.Same(t, True(), s.Not(False()))
	require.Same(t, False(), s.Not(True()))
}

func TestNotInvolution(t *testing.T) {
	s := New()
	a := s.Ithvar(0)
	b := s.Ithvar(1)
	c := s.Ithvar(2)

	for _, n := range []*Node{a, s.NIthvar(1), s.Or(s.And(a, b), s.And(s.Not(a), c)), s.Equiv(b, c)} {
		require.Same(t, n, s.Not(s.Not(n)))
	}
}

func TestJoinLaws(t *testing.T) {
	s := New()
	a := s.Ithvar(0)
	f := s.Or(s.And(a, s.Ithvar(1)), s.NIthvar(2))

	for _, n := range []*Node{a, f, True(), False()} {
		require.Same(t, n, s.Or(n, False()))
		require.Same(t, True(), s.Or(n, True()))
		require.Same(t, n, s.And(n, True()))
		require.Same(t, False(), s.And(n, False()))
	}
}

func TestComplementation(t *testing.T) {
	s := New()
	a := s.Literal(0, true)
	abar := s.Literal(0, false)
	require.Same(t, True(), s.Or(a, abar))
	require.Same(t, False(), s.And(a, abar))
}

func TestDisjunctionShape(t *testing.T) {
	s := New()
	abar := s.NIthvar(0)
	bbar := s.NIthvar(1)

	d := s.Or(abar, bbar)
	assert.EqualValues(t, 0, d.Depth())
	require.Same(t, True(), d.Low())
	require.Same(t, bbar, d.High())
	require.Same(t, True(), d.High().Low())
	require.Same(t, False(), d.High().High())
}

func TestJoinFold(t *testing.T) {
	s := New()
	x := s.Ithvar(0)
	y := s.Ithvar(1)
	z := s.Ithvar(2)

	require.Same(t, s.And(s.And(x, y), z), s.And(x, y, z))
	require.Same(t, s.Or(s.Or(x, y), z), s.Or(x, y, z))
	require.Same(t, True(), s.And())
	require.Same(t, False(), s.Or())
	require.Same(t, x, s.And(x))
	require.Same(t, x, s.Or(x))
}

func TestJoinBadPair(t *testing.T) {
	s := New()
	a := s.Ithvar(0)
	assert.Panics(t, func() { s.Join(a, False(), a) })
	assert.Panics(t, func() { s.Join(True(), True(), a) })
}

// TestRandomFormulas builds random expressions and checks the diagram
// against a direct evaluation of the expression on every assignment, as
// well as the model count reported by Satcount.
func TestRandomFormulas(t *testing.T) {
	const varnum = 5
	s := New()
	rgen := rand.New(rand.NewSource(1))

	var build func(d int) (*Node, func([]bool) bool)
	build = func(d int) (*Node, func([]bool) bool) {
		if d == 0 || rgen.Intn(4) == 0 {
			i := uint32(rgen.Intn(varnum))
			sign := rgen.Intn(2) == 1
			return s.Literal(i, sign), func(v []bool) bool { return v[i] == sign }
		}
		switch rgen.Intn(3) {
		case 0:
			x, fx := build(d - 1)
			return s.Not(x), func(v []bool) bool { return !fx(v) }
		case 1:
			x, fx := build(d - 1)
			y, fy := build(d - 1)
			return s.And(x, y), func(v []bool) bool { return fx(v) && fy(v) }
		default:
			x, fx := build(d - 1)
			y, fy := build(d - 1)
			return s.Or(x, y), func(v []bool) bool { return fx(v) || fy(v) }
		}
	}

	for i := 0; i < 50; i++ {
		n, eval := build(4)
		models := int64(0)
		for m := 0; m < 1<<varnum; m++ {
			v := make([]bool, varnum)
			for k := range v {
				v[k] = m&(1<<k) != 0
			}
			expected := eval(v)
			if expected {
				models++
			}
			if n.Eval(v) != expected {
				t.Fatalf("Eval disagrees with the expression on %v", v)
			}
		}
		require.Equal(t, models, Satcount(n, varnum).Int64())
	}
}

func TestDerivedConnectives(t *testing.T) {
	s := New()
	a := s.Ithvar(0)
	b := s.Ithvar(1)

	require.Same(t, s.Or(s.Not(a), b), s.Imp(a, b))
	require.Same(t, True(), s.Imp(a, a))
	require.Same(t, True(), s.Equiv(a, a))
	require.Same(t, False(), s.Xor(a, a))
	require.Same(t, s.Not(s.Equiv(a, b)), s.Xor(a, b))
}

func TestSatcountTerminals(t *testing.T) {
	require.Equal(t, int64(0), Satcount(False(), 4).Int64())
	require.Equal(t, int64(16), Satcount(True(), 4).Int64())
}

func TestAllsat(t *testing.T) {
	s := New()
	a := s.Ithvar(0)
	b := s.Ithvar(1)
	c := s.Ithvar(2)
	f := s.Or(s.And(a, b), s.And(s.Not(a), c))

	// summing 2^(number of don't cares) over the assignments must agree
	// with the model count
	total := big.NewInt(0)
	err := Allsat(f, 3, func(prof []int) error {
		require.Len(t, prof, 3)
		w := big.NewInt(1)
		for _, v := range prof {
			if v == -1 {
				w.Lsh(w, 1)
			}
		}
		total.Add(total, w)
		return nil
	})
	require.NoError(t, err)
	require.Zero(t, total.Cmp(Satcount(f, 3)))
}

func TestAllsatStops(t *testing.T) {
	s := New()
	f := s.Or(s.Ithvar(0), s.Ithvar(1))
	errStop := errors.New("stop")
	calls := 0
	err := Allsat(f, 2, func([]int) error {
		calls++
		return errStop
	})
	require.ErrorIs(t, err, errStop)
	require.Equal(t, 1, calls)
}

func TestNodeCount(t *testing.T) {
	s := New()
	require.Equal(t, 0, NodeCount(True(), False()))

	a := s.Ithvar(0)
	b := s.Ithvar(1)
	require.Equal(t, 1, NodeCount(a))
	require.Equal(t, 2, NodeCount(a, b))
	// the disjunction has two vertices and shares its high cofactor with the
	// second root, which is counted once
	require.Equal(t, 2, NodeCount(s.Or(s.NIthvar(0), s.NIthvar(1)), s.NIthvar(1)))
}
