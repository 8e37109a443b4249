// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sparse multi-block test pattern
func patternVector(n uint64) *BitVector {
	v := NewSize(n, false)
	for i := uint64(0); i < n; i += 7 {
		v.Set(i)
	}
	return v
}

func TestComplementInvolution(t *testing.T) {
	for _, n := range []uint64{0, 1, 10, 63, 64, 65, 130} {
		v := patternVector(n)
		require.True(t, v.Not().Not().Equal(v), "size %d", n)
	}
}

func TestComplementZeroPadding(t *testing.T) {
	v := NewSize(70, false).Not()
	require.Equal(t, uint64(70), v.Count())
	requireInvariants(t, v)

	v.FlipAll()
	require.Equal(t, uint64(0), v.Count())
	requireInvariants(t, v)
}

func TestShiftLeftSmall(t *testing.T) {
	v := NewSize(10, false).Set(0).Set(3).Set(9)
	v.ShiftLeft(2)
	require.Equal(t, uint64(10), v.Size())
	// bit 9 shifted past the end and was discarded
	require.Equal(t, uint64(2), v.Count())
	require.True(t, v.IsSet(2))
	require.True(t, v.IsSet(5))
	requireInvariants(t, v)
}

func TestShiftRightSmall(t *testing.T) {
	v := NewSize(10, false).Set(0).Set(3).Set(9)
	v.ShiftRight(3)
	require.Equal(t, uint64(10), v.Size())
	require.Equal(t, uint64(2), v.Count())
	require.True(t, v.IsSet(0))
	require.True(t, v.IsSet(6))
	requireInvariants(t, v)
}

func TestShiftAcrossBlockBoundary(t *testing.T) {
	v := NewSize(130, false).Set(60)
	v.ShiftLeft(10)
	require.True(t, v.IsSet(70))
	require.Equal(t, uint64(1), v.Count())

	v.ShiftRight(10)
	require.True(t, v.IsSet(60))
	require.Equal(t, uint64(1), v.Count())

	// whole-block shift
	v.ShiftLeft(64)
	require.True(t, v.IsSet(124))
	require.Equal(t, uint64(1), v.Count())
	requireInvariants(t, v)
}

func TestShiftIdentity(t *testing.T) {
	const size = 130
	v := patternVector(size)
	for _, n := range []uint64{0, 1, 7, 63, 64, 65, 129, 130} {
		got := v.Lsh(n).Rsh(n)

		want := v.Copy()
		for i := size - n; i < size; i++ {
			want.Clear(i)
		}
		require.True(t, got.Equal(want), "shift by %d", n)
		requireInvariants(t, got)
	}
}

func TestShiftByAtLeastSize(t *testing.T) {
	for _, n := range []uint64{130, 131, 1000, Npos} {
		v := patternVector(130)
		v.ShiftLeft(n)
		require.Equal(t, uint64(130), v.Size())
		require.Equal(t, uint64(0), v.Count())

		v = patternVector(130)
		v.ShiftRight(n)
		require.Equal(t, uint64(130), v.Size())
		require.Equal(t, uint64(0), v.Count())
	}
}

func TestBooleanOps(t *testing.T) {
	a := NewSize(130, false).Set(0).Set(64).Set(100)
	b := NewSize(130, false).Set(0).Set(65).Set(100).Set(129)

	and := a.And(b)
	require.Equal(t, uint64(2), and.Count())
	require.True(t, and.IsSet(0))
	require.True(t, and.IsSet(100))

	or := a.Or(b)
	require.Equal(t, uint64(5), or.Count())

	xor := a.Xor(b)
	require.Equal(t, uint64(3), xor.Count())
	require.True(t, xor.IsSet(64))
	require.True(t, xor.IsSet(65))
	require.True(t, xor.IsSet(129))

	diff := a.AndNot(b)
	require.Equal(t, uint64(1), diff.Count())
	require.True(t, diff.IsSet(64))

	// operands are untouched by the non-assigning forms
	require.Equal(t, uint64(3), a.Count())
	require.Equal(t, uint64(4), b.Count())
}

func TestBooleanAssignOps(t *testing.T) {
	a := NewSize(70, false).Set(1).Set(69)
	b := NewSize(70, false).Set(1).Set(2)

	require.True(t, a.Copy().AndAssign(b).Equal(a.And(b)))
	require.True(t, a.Copy().OrAssign(b).Equal(a.Or(b)))
	require.True(t, a.Copy().XorAssign(b).Equal(a.Xor(b)))
	require.True(t, a.Copy().AndNotAssign(b).Equal(a.AndNot(b)))
}

func TestAlgebraLaws(t *testing.T) {
	a := patternVector(200)
	b := NewSize(200, false)
	for i := uint64(0); i < 200; i += 5 {
		b.Set(i)
	}

	// (a & b) | (a ^ b) == a | b
	require.True(t, a.And(b).Or(a.Xor(b)).Equal(a.Or(b)))
	// a - b == a & ~b
	require.True(t, a.AndNot(b).Equal(a.And(b.Not())))
}

func TestEqual(t *testing.T) {
	a := NewSize(70, false).Set(3)
	b := NewSize(70, false).Set(3)
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))

	b.Set(4)
	require.False(t, a.Equal(b))

	// same contents, different size
	c := NewSize(71, false).Set(3)
	require.False(t, a.Equal(c))

	require.True(t, New().Equal(New()))
}

func TestLess(t *testing.T) {
	// numeric ordering within one size
	two := NewSize(10, false).Set(1)
	five := NewSize(10, false).Set(0).Set(2)
	require.True(t, two.Less(five))
	require.False(t, five.Less(two))
	require.False(t, two.Less(two))

	// equal numeric value, shorter size orders first
	shortFive := NewSize(3, false).Set(0).Set(2)
	require.True(t, shortFive.Less(five))
	require.False(t, five.Less(shortFive))

	// a high set bit beats any shorter vector
	big := NewSize(130, false).Set(129)
	require.True(t, five.Less(big))
	require.False(t, big.Less(five))

	// all-zero vectors compare equal numerically, so the empty
	// vector orders first on the size tie-break
	require.True(t, New().Less(NewSize(10, false)))
	require.False(t, NewSize(10, false).Less(New()))
}
