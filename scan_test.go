// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindAcrossBlocks(t *testing.T) {
	positions := []uint64{5, 63, 64, 127, 200}
	v := NewSize(256, false)
	for _, i := range positions {
		v.Set(i)
	}

	got := []uint64{}
	for i := v.FindFirst(); i != Npos; i = v.FindNext(i) {
		got = append(got, i)
	}
	require.Equal(t, positions, got)
}

func TestFindNextEdges(t *testing.T) {
	v := NewSize(256, false).Set(255)
	require.Equal(t, uint64(255), v.FindNext(254))
	require.Equal(t, Npos, v.FindNext(255))
	require.Equal(t, Npos, v.FindNext(256))
	require.Equal(t, Npos, v.FindNext(Npos))
	require.Equal(t, Npos, v.FindNext(Npos-1))

	empty := New()
	require.Equal(t, Npos, empty.FindFirst())
	require.Equal(t, Npos, empty.FindNext(0))
	require.Equal(t, Npos, empty.FindNext(Npos))
}

func TestFindFirstSkipsZeroBlocks(t *testing.T) {
	v := NewSize(300, false).Set(290)
	require.Equal(t, uint64(290), v.FindFirst())
	require.Equal(t, Npos, v.FindNext(290))
}

func TestCountMatchesEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	v := NewSize(300, false)
	for i := 0; i < 100; i++ {
		v.Set(uint64(rng.Intn(300)))
	}

	var enumerated uint64
	prev := Npos
	for i := v.FindFirst(); i != Npos; i = v.FindNext(i) {
		if prev != Npos {
			require.Greater(t, i, prev)
		}
		require.True(t, v.IsSet(i))
		enumerated++
		prev = i
	}
	require.Equal(t, v.Count(), enumerated)
}

func TestCount(t *testing.T) {
	require.Equal(t, uint64(0), New().Count())
	require.Equal(t, uint64(0), NewSize(100, false).Count())
	require.Equal(t, uint64(100), NewSize(100, true).Count())
	require.Equal(t, uint64(64), NewFromBlocks([]uint64{^uint64(0)}).Count())
}
