// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import "math/bits"

// Count returns the number of bits set to 1 (the population count).
func (v *BitVector) Count() uint64 {
	n := 0
	for _, b := range v.bits {
		n += bits.OnesCount64(b)
	}
	return uint64(n)
}

// FindFirst returns the lowest index of a set bit, or Npos if the
// vector contains no set bits.
func (v *BitVector) FindFirst() uint64 {
	return v.findFrom(0)
}

// FindNext returns the lowest index greater than i holding a set bit,
// or Npos if there is none.  Any i at or beyond the last bit (Npos
// included) yields Npos.
func (v *BitVector) FindNext(i uint64) uint64 {
	i++
	// i == 0 here means the increment wrapped from Npos
	if i == 0 || i >= v.numBits {
		return Npos
	}
	bi := blockIndex(i)
	if rest := v.bits[bi] >> bitIndex(i); rest != 0 {
		return i + uint64(bits.TrailingZeros64(rest))
	}
	return v.findFrom(bi + 1)
}

// findFrom scans for the first nonzero block at or after block index bi
// and returns the position of its lowest set bit, or Npos.
func (v *BitVector) findFrom(bi uint64) uint64 {
	for ; bi < uint64(len(v.bits)); bi++ {
		if b := v.bits[bi]; b != 0 {
			return bi*BitsPerBlock + uint64(bits.TrailingZeros64(b))
		}
	}
	return Npos
}
