// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import "github.com/momoadc/bitvec/internal/zero"

// FlipAll complements every bit in place.
func (v *BitVector) FlipAll() *BitVector {
	for i := range v.bits {
		v.bits[i] = ^v.bits[i]
	}
	v.zeroUnusedBits()
	return v
}

// Not returns the complement of v as a new vector.
func (v *BitVector) Not() *BitVector {
	return v.Copy().FlipAll()
}

// ShiftLeft shifts every bit n positions towards higher indices, in
// place.  Bits shifted past Size() are discarded and vacated low
// positions fill with 0; the size is unchanged.  Shifting by
// n >= Size() leaves an all-zero vector.
func (v *BitVector) ShiftLeft(n uint64) *BitVector {
	if n == 0 || v.numBits == 0 {
		return v
	}
	if n >= v.numBits {
		return v.ClearAll()
	}
	div, r := n/BitsPerBlock, n%BitsPerBlock
	last := uint64(len(v.bits)) - 1
	if r == 0 {
		for i := last; i >= div; i-- {
			v.bits[i] = v.bits[i-div]
		}
	} else {
		for i := last; i > div; i-- {
			v.bits[i] = v.bits[i-div]<<r | v.bits[i-div-1]>>(BitsPerBlock-r)
		}
		v.bits[div] = v.bits[0] << r
	}
	zero.U64(v.bits[:div])
	v.zeroUnusedBits()
	return v
}

// ShiftRight shifts every bit n positions towards lower indices, in
// place.  Vacated high positions fill with 0; the size is unchanged.
// Shifting by n >= Size() leaves an all-zero vector.
func (v *BitVector) ShiftRight(n uint64) *BitVector {
	if n == 0 || v.numBits == 0 {
		return v
	}
	if n >= v.numBits {
		return v.ClearAll()
	}
	div, r := n/BitsPerBlock, n%BitsPerBlock
	m := uint64(len(v.bits))
	if r == 0 {
		for i := uint64(0); i < m-div; i++ {
			v.bits[i] = v.bits[i+div]
		}
	} else {
		for i := uint64(0); i < m-div-1; i++ {
			v.bits[i] = v.bits[i+div]>>r | v.bits[i+div+1]<<(BitsPerBlock-r)
		}
		v.bits[m-div-1] = v.bits[m-1] >> r
	}
	zero.U64(v.bits[m-div:])
	v.zeroUnusedBits()
	return v
}

// Lsh returns v shifted left by n bits as a new vector.
func (v *BitVector) Lsh(n uint64) *BitVector {
	return v.Copy().ShiftLeft(n)
}

// Rsh returns v shifted right by n bits as a new vector.
func (v *BitVector) Rsh(n uint64) *BitVector {
	return v.Copy().ShiftRight(n)
}

// AndAssign intersects v with o in place.  It panics if the sizes
// differ.
func (v *BitVector) AndAssign(o *BitVector) *BitVector {
	v.sizeCheck(o)
	for i := range v.bits {
		v.bits[i] &= o.bits[i]
	}
	return v
}

// OrAssign unions v with o in place.  It panics if the sizes differ.
func (v *BitVector) OrAssign(o *BitVector) *BitVector {
	v.sizeCheck(o)
	for i := range v.bits {
		v.bits[i] |= o.bits[i]
	}
	return v
}

// XorAssign replaces v with the symmetric difference of v and o, in
// place.  It panics if the sizes differ.
func (v *BitVector) XorAssign(o *BitVector) *BitVector {
	v.sizeCheck(o)
	for i := range v.bits {
		v.bits[i] ^= o.bits[i]
	}
	return v
}

// AndNotAssign clears every bit of v that is set in o, in place.  It
// panics if the sizes differ.
func (v *BitVector) AndNotAssign(o *BitVector) *BitVector {
	v.sizeCheck(o)
	for i := range v.bits {
		v.bits[i] &^= o.bits[i]
	}
	return v
}

// And returns the intersection of v and o as a new vector.
func (v *BitVector) And(o *BitVector) *BitVector {
	return v.Copy().AndAssign(o)
}

// Or returns the union of v and o as a new vector.
func (v *BitVector) Or(o *BitVector) *BitVector {
	return v.Copy().OrAssign(o)
}

// Xor returns the symmetric difference of v and o as a new vector.
func (v *BitVector) Xor(o *BitVector) *BitVector {
	return v.Copy().XorAssign(o)
}

// AndNot returns the difference v minus o as a new vector.
func (v *BitVector) AndNot(o *BitVector) *BitVector {
	return v.Copy().AndNotAssign(o)
}

// Equal reports whether v and o have the same size and the same bits.
// Unused high bits of the final block never read as set, so they cannot
// cause a false mismatch.
func (v *BitVector) Equal(o *BitVector) bool {
	if v.numBits != o.numBits {
		return false
	}
	for i := range v.bits {
		if v.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// Less orders bit vectors by the numeric value of their contents,
// reading the block sequence as one little-endian unsigned integer
// (missing high blocks of the shorter operand count as zero).  Vectors
// with equal numeric value are ordered by size, shorter first.
func (v *BitVector) Less(o *BitVector) bool {
	n := len(v.bits)
	if len(o.bits) > n {
		n = len(o.bits)
	}
	for i := n - 1; i >= 0; i-- {
		var a, b uint64
		if i < len(v.bits) {
			a = v.bits[i]
		}
		if i < len(o.bits) {
			b = o.bits[i]
		}
		if a != b {
			return a < b
		}
	}
	return v.numBits < o.numBits
}
