// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitvec implements a dynamically-sized, block-packed bit
// vector: a compact container of individually addressable bits with
// word-at-a-time bulk operations, set-bit iteration, and a portable
// binary encoding.
//
// Bits are stored least-significant first in 64-bit blocks.  The
// logical length is tracked separately from the block storage, and the
// unused high bits of the final block always read as zero.
//
// A BitVector is a plain value type with no internal locking: callers
// that share one across goroutines must provide their own
// synchronization.
package bitvec

import (
	"fmt"

	"github.com/momoadc/bitvec/internal/zero"
)

const (
	// BitsPerBlock is the width of a storage block.  It is fixed at
	// 64 bits and is part of the binary encoding contract.
	BitsPerBlock = 64

	// Npos is returned by FindFirst and FindNext when no set bit
	// exists at or after the requested position.
	Npos = ^uint64(0)
)

// BitVector is a sequence of bits packed into 64-bit blocks.  The zero
// value is an empty vector ready for use.
type BitVector struct {
	bits    []uint64
	numBits uint64
}

func blockIndex(i uint64) uint64 { return i / BitsPerBlock }
func bitIndex(i uint64) uint64   { return i % BitsPerBlock }
func bitMask(i uint64) uint64    { return 1 << bitIndex(i) }

// BitsToBlocks returns the number of 64-bit blocks needed to hold n bits.
func BitsToBlocks(n uint64) uint64 {
	return n/BitsPerBlock + boolToUint64(n%BitsPerBlock != 0)
}

func boolToUint64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// extraBits is the number of unused high bits in the final block.
func (v *BitVector) extraBits() uint64 {
	return (BitsPerBlock - v.numBits%BitsPerBlock) % BitsPerBlock
}

// zeroUnusedBits clears the unused high bits of the final block.  Every
// mutation that can write at or beyond position Size() finishes with
// this; the rest of the package relies on those bits reading as zero.
func (v *BitVector) zeroUnusedBits() {
	if extra := v.extraBits(); extra != 0 {
		v.bits[len(v.bits)-1] &= ^uint64(0) >> extra
	}
}

func (v *BitVector) boundsCheck(i uint64) {
	if i >= v.numBits {
		panic(fmt.Sprintf("bitvec: index %d out of range [0, %d)", i, v.numBits))
	}
}

func (v *BitVector) sizeCheck(o *BitVector) {
	if v.numBits != o.numBits {
		panic(fmt.Sprintf("bitvec: size mismatch: %d != %d", v.numBits, o.numBits))
	}
}

// New returns an empty bit vector.
func New() *BitVector {
	return &BitVector{}
}

// NewSize returns a bit vector of n bits, each initialized to value.
func NewSize(n uint64, value bool) *BitVector {
	v := &BitVector{
		bits:    make([]uint64, BitsToBlocks(n)),
		numBits: n,
	}
	if value {
		for i := range v.bits {
			v.bits[i] = ^uint64(0)
		}
		v.zeroUnusedBits()
	}
	return v
}

// NewFromBlocks returns a bit vector adopting a copy of the given
// blocks; the resulting size is 64 bits per block.
func NewFromBlocks(blocks []uint64) *BitVector {
	v := &BitVector{
		bits:    make([]uint64, len(blocks)),
		numBits: BitsPerBlock * uint64(len(blocks)),
	}
	copy(v.bits, blocks)
	return v
}

// Copy returns an independent deep copy of v.
func (v *BitVector) Copy() *BitVector {
	w := &BitVector{
		bits:    make([]uint64, len(v.bits)),
		numBits: v.numBits,
	}
	copy(w.bits, v.bits)
	return w
}

// Size returns the number of bits in the vector.
func (v *BitVector) Size() uint64 {
	return v.numBits
}

// Blocks returns the number of 64-bit blocks backing the vector.
func (v *BitVector) Blocks() uint64 {
	return uint64(len(v.bits))
}

// Empty reports whether the vector has zero length.
func (v *BitVector) Empty() bool {
	return v.numBits == 0
}

// IsSet reports whether bit i is 1.  It panics if i >= Size().
func (v *BitVector) IsSet(i uint64) bool {
	v.boundsCheck(i)
	return v.bits[blockIndex(i)]&bitMask(i) != 0
}

// Set sets bit i to 1 and returns v for chaining.
func (v *BitVector) Set(i uint64) *BitVector {
	return v.SetTo(i, true)
}

// SetTo sets bit i to the given value and returns v for chaining.
func (v *BitVector) SetTo(i uint64, bit bool) *BitVector {
	v.boundsCheck(i)
	if bit {
		v.bits[blockIndex(i)] |= bitMask(i)
	} else {
		v.bits[blockIndex(i)] &= ^bitMask(i)
	}
	return v
}

// Clear sets bit i to 0 and returns v for chaining.
func (v *BitVector) Clear(i uint64) *BitVector {
	return v.SetTo(i, false)
}

// Flip toggles bit i and returns v for chaining.
func (v *BitVector) Flip(i uint64) *BitVector {
	v.boundsCheck(i)
	v.bits[blockIndex(i)] ^= bitMask(i)
	return v
}

// SetAll sets every bit to 1.
func (v *BitVector) SetAll() *BitVector {
	for i := range v.bits {
		v.bits[i] = ^uint64(0)
	}
	v.zeroUnusedBits()
	return v
}

// ClearAll sets every bit to 0.
func (v *BitVector) ClearAll() *BitVector {
	zero.U64(v.bits)
	return v
}

// AppendBlock appends the 64 bits of b, so bit j of b lands at position
// Size()+j.
func (v *BitVector) AppendBlock(b uint64) {
	v.AppendBlocks([]uint64{b})
}

// AppendBlocks appends the bits of each block in order: bit j of
// blocks[k] lands at position Size() + 64*k + j.  If the vector ends
// mid-block the incoming blocks are split across block boundaries to
// preserve that ordering.  Appending an empty slice is a no-op.
func (v *BitVector) AppendBlocks(blocks []uint64) {
	if len(blocks) == 0 {
		return
	}
	if off := bitIndex(v.numBits); off == 0 {
		v.bits = append(v.bits, blocks...)
	} else {
		// carry loop: the low 64-off bits of each incoming block
		// complete the current last block, the rest spill into a
		// fresh one
		for _, b := range blocks {
			v.bits[len(v.bits)-1] |= b << off
			v.bits = append(v.bits, b>>(BitsPerBlock-off))
		}
	}
	v.numBits += BitsPerBlock * uint64(len(blocks))
	v.zeroUnusedBits()
}

// PushBack appends a single bit.  Block storage grows amortized, one
// block per 64 appends.
func (v *BitVector) PushBack(bit bool) {
	if bitIndex(v.numBits) == 0 {
		v.bits = append(v.bits, 0)
	}
	v.numBits++
	if bit {
		v.bits[len(v.bits)-1] |= bitMask(v.numBits - 1)
	}
}

// Reset drops all bits, returning the vector to the empty state.
func (v *BitVector) Reset() {
	v.bits = nil
	v.numBits = 0
}

// Resize grows or shrinks the vector to exactly n bits.  Growing
// preserves existing bits and fills new positions with value; shrinking
// keeps the first n bits.
func (v *BitVector) Resize(n uint64, value bool) {
	switch {
	case n == v.numBits:
		return
	case n < v.numBits:
		v.bits = v.bits[:BitsToBlocks(n)]
		v.numBits = n
		v.zeroUnusedBits()
	default:
		if value {
			// the old final block's unused bits become live
			if bitIndex(v.numBits) != 0 {
				v.bits[len(v.bits)-1] |= ^uint64(0) << bitIndex(v.numBits)
			}
			for uint64(len(v.bits)) < BitsToBlocks(n) {
				v.bits = append(v.bits, ^uint64(0))
			}
		} else {
			for uint64(len(v.bits)) < BitsToBlocks(n) {
				v.bits = append(v.bits, 0)
			}
		}
		v.numBits = n
		v.zeroUnusedBits()
	}
}
