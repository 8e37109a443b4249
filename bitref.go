// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

// BitRef is a mutable proxy for a single bit: a handle on the block
// containing the bit plus its in-block mask.  It behaves like a boolean
// storage location without exposing the backing block.
//
// A BitRef is a transient view.  It must not be used after any
// operation that can reallocate the vector's storage (PushBack,
// AppendBlock, AppendBlocks, Resize, Reset), and it must not outlive
// the vector it came from.
type BitRef struct {
	block *uint64
	mask  uint64
}

// Ref returns a mutable proxy for bit i.  It panics if i >= Size().
func (v *BitVector) Ref(i uint64) BitRef {
	v.boundsCheck(i)
	return BitRef{
		block: &v.bits[blockIndex(i)],
		mask:  bitMask(i),
	}
}

// Value reads the referenced bit.
func (r BitRef) Value() bool {
	return *r.block&r.mask != 0
}

// Not reads the complement of the referenced bit.
func (r BitRef) Not() bool {
	return *r.block&r.mask == 0
}

// Assign sets the referenced bit to the given value.
func (r BitRef) Assign(bit bool) BitRef {
	if bit {
		*r.block |= r.mask
	} else {
		*r.block &= ^r.mask
	}
	return r
}

// CopyFrom assigns the value of the bit o refers to.  The binding is
// unchanged: r still refers to its own bit afterwards.
func (r BitRef) CopyFrom(o BitRef) BitRef {
	return r.Assign(o.Value())
}

// Flip toggles the referenced bit.
func (r BitRef) Flip() BitRef {
	*r.block ^= r.mask
	return r
}

// Or sets the referenced bit if bit is true.
func (r BitRef) Or(bit bool) BitRef {
	if bit {
		*r.block |= r.mask
	}
	return r
}

// And clears the referenced bit if bit is false.
func (r BitRef) And(bit bool) BitRef {
	if !bit {
		*r.block &= ^r.mask
	}
	return r
}

// Xor toggles the referenced bit if bit is true.
func (r BitRef) Xor(bit bool) BitRef {
	if bit {
		*r.block ^= r.mask
	}
	return r
}

// AndNot clears the referenced bit if bit is true.
func (r BitRef) AndNot(bit bool) BitRef {
	if bit {
		*r.block &= ^r.mask
	}
	return r
}
