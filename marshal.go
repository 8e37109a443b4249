// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// The binary encoding is little-endian and fixed-width:
//
//	 0    1    2    3    4    5    6    7
//	+----+----+----+----+----+----+----+----+
//	| magic             | version           |
//	+----+----+----+----+----+----+----+----+
//	| bit length                            |
//	+----+----+----+----+----+----+----+----+
//	| ceil(length/64) 64-bit blocks ...     |
//	+----+----+----+----+----+----+----+----+
//
// The block count is derived from the length, never stored.  Blocks
// are always 64 bits wide regardless of the native word size, so the
// encoding round-trips across platforms.
const (
	magicHeader   = 0xB17B10C5
	formatVersion = 1
	headerSize    = 4 + 4 + 8
)

var (
	ErrBadMagic     = errors.New("bad magic number -- not a bitvec stream or corrupted")
	ErrBadVersion   = errors.New("unsupported bitvec format version")
	ErrTruncated    = errors.New("truncated bitvec stream")
	ErrTrailingData = errors.New("trailing bytes after bitvec block payload")
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (v *BitVector) MarshalBinary() ([]byte, error) {
	buf := make([]byte, headerSize+8*len(v.bits))
	binary.LittleEndian.PutUint32(buf[0:4], magicHeader)
	binary.LittleEndian.PutUint32(buf[4:8], formatVersion)
	binary.LittleEndian.PutUint64(buf[8:16], v.numBits)
	for i, b := range v.bits {
		binary.LittleEndian.PutUint64(buf[headerSize+8*i:], b)
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.  The declared
// bit length must match the supplied block payload exactly: a stream
// whose length cannot be satisfied by its blocks is rejected.  On error
// the receiver is left unchanged; on success the unused high bits of
// the final block are cleared, whatever the stream contained.
func (v *BitVector) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("%w: %d byte header, need %d", ErrTruncated, len(data), headerSize)
	}
	if m := binary.LittleEndian.Uint32(data[0:4]); m != magicHeader {
		return fmt.Errorf("%w: %#x", ErrBadMagic, m)
	}
	if ver := binary.LittleEndian.Uint32(data[4:8]); ver != formatVersion {
		return fmt.Errorf("%w: v%d (can read v%d)", ErrBadVersion, ver, formatVersion)
	}
	numBits := binary.LittleEndian.Uint64(data[8:16])
	nblocks := BitsToBlocks(numBits)
	payload := data[headerSize:]
	// compare via division so a hostile length cannot overflow
	switch got := uint64(len(payload)); {
	case got/8 < nblocks:
		return fmt.Errorf("%w: %d blocks declared, %d bytes of payload", ErrTruncated, nblocks, got)
	case got/8 > nblocks || got%8 != 0:
		return fmt.Errorf("%w: %d blocks declared, %d bytes of payload", ErrTrailingData, nblocks, got)
	}
	blocks := make([]uint64, nblocks)
	for i := range blocks {
		blocks[i] = binary.LittleEndian.Uint64(payload[8*i:])
	}
	v.bits = blocks
	v.numBits = numBits
	v.zeroUnusedBits()
	return nil
}
