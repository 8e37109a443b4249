// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package snapfile

import (
	"encoding/binary"
	"fmt"
)

const (
	magicSnapHeader   = 0xB17F11E5
	fileFormatVersion = 1
	fileHeaderSize    = 64

	// flagZstd marks a zstd-compressed payload.
	flagZstd = 1 << 0

	knownFlags = flagZstd
)

type fileHeader struct {
	magic         uint32
	formatVersion uint32
	flags         uint32
	checksum      uint32
	payloadLen    uint64
	bitLen        uint64
}

func (h *fileHeader) MarshalBytes() [fileHeaderSize]byte {
	var buf [fileHeaderSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], h.magic)
	binary.LittleEndian.PutUint32(buf[4:8], h.formatVersion)
	binary.LittleEndian.PutUint32(buf[8:12], h.flags)
	binary.LittleEndian.PutUint32(buf[12:16], h.checksum)
	binary.LittleEndian.PutUint64(buf[16:24], h.payloadLen)
	binary.LittleEndian.PutUint64(buf[24:32], h.bitLen)
	return buf
}

func (h *fileHeader) UnmarshalBytes(headerBytes []byte) error {
	if len(headerBytes) < fileHeaderSize {
		return fmt.Errorf("headerBytes too short: %d < %d", len(headerBytes), fileHeaderSize)
	}

	headerBytes = headerBytes[:fileHeaderSize]

	h.magic = binary.LittleEndian.Uint32(headerBytes[0:4])
	if h.magic != magicSnapHeader {
		return fmt.Errorf("bad magic number on snapshot file (%x) -- not a bitvec snapshot or corrupted", h.magic)
	}

	h.formatVersion = binary.LittleEndian.Uint32(headerBytes[4:8])
	if h.formatVersion != fileFormatVersion {
		return fmt.Errorf("this version of the bitvec library can only read v%d snapshot files; found v%d", fileFormatVersion, h.formatVersion)
	}

	h.flags = binary.LittleEndian.Uint32(headerBytes[8:12])
	if h.flags&^uint32(knownFlags) != 0 {
		return fmt.Errorf("unknown snapshot flags set: %#x", h.flags)
	}

	h.checksum = binary.LittleEndian.Uint32(headerBytes[12:16])
	h.payloadLen = binary.LittleEndian.Uint64(headerBytes[16:24])
	h.bitLen = binary.LittleEndian.Uint64(headerBytes[24:32])

	return nil
}
