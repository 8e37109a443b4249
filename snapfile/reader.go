// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package snapfile

import (
	"fmt"
	"os"

	"github.com/dgryski/go-farm"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sys/unix"

	"github.com/momoadc/bitvec"
)

// Read restores a bit vector from the snapshot at path.  Corrupt,
// truncated, or otherwise malformed snapshots produce an error and no
// vector.
func Read(path string) (*bitvec.BitVector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s): %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("f.Stat: %w", err)
	}
	if st.Size() < fileHeaderSize {
		return nil, fmt.Errorf("snapshot file too short: %d < %d", st.Size(), fileHeaderSize)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("unix.Mmap(%s): %w", path, err)
	}
	defer func() {
		_ = unix.Munmap(data)
	}()
	if err := unix.Madvise(data, unix.MADV_SEQUENTIAL); err != nil {
		return nil, fmt.Errorf("unix.Madvise: %w", err)
	}

	var h fileHeader
	if err := h.UnmarshalBytes(data); err != nil {
		return nil, fmt.Errorf("fileHeader.UnmarshalBytes: %w", err)
	}

	payload := data[fileHeaderSize:]
	if uint64(len(payload)) != h.payloadLen {
		return nil, fmt.Errorf("snapshot payload is %d bytes, header declares %d", len(payload), h.payloadLen)
	}
	if checksum := uint32(farm.Hash64(payload)); checksum != h.checksum {
		return nil, fmt.Errorf("checksum failed (%d != %d): snapshot file corrupted", h.checksum, checksum)
	}

	if h.flags&flagZstd != 0 {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd.NewReader: %w", err)
		}
		payload, err = dec.DecodeAll(payload, nil)
		dec.Close()
		if err != nil {
			return nil, fmt.Errorf("zstd.DecodeAll: %w", err)
		}
	}

	v := new(bitvec.BitVector)
	if err := v.UnmarshalBinary(payload); err != nil {
		return nil, fmt.Errorf("bitvec.UnmarshalBinary: %w", err)
	}
	if v.Size() != h.bitLen {
		return nil, fmt.Errorf("snapshot holds %d bits, header declares %d", v.Size(), h.bitLen)
	}
	return v, nil
}
