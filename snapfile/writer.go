// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package snapfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgryski/go-farm"
	"github.com/klauspost/compress/zstd"

	"github.com/momoadc/bitvec"
)

const defaultBufferSize = 4 * 1024 * 1024

type config struct {
	compress bool
	level    zstd.EncoderLevel
}

// Option configures how a snapshot is written.
type Option func(*config)

// WithZstd compresses the snapshot payload with zstd at the default
// level.
func WithZstd() Option {
	return func(c *config) {
		c.compress = true
		c.level = zstd.SpeedDefault
	}
}

// WithZstdLevel compresses the snapshot payload with zstd at the given
// level.
func WithZstdLevel(level zstd.EncoderLevel) Option {
	return func(c *config) {
		c.compress = true
		c.level = level
	}
}

// Write persists v to path.  The snapshot is written to a temp file in
// the destination directory and atomically renamed into place, so an
// existing snapshot at path is either fully replaced or untouched.
func Write(path string, v *bitvec.BitVector, opts ...Option) error {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	payload, err := v.MarshalBinary()
	if err != nil {
		return fmt.Errorf("bitvec.MarshalBinary: %w", err)
	}

	var flags uint32
	if cfg.compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(cfg.level))
		if err != nil {
			return fmt.Errorf("zstd.NewWriter: %w", err)
		}
		payload = enc.EncodeAll(payload, nil)
		_ = enc.Close()
		flags |= flagZstd
	}

	h := fileHeader{
		magic:         magicSnapHeader,
		formatVersion: fileFormatVersion,
		flags:         flags,
		checksum:      uint32(farm.Hash64(payload)),
		payloadLen:    uint64(len(payload)),
		bitLen:        v.Size(),
	}

	// write to a new file and atomically rename when done
	path, err = filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("filepath.Abs: %w", err)
	}
	f, err := os.CreateTemp(filepath.Dir(path), "bitvec.*.snap")
	if err != nil {
		return fmt.Errorf("os.CreateTemp (may need permissions for dir containing path): %w", err)
	}
	defer func() {
		if f != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	w := bufio.NewWriterSize(f, defaultBufferSize)
	headerBuf := h.MarshalBytes()
	if _, err := w.Write(headerBuf[:]); err != nil {
		return fmt.Errorf("bufio.Write: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("bufio.Write: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("bufio.Flush: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("f.Sync: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("f.Close: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}
	f = nil
	return nil
}
