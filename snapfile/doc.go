// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package snapfile persists bit vector snapshots to disk and restores
// them.
//
// A snapshot file looks like:
//
//	┌───────────────────┐
//	│ file header       │
//	├───────────────────┤
//	│ payload           │
//	│                   │
//	└───────────────────┘
//
// The file header is a fixed 64 bytes:
//
//	 0    1    2    3    4    5    6    7
//	+----+----+----+----+----+----+----+----+
//	| magic             | version           |
//	+----+----+----+----+----+----+----+----+
//	| flags             | payload checksum  |
//	+----+----+----+----+----+----+----+----+
//	| payload byte length                   |
//	+----+----+----+----+----+----+----+----+
//	| bit length                            |
//	+----+----+----+----+----+----+----+----+
//	| reserved (zero) ...                   |
//
// The payload is the vector's binary encoding (see bitvec), stored raw
// or zstd-compressed depending on the flags.  The checksum is
// calculated from the stored payload bytes, so corruption is detected
// (with high probability) before any decompression or decoding runs.
//
// Writes go to a temp file in the destination directory followed by an
// atomic rename, so a crash mid-write never leaves a partial snapshot
// at the destination path.  Reads go through mmap.
package snapfile
