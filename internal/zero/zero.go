// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package zero provides functions to zero slices of specific types.
package zero

func U64(b []uint64) {
	for i := 0; i < len(b); i++ {
		b[i] = 0
	}
}
