// Copyright 2024 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// bvstat prints summary statistics for a bit vector snapshot file.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/momoadc/bitvec"
	"github.com/momoadc/bitvec/snapfile"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: bvstat <snapshot-file>")
	}
	path := flag.Arg(0)

	v, err := snapfile.Read(path)
	if err != nil {
		log.Fatalf("snapfile.Read(%s): %s", path, err)
	}

	fmt.Printf("bits:    %d\n", v.Size())
	fmt.Printf("blocks:  %d\n", v.Blocks())
	fmt.Printf("set:     %d\n", v.Count())
	if first := v.FindFirst(); first != bitvec.Npos {
		fmt.Printf("first:   %d\n", first)
	} else {
		fmt.Printf("first:   none\n")
	}
}
