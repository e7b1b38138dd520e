//go:build ignore

// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
)

// Code set ranges, inclusive.
var ranges = [3]struct {
	name   string
	lo, hi byte
}{
	{"restricted", 0x00, 0x5f}, // code set A
	{"extended", 0x20, 0x7f},   // code set B
	{"paired", 0x30, 0x39},     // code set C
}

// names of table entries by bit field
var names = [8]string{
	0: "__",
	1: "a_",
	2: "b_",
	3: "ab",
	7: "nu",
}

func main() {
	var tbl [128]byte
	for c := range tbl {
		for m, r := range ranges {
			if r.lo <= byte(c) && byte(c) <= r.hi {
				tbl[c] |= 1 << m
			}
		}
	}

	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

const (
	a_ = 1 << Restricted // code set A only
	b_ = 1 << Extended   // code set B only
	ab = a_ | b_         // code sets A and B
	nu = ab | 1<<Paired  // digit
)

// chartbl holds the bit field of modes accepting each ASCII byte.
var chartbl = [128]byte{
`)
	for i := 0; i < len(tbl); i += 16 {
		fmt.Fprint(w, "\t")
		for j := i; j < i+16; j++ {
			fmt.Fprintf(w, "%s, ", names[tbl[j]])
		}
		fmt.Fprintf(w, "// 0x%02x\n", i)
	}
	fmt.Fprintln(w, "}")
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
