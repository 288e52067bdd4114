/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package quoter implements the percent-encoding Quoter and Unquoter that
// back every encoded component of a yarl.URL.
package quoter

import "github.com/bits-and-blooms/bitset"

const asciiLen = 128

// ASCIITable is a 128-bit classification table over the ASCII range,
// backed by a bitset instead of a [128]bool. A Profile keeps its base,
// safe and protected tables separate and tests a byte against each in
// turn; the tables are never merged.
type ASCIITable struct {
	bits *bitset.BitSet
}

func newASCIITable() ASCIITable {
	return ASCIITable{bits: bitset.New(asciiLen)}
}

func (t ASCIITable) has(c byte) bool {
	if c >= asciiLen {
		return false
	}
	return t.bits.Test(uint(c))
}

func (t ASCIITable) with(s string) (ASCIITable, error) {
	clone := ASCIITable{bits: t.bits.Clone()}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= asciiLen {
			return ASCIITable{}, errNonASCII(s[i : i+1])
		}
		clone.bits.Set(uint(c))
	}
	return clone, nil
}

func buildTable(chars string) ASCIITable {
	t := newASCIITable()
	for i := 0; i < len(chars); i++ {
		t.bits.Set(uint(chars[i]))
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t.bits.Set(uint(c))
	}
	for c := byte('a'); c <= 'z'; c++ {
		t.bits.Set(uint(c))
	}
	for c := byte('0'); c <= '9'; c++ {
		t.bits.Set(uint(c))
	}
	return t
}

var (
	// unreservedSubDelimsNoQS is UNRESERVED_PLUS_SUB_DELIMS_NO_QS: letters,
	// digits, -._~ and !$'()*,
	unreservedSubDelimsNoQS = buildTable("-._~!$'()*,")

	// unreservedPlusQS additionally allows +?=;&, for non-query-string
	// encoding contexts that still need to tolerate those characters.
	unreservedPlusQS = buildTable("-._~!$'()*,+?=;&")
)
