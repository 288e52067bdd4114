/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package yarl

import "hash/maphash"

var hashSeed = maphash.MakeSeed()

// Hash returns a process-local hash of u's canonical string form, for use
// as a map key or in hash-based sets. It is not stable across process
// restarts (maphash.MakeSeed is randomized per process), matching the
// stdlib's own hash/maphash contract; no pack library offers a portable
// string hash, so this is the one place yarl reaches for the standard
// library over a third-party dependency.
func (u *URL) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	_, _ = h.WriteString(u.String())
	return h.Sum64()
}
