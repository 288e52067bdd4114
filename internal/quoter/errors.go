/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package quoter

import "github.com/badu/yarl/internal/kind"

func errNonASCII(c string) error {
	return kind.New("quoter.Profile", c, kind.InvalidArgument, errNonASCIIChar(c))
}

type errNonASCIIChar string

func (e errNonASCIIChar) Error() string {
	return "non-ASCII character " + string(e) + " in safe/protected set"
}

// MalformedPercentError reports a %-escape with no valid hex tail, surfaced
// only when the caller asked for strict unquoting.
type MalformedPercentError string

func (e MalformedPercentError) Error() string {
	return "invalid URL escape " + string(e)
}
