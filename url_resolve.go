/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package yarl

import "github.com/badu/yarl/internal/pathutil"

// Join resolves ref against u as the base, implementing RFC 3986 ยง5.2/5.3
// reference resolution in full (ยง4.6 "Reference resolution"), grounded on
// ResolveReference in
// _examples/wenfang-golang1.6-src/src/net/url/url.go. Empty path segments
// in either side are preserved, never silently dropped.
func (u *URL) Join(ref *URL) *URL {
	target := newURL()

	if ref.scheme != "" {
		*target = *ref
		target.derived = &derivedCache{}
		target.rawPath = pathutil.RemoveDotSegments(ref.rawPath)
		return target
	}
	target.scheme = u.scheme

	if ref.hostSet {
		target.hostSet = true
		target.host = ref.host
		target.userSet, target.rawUser = ref.userSet, ref.rawUser
		target.passwordSet, target.rawPassword = ref.passwordSet, ref.rawPassword
		target.portSet, target.explicitPort, target.port = ref.portSet, ref.explicitPort, ref.port
		target.rawPath = pathutil.RemoveDotSegments(ref.rawPath)
		target.querySet, target.rawQuery = ref.querySet, ref.rawQuery
		target.fragmentSet, target.rawFragment = ref.fragmentSet, ref.rawFragment
		return target
	}

	target.hostSet = u.hostSet
	target.host = u.host
	target.userSet, target.rawUser = u.userSet, u.rawUser
	target.passwordSet, target.rawPassword = u.passwordSet, u.rawPassword
	target.portSet, target.explicitPort, target.port = u.portSet, u.explicitPort, u.port

	switch {
	case ref.rawPath == "":
		target.rawPath = u.rawPath
		if ref.querySet {
			target.querySet, target.rawQuery = true, ref.rawQuery
		} else {
			target.querySet, target.rawQuery = u.querySet, u.rawQuery
		}
	default:
		target.rawPath = pathutil.Resolve(u.rawPath, ref.rawPath)
		target.querySet, target.rawQuery = ref.querySet, ref.rawQuery
	}

	target.fragmentSet, target.rawFragment = ref.fragmentSet, ref.rawFragment
	return target
}

// JoinString parses ref and resolves it against u, for the common case of
// resolving a reference given as a string.
func (u *URL) JoinString(ref string) (*URL, error) {
	r, err := Parse(ref)
	if err != nil {
		return nil, err
	}
	return u.Join(r), nil
}
