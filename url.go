/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package yarl provides an immutable URL value type and the string-level
// codecs (percent-encoding Quoter/Unquoter, IDNA host codec) that back it,
// per RFC 3986/3987/5891 with pragmatic browser-compatible deviations.
//
// A URL stores only canonical, encoded component strings; every derivation
// ("With" method, Join, JoinPath, ...) returns a new, independent URL.
// Decoded views (Path, Query, Parts, ...) are computed lazily and memoized.
package yarl

import (
	"strings"
	"sync"

	"github.com/badu/yarl/internal/host"
	"github.com/badu/yarl/ports"
	"github.com/badu/yarl/query"
)

// URL is an immutable parsed URL (technically, a URI reference). All
// fields except the query string are stored in their encoded canonical
// form (ยง3); the query string is stored exactly as Parse or
// Builder.QueryString received it, without re-quoting. Decoded views live
// in the lazily-populated derived cache.
type URL struct {
	scheme string

	userSet     bool
	rawUser     string
	passwordSet bool
	rawPassword string

	hostSet bool
	host    host.Host

	portSet      bool
	port         uint16
	explicitPort bool

	rawPath string

	querySet bool
	rawQuery string

	fragmentSet bool
	rawFragment string

	derived *derivedCache
}

// derivedCache memoizes decoded views. All fields are computed together
// behind a single sync.Once so concurrent readers either see the
// uncomputed state (and block on Do) or the fully-populated result, never
// a partially-initialized one (ยง5 Memoization).
type derivedCache struct {
	once sync.Once

	path     string
	pathSafe string
	pathQS   string
	parts    []string
	name     string
	suffix   string
	suffixes []string

	query string

	fragment string

	authority    string
	rawAuthority string

	str string
}

func (u *URL) cache() *derivedCache {
	if u.derived == nil {
		// Only reachable on a URL built without newURL (zero value); a
		// fresh, unpopulated cache is returned on every call, and its empty
		// views are exactly the empty URL's.
		return &derivedCache{}
	}
	u.derived.once.Do(func() { u.derived.populate(u) })
	return u.derived
}

// newURL allocates a URL with a fresh, unshared derived cache: every
// derivation must get its own, since its contents depend on the new
// field values.
func newURL() *URL {
	return &URL{derived: &derivedCache{}}
}

// clone copies every stored field but always allocates a fresh derived
// cache, since derived views depend on the (possibly changed) fields.
func (u *URL) clone() *URL {
	n := *u
	n.derived = &derivedCache{}
	return &n
}

// IsZero reports whether u is the empty, relative, path-less URL
// (spec.md ยง8: URL("") is falsy, bool(URL(x)) is true otherwise).
func (u *URL) IsZero() bool {
	return u == nil || u.String() == ""
}

// String reassembles u into its canonical encoded form.
func (u *URL) String() string {
	return u.cache().str
}

// IsAbsolute reports whether u has a non-empty scheme or an authority that
// starts with "//" (ยง4.8 absolute).
func (u *URL) IsAbsolute() bool {
	return u.scheme != "" || u.hostSet
}

// IsDefaultPort reports whether u's port matches its scheme's registered
// default.
func (u *URL) IsDefaultPort() bool {
	if !u.portSet {
		return false
	}
	def, ok := ports.Default(u.scheme)
	return ok && def == int(u.port)
}

// Equal compares two URLs by their canonical encoded form (ยง3 Invariant 7).
func (u *URL) Equal(o *URL) bool {
	if u == nil || o == nil {
		return u == o
	}
	return u.String() == o.String()
}

// Compare orders two URLs lexicographically by canonical string form, for
// sorting (supplementing spec.md ยง6's "ordering" surface).
func Compare(a, b *URL) int {
	return strings.Compare(a.String(), b.String())
}

// Bytes returns the ASCII bytes of u's canonical string form (ยง4.8
// bytes(url)). The bytes are taken as-is, with no re-encoding: a query
// string stored with non-ASCII characters keeps them.
func (u *URL) Bytes() []byte {
	return []byte(u.String())
}

// Query parses RawQueryString and returns the corresponding multi-map.
// Malformed escapes are kept as literal text, so query.Parse's error,
// which is ignored here, is always nil (ยง4.7).
func (u *URL) Query() query.Values {
	v, _ := query.Parse(u.rawQuery)
	return v
}
