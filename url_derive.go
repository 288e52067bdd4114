/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package yarl

import (
	"strconv"
	"strings"

	"github.com/badu/yarl/internal/host"
	"github.com/badu/yarl/internal/pathutil"
	"github.com/badu/yarl/internal/quoter"
	"github.com/badu/yarl/ports"
	"github.com/badu/yarl/query"
)

// WithScheme returns a new URL with its scheme replaced, lowercased. A
// scheme change is rejected on a relative (host-less) URL unless the new
// scheme is one of the hostless schemes (ยง9 Open Question 2).
func (u *URL) WithScheme(s string) (*URL, error) {
	lower := strings.ToLower(s)
	if !isValidScheme(lower) {
		return nil, newError("WithScheme", s, InvalidArgument,
			errAmbiguous("invalid scheme syntax"))
	}
	if !u.hostSet && ports.RequiresHost(lower) {
		return nil, newError("WithScheme", s, InvalidArgument,
			errAmbiguous("scheme change not permitted on a relative URL"))
	}
	n := u.clone()
	n.scheme = lower
	return n, nil
}

// WithUser returns a new URL with its userinfo username replaced; a nil
// user clears both username and password.
func (u *URL) WithUser(user *string) *URL {
	n := u.clone()
	if user == nil {
		n.userSet, n.rawUser = false, ""
		n.passwordSet, n.rawPassword = false, ""
		return n
	}
	n.userSet = true
	n.rawUser = quoter.Quote(*user, userinfoProfile)
	return n
}

// WithPassword returns a new URL with its userinfo password replaced; nil
// clears it.
func (u *URL) WithPassword(password *string) *URL {
	n := u.clone()
	if password == nil {
		n.passwordSet, n.rawPassword = false, ""
		return n
	}
	n.passwordSet = true
	n.rawPassword = quoter.Quote(*password, userinfoProfile)
	return n
}

// WithHost returns a new URL with its host replaced; nil clears the whole
// authority (host, port, userinfo). Adding a host to a relative URL is
// rejected (ยง4.8 with_host).
func (u *URL) WithHost(h *string) (*URL, error) {
	if h == nil {
		n := u.clone()
		n.hostSet = false
		n.host = host.Host{}
		n.portSet, n.explicitPort = false, false
		n.userSet, n.rawUser = false, ""
		n.passwordSet, n.rawPassword = false, ""
		return n, nil
	}
	if !u.hostSet {
		return nil, newError("WithHost", *h, InvalidArgument,
			errAmbiguous("cannot add a host to a relative URL"))
	}
	parsed, err := host.Parse(*h)
	if err != nil {
		return nil, err
	}
	n := u.clone()
	n.host = parsed
	return n, nil
}

// WithPort returns a new URL with its port replaced; nil clears it back to
// the scheme default.
func (u *URL) WithPort(port *int) (*URL, error) {
	n := u.clone()
	if port == nil {
		n.portSet, n.explicitPort = false, false
		return n, nil
	}
	if *port < 0 || *port > 65535 {
		return nil, newError("WithPort", strconv.Itoa(*port), InvalidArgument,
			errAmbiguous("port out of range"))
	}
	n.portSet, n.explicitPort = true, true
	n.port = uint16(*port)
	return n, nil
}

// WithPath returns a new URL with its path replaced; query and fragment are
// kept (ยง4.8).
func (u *URL) WithPath(path string) *URL {
	n := u.clone()
	n.rawPath = quoter.Quote(pathutil.RemoveDotSegments(path), pathProfile)
	return n
}

// WithQuery returns a new URL with its query multi-map replaced entirely;
// nil clears it.
func (u *URL) WithQuery(q *query.Values) *URL {
	n := u.clone()
	if q == nil {
		n.querySet, n.rawQuery = false, ""
		return n
	}
	n.querySet = true
	n.rawQuery = q.Encode()
	return n
}

// WithFragment returns a new URL with its fragment replaced; nil clears it.
func (u *URL) WithFragment(frag *string) *URL {
	n := u.clone()
	if frag == nil {
		n.fragmentSet, n.rawFragment = false, ""
		return n
	}
	n.fragmentSet = true
	n.rawFragment = quoter.Quote(*frag, fragmentProfile)
	return n
}

// WithName returns a new URL with its final path segment replaced,
// clearing query and fragment (ยง4.8).
func (u *URL) WithName(name string) *URL {
	parts := u.cache().parts
	drop := parts
	if len(parts) > 0 {
		drop = parts[:len(parts)-1]
	}
	n := u.clone()
	n.rawPath = joinPartsToPath(append(append([]string{}, drop...), name))
	n.rawPath = quoter.Quote(n.rawPath, pathProfile)
	n.querySet, n.rawQuery = false, ""
	n.fragmentSet, n.rawFragment = false, ""
	return n
}

// WithSuffix returns a new URL with its name's final dot-extension
// replaced (suffix must start with '.', or be "" to remove the suffix),
// clearing query and fragment (ยง4.8).
func (u *URL) WithSuffix(suffix string) *URL {
	name := u.cache().name
	base := name
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		base = name[:i]
	}
	return u.WithName(base + suffix)
}

// AppendPath joins a single already-decoded segment onto u's path (the `/`
// operator, ยง4.8).
func (u *URL) AppendPath(segment string) *URL {
	return u.JoinPath(segment)
}

// JoinPath appends one or more segments to u's path, percent-encoding each,
// dropping query and fragment (ยง4.6 Joining).
func (u *URL) JoinPath(segs ...string) *URL {
	encoded := make([]string, len(segs))
	for i, s := range segs {
		encoded[i] = quoter.Quote(s, pathProfile)
	}
	n := u.clone()
	n.rawPath = pathutil.JoinSegments(u.rawPath, encoded)
	n.querySet, n.rawQuery = false, ""
	n.fragmentSet, n.rawFragment = false, ""
	return n
}

// Origin returns a new URL carrying only scheme, host and a non-default
// port (ยง4.8).
func (u *URL) Origin() *URL {
	n := newURL()
	n.scheme = u.scheme
	n.hostSet = u.hostSet
	n.host = u.host
	if u.portSet && !u.IsDefaultPort() {
		n.portSet, n.explicitPort, n.port = true, true, u.port
	}
	return n
}

// Relative returns a new URL carrying only path, query and fragment
// (ยง4.8).
func (u *URL) Relative() *URL {
	n := newURL()
	n.rawPath = u.rawPath
	n.querySet, n.rawQuery = u.querySet, u.rawQuery
	n.fragmentSet, n.rawFragment = u.fragmentSet, u.rawFragment
	return n
}

// UpdateQuery applies q's dict-update semantics onto u's query (ยง4.7
// update_query); the `%` operator is an alias for this.
func (u *URL) UpdateQuery(q query.Values) *URL {
	return u.WithQuery(values(u.Query().Update(q)))
}

// Mod is the `%` operator: an alias for UpdateQuery.
func (u *URL) Mod(q query.Values) *URL { return u.UpdateQuery(q) }

// ExtendQuery appends q's entries without removing existing duplicates
// (ยง4.7 extend_query).
func (u *URL) ExtendQuery(q query.Values) *URL {
	return u.WithQuery(values(u.Query().Extend(q)))
}

// WithoutQueryParams removes every entry whose key is in keys (ยง4.7
// without_query_params).
func (u *URL) WithoutQueryParams(keys ...string) *URL {
	return u.WithQuery(values(u.Query().Without(keys...)))
}

func values(v query.Values) *query.Values { return &v }

// isValidScheme reports whether s matches RFC 3986 ยง3.1's scheme grammar:
// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isValidScheme(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
