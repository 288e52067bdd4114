/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package yarl

import (
	"strconv"
	"strings"

	"github.com/badu/yarl/internal/host"
	"github.com/badu/yarl/internal/quoter"
	"github.com/badu/yarl/ports"
)

// populate fills every derived view from u's stored canonical fields. It
// runs at most once per URL instance, behind derivedCache.once (ยง5
// Memoization): concurrent callers either block until this returns or see
// the fully-populated result.
func (c *derivedCache) populate(u *URL) {
	c.path = quoter.UnquoteKeepPercent(u.rawPath, "")
	c.pathSafe = quoter.UnquoteKeepPercent(u.rawPath, "/%")
	c.pathQS = strings.ReplaceAll(c.path, "+", " ")

	c.parts = splitParts(c.path)
	c.name, c.suffix, c.suffixes = nameAndSuffixes(c.parts)

	if u.querySet {
		c.query, _ = quoter.Unquote(u.rawQuery, queryDisplayProfile, true)
	}

	if u.fragmentSet {
		c.fragment = quoter.UnquoteKeepPercent(u.rawFragment, "")
	}

	c.rawAuthority = u.buildAuthority(false)
	c.authority = u.buildAuthority(true)

	c.str = u.buildString()
}

// splitParts mirrors pathlib.PurePath.parts: an absolute path's first
// element is "/", followed by its non-empty segments in order.
func splitParts(path string) []string {
	if path == "" {
		return nil
	}
	abs := strings.HasPrefix(path, "/")
	segs := strings.Split(path, "/")
	parts := make([]string, 0, len(segs)+1)
	if abs {
		parts = append(parts, "/")
	}
	for _, s := range segs {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}

// nameAndSuffixes mirrors pathlib.PurePath.name/.suffix/.suffixes: name is
// the final path component, suffix its last dot-extension, suffixes every
// dot-extension in order. A name starting with '.' has no suffix (dotfiles
// are not extensions).
func nameAndSuffixes(parts []string) (name, suffix string, suffixes []string) {
	if len(parts) == 0 {
		return "", "", nil
	}
	last := parts[len(parts)-1]
	if last == "/" {
		return "", "", nil
	}
	name = last
	rest := name
	for {
		i := strings.LastIndexByte(rest, '.')
		if i <= 0 {
			break
		}
		suffixes = append([]string{rest[i:]}, suffixes...)
		rest = rest[:i]
	}
	if len(suffixes) > 0 {
		suffix = suffixes[len(suffixes)-1]
	}
	return name, suffix, suffixes
}

// buildAuthority recomposes "[user[:password]@]host[:port]" from u's stored
// fields, always showing an explicitly-set port (ยง4.8 authority/raw_authority
// report the parsed components verbatim; default-port elision applies only
// to the canonical String() form, per Invariant 5). With decoded set, the
// userinfo is percent-decoded and the host is rendered as Host() returns it.
func (u *URL) buildAuthority(decoded bool) string {
	if !u.hostSet {
		return ""
	}
	user, password, hostStr := u.rawUser, u.rawPassword, u.host.String()
	if decoded {
		user, _ = u.User()
		password, _ = u.Password()
		hostStr, _ = u.Host()
	}
	var b strings.Builder
	if u.userSet {
		b.WriteString(user)
		if u.passwordSet {
			b.WriteByte(':')
			b.WriteString(password)
		}
		b.WriteByte('@')
	}
	b.WriteString(hostStr)
	if u.portSet {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(u.port)))
	}
	return b.String()
}

// buildString recomposes the canonical encoded form per RFC 3986 ยง5.3, with
// default-port elision (Invariant 5).
func (u *URL) buildString() string {
	var b strings.Builder
	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}
	if u.hostSet {
		b.WriteString("//")
		if u.userSet {
			b.WriteString(u.rawUser)
			if u.passwordSet {
				b.WriteByte(':')
				b.WriteString(u.rawPassword)
			}
			b.WriteByte('@')
		}
		b.WriteString(u.host.String())
		if u.portSet && !u.IsDefaultPort() {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(int(u.port)))
		}
	}
	b.WriteString(u.rawPath)
	if u.querySet {
		b.WriteByte('?')
		b.WriteString(u.rawQuery)
	}
	if u.fragmentSet {
		b.WriteByte('#')
		b.WriteString(u.rawFragment)
	}
	return b.String()
}

// Scheme returns the lowercase scheme, or "" if none was given.
func (u *URL) Scheme() string { return u.scheme }

// User returns the decoded userinfo username and whether one was set.
func (u *URL) User() (string, bool) {
	if !u.userSet {
		return "", false
	}
	s, _ := quoter.Unquote(u.rawUser, userinfoProfile, false)
	return s, true
}

// RawUser returns the canonical encoded userinfo username.
func (u *URL) RawUser() (string, bool) { return u.rawUser, u.userSet }

// Password returns the decoded userinfo password and whether one was set
// (distinct from an empty password).
func (u *URL) Password() (string, bool) {
	if !u.passwordSet {
		return "", false
	}
	s, _ := quoter.Unquote(u.rawPassword, userinfoProfile, false)
	return s, true
}

// RawPassword returns the canonical encoded userinfo password.
func (u *URL) RawPassword() (string, bool) { return u.rawPassword, u.passwordSet }

// Host returns the decoded (Unicode, for IDNA names) host and whether one
// was set. An A-label that fails IDNA decoding is returned as stored.
func (u *URL) Host() (string, bool) {
	if !u.hostSet {
		return "", false
	}
	if u.host.Form == host.FormName {
		if uni, err := host.ToUnicode(u.host.Value); err == nil {
			return uni, true
		}
	}
	return u.host.String(), true
}

// RawHost returns the canonical ASCII host (A-label for names) and whether
// one was set.
func (u *URL) RawHost() (string, bool) {
	if !u.hostSet {
		return "", false
	}
	return u.host.Value, true
}

// Port returns the explicit port if one was set, else the scheme's
// registered default.
func (u *URL) Port() (int, bool) {
	if u.portSet {
		return int(u.port), true
	}
	return ports.Default(u.scheme)
}

// ExplicitPort returns the port exactly as parsed, with no scheme-default
// fallback.
func (u *URL) ExplicitPort() (int, bool) {
	if !u.portSet {
		return 0, false
	}
	return int(u.port), true
}

// Authority returns the decoded "[user[:pw]@]host[:port]" form.
func (u *URL) Authority() string { return u.cache().authority }

// RawAuthority returns the canonical encoded authority form.
func (u *URL) RawAuthority() string { return u.cache().rawAuthority }

// Path returns the fully percent-decoded path, including %2F.
func (u *URL) Path() string { return u.cache().path }

// RawPath returns the canonical encoded path.
func (u *URL) RawPath() string { return u.rawPath }

// PathSafe returns the path decoded except for %2F and %25, which remain
// escaped so a decoded '/' can never be confused with a structural one.
func (u *URL) PathSafe() string { return u.cache().pathSafe }

// PathQS returns Path's fully percent-decoded view with the query-string
// '+'-means-space convention additionally applied.
func (u *URL) PathQS() string { return u.cache().pathQS }

// RawPathQS returns the canonical encoded path with literal spaces shown
// as '+' instead of "%20", matching query-string convention.
func (u *URL) RawPathQS() string { return strings.ReplaceAll(u.rawPath, "%20", "+") }

// QueryString returns the decoded query string (not split into pairs).
func (u *URL) QueryString() string { return u.cache().query }

// RawQueryString returns the canonical encoded query string.
func (u *URL) RawQueryString() string { return u.rawQuery }

// Fragment returns the decoded fragment and whether one was set.
func (u *URL) Fragment() (string, bool) { return u.cache().fragment, u.fragmentSet }

// RawFragment returns the canonical encoded fragment and whether one was
// set.
func (u *URL) RawFragment() (string, bool) { return u.rawFragment, u.fragmentSet }

// Parts mirrors pathlib.PurePath.parts over the decoded path.
func (u *URL) Parts() []string { return append([]string(nil), u.cache().parts...) }

// Name mirrors pathlib.PurePath.name: the final path segment.
func (u *URL) Name() string { return u.cache().name }

// Suffix mirrors pathlib.PurePath.suffix: the final dot-extension, or "".
func (u *URL) Suffix() string { return u.cache().suffix }

// Suffixes mirrors pathlib.PurePath.suffixes: every dot-extension in
// order.
func (u *URL) Suffixes() []string { return append([]string(nil), u.cache().suffixes...) }

// Parent returns a new URL with the final path segment removed.
func (u *URL) Parent() *URL {
	parts := u.cache().parts
	if len(parts) == 0 {
		return u.clone()
	}
	drop := parts[:len(parts)-1]
	n := u.clone()
	n.rawPath = quoter.Quote(joinPartsToPath(drop), pathProfile)
	return n
}

func joinPartsToPath(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	if parts[0] == "/" {
		return "/" + strings.Join(parts[1:], "/")
	}
	return strings.Join(parts, "/")
}
