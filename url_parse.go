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
)

// Parse splits raw into a URL per RFC 3986 ยง3, grounded on parse/getscheme/
// parseAuthority/parseHost in
// _examples/wenfang-golang1.6-src/src/net/url/url.go. Every component
// except the query string is stored in its canonical encoded form, with a
// malformed percent-escape repaired in place (ยง4.3), never rejected. The
// query string is stored exactly as given, without re-quoting.
func Parse(raw string) (*URL, error) {
	if raw == "" {
		return newURL(), nil
	}

	u := newURL()

	body, frag, hasFrag := cut(raw, "#")
	if hasFrag {
		canon, err := canonicalize(frag, fragmentProfile, false)
		if err != nil {
			return nil, newError("Parse", raw, InvalidArgument, err)
		}
		u.fragmentSet = true
		u.rawFragment = canon
	}

	scheme, rest, err := splitScheme(body)
	if err != nil {
		return nil, err
	}
	u.scheme = strings.ToLower(scheme)

	rest, query, hasQuery := cut(rest, "?")
	if hasQuery {
		u.querySet = true
		u.rawQuery = query
	}

	if strings.HasPrefix(rest, "//") {
		authority, path := splitAuthority(rest[2:])
		if err := u.parseAuthority(authority); err != nil {
			return nil, err
		}
		rest = path
	}

	path := rest
	if u.scheme != "" || u.hostSet {
		// Only an absolute URI's own path is normalized eagerly: RFC 3986
		// ยง5.3 applies remove_dot_segments to a reference's path as-is when
		// it carries a scheme or authority. A bare relative-path reference
		// (neither) is left with its dot segments intact, since Join must
		// merge it against a base path before removal (ยง5.2.3); stripping
		// them here would silently absorb a leading ".." that only makes
		// sense once merged.
		path = normalizedPath(rest)
	}
	u.rawPath = canonicalizePath(path)

	return u, nil
}

// cut is strings.Cut without the Go 1.18 build-tag dance the teacher's
// source predates; kept local so this file reads top-to-bottom.
func cut(s, sep string) (before, after string, found bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

// splitScheme recognizes a leading "scheme:" per RFC 3986 ยง3.1
// (ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )), grounded on getscheme.
func splitScheme(raw string) (scheme, rest string, err error) {
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return "", raw, nil
			}
		case c == ':':
			if i == 0 {
				return "", "", newError("Parse", raw, InvalidArgument, errMissingScheme{})
			}
			return raw[:i], raw[i+1:], nil
		default:
			return "", raw, nil
		}
	}
	return "", raw, nil
}

type errMissingScheme struct{}

func (errMissingScheme) Error() string { return "missing protocol scheme" }

// splitAuthority separates the authority from the path that follows it: the
// authority runs up to the first unescaped '/' (or the end of the string).
func splitAuthority(rest string) (authority, path string) {
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i], rest[i:]
	}
	return rest, ""
}

// parseAuthority splits authority into userinfo, host and port and stores
// them on u, grounded on parseAuthority/parseHost.
func (u *URL) parseAuthority(authority string) error {
	userinfo, hostport := authority, ""
	hasUserinfo := false
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		userinfo, hostport = authority[:i], authority[i+1:]
		hasUserinfo = true
	} else {
		hostport = authority
	}

	if hasUserinfo {
		if err := u.parseUserinfo(userinfo); err != nil {
			return err
		}
	}

	rawHost, rawPort, err := splitHostPort(hostport)
	if err != nil {
		return err
	}

	decodedHost := rawHost
	if !strings.HasPrefix(rawHost, "[") {
		decodedHost, err = quoter.Unquote(rawHost, hostProfile, false)
		if err != nil {
			return err
		}
	}
	h, err := host.Parse(decodedHost)
	if err != nil {
		return err
	}
	u.hostSet = true
	u.host = h

	if rawPort != "" {
		port, err := strconv.ParseUint(rawPort, 10, 16)
		if err != nil {
			return newError("Parse", rawPort, InvalidArgument, err)
		}
		u.portSet = true
		u.explicitPort = true
		u.port = uint16(port)
	}
	return nil
}

func (u *URL) parseUserinfo(userinfo string) error {
	name, password, hasPassword := cut(userinfo, ":")
	canonName, err := canonicalize(name, userinfoProfile, false)
	if err != nil {
		return err
	}
	u.userSet = true
	u.rawUser = canonName
	if hasPassword {
		canonPassword, err := canonicalize(password, userinfoProfile, false)
		if err != nil {
			return err
		}
		u.passwordSet = true
		u.rawPassword = canonPassword
	}
	return nil
}

// splitHostPort separates "[ipv6]:port" or "host:port" at the rightmost
// colon outside brackets, grounded on parseHost's bracket handling.
func splitHostPort(hostport string) (h, port string, err error) {
	if strings.HasPrefix(hostport, "[") {
		end := strings.LastIndexByte(hostport, ']')
		if end < 0 {
			return "", "", newError("Parse", hostport, InvalidHost, missingBracketErr{})
		}
		h = hostport[:end+1]
		rest := hostport[end+1:]
		if rest == "" {
			return h, "", nil
		}
		if !strings.HasPrefix(rest, ":") {
			return "", "", newError("Parse", hostport, InvalidHost, invalidPortSuffix(rest))
		}
		return h, rest[1:], nil
	}
	if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
		return hostport[:i], hostport[i+1:], nil
	}
	return hostport, "", nil
}

type missingBracketErr struct{}

func (missingBracketErr) Error() string { return "missing ']' in host" }

type invalidPortSuffix string

func (e invalidPortSuffix) Error() string { return "invalid port suffix " + string(e) }

// canonicalize decodes raw with p then re-quotes it, yielding the canonical
// encoded form every URL field is stored in (ยง3 Invariant: stored components
// are always in minimal canonical percent-encoded form).
func canonicalize(raw string, p quoter.Profile, qs bool) (string, error) {
	decoded, err := quoter.Unquote(raw, p, qs)
	if err != nil {
		return "", err
	}
	return quoter.Quote(decoded, p), nil
}

// canonicalizePath is canonicalize's path-only counterpart: a plain
// decode-then-requote loses the %2F/%25 distinction, because pathProfile
// keeps '/' in its safe set (a literal '/' must stay unescaped) rather than
// protected, so Unquote decodes %2F to a literal '/' and Quote re-emits it
// that way. ยง4.6 requires the stored path to keep %2F and %25 escaped, so
// this decodes with UnquoteKeepPercent (which never touches a byte that was
// already literal) and re-quotes everything except the %2F/%25 tokens it
// leaves behind, which are already in canonical form and must not be
// reinterpreted by Quote's own percent-run handling.
func canonicalizePath(raw string) string {
	decoded := quoter.UnquoteKeepPercent(raw, "/%")
	var b strings.Builder
	for len(decoded) > 0 {
		idx := indexProtectedPathToken(decoded)
		if idx < 0 {
			b.WriteString(quoter.Quote(decoded, pathProfile))
			break
		}
		if idx > 0 {
			b.WriteString(quoter.Quote(decoded[:idx], pathProfile))
		}
		b.WriteString(decoded[idx : idx+3])
		decoded = decoded[idx+3:]
	}
	return b.String()
}

// indexProtectedPathToken returns the index of the first "%2F" or "%25"
// UnquoteKeepPercent left in decoded, or -1 if there is none.
func indexProtectedPathToken(decoded string) int {
	iSlash := strings.Index(decoded, "%2F")
	iPercent := strings.Index(decoded, "%25")
	switch {
	case iSlash < 0:
		return iPercent
	case iPercent < 0:
		return iSlash
	case iSlash < iPercent:
		return iSlash
	default:
		return iPercent
	}
}

// normalizedPath runs RFC 3986 ยง5.2.4 dot-segment removal over a path as
// it appears in the input, before it is percent-decoded or canonicalized.
func normalizedPath(rawPath string) string {
	return pathutil.RemoveDotSegments(rawPath)
}
