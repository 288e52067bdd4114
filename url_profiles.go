/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package yarl

import "github.com/badu/yarl/internal/quoter"

// Component quoting profiles, grounded on shouldEscape's per-mode switch in
// _examples/wenfang-golang1.6-src/src/net/url/url.go: each component saves
// a different subset of the reserved characters for its own structural use.
var (
	// pathProfile escapes only '?' '#' '[' ']' among the reserved characters (the RFC
	// allows ':' '@' '&' '=' '+' '$' and this package additionally keeps
	// '/' ';' ',' unescaped since a path is manipulated as a whole).
	pathProfile = mustProfile(quoter.BaseGeneral, "&+/:;=@", "")

	// userinfoProfile escapes '@' '/' '?' ':', the four characters that
	// would otherwise be ambiguous with the surrounding authority syntax.
	userinfoProfile = mustProfile(quoter.BaseGeneral, "&+;=", "")

	// fragmentProfile escapes only '#' '[' ']' among the reserved
	// characters; every other reserved character stays unescaped.
	fragmentProfile = mustProfile(quoter.BaseGeneral, "&+/:;=?@", "")

	// hostProfile decodes a pre-IDNA reg-name's percent-escapes; IPv6
	// literals and zone IDs never pass through it (see parseAuthority).
	hostProfile = mustProfile(quoter.BaseGeneral, "&+;=:", "")

	// queryDisplayProfile backs the decoded query_string view: the same
	// stricter base the query package's own qsProfile uses, since the
	// query string's reserved characters ('&' '=' ';' '+') are its own
	// separators and must round-trip through decode/re-encode.
	queryDisplayProfile = mustProfile(quoter.BaseGeneral, "", "")
)

func mustProfile(base quoter.ASCIITable, safe, protected string) quoter.Profile {
	p, err := quoter.NewProfile(base, safe, protected, false)
	if err != nil {
		panic(err)
	}
	return p
}
