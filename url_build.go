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
	"github.com/badu/yarl/query"
)

// Builder assembles a URL from individual components (ยง4.8 URL.build),
// as an alternative to parsing a string. A zero Builder builds the empty
// URL. Pointer fields distinguish "absent" from "empty string": a nil
// Password differs from an empty, explicitly-set one.
type Builder struct {
	Scheme string

	// Authority, if non-empty, is used verbatim in place of User/Password/
	// Host/Port, which must then all be left unset.
	Authority string

	User     *string
	Password *string
	Host     *string
	Port     *int

	Path string

	// QueryString and Query are mutually exclusive (ยง4.8): at most one may
	// be set.
	QueryString *string
	Query       *query.Values

	Fragment *string

	// Encoded, when true, skips re-quoting Path/User/Password/Fragment
	// (they are assumed already canonically encoded). Path still goes
	// through dot-segment removal and the leading-'/' check; the values
	// themselves are not checked for valid percent-encoding.
	Encoded bool
}

// Build assembles u's components into a URL, per ยง4.8's rejection rules.
func (b Builder) Build() (*URL, error) {
	if b.Authority != "" && (b.User != nil || b.Password != nil || b.Host != nil || b.Port != nil) {
		return nil, newError("Builder.Build", b.Authority, InvalidArgument,
			errAmbiguous("authority cannot be combined with user/password/host/port"))
	}
	if b.QueryString != nil && b.Query != nil {
		return nil, newError("Builder.Build", "", AmbiguousQuery,
			errAmbiguous("query and query_string are mutually exclusive"))
	}
	if b.Host == nil && (b.User != nil || b.Password != nil || b.Port != nil) && b.Authority == "" {
		return nil, newError("Builder.Build", "", InvalidArgument,
			errAmbiguous("host is required alongside user/password/port"))
	}

	u := newURL()
	u.scheme = b.Scheme

	switch {
	case b.Authority != "":
		if err := u.parseAuthority(b.Authority); err != nil {
			return nil, err
		}
	case b.Host != nil:
		if err := u.buildAuthorityFrom(b); err != nil {
			return nil, err
		}
	}

	normPath := pathutil.RemoveDotSegments(b.Path)
	if u.hostSet && normPath != "" && !strings.HasPrefix(normPath, "/") {
		return nil, newError("Builder.Build", b.Path, InvalidArgument,
			errAmbiguous("path must start with '/' when an authority is present"))
	}
	path, err := b.encodeComponent(normPath, pathProfile)
	if err != nil {
		return nil, err
	}
	u.rawPath = path

	switch {
	case b.QueryString != nil:
		u.querySet = true
		u.rawQuery = *b.QueryString
	case b.Query != nil:
		u.querySet = true
		u.rawQuery = b.Query.Encode()
	}

	if b.Fragment != nil {
		frag, err := b.encodeComponent(*b.Fragment, fragmentProfile)
		if err != nil {
			return nil, err
		}
		u.fragmentSet = true
		u.rawFragment = frag
	}

	return u, nil
}

func (u *URL) buildAuthorityFrom(b Builder) error {
	if b.User != nil {
		name, err := b.encodeComponent(*b.User, userinfoProfile)
		if err != nil {
			return err
		}
		u.userSet = true
		u.rawUser = name
	}
	if b.Password != nil {
		pw, err := b.encodeComponent(*b.Password, userinfoProfile)
		if err != nil {
			return err
		}
		u.passwordSet = true
		u.rawPassword = pw
	}
	h, err := host.Parse(*b.Host)
	if err != nil {
		return err
	}
	u.hostSet = true
	u.host = h
	if b.Port != nil {
		if *b.Port < 0 || *b.Port > 65535 {
			return newError("Builder.Build", strconv.Itoa(*b.Port), InvalidArgument,
				errAmbiguous("port out of range"))
		}
		u.portSet = true
		u.explicitPort = true
		u.port = uint16(*b.Port)
	}
	return nil
}

// encodeComponent quotes raw with p unless Encoded is set, in which case it
// is used as given, without any check that it is ASCII or validly
// percent-encoded.
func (b Builder) encodeComponent(raw string, p quoter.Profile) (string, error) {
	if b.Encoded {
		return raw, nil
	}
	return quoter.Quote(raw, p), nil
}

type errAmbiguous string

func (e errAmbiguous) Error() string { return string(e) }
