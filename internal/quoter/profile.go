/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package quoter

// Profile configures one Quoter/Unquoter pass: a base table plus caller
// extensions, per ยง4.1. safe characters pass through unescaped; protected
// characters remain percent-encoded even when the base table would allow
// them through.
type Profile struct {
	base      ASCIITable
	safe      ASCIITable
	protected ASCIITable
	QS        bool
}

// BaseQueryString is UNRESERVED_PLUS_QS: used outside the query string
// itself (ยง4.1) wherever +?=;& should pass through unescaped.
var BaseQueryString = unreservedPlusQS

// BaseGeneral is UNRESERVED_PLUS_SUB_DELIMS_NO_QS, the default base for
// path/userinfo/host/fragment encoding.
var BaseGeneral = unreservedSubDelimsNoQS

// NewProfile builds a Profile over base, extended with the ASCII-only safe
// and protected sets. A non-ASCII byte in either set fails with
// InvalidArgument (ยง4.2).
func NewProfile(base ASCIITable, safe, protected string, qs bool) (Profile, error) {
	safeTable, err := newASCIITable().with(safe)
	if err != nil {
		return Profile{}, err
	}
	protectedTable, err := newASCIITable().with(protected)
	if err != nil {
		return Profile{}, err
	}
	return Profile{base: base, safe: safeTable, protected: protectedTable, QS: qs}, nil
}

func (p Profile) isSafe(c byte) bool {
	if p.protected.has(c) {
		return false
	}
	return p.base.has(c) || p.safe.has(c)
}

func (p Profile) isProtected(c byte) bool {
	return p.protected.has(c)
}
