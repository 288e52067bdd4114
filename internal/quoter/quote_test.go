/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package quoter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func defaultPathProfile(t *testing.T) Profile {
	t.Helper()
	p, err := NewProfile(BaseGeneral, "/", "", false)
	require.NoError(t, err)
	return p
}

func TestQuoteCanonicalPassthrough(t *testing.T) {
	p := defaultPathProfile(t)
	s := "already/canonical"
	require.Equal(t, s, Quote(s, p))
}

func TestQuoteMalformedPercent(t *testing.T) {
	p := defaultPathProfile(t)
	require.Equal(t, "a%252zb", Quote("a%2zb", p))
}

func TestQuoteSpaceHandling(t *testing.T) {
	qs, err := NewProfile(BaseQueryString, "", "", true)
	require.NoError(t, err)
	require.Equal(t, "a+b", Quote("a b", qs))

	path, err := NewProfile(BaseGeneral, "", "", false)
	require.NoError(t, err)
	require.Equal(t, "a%20b", Quote("a b", path))
}

func TestQuoteUnicode(t *testing.T) {
	p := defaultPathProfile(t)
	require.Equal(t, "%D0%BF%D1%83%D1%82%D1%8C", Quote("путь", p))
}

func TestQuoteIdempotent(t *testing.T) {
	p := defaultPathProfile(t)
	once := Quote("hello world/ünïcode", p)
	twice := Quote(once, p)
	require.Equal(t, once, twice)
}

func TestQuoteNonASCIISafeRejected(t *testing.T) {
	_, err := NewProfile(BaseGeneral, "é", "", false)
	require.Error(t, err)
}

func TestQuoteProtectedStaysEncoded(t *testing.T) {
	// 'a' is protected: a decoded %61 must stay percent-encoded, and a
	// literal 'a' must also be forced back into %-form, since the quoter
	// has no way to distinguish the two once decoded.
	p, err := NewProfile(BaseGeneral, "", "a", false)
	require.NoError(t, err)
	require.Equal(t, "%61", Quote("%61", p))
	require.Equal(t, "%61", Quote("a", p))
}
