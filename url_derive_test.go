/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package yarl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badu/yarl/query"
)

func TestWithSchemeSuccess(t *testing.T) {
	u, err := Parse("http://example.com/")
	require.NoError(t, err)
	n, err := u.WithScheme("HTTPS")
	require.NoError(t, err)
	require.Equal(t, "https", n.Scheme())
	require.Equal(t, "http", u.Scheme())
}

func TestWithSchemeRejectsInvalidSyntax(t *testing.T) {
	u, err := Parse("http://example.com/")
	require.NoError(t, err)
	_, err = u.WithScheme("1http")
	require.Error(t, err)
}

func TestWithSchemeRejectsOnRelativeURL(t *testing.T) {
	u, err := Parse("/a/b")
	require.NoError(t, err)
	_, err = u.WithScheme("https")
	require.Error(t, err)
}

func TestWithSchemeAllowsHostlessScheme(t *testing.T) {
	u, err := Parse("/a/b")
	require.NoError(t, err)
	n, err := u.WithScheme("mailto")
	require.NoError(t, err)
	require.Equal(t, "mailto", n.Scheme())
}

func TestWithUserAndPassword(t *testing.T) {
	u, err := Parse("http://example.com/")
	require.NoError(t, err)
	user := "alice"
	n := u.WithUser(&user)
	name, ok := n.User()
	require.True(t, ok)
	require.Equal(t, "alice", name)

	pw := "s3cret"
	n = n.WithPassword(&pw)
	got, ok := n.Password()
	require.True(t, ok)
	require.Equal(t, "s3cret", got)

	cleared := n.WithUser(nil)
	_, ok = cleared.User()
	require.False(t, ok)
	_, ok = cleared.Password()
	require.False(t, ok)
}

func TestWithHostAddAndClear(t *testing.T) {
	rel, err := Parse("/a/b")
	require.NoError(t, err)
	h := "example.com"
	_, err = rel.WithHost(&h)
	require.Error(t, err)

	abs, err := Parse("http://example.com/a")
	require.NoError(t, err)
	h2 := "example.org"
	n, err := abs.WithHost(&h2)
	require.NoError(t, err)
	host, ok := n.RawHost()
	require.True(t, ok)
	require.Equal(t, "example.org", host)

	cleared, err := abs.WithHost(nil)
	require.NoError(t, err)
	_, ok = cleared.RawHost()
	require.False(t, ok)
}

func TestWithPortRangeAndClear(t *testing.T) {
	u, err := Parse("http://example.com/")
	require.NoError(t, err)
	bad := 70000
	_, err = u.WithPort(&bad)
	require.Error(t, err)

	good := 8080
	n, err := u.WithPort(&good)
	require.NoError(t, err)
	port, ok := n.ExplicitPort()
	require.True(t, ok)
	require.Equal(t, 8080, port)

	cleared, err := n.WithPort(nil)
	require.NoError(t, err)
	_, ok = cleared.ExplicitPort()
	require.False(t, ok)
}

func TestWithPathKeepsQueryAndFragment(t *testing.T) {
	u, err := Parse("http://example.com/old?x=1#frag")
	require.NoError(t, err)
	n := u.WithPath("/new path")
	require.Equal(t, "/new%20path", n.RawPath())
	require.Equal(t, "x=1", n.RawQueryString())
	frag, ok := n.RawFragment()
	require.True(t, ok)
	require.Equal(t, "frag", frag)
}

func TestWithQueryAndFragmentClear(t *testing.T) {
	u, err := Parse("http://example.com/?a=1#frag")
	require.NoError(t, err)
	n := u.WithQuery(nil)
	require.False(t, n.Query().Len() > 0)
	require.Equal(t, "http://example.com/#frag", n.String())

	n2 := u.WithFragment(nil)
	_, ok := n2.RawFragment()
	require.False(t, ok)
}

func TestWithNameAndSuffixClearQueryFragment(t *testing.T) {
	u, err := Parse("http://example.com/a/b.tar.gz?x=1#frag")
	require.NoError(t, err)
	n := u.WithName("c.zip")
	require.Equal(t, "/a/c.zip", n.RawPath())
	require.Equal(t, "", n.RawQueryString())
	_, ok := n.RawFragment()
	require.False(t, ok)

	s := u.WithSuffix(".bz2")
	require.Equal(t, "/a/b.tar.bz2", s.RawPath())
}

func TestAppendAndJoinPath(t *testing.T) {
	u, err := Parse("http://example.com/a")
	require.NoError(t, err)
	n := u.AppendPath("b c")
	require.Equal(t, "/a/b%20c", n.RawPath())

	j := u.JoinPath("b", "c")
	require.Equal(t, "/a/b/c", j.RawPath())
}

func TestOriginAndRelative(t *testing.T) {
	u, err := Parse("http://alice@example.com:8080/a/b?x=1#frag")
	require.NoError(t, err)
	origin := u.Origin()
	require.Equal(t, "http://example.com:8080", origin.String())

	rel := u.Relative()
	require.Equal(t, "/a/b?x=1#frag", rel.String())
}

func TestUpdateExtendAndWithoutQuery(t *testing.T) {
	u, err := Parse("http://h/?a=b&b=1")
	require.NoError(t, err)

	updated := u.UpdateQuery(mustValues(t, "b=2"))
	require.Equal(t, "http://h/?a=b&b=2", updated.String())

	extended := u.ExtendQuery(mustValues(t, "b=2"))
	require.Equal(t, "http://h/?a=b&b=1&b=2", extended.String())

	modded := u.Mod(mustValues(t, "c=d"))
	require.Equal(t, "http://h/?a=b&b=1&c=d", modded.String())

	without := u.WithoutQueryParams("b")
	require.Equal(t, "http://h/?a=b", without.String())
}

func mustValues(t *testing.T, raw string) query.Values {
	t.Helper()
	v, err := query.Parse(raw)
	require.NoError(t, err)
	return v
}
