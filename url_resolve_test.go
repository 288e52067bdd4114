/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package yarl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinAbsoluteReference(t *testing.T) {
	base, err := Parse("http://example.com/a/b")
	require.NoError(t, err)
	n, err := base.JoinString("https://github.com/")
	require.NoError(t, err)
	require.Equal(t, "https://github.com/", n.String())
}

func TestJoinRelativePath(t *testing.T) {
	base, err := Parse("http://example.com/a/b")
	require.NoError(t, err)
	n, err := base.JoinString("c")
	require.NoError(t, err)
	require.Equal(t, "http://example.com/a/c", n.String())
}

func TestJoinDotDotTraversal(t *testing.T) {
	base, err := Parse("http://example.com/a/b/c")
	require.NoError(t, err)
	n, err := base.JoinString("../d")
	require.NoError(t, err)
	require.Equal(t, "http://example.com/a/d", n.String())
}

func TestJoinAuthorityOnlyReference(t *testing.T) {
	base, err := Parse("http://example.com/a/b?x=1")
	require.NoError(t, err)
	n, err := base.JoinString("//other.example/p")
	require.NoError(t, err)
	require.Equal(t, "http://other.example/p", n.String())
}

func TestJoinEmptyReferenceKeepsPathReplacesQuery(t *testing.T) {
	base, err := Parse("http://example.com/a/b?x=1#frag")
	require.NoError(t, err)
	n, err := base.JoinString("?y=2")
	require.NoError(t, err)
	require.Equal(t, "http://example.com/a/b?y=2", n.String())
}

func TestJoinFragmentOnlyReference(t *testing.T) {
	base, err := Parse("http://example.com/a/b?x=1")
	require.NoError(t, err)
	n, err := base.JoinString("#frag")
	require.NoError(t, err)
	require.Equal(t, "http://example.com/a/b?x=1#frag", n.String())
}

func TestJoinPreservesEmptyPathSegments(t *testing.T) {
	base, err := Parse("http://example.com/a//b")
	require.NoError(t, err)
	n, err := base.JoinString("c")
	require.NoError(t, err)
	require.Equal(t, "http://example.com/a//c", n.String())
}

func TestJoinDotPrefixedSchemeLookingSegment(t *testing.T) {
	base, err := Parse("http://example.com/a")
	require.NoError(t, err)
	n, err := base.JoinString("./https://github.com/")
	require.NoError(t, err)
	require.Equal(t, "http://example.com/https://github.com/", n.String())
}

func TestJoinAbsolutePathReference(t *testing.T) {
	base, err := Parse("http://example.com/a/b")
	require.NoError(t, err)
	n, err := base.JoinString("/z")
	require.NoError(t, err)
	require.Equal(t, "http://example.com/z", n.String())
}
