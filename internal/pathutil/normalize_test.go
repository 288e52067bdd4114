/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package pathutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveDotSegments(t *testing.T) {
	cases := map[string]string{
		"/a/b/c":          "/a/b/c",
		"/a/./b":          "/a/b",
		"/a/b/../c":       "/a/c",
		"/a/../../b":      "/b",
		"/a//b":           "/a//b",
		"":                "",
		"/a/b/.":          "/a/b/",
		"/a/b/..":         "/a/",
	}
	for in, want := range cases {
		require.Equal(t, want, RemoveDotSegments(in), "input %q", in)
	}
}

func TestResolveAgainstBase(t *testing.T) {
	require.Equal(t, "/a/b/c", Resolve("/a/b/x", "c"))
	require.Equal(t, "/x", Resolve("/a/b/c", "/x"))
	require.Equal(t, "/a/b/x", Resolve("/a/b/x", ""))
}

func TestJoinSegments(t *testing.T) {
	require.Equal(t, "/a/b", JoinSegments("/a", []string{"b"}))
	require.Equal(t, "/a/b/c", JoinSegments("/a", []string{"b", "c"}))
	require.Equal(t, "/a/b", JoinSegments("/a/", []string{"b"}))
}
