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

func TestBuilderBasic(t *testing.T) {
	h := "example.com"
	u, err := Builder{Scheme: "https", Host: &h, Path: "/a b"}.Build()
	require.NoError(t, err)
	require.Equal(t, "https://example.com/a%20b", u.String())
}

func TestBuilderRejectsAuthorityWithHost(t *testing.T) {
	h := "example.com"
	_, err := Builder{Authority: "example.org", Host: &h}.Build()
	require.Error(t, err)
}

func TestBuilderRejectsQueryAmbiguity(t *testing.T) {
	qs := "a=1"
	v, err := query.Parse("b=2")
	require.NoError(t, err)
	_, err = Builder{Scheme: "https", QueryString: &qs, Query: &v}.Build()
	require.Error(t, err)
}

func TestBuilderWithQueryValues(t *testing.T) {
	h := "example.com"
	v, err := query.Parse("a=1&b=2")
	require.NoError(t, err)
	u, err := Builder{Scheme: "https", Host: &h, Query: &v}.Build()
	require.NoError(t, err)
	require.Equal(t, "https://example.com?a=1&b=2", u.String())
}

func TestBuilderRejectsHostlessUserinfo(t *testing.T) {
	pw := "secret"
	_, err := Builder{Scheme: "https", Password: &pw}.Build()
	require.Error(t, err)
}

func TestBuilderRejectsRelativePathWithAuthority(t *testing.T) {
	h := "example.com"
	_, err := Builder{Scheme: "https", Host: &h, Path: "a/b"}.Build()
	require.Error(t, err)
}

func TestBuilderEncodedSkipsRequoting(t *testing.T) {
	h := "example.com"
	u, err := Builder{Scheme: "https", Host: &h, Path: "/a%2Fb", Encoded: true}.Build()
	require.NoError(t, err)
	require.Equal(t, "https://example.com/a%2Fb", u.String())
}
