/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAndEncodeRoundTrip(t *testing.T) {
	v, err := Parse("a=b&b=1")
	require.NoError(t, err)
	require.Equal(t, []Pair{{"a", "b"}, {"b", "1"}}, v.Pairs())
	require.Equal(t, "a=b&b=1", v.Encode())
}

func TestParseNoEquals(t *testing.T) {
	v, err := Parse("flag")
	require.NoError(t, err)
	val, ok := v.Get("flag")
	require.True(t, ok)
	require.Equal(t, "", val)
}

func TestParseSemicolonSeparator(t *testing.T) {
	v, err := Parse("a=1;b=2")
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())
}

func TestUpdateDictSemantics(t *testing.T) {
	base, err := Parse("a=b&b=1")
	require.NoError(t, err)
	patch, err := Parse("b=2")
	require.NoError(t, err)
	updated := base.Update(patch)
	require.Equal(t, "a=b&b=2", updated.Encode())
}

func TestExtendKeepsDuplicates(t *testing.T) {
	base, err := Parse("a=b&b=1")
	require.NoError(t, err)
	patch, err := Parse("b=2")
	require.NoError(t, err)
	extended := base.Extend(patch)
	require.Equal(t, "a=b&b=1&b=2", extended.Encode())
}

func TestWithoutQueryParams(t *testing.T) {
	v, err := Parse("a=1&b=2&c=3")
	require.NoError(t, err)
	require.Equal(t, "a=1&c=3", v.Without("b").Encode())
}

func TestFromMappingRejectsBool(t *testing.T) {
	_, err := FromMapping(map[string]any{"flag": true})
	require.Error(t, err)
}

func TestFromMappingAcceptsRepeatedValues(t *testing.T) {
	v, err := FromMapping(map[string]any{"id": []int{1, 2, 3}})
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, v.GetAll("id"))
}

func TestEncodeSpaceAsPlus(t *testing.T) {
	v, err := Parse("q=a+b")
	require.NoError(t, err)
	val, _ := v.Get("q")
	require.Equal(t, "a b", val)
	require.Equal(t, "q=a+b", v.Encode())
}
