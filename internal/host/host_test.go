/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package host

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIPv4(t *testing.T) {
	h, err := Parse("192.168.0.1")
	require.NoError(t, err)
	require.Equal(t, FormIPv4, h.Form)
	require.Equal(t, "192.168.0.1", h.Value)
}

func TestParseIPv6Literal(t *testing.T) {
	h, err := Parse("[::1]")
	require.NoError(t, err)
	require.Equal(t, FormIPv6, h.Form)
	require.Equal(t, "::1", h.Value)
	require.Equal(t, "[::1]", h.String())
}

func TestParseIDNA(t *testing.T) {
	h, err := Parse("εμπορικόσήμα.eu")
	require.NoError(t, err)
	require.Equal(t, FormName, h.Form)
	require.Equal(t, "xn--jxagkqfkduily1i.eu", h.Value)
}

func TestParseRejectsForbiddenByte(t *testing.T) {
	_, err := Parse("exa\"mple.com")
	require.Error(t, err)
}

func TestCacheConfigureAndClear(t *testing.T) {
	Configure(CacheSizes{IDNAEncode: 2, IDNADecode: 2, IPAddress: 2, HostValidate: 2})
	defer Configure(CacheSizes{})

	_, err := Parse("example.com")
	require.NoError(t, err)
	stats := Info()
	require.GreaterOrEqual(t, stats.IDNAEncode.Len, 1)

	ClearAll()
	require.Equal(t, 0, Info().IDNAEncode.Len)
}
