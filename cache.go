/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package yarl

import "github.com/badu/yarl/internal/host"

// CacheSizes configures the four process-global host caches (ยง6
// cache_configure). A size of 0 selects the default of 256 entries; a
// negative size disables eviction for that cache.
type CacheSizes = host.CacheSizes

// CacheStats reports per-cache hit/miss/occupancy counters (ยง6
// cache_info).
type CacheStats = host.CacheStats

// CacheConfigure rebuilds the IDNA encode/decode, IP-address and
// host-validate caches to the given sizes.
func CacheConfigure(sizes CacheSizes) { host.Configure(sizes) }

// CacheClear purges every host cache's contents without changing bounds.
func CacheClear() { host.ClearAll() }

// CacheInfo reports current hit/miss/occupancy counters for every host
// cache.
func CacheInfo() CacheStats { return host.Info() }
