/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package host

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 256

// strCache is a process-global string-keyed cache, backed either by an LRU
// (bounded) or a plain map (unbounded, size <= 0), per ยง4.4/ยง9. Every write
// is serialized by a dedicated mutex so concurrent encoders observe a
// consistent structure; lock-free reads are not attempted since golang-lru
// itself needs a lock for its recency bookkeeping on Get.
type strCache[V any] struct {
	mu        sync.Mutex
	size      int
	lru       *lru.Cache[string, V]
	unbounded map[string]V
	hits      uint64
	misses    uint64
}

func newStrCache[V any](size int) *strCache[V] {
	c := &strCache[V]{}
	c.resize(size)
	return c
}

func (c *strCache[V]) resize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.size = size
	c.hits, c.misses = 0, 0
	if size <= 0 {
		c.lru = nil
		c.unbounded = make(map[string]V)
		return
	}
	c.unbounded = nil
	l, err := lru.New[string, V](size)
	if err != nil {
		// size is always > 0 here, so New never actually fails; this guards
		// against a future golang-lru change tightening its contract.
		l, _ = lru.New[string, V](defaultCacheSize)
	}
	c.lru = l
}

func (c *strCache[V]) get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru != nil {
		v, ok := c.lru.Get(key)
		c.recordLocked(ok)
		return v, ok
	}
	v, ok := c.unbounded[key]
	c.recordLocked(ok)
	return v, ok
}

func (c *strCache[V]) recordLocked(hit bool) {
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

func (c *strCache[V]) put(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru != nil {
		c.lru.Add(key, v)
		return
	}
	c.unbounded[key] = v
}

func (c *strCache[V]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru != nil {
		c.lru.Purge()
	} else {
		c.unbounded = make(map[string]V)
	}
	c.hits, c.misses = 0, 0
}

func (c *strCache[V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru != nil {
		return c.lru.Len()
	}
	return len(c.unbounded)
}

// Stats reports hit/miss counters and current occupancy for one cache, per
// the cache_info() surface (ยง6).
type Stats struct {
	Size   int
	Len    int
	Hits   uint64
	Misses uint64
}

func (c *strCache[V]) stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	if c.lru != nil {
		n = c.lru.Len()
	} else {
		n = len(c.unbounded)
	}
	return Stats{Size: c.size, Len: n, Hits: c.hits, Misses: c.misses}
}
