/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package ports is the default-port registry (ยง6): consulted only for
// string-form elision and port fallback, never for validation.
package ports

import "sync"

var (
	mu      sync.RWMutex
	byScheme = map[string]int{
		"http":  80,
		"https": 443,
		"ws":    80,
		"wss":   443,
	}
)

// Default returns the default port for scheme and whether one is
// registered.
func Default(scheme string) (int, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := byScheme[scheme]
	return p, ok
}

// Register extends the registry at build time.
func Register(scheme string, port int) {
	mu.Lock()
	defer mu.Unlock()
	byScheme[scheme] = port
}

// hostless is the set of schemes the Open Question in spec.md ยง9.2 resolves
// as not requiring a host, so with_scheme may switch to them even on a
// relative (hostless) URL.
var hostless = map[string]bool{
	"mailto": true,
	"data":   true,
	"urn":    true,
	"tel":    true,
	"about":  true,
}

// RequiresHost reports whether scheme needs an authority before it can be
// considered a well-formed absolute URL.
func RequiresHost(scheme string) bool {
	return !hostless[scheme]
}
