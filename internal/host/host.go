/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package host implements ยง4.4: validating and canonicalizing the host
// component of a URL, backed by process-global LRU caches.
package host

import (
	"net/netip"
	"strings"
	"sync"

	"golang.org/x/net/idna"

	"github.com/badu/yarl/internal/kind"
)

// Form classifies how a Host's Value should be rendered.
type Form int

const (
	FormIPv4 Form = iota
	FormIPv6
	FormName
)

// Host is the canonicalized, bracket-free form of a parsed host.
type Host struct {
	Form  Form
	Value string // dotted IPv4, bracket-free IPv6 (+ zone), or lowercase A-label
}

// String renders Host for use inside an authority: IPv6 literals regain
// their brackets, everything else is printed as-is.
func (h Host) String() string {
	if h.Form == FormIPv6 {
		return "[" + h.Value + "]"
	}
	return h.Value
}

var (
	idna2008 = idna.New(idna.MapForLookup(), idna.BidiRule(), idna.Transitional(false))
	idna2003 = idna.New(idna.Transitional(true))
)

var caches = struct {
	idnaEncode *strCache[string]
	idnaDecode *strCache[string]
	ipParse    *strCache[netip.Addr]
	validate   *strCache[struct{}]
	mu         sync.Mutex
}{
	idnaEncode: newStrCache[string](defaultCacheSize),
	idnaDecode: newStrCache[string](defaultCacheSize),
	ipParse:    newStrCache[netip.Addr](defaultCacheSize),
	validate:   newStrCache[struct{}](defaultCacheSize),
}

// CacheSizes configures the four process-global caches (ยง6
// cache_configure). A size of 0 selects the default of 256 entries; a
// negative size disables eviction for that cache.
type CacheSizes struct {
	IDNAEncode   int
	IDNADecode   int
	IPAddress    int
	HostValidate int
}

// Configure rebuilds all four caches to the given sizes.
func Configure(s CacheSizes) {
	caches.mu.Lock()
	defer caches.mu.Unlock()
	caches.idnaEncode.resize(orDefault(s.IDNAEncode))
	caches.idnaDecode.resize(orDefault(s.IDNADecode))
	caches.ipParse.resize(orDefault(s.IPAddress))
	caches.validate.resize(orDefault(s.HostValidate))
}

func orDefault(n int) int {
	if n == 0 {
		return defaultCacheSize
	}
	return n
}

// ClearAll purges every cache's contents without changing its bounds.
func ClearAll() {
	caches.idnaEncode.clear()
	caches.idnaDecode.clear()
	caches.ipParse.clear()
	caches.validate.clear()
}

// CacheStats reports per-cache hit/miss/occupancy counters.
type CacheStats struct {
	IDNAEncode   Stats
	IDNADecode   Stats
	IPAddress    Stats
	HostValidate Stats
}

func Info() CacheStats {
	return CacheStats{
		IDNAEncode:   caches.idnaEncode.stats(),
		IDNADecode:   caches.idnaDecode.stats(),
		IPAddress:    caches.ipParse.stats(),
		HostValidate: caches.validate.stats(),
	}
}

// deny-list of bytes RFC 3986 ยง3.2.2 forbids in an ASCII reg-name, checked
// before IDNA processing kicks in. The grammar only constrains ASCII
// reg-names; a byte >= 0x80 is part of a Unicode U-label and must pass
// through untouched so it reaches the IDNA encoder below.
func forbiddenRegNameByte(c byte) bool {
	if c >= 0x80 {
		return false
	}
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return false
	}
	switch c {
	case '-', '.', '_', '~', // unreserved
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', // sub-delims
		'%': // pct-encoded
		return false
	}
	return true
}

func validateRegName(s string) error {
	if cached, ok := caches.validate.get(s); ok {
		_ = cached
		return nil
	}
	for i := 0; i < len(s); i++ {
		if forbiddenRegNameByte(s[i]) {
			hint := ""
			if s[i] == '@' || strings.ContainsRune(s, ':') {
				hint = "; this value resembles a full authority (user@host:port) -- parse it as one instead"
			}
			return kind.New("host.Parse", s, kind.InvalidHost, invalidHostByte{s[i : i+1], hint})
		}
	}
	caches.validate.put(s, struct{}{})
	return nil
}

type invalidHostByte struct {
	c    string
	hint string
}

func (e invalidHostByte) Error() string {
	return "invalid character " + e.c + " in host name" + e.hint
}

// Parse classifies and canonicalizes a bracket-stripped-or-not raw host
// string per ยง4.4.
func Parse(raw string) (Host, error) {
	if strings.HasPrefix(raw, "[") {
		return parseIPLiteral(raw)
	}
	if addr, ok := parseIPv4(raw); ok {
		return Host{Form: FormIPv4, Value: addr}, nil
	}
	if err := validateRegName(raw); err != nil {
		return Host{}, err
	}
	return parseRegName(raw)
}

func parseIPv4(raw string) (string, bool) {
	if cached, ok := caches.ipParse.get("4:" + raw); ok {
		if cached.Is4() {
			return cached.String(), true
		}
		return "", false
	}
	addr, err := netip.ParseAddr(raw)
	if err != nil || !addr.Is4() {
		return "", false
	}
	caches.ipParse.put("4:"+raw, addr)
	return addr.String(), true
}

func parseIPLiteral(raw string) (Host, error) {
	end := strings.LastIndexByte(raw, ']')
	if end < 0 {
		return Host{}, kind.New("host.Parse", raw, kind.InvalidHost, missingBracket{})
	}
	inner := raw[1:end]
	zone := ""
	if i := strings.IndexByte(inner, '%'); i >= 0 {
		inner, zone = inner[:i], inner[i:]
	}
	cacheKey := "6:" + inner
	var addr netip.Addr
	if cached, ok := caches.ipParse.get(cacheKey); ok {
		addr = cached
	} else {
		var err error
		addr, err = netip.ParseAddr(inner)
		if err != nil {
			return Host{}, kind.New("host.Parse", raw, kind.InvalidHost, err)
		}
		caches.ipParse.put(cacheKey, addr)
	}
	return Host{Form: FormIPv6, Value: addr.String() + zone}, nil
}

type missingBracket struct{}

func (missingBracket) Error() string { return "missing ']' in host" }

func parseRegName(raw string) (Host, error) {
	if cached, ok := caches.idnaEncode.get(raw); ok {
		return Host{Form: FormName, Value: cached}, nil
	}
	ascii, err := idna2008.ToASCII(raw)
	if err != nil {
		ascii, err = idna2003.ToASCII(raw)
		if err != nil {
			return Host{}, kind.New("host.Parse", raw, kind.IDNAError, err)
		}
	}
	ascii = strings.ToLower(ascii)
	caches.idnaEncode.put(raw, ascii)
	return Host{Form: FormName, Value: ascii}, nil
}

// ToUnicode decodes an A-label registered name back to its U-label form,
// for human_repr() (ยง4.8).
func ToUnicode(aLabel string) (string, error) {
	if cached, ok := caches.idnaDecode.get(aLabel); ok {
		return cached, nil
	}
	u, err := idna2008.ToUnicode(aLabel)
	if err != nil {
		return "", kind.New("host.ToUnicode", aLabel, kind.IDNAError, err)
	}
	caches.idnaDecode.put(aLabel, u)
	return u, nil
}
