/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package query implements the ordered, duplicate-key-preserving multi-map
// that backs a yarl.URL's query string (ยง4.7), the "ordered multi-map of
// string->string supporting duplicate keys and insertion-order iteration"
// that spec.md treats as an external collaborator.
package query

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/badu/yarl/internal/kind"
	"github.com/badu/yarl/internal/quoter"
)

// Pair is one decoded (key, value) entry.
type Pair struct {
	Key   string
	Value string
}

// Values is an ordered multi-map: duplicate keys are preserved, iteration
// order is insertion/parse order (ยง3).
type Values struct {
	pairs []Pair
}

// qsProfile is the application/x-www-form-urlencoded quoting profile for
// individual key/value pairs: the stricter UNRESERVED_PLUS_SUB_DELIMS_NO_QS
// base (so '&', '=', ';', '+' inside a decoded key/value are re-escaped,
// since they are this format's own separators) with QS space<->'+'
// semantics.
var qsProfile = mustProfile()

func mustProfile() quoter.Profile {
	p, err := quoter.NewProfile(quoter.BaseGeneral, "", "", true)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse splits raw on '&' and ';' at the top level, each token splitting at
// the first '=' into (key, value); a token without '=' yields (key, "").
// Keys and values are percent-decoded with the qs Unquoter so '+' decodes to
// space (ยง4.7).
func Parse(raw string) (Values, error) {
	var v Values
	for raw != "" {
		tok := raw
		if i := strings.IndexAny(tok, "&;"); i >= 0 {
			tok, raw = tok[:i], tok[i+1:]
		} else {
			raw = ""
		}
		if tok == "" {
			continue
		}
		key, value := tok, ""
		if i := strings.IndexByte(tok, '='); i >= 0 {
			key, value = tok[:i], tok[i+1:]
		}
		dk, err := quoter.Unquote(key, qsProfile, true)
		if err != nil {
			return Values{}, err
		}
		dv, err := quoter.Unquote(value, qsProfile, true)
		if err != nil {
			return Values{}, err
		}
		v.pairs = append(v.pairs, Pair{Key: dk, Value: dv})
	}
	return v, nil
}

// Pairs exposes a read-only view of the stored (key, value) pairs in
// insertion order.
func (v Values) Pairs() []Pair {
	out := make([]Pair, len(v.pairs))
	copy(out, v.pairs)
	return out
}

// Len reports the number of stored pairs (not distinct keys).
func (v Values) Len() int { return len(v.pairs) }

// Get returns the first value for key, and whether key was present at all.
func (v Values) Get(key string) (string, bool) {
	for _, p := range v.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// GetAll returns every value stored for key, in insertion order.
func (v Values) GetAll(key string) []string {
	var out []string
	for _, p := range v.pairs {
		if p.Key == key {
			out = append(out, p.Value)
		}
	}
	return out
}

// Add appends one (key, value) pair without touching any existing entries.
func (v Values) Add(key, value string) Values {
	out := v.clone()
	out.pairs = append(out.pairs, Pair{Key: key, Value: value})
	return out
}

// Set replaces every existing entry for key with a single (key, value)
// pair, appended at the position of the first removed occurrence (or at
// the end if key was absent).
func (v Values) Set(key, value string) Values {
	out := Values{}
	inserted := false
	for _, p := range v.pairs {
		if p.Key != key {
			out.pairs = append(out.pairs, p)
			continue
		}
		if !inserted {
			out.pairs = append(out.pairs, Pair{Key: key, Value: value})
			inserted = true
		}
	}
	if !inserted {
		out.pairs = append(out.pairs, Pair{Key: key, Value: value})
	}
	return out
}

// Del removes every entry for key.
func (v Values) Del(key string) Values {
	return v.Without(key)
}

// Update implements dict-update semantics (ยง4.7 update_query): for each key
// present in q, drop all existing entries for that key, then append q's
// entries for that key, preserving q's own order among repeats. The
// replace set below is used only for membership testing, never ranged
// over, so the result's order tracks v.pairs/q.pairs exactly; it does not
// inherit Go's map iteration nondeterminism.
func (v Values) Update(q Values) Values {
	replace := map[string]bool{}
	for _, p := range q.pairs {
		replace[p.Key] = true
	}
	out := Values{}
	for _, p := range v.pairs {
		if !replace[p.Key] {
			out.pairs = append(out.pairs, p)
		}
	}
	out.pairs = append(out.pairs, q.pairs...)
	return out
}

// Extend appends q's entries without removing any existing duplicates
// (ยง4.7 extend_query).
func (v Values) Extend(q Values) Values {
	out := v.clone()
	out.pairs = append(out.pairs, q.pairs...)
	return out
}

// Without removes every entry whose key is in keys (ยง4.7
// without_query_params).
func (v Values) Without(keys ...string) Values {
	drop := map[string]bool{}
	for _, k := range keys {
		drop[k] = true
	}
	out := Values{}
	for _, p := range v.pairs {
		if !drop[p.Key] {
			out.pairs = append(out.pairs, p)
		}
	}
	return out
}

func (v Values) clone() Values {
	out := Values{pairs: make([]Pair, len(v.pairs))}
	copy(out.pairs, v.pairs)
	return out
}

// Encode serializes v as application/x-www-form-urlencoded, '&'-joined, in
// insertion order (deliberately not sorted by key: ยง3 requires iteration
// order to match insertion/parse order).
func (v Values) Encode() string {
	var b strings.Builder
	for i, p := range v.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(quoter.Quote(p.Key, qsProfile))
		b.WriteByte('=')
		b.WriteString(quoter.Quote(p.Value, qsProfile))
	}
	return b.String()
}

// FromMapping builds a Values from a map[string]any, accepting string, any non-bool integer kind, float32/float64, and slices
// of those (for repeated keys), per ยง4.7. bool is explicitly rejected with
// TypeMismatch: there is no universal boolean serialization.
//
// Go's map iteration order is randomized, so the relative order of distinct
// keys in the returned Values is not the caller's insertion order into m —
// only the order of repeated values within one key's own slice is preserved.
// Callers that need deterministic multi-key order should build Values via
// Add/Parse instead.
func FromMapping(m map[string]any) (Values, error) {
	var v Values
	for key, raw := range m {
		vals, err := scalarOrSlice(key, raw)
		if err != nil {
			return Values{}, err
		}
		for _, s := range vals {
			v.pairs = append(v.pairs, Pair{Key: key, Value: s})
		}
	}
	return v, nil
}

func scalarOrSlice(key string, raw any) ([]string, error) {
	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s, err := scalarString(key, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}
	s, err := scalarString(key, raw)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

func scalarString(key string, raw any) (string, error) {
	switch v := raw.(type) {
	case bool:
		return "", kind.New("query.FromMapping", key, kind.TypeMismatch, fmt.Errorf("bool has no universal query serialization"))
	case string:
		return v, nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	default:
		return "", kind.New("query.FromMapping", key, kind.TypeMismatch, fmt.Errorf("unsupported query value type %T", raw))
	}
}
