/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package pathutil implements RFC 3986 ยง5.2.4 dot-segment removal and path
// joining, grounded on resolvePath in
// _examples/wenfang-golang1.6-src/src/net/url/url.go.
package pathutil

import "strings"

// RemoveDotSegments resolves "." and ".." segments in path against an
// implicit empty base, per ยง4.6. ".." beyond the root is silently absorbed.
// Runs of "//" are preserved (they carry meaning in the result) since they
// survive strings.Split/Join as empty segments, same as the teacher's
// resolvePath.
func RemoveDotSegments(path string) string {
	if path == "" {
		return ""
	}
	src := strings.Split(path, "/")
	dst := make([]string, 0, len(src))
	for _, elem := range src {
		switch elem {
		case ".":
			// drop
		case "..":
			// absorbed silently, beyond the root or not
			if len(dst) > 0 {
				dst = dst[:len(dst)-1]
			}
		default:
			dst = append(dst, elem)
		}
	}
	if last := src[len(src)-1]; last == "." || last == ".." {
		dst = append(dst, "")
	}
	joined := strings.Join(dst, "/")
	if strings.HasPrefix(path, "/") && !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}
	return joined
}

// Resolve applies RFC 3986 ยง5.2.3 merge + dot-segment removal: ref is
// resolved against basePath the way resolvePath(base, ref) does in the
// teacher's lineage.
func Resolve(basePath, ref string) string {
	var full string
	switch {
	case ref == "":
		full = basePath
	case !strings.HasPrefix(ref, "/"):
		i := strings.LastIndex(basePath, "/")
		full = basePath[:i+1] + ref
	default:
		full = ref
	}
	if full == "" {
		return ""
	}
	return "/" + strings.TrimLeft(removeDotSegmentsKeepingTrailingSlash(full), "/")
}

func removeDotSegmentsKeepingTrailingSlash(full string) string {
	src := strings.Split(full, "/")
	var dst []string
	for _, elem := range src {
		switch elem {
		case ".":
		case "..":
			if len(dst) > 0 {
				dst = dst[:len(dst)-1]
			}
		default:
			dst = append(dst, elem)
		}
	}
	if last := src[len(src)-1]; last == "." || last == ".." {
		dst = append(dst, "")
	}
	return strings.Join(dst, "/")
}

// JoinSegments appends one or more already-encoded path segments to base,
// per ยง4.6/joinpath: a single '/' between base and the first new segment
// (preserving empty trailing segments already in base), and one '/' between
// each subsequent segment.
func JoinSegments(base string, segs []string) string {
	var b strings.Builder
	b.WriteString(base)
	if !strings.HasSuffix(base, "/") {
		b.WriteByte('/')
	}
	for i, seg := range segs {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(seg)
	}
	return b.String()
}
