/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package yarl

import "github.com/badu/yarl/internal/kind"

// Kind classifies a yarl error (ยง7).
type Kind = kind.Kind

// Error kinds, re-exported from internal/kind so callers never import it.
const (
	TypeMismatch     = kind.TypeMismatch
	InvalidArgument  = kind.InvalidArgument
	InvalidHost      = kind.InvalidHost
	IDNAErr          = kind.IDNAError
	MalformedPercent = kind.MalformedPercent
	AmbiguousQuery   = kind.AmbiguousQuery
)

// Error reports an error and the operation and input that caused it,
// generalizing the teacher's *url.Error{Op, URL, Err} (ยง7).
type Error = kind.Error

func newError(op, input string, k Kind, cause error) *Error {
	return kind.New(op, input, k, cause)
}
