/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package yarl

import (
	"strconv"
	"strings"

	"github.com/badu/yarl/internal/host"
)

// HumanRepr returns a decoded string form suitable for display, never for
// re-parsing (ยง4.8 human_repr): IDNA names are rendered as their Unicode
// U-label; userinfo, path and fragment are shown fully percent-decoded, and
// the query string is shown as QueryString returns it (with '+' '=' '&' ';'
// that were percent-encoded left encoded).
func (u *URL) HumanRepr() (string, error) {
	var b strings.Builder
	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}
	if u.hostSet {
		b.WriteString("//")
		if name, ok := u.User(); ok {
			b.WriteString(name)
			if pw, ok := u.Password(); ok {
				b.WriteByte(':')
				b.WriteString(pw)
			}
			b.WriteByte('@')
		}
		hostStr := u.host.Value
		if u.host.Form == host.FormName {
			uni, err := host.ToUnicode(u.host.Value)
			if err != nil {
				return "", err
			}
			hostStr = uni
		} else if u.host.Form == host.FormIPv6 {
			hostStr = "[" + hostStr + "]"
		}
		b.WriteString(hostStr)
		if u.portSet && !u.IsDefaultPort() {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(int(u.port)))
		}
	}
	b.WriteString(u.Path())
	if u.querySet {
		b.WriteByte('?')
		b.WriteString(u.QueryString())
	}
	if frag, ok := u.Fragment(); ok {
		b.WriteByte('#')
		b.WriteString(frag)
	}
	return b.String(), nil
}
