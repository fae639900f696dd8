// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package natmap rewrites cluster-internal authorities in URIs returned by a
// NameNode into authorities reachable from the client.
package natmap

import (
	"fmt"
	"net/url"
	"strings"

	errors_ "github.com/searKing/golang/go/errors"
)

// Map is a static host:port to host:port rewrite table. It is immutable
// after construction and safe to share across concurrent operations.
type Map struct {
	m map[string]string
}

// Empty returns a Map that translates nothing.
func Empty() *Map { return &Map{} }

// New builds a Map from authority pairs. Every key and replacement must be a
// bare `host[:port]` authority.
func New(src map[string]string) (*Map, error) {
	m := make(map[string]string, len(src))
	var errs []error
	for k, v := range src {
		if err := checkAuthority(v); err != nil {
			errs = append(errs, fmt.Errorf("cannot parse NAT value for k=%s: %w", k, err))
			continue
		}
		m[k] = v
	}
	if err := errors_.Multi(errs...); err != nil {
		return nil, err
	}
	return &Map{m: m}, nil
}

func checkAuthority(s string) error {
	if s == "" || strings.ContainsAny(s, "/?#@ ") {
		return fmt.Errorf("%q is not a host:port authority", s)
	}
	if _, err := url.Parse("//" + s); err != nil {
		return err
	}
	return nil
}

// Len reports the number of rewrite entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.m)
}

// Translate substitutes the authority of u when an entry matches its full
// host:port. The rest of the URL is preserved exactly. With no match, no
// authority, or an empty map, u is returned unchanged.
func (m *Map) Translate(u *url.URL) *url.URL {
	if m.Len() == 0 || u.Host == "" {
		return u
	}
	replacement, ok := m.m[u.Host]
	if !ok {
		return u
	}
	v := *u
	v.Host = replacement
	return &v
}
