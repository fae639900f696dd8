// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package natmap

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *url.URL {
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestTranslate(t *testing.T) {
	m, err := New(map[string]string{"dn.internal:1006": "localhost:11006"})
	require.NoError(t, err)

	u := mustParse(t, "http://dn.internal:1006/webhdfs/v1/f?op=OPEN&offset=0")
	got := m.Translate(u)
	assert.Equal(t, "http://localhost:11006/webhdfs/v1/f?op=OPEN&offset=0", got.String())

	// Scheme, path and query survive byte for byte; only the authority moves.
	assert.Equal(t, u.Path, got.Path)
	assert.Equal(t, u.RawQuery, got.RawQuery)
}

func TestTranslateIdentity(t *testing.T) {
	m, err := New(map[string]string{"dn.internal:1006": "localhost:11006"})
	require.NoError(t, err)

	for _, s := range []string{
		"http://other:1006/webhdfs/v1/f", // authority not in map
		"http://dn.internal:9999/x",      // port differs, no wildcarding
		"/webhdfs/v1/f?op=OPEN",          // no authority at all
	} {
		u := mustParse(t, s)
		assert.Same(t, u, m.Translate(u), s)
	}

	// Empty map is a no-op for everything.
	u := mustParse(t, "http://dn.internal:1006/f")
	assert.Same(t, u, Empty().Translate(u))
}

func TestTranslateDoesNotMutateInput(t *testing.T) {
	m, err := New(map[string]string{"a:1": "b:2"})
	require.NoError(t, err)

	u := mustParse(t, "http://a:1/f")
	_ = m.Translate(u)
	assert.Equal(t, "a:1", u.Host)
}

func TestNewRejectsBadAuthority(t *testing.T) {
	_, err := New(map[string]string{"a:1": "not an authority/with/path"})
	assert.Error(t, err)

	_, err = New(map[string]string{"a:1": ""})
	assert.Error(t, err)
}
