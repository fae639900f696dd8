// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"testing"
	"time"

	"github.com/searKing/golang/go/exp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCompleteDefaults(t *testing.T) {
	cfg := NewConfig()
	completed := cfg.Complete()

	assert.NotNil(t, cfg.Validator)
	assert.NotNil(t, cfg.Logger)
	assert.Equal(t, DefaultTimeout, cfg.DefaultTimeout)
	assert.NotNil(t, completed.Config)
}

func TestParseEntrypoint(t *testing.T) {
	u, err := parseEntrypoint("http://nn:50070")
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "nn:50070", u.Host)

	// Bare authority defaults to http, paths are discarded.
	u, err = parseEntrypoint("nn:50070")
	require.NoError(t, err)
	assert.Equal(t, "http://nn:50070", u.String())

	u, err = parseEntrypoint("https://nn:50470/ignored")
	require.NoError(t, err)
	assert.Equal(t, "https://nn:50470", u.String())

	_, err = parseEntrypoint("http://")
	assert.Error(t, err)
}

func TestEndpointURLNeverNamesUnconfigured(t *testing.T) {
	c, err := New("http://nn1:50070")
	require.NoError(t, err)

	// With no alternate configured, both states resolve to the primary.
	assert.Equal(t, "nn1:50070", c.endpointURL(FOStatePrimary).Host)
	assert.Equal(t, "nn1:50070", c.endpointURL(FOStateAlt).Host)
	assert.False(t, c.HasAlt())

	c, err = New("http://nn1:50070", WithAltEntrypoint("http://nn2:50070"))
	require.NoError(t, err)
	assert.Equal(t, "nn1:50070", c.endpointURL(FOStatePrimary).Host)
	assert.Equal(t, "nn2:50070", c.endpointURL(FOStateAlt).Host)
	assert.True(t, c.HasAlt())
}

func TestFOStateFlip(t *testing.T) {
	assert.Equal(t, FOStateAlt, FOStatePrimary.flip())
	assert.Equal(t, FOStatePrimary, FOStateAlt.flip())
	assert.Equal(t, "PRIMARY", FOStatePrimary.String())
	assert.Equal(t, "ALT", FOStateAlt.String())
}

func TestClientOptionsApply(t *testing.T) {
	c, err := New("http://nn:50070",
		WithUserName("alice"),
		WithDoAs("bob"),
		WithDelegationToken("TOKEN"),
		WithDefaultTimeout(5*time.Second),
		WithNatMap(map[string]string{"a:1": "b:2"}))
	require.NoError(t, err)

	assert.Equal(t, types.Pointer("alice"), c.opts.UserName)
	assert.Equal(t, types.Pointer("bob"), c.opts.DoAs)
	assert.Equal(t, types.Pointer("TOKEN"), c.opts.DelegationToken)
	assert.Equal(t, 5*time.Second, c.opts.DefaultTimeout)
	assert.Equal(t, 1, c.natmap.Len())
}

func TestWithFileConfig(t *testing.T) {
	fc := &FileConfig{
		Entrypoint:      "http://nn1:50070",
		AltEntrypoint:   "http://nn2:50070",
		DefaultTimeout:  42 * time.Second,
		UserName:        "dr.who",
		DelegationToken: "TOKEN",
		NatMap:          map[string]string{"dn:1006": "localhost:11006"},
	}

	c, err := New(fc.Entrypoint, WithFileConfig(fc))
	require.NoError(t, err)
	assert.Equal(t, "nn2:50070", c.endpointURL(FOStateAlt).Host)
	assert.Equal(t, 42*time.Second, c.opts.DefaultTimeout)
	assert.Equal(t, types.Pointer("dr.who"), c.opts.UserName)
	assert.Equal(t, 1, c.natmap.Len())
}
