// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/searKing/golang/go/exp/types"
	"go.uber.org/zap"

	http_ "github.com/hdfsio/webhdfs/http"
)

// A ClientOption sets options on a Client under construction.
type ClientOption interface {
	apply(*Client)
}

// ClientOptionFunc wraps a plain function into a ClientOption.
type ClientOptionFunc func(*Client)

func (f ClientOptionFunc) apply(c *Client) { f(c) }

// ApplyOptions applies all options in order.
func (c *Client) ApplyOptions(options ...ClientOption) *Client {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt.apply(c)
	}
	return c
}

func withEntrypoint(entrypoint string) ClientOption {
	return ClientOptionFunc(func(c *Client) {
		c.opts.Entrypoint = entrypoint
	})
}

// WithAltEntrypoint configures the standby NameNode used for HA failover.
func WithAltEntrypoint(entrypoint string) ClientOption {
	return ClientOptionFunc(func(c *Client) {
		c.opts.AltEntrypoint = types.Pointer(entrypoint)
	})
}

// WithNatMap installs the authority rewrite table applied to DataNode
// redirect locations.
func WithNatMap(natmap map[string]string) ClientOption {
	return ClientOptionFunc(func(c *Client) {
		c.opts.NatMap = natmap
	})
}

// WithDefaultTimeout caps each synchronous operation's wall clock.
func WithDefaultTimeout(timeout time.Duration) ClientOption {
	return ClientOptionFunc(func(c *Client) {
		c.opts.DefaultTimeout = timeout
	})
}

// WithUserName sets the default user.name query parameter.
func WithUserName(username string) ClientOption {
	return ClientOptionFunc(func(c *Client) {
		c.opts.UserName = types.Pointer(username)
	})
}

// WithDoAs sets the default doas query parameter.
func WithDoAs(doas string) ClientOption {
	return ClientOptionFunc(func(c *Client) {
		c.opts.DoAs = types.Pointer(doas)
	})
}

// WithDelegationToken sets the default delegation query parameter, passed
// verbatim.
func WithDelegationToken(token string) ClientOption {
	return ClientOptionFunc(func(c *Client) {
		c.opts.DelegationToken = types.Pointer(token)
	})
}

func WithValidator(v *validator.Validate) ClientOption {
	return ClientOptionFunc(func(c *Client) {
		c.opts.Validator = v
	})
}

// WithLogger routes request-level debug logging through l.
func WithLogger(l *zap.Logger) ClientOption {
	return ClientOptionFunc(func(c *Client) {
		c.opts.Logger = l
	})
}

// WithHttpClient substitutes the transport. Automatic redirect following is
// disabled on a shallow copy; the request engine owns the redirect dance.
func WithHttpClient(httpCli *http.Client) ClientOption {
	return ClientOptionFunc(func(c *Client) {
		if c.opts.HttpConfig == nil {
			c.opts.HttpConfig = http_.NewConfig()
		}
		c.opts.HttpConfig.HttpClient = httpCli
	})
}

// WithTLSOptions configures the HTTPS transport: certificate roots, client
// identity, protocol bounds and validation relaxations.
func WithTLSOptions(tlsOptions *http_.TLSOptions) ClientOption {
	return ClientOptionFunc(func(c *Client) {
		if c.opts.HttpConfig == nil {
			c.opts.HttpConfig = http_.NewConfig()
		}
		c.opts.HttpConfig.TLS = tlsOptions
	})
}

// WithFileConfig applies the settings read from a TOML configuration file.
func WithFileConfig(fc *FileConfig) ClientOption {
	return ClientOptionFunc(func(c *Client) {
		if fc == nil {
			return
		}
		c.opts.Entrypoint = fc.Entrypoint
		if fc.AltEntrypoint != "" {
			c.opts.AltEntrypoint = types.Pointer(fc.AltEntrypoint)
		}
		if fc.DefaultTimeout > 0 {
			c.opts.DefaultTimeout = fc.DefaultTimeout
		}
		if fc.UserName != "" {
			c.opts.UserName = types.Pointer(fc.UserName)
		}
		if fc.DoAs != "" {
			c.opts.DoAs = types.Pointer(fc.DoAs)
		}
		if fc.DelegationToken != "" {
			c.opts.DelegationToken = types.Pointer(fc.DelegationToken)
		}
		if len(fc.NatMap) != 0 {
			c.opts.NatMap = fc.NatMap
		}
		if fc.HTTPS != nil {
			if c.opts.HttpConfig == nil {
				c.opts.HttpConfig = http_.NewConfig()
			}
			c.opts.HttpConfig.TLS = fc.HTTPS.TLSOptions()
		}
	})
}
