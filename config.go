// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hdfsio/webhdfs/natmap"

	http_ "github.com/hdfsio/webhdfs/http"
)

// DefaultTimeout caps each operation's wall clock unless configured
// otherwise.
const DefaultTimeout = 30 * time.Second

// Config
// Code borrowed from https://github.com/kubernetes/kubernetes
// call chains: NewConfig -> Complete -> [Validate] -> New|Apply
type Config struct {
	// Entrypoint specifies the primary NameNode to connect to, scheme +
	// authority. A bare authority defaults to http.
	Entrypoint string `validate:"required"`

	// AltEntrypoint is the standby NameNode used for HA failover.
	AltEntrypoint *string

	// NatMap rewrites authorities returned by DataNode redirects into
	// client-reachable ones. Keyed by full host:port, no wildcarding.
	NatMap map[string]string

	// DefaultTimeout caps each synchronous operation.
	DefaultTimeout time.Duration

	// The authenticated user, appended as user.name.
	UserName *string
	// DoAs lets a proxy user act as another user, appended as doas.
	DoAs *string
	// DelegationToken is passed verbatim as the delegation query parameter.
	DelegationToken *string

	HttpConfig *http_.Config

	// Logger receives request-level debug logging. Defaults to a nop logger.
	Logger *zap.Logger

	Validator *validator.Validate
}

type completedConfig struct {
	*Config

	//===========================================================================
	// values below here are filled in during completion
	//===========================================================================
}

type CompletedConfig struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*completedConfig
}

// NewConfig returns a Config struct with the default values
func NewConfig() *Config {
	return &Config{
		DefaultTimeout: DefaultTimeout,
		HttpConfig:     http_.NewConfig(),
	}
}

// Complete fills in any fields not set that are required to have valid data and can be derived
// from other fields. If you're going to ApplyOptions, do that first. It's mutating the receiver.
func (o *Config) Complete() CompletedConfig {
	if o.Validator == nil {
		o.Validator = validator.New()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.DefaultTimeout <= 0 {
		o.DefaultTimeout = DefaultTimeout
	}
	if o.HttpConfig == nil {
		o.HttpConfig = http_.NewConfig()
	}
	if o.HttpConfig.Validator == nil {
		o.HttpConfig.Validator = o.Validator
	}
	return CompletedConfig{&completedConfig{o}}
}

// Validate checks Config.
func (o *completedConfig) Validate() error {
	return o.Validator.Struct(o)
}

// New builds the Client. New usually called after Complete.
func (c completedConfig) New() (*Client, error) {
	if err := c.Validate(); err != nil {
		return nil, wrapError(KindConfigDecode, err, "invalid client configuration")
	}

	entrypoint, err := parseEntrypoint(c.Entrypoint)
	if err != nil {
		return nil, err
	}
	var alt *url.URL
	if c.AltEntrypoint != nil {
		alt, err = parseEntrypoint(*c.AltEntrypoint)
		if err != nil {
			return nil, err
		}
	}

	nm := natmap.Empty()
	if len(c.NatMap) != 0 {
		nm, err = natmap.New(c.NatMap)
		if err != nil {
			return nil, wrapError(KindConfigDecode, err, "invalid NAT map")
		}
	}

	httpClient, err := c.HttpConfig.Complete().New()
	if err != nil {
		return nil, err
	}

	client := &Client{
		httpClient: httpClient,
		entrypoint: entrypoint,
		alt:        alt,
		natmap:     nm,
		opts:       c.Config,
	}
	client.rest = &restClient{
		httpClient: httpClient,
		natmap:     nm,
		logger:     c.Logger,
	}
	return client, nil
}

// parseEntrypoint accepts `scheme://host:port` or a bare `host:port`
// (defaulting to http) and keeps only scheme and authority.
func parseEntrypoint(s string) (*url.URL, error) {
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, wrapError(KindURIParse, err, "cannot parse entrypoint %q", s)
	}
	if u.Host == "" {
		return nil, errorf(KindURIParse, "entrypoint %q has no authority", s)
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host}, nil
}
