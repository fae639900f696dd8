package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Config
// Code borrowed from https://github.com/kubernetes/kubernetes
// call chains: NewConfig -> Complete -> [Validate] -> New|Apply
type Config struct {
	// HttpClient, when set, replaces the default transport. Redirect
	// following is disabled on a shallow copy; the WebHDFS engine drives the
	// two-phase redirect dance itself.
	HttpClient *http.Client

	// TLS carries certificate roots, client identity and protocol bounds for
	// https entrypoints.
	TLS *TLSOptions

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
	return &Config{}
}

// Complete fills in any fields not set that are required to have valid data and can be derived
// from other fields. If you're going to ApplyOptions, do that first. It's mutating the receiver.
func (o *Config) Complete() CompletedConfig {
	if o.Validator == nil {
		o.Validator = validator.New()
	}
	return CompletedConfig{&completedConfig{o}}
}

// Validate checks Config.
func (c *completedConfig) Validate() error {
	return c.Validator.Struct(c)
}

// New builds the transport factory. New usually called after Complete.
func (c completedConfig) New() (func() Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	base := c.HttpClient
	if base == nil {
		base = http.DefaultClient
	}

	// Shallow copy so the caller's client is not mutated.
	cli := *base
	cli.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	if c.TLS != nil {
		tlsConfig, err := c.TLS.Build()
		if err != nil {
			return nil, err
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = tlsConfig
		cli.Transport = transport
	}

	return func() Client { return &cli }, nil
}
