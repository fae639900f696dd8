package webhdfs

import (
	"net/url"

	"github.com/hdfsio/webhdfs/natmap"
	"github.com/hdfsio/webhdfs/uritools"

	http_ "github.com/hdfsio/webhdfs/http"
)

//go:generate go-option -type "Client"
type Client struct {
	httpClient func() http_.Client

	// entrypoint is the primary NameNode; alt is the standby NameNode, nil
	// unless HA failover is configured.
	entrypoint *url.URL
	alt        *url.URL

	natmap *natmap.Map
	rest   *restClient

	// options
	opts *Config
}

// New builds a Client for the NameNode at entrypoint (scheme + authority).
func New(entrypoint string, opts ...ClientOption) (*Client, error) {
	opts = append(opts, withEntrypoint(entrypoint))

	c := &Client{opts: NewConfig()}
	c.ApplyOptions(opts...)
	return c.opts.Complete().New()
}

// Request is the common surface of the per-operation request structs: the
// object path, the operation descriptor, the identity parameters and the
// operation arguments in declaration order.
type Request interface {
	RawPath() string
	Op() Op
	proxyUser() *ProxyUser
	authentication() *Authentication
	csrf() *CSRF
	httpRequest() *HttpRequest
	// args renders the operation's own query arguments onto q.
	args(q *uritools.QueryEncoder)
}

// PathAndQuery assembles the request path under the service mount point plus
// the full query string. Order is pinned: identity parameters (user.name,
// doas, delegation), then op, then the operation arguments.
func (c *Client) PathAndQuery(req Request) string {
	q := uritools.NewPathEncoder(PathPrefix).Extend(req.RawPath()).Query()

	pu := req.proxyUser().merged(ProxyUser{Username: c.opts.UserName, DoAs: c.opts.DoAs})
	if pu.Username != nil {
		q.AddString("user.name", *pu.Username)
	}
	if pu.DoAs != nil {
		q.AddString("doas", *pu.DoAs)
	}
	auth := req.authentication().merged(Authentication{Delegation: c.opts.DelegationToken})
	if auth.Delegation != nil {
		q.AddString("delegation", *auth.Delegation)
	}

	q.AddString("op", string(req.Op()))
	req.args(q)
	return q.Result()
}

// endpointURL resolves the base URL the given failover state points at. With
// no alternate entrypoint configured both states resolve to the primary, so
// the state can never name an entrypoint that does not exist.
func (c *Client) endpointURL(s FOState) *url.URL {
	if s == FOStateAlt && c.alt != nil {
		return c.alt
	}
	return c.entrypoint
}

// HasAlt reports whether an alternate entrypoint is configured.
func (c *Client) HasAlt() bool { return c.alt != nil }

// ProxyUser returns the client-level authenticated user, may be needed as 'user.name' to authenticate.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Authentication
func (c *Client) ProxyUser() ProxyUser {
	return ProxyUser{Username: c.opts.UserName, DoAs: c.opts.DoAs}
}

func isSuccessHttpCode(code int) bool {
	return code >= 200 && code <= 206
}

func isRedirectHttpCode(code int) bool {
	return code >= 300 && code <= 399
}
