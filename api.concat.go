// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"context"
	"net/url"
	"strings"

	"github.com/searKing/golang/go/exp/types"

	"github.com/hdfsio/webhdfs/uritools"
)

type ConcatRequest struct {
	Authentication
	ProxyUser
	CSRF
	HttpRequest

	// Path of the target file the sources are appended to.
	//
	// Path is a required field
	Path *string `validate:"required"`

	// Name				sources
	// Description		A list of source paths.
	// Type				String
	// Default Value	<empty>
	// Valid Values		A list of comma separated absolute FileSystem paths without scheme and authority.
	// Syntax			Any string.
	Sources []string `validate:"required,min=1"`
}

type ConcatResponse struct {
	// NameNode is the authority that served the request.
	NameNode string `json:"-"`
}

func (req *ConcatRequest) RawPath() string {
	return types.Value(req.Path)
}

func (req *ConcatRequest) Op() Op { return OpConcat }

func (req *ConcatRequest) args(q *uritools.QueryEncoder) {
	q.AddString("sources", strings.Join(req.Sources, ","))
}

// Concat(enate) File(s) onto the target path. Completes in one step against
// the NameNode; no redirect is involved.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Concat_File.28s.29
func (c *Client) Concat(req *ConcatRequest) (*ConcatResponse, error) {
	return c.ConcatWithContext(context.Background(), req)
}

func (c *Client) ConcatWithContext(ctx context.Context, req *ConcatRequest) (*ConcatResponse, error) {
	if ctx == nil {
		panic("nil context")
	}
	resp, _, err := c.concat(ctx, FOStatePrimary, req)
	return resp, err
}

func (c *Client) concat(ctx context.Context, state FOState, req *ConcatRequest) (*ConcatResponse, FOState, error) {
	if err := c.opts.Validator.Struct(req); err != nil {
		return nil, state, err
	}
	pq := c.PathAndQuery(req)

	var resp ConcatResponse
	state, err := c.failover(state, func(base *url.URL) error {
		resp = ConcatResponse{NameNode: base.Host}
		return c.rest.opEmpty(ctx, req.Op().Method(), base.String()+pq, req.httpRequest(), req.csrf())
	})
	if err != nil {
		return nil, state, err
	}
	return &resp, state, nil
}
