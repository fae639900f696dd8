// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"context"
	"io"
	"net/url"

	"github.com/searKing/golang/go/exp/types"

	"github.com/hdfsio/webhdfs/uritools"
)

type AppendRequest struct {
	Authentication
	ProxyUser
	CSRF
	HttpRequest

	// Path of the object to append to.
	//
	// Path is a required field
	Path *string `validate:"required"`

	// Object data. Aggregated once up front so HA failover can resubmit the
	// identical bytes.
	Body io.Reader

	// Name				buffersize
	// Description		The size of the buffer used in transferring data.
	// Type				int
	// Default Value	Specified in the configuration.
	// Valid Values		> 0
	// Syntax			Any integer.
	BufferSize *int32
}

type AppendResponse struct {
	// NameNode is the authority that served phase one.
	NameNode string `json:"-"`
}

func (req *AppendRequest) RawPath() string {
	return types.Value(req.Path)
}

func (req *AppendRequest) Op() Op { return OpAppend }

func (req *AppendRequest) args(q *uritools.QueryEncoder) {
	if req.BufferSize != nil {
		q.AddInt("buffersize", int64(types.Value(req.BufferSize)))
	}
}

// Append to a File.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Append_to_a_File
func (c *Client) Append(req *AppendRequest) (*AppendResponse, error) {
	return c.AppendWithContext(context.Background(), req)
}

func (c *Client) AppendWithContext(ctx context.Context, req *AppendRequest) (*AppendResponse, error) {
	if ctx == nil {
		panic("nil context")
	}
	resp, _, err := c.append(ctx, FOStatePrimary, req)
	return resp, err
}

func (c *Client) append(ctx context.Context, state FOState, req *AppendRequest) (*AppendResponse, FOState, error) {
	if err := c.opts.Validator.Struct(req); err != nil {
		return nil, state, err
	}
	data, err := aggregateBody(req.Body)
	if err != nil {
		return nil, state, err
	}
	pq := c.PathAndQuery(req)

	var resp AppendResponse
	state, err = c.failover(state, func(base *url.URL) error {
		resp = AppendResponse{NameNode: base.Host}
		return c.rest.postBinary(ctx, req.Op().Method(), base.String()+pq, data, req.httpRequest(), req.csrf())
	})
	if err != nil {
		return nil, state, err
	}
	return &resp, state, nil
}
