// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"context"
	"net/url"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/searKing/golang/go/exp/types"

	"github.com/hdfsio/webhdfs/uritools"
)

type OpenRequest struct {
	Authentication
	ProxyUser
	CSRF
	HttpRequest

	// Path of the object to get.
	//
	// Path is a required field
	Path *string `validate:"required"`

	// Name				offset
	// Description		The starting byte position.
	// Type				long
	// Default Value	0
	// Valid Values		>= 0
	// Syntax			Any integer.
	Offset *int64
	// Name				length
	// Description		The number of bytes to be processed.
	// Type				long
	// Default Value	null (means the entire file)
	// Valid Values		>= 0 or null
	// Syntax			Any integer.
	Length *int64
	// Name				buffersize
	// Description		The size of the buffer used in transferring data.
	// Type				int
	// Default Value	Specified in the configuration.
	// Valid Values		> 0
	// Syntax			Any integer.
	BufferSize *int32
}

type OpenResponse struct {
	// NameNode is the authority that served phase one.
	NameNode string `json:"-"`
	// HttpResponse of the DataNode transfer; Body is the lazy byte stream
	// and must be closed by the caller.
	HttpResponse
}

func (req *OpenRequest) RawPath() string {
	return types.Value(req.Path)
}

func (req *OpenRequest) Op() Op { return OpOpen }

func (req *OpenRequest) args(q *uritools.QueryEncoder) {
	if req.Offset != nil {
		q.AddInt("offset", types.Value(req.Offset))
	}
	if req.Length != nil {
		q.AddInt("length", types.Value(req.Length))
	}
	if req.BufferSize != nil {
		q.AddInt("buffersize", int64(types.Value(req.BufferSize)))
	}
}

// Open and Read a File.
// Phase one hits the NameNode and must answer a 307 whose Location names the
// DataNode; phase two streams the bytes from there, after NAT translation.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Open_and_Read_a_File
func (c *Client) Open(req *OpenRequest) (*OpenResponse, error) {
	return c.OpenWithContext(context.Background(), req)
}

func (c *Client) OpenWithContext(ctx context.Context, req *OpenRequest) (*OpenResponse, error) {
	if ctx == nil {
		panic("nil context")
	}
	resp, _, err := c.open(ctx, FOStatePrimary, req)
	return resp, err
}

func (c *Client) open(ctx context.Context, state FOState, req *OpenRequest) (*OpenResponse, FOState, error) {
	if err := c.opts.Validator.Struct(req); err != nil {
		return nil, state, err
	}
	pq := c.PathAndQuery(req)

	var resp OpenResponse
	state, err := c.failover(state, func(base *url.URL) error {
		rc, httpResp, err := c.rest.getBinary(ctx, base.String()+pq, req.httpRequest(), req.csrf())
		if err != nil {
			return err
		}
		resp = OpenResponse{NameNode: base.Host}
		resp.Body = rc
		resp.ContentLength = aws.Int64(httpResp.ContentLength)
		if ct := httpResp.Header.Get("Content-Type"); ct != "" {
			resp.ContentType = aws.String(ct)
		}
		return nil
	})
	if err != nil {
		return nil, state, err
	}
	return &resp, state, nil
}
