// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"context"
	"net/url"

	"github.com/searKing/golang/go/exp/types"

	"github.com/hdfsio/webhdfs/uritools"
)

type DeleteRequest struct {
	Authentication
	ProxyUser
	CSRF
	HttpRequest

	// Path of the object to delete.
	//
	// Path is a required field
	Path *string `validate:"required"`

	// Name				recursive
	// Description		Should the operation act on the content in the subdirectories?
	// Type				boolean
	// Default Value	false
	// Valid Values		true|false
	// Syntax			Any Bool.
	Recursive *bool
}

type DeleteResponse struct {
	// NameNode is the authority that served the request.
	NameNode string `json:"-"`

	Boolean Boolean `json:"boolean"`
}

func (req *DeleteRequest) RawPath() string {
	return types.Value(req.Path)
}

func (req *DeleteRequest) Op() Op { return OpDelete }

func (req *DeleteRequest) args(q *uritools.QueryEncoder) {
	if req.Recursive != nil {
		q.AddBool("recursive", types.Value(req.Recursive))
	}
}

// Delete a File/Directory.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Delete_a_File.2FDirectory
func (c *Client) Delete(req *DeleteRequest) (*DeleteResponse, error) {
	return c.DeleteWithContext(context.Background(), req)
}

func (c *Client) DeleteWithContext(ctx context.Context, req *DeleteRequest) (*DeleteResponse, error) {
	if ctx == nil {
		panic("nil context")
	}
	resp, _, err := c.delete(ctx, FOStatePrimary, req)
	return resp, err
}

func (c *Client) delete(ctx context.Context, state FOState, req *DeleteRequest) (*DeleteResponse, FOState, error) {
	if err := c.opts.Validator.Struct(req); err != nil {
		return nil, state, err
	}
	pq := c.PathAndQuery(req)

	var resp DeleteResponse
	state, err := c.failover(state, func(base *url.URL) error {
		resp = DeleteResponse{NameNode: base.Host}
		return c.rest.opJSON(ctx, req.Op().Method(), base.String()+pq, &resp, req.httpRequest(), req.csrf())
	})
	if err != nil {
		return nil, state, err
	}
	return &resp, state, nil
}
