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

type RenameRequest struct {
	Authentication
	ProxyUser
	CSRF
	HttpRequest

	// Path of the object to rename.
	//
	// Path is a required field
	Path *string `validate:"required"`

	// Name				destination
	// Description		The destination path.
	// Type				Path
	// Default Value	<empty> (an invalid path)
	// Syntax			Any path.
	//
	// Destination is a required field
	Destination *string `validate:"required"`
}

type RenameResponse struct {
	// NameNode is the authority that served the request.
	NameNode string `json:"-"`

	Boolean Boolean `json:"boolean"`
}

func (req *RenameRequest) RawPath() string {
	return types.Value(req.Path)
}

func (req *RenameRequest) Op() Op { return OpRename }

func (req *RenameRequest) args(q *uritools.QueryEncoder) {
	q.AddString("destination", types.Value(req.Destination))
}

// Rename a File/Directory.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Rename_a_File.2FDirectory
func (c *Client) Rename(req *RenameRequest) (*RenameResponse, error) {
	return c.RenameWithContext(context.Background(), req)
}

func (c *Client) RenameWithContext(ctx context.Context, req *RenameRequest) (*RenameResponse, error) {
	if ctx == nil {
		panic("nil context")
	}
	resp, _, err := c.rename(ctx, FOStatePrimary, req)
	return resp, err
}

func (c *Client) rename(ctx context.Context, state FOState, req *RenameRequest) (*RenameResponse, FOState, error) {
	if err := c.opts.Validator.Struct(req); err != nil {
		return nil, state, err
	}
	pq := c.PathAndQuery(req)

	var resp RenameResponse
	state, err := c.failover(state, func(base *url.URL) error {
		resp = RenameResponse{NameNode: base.Host}
		return c.rest.opJSON(ctx, req.Op().Method(), base.String()+pq, &resp, req.httpRequest(), req.csrf())
	})
	if err != nil {
		return nil, state, err
	}
	return &resp, state, nil
}
