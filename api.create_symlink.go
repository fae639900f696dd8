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

type CreateSymlinkRequest struct {
	Authentication
	ProxyUser
	CSRF
	HttpRequest

	// Path of the symlink to create.
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

	// Name				createParent
	// Description		If the parent directories should be created.
	// Type				boolean
	// Default Value	false
	// Valid Values		true|false
	// Syntax			Any Bool.
	CreateParent *bool
}

type CreateSymlinkResponse struct {
	// NameNode is the authority that served the request.
	NameNode string `json:"-"`
}

func (req *CreateSymlinkRequest) RawPath() string {
	return types.Value(req.Path)
}

func (req *CreateSymlinkRequest) Op() Op { return OpCreateSymlink }

func (req *CreateSymlinkRequest) args(q *uritools.QueryEncoder) {
	q.AddString("destination", types.Value(req.Destination))
	if req.CreateParent != nil {
		q.AddBool("createParent", types.Value(req.CreateParent))
	}
}

// Create a Symbolic Link.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Create_a_Symbolic_Link
func (c *Client) CreateSymlink(req *CreateSymlinkRequest) (*CreateSymlinkResponse, error) {
	return c.CreateSymlinkWithContext(context.Background(), req)
}

func (c *Client) CreateSymlinkWithContext(ctx context.Context, req *CreateSymlinkRequest) (*CreateSymlinkResponse, error) {
	if ctx == nil {
		panic("nil context")
	}
	resp, _, err := c.createSymlink(ctx, FOStatePrimary, req)
	return resp, err
}

func (c *Client) createSymlink(ctx context.Context, state FOState, req *CreateSymlinkRequest) (*CreateSymlinkResponse, FOState, error) {
	if err := c.opts.Validator.Struct(req); err != nil {
		return nil, state, err
	}
	pq := c.PathAndQuery(req)

	var resp CreateSymlinkResponse
	state, err := c.failover(state, func(base *url.URL) error {
		resp = CreateSymlinkResponse{NameNode: base.Host}
		return c.rest.opEmpty(ctx, req.Op().Method(), base.String()+pq, req.httpRequest(), req.csrf())
	})
	if err != nil {
		return nil, state, err
	}
	return &resp, state, nil
}
