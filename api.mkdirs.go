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

type MkdirsRequest struct {
	Authentication
	ProxyUser
	CSRF
	HttpRequest

	// Path of the directory to make.
	//
	// Path is a required field
	Path *string `validate:"required"`

	// Name	permission
	// Description		The permission of a file/directory.
	// Type	Octal
	// Default Value	644 for files, 755 for directories
	// Valid Values		0 - 777
	// Syntax			Sent as exactly three octal digits; bits above 0777 (such as the sticky bit) are not sent.
	Permission *uint16
}

type MkdirsResponse struct {
	// NameNode is the authority that served the request.
	NameNode string `json:"-"`

	Boolean Boolean `json:"boolean"`
}

func (req *MkdirsRequest) RawPath() string {
	return types.Value(req.Path)
}

func (req *MkdirsRequest) Op() Op { return OpMkdirs }

func (req *MkdirsRequest) args(q *uritools.QueryEncoder) {
	if req.Permission != nil {
		q.AddOctal("permission", types.Value(req.Permission))
	}
}

// Make a Directory.
// If no permissions are specified, the newly created directory will have 755 permission as default.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Make_a_Directory
func (c *Client) Mkdirs(req *MkdirsRequest) (*MkdirsResponse, error) {
	return c.MkdirsWithContext(context.Background(), req)
}

func (c *Client) MkdirsWithContext(ctx context.Context, req *MkdirsRequest) (*MkdirsResponse, error) {
	if ctx == nil {
		panic("nil context")
	}
	resp, _, err := c.mkdirs(ctx, FOStatePrimary, req)
	return resp, err
}

func (c *Client) mkdirs(ctx context.Context, state FOState, req *MkdirsRequest) (*MkdirsResponse, FOState, error) {
	if err := c.opts.Validator.Struct(req); err != nil {
		return nil, state, err
	}
	pq := c.PathAndQuery(req)

	var resp MkdirsResponse
	state, err := c.failover(state, func(base *url.URL) error {
		resp = MkdirsResponse{NameNode: base.Host}
		return c.rest.opJSON(ctx, req.Op().Method(), base.String()+pq, &resp, req.httpRequest(), req.csrf())
	})
	if err != nil {
		return nil, state, err
	}
	return &resp, state, nil
}
