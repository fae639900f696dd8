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

type ListStatusRequest struct {
	Authentication
	ProxyUser
	CSRF
	HttpRequest

	// Path of the directory to list.
	//
	// Path is a required field
	Path *string `validate:"required"`
}

type ListStatusResponse struct {
	// NameNode is the authority that served the request.
	NameNode string `json:"-"`

	FileStatuses FileStatuses `json:"FileStatuses"` // An array of FileStatus
}

func (req *ListStatusRequest) RawPath() string {
	return types.Value(req.Path)
}

func (req *ListStatusRequest) Op() Op { return OpListStatus }

func (req *ListStatusRequest) args(q *uritools.QueryEncoder) {}

// ListStatus lists the statuses of the files/directories in the given path.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#List_a_Directory
func (c *Client) ListStatus(req *ListStatusRequest) (*ListStatusResponse, error) {
	return c.ListStatusWithContext(context.Background(), req)
}

func (c *Client) ListStatusWithContext(ctx context.Context, req *ListStatusRequest) (*ListStatusResponse, error) {
	if ctx == nil {
		panic("nil context")
	}
	resp, _, err := c.listStatus(ctx, FOStatePrimary, req)
	return resp, err
}

func (c *Client) listStatus(ctx context.Context, state FOState, req *ListStatusRequest) (*ListStatusResponse, FOState, error) {
	if err := c.opts.Validator.Struct(req); err != nil {
		return nil, state, err
	}
	pq := c.PathAndQuery(req)

	var resp ListStatusResponse
	state, err := c.failover(state, func(base *url.URL) error {
		resp = ListStatusResponse{NameNode: base.Host}
		return c.rest.opJSON(ctx, req.Op().Method(), base.String()+pq, &resp, req.httpRequest(), req.csrf())
	})
	if err != nil {
		return nil, state, err
	}
	for i := range resp.FileStatuses.FileStatus {
		resp.FileStatuses.FileStatus[i].PathPrefix = types.Value(req.Path)
	}
	return &resp, state, nil
}
