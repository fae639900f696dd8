// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"context"
	"net/url"
	"path"

	"github.com/searKing/golang/go/exp/types"

	"github.com/hdfsio/webhdfs/uritools"
)

type GetFileStatusRequest struct {
	Authentication
	ProxyUser
	CSRF
	HttpRequest

	// Path of the object to stat.
	//
	// Path is a required field
	Path *string `validate:"required"`
}

type GetFileStatusResponse struct {
	// NameNode is the authority that served the request.
	NameNode string `json:"-"`

	FileStatus FileStatus `json:"FileStatus"`
}

func (req *GetFileStatusRequest) RawPath() string {
	return types.Value(req.Path)
}

func (req *GetFileStatusRequest) Op() Op { return OpGetFileStatus }

func (req *GetFileStatusRequest) args(q *uritools.QueryEncoder) {}

// GetFileStatus returns the status of a file/directory.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Status_of_a_File.2FDirectory
func (c *Client) GetFileStatus(req *GetFileStatusRequest) (*GetFileStatusResponse, error) {
	return c.GetFileStatusWithContext(context.Background(), req)
}

func (c *Client) GetFileStatusWithContext(ctx context.Context, req *GetFileStatusRequest) (*GetFileStatusResponse, error) {
	if ctx == nil {
		panic("nil context")
	}
	resp, _, err := c.getFileStatus(ctx, FOStatePrimary, req)
	return resp, err
}

func (c *Client) getFileStatus(ctx context.Context, state FOState, req *GetFileStatusRequest) (*GetFileStatusResponse, FOState, error) {
	if err := c.opts.Validator.Struct(req); err != nil {
		return nil, state, err
	}
	pq := c.PathAndQuery(req)

	var resp GetFileStatusResponse
	state, err := c.failover(state, func(base *url.URL) error {
		resp = GetFileStatusResponse{NameNode: base.Host}
		return c.rest.opJSON(ctx, req.Op().Method(), base.String()+pq, &resp, req.httpRequest(), req.csrf())
	})
	if err != nil {
		return nil, state, err
	}
	// GETFILESTATUS returns an empty pathSuffix; recover the name from the
	// requested path so FileStatus keeps satisfying os.FileInfo.
	resp.FileStatus.PathPrefix = path.Dir(types.Value(req.Path))
	if resp.FileStatus.PathSuffix == "" {
		resp.FileStatus.PathSuffix = path.Base(types.Value(req.Path))
	}
	return &resp, state, nil
}
