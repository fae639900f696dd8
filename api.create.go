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

type CreateRequest struct {
	Authentication
	ProxyUser
	CSRF
	HttpRequest

	// Path of the object to create.
	//
	// Path is a required field
	Path *string `validate:"required"`

	// Object data. Aggregated once up front so HA failover can resubmit the
	// identical bytes; nil means an empty file.
	Body io.Reader

	// Name				overwrite
	// Description		If a file already exists, should it be overwritten?
	// Type				boolean
	// Default Value	false
	// Valid Values		true
	// Syntax			true
	Overwrite *bool
	// Name				blocksize
	// Description		The block size of a file.
	// Type				long
	// Default Value	Specified in the configuration.
	// Valid Values		> 0
	// Syntax			Any integer.
	Blocksize *int64
	// Name				replication
	// Description		The number of replications of a file.
	// Type				short
	// Default Value	Specified in the configuration.
	// Valid Values		> 0
	// Syntax			Any integer.
	Replication *int16
	// Name	permission
	// Description		The permission of a file/directory.
	// Type	Octal
	// Default Value	644 for files, 755 for directories
	// Valid Values		0 - 777
	// Syntax			Sent as exactly three octal digits; bits above 0777 (such as the sticky bit) are not sent.
	Permission *uint16
	// Name				buffersize
	// Description		The size of the buffer used in transferring data.
	// Type				int
	// Default Value	Specified in the configuration.
	// Valid Values		> 0
	// Syntax			Any integer.
	BufferSize *int32
}

type CreateResponse struct {
	// NameNode is the authority that served phase one.
	NameNode string `json:"-"`
}

func (req *CreateRequest) RawPath() string {
	return types.Value(req.Path)
}

func (req *CreateRequest) Op() Op { return OpCreate }

func (req *CreateRequest) args(q *uritools.QueryEncoder) {
	if req.Overwrite != nil {
		q.AddBool("overwrite", types.Value(req.Overwrite))
	}
	if req.Blocksize != nil {
		q.AddInt("blocksize", types.Value(req.Blocksize))
	}
	if req.Replication != nil {
		q.AddInt("replication", int64(types.Value(req.Replication)))
	}
	if req.Permission != nil {
		q.AddOctal("permission", types.Value(req.Permission))
	}
	if req.BufferSize != nil {
		q.AddInt("buffersize", int64(types.Value(req.BufferSize)))
	}
}

// Create and Write to a File.
// If no permissions are specified, the newly created file will be assigned with default 644 permission.
// Parent dirs are created automatically.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Create_and_Write_to_a_File
func (c *Client) Create(req *CreateRequest) (*CreateResponse, error) {
	return c.CreateWithContext(context.Background(), req)
}

func (c *Client) CreateWithContext(ctx context.Context, req *CreateRequest) (*CreateResponse, error) {
	if ctx == nil {
		panic("nil context")
	}
	resp, _, err := c.create(ctx, FOStatePrimary, req)
	return resp, err
}

func (c *Client) create(ctx context.Context, state FOState, req *CreateRequest) (*CreateResponse, FOState, error) {
	if err := c.opts.Validator.Struct(req); err != nil {
		return nil, state, err
	}
	data, err := aggregateBody(req.Body)
	if err != nil {
		return nil, state, err
	}
	pq := c.PathAndQuery(req)

	var resp CreateResponse
	state, err = c.failover(state, func(base *url.URL) error {
		resp = CreateResponse{NameNode: base.Host}
		return c.rest.postBinary(ctx, req.Op().Method(), base.String()+pq, data, req.httpRequest(), req.csrf())
	})
	if err != nil {
		return nil, state, err
	}
	return &resp, state, nil
}

// aggregateBody drains an optional request body into one resubmittable
// buffer.
func aggregateBody(r io.Reader) ([]byte, error) {
	if r == nil {
		return []byte{}, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapError(KindIO, err, "cannot read request body")
	}
	return data, nil
}
