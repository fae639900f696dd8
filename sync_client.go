// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"context"
	"io"
	"time"

	"github.com/searKing/golang/go/exp/types"
)

// SyncHdfsClient is the blocking façade over Client. Every call runs under
// the configured default timeout and memoizes which NameNode answered, so
// after one HA failover the next operation goes directly to the active node.
//
// A SyncHdfsClient is not safe for concurrent use; hold one per goroutine.
// Many of them may share the underlying Client.
type SyncHdfsClient struct {
	acx     *Client
	fostate FOState
	timeout time.Duration
}

// NewSyncClient wraps an async Client into the blocking façade.
func NewSyncClient(acx *Client) *SyncHdfsClient {
	return &SyncHdfsClient{
		acx:     acx,
		fostate: FOStatePrimary,
		timeout: acx.opts.DefaultTimeout,
	}
}

// FOState reports the memoized failover state.
func (s *SyncHdfsClient) FOState() FOState { return s.fostate }

func (s *SyncHdfsClient) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Dir lists a directory.
func (s *SyncHdfsClient) Dir(path string) (*ListStatusResponse, error) {
	ctx, cancel := s.opContext()
	defer cancel()
	resp, state, err := s.acx.listStatus(ctx, s.fostate, &ListStatusRequest{Path: types.Pointer(path)})
	s.fostate = state
	if err != nil {
		return nil, timeoutOrErr(ctx, err)
	}
	return resp, nil
}

// Stat returns the status of a file or directory.
func (s *SyncHdfsClient) Stat(path string) (*GetFileStatusResponse, error) {
	ctx, cancel := s.opContext()
	defer cancel()
	resp, state, err := s.acx.getFileStatus(ctx, s.fostate, &GetFileStatusRequest{Path: types.Pointer(path)})
	s.fostate = state
	if err != nil {
		return nil, timeoutOrErr(ctx, err)
	}
	return resp, nil
}

// Open starts reading a file. The returned stream owns the operation
// deadline: it stays armed until Close, and an expiry surfaces as a Timeout
// on the next Read.
func (s *SyncHdfsClient) Open(req *OpenRequest) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	resp, state, err := s.acx.open(ctx, s.fostate, req)
	s.fostate = state
	if err != nil {
		cancel()
		return nil, timeoutOrErr(ctx, err)
	}
	return &deadlineReadCloser{rc: resp.Body, ctx: ctx, cancel: cancel}, nil
}

// Create creates a file. req.Body may be nil for an empty file.
func (s *SyncHdfsClient) Create(req *CreateRequest) error {
	ctx, cancel := s.opContext()
	defer cancel()
	_, state, err := s.acx.create(ctx, s.fostate, req)
	s.fostate = state
	return timeoutOrErr(ctx, err)
}

// Append appends req.Body to an existing file.
func (s *SyncHdfsClient) Append(req *AppendRequest) error {
	ctx, cancel := s.opContext()
	defer cancel()
	_, state, err := s.acx.append(ctx, s.fostate, req)
	s.fostate = state
	return timeoutOrErr(ctx, err)
}

// Concat concatenates sources onto path.
func (s *SyncHdfsClient) Concat(path string, sources []string) error {
	ctx, cancel := s.opContext()
	defer cancel()
	_, state, err := s.acx.concat(ctx, s.fostate, &ConcatRequest{Path: types.Pointer(path), Sources: sources})
	s.fostate = state
	return timeoutOrErr(ctx, err)
}

// Mkdirs makes a directory.
func (s *SyncHdfsClient) Mkdirs(req *MkdirsRequest) (bool, error) {
	ctx, cancel := s.opContext()
	defer cancel()
	resp, state, err := s.acx.mkdirs(ctx, s.fostate, req)
	s.fostate = state
	if err != nil {
		return false, timeoutOrErr(ctx, err)
	}
	return resp.Boolean, nil
}

// Rename moves a file or directory.
func (s *SyncHdfsClient) Rename(path, destination string) (bool, error) {
	ctx, cancel := s.opContext()
	defer cancel()
	resp, state, err := s.acx.rename(ctx, s.fostate, &RenameRequest{
		Path:        types.Pointer(path),
		Destination: types.Pointer(destination),
	})
	s.fostate = state
	if err != nil {
		return false, timeoutOrErr(ctx, err)
	}
	return resp.Boolean, nil
}

// CreateSymlink creates a symbolic link.
func (s *SyncHdfsClient) CreateSymlink(req *CreateSymlinkRequest) error {
	ctx, cancel := s.opContext()
	defer cancel()
	_, state, err := s.acx.createSymlink(ctx, s.fostate, req)
	s.fostate = state
	return timeoutOrErr(ctx, err)
}

// Delete removes a file or directory.
func (s *SyncHdfsClient) Delete(req *DeleteRequest) (bool, error) {
	ctx, cancel := s.opContext()
	defer cancel()
	resp, state, err := s.acx.delete(ctx, s.fostate, req)
	s.fostate = state
	if err != nil {
		return false, timeoutOrErr(ctx, err)
	}
	return resp.Boolean, nil
}

// GetFile reads remote and writes it to output. Each underlying read is one
// timed operation, so the wall clock bounds chunks rather than whole files.
func (s *SyncHdfsClient) GetFile(remote string, output io.Writer) error {
	f, err := OpenHdfsFile(s, remote)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(output, f); err != nil {
		return annotate(err, "get %s", remote)
	}
	return nil
}

// deadlineReadCloser ties the operation deadline to the life of the stream.
type deadlineReadCloser struct {
	rc     io.ReadCloser
	ctx    context.Context
	cancel context.CancelFunc
}

func (r *deadlineReadCloser) Read(p []byte) (int, error) {
	n, err := r.rc.Read(p)
	if err != nil && err != io.EOF {
		err = timeoutOrErr(r.ctx, err)
	}
	return n, err
}

func (r *deadlineReadCloser) Close() error {
	defer r.cancel()
	return r.rc.Close()
}
