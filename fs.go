// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/searKing/golang/go/exp/types"
)

// ReadHdfsFile reads an HDFS file through sequential, seekable byte-stream
// semantics. Each Read is one OPEN round trip asking for exactly the buffer's
// worth of bytes at the current position.
//
// All hdfs/webhdfs lengths and offsets are signed 64-bit integers, according
// to protocol specifications and JVM specifics (no unsigned).
type ReadHdfsFile struct {
	cx     *SyncHdfsClient
	path   string
	length int64
	pos    int64
}

// OpenHdfsFile opens the file specified by path for reading. The file is
// stat'ed once to learn its length; the position starts at zero.
func OpenHdfsFile(cx *SyncHdfsClient, path string) (*ReadHdfsFile, error) {
	stat, err := cx.Stat(path)
	if err != nil {
		return nil, err
	}
	if stat.FileStatus.Type != FileTypeFile {
		return nil, errorf(KindIO, "%s is not a file", path)
	}
	return &ReadHdfsFile{cx: cx, path: path, length: stat.FileStatus.Length}, nil
}

// Len returns the file length in bytes.
func (f *ReadHdfsFile) Len() int64 { return f.length }

// Read fills buf from the current position, draining the server stream until
// the buffer is full, the stream ends, or an error occurs. At end of file it
// returns 0, io.EOF.
func (f *ReadHdfsFile) Read(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	if f.pos >= f.length {
		return 0, io.EOF
	}

	rc, err := f.cx.Open(&OpenRequest{
		Path:   types.Pointer(f.path),
		Offset: types.Pointer(f.pos),
		Length: types.Pointer(int64(len(buf))),
	})
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	filled := 0
	for filled < len(buf) {
		n, err := rc.Read(buf[filled:])
		filled += n
		if err == io.EOF {
			break
		}
		if err != nil {
			f.pos += int64(filled)
			return filled, err
		}
	}
	f.pos += int64(filled)
	if filled == 0 {
		return 0, io.EOF
	}
	return filled, nil
}

// Seek sets the position for the next Read. Seeking before the start of the
// file or overflowing the position is invalid; seeking beyond the end leaves
// the position unchanged.
func (f *ReadHdfsFile) Seek(offset int64, whence int) (int64, error) {
	target := func(base, delta int64) (int64, error) {
		if delta > 0 && base > math.MaxInt64-delta {
			return 0, wrapError(KindIO, os.ErrInvalid, "seek position overflow")
		}
		p := base + delta
		switch {
		case p < 0:
			return 0, wrapError(KindIO, os.ErrInvalid, "attempt to seek before start")
		case p <= f.length:
			return p, nil
		default:
			// Beyond the end: defined here as a no-op.
			return f.pos, nil
		}
	}

	var pos int64
	var err error
	switch whence {
	case io.SeekStart:
		pos, err = target(0, offset)
	case io.SeekCurrent:
		pos, err = target(f.pos, offset)
	case io.SeekEnd:
		pos, err = target(f.length, offset)
	default:
		return f.pos, wrapError(KindIO, os.ErrInvalid, "unknown seek whence %d", whence)
	}
	if err != nil {
		return f.pos, err
	}
	f.pos = pos
	return f.pos, nil
}

// Close releases the handle. WebHDFS is stateless per request, so there is no
// server-side close handshake.
func (f *ReadHdfsFile) Close() error { return nil }

// WriteHdfsFile writes to an HDFS file through byte-stream semantics: the
// file is created empty and every Write is one APPEND carrying exactly the
// given bytes.
type WriteHdfsFile struct {
	cx         *SyncHdfsClient
	path       string
	bufferSize *int32
}

// CreateHdfsFile creates the file at path and returns a write handle.
// createReq may carry overwrite/blocksize/replication/permission options; its
// Path and Body are owned by this call.
func CreateHdfsFile(cx *SyncHdfsClient, path string, createReq *CreateRequest, bufferSize *int32) (*WriteHdfsFile, error) {
	if createReq == nil {
		createReq = &CreateRequest{}
	}
	createReq.Path = types.Pointer(path)
	createReq.Body = nil
	if err := cx.Create(createReq); err != nil {
		return nil, err
	}
	return &WriteHdfsFile{cx: cx, path: path, bufferSize: bufferSize}, nil
}

// AppendHdfsFile returns a write handle appending to an existing file.
func AppendHdfsFile(cx *SyncHdfsClient, path string, bufferSize *int32) *WriteHdfsFile {
	return &WriteHdfsFile{cx: cx, path: path, bufferSize: bufferSize}
}

// Write appends buf to the file. A success means the whole buffer is durable
// server-side; a short write cannot happen.
func (f *WriteHdfsFile) Write(buf []byte) (int, error) {
	err := f.cx.Append(&AppendRequest{
		Path:       types.Pointer(f.path),
		Body:       bytes.NewReader(buf),
		BufferSize: f.bufferSize,
	})
	if err != nil {
		return 0, err
	}
	return len(buf), nil
}

// Flush is a no-op; every Write is already durable when it returns.
func (f *WriteHdfsFile) Flush() error { return nil }

// Close releases the handle; there is no server-side handshake.
func (f *WriteHdfsFile) Close() error { return nil }
