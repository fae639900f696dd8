// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import "net/http"

// PathPrefix is the WebHDFS service mount point every request path lives
// under.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html
const PathPrefix = "/webhdfs/v1"

// MaxHTTPBodyLengthDumped caps how much of an undecodable response body is
// echoed into error messages.
const MaxHTTPBodyLengthDumped = 1024

// Op names a WebHDFS operation, as passed in the `op=` query parameter.
type Op string

const (
	OpListStatus    Op = "LISTSTATUS"
	OpGetFileStatus Op = "GETFILESTATUS"
	OpOpen          Op = "OPEN"
	OpCreate        Op = "CREATE"
	OpAppend        Op = "APPEND"
	OpConcat        Op = "CONCAT"
	OpMkdirs        Op = "MKDIRS"
	OpRename        Op = "RENAME"
	OpCreateSymlink Op = "CREATESYMLINK"
	OpDelete        Op = "DELETE"
)

// Method returns the HTTP method the operation is issued with: GET for
// read/list/stat, PUT for create/mkdirs/rename/symlink, POST for
// append/concat, DELETE for delete.
func (op Op) Method() string {
	switch op {
	case OpListStatus, OpGetFileStatus, OpOpen:
		return http.MethodGet
	case OpCreate, OpMkdirs, OpRename, OpCreateSymlink:
		return http.MethodPut
	case OpAppend, OpConcat:
		return http.MethodPost
	case OpDelete:
		return http.MethodDelete
	default:
		return http.MethodGet
	}
}

// TwoStep reports whether the operation is a two-phase data operation that
// must follow a 307 Location to a DataNode.
func (op Op) TwoStep() bool {
	switch op {
	case OpOpen, OpCreate, OpAppend:
		return true
	default:
		return false
	}
}
