// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind tags every failure the library can produce.
type ErrorKind int

const (
	// KindGeneric is a static or formatted message, possibly with a cause.
	KindGeneric ErrorKind = iota
	// KindTransport covers socket, TLS and HTTP framing failures.
	KindTransport
	// KindHeaderDecode marks a non-ASCII or otherwise undecodable header.
	KindHeaderDecode
	// KindMimeDecode marks a malformed Content-Type header.
	KindMimeDecode
	// KindJSONDecode marks a payload that was not the expected JSON shape.
	KindJSONDecode
	// KindConfigDecode marks an unreadable or unparsable configuration file.
	KindConfigDecode
	// KindURIBuild marks a bad URL construction.
	KindURIBuild
	// KindURIParse marks an unparsable URL, e.g. a returned Location.
	KindURIParse
	// KindIO is a local filesystem error passed through by the file handles.
	KindIO
	// KindRemoteException is a server-side JSON error response.
	KindRemoteException
	// KindHTTPRedirect is the internal 3xx signal consumed by the redirect
	// driver; it never surfaces to callers.
	KindHTTPRedirect
	// KindTimeout marks an exceeded per-operation wall clock.
	KindTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHeaderDecode:
		return "header decode"
	case KindMimeDecode:
		return "mime decode"
	case KindJSONDecode:
		return "json decode"
	case KindConfigDecode:
		return "config decode"
	case KindURIBuild:
		return "uri build"
	case KindURIParse:
		return "uri parse"
	case KindIO:
		return "io"
	case KindRemoteException:
		return "remote exception"
	case KindHTTPRedirect:
		return "http redirect"
	case KindTimeout:
		return "timeout"
	default:
		return "generic"
	}
}

// Error is the library's tagged error. Lower layers prepend message
// annotations on the way up; the original cause stays reachable through
// errors.Unwrap/Is/As.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Cause != nil:
		return fmt.Sprintf("webhdfs: %s: %s", e.Msg, e.Cause)
	case e.Msg != "":
		return "webhdfs: " + e.Msg
	case e.Cause != nil:
		return fmt.Sprintf("webhdfs: %s: %s", e.Kind, e.Cause)
	default:
		return "webhdfs: " + e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// annotate prepends context to err, preserving its kind.
func annotate(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindOf(err), Msg: fmt.Sprintf(format, args...), Cause: err}
}

// KindOf extracts the ErrorKind of err, or KindGeneric for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var re *RemoteException
	if errors.As(err, &re) {
		return KindRemoteException
	}
	var hr *HttpRedirect
	if errors.As(err, &hr) {
		return KindHTTPRedirect
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindGeneric
}

// HttpRedirect carries a 3xx status and its Location. The request engine
// produces it instead of a success so phase one of a two-step operation pipes
// directly into the redirect driver.
type HttpRedirect struct {
	StatusCode int
	Location   string
}

func (e *HttpRedirect) Error() string {
	return fmt.Sprintf("HTTP redirect %d %s", e.StatusCode, e.Location)
}

// AsHttpRedirect unwraps err into the redirect signal, if it is one.
func AsHttpRedirect(err error) (*HttpRedirect, bool) {
	var hr *HttpRedirect
	if errors.As(err, &hr) {
		return hr, true
	}
	return nil, false
}

// DataError is a write failure that still holds the unsent payload, so HA
// failover can resubmit the identical bytes. Only data-carrying operations
// produce it; reads never wrap data.
type DataError struct {
	Err  error
	Data []byte
}

func (e *DataError) Error() string { return e.Err.Error() }

func (e *DataError) Unwrap() error { return e.Err }

// dropData strips the payload off a write failure once it is no longer
// resubmittable.
func dropData(err error) error {
	var de *DataError
	if errors.As(err, &de) {
		return de.Err
	}
	return err
}

// IsStandbyException reports whether err is the remote exception WebHDFS
// raises when a request lands on a standby NameNode.
func IsStandbyException(err error) bool {
	var re *RemoteException
	return errors.As(err, &re) && re.Exception == exceptionStandby
}

const exceptionStandby = "StandbyException"

// timeoutOrErr rewraps a context deadline expiry as a Timeout error.
func timeoutOrErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctx.Err() == context.DeadlineExceeded {
		return wrapError(KindTimeout, dropData(err), "operation timed out")
	}
	return err
}
