// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"

	strings_ "github.com/searKing/golang/go/strings"
	"go.uber.org/zap"

	"github.com/hdfsio/webhdfs/natmap"

	http_ "github.com/hdfsio/webhdfs/http"
)

// expectedContentType declares the response shape an operation requires.
type expectedContentType int

const (
	// rctNone: response must be empty, without a content type.
	rctNone expectedContentType = iota
	// rctJSON: response must be application/json, optional charset=utf-8.
	rctJSON
	// rctBinary: response must be application/octet-stream.
	rctBinary
)

func (t expectedContentType) String() string {
	switch t {
	case rctJSON:
		return mimeApplicationJSON
	case rctBinary:
		return mimeApplicationOctetStream
	default:
		return "none"
	}
}

const (
	mimeApplicationJSON        = "application/json"
	mimeApplicationOctetStream = "application/octet-stream"
)

// restClient executes single WebHDFS round trips and the two-phase redirect
// dance on top of the configured transport. It holds no per-request state and
// is safe for concurrent use.
type restClient struct {
	httpClient func() http_.Client
	natmap     *natmap.Map
	logger     *zap.Logger
}

// exchange performs one HTTP round trip. A non-nil payload is sent as
// application/octet-stream with a known length so HttpFS accepts it.
// See https://issues.cloudera.org/browse/HUE-679
func (c *restClient) exchange(ctx context.Context, method, u string, payload []byte, hr *HttpRequest, csrf *CSRF) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, wrapError(KindURIBuild, err, "cannot build %s %s", method, u)
	}
	if hr != nil {
		httpReq.Close = hr.Close
	}
	if csrf != nil && csrf.XXsrfHeader != nil {
		httpReq.Header.Set("X-XSRF-HEADER", *csrf.XXsrfHeader)
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", mimeApplicationOctetStream)
		httpReq.ContentLength = int64(len(payload))
	}
	if hr != nil && hr.PreSendHandler != nil {
		httpReq, err = hr.PreSendHandler(httpReq)
		if err != nil {
			return nil, annotate(err, "pre send handled")
		}
	}

	c.logger.Debug("webhdfs request", zap.String("method", method), zap.String("url", u))
	httpResp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, wrapError(KindTransport, err, "%s %s", method, u)
	}
	c.logger.Debug("webhdfs response",
		zap.String("method", method),
		zap.String("url", u),
		zap.Int("status", httpResp.StatusCode),
		zap.String("content-type", httpResp.Header.Get("Content-Type")),
		zap.Int64("content-length", httpResp.ContentLength))
	return httpResp, nil
}

// redirectFilter turns a 3xx response into the HttpRedirect signal. Any other
// response passes through untouched.
func redirectFilter(resp *http.Response) error {
	if !isRedirectHttpCode(resp.StatusCode) {
		return nil
	}
	defer drain(resp)
	location := resp.Header.Get("Location")
	if location == "" {
		return errorf(KindGeneric, "Redirect without Location header")
	}
	for i := 0; i < len(location); i++ {
		if location[i] < 0x20 || location[i] >= 0x7f {
			return errorf(KindHeaderDecode, "non-ASCII Location header %q", location)
		}
	}
	return &Error{
		Kind:  KindHTTPRedirect,
		Cause: &HttpRedirect{StatusCode: resp.StatusCode, Location: location},
	}
}

// contentTypeOf parses the Content-Type header. An absent header yields the
// empty string.
func contentTypeOf(resp *http.Response) (mediatype string, params map[string]string, err error) {
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		return "", nil, nil
	}
	mediatype, params, err = mime.ParseMediaType(ct)
	if err != nil {
		return "", nil, wrapError(KindMimeDecode, err, "malformed Content-Type %q", ct)
	}
	return mediatype, params, nil
}

func matchContentType(mediatype string, params map[string]string, required expectedContentType) bool {
	switch required {
	case rctJSON:
		if mediatype != mimeApplicationJSON {
			return false
		}
		cs, ok := params["charset"]
		return !ok || cs == "utf-8"
	case rctBinary:
		return mediatype == mimeApplicationOctetStream
	default:
		return mediatype == ""
	}
}

// classify enforces the expected content type on success and decodes failure
// statuses: a JSON body becomes the RemoteException it carries, anything
// else a generic remote error. The response body is consumed on every path
// except a successful match.
func (c *restClient) classify(resp *http.Response, required expectedContentType) (*http.Response, error) {
	mediatype, params, err := contentTypeOf(resp)
	if err != nil {
		drain(resp)
		return nil, err
	}

	if isSuccessHttpCode(resp.StatusCode) {
		if matchContentType(mediatype, params, required) {
			return resp, nil
		}
		drain(resp)
		return nil, errorf(KindGeneric,
			"Invalid content type: required='%s' found='%s'", required, mediatype)
	}

	defer drain(resp)
	if !matchContentType(mediatype, params, rctJSON) {
		return nil, errorf(KindGeneric, "remote error w/o JSON content: status=%d %s",
			resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(KindTransport, err, "error response aggregation")
	}
	var rer RemoteExceptionResponse
	if err := json.Unmarshal(body, &rer); err != nil || rer.RemoteException == nil {
		return nil, wrapError(KindJSONDecode, err, "error response decode, recovered text: '%s'",
			strings_.Truncate(string(body), MaxHTTPBodyLengthDumped))
	}
	return nil, &Error{Kind: KindRemoteException, Cause: rer.RemoteException}
}

// decodeJSON aggregates the body and deserializes it into out.
func decodeJSON(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapError(KindTransport, err, "JSON body aggregation")
	}
	if err := json.Unmarshal(body, out); err != nil {
		return wrapError(KindJSONDecode, err, "parse %s",
			strings_.Truncate(string(body), MaxHTTPBodyLengthDumped))
	}
	return nil
}

// decodeEmpty aggregates the body and fails when any bytes arrive.
func decodeEmpty(resp *http.Response) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapError(KindTransport, err, "empty body aggregation")
	}
	if len(body) != 0 {
		return errorf(KindGeneric, "Unexpected non-empty response received, where empty is expected")
	}
	return nil
}

// binaryReader exposes the body as a lazy byte stream whose read failures are
// annotated per chunk.
type binaryReader struct {
	rc io.ReadCloser
}

func (r *binaryReader) Read(p []byte) (int, error) {
	n, err := r.rc.Read(p)
	if err != nil && err != io.EOF {
		err = wrapError(KindTransport, err, "Binary stream read error")
	}
	return n, err
}

func (r *binaryReader) Close() error { return r.rc.Close() }

// drain discards and closes the response body so the connection can be
// reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	_ = resp.Body.Close()
}

// redirect runs phase one of a two-step operation: the NameNode must answer
// 3xx, whose Location is parsed and NAT-translated into the DataNode URL for
// phase two. An error status is decoded normally (so a StandbyException can
// drive failover); a success status is a protocol violation.
func (c *restClient) redirect(ctx context.Context, method, u string, hr *HttpRequest, csrf *CSRF) (string, error) {
	resp, err := c.exchange(ctx, method, u, nil, hr, csrf)
	if err != nil {
		return "", err
	}
	if err := redirectFilter(resp); err != nil {
		redir, ok := AsHttpRedirect(err)
		if !ok {
			return "", err
		}
		location, err := url.Parse(redir.Location)
		if err != nil {
			return "", wrapError(KindURIParse, err,
				"Cannot parse location URI returned by redirect")
		}
		return c.natmap.Translate(location).String(), nil
	}

	if _, err := c.classify(resp, rctNone); err != nil {
		return "", err
	}
	drain(resp)
	return "", errorf(KindGeneric,
		"Expected redirect, found non-redirect response status=%d", resp.StatusCode)
}

// onePhase issues a single-step request against the NameNode and classifies
// the result. A redirect here is a protocol violation.
func (c *restClient) onePhase(ctx context.Context, method, u string, required expectedContentType, hr *HttpRequest, csrf *CSRF) (*http.Response, error) {
	resp, err := c.exchange(ctx, method, u, nil, hr, csrf)
	if err != nil {
		return nil, err
	}
	if err := redirectFilter(resp); err != nil {
		if redir, ok := AsHttpRedirect(err); ok {
			return nil, errorf(KindGeneric, "unexpected redirect %d to %s",
				redir.StatusCode, redir.Location)
		}
		return nil, err
	}
	return c.classify(resp, required)
}

// opJSON: one-step operation with a JSON result.
func (c *restClient) opJSON(ctx context.Context, method, u string, out interface{}, hr *HttpRequest, csrf *CSRF) error {
	resp, err := c.onePhase(ctx, method, u, rctJSON, hr, csrf)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

// opEmpty: one-step operation with an empty result.
func (c *restClient) opEmpty(ctx context.Context, method, u string, hr *HttpRequest, csrf *CSRF) error {
	resp, err := c.onePhase(ctx, method, u, rctNone, hr, csrf)
	if err != nil {
		return err
	}
	return decodeEmpty(resp)
}

// getBinary: two-step read returning the phase-two body as a lazy stream.
func (c *restClient) getBinary(ctx context.Context, u string, hr *HttpRequest, csrf *CSRF) (io.ReadCloser, *http.Response, error) {
	location, err := c.redirect(ctx, http.MethodGet, u, hr, csrf)
	if err != nil {
		return nil, nil, err
	}
	resp, err := c.onePhase(ctx, http.MethodGet, location, rctBinary, hr, csrf)
	if err != nil {
		return nil, nil, err
	}
	return &binaryReader{rc: resp.Body}, resp, nil
}

// postBinary: two-step write. Phase one carries no body; a phase-one failure
// therefore wraps the untransmitted payload so HA failover can resubmit it
// byte-identically.
func (c *restClient) postBinary(ctx context.Context, method, u string, data []byte, hr *HttpRequest, csrf *CSRF) error {
	location, err := c.redirect(ctx, method, u, hr, csrf)
	if err != nil {
		return &DataError{Err: err, Data: data}
	}
	resp, err := c.exchange(ctx, method, location, data, hr, csrf)
	if err != nil {
		return err
	}
	if err := redirectFilter(resp); err != nil {
		if redir, ok := AsHttpRedirect(err); ok {
			return errorf(KindGeneric, "unexpected redirect %d to %s on data phase",
				redir.StatusCode, redir.Location)
		}
		return err
	}
	filtered, err := c.classify(resp, rctNone)
	if err != nil {
		return err
	}
	return decodeEmpty(filtered)
}
