package webhdfs

import (
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
)

// HttpRequest carries transport-level knobs shared by every operation
// request.
type HttpRequest struct {
	// Close indicates whether to close the connection after sending this
	// request and reading its response.
	//
	// some proxy does not support reuse connection, set Close true to disable it.
	Close bool

	// PreSendHandler, when set, may inspect or replace the outgoing
	// *http.Request just before it is sent. Applies to both phases of a
	// two-step operation.
	PreSendHandler func(req *http.Request) (*http.Request, error)
}

func (r *HttpRequest) httpRequest() *HttpRequest { return r }

// HttpResponse mirrors the interesting transport-level fields of a WebHDFS
// response.
type HttpResponse struct {
	// Object data.
	// We guarantee that Body is always non-nil, even on responses without a body or responses with
	// a zero-length body. It is the caller's responsibility to close Body.
	Body io.ReadCloser

	// Size of the body in bytes, -1 when unknown.
	ContentLength *int64

	// A standard MIME type describing the format of the object data.
	ContentType *string
}

func (resp *HttpResponse) UnmarshalHTTP(httpResp *http.Response) {
	resp.ContentLength = aws.Int64(httpResp.ContentLength)
	if ct := httpResp.Header.Get("Content-Type"); ct != "" {
		resp.ContentType = aws.String(ct)
	}

	resp.Body = httpResp.Body
	httpResp.Body = http.NoBody
}
