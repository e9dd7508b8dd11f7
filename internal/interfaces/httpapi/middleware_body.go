package httpapi

import (
	"bytes"
	"io"
	"net/http"

	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultRequestBodyMaxBytes = 8192

// CaptureRequestBody records up to maxBytes of a write request's body on the
// active span. The handler still sees the full body.
func CaptureRequestBody(maxBytes int, next http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = defaultRequestBodyMaxBytes
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		span := trace.SpanFromContext(r.Context())
		if !span.IsRecording() || r.Body == nil || !hasRequestBody(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)

		n, err := buf.ReadFrom(io.LimitReader(r.Body, int64(maxBytes)))
		if err != nil {
			span.RecordError(err)
		}
		head := append([]byte(nil), buf.B...)
		span.SetAttributes(
			attribute.String("http.request.body", string(head)),
			attribute.Bool("http.request.body.truncated", n == int64(maxBytes)),
		)

		r.Body = struct {
			io.Reader
			io.Closer
		}{io.MultiReader(bytes.NewReader(head), r.Body), r.Body}
		next.ServeHTTP(w, r)
	})
}

func hasRequestBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}
