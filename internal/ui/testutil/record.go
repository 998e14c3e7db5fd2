package testutil

import (
	"encoding/base64"
	"net/http"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"
)

// Recorder captures the traffic of a hijacked browser into a HAR log. Hijack
// handlers run concurrently, so entries are appended under a lock.
type Recorder struct {
	mu      sync.Mutex
	har     HARLog
	client  *http.Client
	include func(*http.Request) bool
	log     zerolog.Logger
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithRecordFilter records only requests include accepts; the others are
// still forwarded.
func WithRecordFilter(include func(*http.Request) bool) RecorderOption {
	return func(r *Recorder) {
		r.include = include
	}
}

// WithRecordLogger logs every recorded exchange at debug level.
func WithRecordLogger(l zerolog.Logger) RecorderOption {
	return func(r *Recorder) {
		r.log = l
	}
}

// NewRecorder returns a recorder forwarding requests with a client that does
// not follow redirects, so 3xx responses are kept in the log.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		include: func(*http.Request) bool { return true },
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Middleware returns a rod hijack handler forwarding each request to the
// network and recording the exchange.
func (r *Recorder) Middleware() func(*rod.Hijack) {
	return func(ctx *rod.Hijack) {
		req := ctx.Request.Req()
		if err := ctx.LoadResponse(r.client, true); err != nil {
			r.log.Debug().Err(err).Str("url", req.URL.String()).Msg("record: forward failed")
			ctx.Response.Fail(proto.NetworkErrorReasonFailed)
			return
		}
		if !r.include(req) {
			return
		}

		entry := HAREntry{
			Request: HARRequest{
				Method:  ctx.Request.Method(),
				URL:     req.URL.String(),
				Headers: toHARHeaders(req.Header),
				Body:    ctx.Request.Body(),
			},
			Response: HARResponse{
				Status:  ctx.Response.Payload().ResponseCode,
				Headers: toHARHeaders(ctx.Response.Headers()),
				Content: toHARContent(ctx.Response.Headers().Get("Content-Type"), ctx.Response.Payload().Body),
			},
		}

		r.log.Debug().Str("method", entry.Request.Method).Str("url", entry.Request.URL).Int("status", entry.Response.Status).Msg("record")

		r.mu.Lock()
		r.har.Entries = append(r.har.Entries, entry)
		r.mu.Unlock()
	}
}

// HAR returns a copy of what has been recorded so far.
func (r *Recorder) HAR() *HARLog {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]HAREntry, len(r.har.Entries))
	copy(entries, r.har.Entries)
	return &HARLog{Entries: entries}
}

func toHARHeaders(h http.Header) []HARHeader {
	var out []HARHeader
	for name, values := range h {
		for _, v := range values {
			out = append(out, HARHeader{Name: name, Value: v})
		}
	}
	return out
}

func toHARContent(mimeType string, body []byte) HARContent {
	c := HARContent{MimeType: mimeType, Size: len(body)}
	if isTextual(mimeType) && utf8.Valid(body) {
		c.Text = string(body)
		return c
	}
	c.Text = base64.StdEncoding.EncodeToString(body)
	c.Encoding = "base64"
	return c
}

func isTextual(mimeType string) bool {
	mt := strings.ToLower(mimeType)
	for _, prefix := range []string{"text/", "application/json", "application/javascript", "application/xml", "image/svg+xml"} {
		if strings.HasPrefix(mt, prefix) {
			return true
		}
	}
	return false
}
