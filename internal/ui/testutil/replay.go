package testutil

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"
)

const maxRedirects = 10

// Replayer serves recorded responses to a hijacked browser.
//
// Back-office lists answer the same URL differently over a session (before
// and after a filter, a delete, a bulk action), so entries are kept per
// method+URL in recorded order: each request consumes the next one and the
// last one is repeated once the queue is exhausted.
type Replayer struct {
	mu sync.Mutex

	exact map[string][]*HAREntry
	// path is the fallback keyed without the query string
	path map[string][]*HAREntry
	// served counts how many entries of a key were already consumed
	served map[string]int

	passthrough bool
	log         zerolog.Logger
}

// ReplayerOption configures a Replayer.
type ReplayerOption func(*Replayer)

// WithPassthrough lets unmatched requests reach the real network. By default
// they get a 404.
func WithPassthrough(enabled bool) ReplayerOption {
	return func(r *Replayer) {
		r.passthrough = enabled
	}
}

// WithLogger logs every matched and unmatched request at debug level.
func WithLogger(l zerolog.Logger) ReplayerOption {
	return func(r *Replayer) {
		r.log = l
	}
}

// NewReplayer indexes a HAR log for replay.
func NewReplayer(har *HARLog, opts ...ReplayerOption) *Replayer {
	r := &Replayer{
		exact:  make(map[string][]*HAREntry),
		path:   make(map[string][]*HAREntry),
		served: make(map[string]int),
		log:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	for i := range har.Entries {
		entry := &har.Entries[i]
		method := entry.Request.Method
		if method == "" {
			method = http.MethodGet
		}

		key := method + " " + entry.Request.URL
		r.exact[key] = append(r.exact[key], entry)

		if pk, ok := pathKey(method, entry.Request.URL); ok {
			r.path[pk] = append(r.path[pk], entry)
		}
	}

	return r
}

func pathKey(method, rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	return method + " " + parsed.Scheme + "://" + parsed.Host + parsed.Path, true
}

// Lookup returns the entry the next request for method and rawURL would be
// served, consuming it.
func (r *Replayer) Lookup(method, rawURL string) (*HAREntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.next(method, rawURL)
}

func (r *Replayer) next(method, rawURL string) (*HAREntry, bool) {
	key := method + " " + rawURL
	queue, found := r.exact[key]
	if !found {
		pk, ok := pathKey(method, rawURL)
		if !ok {
			return nil, false
		}
		key = pk
		queue, found = r.path[pk]
	}
	if !found || len(queue) == 0 {
		return nil, false
	}

	i := r.served[key]
	if i >= len(queue) {
		i = len(queue) - 1
	}
	r.served[key] = i + 1

	return queue[i], true
}

// Middleware returns a rod hijack handler serving recorded responses. Use it
// with browser.WithHijacker.
func (r *Replayer) Middleware() func(*rod.Hijack) {
	return func(ctx *rod.Hijack) {
		method := ctx.Request.Method()
		reqURL := ctx.Request.URL().String()

		r.mu.Lock()
		entry, found := r.next(method, reqURL)
		if found {
			entry = r.followRedirects(entry)
		}
		r.mu.Unlock()

		if !found {
			r.log.Debug().Str("method", method).Str("url", reqURL).Msg("replay: no match")
			if r.passthrough {
				_ = ctx.LoadResponse(http.DefaultClient, true)
				return
			}
			serveNotFound(ctx)
			return
		}

		r.log.Debug().Str("method", method).Str("url", reqURL).Int("status", entry.Response.Status).Msg("replay: matched")
		serveEntry(ctx, entry)
	}
}

// followRedirects resolves a 3xx chain inside the recording. Browsers follow
// redirects themselves, but a hijacked response cannot carry Location, so
// the final document is served directly. Must hold r.mu.
func (r *Replayer) followRedirects(entry *HAREntry) *HAREntry {
	current := entry

	for i := 0; i < maxRedirects; i++ {
		if current.Response.Status < 300 || current.Response.Status >= 400 {
			return current
		}

		location := current.Response.Header("Location")
		if location == "" {
			return current
		}
		if base, err := url.Parse(current.Request.URL); err == nil {
			if ref, err := base.Parse(location); err == nil {
				location = ref.String()
			}
		}

		target, found := r.next(http.MethodGet, location)
		if !found {
			r.log.Debug().Str("location", location).Msg("replay: redirect target not recorded")
			return current
		}
		current = target
	}

	return current
}

func serveEntry(ctx *rod.Hijack, entry *HAREntry) {
	resp := entry.Response

	body := []byte(resp.Content.Text)
	if resp.Content.Encoding == "base64" {
		if decoded, err := base64.StdEncoding.DecodeString(resp.Content.Text); err == nil {
			body = decoded
		}
	}

	var headers []*proto.FetchHeaderEntry
	hasContentType := false
	for _, h := range resp.Headers {
		switch strings.ToLower(h.Name) {
		case "content-encoding", "content-length", "location":
			continue
		case "content-type":
			hasContentType = true
		}
		headers = append(headers, &proto.FetchHeaderEntry{Name: h.Name, Value: h.Value})
	}
	if !hasContentType && resp.Content.MimeType != "" {
		headers = append(headers, &proto.FetchHeaderEntry{Name: "Content-Type", Value: resp.Content.MimeType})
	}

	status := resp.Status
	if status >= 300 && status < 400 {
		status = http.StatusOK
	}

	payload := ctx.Response.Payload()
	payload.ResponseCode = status
	payload.ResponseHeaders = headers
	payload.Body = body
}

func serveNotFound(ctx *rod.Hijack) {
	payload := ctx.Response.Payload()
	payload.ResponseCode = http.StatusNotFound
	payload.ResponseHeaders = []*proto.FetchHeaderEntry{
		{Name: "Content-Type", Value: "application/json"},
	}
	payload.Body = []byte(`{"error": "no recording found for URL"}`)
}

// Stats reports how many distinct keys the replayer indexed.
func (r *Replayer) Stats() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return map[string]int{
		"exact_matches": len(r.exact),
		"path_matches":  len(r.path),
	}
}

func headerValue(headers []HARHeader, name string) string {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}
