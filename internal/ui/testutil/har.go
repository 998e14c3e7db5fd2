// Package testutil provides testing utilities for the page objects: test
// mode gating, captured HTML fixtures, and HAR recording, replay and
// sanitizing.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
)

// HARLog is the simplified HAR (HTTP Archive) format recordings are stored
// in.
type HARLog struct {
	Entries []HAREntry `json:"entries"`
}

// HAREntry is a single request/response pair.
type HAREntry struct {
	Request  HARRequest  `json:"request"`
	Response HARResponse `json:"response"`
}

type HARRequest struct {
	Method  string      `json:"method"`
	URL     string      `json:"url"`
	Headers []HARHeader `json:"headers,omitempty"`
	Body    string      `json:"body,omitempty"`
}

type HARResponse struct {
	Status  int         `json:"status"`
	Headers []HARHeader `json:"headers,omitempty"`
	Content HARContent  `json:"content"`
}

type HARHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HARContent is a response body, base64 encoded when Encoding says so.
type HARContent struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Encoding string `json:"encoding,omitempty"`
	Size     int    `json:"size,omitempty"`
}

// Header returns the first value of the named header, case-insensitively.
func (r HARResponse) Header(name string) string {
	return headerValue(r.Headers, name)
}

// Filter returns a log holding only the entries keep accepts.
func (h *HARLog) Filter(keep func(HAREntry) bool) *HARLog {
	out := &HARLog{}
	for _, e := range h.Entries {
		if keep(e) {
			out.Entries = append(out.Entries, e)
		}
	}
	return out
}

// chromeHAR is the HAR 1.2 layout exported by Chrome DevTools: entries sit
// under a "log" object and request bodies under postData.
type chromeHAR struct {
	Log struct {
		Version string `json:"version"`
		Entries []struct {
			Request struct {
				Method   string      `json:"method"`
				URL      string      `json:"url"`
				Headers  []HARHeader `json:"headers,omitempty"`
				PostData *struct {
					MimeType string `json:"mimeType"`
					Text     string `json:"text"`
				} `json:"postData,omitempty"`
			} `json:"request"`
			Response HARResponse `json:"response"`
		} `json:"entries"`
	} `json:"log"`
}

// LoadHAR reads a HAR file, accepting both the Chrome DevTools export and
// the simplified format.
func LoadHAR(path string) (*HARLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read HAR file: %w", err)
	}
	return ParseHAR(data)
}

// ParseHAR decodes HAR JSON in either supported layout.
func ParseHAR(data []byte) (*HARLog, error) {
	var chrome chromeHAR
	if err := json.Unmarshal(data, &chrome); err == nil && len(chrome.Log.Entries) > 0 {
		har := &HARLog{Entries: make([]HAREntry, len(chrome.Log.Entries))}
		for i, ce := range chrome.Log.Entries {
			var body string
			if ce.Request.PostData != nil {
				body = ce.Request.PostData.Text
			}
			har.Entries[i] = HAREntry{
				Request: HARRequest{
					Method:  ce.Request.Method,
					URL:     ce.Request.URL,
					Headers: ce.Request.Headers,
					Body:    body,
				},
				Response: ce.Response,
			}
		}
		return har, nil
	}

	var har HARLog
	if err := json.Unmarshal(data, &har); err != nil {
		return nil, fmt.Errorf("parse HAR JSON: %w", err)
	}
	return &har, nil
}

// SaveHAR writes a HAR log in the simplified format, indented.
func SaveHAR(path string, har *HARLog) error {
	data, err := json.MarshalIndent(har, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal HAR: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write HAR file: %w", err)
	}

	return nil
}

// MustLoadHAR loads a HAR file and fails the test if it cannot be loaded.
func MustLoadHAR(t *testing.T, path string) *HARLog {
	t.Helper()

	har, err := LoadHAR(path)
	if err != nil {
		t.Fatalf("failed to load HAR file %s: %v", path, err)
	}

	return har
}
