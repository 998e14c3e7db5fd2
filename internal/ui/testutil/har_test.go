package testutil

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const countriesURL = "http://localhost:8080/admin-dev/index.php?controller=AdminCountries&token=[REDACTED]"

func TestParseHAR_ChromeExport(t *testing.T) {
	data := []byte(`{"log":{"version":"1.2","entries":[
{"request":{"method":"POST","url":"http://localhost:8080/admin-dev/index.php?controller=AdminLogin",
  "postData":{"mimeType":"application/x-www-form-urlencoded","text":"email=a&passwd=b"}},
 "response":{"status":302,"headers":[{"name":"Location","value":"index.php?controller=AdminDashboard"}],"content":{"mimeType":"text/html","text":""}}}
]}}`)

	har, err := ParseHAR(data)
	require.NoError(t, err)
	require.Len(t, har.Entries, 1)

	e := har.Entries[0]
	assert.Equal(t, http.MethodPost, e.Request.Method)
	assert.Equal(t, "email=a&passwd=b", e.Request.Body)
	assert.Equal(t, 302, e.Response.Status)
	assert.Equal(t, "index.php?controller=AdminDashboard", e.Response.Header("location"))
}

func TestParseHAR_Simplified(t *testing.T) {
	har, err := ParseHAR([]byte(`{"entries":[{"request":{"method":"GET","url":"` + countriesURL + `"},"response":{"status":200,"content":{"mimeType":"text/html","text":"<table></table>"}}}]}`))
	require.NoError(t, err)
	require.Len(t, har.Entries, 1)
	assert.Equal(t, "<table></table>", har.Entries[0].Response.Content.Text)

	_, err = ParseHAR([]byte("not json"))
	assert.Error(t, err)
}

func TestSaveHAR_LoadHAR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.har.json")
	want := &HARLog{Entries: []HAREntry{{
		Request:  HARRequest{Method: http.MethodGet, URL: countriesURL},
		Response: HARResponse{Status: 200, Content: HARContent{MimeType: "text/html", Text: "ok"}},
	}}}

	require.NoError(t, SaveHAR(path, want))
	got, err := LoadHAR(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHARLog_Filter(t *testing.T) {
	har := &HARLog{Entries: []HAREntry{
		{Request: HARRequest{Method: http.MethodGet, URL: countriesURL}},
		{Request: HARRequest{Method: http.MethodGet, URL: "http://localhost:8080/admin-dev/themes/default/css/admin-theme.css"}},
	}}

	docs := har.Filter(func(e HAREntry) bool { return e.Request.URL == countriesURL })
	assert.Len(t, docs.Entries, 1)
	assert.Len(t, har.Entries, 2)
}

func TestReplayer_ServesEntriesInRecordedOrder(t *testing.T) {
	har := &HARLog{Entries: []HAREntry{
		{Request: HARRequest{Method: http.MethodGet, URL: countriesURL}, Response: HARResponse{Status: 200, Content: HARContent{Text: "60 countries"}}},
		{Request: HARRequest{Method: http.MethodGet, URL: countriesURL}, Response: HARResponse{Status: 200, Content: HARContent{Text: "59 countries"}}},
	}}
	r := NewReplayer(har)

	var bodies []string
	for range 3 {
		e, ok := r.Lookup(http.MethodGet, countriesURL)
		require.True(t, ok)
		bodies = append(bodies, e.Response.Content.Text)
	}
	assert.Equal(t, []string{"60 countries", "59 countries", "59 countries"}, bodies)
}

func TestReplayer_FallsBackToPath(t *testing.T) {
	har := &HARLog{Entries: []HAREntry{
		{Request: HARRequest{URL: countriesURL}, Response: HARResponse{Status: 200}},
	}}
	r := NewReplayer(har)

	e, ok := r.Lookup(http.MethodGet, "http://localhost:8080/admin-dev/index.php?controller=AdminCountries&token=live")
	require.True(t, ok, "an empty recorded method means GET")
	assert.Equal(t, 200, e.Response.Status)

	_, ok = r.Lookup(http.MethodPost, countriesURL)
	assert.False(t, ok)

	_, ok = r.Lookup(http.MethodGet, "http://localhost:8080/admin-dev/other.php")
	assert.False(t, ok)
}
