package testutil

import (
	"net/url"
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

// SensitivePatterns match parameter, header and JSON keys whose values must
// not be committed. The back office signs admin URLs with a _token query
// parameter and posts credentials as email/passwd.
var SensitivePatterns = []string{
	`(?i)passw`,
	`(?i)secret`,
	`(?i)token`,
	`(?i)session`,
	`(?i)auth`,
	`(?i)jwt`,
	`(?i)bearer`,
	`(?i)api_?key`,
	`(?i)credential`,
	`(?i)access_key`,
	`(?i)private_key`,
	`(?i)^email$`,
	`(?i)cookie`,
}

// SensitiveHeaders are always redacted.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"cookie":              true,
	"set-cookie":          true,
	"x-auth-token":        true,
	"x-api-key":           true,
	"x-csrf-token":        true,
	"x-xsrf-token":        true,
	"proxy-authorization": true,
}

var (
	keyPatterns     = compileAll(SensitivePatterns, "%s")
	jsonStringField = compileAll(SensitivePatterns, `("[^"]*%s[^"]*")\s*:\s*"[^"]*"`)
	jsonOtherField  = compileAll(SensitivePatterns, `("[^"]*%s[^"]*")\s*:\s*([^",}\]\s]+)`)
)

func compileAll(patterns []string, layout string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if layout != "%s" {
			// anchors only make sense for whole keys
			p = strings.TrimSuffix(strings.Replace(p, "^", "", 1), "$")
		}
		res = append(res, regexp.MustCompile(strings.Replace(layout, "%s", p, 1)))
	}
	return res
}

// SanitizeHAR returns a copy of har with sensitive values replaced by
// [REDACTED].
func SanitizeHAR(har *HARLog) *HARLog {
	sanitized := &HARLog{Entries: make([]HAREntry, len(har.Entries))}

	for i, entry := range har.Entries {
		sanitized.Entries[i] = HAREntry{
			Request: HARRequest{
				Method:  entry.Request.Method,
				URL:     SanitizeURL(entry.Request.URL),
				Headers: sanitizeHeaders(entry.Request.Headers),
				Body:    sanitizeBody(entry.Request.Body),
			},
			Response: HARResponse{
				Status:  entry.Response.Status,
				Headers: sanitizeResponseHeaders(entry.Response.Headers),
				Content: HARContent{
					MimeType: entry.Response.Content.MimeType,
					Text:     sanitizeBody(entry.Response.Content.Text),
					Encoding: entry.Response.Content.Encoding,
					Size:     entry.Response.Content.Size,
				},
			},
		}
	}

	return sanitized
}

// SanitizeURL redacts sensitive query parameters.
func SanitizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.RawQuery == "" {
		return rawURL
	}

	query := parsed.Query()
	for key := range query {
		if isSensitiveKey(key) {
			query.Set(key, redacted)
		}
	}
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

func sanitizeHeaders(headers []HARHeader) []HARHeader {
	sanitized := make([]HARHeader, len(headers))
	for i, h := range headers {
		if SensitiveHeaders[strings.ToLower(h.Name)] || isSensitiveKey(h.Name) {
			h.Value = redacted
		}
		sanitized[i] = h
	}
	return sanitized
}

// sanitizeResponseHeaders also cleans Location, which carries the admin
// token on every back-office redirect.
func sanitizeResponseHeaders(headers []HARHeader) []HARHeader {
	sanitized := sanitizeHeaders(headers)
	for i, h := range sanitized {
		if strings.EqualFold(h.Name, "location") {
			sanitized[i].Value = SanitizeURL(h.Value)
		}
	}
	return sanitized
}

func sanitizeBody(body string) string {
	trimmed := strings.TrimSpace(body)
	switch {
	case trimmed == "":
		return body
	case strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "["):
		return sanitizeJSONBody(body)
	case strings.Contains(body, "=") && !strings.ContainsAny(trimmed, "<\n"):
		return sanitizeFormBody(body)
	default:
		return body
	}
}

func sanitizeFormBody(body string) string {
	values, err := url.ParseQuery(body)
	if err != nil {
		return body
	}

	for key := range values {
		if isSensitiveKey(key) {
			values.Set(key, redacted)
		}
	}

	return values.Encode()
}

func sanitizeJSONBody(body string) string {
	result := body
	for i := range jsonStringField {
		result = jsonStringField[i].ReplaceAllString(result, `$1: "`+redacted+`"`)
		result = jsonOtherField[i].ReplaceAllString(result, `$1: "`+redacted+`"`)
	}
	return result
}

func isSensitiveKey(key string) bool {
	for _, re := range keyPatterns {
		if re.MatchString(key) {
			return true
		}
	}
	return false
}
