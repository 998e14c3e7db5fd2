package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		want        string
		wantChanges int
	}{
		{
			name:        "legacy link token",
			in:          `<a href="index.php?controller=AdminCountries&amp;token=0123456789abcdef0123456789abcdef">`,
			want:        `<a href="index.php?controller=AdminCountries&amp;token=REDACTED">`,
			wantChanges: 1,
		},
		{
			name:        "symfony route token",
			in:          `<a href="/admin-dev/index.php/sell/catalog/features?_token=AbCdEfGh12345678_-xyz">`,
			want:        `<a href="/admin-dev/index.php/sell/catalog/features?_token=REDACTED">`,
			wantChanges: 1,
		},
		{
			name:        "csrf input",
			in:          `<input type="hidden" name="feature[_token]" value="s3cr3t">`,
			want:        `<input type="hidden" name="feature[_token]" value="REDACTED">`,
			wantChanges: 1,
		},
		{
			name:        "admin directory and email",
			in:          `<form action="/admin4f8k2x9/index.php"><span>jane.doe@shop.example</span>`,
			want:        `<form action="/admin-dev/index.php"><span>demo@example.com</span>`,
			wantChanges: 2,
		},
		{
			name: "admin-dev left alone",
			in:   `<form action="/admin-dev/index.php?controller=AdminLogin">`,
			want: `<form action="/admin-dev/index.php?controller=AdminLogin">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changes := sanitize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Len(t, changes, tt.wantChanges)
		})
	}
}
