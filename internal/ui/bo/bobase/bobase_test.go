package bobase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

func TestPage_URL(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{"http://localhost:8080/admin-dev/", "index.php?controller=AdminImages", "http://localhost:8080/admin-dev/index.php?controller=AdminImages"},
		{"http://localhost:8080/admin-dev", "/index.php/sell/catalog/features/new", "http://localhost:8080/admin-dev/index.php/sell/catalog/features/new"},
		{"https://shop.example/admin123/", "", "https://shop.example/admin123/"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p := New(page.New(nil), tt.base)
			assert.Equal(t, tt.want, p.URL(tt.path))
		})
	}
}

func TestParseAlerts(t *testing.T) {
	html := `<html><body>
<div class="alert alert-success" role="alert"><div class="alert-text"><p>Successful
  creation</p></div></div>
</body></html>`

	alerts, err := ParseAlerts(html)
	require.NoError(t, err)
	assert.Equal(t, "Successful creation", alerts.Success)
	assert.Empty(t, alerts.Danger)
}

func TestParseAlerts_Danger(t *testing.T) {
	html := `<div class="alert alert-danger"><div class="alert-text"><p>The ISO code field is invalid.</p></div></div>`

	alerts, err := ParseAlerts(html)
	require.NoError(t, err)
	assert.Empty(t, alerts.Success)
	assert.Equal(t, "The ISO code field is invalid.", alerts.Danger)
}

func TestRegistry_AllOptional(t *testing.T) {
	results, err := Registry().Check(`<html><body></body></html>`)
	require.NoError(t, err)
	assert.Len(t, results, 4)
	for _, res := range results {
		assert.False(t, res.Broken(), res.Name)
	}
}
