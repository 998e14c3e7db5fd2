package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FixturePath is where captured HTML fixtures of the calling package live:
// testdata/fixtures/<name>.html, relative to the package directory go test
// runs in.
func FixturePath(name string) string {
	return filepath.Join("testdata", "fixtures", name+".html")
}

// LoadFixture reads a captured HTML fixture of the calling package.
func LoadFixture(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(FixturePath(name))
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", name, err)
	}

	return string(data)
}

// RecordingPath is where HAR recordings of the calling package live.
func RecordingPath(scenario string) string {
	return filepath.Join("testdata", "recordings", scenario+".har.json")
}

// LoadRecordingOrSkip loads a HAR recording, skipping the test when the
// scenario was never recorded.
func LoadRecordingOrSkip(t *testing.T, scenario string) *HARLog {
	t.Helper()

	path := RecordingPath(scenario)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skipf("Recording not found: %s", path)
	}

	return MustLoadHAR(t, path)
}
