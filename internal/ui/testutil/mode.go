package testutil

import (
	"os"
	"testing"
)

// Mode selects which tests may run.
type Mode string

const (
	ModeMock    Mode = "mock"    // no browser: fixtures and pure logic only
	ModeBrowser Mode = "browser" // local headless browser against the fake back office
	ModeReplay  Mode = "replay"  // browser against recorded sessions
	ModeLive    Mode = "live"    // browser against BO_BASE_URL (mutates data!)
)

// ModeEnv is the environment variable holding the test mode.
const ModeEnv = "BO_TEST_MODE"

// CurrentMode returns the configured test mode, mock by default.
func CurrentMode() Mode {
	mode := os.Getenv(ModeEnv)
	if mode == "" {
		return ModeMock
	}
	return Mode(mode)
}

// SkipUnlessMode skips the test unless running in one of the given modes.
func SkipUnlessMode(t *testing.T, modes ...Mode) {
	t.Helper()

	current := CurrentMode()
	for _, m := range modes {
		if current == m {
			return
		}
	}
	t.Skipf("Skipping: requires %s=%v", ModeEnv, modes)
}
