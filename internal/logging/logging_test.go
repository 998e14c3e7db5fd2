package logging

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", FormatJSON, &buf)

	log.Debug().Str("page", "Countries").Str("op", "click").Msg("clicked")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "Countries", line["page"])
	assert.Equal(t, "clicked", line["message"])
	assert.Contains(t, line, "time")
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.level, FormatJSON, &bytes.Buffer{}).GetLevel())
		})
	}
}

func TestNew_ConsoleFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", FormatConsole, &buf)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("probe timed out")
	assert.Contains(t, buf.String(), "probe timed out")
}

// Loggers are built per page object and per test; building them must not
// touch zerolog's globals (run with -race).
func TestNew_ConcurrentCallsShareGlobals(t *testing.T) {
	require.True(t, zerolog.DurationFieldInteger)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			l := New("debug", FormatJSON, &buf)
			l.Debug().Dur("took", 1500*time.Millisecond).Send()
		}()
	}
	wg.Wait()

	var buf bytes.Buffer
	l := New("debug", FormatJSON, &buf)
	l.Debug().Dur("took", 1500*time.Millisecond).Send()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, float64(1500), line["took"])
}
