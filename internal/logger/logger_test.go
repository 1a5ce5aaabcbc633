package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: FormatJSON, Level: slog.LevelInfo})

	log.Info("artwork extracted", slog.String("path", "a.mp3"), slog.Int("bytes", 500))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "artwork extracted", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "a.mp3", entry["path"])
	assert.Equal(t, float64(500), entry["bytes"])
}

func TestNew_AutoFormatForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf})

	log.Info("test")
	assert.Contains(t, buf.String(), `"msg":"test"`)
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: FormatPretty, Level: slog.LevelDebug})

	log.Debug("no artwork", slog.String("path", "My Song.mp3"), slog.String("format", "MP3"))

	out := buf.String()
	assert.Contains(t, out, "DBG no artwork")
	assert.Contains(t, out, `path="My Song.mp3"`)
	assert.Contains(t, out, "format=MP3")
	assert.NotContains(t, out, "\033[", "no colors on a buffer")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: FormatPretty, Level: slog.LevelWarn})

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WRN shown")
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, nil, false))

	log.With(slog.String("dir", "/music")).WithGroup("scan").Info("done", slog.Int("files", 3))

	out := buf.String()
	assert.Contains(t, out, "INF done dir=/music scan.files=3")
}

func TestPrettyHandler_Colors(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, slog.LevelInfo, true))

	log.Error("failed")
	assert.Contains(t, buf.String(), levelLabels[slog.LevelError].color+"ERR"+colorReset)
}

func TestPrettyHandler_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, slog.LevelInfo, false))

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			log.Info("album", slog.Int("n", i))
		})
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 8)
	for _, line := range lines {
		assert.Contains(t, line, "INF album n=")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1.5s", formatValue(slog.DurationValue(1500*time.Millisecond)))
	assert.Equal(t, `""`, formatValue(slog.StringValue("")))
	assert.Equal(t, "plain", formatValue(slog.StringValue("plain")))
	assert.Equal(t, `"two words"`, formatValue(slog.StringValue("two words")))
	assert.Equal(t, "42", formatValue(slog.IntValue(42)))
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
