package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err)
		if got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestInitWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themedeck.log")
	require.NoError(t, Init(Config{Level: "debug", Format: "json", File: path}))
	t.Cleanup(func() { _ = Close() })

	logger := Component("store")
	logger.Debug().Str("palette", "warm-earth").Msg("palette changed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	if !strings.Contains(line, `"component":"store"`) {
		t.Fatalf("expected component field, got %s", line)
	}
	if !strings.Contains(line, `"palette":"warm-earth"`) {
		t.Fatalf("expected palette field, got %s", line)
	}
}

func TestInitRejectsUnknownFormat(t *testing.T) {
	if err := Init(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
