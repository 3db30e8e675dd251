package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	Init("debug", false, path)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Info().Str("studentID", "10130").Msg("submission graded")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"studentID":"10130"`) {
		t.Fatalf("log file missing structured field: %s", data)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("want debug level, got %s", zerolog.GlobalLevel())
	}
}

func TestInitFallsBackToInfo(t *testing.T) {
	Init("not-a-level", false, "")
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("want info level, got %s", zerolog.GlobalLevel())
	}
}
