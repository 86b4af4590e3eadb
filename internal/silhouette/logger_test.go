package silhouette

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("nil logger after reset")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	old := Debug
	t.Cleanup(func() { Debug = old })

	Debug = false
	DebugLog("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("debug off but logged: %s", buf.String())
	}
	Debug = true
	DebugLog("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Fatalf("debug line missing: %s", buf.String())
	}
}
