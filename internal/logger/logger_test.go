package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf)
	t.Cleanup(func() {
		Init(nil)
		SetLevel("info")
	})

	SetLevel("warn")
	Info("hidden")
	Warn("shown", "section", "contact")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info logged at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "section=contact") {
		t.Errorf("warn missing: %s", out)
	}

	buf.Reset()
	SetDebug(true)
	Debug("trace me")
	if !strings.Contains(buf.String(), "trace me") {
		t.Errorf("debug missing: %s", buf.String())
	}
}
