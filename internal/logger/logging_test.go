package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithConfigPrefixAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(&buf, "ipc", log.WarnLevel, false, false, log.LogfmtFormatter)

	l.Debug("hidden")
	l.Warn("shown", "action", "check")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "prefix=ipc") || !strings.Contains(out, "action=check") {
		t.Errorf("unexpected output: %q", out)
	}
}
