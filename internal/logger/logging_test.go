package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithWriterUsesPrefixAndLevel(t *testing.T) {
	prev := log.GetLevel()
	defer log.SetLevel(prev)
	log.SetLevel(log.InfoLevel)

	var buf bytes.Buffer
	l := NewWithWriter(&buf, "field")
	l.Debug("hidden")
	l.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug output should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "field") || !strings.Contains(out, "shown") {
		t.Errorf("expected prefix and message in %q", out)
	}
}
