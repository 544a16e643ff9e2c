package xlog_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/db47h/fifosim/internal/xlog"
)

func TestParse(t *testing.T) {
	if l, err := xlog.ParseLevel("debug"); err != nil || l != slog.LevelDebug {
		t.Fatalf("ParseLevel(debug) = %v, %v", l, err)
	}
	if _, err := xlog.ParseLevel("loud"); err == nil {
		t.Fatal("ParseLevel(loud): expected error")
	}
	if f, err := xlog.ParseFormat("JSON"); err != nil || f != xlog.FormatJSON {
		t.Fatalf("ParseFormat(JSON) = %v, %v", f, err)
	}
	if _, err := xlog.ParseFormat("xml"); err == nil {
		t.Fatal("ParseFormat(xml): expected error")
	}
}

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	xlog.Setup(&buf, xlog.FormatJSON)
	xlog.SetLevel(slog.LevelInfo)
	defer xlog.SetLevel(slog.LevelWarn)

	xlog.For(xlog.ComponentFIFO).Debug("hidden")
	xlog.For(xlog.ComponentFIFO).Info("tick", "n", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message logged at info level: %s", out)
	}
	if !strings.Contains(out, `"component":"fifo"`) || !strings.Contains(out, `"msg":"tick"`) {
		t.Fatalf("unexpected output %s", out)
	}
}
