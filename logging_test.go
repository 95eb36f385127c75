package srtconn

import (
	"fmt"
	"strings"
	"testing"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Printf(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestLevelFilteringDropsBelowCurrentLevel(t *testing.T) {
	rec := &recordingLogger{}
	prevLogger, prevLevel := defaultLogger, currentLevel
	defer func() { defaultLogger, currentLevel = prevLogger, prevLevel }()

	SetLogger(rec)
	SetLogLevel(LevelWarn)

	log := instanceLogger{prefix: "test"}
	log.debugf("should be dropped")
	log.infof("should also be dropped")
	log.warnf("kept: %d", 1)
	log.errorf("kept: %d", 2)

	if len(rec.lines) != 2 {
		t.Fatalf("got %d logged lines; want 2: %v", len(rec.lines), rec.lines)
	}
}

func TestInstanceLoggerIncludesPrefixAndLevel(t *testing.T) {
	rec := &recordingLogger{}
	prevLogger, prevLevel := defaultLogger, currentLevel
	defer func() { defaultLogger, currentLevel = prevLogger, prevLevel }()

	SetLogger(rec)
	SetLogLevel(LevelDebug)

	log := instanceLogger{prefix: "[srv-1]"}
	log.infof("listening on %s", "0.0.0.0:9000")

	if len(rec.lines) != 1 {
		t.Fatalf("got %d logged lines; want 1", len(rec.lines))
	}
	line := rec.lines[0]
	if !strings.Contains(line, "[srv-1]") || !strings.Contains(line, "INFO") || !strings.Contains(line, "0.0.0.0:9000") {
		t.Errorf("logged line = %q; missing prefix, level or message", line)
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	prevLogger := defaultLogger
	defer func() { defaultLogger = prevLogger }()

	SetLogger(&recordingLogger{})
	SetLogger(nil)

	if defaultLogger == nil {
		t.Fatal("SetLogger(nil) left defaultLogger nil")
	}
}
