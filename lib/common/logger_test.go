package common

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/lni/dragonboat/v4/logger"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    logger.LogLevel
		wantErr bool
	}{
		{"debug", logger.DEBUG, false},
		{"INFO", logger.INFO, false},
		{"warn", logger.WARNING, false},
		{" warning ", logger.WARNING, false},
		{"error", logger.ERROR, false},
		{"loud", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPkgLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := &pkgLogger{name: "exam", level: logger.WARNING, out: log.New(&buf, "", 0)}

	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warningf("shown %d", 3)
	l.Errorf("shown %d", 4)

	want := "WARN  | exam       | shown 3\nERROR | exam       | shown 4\n"
	if buf.String() != want {
		t.Errorf("unexpected log output:\n%q\nwant:\n%q", buf.String(), want)
	}

	buf.Reset()
	l.SetLevel(logger.DEBUG)
	l.Debugf("now shown")
	if !strings.HasPrefix(buf.String(), "DEBUG | exam ") {
		t.Errorf("debug line missing: %q", buf.String())
	}
}

func TestPkgLoggerPanicf(t *testing.T) {
	var buf bytes.Buffer
	l := &pkgLogger{name: "store", level: logger.ERROR, out: log.New(&buf, "", 0)}
	defer func() {
		if r := recover(); r != "broken 7" {
			t.Errorf("unexpected panic value %v", r)
		}
		if !strings.Contains(buf.String(), "PANIC | store") {
			t.Errorf("panic not logged: %q", buf.String())
		}
	}()
	l.Panicf("broken %d", 7)
}

func TestInitLoggersRejectsUnknownLevel(t *testing.T) {
	if err := InitLoggers(Config{LogLevel: "chatty"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
