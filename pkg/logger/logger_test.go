package logger

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerInit(t *testing.T) {
	err := Init(WithOutputPaths("stderr"))
	if err != nil {
		t.Fatalf("failed to initialize console logger: %v", err)
	}

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	err = Init(WithJSON(), WithOutputPaths("stderr"))
	if err != nil {
		t.Fatalf("failed to initialize json logger: %v", err)
	}

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}
	_ = Sync()
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	ctx := context.Background()
	l.Info(ctx, "calculated", String("calculator", "bmi"), Float64("value", 24.2), Int("id", 7))
	l.Warn(ctx, "record not saved", Error(errors.New("disk full")))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["calculator"] != "bmi" {
		t.Errorf("expected calculator=bmi, got %v", fields["calculator"])
	}
	if fields["value"] != 24.2 {
		t.Errorf("expected value=24.2, got %v", fields["value"])
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("expected warn level, got %v", entries[1].Level)
	}
	if entries[1].ContextMap()["error"] != "disk full" {
		t.Errorf("expected error field, got %v", entries[1].ContextMap()["error"])
	}
}

func TestLoggerNamed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := New(zap.New(core)).Named("service")

	l.Info(context.Background(), "test message")
	l.Debug(context.Background(), "filtered")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].LoggerName != "service" {
		t.Errorf("expected logger name service, got %q", entries[0].LoggerName)
	}
}

func TestSetLevelString(t *testing.T) {
	defer SetLevel(zapcore.InfoLevel)

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARNING": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		if err := SetLevelString(in); err != nil {
			t.Fatalf("SetLevelString(%q): %v", in, err)
		}
		if Level() != want {
			t.Errorf("SetLevelString(%q): got %v, want %v", in, Level(), want)
		}
	}

	if err := SetLevelString("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestParseLevelRejectsPanicLevels(t *testing.T) {
	for _, in := range []string{"dpanic", "panic", "fatal"} {
		if _, err := ParseLevel(in); err == nil {
			t.Errorf("ParseLevel(%q): expected error", in)
		}
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info(context.Background(), "discarded")
	if l.Named("x") == nil {
		t.Fatal("named nop logger is nil")
	}
}
