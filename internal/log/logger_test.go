package log

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWithComponent(t *testing.T) {
	l := New(slog.LevelInfo, ComponentApp)
	h := l.WithComponent(ComponentHTTP)
	if h.Component() != ComponentHTTP {
		t.Fatalf("component = %q", h.Component())
	}
	if l.Component() != ComponentApp {
		t.Fatalf("original logger mutated: %q", l.Component())
	}
}
