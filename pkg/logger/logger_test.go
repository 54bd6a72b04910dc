package logger

import "testing"

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want LogLevel
	}{
		{"debug", DEBUG},
		{"info", INFO},
		{"warn", WARN},
		{"error", ERROR},
		{"fatal", FATAL},
		{"verbose", INFO},
		{"", INFO},
	}
	for _, c := range cases {
		if got := ParseLevel(c.name); got != c.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	l := New(WARN, "TEST")
	l.SetConsole(false)

	// Below-threshold calls must be silently dropped.
	l.Debug("dropped")
	l.Info("dropped")

	if DEBUG.String() != "DEBUG" || FATAL.String() != "FATAL" {
		t.Fatal("level names mismatch")
	}
	if LogLevel(99).String() != "UNKNOWN" {
		t.Fatalf("out-of-range level name = %q", LogLevel(99).String())
	}
}
