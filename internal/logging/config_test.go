package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, true},
		{" WARN ", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"verbose", zerolog.InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := parseLevel(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseLevel(%q) = %v, %v; want %v, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseBool(t *testing.T) {
	if v, ok := parseBool("true"); !v || !ok {
		t.Fatalf("parseBool(true) = %v, %v", v, ok)
	}
	if _, ok := parseBool(""); ok {
		t.Fatalf("empty string should not count as set")
	}
	if _, ok := parseBool("maybe"); ok {
		t.Fatalf("garbage should not count as set")
	}
}

func TestDefaultSettingsPerProfile(t *testing.T) {
	if s := defaultSettings(ProfileTest); s.level != zerolog.DebugLevel || s.timestamp {
		t.Fatalf("test profile: %+v", s)
	}
	if s := defaultSettings(ProfileRuntime); s.level != zerolog.InfoLevel || !s.timestamp {
		t.Fatalf("runtime profile: %+v", s)
	}
}
