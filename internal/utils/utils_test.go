package utils

import (
	"strings"
	"testing"
	"time"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short", input: "bmi", maxLen: 10, want: "bmi"},
		{name: "exact", input: "abcde", maxLen: 5, want: "abcde"},
		{name: "long", input: "abcdefgh", maxLen: 3, want: "abc... (truncated, total: 8 chars)"},
		{name: "multibyte", input: "µmol/Lµmol/L", maxLen: 6, want: "µmol/L... (truncated, total: 12 chars)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateString_DefaultLength(t *testing.T) {
	long := strings.Repeat("x", DefaultMaxStringLength+1)
	got := TruncateString(long, 0)
	if !strings.HasPrefix(got, strings.Repeat("x", DefaultMaxStringLength)+"...") {
		t.Errorf("expected truncation at default length, got %q", got[len(got)-40:])
	}
}

func TestJSONToString(t *testing.T) {
	if got := JSONToString(map[string]float64{"result": 36}, false); got != `{"result":36}` {
		t.Errorf("compact = %s", got)
	}
	if got := JSONToString([]int{1}, true); got != "[\n  1\n]" {
		t.Errorf("indented = %q", got)
	}
	if got := JSONToString(make(chan int), false); !strings.HasPrefix(got, `{"error": "marshal: `) {
		t.Errorf("unmarshalable = %s", got)
	}
}

func TestStopwatch(t *testing.T) {
	sw := StartStopwatch()
	time.Sleep(time.Millisecond)
	if sw.Elapsed() < time.Millisecond {
		t.Errorf("elapsed = %v, want >= 1ms", sw.Elapsed())
	}
}
