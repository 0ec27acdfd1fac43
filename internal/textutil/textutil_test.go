package textutil

import "testing"

func TestCountWords(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   \n\t ", 0},
		{"one", 1},
		{"It was a dark and stormy night.", 7},
		{"line one\nline two\n\nline three", 6},
	}
	for _, tc := range cases {
		if got := CountWords(tc.in); got != tc.want {
			t.Errorf("CountWords(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	got := Truncate("a premise that runs considerably longer than the limit", 24)
	if len([]rune(got)) > 24 {
		t.Fatalf("truncated string too long: %q", got)
	}
	if got[len(got)-3:] != "..." {
		t.Fatalf("expected ellipsis suffix: %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := FirstLine("\n\n  The Clockwork Tide  \nsubtitle"); got != "The Clockwork Tide" {
		t.Fatalf("unexpected first line: %q", got)
	}
	if got := FirstLine("   "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
