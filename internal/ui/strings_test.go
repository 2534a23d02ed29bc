package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"hsla(100, 60%, 80%, 0.5)", 10, "hsla(10..."},
		{"abc", 2, "ab"},
		{"  padded  ", 0, "padded"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle_KeepsTail(t *testing.T) {
	got := truncateMiddle("/home/user/.config/swatch/prefs.toml", 16)
	if want := "/home…prefs.toml"; got != want {
		t.Fatalf("truncateMiddle = %q, want %q", got, want)
	}
	if got := truncateMiddle("short", 16); got != "short" {
		t.Fatalf("truncateMiddle(short) = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q, want %q", got, "ab  ")
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight should not truncate, got %q", got)
	}
}
