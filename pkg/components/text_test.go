package components

import "testing"

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"Tokyo", 5},
		{"\x1b[38;2;255;0;0mTokyo\x1b[0m", 5},
		{"東京", 4},
	}
	for _, tt := range tests {
		if got := VisibleLen(tt.in); got != tt.want {
			t.Errorf("VisibleLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPadCenter(t *testing.T) {
	if got := PadCenter("ab", 5); got != " ab  " {
		t.Errorf("PadCenter = %q, want %q", got, " ab  ")
	}
	if got := PadCenter("abcdef", 3); got != "abcdef" {
		t.Errorf("PadCenter wider = %q, want unchanged", got)
	}
}

func TestFit(t *testing.T) {
	if got := Fit("Los Angeles", 8); got != "Los Ang…" {
		t.Errorf("Fit = %q, want %q", got, "Los Ang…")
	}
	if got := Fit("Oslo", 6); got != " Oslo " {
		t.Errorf("Fit = %q, want %q", got, " Oslo ")
	}
}

func TestPadLeftRight(t *testing.T) {
	if got := PadLeft("7", 3); got != "  7" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("7", 3); got != "7  " {
		t.Errorf("PadRight = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Singapore", 4); got != "Sing" {
		t.Errorf("Truncate = %q, want Sing", got)
	}
	if got := Truncate("x", 0); got != "" {
		t.Errorf("Truncate(0) = %q, want empty", got)
	}
}
