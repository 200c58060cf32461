package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"basic title", "My Cool Post!", "my-cool-post"},
		{"collapses separators", "hello   world__again--now", "hello-world-again-now"},
		{"trims edges", "  Trimmed Title  ", "trimmed-title"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"uppercase", "UPPER Case", "upper-case"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.in)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Slugify(got); again != got {
				t.Errorf("Slugify not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestReadTime(t *testing.T) {
	word := "word "
	repeat := func(n int) string {
		out := ""
		for i := 0; i < n; i++ {
			out += word
		}
		return out
	}

	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"empty", 0, 1},
		{"short", 50, 1},
		{"exactly one minute", 200, 1},
		{"just over", 201, 2},
		{"two minutes", 400, 2},
		{"long read", 1000, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadTime(repeat(tt.words)); got != tt.want {
				t.Errorf("ReadTime(%d words) = %d, want %d", tt.words, got, tt.want)
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{20, 20},
		{100, 100},
		{101, 100},
		{10000, 100},
	}
	for _, tt := range tests {
		if got := ClampLimit(tt.in); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	arr := []string{"developer", "investor"}
	if !Contains(arr, "developer") {
		t.Error("expected developer to be found")
	}
	if Contains(arr, "vendor") {
		t.Error("did not expect vendor to be found")
	}
	if Contains(nil, "anything") {
		t.Error("nil slice should contain nothing")
	}
}
